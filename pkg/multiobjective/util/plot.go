package util

import (
	"fmt"
	"io"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"github.com/mihai-snyk/moo-indicators/pkg/multiobjective/framework"
)

// PlotOptions labels a front comparison chart.
type PlotOptions struct {
	Title     string
	Subtitle  string
	FrontName string
}

// PlotFronts renders a scatter plot comparing front with reference as HTML.
// Only two-objective fronts can be plotted; reference may be nil.
func PlotFronts(w io.Writer, front, reference *framework.Front, o PlotOptions) error {
	if front.IsEmpty() {
		return fmt.Errorf("nothing to plot for %q: %w", o.Title, framework.ErrEmptyInput)
	}
	if front.Dimensions() != 2 {
		return fmt.Errorf("can only plot 2D fronts, got %d objectives: %w", front.Dimensions(), framework.ErrInvalidArgument)
	}
	if reference != nil && !reference.IsEmpty() && reference.Dimensions() != 2 {
		return fmt.Errorf("can only plot 2D reference fronts, got %d objectives: %w", reference.Dimensions(), framework.ErrDimensionMismatch)
	}

	frontName := o.FrontName
	if frontName == "" {
		frontName = "Approximation"
	}

	// Create scatter chart
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    o.Title,
			Subtitle: o.Subtitle,
		}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithInitializationOpts(opts.Initialization{
			Theme: types.ThemeWesteros,
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "f1(x)",
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(true),
			},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "f2(x)",
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(true),
			},
		}))

	if reference != nil && !reference.IsEmpty() {
		scatter.AddSeries("Reference Front", scatterData(reference, "circle"))
	}
	scatter.AddSeries(frontName, scatterData(front, "triangle")).
		SetSeriesOptions(
			charts.WithLabelOpts(opts.Label{
				Show: opts.Bool(false),
			}),
			charts.WithEmphasisOpts(opts.Emphasis{}),
		)

	return scatter.Render(w)
}

// PlotFrontsToFile writes the chart produced by PlotFronts to path.
func PlotFrontsToFile(path string, front, reference *framework.Front, o PlotOptions) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", framework.ErrIOFailure, err)
	}
	defer f.Close()

	return PlotFronts(f, front, reference, o)
}

func scatterData(front *framework.Front, symbol string) []opts.ScatterData {
	points := front.ObjectiveSpacePoints()
	data := make([]opts.ScatterData, len(points))
	for i, p := range points {
		data[i] = opts.ScatterData{
			Value:      []float64{p[0], p[1]},
			Symbol:     symbol,
			SymbolSize: 10,
		}
	}
	return data
}
