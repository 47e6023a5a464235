package main

import (
	"github.com/spf13/pflag"

	"github.com/mihai-snyk/moo-indicators/apis/indicators/v1alpha1"
)

// indicatorOptions collects the flags that describe an R2 indicator. Flags
// override the values of a configuration file when both are given.
type indicatorOptions struct {
	configFile    string
	weightsFile   string
	vectors       int
	objectives    int
	divisions     int
	referenceFile string
	parallelism   int

	fs *pflag.FlagSet
}

func (o *indicatorOptions) AddFlags(fs *pflag.FlagSet) {
	o.fs = fs
	fs.StringVar(&o.configFile, "config", "", "Path to an R2IndicatorConfig file (YAML or JSON).")
	fs.StringVar(&o.weightsFile, "weights", "", "File with one weight vector per line.")
	fs.IntVar(&o.vectors, "vectors", v1alpha1.DefaultWeightVectorCount, "Number of uniform two-objective weight vectors.")
	fs.IntVar(&o.objectives, "objectives", 0, "Number of objectives of a simplex lattice weight set.")
	fs.IntVar(&o.divisions, "divisions", 0, "Divisions per axis of a simplex lattice weight set.")
	fs.StringVar(&o.referenceFile, "reference", "", "Reference front used to normalize evaluated fronts.")
	fs.IntVar(&o.parallelism, "parallelism", v1alpha1.DefaultParallelism, "Maximum number of distance matrix rows computed concurrently.")
}

// Config merges the configuration file, if any, with the flags that were set
// explicitly, then defaults and validates the result.
func (o *indicatorOptions) Config() (*v1alpha1.R2IndicatorConfig, error) {
	cfg := &v1alpha1.R2IndicatorConfig{}
	if o.configFile != "" {
		loaded, err := v1alpha1.LoadR2IndicatorConfig(o.configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	switch {
	case o.changed("weights"):
		cfg.WeightVectors = v1alpha1.WeightVectorSource{File: o.weightsFile}
	case o.changed("objectives") || o.changed("divisions"):
		cfg.WeightVectors = v1alpha1.WeightVectorSource{Objectives: o.objectives, Divisions: o.divisions}
	case o.changed("vectors"):
		cfg.WeightVectors = v1alpha1.WeightVectorSource{Count: o.vectors}
	}
	if o.changed("reference") {
		cfg.ReferenceFrontFile = o.referenceFile
	}
	if o.changed("parallelism") {
		cfg.Parallelism = o.parallelism
	}

	v1alpha1.SetDefaults_R2IndicatorConfig(cfg)
	if errs := v1alpha1.ValidateR2IndicatorConfig(cfg); len(errs) > 0 {
		return nil, errs.ToAggregate()
	}
	return cfg, nil
}

func (o *indicatorOptions) changed(name string) bool {
	return o.fs != nil && o.fs.Changed(name)
}
