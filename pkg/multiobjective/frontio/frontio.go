// Package frontio reads and writes fronts and weight vectors stored as plain
// text: one row per line, values separated by arbitrary whitespace.
package frontio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/mihai-snyk/moo-indicators/pkg/multiobjective/framework"
)

// ReadLines materializes every line of r. The source is consumed exactly once.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, fmt.Errorf("line %d: %w: %w", len(lines)+1, framework.ErrMalformedInput, err)
		}
		return nil, fmt.Errorf("%w: %w", framework.ErrIOFailure, err)
	}
	return lines, nil
}

// ParseRows turns lines into numeric rows. Blank lines are skipped. The width
// of every row is fixed by the first non-blank line. NaN and infinite values
// are rejected.
func ParseRows(lines []string) ([][]float64, error) {
	var rows [][]float64
	width := -1
	for i, line := range lines {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if width < 0 {
			width = len(fields)
		} else if len(fields) != width {
			return nil, fmt.Errorf("line %d has %d values, expected %d: %w", i+1, len(fields), width, framework.ErrMalformedInput)
		}

		row := make([]float64, len(fields))
		for j, field := range fields {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: value %q: %w", i+1, field, framework.ErrMalformedInput)
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("line %d: value %q is not finite: %w", i+1, field, framework.ErrMalformedInput)
			}
			row[j] = v
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// ReadRows reads r once and parses it with ParseRows.
func ReadRows(r io.Reader) ([][]float64, error) {
	lines, err := ReadLines(r)
	if err != nil {
		return nil, err
	}
	return ParseRows(lines)
}

// ReadRowsFile reads the rows stored at path. The file is closed on every
// return path.
func ReadRowsFile(path string) ([][]float64, error) {
	f, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := ReadRows(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rows, nil
}

// Open opens path for reading and maps failures onto ErrNotFound or
// ErrIOFailure.
func Open(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %w", framework.ErrNotFound, err)
		}
		return nil, fmt.Errorf("%w: %w", framework.ErrIOFailure, err)
	}
	return f, nil
}

// ReadFront reads a front from r.
func ReadFront(r io.Reader) (*framework.Front, error) {
	rows, err := ReadRows(r)
	if err != nil {
		return nil, err
	}
	return frontFromRows(rows)
}

// ReadFrontFile reads the front stored at path.
func ReadFrontFile(path string) (*framework.Front, error) {
	rows, err := ReadRowsFile(path)
	if err != nil {
		return nil, err
	}
	return frontFromRows(rows)
}

func frontFromRows(rows [][]float64) (*framework.Front, error) {
	points := make([]framework.ObjectiveSpacePoint, len(rows))
	for i, row := range rows {
		points[i] = row
	}
	return framework.NewFront(points...)
}

// WriteRows writes one row per line joining values with sep.
func WriteRows(w io.Writer, rows [][]float64, sep string) error {
	bw := bufio.NewWriter(w)
	for _, row := range rows {
		for j, v := range row {
			if j > 0 {
				if _, err := bw.WriteString(sep); err != nil {
					return fmt.Errorf("%w: %w", framework.ErrIOFailure, err)
				}
			}
			if _, err := bw.WriteString(strconv.FormatFloat(v, 'g', -1, 64)); err != nil {
				return fmt.Errorf("%w: %w", framework.ErrIOFailure, err)
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("%w: %w", framework.ErrIOFailure, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: %w", framework.ErrIOFailure, err)
	}
	return nil
}

// WriteFront writes front with sep between coordinates.
func WriteFront(w io.Writer, front *framework.Front, sep string) error {
	points := front.ObjectiveSpacePoints()
	rows := make([][]float64, len(points))
	for i, p := range points {
		rows[i] = p
	}
	return WriteRows(w, rows, sep)
}
