// Package report writes the plain-text score listing produced by a batch run.
package report

import (
	"fmt"
	"io"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Reporter formats section headers and per-file scores onto a writer
type Reporter struct {
	w io.Writer
}

// New creates a reporter writing to w
func New(w io.Writer) *Reporter {
	return &Reporter{w: w}
}

// Section writes the header that precedes a section's scores, e.g.
// "[TRAIN / FAKE]", preceded by a blank line.
func (r *Reporter) Section(split, label string) error {
	_, err := fmt.Fprintf(r.w, "\n[%s / %s]\n", strings.ToUpper(split), strings.ToUpper(label))
	return err
}

// Score writes one "<filename>  score = <score>" line. Filenames are
// left-aligned in a 20 column field and scores use four decimals.
func (r *Reporter) Score(filename string, score float64) error {
	_, err := fmt.Fprintf(r.w, "%-20s  score = %.4f\n", filename, score)
	return err
}

// Summary writes count, mean, standard deviation, min and max of a
// section's scores.
func (r *Reporter) Summary(scores []float64) error {
	if len(scores) == 0 {
		_, err := fmt.Fprintf(r.w, "  n = 0\n")
		return err
	}

	mean, std := stat.MeanStdDev(scores, nil)
	if len(scores) == 1 {
		std = 0
	}

	_, err := fmt.Fprintf(r.w, "  n = %d  mean = %.4f  std = %.4f  min = %.4f  max = %.4f\n",
		len(scores), mean, std, floats.Min(scores), floats.Max(scores))
	return err
}
