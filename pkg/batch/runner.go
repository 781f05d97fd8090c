// Package batch scores every image of a labeled dataset and writes the
// textual report.
package batch

import (
	"fmt"
	"io"
	"log"

	"freqscore/internal/models"
	"freqscore/pkg/dataset"
	"freqscore/pkg/report"
	"freqscore/pkg/spectral"
)

// Params holds the batch run configuration.
type Params struct {
	// Root is the dataset directory containing <split>/<label> folders.
	Root string

	// Extensions lists accepted file extensions, dot included.
	Extensions []string

	// Sections are scored in order, one report section each.
	Sections []models.Section

	// Summary appends a statistics line after each section.
	Summary bool

	// Verbose logs per-file progress through the standard logger.
	Verbose bool
}

// Runner drives one batch run. Images are processed one at a time, to
// completion, in section order.
type Runner struct {
	params   *Params
	scorer   *spectral.Scorer
	walker   *dataset.Walker
	reporter *report.Reporter
	results  []models.ScoredFile
}

// NewRunner creates a runner that scores with scorer and reports to out.
func NewRunner(params *Params, scorer *spectral.Scorer, out io.Writer) *Runner {
	return &Runner{
		params:   params,
		scorer:   scorer,
		walker:   dataset.NewWalker(params.Root, params.Extensions),
		reporter: report.New(out),
	}
}

// Run scores every configured section. The first failure ends the run;
// the returned error names the offending file or directory.
func (r *Runner) Run() error {
	for _, section := range r.params.Sections {
		if err := r.runSection(section); err != nil {
			return err
		}
	}
	return nil
}

// Results returns the files scored so far, in report order.
func (r *Runner) Results() []models.ScoredFile {
	return r.results
}

func (r *Runner) runSection(section models.Section) error {
	if r.params.Verbose {
		log.Printf("reading %s", section.Dir(r.walker.Root()))
	}

	if err := r.reporter.Section(section.Split, section.Label); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	var scores []float64
	err := r.walker.Walk(section, func(e dataset.Entry) error {
		score, err := r.scorer.ScoreImage(e.Image)
		if err != nil {
			return fmt.Errorf("failed to score %s: %w", e.Path, err)
		}

		if r.params.Verbose {
			b := e.Image.Bounds()
			log.Printf("scored %s (%dx%d, %s)", e.Path, b.Dx(), b.Dy(), r.scorer.Transform().Name())
		}

		if err := r.reporter.Score(e.Filename, score); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}

		scores = append(scores, score)
		r.results = append(r.results, models.ScoredFile{
			Section:  section,
			Filename: e.Filename,
			Path:     e.Path,
			Width:    e.Image.Bounds().Dx(),
			Height:   e.Image.Bounds().Dy(),
			Score:    score,
		})
		return nil
	})
	if err != nil {
		return err
	}

	if r.params.Summary {
		if err := r.reporter.Summary(scores); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}

	return nil
}
