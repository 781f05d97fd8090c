package spectral

import (
	"fmt"
	"image"
	"math/cmplx"
)

// Epsilon keeps the score defined when the low band carries no energy.
const Epsilon = 1e-9

// Analysis is the breakdown behind a single score.
type Analysis struct {
	// N is the number of samples and spectral bins.
	N int

	// SplitBin is the first bin counted as high frequency (N/4).
	SplitBin int

	// LowEnergy is the summed magnitude of bins [0, SplitBin).
	LowEnergy float64

	// HighEnergy is the summed magnitude of bins [SplitBin, N).
	HighEnergy float64

	// Score is HighEnergy / (LowEnergy + Epsilon).
	Score float64
}

// Scorer reduces a sample sequence to a high/low frequency energy ratio.
// It holds no per-call state and may be shared.
type Scorer struct {
	transform Transform
}

// NewScorer creates a scorer that runs the given transform backend.
func NewScorer(t Transform) *Scorer {
	return &Scorer{transform: t}
}

// NewDefaultScorer creates a scorer backed by go-dsp's FFT.
func NewDefaultScorer() *Scorer {
	return NewScorer(GoDSPTransform{})
}

// Transform returns the backend in use.
func (s *Scorer) Transform() Transform {
	return s.transform
}

// Score returns the spectral score of signal.
func (s *Scorer) Score(signal []float64) (float64, error) {
	a, err := s.Analyze(signal)
	if err != nil {
		return 0, err
	}
	return a.Score, nil
}

// ScoreImage builds the signal for img and scores it.
func (s *Scorer) ScoreImage(img *image.Gray) (float64, error) {
	signal, err := BuildSignal(img)
	if err != nil {
		return 0, err
	}
	return s.Score(signal)
}

// Analyze embeds signal as a complex sequence, transforms it and splits
// the magnitude spectrum at bin N/4.
func (s *Scorer) Analyze(signal []float64) (Analysis, error) {
	n := len(signal)
	if n == 0 {
		return Analysis{}, fmt.Errorf("%w: empty signal", ErrInvalidInput)
	}

	seq := make([]complex128, n)
	for i, v := range signal {
		seq[i] = complex(v, 0)
	}

	spectrum, err := s.transform.Forward(seq)
	if err != nil {
		return Analysis{}, fmt.Errorf("%s transform of %d samples: %w", s.transform.Name(), n, err)
	}
	if len(spectrum) != n {
		return Analysis{}, fmt.Errorf("%w: %s returned %d bins for %d samples",
			ErrUnsupportedSignalLength, s.transform.Name(), len(spectrum), n)
	}

	low, high := bandEnergy(spectrum)
	return Analysis{
		N:          n,
		SplitBin:   n / 4,
		LowEnergy:  low,
		HighEnergy: high,
		Score:      high / (low + Epsilon),
	}, nil
}

// bandEnergy sums bin magnitudes below N/4 into low and the rest,
// including bin N/4 itself, into high.
func bandEnergy(spectrum []complex128) (low, high float64) {
	split := len(spectrum) / 4
	for i, c := range spectrum {
		mag := cmplx.Abs(c)
		if i < split {
			low += mag
		} else {
			high += mag
		}
	}
	return low, high
}
