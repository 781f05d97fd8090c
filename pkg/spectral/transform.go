package spectral

import (
	"fmt"
	"math"
	"sort"

	dspfft "github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/dsp/fourier"
)

// Transform is a forward discrete Fourier transform backend.
//
// Forward must return a spectrum of exactly len(seq) bins without padding
// or truncating the input, and must not modify seq.
type Transform interface {
	Name() string
	Forward(seq []complex128) ([]complex128, error)
}

// Backend names accepted by NewTransform.
const (
	BackendGonum  = "gonum"
	BackendGoDSP  = "go-dsp"
	BackendRadix2 = "radix2"
)

var backends = map[string]func() Transform{
	BackendGonum:  func() Transform { return GonumTransform{} },
	BackendGoDSP:  func() Transform { return GoDSPTransform{} },
	BackendRadix2: func() Transform { return Radix2Transform{} },
}

// NewTransform returns the backend registered under name.
func NewTransform(name string) (Transform, error) {
	ctor, ok := backends[name]
	if !ok {
		return nil, fmt.Errorf("unknown transform backend %q (available: %v)", name, Backends())
	}
	return ctor(), nil
}

// Backends lists the registered backend names in sorted order.
func Backends() []string {
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GonumTransform computes the DFT with gonum's mixed-radix complex FFT,
// which accepts any length.
type GonumTransform struct{}

// Name returns "gonum".
func (GonumTransform) Name() string { return BackendGonum }

// Forward plans a transform for len(seq) and runs it once. Nothing is
// cached between calls. A prime factor p of len(seq) costs O(N*p), so
// long prime lengths are slow.
func (GonumTransform) Forward(seq []complex128) ([]complex128, error) {
	if len(seq) == 0 {
		return nil, fmt.Errorf("%w: empty sequence", ErrInvalidInput)
	}
	fft := fourier.NewCmplxFFT(len(seq))
	return fft.Coefficients(nil, seq), nil
}

// GoDSPTransform computes the DFT with mjibson/go-dsp, which falls back to
// Bluestein's algorithm for lengths that are not a power of two and stays
// O(N log N) for every length.
type GoDSPTransform struct{}

// Name returns "go-dsp".
func (GoDSPTransform) Name() string { return BackendGoDSP }

// Forward returns the full complex spectrum of seq.
func (GoDSPTransform) Forward(seq []complex128) ([]complex128, error) {
	if len(seq) == 0 {
		return nil, fmt.Errorf("%w: empty sequence", ErrInvalidInput)
	}
	return dspfft.FFT(seq), nil
}

// Radix2Transform is a recursive Cooley-Tukey FFT. It only handles lengths
// that are a power of two and rejects everything else.
type Radix2Transform struct{}

// Name returns "radix2".
func (Radix2Transform) Name() string { return BackendRadix2 }

// Forward rejects non power of two lengths with ErrUnsupportedSignalLength.
func (Radix2Transform) Forward(seq []complex128) ([]complex128, error) {
	n := len(seq)
	if n == 0 {
		return nil, fmt.Errorf("%w: empty sequence", ErrInvalidInput)
	}
	if n&(n-1) != 0 {
		return nil, fmt.Errorf("%w: radix2 needs a power of two, got %d", ErrUnsupportedSignalLength, n)
	}

	in := make([]complex128, n)
	copy(in, seq)
	return cooleyTukey(in), nil
}

// cooleyTukey performs a 1D FFT on complex input data whose length is a
// power of two.
func cooleyTukey(x []complex128) []complex128 {
	n := len(x)
	if n <= 1 {
		return x
	}

	// Split into even and odd
	even := make([]complex128, n/2)
	odd := make([]complex128, n/2)
	for i := 0; i < n/2; i++ {
		even[i] = x[2*i]
		odd[i] = x[2*i+1]
	}

	even = cooleyTukey(even)
	odd = cooleyTukey(odd)

	// Combine results
	result := make([]complex128, n)
	for k := 0; k < n/2; k++ {
		angle := -2 * math.Pi * float64(k) / float64(n)
		t := complex(math.Cos(angle), math.Sin(angle)) * odd[k]
		result[k] = even[k] + t
		result[k+n/2] = even[k] - t
	}

	return result
}
