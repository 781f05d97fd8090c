// Package spectral turns grayscale images into one-dimensional signals and
// scores them by the ratio of high to low frequency energy in their
// discrete Fourier spectrum.
package spectral

import (
	"fmt"
	"image"
)

// BuildSignal flattens a grayscale image into a sample sequence normalized
// to [0, 1].
//
// Samples are emitted in row-major order: row 0 left to right, then row 1,
// and so on. The transform treats the result as a single time-domain
// signal, so this order decides which spatial detail lands in which
// frequency bin.
//
// Returns:
//   - A new slice of width*height samples, each intensity/255
//   - ErrInvalidInput if the image is nil or has zero area
func BuildSignal(img *image.Gray) ([]float64, error) {
	if img == nil {
		return nil, fmt.Errorf("%w: nil image", ErrInvalidInput)
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: image is %dx%d", ErrInvalidInput, width, height)
	}

	signal := make([]float64, 0, width*height)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		row := img.Pix[img.PixOffset(bounds.Min.X, y):]
		for x := 0; x < width; x++ {
			signal = append(signal, float64(row[x])/255.0)
		}
	}

	return signal, nil
}
