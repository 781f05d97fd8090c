package spectral

import "errors"

var (
	// ErrInvalidInput is returned for images or signals that cannot be
	// scored, such as a zero-area image or an empty sample sequence.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedSignalLength is returned when a transform backend cannot
	// process a sequence of the requested length.
	ErrUnsupportedSignalLength = errors.New("unsupported signal length")
)
