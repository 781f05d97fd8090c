package spectral

import (
	"errors"
	"image"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// newGray builds a grayscale image from row-major pixel values
func newGray(width, height int, pix ...uint8) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, width, height))
	copy(img.Pix, pix)
	return img
}

// TestBuildSignalRowMajor verifies normalization and flattening order
func TestBuildSignalRowMajor(t *testing.T) {
	img := newGray(3, 2,
		0, 51, 102,
		153, 204, 255,
	)

	got, err := BuildSignal(img)
	if err != nil {
		t.Fatalf("BuildSignal failed: %v", err)
	}

	want := []float64{0, 0.2, 0.4, 0.6, 0.8, 1.0}
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("signal mismatch (-want +got):\n%s", diff)
	}
}

// TestBuildSignalSubImage checks that stride and a non-zero origin are honoured
func TestBuildSignalSubImage(t *testing.T) {
	img := newGray(4, 3,
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
	)
	sub := img.SubImage(image.Rect(1, 1, 3, 3)).(*image.Gray)

	got, err := BuildSignal(sub)
	if err != nil {
		t.Fatalf("BuildSignal failed: %v", err)
	}

	want := []float64{6 / 255.0, 7 / 255.0, 10 / 255.0, 11 / 255.0}
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("signal mismatch (-want +got):\n%s", diff)
	}
}

// TestBuildSignalInvalid rejects zero-area and nil images
func TestBuildSignalInvalid(t *testing.T) {
	tests := []struct {
		name string
		img  *image.Gray
	}{
		{"nil", nil},
		{"zero width", image.NewGray(image.Rect(0, 0, 0, 5))},
		{"zero height", image.NewGray(image.Rect(0, 0, 5, 0))},
		{"empty", image.NewGray(image.Rectangle{})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildSignal(tt.img)
			if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("Expected ErrInvalidInput, got %v", err)
			}
		})
	}
}
