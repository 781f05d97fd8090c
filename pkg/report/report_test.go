package report

import (
	"bytes"
	"testing"
)

// TestSection verifies the uppercase header format
func TestSection(t *testing.T) {
	var buf bytes.Buffer
	if err := New(&buf).Section("train", "fake"); err != nil {
		t.Fatalf("Section failed: %v", err)
	}

	if got, want := buf.String(), "\n[TRAIN / FAKE]\n"; got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

// TestScore checks padding and four-decimal rounding
func TestScore(t *testing.T) {
	tests := []struct {
		filename string
		score    float64
		want     string
	}{
		{"img_001.jpg", 3.0, "img_001.jpg           score = 3.0000\n"},
		{"a.jpg", 0.123456, "a.jpg                 score = 0.1235\n"},
		{"a_very_long_filename_001.jpg", 0, "a_very_long_filename_001.jpg  score = 0.0000\n"},
	}

	for _, tt := range tests {
		var buf bytes.Buffer
		if err := New(&buf).Score(tt.filename, tt.score); err != nil {
			t.Fatalf("Score failed: %v", err)
		}
		if got := buf.String(); got != tt.want {
			t.Errorf("Expected %q, got %q", tt.want, got)
		}
	}
}

// TestSummary checks the statistics line
func TestSummary(t *testing.T) {
	tests := []struct {
		name   string
		scores []float64
		want   string
	}{
		{"empty", nil, "  n = 0\n"},
		{"single", []float64{2.5}, "  n = 1  mean = 2.5000  std = 0.0000  min = 2.5000  max = 2.5000\n"},
		{"several", []float64{1, 2, 3}, "  n = 3  mean = 2.0000  std = 1.0000  min = 1.0000  max = 3.0000\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := New(&buf).Summary(tt.scores); err != nil {
				t.Fatalf("Summary failed: %v", err)
			}
			if got := buf.String(); got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}
