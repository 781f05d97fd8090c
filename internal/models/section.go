package models

import "path/filepath"

// Section is one labeled partition of the dataset, stored on disk as
// <root>/<Split>/<Label>.
type Section struct {
	// Split is the dataset split, e.g. "train" or "test"
	Split string `yaml:"split"`

	// Label is the class name inside the split, e.g. "fake" or "real"
	Label string `yaml:"label"`
}

// Dir returns the directory holding the section's files under root.
func (s Section) Dir(root string) string {
	return filepath.Join(root, s.Split, s.Label)
}

// DefaultSections are the four partitions scored by a stock run, in
// report order.
func DefaultSections() []Section {
	return []Section{
		{Split: "train", Label: "fake"},
		{Split: "train", Label: "real"},
		{Split: "test", Label: "fake"},
		{Split: "test", Label: "real"},
	}
}

// ScoredFile pairs a file with the score computed for it
type ScoredFile struct {
	Section

	// Filename is the base name used in the report
	Filename string

	// Path is the full path the image was read from
	Path string

	// Width and Height are the decoded image dimensions
	Width, Height int

	// Score is the high/low frequency energy ratio
	Score float64
}
