// Package dataset enumerates and decodes the images of a labeled dataset
// laid out as <root>/<split>/<label>/*.<ext>.
package dataset

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	// Decoders registered with image.Decode
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
	"golang.org/x/image/draw"

	"freqscore/internal/models"
)

// DefaultExtensions matches the extensions scored when none are configured.
var DefaultExtensions = []string{".jpg"}

// IOError reports a directory read or image decode failure. Any IOError
// aborts the walk that produced it.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// Entry is one decoded dataset image
type Entry struct {
	models.Section
	Filename string
	Path     string
	Image    *image.Gray
}

// Walker visits the images of each section under a dataset root.
type Walker struct {
	root       string
	extensions map[string]bool
}

// NewWalker creates a walker over root that accepts files whose extension
// (including the dot, matched case-sensitively) is in extensions. An empty
// list falls back to DefaultExtensions.
func NewWalker(root string, extensions []string) *Walker {
	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}
	exts := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		exts[ext] = true
	}
	return &Walker{root: root, extensions: exts}
}

// Root returns the dataset root directory
func (w *Walker) Root() string {
	return w.root
}

// Walk decodes every accepted file of section in lexical filename order
// and passes it to fn.
//
// The walk stops at the first failure. Directory and decode failures are
// returned as *IOError; errors from fn are returned unchanged.
func (w *Walker) Walk(section models.Section, fn func(Entry) error) error {
	dir := section.Dir(w.root)

	files, err := os.ReadDir(dir)
	if err != nil {
		return &IOError{Op: "read directory", Path: dir, Err: err}
	}

	for _, file := range files {
		if file.IsDir() || !w.accepts(file.Name()) {
			continue
		}

		path := filepath.Join(dir, file.Name())
		img, err := LoadGray(path)
		if err != nil {
			return err
		}

		entry := Entry{
			Section:  section,
			Filename: file.Name(),
			Path:     path,
			Image:    img,
		}
		if err := fn(entry); err != nil {
			return err
		}
	}

	return nil
}

// accepts reports whether name carries a configured extension. A name
// that is nothing but an extension, such as ".jpg", has no extension.
func (w *Walker) accepts(name string) bool {
	ext := filepath.Ext(name)
	return ext != name && w.extensions[ext]
}

// LoadGray decodes the image at path and converts it to 8-bit grayscale.
func LoadGray(path string) (*image.Gray, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Op: "open", Path: path, Err: err}
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, &IOError{Op: "decode", Path: path, Err: err}
	}

	return ToGray(img), nil
}

// Rec. 709 luma weights, scaled by 10000.
const (
	lumaR = 2126
	lumaG = 7152
	lumaB = 722
)

// ToGray returns img as *image.Gray. Other images are flattened to 8-bit
// non-premultiplied RGB and reduced per pixel with Rec. 709 luma weights,
// truncating toward zero; alpha is dropped.
func ToGray(img image.Image) *image.Gray {
	if gray, ok := img.(*image.Gray); ok {
		return gray
	}

	bounds := img.Bounds()
	rect := image.Rect(0, 0, bounds.Dx(), bounds.Dy())
	rgb := image.NewNRGBA(rect)
	draw.Draw(rgb, rect, img, bounds.Min, draw.Src)

	gray := image.NewGray(rect)
	for i := range gray.Pix {
		p := rgb.Pix[4*i : 4*i+3 : 4*i+3]
		luma := lumaR*uint32(p[0]) + lumaG*uint32(p[1]) + lumaB*uint32(p[2])
		gray.Pix[i] = uint8(luma / 10000)
	}
	return gray
}
