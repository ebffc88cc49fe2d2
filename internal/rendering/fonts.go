// Package rendering produces the composite share image from the colored
// vector map and the achievement/progress cards.
package rendering

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// FontSet provides the typefaces used by every drawn surface. Faces are
// created per size; the parsed fonts are shared.
type FontSet struct {
	regular *opentype.Font
	bold    *opentype.Font
}

// NewFontSet parses the embedded Go fonts.
func NewFontSet() (*FontSet, error) {
	regular, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse regular font: %w", err)
	}
	bold, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse bold font: %w", err)
	}
	return &FontSet{regular: regular, bold: bold}, nil
}

// Regular returns a regular-weight face at the given point size.
func (f *FontSet) Regular(size float64) (font.Face, error) {
	return newFace(f.regular, size)
}

// Bold returns a bold-weight face at the given point size.
func (f *FontSet) Bold(size float64) (font.Face, error) {
	return newFace(f.bold, size)
}

func newFace(fnt *opentype.Font, size float64) (font.Face, error) {
	face, err := opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create font face: %w", err)
	}
	return face, nil
}
