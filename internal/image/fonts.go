package imagepkg

import (
	"fmt"

	"github.com/youruser/featuregen/internal/templates"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// FontSet holds the bundled Go font family, parsed once. Safe for
// concurrent use; faces are not, so each surface creates its own.
type FontSet struct {
	regular    *opentype.Font
	bold       *opentype.Font
	italic     *opentype.Font
	boldItalic *opentype.Font
}

// NewFontSet parses the embedded Go fonts.
func NewFontSet() (*FontSet, error) {
	var fs FontSet
	for _, f := range []struct {
		dst  **opentype.Font
		name string
		data []byte
	}{
		{&fs.regular, "regular", goregular.TTF},
		{&fs.bold, "bold", gobold.TTF},
		{&fs.italic, "italic", goitalic.TTF},
		{&fs.boldItalic, "bold italic", gobolditalic.TTF},
	} {
		parsed, err := opentype.Parse(f.data)
		if err != nil {
			return nil, fmt.Errorf("parse %s font: %w", f.name, err)
		}
		*f.dst = parsed
	}
	return &fs, nil
}

// NewFace returns a new face for the given font. The caller owns the face.
func (fs *FontSet) NewFace(want templates.Font) (font.Face, error) {
	f := fs.regular
	switch {
	case want.Bold && want.Italic:
		f = fs.boldItalic
	case want.Bold:
		f = fs.bold
	case want.Italic:
		f = fs.italic
	}

	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    want.Size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("create font face: %w", err)
	}
	return face, nil
}
