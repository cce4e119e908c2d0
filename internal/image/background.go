package imagepkg

import (
	"fmt"
	"image"
	"math"

	"github.com/disintegration/imaging"
	"github.com/youruser/featuregen/internal/templates"
	"go.uber.org/zap"
)

// fallbackBackground replaces a template image that cannot be loaded.
var fallbackBackground = templates.Background{
	Kind:  templates.BackgroundGradient,
	Angle: 135,
	Stops: []templates.ColorStop{
		{Offset: 0, Color: "#667eea"},
		{Offset: 1, Color: "#764ba2"},
	},
}

// drawBackground paints the canvas base. A non-nil override (the caller's
// image) always wins over the template background. It reports whether the
// template image failed and the fallback gradient was used.
func drawBackground(s Surface, bg templates.Background, override image.Image, log *zap.Logger) bool {
	if override != nil {
		drawCover(s, override)
		return false
	}

	switch bg.Kind {
	case templates.BackgroundSolid:
		w, h := s.Size()
		s.FillRect(Rect{0, 0, float64(w), float64(h)}, ParseColor(bg.Color))
	case templates.BackgroundGradient:
		drawGradient(s, bg.Angle, bg.Stops)
	case templates.BackgroundImage:
		img, err := loadTemplateImage(bg.Path)
		if err != nil {
			log.Warn("template background unavailable, using fallback gradient",
				zap.String("path", bg.Path), zap.Error(err))
			drawGradient(s, fallbackBackground.Angle, fallbackBackground.Stops)
			return true
		}
		drawCover(s, img)
	}
	return false
}

func loadTemplateImage(path string) (image.Image, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrTemplateAsset, path, err)
	}
	return img, nil
}

func drawGradient(s Surface, angle float64, stops []templates.ColorStop) {
	w, h := s.Size()
	x0, y0, x1, y1 := GradientEndpoints(angle, w, h)
	resolved := make([]GradientStop, 0, len(stops))
	for _, st := range stops {
		resolved = append(resolved, GradientStop{Offset: st.Offset, Color: ParseColor(st.Color)})
	}
	s.FillLinearGradient(x0, y0, x1, y1, resolved)
}

// GradientEndpoints converts an angle in degrees (0 = along +x, 90 = along
// +y) to a start/end pair centered on the canvas midpoint and spanning half
// the canvas width and height in each direction.
func GradientEndpoints(angle float64, w, h int) (x0, y0, x1, y1 float64) {
	rad := angle * math.Pi / 180
	cx, cy := float64(w)/2, float64(h)/2
	dx := math.Cos(rad) * float64(w) / 2
	dy := math.Sin(rad) * float64(h) / 2
	return cx - dx, cy - dy, cx + dx, cy + dy
}

// CoverRect returns the size and offset of an srcW x srcH image uniformly
// scaled to cover dstW x dstH and centered. Offsets are <= 0; the overflow is
// cropped by the canvas.
func CoverRect(srcW, srcH, dstW, dstH int) (w, h, x, y int) {
	scale := math.Max(float64(dstW)/float64(srcW), float64(dstH)/float64(srcH))
	w = int(math.Ceil(float64(srcW) * scale))
	h = int(math.Ceil(float64(srcH) * scale))
	x = (dstW - w) / 2
	y = (dstH - h) / 2
	return w, h, x, y
}

func drawCover(s Surface, img image.Image) {
	cw, ch := s.Size()
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}
	w, h, x, y := CoverRect(b.Dx(), b.Dy(), cw, ch)
	s.DrawImage(imaging.Resize(img, w, h, imaging.Lanczos), x, y)
}
