package imagepkg

import (
	"github.com/youruser/featuregen/internal/templates"
)

// DefaultBannerOpacity applies when neither the request nor the template
// sets one.
const DefaultBannerOpacity = 0.85

// Bounds is the banner geometry handed to the text stages.
type Bounds struct {
	X, Y, Width, Height float64
	CenterX             float64
}

// BannerBounds computes the panel geometry for a w x h canvas.
func BannerBounds(b templates.Banner, w, h int) Bounds {
	var r Rect
	switch b.Kind {
	case templates.BannerCentered:
		r = Rect{
			X: b.Padding,
			Y: (float64(h) - b.Height) / 2,
			W: float64(w) - 2*b.Padding,
			H: b.Height,
		}
	default:
		r = Rect{b.X, b.Y, b.Width, b.Height}
	}
	return Bounds{X: r.X, Y: r.Y, Width: r.W, Height: r.H, CenterX: r.X + r.W/2}
}

// drawBanner paints the panel and returns its bounds, or nil when the
// template has no banner.
func drawBanner(s Surface, b *templates.Banner, colorOverride string, opacityOverride *float64) *Bounds {
	if b == nil {
		return nil
	}
	w, h := s.Size()
	bounds := BannerBounds(*b, w, h)
	r := Rect{bounds.X, bounds.Y, bounds.Width, bounds.Height}

	hex := firstNonEmpty(colorOverride, b.Color)
	opacity := DefaultBannerOpacity
	switch {
	case opacityOverride != nil:
		opacity = *opacityOverride
	case b.Opacity != nil:
		opacity = *b.Opacity
	}
	fill := WithOpacity(hex, opacity)

	if b.Kind == templates.BannerCentered {
		s.FillRect(r, fill)
		if b.Border != nil && b.Border.Width > 0 {
			s.StrokeRoundedRect(r, 0, b.Border.Width, ParseColor(b.Border.Color))
		}
		return &bounds
	}

	if b.Shadow != nil {
		s.DrawShadow(r, b.Radius, b.Shadow.Blur, b.Shadow.OffsetY, ParseColor(b.Shadow.Color))
	}
	s.FillRoundedRect(r, b.Radius, fill)
	if b.Border != nil && b.Border.Width > 0 {
		s.StrokeRoundedRect(r, b.Radius, b.Border.Width, ParseColor(b.Border.Color))
	}
	return &bounds
}
