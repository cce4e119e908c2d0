package imagepkg

import (
	"strings"

	"github.com/youruser/featuregen/internal/templates"
)

// Anchoring constants used when a text block has no explicit position.
const (
	bannerInset     = 40.0 // left-aligned text inside a banner
	canvasInset     = 60.0 // left-aligned text without a banner
	categoryTopFrac = 0.35 // category y without banner or offset
	defaultWrapFrac = 0.8  // wrap width share of the canvas
)

// TitleLayout is the resolved title block.
type TitleLayout struct {
	X, Y float64
	Fit  FitResult
}

// anchorX resolves the horizontal anchor shared by category and title.
func anchorX(p templates.Position, align templates.Align, banner *Bounds, canvasW int) float64 {
	if p.X != nil {
		return *p.X
	}
	switch align {
	case templates.AlignLeft:
		if banner != nil {
			return banner.X + bannerInset
		}
		return canvasInset
	case templates.AlignRight:
		if banner != nil {
			return banner.X + banner.Width - bannerInset
		}
		return float64(canvasW) - canvasInset
	default:
		if banner != nil {
			return banner.CenterX
		}
		return float64(canvasW) / 2
	}
}

func categoryY(p templates.Position, banner *Bounds, canvasH int) float64 {
	switch {
	case p.Y != nil:
		return *p.Y
	case banner != nil && p.OffsetY != nil:
		return banner.Y + *p.OffsetY
	case banner != nil:
		return banner.Y + bannerInset
	case p.OffsetY != nil:
		return *p.OffsetY
	default:
		return float64(canvasH) * categoryTopFrac
	}
}

// drawCategory paints the category label (and its badge) and returns the
// resolved y for title anchoring.
func drawCategory(s Surface, c templates.Category, text, colorOverride string, banner *Bounds) float64 {
	if c.Uppercase {
		text = strings.ToUpper(text)
	}
	w, h := s.Size()
	x := anchorX(c.Position, c.Align, banner, w)
	y := categoryY(c.Position, banner, h)

	if b := c.Badge; b != nil && b.Enabled {
		tw := s.MeasureText(text, c.Font, c.LetterSpacing)
		left := x
		switch c.Align {
		case templates.AlignCenter:
			left -= tw / 2
		case templates.AlignRight:
			left -= tw
		}
		badge := Rect{
			X: left - b.PaddingX,
			Y: y - b.PaddingY,
			W: tw + 2*b.PaddingX,
			H: c.Font.Size + 2*b.PaddingY,
		}
		s.FillRoundedRect(badge, b.Radius, ParseColor(b.Color))
	}

	col := ParseColor(firstNonEmpty(colorOverride, c.Color))
	s.DrawText(text, x, y, c.Font, col, c.Align, c.LetterSpacing)
	return y
}

// TitleWrapWidth resolves the title wrap width: an explicit positive
// maxWidth, banner width plus a negative maxWidth, else a share of the canvas.
func TitleWrapWidth(t templates.Title, banner *Bounds, canvasW int) float64 {
	switch {
	case t.MaxWidth > 0:
		return t.MaxWidth
	case t.MaxWidth < 0 && banner != nil:
		return banner.Width + t.MaxWidth
	default:
		return float64(canvasW) * defaultWrapFrac
	}
}

// TitleMaxHeight is the block height budget for the fit loop.
func TitleMaxHeight(banner *Bounds, canvasH int) float64 {
	if banner != nil {
		return banner.Height * fitMaxHeight
	}
	return float64(canvasH) * fitNoBanner
}

// layoutTitle fits the title and resolves its position.
func layoutTitle(s Surface, t templates.Title, text string, banner *Bounds, catY float64) TitleLayout {
	w, h := s.Size()
	measure := func(str string, size float64) float64 {
		f := t.Font
		f.Size = size
		return s.MeasureText(str, f, 0)
	}
	fit := Fit(text, FitConstraints{
		FontSize:   t.Font.Size,
		LineHeight: t.LineHeight,
		WrapWidth:  TitleWrapWidth(t, banner, w),
		MaxHeight:  TitleMaxHeight(banner, h),
		MaxLines:   FitMaxLines,
	}, measure)

	x := anchorX(t.Position, t.Align, banner, w)
	var y float64
	switch {
	case t.Position.Y != nil:
		y = *t.Position.Y
	case t.Position.OffsetY != nil:
		y = catY + *t.Position.OffsetY
	case banner != nil:
		y = banner.Y + banner.Height/2 - fit.Height()/2
	default:
		y = float64(h)/2 - fit.Height()/2
	}
	return TitleLayout{X: x, Y: y, Fit: fit}
}

func drawTitle(s Surface, t templates.Title, l TitleLayout, colorOverride string) {
	f := t.Font
	f.Size = l.Fit.FontSize
	col := ParseColor(firstNonEmpty(colorOverride, t.Color))
	for i, line := range l.Fit.Lines {
		s.DrawText(line, l.X, l.Y+float64(i)*l.Fit.LineHeight, f, col, t.Align, 0)
	}
}

func drawSubtitle(s Surface, sub *templates.Subtitle) {
	if sub == nil || !sub.Enabled || sub.Text == "" {
		return
	}
	s.DrawText(sub.Text, *sub.Position.X, *sub.Position.Y, sub.Font, ParseColor(sub.Color), sub.Align, 0)
}
