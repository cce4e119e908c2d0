package imagepkg

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"github.com/youruser/featuregen/internal/templates"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Rect is an axis-aligned rectangle in canvas pixels.
type Rect struct {
	X, Y, W, H float64
}

// GradientStop is a resolved color stop.
type GradientStop struct {
	Offset float64
	Color  color.Color
}

// Surface is the drawing capability consumed by the render stages. Each
// call carries all of its paint state.
// Text y coordinates are the top of the line box.
type Surface interface {
	Size() (w, h int)
	FillRect(r Rect, c color.Color)
	FillRoundedRect(r Rect, radius float64, c color.Color)
	StrokeRoundedRect(r Rect, radius, width float64, c color.Color)
	FillCircle(x, y, radius float64, c color.Color)
	StrokeLine(x1, y1, x2, y2, width float64, c color.Color)
	FillLinearGradient(x0, y0, x1, y1 float64, stops []GradientStop)
	DrawShadow(r Rect, radius, blur, offsetY float64, c color.Color)
	DrawImage(img image.Image, x, y int)
	MeasureText(text string, f templates.Font, letterSpacing float64) float64
	DrawText(text string, x, y float64, f templates.Font, c color.Color, align templates.Align, letterSpacing float64)
	Image() image.Image
}

// ggSurface implements Surface on a gg.Context. Not safe for concurrent use;
// every render owns one.
type ggSurface struct {
	dc    *gg.Context
	fonts *FontSet
	faces map[templates.Font]font.Face
}

// NewSurface creates a w x h transparent surface.
func NewSurface(w, h int, fonts *FontSet) Surface {
	return &ggSurface{
		dc:    gg.NewContext(w, h),
		fonts: fonts,
		faces: make(map[templates.Font]font.Face),
	}
}

func (s *ggSurface) Size() (int, int) {
	return s.dc.Width(), s.dc.Height()
}

func (s *ggSurface) FillRect(r Rect, c color.Color) {
	s.dc.SetColor(c)
	s.dc.DrawRectangle(r.X, r.Y, r.W, r.H)
	s.dc.Fill()
}

func (s *ggSurface) FillRoundedRect(r Rect, radius float64, c color.Color) {
	s.dc.SetColor(c)
	s.roundedRectPath(r, radius)
	s.dc.Fill()
}

func (s *ggSurface) StrokeRoundedRect(r Rect, radius, width float64, c color.Color) {
	s.dc.SetColor(c)
	s.dc.SetLineWidth(width)
	s.roundedRectPath(r, radius)
	s.dc.Stroke()
}

func (s *ggSurface) FillCircle(x, y, radius float64, c color.Color) {
	s.dc.SetColor(c)
	s.dc.DrawCircle(x, y, radius)
	s.dc.Fill()
}

func (s *ggSurface) StrokeLine(x1, y1, x2, y2, width float64, c color.Color) {
	s.dc.SetColor(c)
	s.dc.SetLineWidth(width)
	s.dc.DrawLine(x1, y1, x2, y2)
	s.dc.Stroke()
}

func (s *ggSurface) FillLinearGradient(x0, y0, x1, y1 float64, stops []GradientStop) {
	grad := gg.NewLinearGradient(x0, y0, x1, y1)
	for _, st := range stops {
		grad.AddColorStop(st.Offset, st.Color)
	}
	s.dc.SetFillStyle(grad)
	s.dc.DrawRectangle(0, 0, float64(s.dc.Width()), float64(s.dc.Height()))
	s.dc.Fill()
}

// DrawShadow paints a blurred copy of the rounded rect shifted by offsetY on
// its own layer, then composites it over the surface.
func (s *ggSurface) DrawShadow(r Rect, radius, blur, offsetY float64, c color.Color) {
	layer := &ggSurface{dc: gg.NewContext(s.dc.Width(), s.dc.Height())}
	layer.FillRoundedRect(Rect{r.X, r.Y + offsetY, r.W, r.H}, radius, c)

	var img image.Image = layer.dc.Image()
	if blur > 0 {
		img = imaging.Blur(img, blur/2)
	}
	s.dc.DrawImage(img, 0, 0)
}

func (s *ggSurface) DrawImage(img image.Image, x, y int) {
	s.dc.DrawImage(img, x, y)
}

func (s *ggSurface) MeasureText(text string, f templates.Font, letterSpacing float64) float64 {
	s.dc.SetFontFace(s.face(f))
	if letterSpacing == 0 {
		w, _ := s.dc.MeasureString(text)
		return w
	}
	var w float64
	n := 0
	for _, r := range text {
		rw, _ := s.dc.MeasureString(string(r))
		w += rw
		n++
	}
	if n > 1 {
		w += letterSpacing * float64(n-1)
	}
	return w
}

func (s *ggSurface) DrawText(text string, x, y float64, f templates.Font, c color.Color, align templates.Align, letterSpacing float64) {
	face := s.face(f)
	width := s.MeasureText(text, f, letterSpacing)
	switch align {
	case templates.AlignCenter:
		x -= width / 2
	case templates.AlignRight:
		x -= width
	}
	baseline := y + float64(face.Metrics().Ascent)/64

	s.dc.SetFontFace(face)
	s.dc.SetColor(c)
	if letterSpacing == 0 {
		s.dc.DrawString(text, x, baseline)
		return
	}
	for _, r := range text {
		ch := string(r)
		s.dc.DrawString(ch, x, baseline)
		rw, _ := s.dc.MeasureString(ch)
		x += rw + letterSpacing
	}
}

func (s *ggSurface) Image() image.Image {
	return s.dc.Image()
}

func (s *ggSurface) face(f templates.Font) font.Face {
	if face, ok := s.faces[f]; ok {
		return face
	}
	var face font.Face = basicfont.Face7x13
	if s.fonts != nil {
		if nf, err := s.fonts.NewFace(f); err == nil {
			face = nf
		}
	}
	s.faces[f] = face
	return face
}

// roundedRectPath traces four quarter arcs joined by straight edges. A zero
// radius gives a plain rectangle.
func (s *ggSurface) roundedRectPath(r Rect, radius float64) {
	radius = math.Min(radius, math.Min(r.W, r.H)/2)
	if radius <= 0 {
		s.dc.DrawRectangle(r.X, r.Y, r.W, r.H)
		return
	}
	x0, y0, x1, y1 := r.X, r.Y, r.X+r.W, r.Y+r.H
	s.dc.NewSubPath()
	s.dc.MoveTo(x0+radius, y0)
	s.dc.LineTo(x1-radius, y0)
	s.dc.DrawArc(x1-radius, y0+radius, radius, gg.Radians(270), gg.Radians(360))
	s.dc.LineTo(x1, y1-radius)
	s.dc.DrawArc(x1-radius, y1-radius, radius, gg.Radians(0), gg.Radians(90))
	s.dc.LineTo(x0+radius, y1)
	s.dc.DrawArc(x0+radius, y1-radius, radius, gg.Radians(90), gg.Radians(180))
	s.dc.LineTo(x0, y0+radius)
	s.dc.DrawArc(x0+radius, y0+radius, radius, gg.Radians(180), gg.Radians(270))
	s.dc.ClosePath()
}
