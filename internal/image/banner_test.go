package imagepkg

import (
	"fmt"
	"image"
	"image/color"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/youruser/featuregen/internal/templates"
)

// recordingSurface logs every drawing call; text is measured monospaced.
type recordingSurface struct {
	w, h  int
	calls []string
	fills []color.Color
}

func newRecording(w, h int) *recordingSurface { return &recordingSurface{w: w, h: h} }

func (s *recordingSurface) Size() (int, int) { return s.w, s.h }
func (s *recordingSurface) FillRect(r Rect, c color.Color) {
	s.calls = append(s.calls, fmt.Sprintf("fillRect %v", r))
	s.fills = append(s.fills, c)
}
func (s *recordingSurface) FillRoundedRect(r Rect, radius float64, c color.Color) {
	s.calls = append(s.calls, fmt.Sprintf("fillRounded %v r=%v", r, radius))
	s.fills = append(s.fills, c)
}
func (s *recordingSurface) StrokeRoundedRect(r Rect, radius, width float64, c color.Color) {
	s.calls = append(s.calls, fmt.Sprintf("stroke %v r=%v w=%v", r, radius, width))
}
func (s *recordingSurface) FillCircle(x, y, radius float64, c color.Color) {
	s.calls = append(s.calls, fmt.Sprintf("circle %v,%v r=%v", x, y, radius))
	s.fills = append(s.fills, c)
}
func (s *recordingSurface) StrokeLine(x1, y1, x2, y2, width float64, c color.Color) {
	s.calls = append(s.calls, fmt.Sprintf("line w=%v", width))
	s.fills = append(s.fills, c)
}
func (s *recordingSurface) FillLinearGradient(x0, y0, x1, y1 float64, stops []GradientStop) {
	s.calls = append(s.calls, fmt.Sprintf("gradient %d stops", len(stops)))
}
func (s *recordingSurface) DrawShadow(r Rect, radius, blur, offsetY float64, c color.Color) {
	s.calls = append(s.calls, fmt.Sprintf("shadow blur=%v dy=%v", blur, offsetY))
}
func (s *recordingSurface) DrawImage(img image.Image, x, y int) {
	s.calls = append(s.calls, fmt.Sprintf("image %dx%d at %d,%d", img.Bounds().Dx(), img.Bounds().Dy(), x, y))
}
func (s *recordingSurface) MeasureText(text string, f templates.Font, letterSpacing float64) float64 {
	n := utf8.RuneCountInString(text)
	w := float64(n) * f.Size * 0.5
	if n > 1 {
		w += letterSpacing * float64(n-1)
	}
	return w
}
func (s *recordingSurface) DrawText(text string, x, y float64, f templates.Font, c color.Color, align templates.Align, letterSpacing float64) {
	s.calls = append(s.calls, fmt.Sprintf("text %q at %v,%v size=%v", text, x, y, f.Size))
}
func (s *recordingSurface) Image() image.Image { return image.NewRGBA(image.Rect(0, 0, s.w, s.h)) }

func (s *recordingSurface) kinds() []string {
	out := make([]string, 0, len(s.calls))
	for _, c := range s.calls {
		out = append(out, strings.Fields(c)[0])
	}
	return out
}

func TestBannerBoundsCentered(t *testing.T) {
	b := templates.Banner{Kind: templates.BannerCentered, Height: 330, Padding: 80}
	got := BannerBounds(b, 1200, 630)
	want := Bounds{X: 80, Y: 150, Width: 1040, Height: 330, CenterX: 600}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestBannerBoundsExplicit(t *testing.T) {
	b := templates.Banner{Kind: templates.BannerLeft, X: 80, Y: 110, Width: 780, Height: 400}
	got := BannerBounds(b, 1200, 630)
	if got.X != 80 || got.Y != 110 || got.Width != 780 || got.Height != 400 || got.CenterX != 470 {
		t.Fatalf("got %+v", got)
	}
}

func TestDrawBannerNone(t *testing.T) {
	s := newRecording(100, 100)
	if b := drawBanner(s, nil, "#ff0000", nil); b != nil {
		t.Fatalf("expected nil bounds, got %+v", b)
	}
	if len(s.calls) != 0 {
		t.Fatalf("unexpected calls %v", s.calls)
	}
}

func TestDrawBannerFloatingOrder(t *testing.T) {
	b := &templates.Banner{
		Kind: templates.BannerFloating, X: 10, Y: 20, Width: 300, Height: 100,
		Color: "#ffffff", Radius: 12,
		Shadow: &templates.Shadow{Blur: 20, Color: "#00000066", OffsetY: 8},
		Border: &templates.Border{Width: 2, Color: "#000000"},
	}
	s := newRecording(400, 200)
	drawBanner(s, b, "", nil)
	got := strings.Join(s.kinds(), ",")
	if got != "shadow,fillRounded,stroke" {
		t.Fatalf("draw order = %s", got)
	}
}

func TestDrawBannerOpacityPrecedence(t *testing.T) {
	tplOpacity := 0.4
	reqOpacity := 0.2
	cases := []struct {
		name     string
		tpl, req *float64
		color    string
		wantA    uint8
		wantR    uint8
	}{
		{"default", nil, nil, "", 217, 0x11},
		{"template", &tplOpacity, nil, "", 102, 0x11},
		{"request", &tplOpacity, &reqOpacity, "#ff0000", 51, 0xff},
	}
	for _, tc := range cases {
		b := &templates.Banner{Kind: templates.BannerCentered, Height: 50, Padding: 10, Color: "#112233", Opacity: tc.tpl}
		s := newRecording(200, 100)
		drawBanner(s, b, tc.color, tc.req)
		fill := s.fills[0].(color.NRGBA)
		if fill.A != tc.wantA || fill.R != tc.wantR {
			t.Errorf("%s: fill = %v", tc.name, fill)
		}
	}
}
