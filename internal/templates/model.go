// Package templates holds the featured-image template catalog.
package templates

// Template is one named, immutable visual configuration.
type Template struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Preview     Preview      `json:"preview"`
	Canvas      Canvas       `json:"canvas"`
	Background  Background   `json:"background"`
	Decorations []Decoration `json:"decorations,omitempty"`
	Banner      *Banner      `json:"banner,omitempty"`
	Category    Category     `json:"category"`
	Title       Title        `json:"title"`
	Subtitle    *Subtitle    `json:"subtitle,omitempty"`
}

// Preview is display-only metadata for template pickers.
type Preview struct {
	BgGradient  [2]string `json:"bgGradient"`
	AccentColor string    `json:"accentColor"`
}

type Canvas struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// BackgroundKind selects how the canvas base is painted.
type BackgroundKind string

const (
	BackgroundSolid    BackgroundKind = "solid"
	BackgroundGradient BackgroundKind = "gradient"
	BackgroundImage    BackgroundKind = "image"
)

// Background is a tagged union keyed by Kind:
//   - solid: Color
//   - gradient: Angle (degrees, 0 = left to right) and Stops
//   - image: Path (relative paths resolve against the catalog asset dir)
type Background struct {
	Kind  BackgroundKind `json:"kind"`
	Color string         `json:"color,omitempty"`
	Angle float64        `json:"angle,omitempty"`
	Stops []ColorStop    `json:"stops,omitempty"`
	Path  string         `json:"path,omitempty"`
}

type ColorStop struct {
	Offset float64 `json:"offset"`
	Color  string  `json:"color"`
}

// DecorationKind selects a decoration shape.
type DecorationKind string

const (
	DecorationCircle DecorationKind = "circle"
	DecorationRect   DecorationKind = "rect"
	DecorationLine   DecorationKind = "line"
	DecorationQR     DecorationKind = "qr"
)

// Decoration is an ornamental shape. Geometry fields used depend on Kind:
//   - circle: X, Y, Radius
//   - rect: X, Y, Width, Height, Radius (0 = square corners)
//   - line: X, Y, X2, Y2, LineWidth
//   - qr: X, Y, Width (square side); encodes the request link, skipped without one
//
// Color accepts "#rrggbb" or "#rrggbbaa"; empty means translucent white.
type Decoration struct {
	Kind      DecorationKind `json:"kind"`
	X         float64        `json:"x"`
	Y         float64        `json:"y"`
	X2        float64        `json:"x2,omitempty"`
	Y2        float64        `json:"y2,omitempty"`
	Width     float64        `json:"width,omitempty"`
	Height    float64        `json:"height,omitempty"`
	Radius    float64        `json:"radius,omitempty"`
	LineWidth float64        `json:"lineWidth,omitempty"`
	Color     string         `json:"color,omitempty"`
}

// BannerKind selects banner geometry and styling.
type BannerKind string

const (
	BannerCentered BannerKind = "centered"
	BannerLeft     BannerKind = "left"
	BannerFloating BannerKind = "floating"
)

// Banner is the semi-opaque panel behind the text block. Centered banners use
// Height and Padding; left and floating banners use X, Y, Width, Height.
type Banner struct {
	Kind    BannerKind `json:"kind"`
	X       float64    `json:"x,omitempty"`
	Y       float64    `json:"y,omitempty"`
	Width   float64    `json:"width,omitempty"`
	Height  float64    `json:"height"`
	Padding float64    `json:"padding,omitempty"`
	Color   string     `json:"color"`
	Opacity *float64   `json:"opacity,omitempty"`
	Radius  float64    `json:"radius,omitempty"`
	Border  *Border    `json:"border,omitempty"`
	Shadow  *Shadow    `json:"shadow,omitempty"`
}

type Border struct {
	Width float64 `json:"width"`
	Color string  `json:"color"`
}

type Shadow struct {
	Blur    float64 `json:"blur"`
	Color   string  `json:"color"`
	OffsetY float64 `json:"offsetY"`
}

// Align is horizontal text alignment relative to the anchor x.
type Align string

const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignRight  Align = "right"
)

// Font describes a face from the bundled Go font family.
type Font struct {
	Size   float64 `json:"size"`
	Bold   bool    `json:"bold,omitempty"`
	Italic bool    `json:"italic,omitempty"`
}

// Position pins text explicitly (X/Y) or anchors it relative to the previous
// stage (OffsetY). Nil fields are resolved by the layout stage.
type Position struct {
	X       *float64 `json:"x,omitempty"`
	Y       *float64 `json:"y,omitempty"`
	OffsetY *float64 `json:"offsetY,omitempty"`
}

type Badge struct {
	Enabled  bool    `json:"enabled"`
	PaddingX float64 `json:"paddingX"`
	PaddingY float64 `json:"paddingY"`
	Color    string  `json:"color"`
	Radius   float64 `json:"radius"`
}

type Category struct {
	Font          Font     `json:"font"`
	Color         string   `json:"color"`
	Uppercase     bool     `json:"uppercase,omitempty"`
	LetterSpacing float64  `json:"letterSpacing,omitempty"`
	Position      Position `json:"position"`
	Align         Align    `json:"align"`
	Badge         *Badge   `json:"badge,omitempty"`
}

// Title is the main text block. MaxWidth >= 0 is an absolute wrap width;
// a negative value means banner width minus |MaxWidth|.
type Title struct {
	Font       Font     `json:"font"`
	Color      string   `json:"color"`
	LineHeight float64  `json:"lineHeight"`
	MaxWidth   float64  `json:"maxWidth"`
	Position   Position `json:"position"`
	Align      Align    `json:"align"`
}

type Subtitle struct {
	Enabled  bool     `json:"enabled"`
	Text     string   `json:"text"`
	Font     Font     `json:"font"`
	Color    string   `json:"color"`
	Position Position `json:"position"`
	Align    Align    `json:"align"`
}

// Summary is the listing view of a template.
type Summary struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Preview     Preview `json:"preview"`
}

// F returns a pointer to v, for optional numeric template fields.
func F(v float64) *float64 { return &v }
