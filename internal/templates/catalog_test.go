package templates

import (
	"path/filepath"
	"strings"
	"testing"
)

func mustDefault(t *testing.T) *Catalog {
	t.Helper()
	c, err := Default("assets")
	if err != nil {
		t.Fatalf("default catalog: %v", err)
	}
	return c
}

func TestResolveUnknownFallsBackToClassic(t *testing.T) {
	c := mustDefault(t)
	for _, id := range []string{"", "doesNotExist", "CLASSIC", " classic"} {
		got := c.Resolve(id)
		if got.ID != DefaultID {
			t.Fatalf("Resolve(%q) = %q, want %q", id, got.ID, DefaultID)
		}
	}
	if got := c.Resolve("modern"); got.ID != "modern" {
		t.Fatalf("Resolve(modern) = %q", got.ID)
	}
}

func TestResolveUnknownIsStableAcrossCatalog(t *testing.T) {
	c := mustDefault(t)
	want := c.Resolve("nope")
	for _, s := range c.List() {
		got := c.Resolve(s.ID + "-missing")
		if got.ID != want.ID || got.Canvas != want.Canvas {
			t.Fatalf("fallback for %q differs: %q", s.ID, got.ID)
		}
	}
}

func TestClassicCanvas(t *testing.T) {
	c := mustDefault(t)
	tpl := c.Resolve(DefaultID)
	if tpl.Canvas.Width != 1200 || tpl.Canvas.Height != 630 {
		t.Fatalf("classic canvas = %dx%d", tpl.Canvas.Width, tpl.Canvas.Height)
	}
}

func TestListOrderAndPreview(t *testing.T) {
	c := mustDefault(t)
	list := c.List()
	builtin := Builtin()
	if len(list) != len(builtin) {
		t.Fatalf("list has %d entries, want %d", len(list), len(builtin))
	}
	for i, s := range list {
		if s.ID != builtin[i].ID {
			t.Fatalf("entry %d = %q, want %q", i, s.ID, builtin[i].ID)
		}
		if s.Preview.BgGradient[0] == "" || s.Preview.AccentColor == "" {
			t.Fatalf("template %q has empty preview", s.ID)
		}
	}
}

func TestImagePathsResolvedAgainstAssetDir(t *testing.T) {
	c, err := Default(filepath.Join("x", "assets"))
	if err != nil {
		t.Fatal(err)
	}
	tpl, ok := c.Lookup("photo")
	if !ok {
		t.Fatal("photo template missing")
	}
	want := filepath.Join("x", "assets", "backgrounds", "texture.png")
	if tpl.Background.Path != want {
		t.Fatalf("path = %q, want %q", tpl.Background.Path, want)
	}
	// builtin list itself stays untouched
	for _, b := range Builtin() {
		if b.ID == "photo" && strings.HasPrefix(b.Background.Path, "x") {
			t.Fatal("builtin template mutated")
		}
	}
}

func TestNewCatalogRejectsInvalid(t *testing.T) {
	base := classic()

	cases := map[string]func(t *Template){
		"empty id":         func(t *Template) { t.ID = "" },
		"zero canvas":      func(t *Template) { t.Canvas.Width = 0 },
		"one stop":         func(t *Template) { t.Background.Stops = t.Background.Stops[:1] },
		"unordered stops":  func(t *Template) { t.Background.Stops = []ColorStop{{0.8, "#000000"}, {0.2, "#ffffff"}} },
		"bad color":        func(t *Template) { t.Title.Color = "white" },
		"opacity range":    func(t *Template) { t.Banner = &Banner{Kind: BannerCentered, Height: 10, Color: "#000000", Opacity: F(1.5)} },
		"unknown banner":   func(t *Template) { t.Banner = &Banner{Kind: "diagonal", Height: 10, Color: "#000000"} },
		"unknown deco":     func(t *Template) { t.Decorations = []Decoration{{Kind: "star"}} },
		"zero title size":  func(t *Template) { t.Title.Font.Size = 0 },
		"subtitle no pos":  func(t *Template) { t.Subtitle = &Subtitle{Enabled: true, Font: Font{Size: 10}, Color: "#ffffff"} },
		"image no path":    func(t *Template) { t.Background = Background{Kind: BackgroundImage} },
		"bad badge color":  func(t *Template) { t.Category.Badge = &Badge{Enabled: true, Color: "#12"} },
		"negative line w":  func(t *Template) { t.Decorations = []Decoration{{Kind: DecorationLine, LineWidth: -1}} },
		"zero circle size": func(t *Template) { t.Decorations = []Decoration{{Kind: DecorationCircle}} },
	}
	for name, mutate := range cases {
		tpl := base
		tpl.Decorations = append([]Decoration(nil), base.Decorations...)
		mutate(&tpl)
		if _, err := NewCatalog("", tpl); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestNewCatalogRejectsDuplicatesAndMissingDefault(t *testing.T) {
	if _, err := NewCatalog("", classic(), classic()); err == nil {
		t.Fatal("expected duplicate id error")
	}
	if _, err := NewCatalog("", modern()); err == nil {
		t.Fatal("expected missing default error")
	}
}
