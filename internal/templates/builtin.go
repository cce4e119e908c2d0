package templates

// Builtin returns the bundled template catalog in display order. The first
// entry is the default.
func Builtin() []Template {
	return []Template{
		classic(),
		modern(),
		minimal(),
		bold(),
		elegant(),
		tech(),
		photo(),
		square(),
	}
}

func classic() Template {
	return Template{
		ID:          "classic",
		Name:        "Classic",
		Description: "Purple gradient with a centered dark banner",
		Preview:     Preview{BgGradient: [2]string{"#667eea", "#764ba2"}, AccentColor: "#ffd166"},
		Canvas:      Canvas{Width: 1200, Height: 630},
		Background: Background{
			Kind:  BackgroundGradient,
			Angle: 135,
			Stops: []ColorStop{{0, "#667eea"}, {1, "#764ba2"}},
		},
		Decorations: []Decoration{
			{Kind: DecorationCircle, X: 1080, Y: 90, Radius: 160, Color: "#ffffff1a"},
			{Kind: DecorationCircle, X: 110, Y: 560, Radius: 110, Color: "#ffffff14"},
		},
		Banner: &Banner{
			Kind:    BannerCentered,
			Height:  330,
			Padding: 80,
			Color:   "#000000",
			Opacity: F(0.45),
		},
		Category: Category{
			Font:          Font{Size: 26, Bold: true},
			Color:         "#ffd166",
			Uppercase:     true,
			LetterSpacing: 3,
			Position:      Position{OffsetY: F(36)},
			Align:         AlignCenter,
		},
		Title: Title{
			Font:       Font{Size: 64, Bold: true},
			Color:      "#ffffff",
			LineHeight: 76,
			MaxWidth:   -120,
			Position:   Position{OffsetY: F(52)},
			Align:      AlignCenter,
		},
	}
}

func modern() Template {
	return Template{
		ID:          "modern",
		Name:        "Modern",
		Description: "Dark slate with a left panel and accent badge",
		Preview:     Preview{BgGradient: [2]string{"#0f172a", "#1e293b"}, AccentColor: "#38bdf8"},
		Canvas:      Canvas{Width: 1200, Height: 630},
		Background:  Background{Kind: BackgroundSolid, Color: "#0f172a"},
		Decorations: []Decoration{
			{Kind: DecorationRect, X: 0, Y: 0, Width: 12, Height: 630, Color: "#38bdf8"},
			{Kind: DecorationCircle, X: 1080, Y: 120, Radius: 70, Color: "#38bdf833"},
			{Kind: DecorationCircle, X: 1000, Y: 480, Radius: 140, Color: "#38bdf814"},
			{Kind: DecorationLine, X: 80, Y: 560, X2: 420, Y2: 560, LineWidth: 4, Color: "#38bdf8"},
		},
		Banner: &Banner{
			Kind:    BannerLeft,
			X:       80,
			Y:       110,
			Width:   780,
			Height:  400,
			Color:   "#1e293b",
			Opacity: F(0.9),
			Border:  &Border{Width: 2, Color: "#38bdf8"},
		},
		Category: Category{
			Font:      Font{Size: 22, Bold: true},
			Color:     "#0f172a",
			Uppercase: true,
			Position:  Position{OffsetY: F(40)},
			Align:     AlignLeft,
			Badge:     &Badge{Enabled: true, PaddingX: 16, PaddingY: 8, Color: "#38bdf8", Radius: 6},
		},
		Title: Title{
			Font:       Font{Size: 56, Bold: true},
			Color:      "#f8fafc",
			LineHeight: 68,
			MaxWidth:   -80,
			Position:   Position{OffsetY: F(72)},
			Align:      AlignLeft,
		},
	}
}

func minimal() Template {
	return Template{
		ID:          "minimal",
		Name:        "Minimal",
		Description: "Plain light canvas, no banner",
		Preview:     Preview{BgGradient: [2]string{"#fafafa", "#f4f4f5"}, AccentColor: "#111827"},
		Canvas:      Canvas{Width: 1200, Height: 630},
		Background:  Background{Kind: BackgroundSolid, Color: "#fafafa"},
		Decorations: []Decoration{
			{Kind: DecorationLine, X: 540, Y: 150, X2: 660, Y2: 150, LineWidth: 3, Color: "#111827"},
		},
		Category: Category{
			Font:          Font{Size: 24},
			Color:         "#6b7280",
			Uppercase:     true,
			LetterSpacing: 4,
			Position:      Position{X: F(600), Y: F(175)},
			Align:         AlignCenter,
		},
		Title: Title{
			Font:       Font{Size: 60, Bold: true},
			Color:      "#111827",
			LineHeight: 72,
			MaxWidth:   960,
			Align:      AlignCenter,
		},
	}
}

func bold() Template {
	return Template{
		ID:          "bold",
		Name:        "Bold",
		Description: "Warm gradient with a floating white card",
		Preview:     Preview{BgGradient: [2]string{"#ff512f", "#dd2476"}, AccentColor: "#dd2476"},
		Canvas:      Canvas{Width: 1200, Height: 630},
		Background: Background{
			Kind:  BackgroundGradient,
			Angle: 90,
			Stops: []ColorStop{{0, "#ff512f"}, {1, "#dd2476"}},
		},
		Decorations: []Decoration{
			{Kind: DecorationRect, X: 920, Y: -80, Width: 360, Height: 360, Radius: 48, Color: "#ffffff22"},
			{Kind: DecorationRect, X: -60, Y: 470, Width: 240, Height: 240, Radius: 32, Color: "#ffffff1a"},
		},
		Banner: &Banner{
			Kind:    BannerFloating,
			X:       100,
			Y:       120,
			Width:   1000,
			Height:  390,
			Color:   "#ffffff",
			Opacity: F(0.96),
			Radius:  24,
			Shadow:  &Shadow{Blur: 30, Color: "#00000066", OffsetY: 12},
		},
		Category: Category{
			Font:      Font{Size: 22, Bold: true},
			Color:     "#dd2476",
			Uppercase: true,
			Position:  Position{OffsetY: F(44)},
			Align:     AlignCenter,
			Badge:     &Badge{Enabled: true, PaddingX: 18, PaddingY: 8, Color: "#ffe4ec", Radius: 16},
		},
		Title: Title{
			Font:       Font{Size: 62, Bold: true},
			Color:      "#1f2937",
			LineHeight: 74,
			MaxWidth:   -140,
			Position:   Position{OffsetY: F(76)},
			Align:      AlignCenter,
		},
	}
}

func elegant() Template {
	return Template{
		ID:          "elegant",
		Name:        "Elegant",
		Description: "Charcoal gradient, gold rules and italic title",
		Preview:     Preview{BgGradient: [2]string{"#232526", "#414345"}, AccentColor: "#d4af37"},
		Canvas:      Canvas{Width: 1200, Height: 630},
		Background: Background{
			Kind:  BackgroundGradient,
			Angle: 180,
			Stops: []ColorStop{{0, "#414345"}, {0.6, "#2d2f30"}, {1, "#232526"}},
		},
		Decorations: []Decoration{
			{Kind: DecorationLine, X: 60, Y: 60, X2: 1140, Y2: 60, LineWidth: 1, Color: "#d4af3780"},
			{Kind: DecorationLine, X: 60, Y: 570, X2: 1140, Y2: 570, LineWidth: 1, Color: "#d4af3780"},
		},
		Banner: &Banner{
			Kind:    BannerCentered,
			Height:  300,
			Padding: 120,
			Color:   "#000000",
			Opacity: F(0.3),
			Border:  &Border{Width: 1, Color: "#d4af37"},
		},
		Category: Category{
			Font:          Font{Size: 22},
			Color:         "#d4af37",
			Uppercase:     true,
			LetterSpacing: 6,
			Position:      Position{OffsetY: F(36)},
			Align:         AlignCenter,
		},
		Title: Title{
			Font:       Font{Size: 58, Italic: true},
			Color:      "#f5f5f5",
			LineHeight: 70,
			MaxWidth:   -100,
			Position:   Position{OffsetY: F(50)},
			Align:      AlignCenter,
		},
		Subtitle: &Subtitle{
			Enabled:  true,
			Text:     "Read the full story",
			Font:     Font{Size: 20, Italic: true},
			Color:    "#d4af37",
			Position: Position{X: F(600), Y: F(528)},
			Align:    AlignCenter,
		},
	}
}

func tech() Template {
	return Template{
		ID:          "tech",
		Name:        "Tech",
		Description: "Editor-dark panel with a grid and a link QR code",
		Preview:     Preview{BgGradient: [2]string{"#0d1117", "#161b22"}, AccentColor: "#238636"},
		Canvas:      Canvas{Width: 1200, Height: 630},
		Background:  Background{Kind: BackgroundSolid, Color: "#0d1117"},
		Decorations: []Decoration{
			{Kind: DecorationLine, X: 0, Y: 157, X2: 1200, Y2: 157, LineWidth: 1, Color: "#ffffff0d"},
			{Kind: DecorationLine, X: 0, Y: 315, X2: 1200, Y2: 315, LineWidth: 1, Color: "#ffffff0d"},
			{Kind: DecorationLine, X: 0, Y: 472, X2: 1200, Y2: 472, LineWidth: 1, Color: "#ffffff0d"},
			{Kind: DecorationLine, X: 960, Y: 0, X2: 960, Y2: 630, LineWidth: 1, Color: "#ffffff0d"},
			{Kind: DecorationQR, X: 1000, Y: 450, Width: 140},
		},
		Banner: &Banner{
			Kind:    BannerLeft,
			X:       60,
			Y:       90,
			Width:   860,
			Height:  450,
			Color:   "#161b22",
			Opacity: F(0.95),
			Radius:  12,
			Border:  &Border{Width: 1, Color: "#30363d"},
		},
		Category: Category{
			Font:      Font{Size: 20, Bold: true},
			Color:     "#ffffff",
			Uppercase: true,
			Position:  Position{OffsetY: F(44)},
			Align:     AlignLeft,
			Badge:     &Badge{Enabled: true, PaddingX: 14, PaddingY: 6, Color: "#238636", Radius: 12},
		},
		Title: Title{
			Font:       Font{Size: 54, Bold: true},
			Color:      "#c9d1d9",
			LineHeight: 66,
			MaxWidth:   -80,
			Position:   Position{OffsetY: F(70)},
			Align:      AlignLeft,
		},
	}
}

func photo() Template {
	return Template{
		ID:          "photo",
		Name:        "Photo",
		Description: "Bundled texture backdrop with a lower floating caption",
		Preview:     Preview{BgGradient: [2]string{"#3a4a5a", "#1c2530"}, AccentColor: "#ffb703"},
		Canvas:      Canvas{Width: 1200, Height: 630},
		Background:  Background{Kind: BackgroundImage, Path: "backgrounds/texture.png"},
		Banner: &Banner{
			Kind:    BannerFloating,
			X:       60,
			Y:       360,
			Width:   1080,
			Height:  220,
			Color:   "#000000",
			Opacity: F(0.6),
			Radius:  16,
			Shadow:  &Shadow{Blur: 20, Color: "#00000080", OffsetY: 8},
		},
		Category: Category{
			Font:      Font{Size: 20, Bold: true},
			Color:     "#ffb703",
			Uppercase: true,
			Position:  Position{OffsetY: F(28)},
			Align:     AlignLeft,
		},
		Title: Title{
			Font:       Font{Size: 46, Bold: true},
			Color:      "#ffffff",
			LineHeight: 56,
			MaxWidth:   -80,
			Position:   Position{OffsetY: F(40)},
			Align:      AlignLeft,
		},
	}
}

func square() Template {
	return Template{
		ID:          "square",
		Name:        "Square",
		Description: "1080x1080 green gradient for social feeds",
		Preview:     Preview{BgGradient: [2]string{"#11998e", "#38ef7d"}, AccentColor: "#ffffff"},
		Canvas:      Canvas{Width: 1080, Height: 1080},
		Background: Background{
			Kind:  BackgroundGradient,
			Angle: 45,
			Stops: []ColorStop{{0, "#11998e"}, {1, "#38ef7d"}},
		},
		Decorations: []Decoration{
			{Kind: DecorationCircle, X: 900, Y: 160, Radius: 200, Color: "#ffffff1a"},
			{Kind: DecorationCircle, X: 160, Y: 940, Radius: 160, Color: "#ffffff14"},
		},
		Banner: &Banner{
			Kind:    BannerCentered,
			Height:  500,
			Padding: 90,
			Color:   "#0b3d2e",
			Opacity: F(0.55),
		},
		Category: Category{
			Font:          Font{Size: 28, Bold: true},
			Color:         "#ffffff",
			Uppercase:     true,
			LetterSpacing: 3,
			Position:      Position{OffsetY: F(50)},
			Align:         AlignCenter,
		},
		Title: Title{
			Font:       Font{Size: 76, Bold: true},
			Color:      "#ffffff",
			LineHeight: 90,
			MaxWidth:   -100,
			Position:   Position{OffsetY: F(70)},
			Align:      AlignCenter,
		},
	}
}
