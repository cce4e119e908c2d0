package templates

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks a template for authoring errors. Rendering assumes every
// catalog template passed this check.
func Validate(t Template) error {
	if strings.TrimSpace(t.ID) == "" {
		return errors.New("empty id")
	}
	if t.Canvas.Width <= 0 || t.Canvas.Height <= 0 {
		return fmt.Errorf("invalid canvas %dx%d", t.Canvas.Width, t.Canvas.Height)
	}
	if err := validateBackground(t.Background); err != nil {
		return fmt.Errorf("background: %w", err)
	}
	for i, d := range t.Decorations {
		if err := validateDecoration(d); err != nil {
			return fmt.Errorf("decoration %d: %w", i, err)
		}
	}
	if t.Banner != nil {
		if err := validateBanner(*t.Banner); err != nil {
			return fmt.Errorf("banner: %w", err)
		}
	}
	if t.Category.Font.Size <= 0 {
		return errors.New("category: font size must be positive")
	}
	if err := checkColor(t.Category.Color); err != nil {
		return fmt.Errorf("category: %w", err)
	}
	if b := t.Category.Badge; b != nil && b.Enabled {
		if err := checkColor(b.Color); err != nil {
			return fmt.Errorf("category badge: %w", err)
		}
	}
	if t.Title.Font.Size <= 0 || t.Title.LineHeight <= 0 {
		return errors.New("title: font size and line height must be positive")
	}
	if err := checkColor(t.Title.Color); err != nil {
		return fmt.Errorf("title: %w", err)
	}
	if s := t.Subtitle; s != nil && s.Enabled {
		if s.Font.Size <= 0 {
			return errors.New("subtitle: font size must be positive")
		}
		if s.Position.X == nil || s.Position.Y == nil {
			return errors.New("subtitle: explicit position required")
		}
		if err := checkColor(s.Color); err != nil {
			return fmt.Errorf("subtitle: %w", err)
		}
	}
	return nil
}

func validateBackground(bg Background) error {
	switch bg.Kind {
	case BackgroundSolid:
		return checkColor(bg.Color)
	case BackgroundGradient:
		if len(bg.Stops) < 2 {
			return errors.New("gradient needs at least two stops")
		}
		prev := 0.0
		for _, s := range bg.Stops {
			if s.Offset < 0 || s.Offset > 1 || s.Offset < prev {
				return fmt.Errorf("gradient stop offset %v out of order or range", s.Offset)
			}
			prev = s.Offset
			if err := checkColor(s.Color); err != nil {
				return err
			}
		}
		return nil
	case BackgroundImage:
		if bg.Path == "" {
			return errors.New("image background without path")
		}
		return nil
	default:
		return fmt.Errorf("unknown kind %q", bg.Kind)
	}
}

func validateDecoration(d Decoration) error {
	switch d.Kind {
	case DecorationCircle:
		if d.Radius <= 0 {
			return errors.New("circle radius must be positive")
		}
	case DecorationRect:
		if d.Width <= 0 || d.Height <= 0 {
			return errors.New("rect size must be positive")
		}
	case DecorationLine:
		if d.LineWidth < 0 {
			return errors.New("negative line width")
		}
	case DecorationQR:
		if d.Width <= 0 {
			return errors.New("qr size must be positive")
		}
	default:
		return fmt.Errorf("unknown kind %q", d.Kind)
	}
	if d.Color == "" {
		return nil
	}
	return checkColor(d.Color)
}

func validateBanner(b Banner) error {
	switch b.Kind {
	case BannerCentered:
		if b.Height <= 0 || b.Padding < 0 {
			return errors.New("centered banner needs positive height")
		}
	case BannerLeft, BannerFloating:
		if b.Width <= 0 || b.Height <= 0 {
			return errors.New("banner size must be positive")
		}
	default:
		return fmt.Errorf("unknown kind %q", b.Kind)
	}
	if b.Opacity != nil && (*b.Opacity < 0 || *b.Opacity > 1) {
		return fmt.Errorf("opacity %v outside [0,1]", *b.Opacity)
	}
	if err := checkColor(b.Color); err != nil {
		return err
	}
	if b.Border != nil {
		if err := checkColor(b.Border.Color); err != nil {
			return fmt.Errorf("border: %w", err)
		}
	}
	if b.Shadow != nil {
		if err := checkColor(b.Shadow.Color); err != nil {
			return fmt.Errorf("shadow: %w", err)
		}
	}
	return nil
}

// checkColor accepts "#rrggbb" and "#rrggbbaa".
func checkColor(s string) error {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return fmt.Errorf("invalid color %q", s)
	}
	for _, r := range hex {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return fmt.Errorf("invalid color %q", s)
		}
	}
	return nil
}
