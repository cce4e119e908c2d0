package imagepkg

import (
	"github.com/youruser/featuregen/internal/templates"
	"go.uber.org/zap"
)

// drawDecorations paints shapes in list order. link feeds qr stamps; a qr
// decoration without a link is skipped.
func drawDecorations(s Surface, decorations []templates.Decoration, link string, log *zap.Logger) {
	for _, d := range decorations {
		c := colorOr(d.Color, defaultDecorationColor)
		switch d.Kind {
		case templates.DecorationCircle:
			s.FillCircle(d.X, d.Y, d.Radius, c)
		case templates.DecorationRect:
			s.FillRoundedRect(Rect{d.X, d.Y, d.Width, d.Height}, d.Radius, c)
		case templates.DecorationLine:
			width := d.LineWidth
			if width <= 0 {
				width = 1
			}
			s.StrokeLine(d.X, d.Y, d.X2, d.Y2, width, c)
		case templates.DecorationQR:
			if link == "" {
				continue
			}
			qr, err := GenerateQRImage(link, int(d.Width))
			if err != nil {
				log.Warn("skipping qr decoration", zap.Error(err))
				continue
			}
			s.DrawImage(qr, int(d.X), int(d.Y))
		}
	}
}
