// Package imagepkg renders featured images from catalog templates.
//
// Stages run in a fixed order, each a function of the surface, the template
// and earlier stage outputs:
//
//	background -> decorations -> banner -> category -> title -> subtitle -> encode
package imagepkg

import (
	"context"
	"fmt"
	"image"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/youruser/featuregen/internal/templates"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// DefaultCategoryText is drawn when the request has no category.
const DefaultCategoryText = "Featured"

// Request is one render call. Empty override fields fall back to the
// template independently.
type Request struct {
	TemplateID    string   `json:"templateId"`
	CategoryText  string   `json:"categoryText"`
	MainText      string   `json:"mainText"`
	BgImageURL    string   `json:"bgImageUrl"`
	BgImageBase64 string   `json:"bgImageBase64"`
	BannerColor   string   `json:"bannerColor"`
	BannerOpacity *float64 `json:"bannerOpacity"`
	CategoryColor string   `json:"categoryColor"`
	TitleColor    string   `json:"titleColor"`
	LinkURL       string   `json:"linkUrl"`
}

// Layout records what the stages resolved, for callers and tests.
type Layout struct {
	Banner             *Bounds
	CategoryY          float64
	Title              TitleLayout
	BackgroundFallback bool
}

// Result is a finished render.
type Result struct {
	Filename   string
	Bytes      []byte
	TemplateID string
	Width      int
	Height     int
	Layout     Layout
}

// Renderer composes and encodes featured images. Safe for concurrent use;
// each call gets its own surface.
type Renderer struct {
	catalog *templates.Catalog
	fonts   *FontSet
	fetcher *Fetcher
	ids     *snowflake.Node
	log     *zap.Logger
	tracer  trace.Tracer
}

// NewRenderer wires a renderer. A nil fetcher gets the defaults.
func NewRenderer(catalog *templates.Catalog, fonts *FontSet, fetcher *Fetcher, ids *snowflake.Node, log *zap.Logger) *Renderer {
	if fetcher == nil {
		fetcher = NewFetcher(nil)
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Renderer{
		catalog: catalog,
		fonts:   fonts,
		fetcher: fetcher,
		ids:     ids,
		log:     log,
		tracer:  otel.Tracer("github.com/youruser/featuregen/internal/image"),
	}
}

// Render resolves the template, composites every stage and encodes the
// result. It returns either a complete image or an error, never both.
func (r *Renderer) Render(ctx context.Context, req Request) (*Result, error) {
	ctx, span := r.tracer.Start(ctx, "featuregen.render")
	defer span.End()

	if strings.TrimSpace(req.MainText) == "" {
		err := fmt.Errorf("%w: mainText is required", ErrValidation)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	tpl := r.catalog.Resolve(req.TemplateID)
	if req.TemplateID != "" && tpl.ID != req.TemplateID {
		r.log.Debug("unknown template, using default",
			zap.String("requested", req.TemplateID), zap.String("template", tpl.ID))
	}
	span.SetAttributes(attribute.String("template.id", tpl.ID))

	img, layout, err := r.Compose(ctx, tpl, req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	data, err := Encode(img)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	res := &Result{
		Filename:   NewFilename(r.ids),
		Bytes:      data,
		TemplateID: tpl.ID,
		Width:      tpl.Canvas.Width,
		Height:     tpl.Canvas.Height,
		Layout:     layout,
	}
	r.log.Info("rendered featured image",
		zap.String("template", tpl.ID),
		zap.String("filename", res.Filename),
		zap.Int("bytes", len(data)),
		zap.Float64("title_size", layout.Title.Fit.FontSize),
		zap.Int("title_lines", len(layout.Title.Fit.Lines)))
	return res, nil
}

// Compose runs the drawing stages for tpl and returns the unencoded canvas.
func (r *Renderer) Compose(ctx context.Context, tpl templates.Template, req Request) (image.Image, Layout, error) {
	var layout Layout

	// The caller's background is resolved before anything is drawn so a
	// failed fetch aborts without work.
	bg, err := r.stageBackgroundSource(ctx, req)
	if err != nil {
		return nil, layout, err
	}

	s := NewSurface(tpl.Canvas.Width, tpl.Canvas.Height, r.fonts)

	r.stage(ctx, "background", func() {
		layout.BackgroundFallback = drawBackground(s, tpl.Background, bg, r.log)
	})
	r.stage(ctx, "decorations", func() {
		drawDecorations(s, tpl.Decorations, strings.TrimSpace(req.LinkURL), r.log)
	})
	r.stage(ctx, "banner", func() {
		layout.Banner = drawBanner(s, tpl.Banner, req.BannerColor, req.BannerOpacity)
	})
	r.stage(ctx, "category", func() {
		text := strings.TrimSpace(req.CategoryText)
		if text == "" {
			text = DefaultCategoryText
		}
		layout.CategoryY = drawCategory(s, tpl.Category, text, req.CategoryColor, layout.Banner)
	})
	r.stage(ctx, "title", func() {
		layout.Title = layoutTitle(s, tpl.Title, strings.TrimSpace(req.MainText), layout.Banner, layout.CategoryY)
		drawTitle(s, tpl.Title, layout.Title, req.TitleColor)
	})
	r.stage(ctx, "subtitle", func() {
		drawSubtitle(s, tpl.Subtitle)
	})

	return s.Image(), layout, nil
}

func (r *Renderer) stageBackgroundSource(ctx context.Context, req Request) (image.Image, error) {
	ctx, span := r.tracer.Start(ctx, "featuregen.stage.background_source")
	defer span.End()

	img, err := r.fetcher.requestBackground(ctx, req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		r.log.Warn("caller background failed", zap.Error(err))
		return nil, err
	}
	return img, nil
}

func (r *Renderer) stage(ctx context.Context, name string, fn func()) {
	_, span := r.tracer.Start(ctx, "featuregen.stage."+name)
	defer span.End()
	fn()
}
