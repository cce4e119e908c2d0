package imagepkg

import (
	"github.com/youruser/featuregen/internal/config"
	"github.com/youruser/featuregen/internal/observability/tracing"
	"github.com/youruser/featuregen/internal/util"
	"go.uber.org/fx"
)

// Module provides the render pipeline. It expects a *templates.Catalog,
// a *snowflake.Node and a *zap.Logger in the graph.
var Module = fx.Module("image",
	fx.Provide(NewFontSet),
	fx.Provide(newConfiguredFetcher),
	fx.Provide(NewRenderer),
)

func newConfiguredFetcher(cfg config.Config) *Fetcher {
	return NewFetcher(tracing.WrapHTTPClient(util.NewHTTPClient(cfg.FetchTimeout, cfg.MaxRedirects)))
}
