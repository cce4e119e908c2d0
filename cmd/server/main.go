package main

import (
	"fmt"
	"os"

	"github.com/bwmarrin/snowflake"
	"github.com/youruser/featuregen/internal/api"
	"github.com/youruser/featuregen/internal/config"
	imagepkg "github.com/youruser/featuregen/internal/image"
	"github.com/youruser/featuregen/internal/logger"
	"github.com/youruser/featuregen/internal/observability/metrics"
	"github.com/youruser/featuregen/internal/observability/tracing"
	"github.com/youruser/featuregen/internal/storage"
	"github.com/youruser/featuregen/internal/templates"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

func main() {
	app := fx.New(
		config.Module,
		fx.Provide(NewLogger),
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log.Named("fx")}
		}),
		fx.Invoke(tracing.SetPropagator),
		metrics.Module,
		fx.Provide(RegisterSnowflake),
		fx.Provide(LoadCatalog),
		imagepkg.Module,
		storage.Module,
		api.Module,
	)
	app.Run()
}

func NewLogger(cfg config.Config) (*zap.Logger, error) {
	log, err := logger.New(cfg.LogLevel, cfg.Environment)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return nil, err
	}
	zap.ReplaceGlobals(log)
	return log, nil
}

func RegisterSnowflake(cfg config.Config) (*snowflake.Node, error) {
	return snowflake.NewNode(cfg.NodeID)
}

// LoadCatalog validates the built-in templates at startup; a bad template
// stops the process before it serves traffic.
func LoadCatalog(cfg config.Config, log *zap.Logger) (*templates.Catalog, error) {
	catalog, err := templates.Default(cfg.AssetDir)
	if err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}
	log.Info("templates loaded", zap.Int("count", len(catalog.List())), zap.String("asset_dir", cfg.AssetDir))
	return catalog, nil
}
