package storage

import (
	"context"

	"github.com/youruser/featuregen/internal/config"
	imagepkg "github.com/youruser/featuregen/internal/image"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("storage",
	fx.Provide(newConfiguredStore),
	fx.Invoke(runSweeper),
)

func newConfiguredStore(cfg config.Config, log *zap.Logger) (*Store, error) {
	return New(cfg.OutputDir, imagepkg.FilenamePrefix, log.Named("storage"))
}

func runSweeper(lc fx.Lifecycle, cfg config.Config, store *Store) {
	ctx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go store.RunSweeper(ctx, cfg.CleanupInterval, cfg.FileMaxAge)
			return nil
		},
		OnStop: func(context.Context) error {
			cancel()
			return nil
		},
	})
}
