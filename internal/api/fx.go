package api

import (
	"github.com/gin-gonic/gin"
	"github.com/youruser/featuregen/internal/config"
	imagepkg "github.com/youruser/featuregen/internal/image"
	"github.com/youruser/featuregen/internal/storage"
	"github.com/youruser/featuregen/internal/templates"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("api",
	fx.Provide(NewEngine),
	fx.Provide(newConfiguredServer),
	fx.Invoke(func(s *Server, r *gin.Engine) {
		s.RegisterRoutes(r)
	}),
	fx.Invoke(RunHTTP),
)

func newConfiguredServer(cfg config.Config, renderer *imagepkg.Renderer, catalog *templates.Catalog, store *storage.Store, log *zap.Logger) *Server {
	return NewServer(renderer, catalog, store, log.Named("api"), cfg.CORSOrigin)
}
