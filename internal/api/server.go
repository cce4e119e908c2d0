package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	"github.com/youruser/featuregen/internal/config"
	imagepkg "github.com/youruser/featuregen/internal/image"
	"github.com/youruser/featuregen/internal/logger"
	"github.com/youruser/featuregen/internal/observability/metrics"
	"github.com/youruser/featuregen/internal/storage"
	"github.com/youruser/featuregen/internal/templates"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Renderer is the image pipeline the handlers call.
type Renderer interface {
	Render(ctx context.Context, req imagepkg.Request) (*imagepkg.Result, error)
}

// Server holds handler dependencies.
type Server struct {
	renderer   Renderer
	catalog    *templates.Catalog
	store      *storage.Store
	log        *zap.Logger
	corsOrigin string
	maxBody    int64
}

// NewServer builds a Server. corsOrigin defaults to "*".
func NewServer(renderer Renderer, catalog *templates.Catalog, store *storage.Store, log *zap.Logger, corsOrigin string) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	if corsOrigin == "" {
		corsOrigin = "*"
	}
	return &Server{
		renderer:   renderer,
		catalog:    catalog,
		store:      store,
		log:        log,
		corsOrigin: corsOrigin,
		maxBody:    MaxRequestBytes,
	}
}

// NewEngine returns a gin engine with recovery, request logging and HTTP
// metrics.
func NewEngine(cfg config.Config, log *zap.Logger, ids *snowflake.Node, m *metrics.HTTPMetrics) *gin.Engine {
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), logger.GinMiddleware(log, ids), metrics.GinMiddleware(m))
	return r
}

// RunHTTP serves r on cfg.Addr for the lifetime of the fx app.
func RunHTTP(lc fx.Lifecycle, cfg config.Config, r *gin.Engine, log *zap.Logger) {
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Info("http server listening", zap.String("addr", srv.Addr))
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatal("http server failed", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("shutting down http server")
			return srv.Shutdown(ctx)
		},
	})
}
