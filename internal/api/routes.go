package api

import (
	"github.com/gin-gonic/gin"
)

// GeneratedPath is where saved images are served from.
const GeneratedPath = "/generated"

// RegisterRoutes mounts the API and the static output directory on r.
func (s *Server) RegisterRoutes(r *gin.Engine) {
	r.Use(corsMiddleware(s.corsOrigin))

	api := r.Group("/api")
	{
		api.GET("/health", s.health)
		api.GET("/templates", s.listTemplates)
		api.POST("/generate", s.generate)
	}
	r.Static(GeneratedPath, s.store.Dir())
}
