package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	imagepkg "github.com/youruser/featuregen/internal/image"
	"github.com/youruser/featuregen/internal/logger"
	"go.uber.org/zap"
)

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) listTemplates(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"templates": s.catalog.List()})
}

// MaxRequestBytes bounds a generate body; it leaves room for a base64
// background at the fetch size limit.
const MaxRequestBytes = 32 << 20

// generate renders the request, saves the file and returns its URL.
// Nothing is written when rendering fails.
func (s *Server) generate(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.maxBody)

	var req imagepkg.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.fail(c, http.StatusRequestEntityTooLarge, imagepkg.KindValidation, fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit))
			return
		}
		s.fail(c, http.StatusBadRequest, imagepkg.KindValidation, "invalid request body: "+err.Error())
		return
	}

	res, err := s.renderer.Render(c.Request.Context(), req)
	if err != nil {
		kind := imagepkg.KindOf(err)
		s.fail(c, statusFor(err), kind, err.Error())
		return
	}

	if _, err := s.store.Save(res.Filename, res.Bytes); err != nil {
		s.log.Error("save generated image", zap.String("filename", res.Filename), zap.Error(err))
		s.fail(c, http.StatusInternalServerError, imagepkg.KindInternal, "failed to save image")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"filename": res.Filename,
		"url":      GeneratedPath + "/" + res.Filename,
		"template": res.TemplateID,
	})
}

func (s *Server) fail(c *gin.Context, status int, kind, msg string) {
	fields := []zap.Field{
		zap.String("request_id", logger.RequestID(c)),
		zap.String("kind", kind),
		zap.String("error", msg),
	}
	if status >= http.StatusInternalServerError {
		s.log.Error("generate failed", fields...)
	} else {
		s.log.Info("generate rejected", fields...)
	}
	c.JSON(status, gin.H{"success": false, "error": msg, "kind": kind})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, imagepkg.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, imagepkg.ErrBackgroundFetch):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// corsMiddleware allows origin and answers preflight requests.
func corsMiddleware(origin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("Access-Control-Allow-Origin", origin)
		h.Set("Access-Control-Allow-Methods", strings.Join([]string{http.MethodGet, http.MethodPost, http.MethodOptions}, ", "))
		h.Set("Access-Control-Allow-Headers", "Content-Type, "+logger.RequestIDHeader)
		h.Set("Access-Control-Expose-Headers", logger.RequestIDHeader)
		if origin != "*" {
			h.Add("Vary", "Origin")
		}
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
