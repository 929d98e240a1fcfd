// Package server exposes the scheduler over HTTP for the study apps.
package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/studymesh/cpaprep/internal/app"
)

// Server is the HTTP surface over the scheduler services.
type Server struct {
	services *app.Services
	log      *zap.Logger
}

// New creates a Server.
func New(services *app.Services, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{services: services, log: log}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	if s.services.Config.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(s.requestLogger(), gin.Recovery())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api/v1")
	{
		api.GET("/plan", s.getPlan)
		api.POST("/answers", s.postAnswer)
		api.POST("/tasks/attempts", s.postTaskAttempt)
		api.GET("/tasks/unlocks", s.getTaskUnlocks)
		api.GET("/stats", s.getStats)
		api.PUT("/lessons/:id/progress", s.putLessonProgress)
	}

	return r
}

// Run starts the HTTP server on addr and blocks.
func (s *Server) Run(addr string) error {
	return s.Router().Run(addr)
}

// requestLogger logs one structured line per request.
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Info("http request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}
