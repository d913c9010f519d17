// Package service hosts the engine behind a stateless HTTP API. Every
// request carries a complete snapshot and every response is computed fresh;
// no state is shared between requests, so requests parallelize freely and
// a caller discards stale responses simply by ignoring them.
package service

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"circuit-planner/internal/symbol"
	"circuit-planner/internal/version"
)

// Server wires the engine endpoints into a gin router.
type Server struct {
	log      *zap.Logger
	registry *symbol.Registry
}

// New creates a server. A nil registry falls back to the built-in symbol
// set; a nil logger falls back to a no-op logger.
func New(log *zap.Logger, registry *symbol.Registry) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	if registry == nil {
		registry = symbol.Builtin()
	}
	return &Server{log: log, registry: registry}
}

// Router builds the HTTP routes.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLog())

	r.GET("/healthz", s.health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api/v1")
	api.POST("/compute", s.compute)
	api.POST("/validate", s.validate)
	api.POST("/schedules", s.schedules)
	api.POST("/schematic", s.schematic)
	return r
}

// health reports liveness and the build version.
func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "version": version.Version})
}

// requestLog tags each request with an ID and logs its outcome.
func (s *Server) requestLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.NewString()
		c.Set("request_id", requestID)
		start := time.Now()

		c.Next()

		s.log.Info("request",
			zap.String("request_id", requestID),
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
		)
	}
}
