// Package api exposes the classification service over HTTP.
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/praj33/Law-Agent-by-Grok-sub003/internal/logger"
)

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	ServiceName    string
	ServiceVersion string
	Port           int
	Debug          bool
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
}

// Server wraps the gin engine and the underlying http.Server.
type Server struct {
	cfg    ServerConfig
	log    logger.Logger
	server *http.Server
}

// NewServer builds the HTTP server with health routes and the service routes
// installed by setupRoutes.
func NewServer(cfg ServerConfig, log logger.Logger, setupRoutes func(*gin.Engine)) *Server {
	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLogger(log))

	registerHealthRoutes(router, cfg)
	if setupRoutes != nil {
		setupRoutes(router)
	}

	return &Server{
		cfg: cfg,
		log: log,
		server: &http.Server{
			Addr:         fmt.Sprintf(":%d", cfg.Port),
			Handler:      router,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
		},
	}
}

// Start runs the server until it is shut down.
func (s *Server) Start() error {
	s.log.Info("http server listening",
		logger.String("service", s.cfg.ServiceName),
		logger.Int("port", s.cfg.Port))

	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info("http server shutting down")
	return s.server.Shutdown(ctx)
}

func registerHealthRoutes(router *gin.Engine, cfg ServerConfig) {
	health := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": cfg.ServiceName,
			"version": cfg.ServiceVersion,
		})
	}
	router.GET("/health", health)
	router.GET("/ready", health)
}
