// Package server exposes label verification over HTTP. The transport stays
// thin: request shape and image policy are enforced here, everything else is
// delegated to the verifier.
package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/ppiankov/labelcheck/internal/model"
)

// Verifier defines the interface for verifying one label image
type Verifier interface {
	VerifyImage(ctx context.Context, image []byte, claims model.Claims) (*model.Verdict, error)
}

// Server hosts the verification HTTP API
type Server struct {
	echo     *echo.Echo
	verifier Verifier
	config   model.ServerConfig
}

// New creates a server wired to the given verifier
func New(verifier Verifier, cfg model.ServerConfig) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	// Slack above the image ceiling covers the multipart framing and claims
	e.Use(middleware.BodyLimit(fmt.Sprintf("%d", cfg.MaxImageBytes+1<<20)))
	if cfg.RequestsPerSecond > 0 {
		e.Use(RateLimit(NewClientLimiter(cfg.RequestsPerSecond, cfg.BurstSize)))
	}

	s := &Server{
		echo:     e,
		verifier: verifier,
		config:   cfg,
	}

	e.GET("/healthz", s.handleHealth)
	e.POST("/api/v1/verify", s.handleVerify)

	return s
}

// Start begins serving and blocks until the listener fails or is shut down
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	if err := s.echo.Start(addr); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("start server: %w", err)
	}
	return nil
}

// Shutdown gracefully stops the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
