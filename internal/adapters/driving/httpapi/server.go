// Package httpapi exposes the assistant over HTTP for the portfolio
// frontend.
package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/sandipbaste/My-Portfolio/internal/core/domain"
	"github.com/sandipbaste/My-Portfolio/internal/core/ports/driving"
	"github.com/sandipbaste/My-Portfolio/internal/logger"
)

// shutdownTimeout bounds graceful connection draining.
const shutdownTimeout = 10 * time.Second

// Ports are the driving services the API exposes.
type Ports struct {
	// Assistant answers chat messages (required).
	Assistant driving.AssistantService

	// Contact handles contact-form submissions (required).
	Contact driving.ContactService

	// Mode describes the pipeline capability, reported by /health.
	Mode string

	// Stale reports whether the corpus changed since startup. Optional.
	Stale func() bool
}

// Server is the HTTP API server.
type Server struct {
	engine *gin.Engine
	ports  *Ports
}

// NewServer builds the router. allowedOrigins configures CORS; empty
// allows every origin, matching the original public-portfolio deployment.
func NewServer(ports *Ports, allowedOrigins []string) (*Server, error) {
	if ports == nil || ports.Assistant == nil || ports.Contact == nil {
		return nil, errors.New("httpapi: assistant and contact services are required")
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	corsCfg := cors.DefaultConfig()
	if len(allowedOrigins) == 0 {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = allowedOrigins
	}
	corsCfg.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodOptions}
	corsCfg.AllowHeaders = []string{"Origin", "Content-Type"}
	engine.Use(cors.New(corsCfg))

	s := &Server{engine: engine, ports: ports}

	engine.GET("/health", s.handleHealth)
	api := engine.Group("/api")
	api.POST("/chat", s.handleChat)
	api.POST("/contact", s.handleContact)

	return s, nil
}

// Handler returns the underlying http.Handler, used by tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until the context is cancelled, then drains connections.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP API listening on %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	}
}

// chatRequest is the /api/chat request body.
type chatRequest struct {
	Message   string `json:"message" binding:"required"`
	SessionID string `json:"session_id"`
	Voice     bool   `json:"voice"`
}

// contactRequest is the /api/contact request body.
type contactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// handleChat answers one chat message. The pipeline is total, so the
// only error path is a malformed request body.
func (s *Server) handleChat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	}

	envelope := s.ports.Assistant.Answer(c.Request.Context(), domain.AskRequest{
		Message:   req.Message,
		SessionID: req.SessionID,
		Voice:     req.Voice,
	})
	c.JSON(http.StatusOK, envelope)
}

// handleContact validates and submits a contact message.
func (s *Server) handleContact(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name, email and message are required"})
		return
	}

	err := s.ports.Contact.Submit(c.Request.Context(), domain.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Warn("contact submission failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not store your message, please try again"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "received"})
}

// handleHealth reports liveness, pipeline mode and corpus staleness.
func (s *Server) handleHealth(c *gin.Context) {
	stale := false
	if s.ports.Stale != nil {
		stale = s.ports.Stale()
	}
	c.JSON(http.StatusOK, gin.H{
		"status":       "ok",
		"mode":         s.ports.Mode,
		"corpus_stale": stale,
	})
}
