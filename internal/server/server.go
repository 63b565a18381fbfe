// Package server exposes invoice validation, preview, and rendering
// over HTTP.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rezonia/invoice-maker/internal/model"
	"github.com/rezonia/invoice-maker/internal/pdf"
)

// Config holds server configuration
type Config struct {
	Address      string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Debug        bool
}

// Server represents the HTTP API server
type Server struct {
	config *Config
	router *gin.Engine
	gen    *pdf.Generator
	srv    *http.Server
}

// NewServer creates a new API server. A nil generator gets the default
// layout and currency symbol.
func NewServer(config *Config, gen *pdf.Generator) *Server {
	if !config.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	if config.Debug {
		router.Use(gin.Logger())
	}

	if gen == nil {
		gen = pdf.NewDefaultGenerator()
	}

	s := &Server{
		config: config,
		router: router,
		gen:    gen,
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	// Health check
	s.router.GET("/health", s.handleHealth)

	// API v1
	v1 := s.router.Group("/api/v1")
	{
		v1.GET("/invoices/default", s.handleDefault)
		v1.POST("/validate", s.handleValidate)
		v1.POST("/preview", s.handlePreview)
		v1.POST("/render", s.handleRender)
	}
}

// Run starts the HTTP server
func (s *Server) Run() error {
	s.srv = &http.Server{
		Addr:         s.config.Address,
		Handler:      s.router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
	}
	return s.srv.ListenAndServe()
}

// Shutdown gracefully stops a running server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.srv == nil {
		return nil
	}
	return s.srv.Shutdown(ctx)
}

// Handler returns the http.Handler for use with custom servers
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleDefault(c *gin.Context) {
	c.JSON(http.StatusOK, model.CreateDefault())
}

func (s *Server) handleValidate(c *gin.Context) {
	inv, ok := bindInvoice(c)
	if !ok {
		return
	}

	errs := model.ValidateInvoice(inv)
	c.JSON(http.StatusOK, ValidationResponse{
		Valid:  len(errs) == 0,
		Errors: errs,
	})
}

func (s *Server) handlePreview(c *gin.Context) {
	inv, ok := bindInvoice(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, s.gen.Preview(inv))
}

func (s *Server) handleRender(c *gin.Context) {
	inv, ok := bindInvoice(c)
	if !ok {
		return
	}

	data, err := s.gen.Generate(inv)
	if err != nil {
		var vErr *model.ValidationFailedError
		if errors.As(err, &vErr) {
			c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
				Error:  "validation failed",
				Errors: vErr.Errors,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to generate PDF",
		})
		return
	}

	c.Header("Content-Disposition", "attachment; filename=invoice.pdf")
	c.Data(http.StatusOK, "application/pdf", data)
}

func bindInvoice(c *gin.Context) (*model.Invoice, bool) {
	var inv model.Invoice
	if err := c.ShouldBindJSON(&inv); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid invoice payload",
			Details: err.Error(),
		})
		return nil, false
	}
	return &inv, true
}
