package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"moving-quote-agent/internal/application/port/input"
	"moving-quote-agent/internal/application/port/output"
	"moving-quote-agent/internal/usecase/report"
)

// Server exposes the chat flow over HTTP: the embedded chat page, the quote
// endpoint behind it, and PDF report downloads.
type Server struct {
	engine   *gin.Engine
	quotes   input.QuoteService
	renderer *report.Renderer
	logger   output.LoggerPort
	httpSrv  *http.Server
}

type Config struct {
	Addr           string
	Mode           string // gin.DebugMode or gin.ReleaseMode
	RequestTimeout time.Duration
}

func DefaultConfig() Config {
	return Config{
		Addr:           ":8080",
		Mode:           gin.ReleaseMode,
		RequestTimeout: 90 * time.Second,
	}
}

func NewServer(cfg Config, quotes input.QuoteService, renderer *report.Renderer, logger output.LoggerPort) *Server {
	gin.SetMode(cfg.Mode)

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(requestLogger(logger))
	engine.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Content-Type", "Accept", "Origin"},
		MaxAge:       12 * time.Hour,
	}))

	s := &Server{
		engine:   engine,
		quotes:   quotes,
		renderer: renderer,
		logger:   logger,
		httpSrv: &http.Server{
			Addr:    cfg.Addr,
			Handler: engine,
		},
	}

	s.registerRoutes(cfg.RequestTimeout)
	return s
}

func (s *Server) registerRoutes(requestTimeout time.Duration) {
	s.engine.GET("/", s.chatPage)
	s.engine.GET("/health", s.health)

	api := s.engine.Group("/api")
	api.POST("/quotes", withTimeout(requestTimeout, s.requestQuotes))
	api.POST("/report", s.renderReport)
}

// Run blocks until the server stops. ErrServerClosed after a graceful
// shutdown is not reported as a failure.
func (s *Server) Run() error {
	s.logger.Info("HTTP server listening", "addr", s.httpSrv.Addr)
	if err := s.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpSrv.Shutdown(ctx)
}

// Handler exposes the router for httptest.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func requestLogger(logger output.LoggerPort) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Debug("Request handled",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start).String())
	}
}

func withTimeout(d time.Duration, handler gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), d)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		handler(c)
	}
}
