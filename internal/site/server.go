// Package site serves the résumé page and its HTMX fragments over HTTP.
package site

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/resume/internal/career"
	"github.com/Zachkp/resume/internal/resume"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed all:static
var staticFS embed.FS

const shutdownTimeout = 10 * time.Second

// Options tune how the server runs.
type Options struct {
	// Release switches gin into release mode.
	Release bool
	Logger  *slog.Logger
}

// Server renders one résumé.
type Server struct {
	engine  *gin.Engine
	resume  *resume.Resume
	career  *career.Formatter
	about   template.HTML
	banner  string
	metrics *Metrics
	logger  *slog.Logger
}

// New builds the gin engine and its routes. Markdown and templates are
// rendered up front so content errors surface before the listener opens.
func New(r *resume.Resume, f *career.Formatter, opts Options) (*Server, error) {
	if r == nil || f == nil {
		return nil, errors.New("site: resume and career formatter are required")
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Release {
		gin.SetMode(gin.ReleaseMode)
	}

	about, err := r.AboutHTML()
	if err != nil {
		return nil, err
	}
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	s := &Server{
		engine:  gin.New(),
		resume:  r,
		career:  f,
		about:   about,
		banner:  r.Banner(),
		metrics: NewMetrics(f),
		logger:  opts.Logger,
	}
	s.engine.SetHTMLTemplate(tmpl)
	if err := s.setupRoutes(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Server) setupRoutes() error {
	s.engine.Use(gin.Recovery(), requestLogger(s.logger), s.metrics.countViews())

	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		return fmt.Errorf("static assets: %w", err)
	}
	s.engine.StaticFS("/static", http.FS(static))

	s.engine.GET("/", s.handleIndex)
	s.engine.GET("/work-content", s.handleWork)
	s.engine.GET("/education-content", s.handleEducation)
	s.engine.GET("/career", s.handleCareerFragment)
	s.engine.GET("/api/career", s.handleCareerJSON)
	s.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	s.engine.GET("/metrics", gin.WrapH(s.metrics.Handler()))
	return nil
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler { return s.engine }

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		s.logger.Info("Shutdown signal received, stopping server")
	}

	stopCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(stopCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
