// Package server serves the portfolio dashboard over HTTP with gin and HTMX fragments.
package server

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio-dashboard/internal/activity"
	"github.com/Zachkp/portfolio-dashboard/internal/dashboard"
	"github.com/Zachkp/portfolio-dashboard/internal/metrics"
	"github.com/Zachkp/portfolio-dashboard/internal/portfolio"
	"github.com/Zachkp/portfolio-dashboard/internal/preference"
	"github.com/Zachkp/portfolio-dashboard/internal/stats"
)

//go:embed templates/*.html
var templateFS embed.FS

// Deps are the collaborators the routes render from. All are required.
type Deps struct {
	Catalog  *portfolio.Catalog
	Activity *activity.Dataset
	Sessions *dashboard.Sessions
	Theme    preference.Store
	Feed     *metrics.Feed
	Animator *metrics.Animator
	Panel    *stats.Panel
}

type Server struct {
	Deps
	engine *gin.Engine
}

var templateFuncs = template.FuncMap{
	"pct": func(f float64) string {
		return fmt.Sprintf("%.1f", f)
	},
	"join": strings.Join,
}

func parseTemplates() (*template.Template, error) {
	tmpl, err := template.New("").Funcs(templateFuncs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return tmpl, nil
}

// New wires the gin engine and every route.
func New(deps Deps) (*Server, error) {
	tmpl, err := parseTemplates()
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.SetHTMLTemplate(tmpl)

	r.Static("/images", "./images")
	r.Static("/static", "./static")

	s := &Server{Deps: deps, engine: r}
	s.routes()
	return s, nil
}

func (s *Server) routes() {
	r := s.engine

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/api/activity", s.handleActivityJSON)
	r.GET("/api/leetcode", s.handleLeetCode)
	r.GET("/api/skills", s.handleSkillsJSON)

	ui := r.Group("/")
	ui.Use(s.sessionMiddleware())

	ui.GET("/", s.handleIndex)
	ui.GET("/tabs/:tab", s.handleTab)
	ui.GET("/activity", s.handleActivity)
	ui.GET("/projects/:id", s.handleSelectProject)
	ui.DELETE("/projects/selection", s.handleClearSelection)
	ui.POST("/theme/toggle", s.handleToggleTheme)
	ui.POST("/contact", s.handleContact)
	ui.GET("/contact/status", s.handleContactStatus)
	ui.GET("/stream/metrics", s.handleMetricsStream)
}

// Handler exposes the engine, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:        addr,
		Handler:     s.engine,
		ReadTimeout: 30 * time.Second,
		IdleTimeout: 60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	evict := time.NewTicker(10 * time.Minute)
	defer evict.Stop()

	for {
		select {
		case err, ok := <-errCh:
			if ok {
				return fmt.Errorf("server error: %w", err)
			}
			return nil
		case <-evict.C:
			s.Sessions.Evict()
		case <-ctx.Done():
			log.Println("Shutting down server...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("server shutdown failed: %w", err)
			}
			s.Sessions.Close()
			return nil
		}
	}
}
