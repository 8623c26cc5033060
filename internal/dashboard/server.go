// Package dashboard serves the renewable share dashboard: the HTML page, its
// JSON API, SVG charts and the XLSX export.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/dbsmedya/greenshare/internal/chart"
	"github.com/dbsmedya/greenshare/internal/config"
	"github.com/dbsmedya/greenshare/internal/logger"
	"github.com/dbsmedya/greenshare/internal/source"
)

// shutdownTimeout bounds how long in-flight requests may run after a stop.
const shutdownTimeout = 10 * time.Second

// Server is the dashboard HTTP server.
type Server struct {
	cfg    *config.Config
	cache  *source.Cache
	log    *logger.Logger
	bar    *chart.Scale
	mapped *chart.Scale
	page   *template.Template
	router *gin.Engine
}

// New builds the router for cfg on top of cache.
func New(cfg *config.Config, cache *source.Cache, log *logger.Logger) (*Server, error) {
	if log == nil {
		log = logger.NewNop()
	}

	bar, err := chart.NewScale(cfg.Dashboard.BarScale)
	if err != nil {
		return nil, err
	}
	mapped, err := chart.NewScale(cfg.Dashboard.MapScale)
	if err != nil {
		return nil, err
	}
	page, err := parsePage()
	if err != nil {
		return nil, err
	}

	gin.SetMode(cfg.Server.Mode)
	s := &Server{
		cfg:    cfg,
		cache:  cache,
		log:    log,
		bar:    bar,
		mapped: mapped,
		page:   page,
		router: gin.New(),
	}
	s.routes()
	return s, nil
}

func (s *Server) routes() {
	r := s.router
	r.Use(gin.Recovery())
	if cc, ok := corsConfig(s.cfg.Server.AllowedOrigins); ok {
		r.Use(cors.New(cc))
	}
	r.Use(requestLogger(s.log))

	r.GET("/", s.handleIndex)
	r.GET("/health", s.handleHealth)

	api := r.Group("/api")
	{
		api.GET("/meta", s.handleMeta)
		api.GET("/kpis", s.handleKPIs)
		api.GET("/series", s.handleSeries)
		api.GET("/leaderboard", s.handleLeaderboard)
		api.GET("/map", s.handleMap)
		api.POST("/reload", s.handleReload)
	}

	charts := r.Group("/charts")
	{
		charts.GET("/line.svg", s.handleLineChart)
		charts.GET("/bar.svg", s.handleBarChart)
	}

	r.GET("/export.xlsx", s.handleExport)
}

// corsConfig builds the CORS policy. No origins means no CORS headers at
// all; "*" allows every origin.
func corsConfig(origins []string) (cors.Config, bool) {
	if len(origins) == 0 {
		return cors.Config{}, false
	}
	cc := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type"},
		ExposeHeaders: []string{"Content-Length", "Content-Disposition"},
		MaxAge:        12 * time.Hour,
	}
	for _, o := range origins {
		if o == "*" {
			cc.AllowAllOrigins = true
			return cc, true
		}
	}
	cc.AllowOrigins = origins
	return cc, true
}

// Handler returns the router, e.g. for httptest.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves on the configured address until ctx is cancelled, then shuts
// down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.Server.Addr(),
		Handler:      s.router,
		ReadTimeout:  time.Duration(s.cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(s.cfg.Server.WriteTimeout) * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Infow("Dashboard listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.log.Info("Shutting down dashboard")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
