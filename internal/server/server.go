// Package server exposes the component catalogue and the search index over
// HTTP: JSON APIs for component options and search, Bootstrap preview
// pages, health and Prometheus metrics.
//
// Every route is registered under a name in the route table so that the
// search index can offer the navigable pages of the server itself.
package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/conneroisu/bsui/internal/components"
	"github.com/conneroisu/bsui/internal/config"
	"github.com/conneroisu/bsui/internal/logging"
	"github.com/conneroisu/bsui/internal/metrics"
	"github.com/conneroisu/bsui/internal/renderer"
	"github.com/conneroisu/bsui/internal/routes"
	"github.com/conneroisu/bsui/internal/search"
)

const (
	readTimeout     = 10 * time.Second
	writeTimeout    = 30 * time.Second
	shutdownTimeout = 10 * time.Second
)

// Searcher answers search queries.
type Searcher interface {
	Search(ctx context.Context, query string, limit int) []search.Result
}

// Server is the bsui HTTP server.
type Server struct {
	config   config.ServerConfig
	engine   *components.Engine
	renderer *renderer.ComponentRenderer
	search   Searcher
	routes   *routes.Table
	logger   logging.Logger
	started  time.Time

	router       chi.Router
	httpServer   *http.Server
	serverMutex  sync.RWMutex
	shutdownOnce sync.Once
}

// New creates a server and records its routes in table.
func New(cfg config.ServerConfig, engine *components.Engine, searcher Searcher, table *routes.Table, logger logging.Logger) *Server {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	if table == nil {
		table = routes.NewTable()
	}
	s := &Server{
		config:   cfg,
		engine:   engine,
		renderer: renderer.NewComponentRenderer(engine),
		search:   searcher,
		routes:   table,
		logger:   logger.WithComponent("server"),
		started:  time.Now(),
	}
	s.router = s.newRouter()
	return s
}

func (s *Server) newRouter() chi.Router {
	r := chi.NewRouter()
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(s.recoverer)
	r.Use(metrics.Middleware())
	r.Use(s.requestLogger)
	r.Use(securityHeaders)

	s.handle(r, "home", http.MethodGet, "/", s.handleIndex)
	s.handle(r, "components.show", http.MethodGet, "/components/{name}", s.handleComponentPreview)
	s.handle(r, "api.components.index", http.MethodGet, "/api/components", s.handleComponentList)
	s.handle(r, "api.components.show", http.MethodGet, "/api/components/{name}", s.handleComponentOptions)
	s.handle(r, "api.search", http.MethodGet, "/api/search", s.handleSearch)
	s.handle(r, "_health", http.MethodGet, "/health", s.handleHealth)
	s.handle(r, "_metrics", http.MethodGet, "/metrics", promhttp.Handler().ServeHTTP)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		s.writeError(w, r, notFound("no route for "+r.URL.Path))
	})
	return r
}

func (s *Server) handle(r chi.Router, name, method, pattern string, h http.HandlerFunc) {
	r.Method(method, pattern, h)
	s.routes.Add(routes.Route{Name: name, Method: method, Path: pattern})
}

// Handler returns the HTTP handler of the server.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return net.JoinHostPort(s.config.Host, strconv.Itoa(s.config.Port))
}

// Start serves until ctx is cancelled or the server fails.
func (s *Server) Start(ctx context.Context) error {
	s.serverMutex.Lock()
	s.httpServer = &http.Server{
		Addr:         s.Addr(),
		Handler:      s.router,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}
	server := s.httpServer
	s.serverMutex.Unlock()

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info(ctx, "Server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("server error: %w", err)
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return s.Shutdown(shutdownCtx)
	}
}

// Shutdown stops the server gracefully. It is safe to call more than once.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error
	s.shutdownOnce.Do(func() {
		s.serverMutex.RLock()
		server := s.httpServer
		s.serverMutex.RUnlock()
		if server == nil {
			return
		}

		s.logger.Info(ctx, "Shutting down server")
		if err := server.Shutdown(ctx); err != nil {
			shutdownErr = fmt.Errorf("shutdown: %w", err)
		}
	})
	return shutdownErr
}
