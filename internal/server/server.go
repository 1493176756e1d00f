// Package server exposes the dashboard, its tables and its charts over HTTP.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/mwiater/prodsight/internal/logging"
	"github.com/mwiater/prodsight/internal/theme"
)

// Options configures a Server.
type Options struct {
	Addr    string
	Seed    int64
	Theme   theme.Theme
	Version string
}

// Server holds the router and the underlying http.Server
type Server struct {
	opts       Options
	httpServer *http.Server
	router     *mux.Router
}

// New creates a Server with all routes registered.
func New(opts Options) *Server {
	s := &Server{
		opts:   opts,
		router: mux.NewRouter(),
	}
	s.setupRoutes()
	s.httpServer = &http.Server{
		Addr:         opts.Addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	return s
}

// Router returns the configured router, mainly for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

func (s *Server) setupRoutes() {
	s.router.Use(RequestLogger)

	h := NewHandler(s.opts)
	apiRouter := s.router.PathPrefix("/api").Subrouter()
	h.RegisterRoutes(apiRouter)

	s.router.HandleFunc("/", h.handleDashboard).Methods("GET")
}

// Start listens until Stop is called. It returns http.ErrServerClosed after a clean stop.
func (s *Server) Start() error {
	logging.LogEvent("serving dashboard on %s (seed %d)", s.opts.Addr, s.opts.Seed)
	return s.httpServer.ListenAndServe()
}

// Stop gracefully shuts the server down
func (s *Server) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	logging.LogEvent("shutting down server")
	return s.httpServer.Shutdown(ctx)
}

// Run serves until ctx is cancelled, then shuts down.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() { errCh <- s.Start() }()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		if err := s.Stop(); err != nil {
			return err
		}
		if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}
