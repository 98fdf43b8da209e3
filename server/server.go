package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/gr-siqueira/sport-agent/pkg/domain"
	"github.com/gr-siqueira/sport-agent/pkg/scheduler"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/digest_service.go -pkg mocks -skip-ensure -fmt goimports . DigestService

// Server represents HTTP server instance
type Server struct {
	config  ConfigProvider
	digests DigestService
	metrics prometheus.Gatherer
	version string
	debug   bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// DigestService manages preferences and digests
type DigestService interface {
	Configure(ctx context.Context, prefs domain.Preferences) (string, error)
	UpdatePreferences(ctx context.Context, userID string, prefs domain.Preferences) (domain.Preferences, error)
	GetPreferences(ctx context.Context, userID string) (domain.Preferences, error)
	DeletePreferences(ctx context.Context, userID string) error
	GenerateNow(ctx context.Context, userID string) (domain.DigestResult, error)
	History(ctx context.Context, userID string, limit int) ([]domain.HistoryEntry, error)
	ScheduledJobs() []scheduler.Job
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
}

// New initializes a new server instance, metrics endpoint is served only if gatherer is not nil
func New(cfg ConfigProvider, digests DigestService, gatherer prometheus.Gatherer, version string, debug bool) *Server {
	s := &Server{
		config:  cfg,
		digests: digests,
		metrics: gatherer,
		version: version,
		debug:   debug,
		router:  routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	lgr.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:              listen,
		Handler:           s.router,
		ReadHeaderTimeout: timeout,
		ReadTimeout:       timeout,
		WriteTimeout:      10 * timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		lgr.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		s.lock.Lock()
		defer s.lock.Unlock()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			lgr.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("sport-agent", "gr-siqueira", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(1024 * 1024)) // 1MB
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)
		r.HandleFunc("POST /configure-interests", s.configureHandler)
		r.HandleFunc("POST /generate-digest", s.generateHandler)
		r.HandleFunc("GET /preferences/{user_id}", s.getPreferencesHandler)
		r.HandleFunc("PUT /preferences/{user_id}", s.updatePreferencesHandler)
		r.HandleFunc("DELETE /preferences/{user_id}", s.deletePreferencesHandler)
		r.HandleFunc("GET /digest-history/{user_id}", s.historyHandler)
		r.HandleFunc("GET /scheduled-jobs", s.scheduledJobsHandler)
	})

	s.router.HandleFunc("GET /health", s.statusHandler)
	if s.metrics != nil {
		s.router.Handle("GET /metrics", promhttp.HandlerFor(s.metrics, promhttp.HandlerOpts{}))
	}
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			lgr.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}
