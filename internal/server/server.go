// Package server exposes report rendering over HTTP.
package server

import (
	"net/http"
	"time"

	"github.com/arran4/pogreport/internal/config"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// Server is the HTTP API for rendering reports.
type Server struct {
	router chi.Router
	cfg    config.Config
	log    *zap.Logger
	now    func() time.Time
}

// New creates and configures the HTTP server.
func New(cfg config.Config, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Server{cfg: cfg, log: log, now: time.Now}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	r.Get("/health", s.handleHealth)

	r.Group(func(r chi.Router) {
		if s.cfg.Server.APIKey != "" {
			r.Use(AuthMiddleware(s.cfg.Server.APIKey))
		}
		r.Use(BodyLimit(s.cfg.Server.MaxBodyBytes))

		r.Post("/api/render", s.handleRender)
		r.Post("/api/report", s.handleReport)
		r.Post("/api/lint", s.handleLint)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
