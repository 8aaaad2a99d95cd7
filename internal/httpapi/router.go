// Package httpapi wires the HTTP surface of the bank account manager.
// It keeps handlers thin, delegating business rules to the service layer.
package httpapi

import (
	"log/slog"
	"net/http"

	chi "github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/tarun5004/bankd/internal/service/account"
	"github.com/tarun5004/bankd/internal/webui"
)

// Server wires handlers and middleware using Chi.
// It composes read (repo) and write (writer) dependencies through the service.
type Server struct {
	svc  account.Service
	repo account.Repo
	log  *slog.Logger
	rt   *chi.Mux
}

// New constructs the HTTP server with routes and middleware.
// The logger is used by request/response logging and panic recovery.
func New(repo account.Repo, writer account.Writer, logger *slog.Logger) *Server {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(requestLogger(logger))
	r.Use(recoverer(logger))
	r.Use(metricsMiddleware)

	s := &Server{
		svc:  account.New(repo, writer),
		repo: repo,
		log:  logger,
		rt:   r,
	}
	s.routes()
	return s
}

// Handler exposes the configured http.Handler.
func (s *Server) Handler() http.Handler { return s.rt }

// routes declares the public HTTP API endpoints and mounts the form UI.
func (s *Server) routes() {
	// Accounts (v1)
	s.rt.With(requireJSONBody).Post("/v1/accounts", s.createAccount)
	s.rt.Get("/v1/accounts/{number}", s.getAccount)
	s.rt.With(requireJSONBody).Post("/v1/accounts/{number}/deposit", s.deposit)
	s.rt.With(requireJSONBody).Post("/v1/accounts/{number}/withdraw", s.withdraw)
	s.rt.With(requireJSONBody).Patch("/v1/accounts/{number}", s.updateAccount)
	s.rt.Delete("/v1/accounts/{number}", s.deleteAccount)
	// Health and metrics (unversioned)
	s.rt.Get("/healthz", s.healthz)
	s.rt.Get("/readyz", s.readyz)
	s.rt.Handle("/metrics", metricsHandler())
	// Form front-end
	s.rt.Mount("/web", webui.New(s.svc, s.log).Handler())
	s.rt.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/web/", http.StatusFound)
	})
}
