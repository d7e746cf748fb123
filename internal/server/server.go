// Package server exposes the dashboard over HTTP: a single self-contained
// page and two JSON endpoints the page consumes. Every /api/dashboard request
// runs one full render cycle; the loader cache upstream keeps that cheap.
package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/0Shafa/education-dashboard/internal/dataset"
)

// Server serves the dashboard for one loaded table.
type Server struct {
	table *dataset.Table
}

// New returns a Server over the given table. The table is assumed validated;
// handlers still re-validate so a direct API caller gets a clean 422 instead
// of a panic.
func New(t *dataset.Table) *Server {
	return &Server{table: t}
}

// Router builds the chi router with logging, recovery, and permissive CORS
// so the JSON API is also usable from other origins.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/", s.handleIndex)
	r.Get("/api/meta", s.handleMeta)
	r.Get("/api/dashboard", s.handleDashboard)

	return r
}
