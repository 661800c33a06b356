// Package api serves the schema metrics and the rendered DDL over HTTP.
package api

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/CinisterOne/LWC/internal/metrics"
	"github.com/CinisterOne/LWC/internal/middleware"
	"github.com/CinisterOne/LWC/internal/schema"
)

// TableSource returns the tables to describe. It is called per request so
// that the rendered DDL reflects the current prefix.
type TableSource func() ([]*schema.Table, error)

// Handler serves the schema endpoints.
type Handler struct {
	counters *metrics.SchemaCounters
	tables   TableSource
	logger   *slog.Logger
}

// NewHandler returns a Handler. tables may be nil, in which case /ddl is empty.
func NewHandler(counters *metrics.SchemaCounters, tables TableSource, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{counters: counters, tables: tables, logger: logger}
}

// Router builds the HTTP routes.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(h.logger))
	r.Use(chimw.Recoverer)

	r.Get("/healthz", h.health)
	r.Route("/v1/schema", func(r chi.Router) {
		r.Get("/metrics", h.metrics)
		r.Get("/ddl", h.ddl)
	})
	return r
}

func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) metrics(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.counters.Snapshot())
}

func (h *Handler) ddl(w http.ResponseWriter, r *http.Request) {
	var tables []*schema.Table
	if h.tables != nil {
		var err error
		tables, err = h.tables()
		if err != nil {
			h.logger.Error("render ddl", "error", err,
				"request_id", middleware.RequestIDFromContext(r.Context()))
			writeError(w, err)
			return
		}
	}

	var b strings.Builder
	for _, t := range tables {
		b.WriteString(t.CreateStatement())
		b.WriteString("\n")
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(b.String()))
}
