// Package http exposes the record store and derivation engine over a small
// JSON API. Handlers are thin: parse, clamp at the edge, call into the core,
// re-derive aggregates. No derived state is cached; everything recomputes
// from the store snapshot.
package http

import (
	"net/http"

	"github.com/mbaldwinsmith/mindfulprayerapp-sub000/internal/core"
	"github.com/mbaldwinsmith/mindfulprayerapp-sub000/internal/store"
)

type Server struct {
	store *store.Store
	clock core.Clock
}

// NewServer wires the API routes and returns a configured *http.Server.
func NewServer(addr string, st *store.Store, clock core.Clock) *http.Server {
	s := &Server{store: st, clock: clock}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /api/day", s.handleGetDay)
	mux.HandleFunc("POST /api/day", s.handleUpdateDay)
	mux.HandleFunc("GET /api/summary", s.handleSummary)
	mux.HandleFunc("GET /api/calendar", s.handleCalendar)
	mux.HandleFunc("GET /api/week", s.handleGetWeek)
	mux.HandleFunc("POST /api/week", s.handleSetWeekAnchor)
	mux.HandleFunc("GET /api/export/json", s.handleExportJSON)
	mux.HandleFunc("GET /api/export/csv", s.handleExportCSV)
	mux.HandleFunc("POST /api/import", s.handleImport)
	mux.HandleFunc("POST /api/reset", s.handleReset)

	return &http.Server{Addr: addr, Handler: withRequestLog(mux)}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok", "records": s.store.Len()})
}
