package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/mbaldwinsmith/mindfulprayerapp-sub000/internal/core"
)

func (s *Server) handleGetDay(w http.ResponseWriter, r *http.Request) {
	key := s.dateParam(w, r)
	if key == "" {
		return
	}
	writeJSON(w, http.StatusOK, s.store.Get(key))
}

type updateRequest struct {
	Date  string `json:"date"`
	Field string `json:"field"`
	Value any    `json:"value"`
}

// handleUpdateDay applies one field-level edit to a day record. The core
// clamps bounded numeric fields on this write path.
func (s *Server) handleUpdateDay(w http.ResponseWriter, r *http.Request) {
	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	key := strings.TrimSpace(req.Date)
	if key == "" {
		key = s.clock.Today()
	}
	if !core.ValidDateKey(key) {
		jsonError(w, "invalid date, expected YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	err := s.store.Upsert(key, func(rec core.DayRecord) (core.DayRecord, error) {
		return core.Apply(rec, req.Field, req.Value)
	})
	if errors.Is(err, core.ErrUnknownField) {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to save day record", "error", err, "date", key, "field", req.Field)
		jsonError(w, "failed to save record", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, s.store.Get(key))
}
