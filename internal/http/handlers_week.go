package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/mbaldwinsmith/mindfulprayerapp-sub000/internal/core"
)

type weekResponse struct {
	Days    []string        `json:"days"`
	Anchors map[string]bool `json:"anchors"`
}

func (s *Server) handleGetWeek(w http.ResponseWriter, r *http.Request) {
	key := s.dateParam(w, r)
	if key == "" {
		return
	}
	week, err := core.WeekRange(key)
	if err != nil {
		jsonError(w, "invalid date, expected YYYY-MM-DD", http.StatusBadRequest)
		return
	}
	snap := s.store.Snapshot()
	anchors := make(map[string]bool, len(core.WeeklyFlags))
	for _, flag := range core.WeeklyFlags {
		anchors[flag] = core.WeeklyAnchorState(snap, week, flag)
	}
	writeJSON(w, http.StatusOK, weekResponse{Days: week, Anchors: anchors})
}

type weekAnchorRequest struct {
	Date  string `json:"date"`
	Flag  string `json:"flag"`
	Value bool   `json:"value"`
}

// handleSetWeekAnchor propagates one weekly flag across the Monday-Sunday
// week containing the given date, as a single store replace.
func (s *Server) handleSetWeekAnchor(w http.ResponseWriter, r *http.Request) {
	var req weekAnchorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	key := strings.TrimSpace(req.Date)
	if key == "" {
		key = s.clock.Today()
	}
	week, err := core.WeekRange(key)
	if err != nil {
		jsonError(w, "invalid date, expected YYYY-MM-DD", http.StatusBadRequest)
		return
	}
	if !slices.Contains(core.WeeklyFlags, req.Flag) {
		jsonError(w, "unknown weekly flag", http.StatusBadRequest)
		return
	}

	next, err := core.PropagateWeeklyAnchor(s.store.Snapshot(), week, req.Flag, req.Value)
	if err != nil {
		jsonError(w, "failed to propagate weekly flag", http.StatusInternalServerError)
		return
	}
	if err := s.store.ReplaceAll(next); err != nil {
		slog.ErrorContext(r.Context(), "Failed to save weekly propagation", "error", err, "flag", req.Flag)
		jsonError(w, "failed to save record", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, weekResponse{
		Days:    week,
		Anchors: map[string]bool{req.Flag: req.Value},
	})
}
