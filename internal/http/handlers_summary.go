package http

import (
	"fmt"
	"net/http"

	"github.com/mbaldwinsmith/mindfulprayerapp-sub000/internal/core"
)

type summaryResponse struct {
	Today  string      `json:"today"`
	Streak int         `json:"streak"`
	Totals core.Totals `json:"totals"`
}

// handleSummary recomputes the streak and lifetime totals from the full
// store snapshot on every request.
func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	snap := s.store.Snapshot()
	today := s.clock.Today()
	writeJSON(w, http.StatusOK, summaryResponse{
		Today:  today,
		Streak: core.Streak(snap, today),
		Totals: core.SumTotals(snap),
	})
}

type calendarResponse struct {
	Year  int             `json:"year"`
	Month int             `json:"month"`
	Dots  []core.MonthDot `json:"dots"`
}

func (s *Server) handleCalendar(w http.ResponseWriter, r *http.Request) {
	year, month := s.yearMonthParams(r)
	anchor := fmt.Sprintf("%04d-%02d-01", year, month)
	dots, err := core.MonthDots(anchor, s.store.Snapshot())
	if err != nil {
		jsonError(w, "invalid year or month", http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, calendarResponse{Year: year, Month: month, Dots: dots})
}
