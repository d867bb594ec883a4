package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/mbaldwinsmith/mindfulprayerapp-sub000/internal/core"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func jsonError(w http.ResponseWriter, msg string, status int) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// dateParam reads the date query parameter, defaulting to today. The empty
// string return signals an already-written error response.
func (s *Server) dateParam(w http.ResponseWriter, r *http.Request) string {
	key := strings.TrimSpace(r.URL.Query().Get("date"))
	if key == "" {
		return s.clock.Today()
	}
	if !core.ValidDateKey(key) {
		jsonError(w, "invalid date, expected YYYY-MM-DD", http.StatusBadRequest)
		return ""
	}
	return key
}

// yearMonthParams reads year and month query parameters, defaulting to the
// current month.
func (s *Server) yearMonthParams(r *http.Request) (int, int) {
	today, err := core.ParseDateKey(s.clock.Today())
	if err != nil {
		today = time.Now()
	}
	year, month := today.Year(), int(today.Month())

	if v := strings.TrimSpace(r.URL.Query().Get("year")); v != "" {
		if y, err := strconv.Atoi(v); err == nil {
			year = y
		}
	}
	if v := strings.TrimSpace(r.URL.Query().Get("month")); v != "" {
		if m, err := strconv.Atoi(v); err == nil && m >= 1 && m <= 12 {
			month = m
		}
	}
	return year, month
}
