package http

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/mbaldwinsmith/mindfulprayerapp-sub000/internal/export"
)

const maxImportBytes = 10 << 20 // 10 MiB

func (s *Server) handleExportJSON(w http.ResponseWriter, r *http.Request) {
	blob, err := export.ToJSON(s.store.Snapshot())
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to serialize store", "error", err)
		jsonError(w, "failed to serialize store", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="practice-log.json"`)
	_, _ = w.Write(blob)
}

func (s *Server) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="practice-log.csv"`)
	_, _ = io.WriteString(w, export.ToCSV(s.store.Snapshot()))
}

// handleImport replaces the whole store with an uploaded JSON export. A
// rejected payload leaves the store untouched.
func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxImportBytes))
	if err != nil {
		jsonError(w, "failed to read import payload", http.StatusBadRequest)
		return
	}

	snap, err := export.FromJSON(body)
	if errors.Is(err, export.ErrInvalidImport) {
		jsonError(w, "import payload must be a JSON object keyed by date", http.StatusUnprocessableEntity)
		return
	}
	if err != nil {
		jsonError(w, "failed to parse import payload", http.StatusBadRequest)
		return
	}

	if err := s.store.ReplaceAll(snap); err != nil {
		slog.ErrorContext(r.Context(), "Failed to save imported store", "error", err)
		jsonError(w, "failed to save imported store", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"imported": len(snap)})
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Reset(); err != nil {
		slog.ErrorContext(r.Context(), "Failed to reset store", "error", err)
		jsonError(w, "failed to reset store", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"reset": true})
}
