package storage

import (
	"path/filepath"
	"testing"
)

func TestSQLiteRoundTrip(t *testing.T) {
	s, err := NewSQLite(filepath.Join(t.TempDir(), "log.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer s.Close()

	blob, err := s.Load()
	if err != nil {
		t.Fatalf("load before save: %v", err)
	}
	if blob != nil {
		t.Fatalf("expected nil before first save, got %s", blob)
	}

	if err := s.Save([]byte(`{"2025-02-20":{}}`)); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := s.Save([]byte(`{}`)); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	blob, err = s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(blob) != `{}` {
		t.Fatalf("expected latest blob, got %s", blob)
	}
}
