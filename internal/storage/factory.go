package storage

import (
	"fmt"

	"github.com/mbaldwinsmith/mindfulprayerapp-sub000/internal/config"
	"github.com/mbaldwinsmith/mindfulprayerapp-sub000/internal/store"
)

// CleanupFunc releases backend resources when the process is done.
type CleanupFunc func() error

// OpenBackend builds the persistence collaborator named by the config.
// The returned cleanup is never nil.
func OpenBackend(cfg *config.Config) (store.Persistence, CleanupFunc, error) {
	noop := func() error { return nil }

	switch cfg.Backend {
	case config.FileBackend:
		p, err := NewFile(cfg.DataFile)
		if err != nil {
			return nil, nil, fmt.Errorf("file backend: %w", err)
		}
		return p, noop, nil
	case config.SQLiteBackend:
		p, err := NewSQLite(cfg.SQLiteDBPath)
		if err != nil {
			return nil, nil, fmt.Errorf("sqlite backend: %w", err)
		}
		return p, p.Close, nil
	case config.MemoryBackend:
		return NewMemory(), noop, nil
	}
	return nil, nil, fmt.Errorf("unknown backend %q", cfg.Backend)
}
