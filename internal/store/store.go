// Package store holds the date-keyed record map and its persistence
// lifecycle: loaded once at open, re-serialized as a single JSON blob after
// every mutation.
package store

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/mbaldwinsmith/mindfulprayerapp-sub000/internal/core"
	applog "github.com/mbaldwinsmith/mindfulprayerapp-sub000/internal/log"
)

// Persistence is the opaque blob storage collaborator. Load returns nil when
// nothing has been saved yet.
type Persistence interface {
	Load() ([]byte, error)
	Save(blob []byte) error
}

// Store owns the in-memory record map. Values stay raw until a read
// normalizes them, so imported entries are kept verbatim. The mutex guards
// against concurrent HTTP readers; there is still only one logical writer.
type Store struct {
	mu      sync.RWMutex
	records core.Snapshot
	persist Persistence
	logger  *applog.Logger
}

// Open loads the persisted store. An unreadable blob is logged and treated
// as an empty store, never as a fatal error; only an I/O failure from the
// persistence collaborator is surfaced.
func Open(p Persistence, logger *applog.Logger) (*Store, error) {
	blob, err := p.Load()
	if err != nil {
		return nil, fmt.Errorf("load store: %w", err)
	}
	records := core.Snapshot{}
	if len(blob) > 0 {
		if err := json.Unmarshal(blob, &records); err != nil {
			logger.Warn("persisted store unreadable, starting empty", "error", err)
			records = core.Snapshot{}
		}
	}
	return &Store{records: records, persist: p, logger: logger}, nil
}

// Get returns the normalized record for the key, synthesizing a blank one
// for dates never written. It does not persist the synthesized record.
func (s *Store) Get(key string) core.DayRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return core.Normalize(s.records[key], key)
}

// Upsert loads and normalizes the current record (or a blank one), applies
// the transform, and persists the whole store. If the transform fails
// nothing is written and the store is unchanged. All other keys are
// preserved as stored.
func (s *Store) Upsert(key string, transform func(core.DayRecord) (core.DayRecord, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := transform(core.Normalize(s.records[key], key))
	if err != nil {
		return err
	}
	raw, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("encode record %s: %w", key, err)
	}
	prev, had := s.records[key]
	s.records[key] = raw
	if err := s.flushLocked(); err != nil {
		if had {
			s.records[key] = prev
		} else {
			delete(s.records, key)
		}
		return err
	}
	return nil
}

// ReplaceAll swaps in a whole new record map, as one atomic replace. Used by
// import and weekly-anchor propagation. Entries are not normalized here;
// reads normalize lazily.
func (s *Store) ReplaceAll(records core.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.records
	s.records = cloneSnapshot(records)
	if err := s.flushLocked(); err != nil {
		s.records = prev
		return err
	}
	return nil
}

// Reset clears every record.
func (s *Store) Reset() error {
	return s.ReplaceAll(core.Snapshot{})
}

// Snapshot returns a copy of the raw record map for the pure aggregation
// functions to work over.
func (s *Store) Snapshot() core.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneSnapshot(s.records)
}

// Len returns the number of stored records.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

func (s *Store) flushLocked() error {
	blob, err := json.MarshalIndent(s.records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode store: %w", err)
	}
	if err := s.persist.Save(blob); err != nil {
		return fmt.Errorf("save store: %w", err)
	}
	return nil
}

func cloneSnapshot(snap core.Snapshot) core.Snapshot {
	out := make(core.Snapshot, len(snap))
	for k, v := range snap {
		out[k] = v
	}
	return out
}
