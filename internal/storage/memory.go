package storage

import "sync"

// Memory keeps the store blob in process memory. Used by tests and for
// ephemeral runs with no persistence configured.
type Memory struct {
	mu   sync.Mutex
	blob []byte
}

func NewMemory() *Memory {
	return &Memory{}
}

// Seed pre-loads the blob, as if a previous session had saved it.
func (m *Memory) Seed(blob []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.blob = append([]byte(nil), blob...)
}

func (m *Memory) Load() ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.blob == nil {
		return nil, nil
	}
	return append([]byte(nil), m.blob...), nil
}

func (m *Memory) Save(blob []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.blob = append([]byte(nil), blob...)
	return nil
}
