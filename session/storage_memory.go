package session

import (
	"context"
	"sync"
)

// MemoryStorage keeps the session pair in process memory. Sessions do not
// survive a restart; it is the default backend and the one tests use.
type MemoryStorage struct {
	mu       sync.Mutex
	token    string
	identity []byte
	present  bool
}

// NewMemoryStorage creates an empty [MemoryStorage].
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

func (m *MemoryStorage) Write(_ context.Context, token string, identity []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.token = token
	m.identity = append([]byte(nil), identity...)
	m.present = true
	return nil
}

func (m *MemoryStorage) Read(_ context.Context) (string, []byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.present || m.token == "" || len(m.identity) == 0 {
		return "", nil, ErrNoSession
	}
	return m.token, append([]byte(nil), m.identity...), nil
}

func (m *MemoryStorage) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.token = ""
	m.identity = nil
	m.present = false
	return nil
}
