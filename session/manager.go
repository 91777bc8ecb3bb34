package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// ErrInvalidTransition is returned when a lifecycle method is called in a
// state it does not apply to.
var ErrInvalidTransition = errors.New("invalid session transition")

// Reader is the read-only view of a [Manager] handed to consumers. Only the
// Client that owns the Manager mutates session state; everything else
// observes it through this interface.
type Reader interface {
	State() State
	Token() string
	Identity() (Identity, bool)
}

// Manager drives the session state machine:
//
//	Unauthenticated --BeginRestore--> Restoring --CompleteRestore--> Authenticated
//	Unauthenticated --Establish-----> Authenticated
//	any state ------Clear-----------> Unauthenticated
//
// Every transition that changes what is trusted also updates [Storage], so
// memory and the durable pair never disagree for longer than one call.
type Manager struct {
	mu       sync.RWMutex
	state    State
	token    string
	identity Identity
	storage  Storage
}

// NewManager creates a [Manager] in [StateUnauthenticated]. A nil storage
// falls back to an in-process [MemoryStorage].
func NewManager(storage Storage) *Manager {
	if storage == nil {
		storage = NewMemoryStorage()
	}
	return &Manager{
		state:   StateUnauthenticated,
		storage: storage,
	}
}

// State returns the current lifecycle state.
func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// Token returns the held bearer token, empty outside Authenticated and
// Restoring.
func (m *Manager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token
}

// Identity returns a copy of the held identity and whether one is held.
func (m *Manager) Identity() (Identity, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.state == StateUnauthenticated {
		return Identity{}, false
	}
	return m.identity, true
}

// Establish installs a fresh session from a successful login or registration
// and persists it. Valid from any state; an existing session is replaced.
func (m *Manager) Establish(ctx context.Context, token string, identity Identity) error {
	if token == "" {
		return errors.New("empty session token")
	}

	encoded, err := Encode(&identity)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.storage.Write(ctx, token, encoded); err != nil {
		return err
	}

	m.state = StateAuthenticated
	m.token = token
	m.identity = identity
	return nil
}

// BeginRestore moves Unauthenticated to Restoring by loading the stored
// pair. The returned token and identity are tentative: the caller must
// validate them remotely and then call [Manager.CompleteRestore] or
// [Manager.AbortRestore]. A missing or corrupt pair clears storage and
// leaves the state Unauthenticated.
func (m *Manager) BeginRestore(ctx context.Context) (string, Identity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != StateUnauthenticated {
		return "", Identity{}, fmt.Errorf("%w: restore from %s", ErrInvalidTransition, m.state)
	}

	token, encoded, err := m.storage.Read(ctx)
	if err != nil {
		if !errors.Is(err, ErrNoSession) {
			return "", Identity{}, err
		}
		return "", Identity{}, ErrNoSession
	}

	identity, err := Decode(encoded)
	if err != nil {
		// Corrupt blob: drop it rather than retrying forever.
		if clearErr := m.storage.Clear(ctx); clearErr != nil {
			return "", Identity{}, clearErr
		}
		return "", Identity{}, fmt.Errorf("stored identity corrupt: %w", err)
	}

	m.state = StateRestoring
	m.token = token
	m.identity = *identity
	return token, *identity, nil
}

// CompleteRestore finishes a restore with the identity the remote API
// confirmed, persisting the refreshed copy alongside the existing token.
func (m *Manager) CompleteRestore(ctx context.Context, identity Identity) error {
	encoded, err := Encode(&identity)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != StateRestoring {
		return fmt.Errorf("%w: complete restore from %s", ErrInvalidTransition, m.state)
	}

	if err := m.storage.Write(ctx, m.token, encoded); err != nil {
		return err
	}

	m.state = StateAuthenticated
	m.identity = identity
	return nil
}

// AbortRestore abandons a restore whose token the remote API rejected,
// clearing storage and returning to Unauthenticated.
func (m *Manager) AbortRestore(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != StateRestoring {
		return fmt.Errorf("%w: abort restore from %s", ErrInvalidTransition, m.state)
	}

	err := m.storage.Clear(ctx)
	m.state = StateUnauthenticated
	m.token = ""
	m.identity = Identity{}
	return err
}

// Clear drops any session from any state, clearing storage. The returned
// bool reports whether a session was actually dropped, so a 401 arriving
// after logout stays a no-op for callers firing expiry hooks.
func (m *Manager) Clear(ctx context.Context) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	dropped := m.state != StateUnauthenticated

	err := m.storage.Clear(ctx)
	m.state = StateUnauthenticated
	m.token = ""
	m.identity = Identity{}
	return dropped, err
}
