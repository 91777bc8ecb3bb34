package session

// State tracks where the session lifecycle currently sits. Transitions are
// driven exclusively by the [Manager]; consumers only read it.
type State uint8

const (
	// StateUnauthenticated means no session exists. Initial state, and the
	// state after logout, forced logout, or a failed restore.
	StateUnauthenticated State = iota

	// StateRestoring means a stored token was found and is being validated
	// against the remote API before the session is trusted.
	StateRestoring

	// StateAuthenticated means a validated token and identity are held.
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateUnauthenticated:
		return "unauthenticated"
	case StateRestoring:
		return "restoring"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// Identity is the persisted view of the signed-in staff member. It carries
// only what permission evaluation and display need; the full account record
// stays on the server.
//
// Identity instances are treated as immutable once handed to the [Manager];
// callers receive copies.
type Identity struct {
	ID    string
	Name  string
	Email string
	Role  string
}
