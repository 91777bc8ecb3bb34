package session

import (
	"context"
	"errors"
)

// ErrNoSession is returned by [Storage.Read] when no session is persisted.
var ErrNoSession = errors.New("no stored session")

// ErrStorageUnavailable wraps backend failures (I/O, Redis connectivity).
var ErrStorageUnavailable = errors.New("session storage unavailable")

// Storage persists the bearer token together with the encoded identity blob.
// Implementations must write and clear the pair atomically enough that a
// reader never observes a token without its identity: Read returns
// [ErrNoSession] when either half is missing.
type Storage interface {
	// Write persists the token and encoded identity, replacing any
	// previous pair.
	Write(ctx context.Context, token string, identity []byte) error

	// Read returns the stored pair, or [ErrNoSession] when absent or
	// incomplete.
	Read(ctx context.Context) (token string, identity []byte, err error)

	// Clear removes the stored pair. Clearing an empty store is a no-op.
	Clear(ctx context.Context) error
}
