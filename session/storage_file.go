package session

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Default on-disk key names, matching the keys the back office has always
// persisted under.
const (
	DefaultTokenKey    = "easyvoley_token"
	DefaultIdentityKey = "easyvoley_user"
)

// FileStorage persists the session pair as two files inside a directory,
// named after the configured keys. Files are written 0600 via a rename so a
// crash mid-write never leaves a truncated half.
type FileStorage struct {
	dir         string
	tokenKey    string
	identityKey string
}

// NewFileStorage creates a [FileStorage] rooted at dir. Empty key names fall
// back to [DefaultTokenKey] and [DefaultIdentityKey]. The directory is
// created if missing.
func NewFileStorage(dir, tokenKey, identityKey string) (*FileStorage, error) {
	if dir == "" {
		return nil, errors.New("storage directory empty")
	}
	if tokenKey == "" {
		tokenKey = DefaultTokenKey
	}
	if identityKey == "" {
		identityKey = DefaultIdentityKey
	}

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	return &FileStorage{
		dir:         dir,
		tokenKey:    tokenKey,
		identityKey: identityKey,
	}, nil
}

func (f *FileStorage) tokenPath() string {
	return filepath.Join(f.dir, f.tokenKey)
}

func (f *FileStorage) identityPath() string {
	return filepath.Join(f.dir, f.identityKey)
}

func (f *FileStorage) Write(_ context.Context, token string, identity []byte) error {
	// Identity first: a reader that sees the token also finds the identity.
	if err := writeFileAtomic(f.identityPath(), identity); err != nil {
		return err
	}
	return writeFileAtomic(f.tokenPath(), []byte(token))
}

func (f *FileStorage) Read(_ context.Context) (string, []byte, error) {
	token, err := os.ReadFile(f.tokenPath())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil, ErrNoSession
		}
		return "", nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	identity, err := os.ReadFile(f.identityPath())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil, ErrNoSession
		}
		return "", nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	if len(token) == 0 || len(identity) == 0 {
		return "", nil, ErrNoSession
	}

	return string(token), identity, nil
}

func (f *FileStorage) Clear(_ context.Context) error {
	// Token first so no reader finds a token pointing at a gone identity.
	if err := removeIfPresent(f.tokenPath()); err != nil {
		return err
	}
	return removeIfPresent(f.identityPath())
}

func writeFileAtomic(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return nil
}

func removeIfPresent(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return nil
}
