// Package kvstore persists user state as one JSON document per key.
// Writes replace the whole document; the last write wins.
package kvstore

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Keys of the documents MindWell keeps.
const (
	KeyUsers         = "users"
	KeySession       = "user"
	KeyMoodHistory   = "moodHistory"
	KeySelfCareTasks = "selfCareTasks"
)

var (
	// ErrNotFound is returned by Load when nothing is stored under a key.
	ErrNotFound   = errors.New("key not found")
	ErrInvalidKey = errors.New("invalid key")
)

// Store abstracts the backend holding the documents.
type Store interface {
	// Load returns the raw document stored under key, or ErrNotFound.
	Load(ctx context.Context, key string) ([]byte, error)
	// Save replaces the document stored under key.
	Save(ctx context.Context, key string, data []byte) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases backend connections.
	Close() error
}

func validateKey(key string) error {
	if key == "" || strings.ContainsAny(key, `/\`) || strings.Contains(key, "..") {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return nil
}
