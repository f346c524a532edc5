// Package persist stores the aggregate state as a single JSON document
// under one fixed key and bridges the state store to durable storage:
// hydrate once at startup, write back after every committed transition.
package persist

import (
	"context"
	"errors"
)

// DocumentKey is the fixed name of the single state document slot.
const DocumentKey = "jarvis-state"

// ErrNotFound is returned when the document slot has never been written.
var ErrNotFound = errors.New("state document not found")

// Storage reads and writes the single string-keyed JSON document. This
// is the only access pattern the core uses.
type Storage interface {
	Read(ctx context.Context) ([]byte, error)
	Write(ctx context.Context, data []byte) error
}
