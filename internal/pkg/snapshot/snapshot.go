// Package snapshot provides the durable key-scoped storage the collection
// repositories write through to. Each collection is serialized whole and
// stored under a fixed key; there is no envelope, version tag or checksum
// around the payload itself.
package snapshot

import "context"

// Store is a key -> payload blob store.
type Store interface {
	// Get returns the payload stored under key, or nil when the key is
	// absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put stores payload under key, replacing any previous payload.
	Put(ctx context.Context, key string, payload []byte) error

	// Delete removes key entirely. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases the underlying storage.
	Close() error
}

// Fixed snapshot keys, one per persisted collection plus the session slot.
const (
	KeyCurrentUser      = "currentUser"
	KeyTimeEntries      = "timeEntries"
	KeyShiftPreferences = "shiftPreferences"
	KeyShifts           = "shifts"
)
