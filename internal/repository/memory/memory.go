// Package memory holds the collection repositories backing the domain state
// store. Each repository keeps its whole collection in memory and writes it
// through to a snapshot key after every mutation; on construction it
// rehydrates from the snapshot store, falling back to seed data when the
// key is absent or its payload does not survive validation.
package memory

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/shiftdesk/shiftdesk-go/internal/pkg/snapshot"
)

// persist serializes the whole collection and writes it under key.
func persist(ctx context.Context, store snapshot.Store, key string, collection any) error {
	payload, err := json.Marshal(collection)
	if err != nil {
		return fmt.Errorf("failed to serialize %s: %w", key, err)
	}
	if err := store.Put(ctx, key, payload); err != nil {
		return fmt.Errorf("failed to persist %s: %w", key, err)
	}
	return nil
}
