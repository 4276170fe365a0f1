// Package storage provides the persisted key-value blob store backing the
// ledger, notes, and favorites. Values are opaque JSON blobs; callers own
// serialization and treat unparseable blobs as empty collections.
package storage

// Store is a flat key -> blob store. A missing key is not an error.
type Store interface {
	// Get returns the blob for key and whether it was present.
	Get(key string) ([]byte, bool, error)
	// Set writes the full blob for key, replacing any previous value.
	Set(key string, value []byte) error
	// Delete removes key. Deleting an absent key is a no-op.
	Delete(key string) error
}
