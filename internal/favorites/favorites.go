// Package favorites tracks the user's starred catalog items.
package favorites

import (
	"encoding/json"

	"go.uber.org/zap"

	"trade-tide-go/internal/storage"
)

// StorageKey is the blob key the favorites persist under.
const StorageKey = "item-favorites"

// Set is the persisted collection of favorited item names. Membership order
// follows first toggle-on, matching the persisted array.
type Set struct {
	store  storage.Store
	logger *zap.Logger
	names  []string
}

// NewSet loads persisted favorites. A malformed blob means none.
func NewSet(store storage.Store, logger *zap.Logger) *Set {
	s := &Set{store: store, logger: logger}

	blob, ok, err := store.Get(StorageKey)
	if err != nil {
		s.logger.Warn("Failed to read favorites, starting empty", zap.Error(err))
		return s
	}
	if ok {
		if err := json.Unmarshal(blob, &s.names); err != nil {
			s.logger.Warn("Malformed favorites blob, starting empty", zap.Error(err))
			s.names = nil
		}
	}
	return s
}

// IsFavorite reports membership for the given item name.
func (s *Set) IsFavorite(name string) bool {
	for _, n := range s.names {
		if n == name {
			return true
		}
	}
	return false
}

// Toggle flips membership for the given item name and reports the new state.
func (s *Set) Toggle(name string) bool {
	for i, n := range s.names {
		if n == name {
			s.names = append(s.names[:i], s.names[i+1:]...)
			s.persist()
			return false
		}
	}
	s.names = append(s.names, name)
	s.persist()
	return true
}

// Names returns the favorited item names in toggle order.
func (s *Set) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

func (s *Set) persist() {
	blob, err := json.Marshal(s.names)
	if err != nil {
		s.logger.Error("Failed to encode favorites", zap.Error(err))
		return
	}
	if err := s.store.Set(StorageKey, blob); err != nil {
		s.logger.Error("Failed to persist favorites", zap.Error(err))
	}
}
