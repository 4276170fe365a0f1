// Package notes implements the fixed-capacity named scratchpad, persisted
// as a single blob under one storage key.
package notes

import (
	"encoding/json"
	"errors"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"trade-tide-go/internal/clock"
	"trade-tide-go/internal/storage"
)

// StorageKey is the blob key the notes persist under.
const StorageKey = "trade-tide-notes"

// MaxNotes is the fixed slot capacity.
const MaxNotes = 10

// MaxNameLength caps note names; longer names are truncated on save.
const MaxNameLength = 50

var (
	// ErrNoAvailableSlots is returned when a new note is created with all
	// slots occupied.
	ErrNoAvailableSlots = errors.New("all note slots are full")
	// ErrBlankName is returned when a note is saved without a name.
	ErrBlankName = errors.New("note name must not be blank")
	// ErrInvalidSlot is returned for slot numbers outside 1..10.
	ErrInvalidSlot = errors.New("note slot must be between 1 and 10")
)

// Note is one saved scratchpad entry. ID is the slot number, 1..MaxNotes;
// at most one note occupies a slot.
type Note struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Content      string    `json:"content"`
	LastModified time.Time `json:"lastModified"`
}

// Store manages the note slots, written through on every change.
type Store struct {
	store  storage.Store
	clock  clock.Clock
	logger *zap.Logger
	notes  []Note
}

// NewStore loads persisted notes. A malformed blob means no notes.
func NewStore(store storage.Store, clk clock.Clock, logger *zap.Logger) *Store {
	s := &Store{store: store, clock: clk, logger: logger}

	blob, ok, err := store.Get(StorageKey)
	if err != nil {
		s.logger.Warn("Failed to read notes, starting empty", zap.Error(err))
		return s
	}
	if ok {
		if err := json.Unmarshal(blob, &s.notes); err != nil {
			s.logger.Warn("Malformed notes blob, starting empty", zap.Error(err))
			s.notes = nil
		}
	}
	return s
}

// List returns all notes ordered by slot number.
func (s *Store) List() []Note {
	out := make([]Note, len(s.notes))
	copy(out, s.notes)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Get returns the note in the given slot.
func (s *Store) Get(slot int) (Note, bool) {
	for _, note := range s.notes {
		if note.ID == slot {
			return note, true
		}
	}
	return Note{}, false
}

// Save upserts the note in the given slot, overwriting any occupant and
// stamping LastModified. The name is trimmed and must not end up blank.
func (s *Store) Save(slot int, name, content string) (Note, error) {
	if slot < 1 || slot > MaxNotes {
		return Note{}, ErrInvalidSlot
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return Note{}, ErrBlankName
	}
	if len(name) > MaxNameLength {
		name = name[:MaxNameLength]
	}

	note := Note{
		ID:           slot,
		Name:         name,
		Content:      content,
		LastModified: s.clock.Now(),
	}

	replaced := false
	for i := range s.notes {
		if s.notes[i].ID == slot {
			s.notes[i] = note
			replaced = true
			break
		}
	}
	if !replaced {
		s.notes = append(s.notes, note)
	}
	s.persist()

	s.logger.Info("Note saved", zap.Int("slot", slot), zap.String("name", name))
	return note, nil
}

// Create saves a new note into the first available slot. With every slot
// occupied it rejects the request instead of overwriting anything.
func (s *Store) Create(name, content string) (Note, error) {
	available := s.AvailableSlots()
	if len(available) == 0 {
		return Note{}, ErrNoAvailableSlots
	}
	return s.Save(available[0], name, content)
}

// Delete removes the note in the given slot. An empty slot is a no-op.
func (s *Store) Delete(slot int) {
	for i := range s.notes {
		if s.notes[i].ID == slot {
			s.notes = append(s.notes[:i], s.notes[i+1:]...)
			s.persist()
			s.logger.Info("Note deleted", zap.Int("slot", slot))
			return
		}
	}
}

// AvailableSlots returns the unoccupied slot numbers in ascending order.
func (s *Store) AvailableSlots() []int {
	used := make(map[int]bool, len(s.notes))
	for _, note := range s.notes {
		used[note.ID] = true
	}
	var out []int
	for slot := 1; slot <= MaxNotes; slot++ {
		if !used[slot] {
			out = append(out, slot)
		}
	}
	return out
}

func (s *Store) persist() {
	blob, err := json.Marshal(s.notes)
	if err != nil {
		s.logger.Error("Failed to encode notes", zap.Error(err))
		return
	}
	if err := s.store.Set(StorageKey, blob); err != nil {
		s.logger.Error("Failed to persist notes", zap.Error(err))
	}
}
