// Package history implements the persisted, append-only trade ledger.
package history

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"trade-tide-go/internal/clock"
	"trade-tide-go/internal/storage"
)

// StorageKey is the blob key the ledger persists under.
const StorageKey = "trade-history"

// ErrEmptyOffer is returned when a trade is saved with an empty side.
var ErrEmptyOffer = errors.New("both sides of a trade must contain items")

// OfferSummary is one side of a trade flattened for the ledger:
// "Qx Name" item strings plus the side's total value.
type OfferSummary struct {
	Items      []string `json:"items"`
	TotalValue float64  `json:"totalValue"`
}

// TradeRecord is one finalized trade. Records are immutable once created;
// the only mutations the ledger supports are removal and clearing.
type TradeRecord struct {
	ID         string       `json:"id"`
	Date       time.Time    `json:"date"`
	YourOffer  OfferSummary `json:"yourOffer"`
	TheirOffer OfferSummary `json:"theirOffer"`
	Notes      string       `json:"notes,omitempty"`
}

// IDGenerator produces opaque unique trade ids.
type IDGenerator func() string

// Ledger is the user-visible log of finalized trades, most-recent-first,
// written through to the store on every change.
type Ledger struct {
	store  storage.Store
	clock  clock.Clock
	newID  IDGenerator
	logger *zap.Logger
	trades []TradeRecord
}

// NewLedger loads the persisted ledger from the store. An unparseable blob
// is treated as an empty ledger, never as an error.
func NewLedger(store storage.Store, clk clock.Clock, newID IDGenerator, logger *zap.Logger) *Ledger {
	if newID == nil {
		newID = uuid.NewString
	}
	l := &Ledger{store: store, clock: clk, newID: newID, logger: logger}

	blob, ok, err := store.Get(StorageKey)
	if err != nil {
		l.logger.Warn("Failed to read trade history, starting empty", zap.Error(err))
		return l
	}
	if ok {
		if err := json.Unmarshal(blob, &l.trades); err != nil {
			l.logger.Warn("Malformed trade history, starting empty", zap.Error(err))
			l.trades = nil
		}
	}
	return l
}

// Trades returns a copy of the ledger, most recent first.
func (l *Ledger) Trades() []TradeRecord {
	out := make([]TradeRecord, len(l.trades))
	copy(out, l.trades)
	return out
}

// Len returns the number of recorded trades.
func (l *Ledger) Len() int {
	return len(l.trades)
}

// Find returns the record with the given id.
func (l *Ledger) Find(id string) (TradeRecord, bool) {
	for _, trade := range l.trades {
		if trade.ID == id {
			return trade, true
		}
	}
	return TradeRecord{}, false
}

// Add finalizes a trade: it stamps a fresh id and the current time, prepends
// the record, and persists the full ledger. Both sides must contain items.
func (l *Ledger) Add(your, their OfferSummary, notes string) (TradeRecord, error) {
	if len(your.Items) == 0 || len(their.Items) == 0 {
		return TradeRecord{}, ErrEmptyOffer
	}

	record := TradeRecord{
		ID:         l.newID(),
		Date:       l.clock.Now(),
		YourOffer:  your,
		TheirOffer: their,
		Notes:      notes,
	}

	l.trades = append([]TradeRecord{record}, l.trades...)
	l.persist()

	l.logger.Info("Trade recorded",
		zap.String("id", record.ID),
		zap.Float64("your_total", your.TotalValue),
		zap.Float64("their_total", their.TotalValue))
	return record, nil
}

// Remove deletes the record with the given id. A missing id is a no-op.
func (l *Ledger) Remove(id string) {
	for i, trade := range l.trades {
		if trade.ID == id {
			l.trades = append(l.trades[:i], l.trades[i+1:]...)
			l.persist()
			return
		}
	}
}

// Clear empties the ledger.
func (l *Ledger) Clear() {
	l.trades = nil
	l.persist()
}

// persist writes the full ledger back to the store. Writes are
// fire-and-forget: a failure is logged but not propagated.
func (l *Ledger) persist() {
	blob, err := json.Marshal(l.trades)
	if err != nil {
		l.logger.Error("Failed to encode trade history", zap.Error(err))
		return
	}
	if err := l.store.Set(StorageKey, blob); err != nil {
		l.logger.Error("Failed to persist trade history", zap.Error(err))
	}
}
