package history

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"trade-tide-go/internal/clock"
	"trade-tide-go/internal/storage"
)

func testTime() time.Time {
	return time.Date(2026, 8, 29, 12, 30, 0, 0, time.UTC)
}

func sequentialIDs() IDGenerator {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("trade-id-%04d", n)
	}
}

func newTestLedger(store storage.Store) *Ledger {
	return NewLedger(store, clock.Fixed{T: testTime()}, sequentialIDs(), zap.NewNop())
}

func yourSide() OfferSummary {
	return OfferSummary{Items: []string{"2x Speedboat"}, TotalValue: 20}
}

func theirSide() OfferSummary {
	return OfferSummary{Items: []string{"1x GoldRod"}, TotalValue: 25}
}

func TestLedger_AddStampsIDAndDate(t *testing.T) {
	ledger := newTestLedger(storage.NewMemory())

	record, err := ledger.Add(yourSide(), theirSide(), "first trade")
	require.NoError(t, err)

	assert.Equal(t, "trade-id-0001", record.ID)
	assert.Equal(t, testTime(), record.Date)
	assert.Equal(t, 20.0, record.YourOffer.TotalValue)
	assert.Equal(t, 25.0, record.TheirOffer.TotalValue)
	assert.Equal(t, "first trade", record.Notes)
}

func TestLedger_RejectsEmptySides(t *testing.T) {
	ledger := newTestLedger(storage.NewMemory())

	_, err := ledger.Add(OfferSummary{}, theirSide(), "")
	assert.ErrorIs(t, err, ErrEmptyOffer)

	_, err = ledger.Add(yourSide(), OfferSummary{}, "")
	assert.ErrorIs(t, err, ErrEmptyOffer)

	assert.Zero(t, ledger.Len(), "a rejected save must not change the ledger")
}

func TestLedger_MostRecentFirst(t *testing.T) {
	ledger := newTestLedger(storage.NewMemory())

	first, err := ledger.Add(yourSide(), theirSide(), "")
	require.NoError(t, err)
	second, err := ledger.Add(yourSide(), theirSide(), "")
	require.NoError(t, err)

	trades := ledger.Trades()
	require.Len(t, trades, 2)
	assert.Equal(t, second.ID, trades[0].ID)
	assert.Equal(t, first.ID, trades[1].ID)
}

func TestLedger_RemoveLeavesOtherEntriesIntact(t *testing.T) {
	ledger := newTestLedger(storage.NewMemory())

	keep, err := ledger.Add(yourSide(), theirSide(), "keep me")
	require.NoError(t, err)
	drop, err := ledger.Add(yourSide(), theirSide(), "drop me")
	require.NoError(t, err)

	ledger.Remove(drop.ID)

	trades := ledger.Trades()
	require.Len(t, trades, 1)
	assert.Equal(t, keep, trades[0], "the surviving record must be untouched")

	// Removing a missing id is a silent no-op.
	ledger.Remove("no-such-id")
	assert.Equal(t, 1, ledger.Len())
}

func TestLedger_Clear(t *testing.T) {
	ledger := newTestLedger(storage.NewMemory())

	_, err := ledger.Add(yourSide(), theirSide(), "")
	require.NoError(t, err)
	ledger.Clear()

	assert.Zero(t, ledger.Len())
}

func TestLedger_PersistsAcrossReload(t *testing.T) {
	store := storage.NewMemory()
	ledger := newTestLedger(store)

	record, err := ledger.Add(yourSide(), theirSide(), "survives reload")
	require.NoError(t, err)

	reloaded := NewLedger(store, clock.Fixed{T: testTime()}, sequentialIDs(), zap.NewNop())
	trades := reloaded.Trades()
	require.Len(t, trades, 1)
	assert.Equal(t, record.ID, trades[0].ID)
	assert.Equal(t, record.YourOffer, trades[0].YourOffer)
	assert.Equal(t, "survives reload", trades[0].Notes)
	assert.True(t, record.Date.Equal(trades[0].Date))
}

func TestLedger_MalformedBlobStartsEmpty(t *testing.T) {
	store := storage.NewMemory()
	require.NoError(t, store.Set(StorageKey, []byte("{not json")))

	ledger := newTestLedger(store)

	assert.Zero(t, ledger.Len())
}

func TestLedger_DefaultIDGeneratorYieldsUniqueIDs(t *testing.T) {
	ledger := NewLedger(storage.NewMemory(), clock.System{}, nil, zap.NewNop())

	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		record, err := ledger.Add(yourSide(), theirSide(), "")
		require.NoError(t, err)
		assert.False(t, seen[record.ID], "duplicate id %s", record.ID)
		seen[record.ID] = true
	}
}
