package export

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trade-tide-go/internal/history"
)

func sampleTrade() history.TradeRecord {
	return history.TradeRecord{
		ID:   "a1b2c3d4-e5f6-7890-abcd-ef0123456789",
		Date: time.Date(2026, 8, 29, 14, 5, 9, 0, time.UTC),
		YourOffer: history.OfferSummary{
			Items:      []string{"2x Speedboat"},
			TotalValue: 20,
		},
		TheirOffer: history.OfferSummary{
			Items:      []string{"1x GoldRod"},
			TotalValue: 25,
		},
	}
}

func TestWriteTrade_HeaderAndRow(t *testing.T) {
	var buf strings.Builder
	require.NoError(t, WriteTrade(&buf, sampleTrade()))

	lines := strings.Split(buf.String(), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Date,Your Items,Your Total Value,Their Items,Their Total Value,Notes", lines[0])
	assert.Equal(t, `"2026-08-29 14:05:09","2x Speedboat","20","1x GoldRod","25",""`, lines[1])
}

func TestWriteTrade_JoinsMultipleItemsWithSemicolon(t *testing.T) {
	rec := sampleTrade()
	rec.YourOffer.Items = []string{"2x Speedboat", "1x Gilded Wrap"}
	rec.YourOffer.TotalValue = 55

	var buf strings.Builder
	require.NoError(t, WriteTrade(&buf, rec))

	assert.Contains(t, buf.String(), `"2x Speedboat; 1x Gilded Wrap"`)
}

func TestWriteTrade_DoublesEmbeddedQuotes(t *testing.T) {
	rec := sampleTrade()
	rec.Notes = `said "no lowballs"`

	var buf strings.Builder
	require.NoError(t, WriteTrade(&buf, rec))

	assert.Contains(t, buf.String(), `"said ""no lowballs"""`)
}

func TestWriteHistory_OneRowPerTradeInLedgerOrder(t *testing.T) {
	first := sampleTrade()
	second := sampleTrade()
	second.ID = "ffffffff-0000-1111-2222-333333333333"
	second.Notes = "second"

	var buf strings.Builder
	require.NoError(t, WriteHistory(&buf, []history.TradeRecord{first, second}))

	lines := strings.Split(buf.String(), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasSuffix(lines[1], `,""`))
	assert.True(t, strings.HasSuffix(lines[2], `,"second"`))
	assert.NotContains(t, buf.String(), "\r", "rows must be joined without CRLF")
}

func TestWriteHistory_EmptyLedgerProducesNothing(t *testing.T) {
	var buf strings.Builder
	require.NoError(t, WriteHistory(&buf, nil))

	assert.Empty(t, buf.String())
}

func TestFilenames(t *testing.T) {
	assert.Equal(t, "trade-a1b2c3d4.csv", TradeFilename(sampleTrade()))
	assert.Equal(t, "trade-history.csv", HistoryFilename())

	short := sampleTrade()
	short.ID = "abc"
	assert.Equal(t, "trade-abc.csv", TradeFilename(short))
}

func TestWriteTrade_FractionalValuesKeepPrecision(t *testing.T) {
	rec := sampleTrade()
	rec.YourOffer.TotalValue = 12.5

	var buf strings.Builder
	require.NoError(t, WriteTrade(&buf, rec))

	assert.Contains(t, buf.String(), `"12.5"`)
}
