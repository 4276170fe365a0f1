// Package export renders ledger entries to downloadable CSV text.
package export

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"trade-tide-go/internal/history"
)

// MIMEType is the content type of exported files.
const MIMEType = "text/csv; charset=utf-8"

// dateLayout is the fixed timestamp format used in exported rows.
const dateLayout = "2006-01-02 15:04:05"

var header = []string{"Date", "Your Items", "Your Total Value", "Their Items", "Their Total Value", "Notes"}

// TradeFilename names a single-trade export after the first 8 characters of
// the trade id.
func TradeFilename(rec history.TradeRecord) string {
	id := rec.ID
	if len(id) > 8 {
		id = id[:8]
	}
	return fmt.Sprintf("trade-%s.csv", id)
}

// HistoryFilename names the bulk export.
func HistoryFilename() string {
	return "trade-history.csv"
}

// WriteTrade writes one trade as a header row plus a single record row.
func WriteTrade(w io.Writer, rec history.TradeRecord) error {
	lines := []string{headerRow(), recordRow(rec)}
	_, err := io.WriteString(w, strings.Join(lines, "\n"))
	return err
}

// WriteHistory writes the whole ledger, one row per entry in ledger order.
// An empty ledger produces no output at all.
func WriteHistory(w io.Writer, recs []history.TradeRecord) error {
	if len(recs) == 0 {
		return nil
	}
	lines := make([]string, 0, len(recs)+1)
	lines = append(lines, headerRow())
	for _, rec := range recs {
		lines = append(lines, recordRow(rec))
	}
	_, err := io.WriteString(w, strings.Join(lines, "\n"))
	return err
}

func headerRow() string {
	return strings.Join(header, ",")
}

// recordRow renders one trade. List fields join with "; "; every field is
// quoted with embedded quotes doubled.
func recordRow(rec history.TradeRecord) string {
	fields := []string{
		rec.Date.Format(dateLayout),
		strings.Join(rec.YourOffer.Items, "; "),
		formatValue(rec.YourOffer.TotalValue),
		strings.Join(rec.TheirOffer.Items, "; "),
		formatValue(rec.TheirOffer.TotalValue),
		rec.Notes,
	}
	quoted := make([]string, len(fields))
	for i, field := range fields {
		quoted[i] = quote(field)
	}
	return strings.Join(quoted, ",")
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func quote(field string) string {
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}
