package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"trade-tide-go/internal/catalog"
	"trade-tide-go/internal/clock"
	"trade-tide-go/internal/favorites"
	"trade-tide-go/internal/history"
	"trade-tide-go/internal/notes"
	"trade-tide-go/internal/storage"
	"trade-tide-go/internal/trade"
)

func newTestHandler() *APIHandler {
	log := zap.NewNop()
	store := storage.NewMemory()
	clk := clock.System{}

	h := NewAPIHandler(
		log,
		catalog.Default(),
		history.NewLedger(store, clk, nil, log),
		notes.NewStore(store, clk, log),
		favorites.NewSet(store, log),
		trade.DefaultRecommendationLimit,
	)
	// Pin the recommendation relaxation open for deterministic handler tests.
	h.rand = func() float64 { return 1.0 }
	return h
}

func TestItemsHandler_FiltersByCategory(t *testing.T) {
	h := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/items?category=skin", nil)
	rec := httptest.NewRecorder()
	h.ItemsHandler(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var items []catalog.Item
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.NotEmpty(t, items)
	for _, item := range items {
		assert.Equal(t, catalog.CategorySkin, item.Category)
	}
}

func TestEvaluateHandler_ComputesVerdict(t *testing.T) {
	h := newTestHandler()

	body := `{"yours":[{"name":"Speedboat","quantity":1}],"theirs":[{"name":"Jetski","quantity":1}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/evaluate", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.EvaluateHandler(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var eval trade.Evaluation
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &eval))
	assert.Equal(t, 10.0, eval.YourTotal)
	assert.Equal(t, 25.0, eval.TheirTotal)
	assert.Equal(t, trade.VerdictWin, eval.Verdict)
	assert.Equal(t, 150.0, eval.PercentageDiff)
}

func TestEvaluateHandler_UnknownItem(t *testing.T) {
	h := newTestHandler()

	body := `{"yours":[{"name":"Imaginary Boat"}],"theirs":[]}`
	req := httptest.NewRequest(http.MethodPost, "/api/evaluate", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.EvaluateHandler(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTradesHandler_SaveAndExportRoundTrip(t *testing.T) {
	h := newTestHandler()

	body := `{"yours":[{"name":"Speedboat","quantity":2}],"theirs":[{"name":"Jetski","quantity":1}],"notes":"fair enough"}`
	req := httptest.NewRequest(http.MethodPost, "/api/trades", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.TradesHandler(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	var record history.TradeRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &record))
	assert.Equal(t, []string{"2x Speedboat"}, record.YourOffer.Items)
	assert.Equal(t, 20.0, record.YourOffer.TotalValue)
	assert.Equal(t, 25.0, record.TheirOffer.TotalValue)

	req = httptest.NewRequest(http.MethodGet, "/api/trades/export?id="+record.ID, nil)
	rec = httptest.NewRecorder()
	h.ExportHandler(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "trade-"+record.ID[:8]+".csv")
	assert.Contains(t, rec.Body.String(), `"2x Speedboat"`)
	assert.Contains(t, rec.Body.String(), `"fair enough"`)
}

func TestTradesHandler_RejectsEmptySide(t *testing.T) {
	h := newTestHandler()

	body := `{"yours":[],"theirs":[{"name":"Jetski"}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/trades", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.TradesHandler(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExportHandler_EmptyLedgerNoContent(t *testing.T) {
	h := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/trades/export", nil)
	rec := httptest.NewRecorder()
	h.ExportHandler(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestNotesHandler_CapacityConflict(t *testing.T) {
	h := newTestHandler()

	for slot := 1; slot <= notes.MaxNotes; slot++ {
		_, err := h.notes.Save(slot, "filler", "")
		require.NoError(t, err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/notes", strings.NewReader(`{"name":"overflow","content":"x"}`))
	rec := httptest.NewRecorder()
	h.NotesHandler(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestRecommendationsHandler_NeverEchoesTradeItems(t *testing.T) {
	h := newTestHandler()

	body := `{"side":"yours","yours":[{"name":"Speedboat"}],"theirs":[{"name":"Frigate"}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/recommendations", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.RecommendationsHandler(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var items []catalog.Item
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	assert.LessOrEqual(t, len(items), trade.DefaultRecommendationLimit)
	for _, item := range items {
		assert.NotEqual(t, "Speedboat", item.Name)
		assert.NotEqual(t, "Frigate", item.Name)
	}
}

func TestFavoritesHandler_Toggle(t *testing.T) {
	h := newTestHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/favorites", strings.NewReader(`{"name":"Speedboat"}`))
	rec := httptest.NewRecorder()
	h.FavoritesHandler(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/favorites", nil)
	rec = httptest.NewRecorder()
	h.FavoritesHandler(rec, req)
	var names []string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &names))
	assert.Equal(t, []string{"Speedboat"}, names)
}
