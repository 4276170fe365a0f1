package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"trade-tide-go/internal/catalog"
	"trade-tide-go/internal/export"
	"trade-tide-go/internal/favorites"
	"trade-tide-go/internal/history"
	"trade-tide-go/internal/notes"
	"trade-tide-go/internal/trade"
)

// APIHandler holds dependencies for the API endpoints.
type APIHandler struct {
	log       *zap.Logger
	catalog   *catalog.Catalog
	ledger    *history.Ledger
	notes     *notes.Store
	favorites *favorites.Set
	recLimit  int
	rand      trade.RandSource
}

// NewAPIHandler creates a new APIHandler.
func NewAPIHandler(log *zap.Logger, cat *catalog.Catalog, ledger *history.Ledger, noteStore *notes.Store, favs *favorites.Set, recLimit int) *APIHandler {
	return &APIHandler{
		log:       log,
		catalog:   cat,
		ledger:    ledger,
		notes:     noteStore,
		favorites: favs,
		recLimit:  recLimit,
		rand:      trade.DefaultRandSource,
	}
}

// offerLine is one item entry in a request payload.
type offerLine struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// buildOffer resolves payload lines against the catalog.
func (h *APIHandler) buildOffer(lines []offerLine) (*trade.Offer, error) {
	offer := trade.NewOffer()
	for _, line := range lines {
		item, ok := h.catalog.Lookup(line.Name)
		if !ok {
			return nil, fmt.Errorf("unknown item %q", line.Name)
		}
		qty := line.Quantity
		if qty < 1 {
			qty = 1
		}
		for i := 0; i < qty; i++ {
			offer.Add(item)
		}
	}
	return offer, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// ItemsHandler returns the catalog, optionally filtered by category or a
// search query, with favorites optionally sorted first.
func (h *APIHandler) ItemsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	items := h.catalog.Search(r.URL.Query().Get("q"))
	if cat := r.URL.Query().Get("category"); cat != "" {
		filtered := items[:0]
		for _, item := range items {
			if item.Category == catalog.Category(cat) {
				filtered = append(filtered, item)
			}
		}
		items = filtered
	}

	if key := r.URL.Query().Get("sort"); key != "" {
		ascending := r.URL.Query().Get("order") != "desc"
		catalog.SortItems(items, catalog.SortKey(key), ascending)
	}
	if r.URL.Query().Get("favorites") == "1" {
		catalog.FavoritesFirst(items, h.favorites.IsFavorite)
	}

	writeJSON(w, http.StatusOK, items)
}

// MutationsHandler returns the mutation-value reference rows.
func (h *APIHandler) MutationsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	if cat := r.URL.Query().Get("category"); cat != "" {
		writeJSON(w, http.StatusOK, catalog.MutationsByCategory(catalog.MutationCategory(cat)))
		return
	}
	writeJSON(w, http.StatusOK, catalog.Mutations())
}

type evaluateRequest struct {
	Yours  []offerLine `json:"yours"`
	Theirs []offerLine `json:"theirs"`
}

// EvaluateHandler computes the fairness report for a pair of offers.
// Offers are request-scoped; nothing is persisted.
func (h *APIHandler) EvaluateHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req evaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	yours, err := h.buildOffer(req.Yours)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	theirs, err := h.buildOffer(req.Theirs)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, trade.Evaluate(yours, theirs))
}

type recommendRequest struct {
	Side   string      `json:"side"`
	Yours  []offerLine `json:"yours"`
	Theirs []offerLine `json:"theirs"`
	Limit  int         `json:"limit"`
}

// RecommendationsHandler suggests items to balance one side of a trade.
func (h *APIHandler) RecommendationsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req recommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	yours, err := h.buildOffer(req.Yours)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	theirs, err := h.buildOffer(req.Theirs)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	limit := req.Limit
	if limit <= 0 {
		limit = h.recLimit
	}

	var result []catalog.Item
	switch req.Side {
	case "theirs":
		result = trade.Recommend(h.catalog, theirs, trade.SideTheirs, yours, limit, h.rand)
	default:
		result = trade.Recommend(h.catalog, yours, trade.SideYours, theirs, limit, h.rand)
	}

	writeJSON(w, http.StatusOK, result)
}

type saveTradeRequest struct {
	Yours  []offerLine `json:"yours"`
	Theirs []offerLine `json:"theirs"`
	Notes  string      `json:"notes"`
}

// TradesHandler lists, records, and deletes ledger entries.
func (h *APIHandler) TradesHandler(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, h.ledger.Trades())

	case http.MethodPost:
		var req saveTradeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		yours, err := h.buildOffer(req.Yours)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		theirs, err := h.buildOffer(req.Theirs)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		record, err := h.ledger.Add(
			history.OfferSummary{Items: yours.ItemStrings(), TotalValue: yours.TotalValue()},
			history.OfferSummary{Items: theirs.ItemStrings(), TotalValue: theirs.TotalValue()},
			req.Notes,
		)
		if errors.Is(err, history.ErrEmptyOffer) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if err != nil {
			h.log.Error("Failed to record trade", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "failed to record trade")
			return
		}
		writeJSON(w, http.StatusCreated, record)

	case http.MethodDelete:
		// DELETE with an id removes one entry; without an id it clears all.
		if id := r.URL.Query().Get("id"); id != "" {
			h.ledger.Remove(id)
		} else {
			h.ledger.Clear()
		}
		w.WriteHeader(http.StatusNoContent)

	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// ExportHandler streams ledger entries as a CSV download. With an id it
// exports one trade; without, the whole ledger. An empty ledger yields 204
// and no file.
func (h *APIHandler) ExportHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	if id := r.URL.Query().Get("id"); id != "" {
		record, ok := h.ledger.Find(id)
		if !ok {
			writeError(w, http.StatusNotFound, "trade not found")
			return
		}
		w.Header().Set("Content-Type", export.MIMEType)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.TradeFilename(record)))
		if err := export.WriteTrade(w, record); err != nil {
			h.log.Error("Failed to export trade", zap.Error(err))
		}
		return
	}

	trades := h.ledger.Trades()
	if len(trades) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	w.Header().Set("Content-Type", export.MIMEType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.HistoryFilename()))
	if err := export.WriteHistory(w, trades); err != nil {
		h.log.Error("Failed to export trade history", zap.Error(err))
	}
}

type saveNoteRequest struct {
	Slot    int    `json:"slot"` // 0 means "first available slot"
	Name    string `json:"name"`
	Content string `json:"content"`
}

// NotesHandler manages the 10-slot note store.
func (h *APIHandler) NotesHandler(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, map[string]any{
			"notes":          h.notes.List(),
			"availableSlots": h.notes.AvailableSlots(),
			"maxNotes":       notes.MaxNotes,
		})

	case http.MethodPost:
		var req saveNoteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		var note notes.Note
		var err error
		if req.Slot == 0 {
			note, err = h.notes.Create(req.Name, req.Content)
		} else {
			note, err = h.notes.Save(req.Slot, req.Name, req.Content)
		}
		switch {
		case errors.Is(err, notes.ErrNoAvailableSlots):
			writeError(w, http.StatusConflict, err.Error())
		case errors.Is(err, notes.ErrBlankName), errors.Is(err, notes.ErrInvalidSlot):
			writeError(w, http.StatusBadRequest, err.Error())
		case err != nil:
			h.log.Error("Failed to save note", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "failed to save note")
		default:
			writeJSON(w, http.StatusOK, note)
		}

	case http.MethodDelete:
		var slot int
		if _, err := fmt.Sscanf(r.URL.Query().Get("slot"), "%d", &slot); err != nil {
			writeError(w, http.StatusBadRequest, "invalid slot")
			return
		}
		h.notes.Delete(slot)
		w.WriteHeader(http.StatusNoContent)

	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

type toggleFavoriteRequest struct {
	Name string `json:"name"`
}

// FavoritesHandler lists and toggles favorited items.
func (h *APIHandler) FavoritesHandler(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, h.favorites.Names())

	case http.MethodPost:
		var req toggleFavoriteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if strings.TrimSpace(req.Name) == "" {
			writeError(w, http.StatusBadRequest, "item name required")
			return
		}
		favored := h.favorites.Toggle(req.Name)
		writeJSON(w, http.StatusOK, map[string]any{"name": req.Name, "favorite": favored})

	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}
