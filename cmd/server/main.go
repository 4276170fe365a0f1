package main

import (
	"fmt"
	"net/http"
	"os"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"trade-tide-go/internal/catalog"
	"trade-tide-go/internal/clock"
	"trade-tide-go/internal/config"
	"trade-tide-go/internal/favorites"
	"trade-tide-go/internal/history"
	"trade-tide-go/internal/logger"
	"trade-tide-go/internal/notes"
	"trade-tide-go/internal/storage"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig("./configs")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.NewLogger(cfg.Logger.Level, cfg.Logger.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Open the persisted key-value store
	store, err := openStore(cfg.Storage, log)
	if err != nil {
		log.Fatal("Failed to open storage", zap.Error(err))
	}

	// Load the static catalog and the persisted side-stores
	cat := catalog.Default()
	log.Info("Catalog loaded", zap.Int("items", cat.Len()))

	clk := clock.System{}
	ledger := history.NewLedger(store, clk, nil, log)
	noteStore := notes.NewStore(store, clk, log)
	favs := favorites.NewSet(store, log)
	log.Info("Persisted state loaded",
		zap.Int("trades", ledger.Len()),
		zap.Int("notes", len(noteStore.List())),
		zap.Int("favorites", len(favs.Names())))

	// Setup HTTP server
	mux := http.NewServeMux()
	apiHandler := NewAPIHandler(log, cat, ledger, noteStore, favs, cfg.Trading.RecommendationLimit)

	// API endpoints
	mux.HandleFunc("/api/items", apiHandler.ItemsHandler)
	mux.HandleFunc("/api/mutations", apiHandler.MutationsHandler)
	mux.HandleFunc("/api/evaluate", apiHandler.EvaluateHandler)
	mux.HandleFunc("/api/recommendations", apiHandler.RecommendationsHandler)
	mux.HandleFunc("/api/trades", apiHandler.TradesHandler)
	mux.HandleFunc("/api/trades/export", apiHandler.ExportHandler)
	mux.HandleFunc("/api/notes", apiHandler.NotesHandler)
	mux.HandleFunc("/api/favorites", apiHandler.FavoritesHandler)

	// Static file serving for the front-end assets.
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir("web/static"))))
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "web/templates/index.html")
	})

	handler := rateLimited(mux, cfg.Server.RateLimit, cfg.Server.RateLimitBurst)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Info("Starting web server", zap.String("address", addr))

	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatal("Web server failed", zap.Error(err))
	}
}

// openStore selects the storage backend from config.
func openStore(cfg config.Storage, log *zap.Logger) (storage.Store, error) {
	switch cfg.Backend {
	case "memory":
		log.Warn("Using in-memory storage; saved trades, notes, and favorites will not survive a restart")
		return storage.NewMemory(), nil
	default:
		return storage.NewSQLite(cfg.DSN)
	}
}

// rateLimited rejects requests above the configured rate with 429.
func rateLimited(next http.Handler, perSecond float64, burst int) http.Handler {
	limiter := rate.NewLimiter(rate.Limit(perSecond), burst)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !limiter.Allow() {
			http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}
