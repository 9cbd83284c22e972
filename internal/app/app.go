package app

import (
	"context"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lukasbauer/edgevox/edgetts"
	"github.com/lukasbauer/edgevox/internal/cachestore"
)

// App wires the synthesis client with its optional Postgres-backed cache
// persistence. Persistence is enabled by DATABASE_URL; without it the client
// runs with the in-memory cache only.
type App struct {
	cfg    Config
	logger *log.Logger
	db     *pgxpool.Pool
	client *edgetts.Client
}

func New(ctx context.Context, cfg Config, logger *log.Logger) (*App, error) {
	a := &App{cfg: cfg, logger: logger}

	var store edgetts.CacheStore
	if cfg.DatabaseURL != "" {
		dialCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()

		db, err := pgxpool.New(dialCtx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		if err := db.Ping(dialCtx); err != nil {
			db.Close()
			return nil, err
		}
		a.db = db
		store = cachestore.New(db)
	}

	client, err := edgetts.NewClient(edgetts.Config{
		DefaultVoice: cfg.DefaultVoice,
		StrictVoices: cfg.StrictVoices,
		Timeout:      cfg.Timeout,
		MaxRetries:   cfg.MaxRetries,
		CacheSize:    cfg.CacheSize,
		Store:        store,
		Logger:       logger,
	})
	if err != nil {
		a.Close()
		return nil, err
	}
	a.client = client
	return a, nil
}

func (a *App) Client() *edgetts.Client { return a.client }

func (a *App) Close() {
	if a.db != nil {
		a.db.Close()
	}
}
