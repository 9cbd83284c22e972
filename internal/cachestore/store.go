// Package cachestore persists synthesis results in Postgres so the response
// cache survives process restarts. Persistence is opt-in; the client works
// without it.
//
// Expected schema (migrations are applied externally, same as the rest of
// the deployment):
//
//	CREATE TABLE tts_cache (
//	    fingerprint TEXT PRIMARY KEY,
//	    audio       BYTEA NOT NULL,
//	    media_type  TEXT NOT NULL,
//	    created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
//	);
package cachestore

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lukasbauer/edgevox/edgetts"
)

type Store struct {
	db *pgxpool.Pool
}

func New(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// Load returns the persisted result for a fingerprint, or (nil, nil) on a
// miss.
func (s *Store) Load(ctx context.Context, fingerprint string) (*edgetts.Audio, error) {
	if s.db == nil {
		return nil, nil
	}

	var audio edgetts.Audio
	err := s.db.QueryRow(ctx, `
		SELECT audio, media_type FROM tts_cache WHERE fingerprint = $1
	`, fingerprint).Scan(&audio.Data, &audio.MediaType)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &audio, nil
}

// Save persists a result. Entries are immutable: a concurrent writer for the
// same fingerprint wins the insert and later writes are no-ops.
func (s *Store) Save(ctx context.Context, fingerprint string, audio *edgetts.Audio) error {
	if s.db == nil {
		return nil
	}

	_, err := s.db.Exec(ctx, `
		INSERT INTO tts_cache (fingerprint, audio, media_type)
		VALUES ($1, $2, $3)
		ON CONFLICT (fingerprint) DO NOTHING
	`, fingerprint, audio.Data, audio.MediaType)
	return err
}

// Prune deletes entries older than the retention window and returns how
// many were removed. Eviction is the only destructive operation on entries.
func (s *Store) Prune(ctx context.Context, olderThan time.Duration) (int64, error) {
	if s.db == nil {
		return 0, nil
	}

	tag, err := s.db.Exec(ctx, `
		DELETE FROM tts_cache WHERE created_at < $1
	`, time.Now().UTC().Add(-olderThan))
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
