package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ridgeline-media/topfive/pkg/models"
)

// FetchCacheRepo durably mirrors pkg/fetch.Cache's TTL-indexed entries.
// The in-memory cache remains the hot path every fetch consults first;
// this table only matters across process restarts, where it lets a
// fresh process skip re-fetching URLs a prior run already paid for.
type FetchCacheRepo struct {
	db *sql.DB
}

// Upsert records or refreshes a cache entry's metadata.
func (r *FetchCacheRepo) Upsert(ctx context.Context, entry models.FetchCacheEntry) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO fetch_cache (url, method, content_type, token_estimate, content_length, fetched_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (url) DO UPDATE SET
			method = EXCLUDED.method,
			content_type = EXCLUDED.content_type,
			token_estimate = EXCLUDED.token_estimate,
			content_length = EXCLUDED.content_length,
			fetched_at = EXCLUDED.fetched_at`,
		entry.URL, entry.Method, entry.ContentType, entry.TokenEstimate, entry.ContentLength, entry.FetchedAt)
	if err != nil {
		return fmt.Errorf("upsert fetch_cache %s: %w", entry.URL, err)
	}
	return nil
}

// Get returns the cached metadata for url, if present.
func (r *FetchCacheRepo) Get(ctx context.Context, url string) (*models.FetchCacheEntry, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT url, method, content_type, token_estimate, content_length, fetched_at
		FROM fetch_cache WHERE url = $1`, url)

	var e models.FetchCacheEntry
	if err := row.Scan(&e.URL, &e.Method, &e.ContentType, &e.TokenEstimate, &e.ContentLength, &e.FetchedAt); err != nil {
		return nil, fmt.Errorf("get fetch_cache %s: %w", url, err)
	}
	return &e, nil
}

// DeleteExpired removes every row whose fetched_at is before cutoff,
// the Postgres-backed counterpart to Cache's lazy-expiry-on-Get sweep.
func (r *FetchCacheRepo) DeleteExpired(ctx context.Context, cutoff time.Time) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM fetch_cache WHERE fetched_at < $1`, cutoff)
	if err != nil {
		return fmt.Errorf("delete expired fetch_cache rows: %w", err)
	}
	return nil
}
