package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"github.com/ridgeline-media/topfive/pkg/models"
)

// NicheHistoryRepo backs niche.HistoryRepository with the niche_history
// table, so more than one admin process can share a single pick history
// instead of each keeping its own niche_history.json (the shape
// FileHistoryStore provides for single-process/dev use).
type NicheHistoryRepo struct {
	db *sql.DB
}

// Entries returns every recorded pick, in no particular order — callers
// that need a specific order (niche.UsedWithin, niche.Picker) only
// consult Date fields, not slice position.
func (r *NicheHistoryRepo) Entries(ctx context.Context) ([]models.NicheHistoryEntry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT date, niche, video_id, category, subcategory, intent, seed_keywords, final_top5_asins
		FROM niche_history`)
	if err != nil {
		return nil, fmt.Errorf("query niche_history: %w", err)
	}
	defer rows.Close()

	var out []models.NicheHistoryEntry
	for rows.Next() {
		var e models.NicheHistoryEntry
		var date sql.NullTime
		var seedKeywords, finalASINs pq.StringArray
		if err := rows.Scan(&date, &e.Niche, &e.VideoID, &e.Category, &e.Subcategory, &e.Intent, &seedKeywords, &finalASINs); err != nil {
			return nil, fmt.Errorf("scan niche_history row: %w", err)
		}
		e.Date = date.Time.Format("2006-01-02")
		e.SeedKeywords = []string(seedKeywords)
		e.FinalTop5ASINs = []string(finalASINs)
		out = append(out, e)
	}
	return out, rows.Err()
}

// Upsert inserts or replaces the single row for entry.Date. The
// invariant ("at most one entry per date") is enforced by Postgres
// itself via ON CONFLICT, so two concurrent PickAndRecord calls racing
// the same date resolve to whichever commits last rather than needing
// an explicit FOR UPDATE lock held across the separate Entries/Upsert
// calls the HistoryRepository interface makes.
func (r *NicheHistoryRepo) Upsert(ctx context.Context, entry models.NicheHistoryEntry) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO niche_history (date, niche, video_id, category, subcategory, intent, seed_keywords, final_top5_asins)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (date) DO UPDATE SET
			niche = EXCLUDED.niche,
			video_id = EXCLUDED.video_id,
			category = EXCLUDED.category,
			subcategory = EXCLUDED.subcategory,
			intent = EXCLUDED.intent,
			seed_keywords = EXCLUDED.seed_keywords,
			final_top5_asins = EXCLUDED.final_top5_asins`,
		entry.Date, entry.Niche, entry.VideoID, entry.Category, entry.Subcategory, entry.Intent,
		pq.StringArray(entry.SeedKeywords), pq.StringArray(entry.FinalTop5ASINs))
	if err != nil {
		return fmt.Errorf("upsert niche_history: %w", err)
	}
	return nil
}
