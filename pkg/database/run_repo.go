package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/ridgeline-media/topfive/pkg/models"
)

// RunRepo durably mirrors run.Store's PipelineState writes to Postgres.
// The filesystem store under artifacts/videos/<run_slug>/ remains the
// source of truth a running pipeline reads and writes against; RunRepo
// exists for the same reason run.SupabaseMirror does — a queryable copy
// for dashboards and cross-process history — and is written the same
// best-effort, never-block-the-pipeline way.
type RunRepo struct {
	db *sql.DB
}

// Upsert writes the full current state of a run, replacing any prior row.
func (r *RunRepo) Upsert(ctx context.Context, state *models.PipelineState) error {
	gate1, err := json.Marshal(state.Gate1)
	if err != nil {
		return fmt.Errorf("marshal gate1: %w", err)
	}
	gate2, err := json.Marshal(state.Gate2)
	if err != nil {
		return fmt.Errorf("marshal gate2: %w", err)
	}
	cfg, err := json.Marshal(state.Config)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	artifacts, err := json.Marshal(state.Artifacts)
	if err != nil {
		return fmt.Errorf("marshal artifacts: %w", err)
	}
	history, err := json.Marshal(state.History)
	if err != nil {
		return fmt.Errorf("marshal history: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO runs (run_slug, theme, category, status, gate1, gate2, config, artifacts, history, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now())
		ON CONFLICT (run_slug) DO UPDATE SET
			theme = EXCLUDED.theme,
			category = EXCLUDED.category,
			status = EXCLUDED.status,
			gate1 = EXCLUDED.gate1,
			gate2 = EXCLUDED.gate2,
			config = EXCLUDED.config,
			artifacts = EXCLUDED.artifacts,
			history = EXCLUDED.history,
			updated_at = now()`,
		state.RunSlug, state.Theme, state.Category, state.Status, gate1, gate2, cfg, artifacts, history)
	if err != nil {
		return fmt.Errorf("upsert run %s: %w", state.RunSlug, err)
	}
	return nil
}

// Get loads one run's mirrored state by slug.
func (r *RunRepo) Get(ctx context.Context, runSlug string) (*models.PipelineState, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT run_slug, theme, category, status, gate1, gate2, config, artifacts, history
		FROM runs WHERE run_slug = $1`, runSlug)

	var state models.PipelineState
	var gate1, gate2, cfg, artifacts, history []byte
	if err := row.Scan(&state.RunSlug, &state.Theme, &state.Category, &state.Status, &gate1, &gate2, &cfg, &artifacts, &history); err != nil {
		return nil, fmt.Errorf("get run %s: %w", runSlug, err)
	}
	if err := json.Unmarshal(gate1, &state.Gate1); err != nil {
		return nil, fmt.Errorf("unmarshal gate1: %w", err)
	}
	if err := json.Unmarshal(gate2, &state.Gate2); err != nil {
		return nil, fmt.Errorf("unmarshal gate2: %w", err)
	}
	if err := json.Unmarshal(cfg, &state.Config); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := json.Unmarshal(artifacts, &state.Artifacts); err != nil {
		return nil, fmt.Errorf("unmarshal artifacts: %w", err)
	}
	if err := json.Unmarshal(history, &state.History); err != nil {
		return nil, fmt.Errorf("unmarshal history: %w", err)
	}
	return &state, nil
}

// ListByStatus returns every mirrored run in a given status, most
// recently updated first — the query a dashboard runs to show runs
// awaiting a gate decision.
func (r *RunRepo) ListByStatus(ctx context.Context, status models.RunStatus) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT run_slug FROM runs WHERE status = $1 ORDER BY updated_at DESC`, status)
	if err != nil {
		return nil, fmt.Errorf("list runs by status: %w", err)
	}
	defer rows.Close()

	var slugs []string
	for rows.Next() {
		var slug string
		if err := rows.Scan(&slug); err != nil {
			return nil, fmt.Errorf("scan run slug: %w", err)
		}
		slugs = append(slugs, slug)
	}
	return slugs, rows.Err()
}

// Delete removes a run's mirrored row, matching run.Store.Delete's
// cleanup so the dashboard copy never outlives the filesystem original.
func (r *RunRepo) Delete(ctx context.Context, runSlug string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM runs WHERE run_slug = $1`, runSlug)
	if err != nil {
		return fmt.Errorf("delete run %s: %w", runSlug, err)
	}
	return nil
}
