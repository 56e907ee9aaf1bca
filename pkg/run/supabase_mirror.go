package run

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/ridgeline-media/topfive/pkg/models"
)

// SupabaseMirror best-effort-mirrors PipelineState writes to a Supabase
// REST table. Nil-safe: a nil *SupabaseMirror is a no-op, matching
// slack.Service's "disabled when unconfigured" shape. Mirror failures
// are logged and never propagated — the filesystem store in this
// package is the durable source of truth; Supabase is a read
// convenience for dashboards outside this repository's scope.
type SupabaseMirror struct {
	baseURL    string
	serviceKey string
	table      string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewSupabaseMirror returns nil if baseURL or serviceKey is empty, so
// callers can construct it unconditionally from config and treat the
// mirror as always-safe-to-call.
func NewSupabaseMirror(baseURL, serviceKey, table string) *SupabaseMirror {
	if baseURL == "" || serviceKey == "" {
		return nil
	}
	if table == "" {
		table = "pipeline_runs"
	}
	return &SupabaseMirror{
		baseURL:    baseURL,
		serviceKey: serviceKey,
		table:      table,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		logger:     slog.Default().With("component", "supabase-mirror"),
	}
}

// Mirror upserts a run's current state to Supabase. Errors are logged at
// Warn and swallowed; this is never retried, per the "mirror writes are
// best-effort" Open Question resolution.
func (m *SupabaseMirror) Mirror(ctx context.Context, state *models.PipelineState) {
	if m == nil {
		return
	}

	body, err := json.Marshal(state)
	if err != nil {
		m.logger.Warn("failed to marshal pipeline state for mirror", "run_slug", state.RunSlug, "error", err)
		return
	}

	url := fmt.Sprintf("%s/rest/v1/%s?on_conflict=run_slug", m.baseURL, m.table)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		m.logger.Warn("failed to build mirror request", "run_slug", state.RunSlug, "error", err)
		return
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", m.serviceKey)
	req.Header.Set("Authorization", "Bearer "+m.serviceKey)
	req.Header.Set("Prefer", "resolution=merge-duplicates")

	resp, err := m.httpClient.Do(req)
	if err != nil {
		m.logger.Warn("mirror request failed", "run_slug", state.RunSlug, "error", err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		m.logger.Warn("mirror request returned non-2xx", "run_slug", state.RunSlug, "status", resp.StatusCode)
	}
}
