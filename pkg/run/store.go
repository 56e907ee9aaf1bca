// Package run persists the two-gate video production run lifecycle
// described in spec.md §3: PipelineState storage, gate approve/reject
// transitions, and the finalize step that hands off to external render
// and upload collaborators under a retry policy.
package run

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/ridgeline-media/topfive/pkg/fsutil"
	"github.com/ridgeline-media/topfive/pkg/models"
	"github.com/ridgeline-media/topfive/pkg/rank"
)

// ErrNotFound is returned when a run_slug has no persisted state.
var ErrNotFound = errors.New("run not found")

// ErrGateAlreadyDecided is returned when a gate is approved/rejected a
// second time; a GateDecision is terminal once set (spec.md §3).
var ErrGateAlreadyDecided = errors.New("gate already decided")

// ErrWrongStatus is returned when an operation is attempted from a status
// it does not apply to.
var ErrWrongStatus = errors.New("run is not in the expected status for this operation")

// Store persists PipelineState documents one per run, at
// <root>/<run_slug>/pipeline_state.json, matching the rest of this repo's
// one-directory-per-entity layout (pkg/job.Store, pkg/niche history).
type Store struct {
	root string
}

// NewStore creates a Store rooted at root.
func NewStore(root string) *Store {
	return &Store{root: root}
}

// Root returns the store's root directory.
func (s *Store) Root() string {
	return s.root
}

// Dir returns a run's workspace directory.
func (s *Store) Dir(runSlug string) string {
	return filepath.Join(s.root, runSlug)
}

func (s *Store) statePath(runSlug string) string {
	return filepath.Join(s.Dir(runSlug), "pipeline_state.json")
}

// Create persists a brand-new run in StatusDraftWaitingGate1.
func (s *Store) Create(runSlug, theme, category string, config map[string]any) (*models.PipelineState, error) {
	state := &models.PipelineState{
		RunSlug:   runSlug,
		Theme:     theme,
		Category:  category,
		Status:    models.StatusDraftWaitingGate1,
		Config:    config,
		Artifacts: make(map[string]string),
	}
	state.AppendHistory(time.Now().UTC(), string(state.Status), "run created")
	if err := s.Save(state); err != nil {
		return nil, err
	}
	return state, nil
}

// Save atomically persists the run's current state.
func (s *Store) Save(state *models.PipelineState) error {
	return fsutil.WriteJSONAtomic(s.statePath(state.RunSlug), state)
}

// Load reads a run's state by slug.
func (s *Store) Load(runSlug string) (*models.PipelineState, error) {
	var state models.PipelineState
	if err := fsutil.ReadJSON(s.statePath(runSlug), &state); err != nil {
		return nil, fmt.Errorf("%w: %s: %s", ErrNotFound, runSlug, err)
	}
	return &state, nil
}

// List returns every run in the store, sorted by the first history
// entry's timestamp descending (most recent first). Directories missing
// or holding an unreadable pipeline_state.json are skipped rather than
// failing the whole listing, matching pkg/job.Store.List.
func (s *Store) List() ([]*models.PipelineState, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("list runs root %s: %w", s.root, err)
	}

	var runs []*models.PipelineState
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		state, err := s.Load(e.Name())
		if err != nil {
			continue
		}
		runs = append(runs, state)
	}
	sort.Slice(runs, func(i, k int) bool {
		return runTimestamp(runs[i]).After(runTimestamp(runs[k]))
	})
	return runs, nil
}

// Delete removes a run's entire workspace directory, including its
// rendered/uploaded artifacts. Used by retention sweeps once a
// published run has aged past its retention window.
func (s *Store) Delete(runSlug string) error {
	if err := os.RemoveAll(s.Dir(runSlug)); err != nil {
		return fmt.Errorf("delete run %s: %w", runSlug, err)
	}
	return nil
}

func runTimestamp(state *models.PipelineState) time.Time {
	if len(state.History) == 0 {
		return time.Time{}
	}
	return state.History[0].Timestamp
}

// CountCreatedOn returns how many runs were created on date (UTC,
// "2006-01-02"), the Go equivalent of market_auto_dispatch.py's
// started_today/list_started_long_episodes_for_date daily-episode count
// that --max-long-videos-per-day is checked against.
func (s *Store) CountCreatedOn(date string) (int, error) {
	runs, err := s.List()
	if err != nil {
		return 0, err
	}
	n := 0
	for _, state := range runs {
		if runTimestamp(state).UTC().Format("2006-01-02") == date {
			n++
		}
	}
	return n, nil
}

// RecentProductKeys collects rank.ProductKey identities from every run
// created in [asOf-lookbackDays, asOf], by reading each run's
// inputs/products.json. It is the blocklist rank.Ranker.SetNoveltyBlocklist
// expects, grounded on market_auto_dispatch.py's
// collect_recent_product_history / --no-repeat-days lookback. A run with
// no products.json yet (still mid-pipeline, or pre-rank failure) is
// skipped rather than erroring the whole scan.
func (s *Store) RecentProductKeys(lookbackDays int, asOf time.Time) (map[string]bool, error) {
	blocked := make(map[string]bool)
	if lookbackDays <= 0 {
		return blocked, nil
	}
	cutoff := asOf.AddDate(0, 0, -lookbackDays)

	runs, err := s.List()
	if err != nil {
		return nil, err
	}
	for _, state := range runs {
		ts := runTimestamp(state)
		if ts.Before(cutoff) || ts.After(asOf) {
			continue
		}
		var products []models.TopProduct
		path := filepath.Join(s.Dir(state.RunSlug), "inputs", "products.json")
		if err := fsutil.ReadJSON(path, &products); err != nil {
			continue
		}
		for _, p := range products {
			blocked[rank.ProductKey(p.VerifiedProduct)] = true
		}
	}
	return blocked, nil
}

// RegisterArtifact records a named artifact path against the run and
// persists it.
func (s *Store) RegisterArtifact(runSlug, name, path string) error {
	state, err := s.Load(runSlug)
	if err != nil {
		return err
	}
	if state.Artifacts == nil {
		state.Artifacts = make(map[string]string)
	}
	state.Artifacts[name] = path
	return s.Save(state)
}
