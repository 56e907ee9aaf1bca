package run

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/ridgeline-media/topfive/pkg/fsutil"
	"github.com/ridgeline-media/topfive/pkg/models"
)

// NicheSelector picks the day's niche. pkg/niche.Picker satisfies this
// once wrapped with its history lookup by the caller (cmd/pipeline).
type NicheSelector interface {
	PickForDate(ctx context.Context, date string) (models.PickResult, error)
}

// PipelineDriver runs the automated stage chain (niche through manifest)
// against a run context. *orchestrator.Runner satisfies this directly —
// Controller depends on the interface, not the concrete package, the
// same seam used for job.LLMClient and Renderer/Uploader.
type PipelineDriver interface {
	Run(ctx context.Context, rc *models.RunContext) error
}

// Controller is the telegram.PipelineRunner implementation: it picks a
// niche, creates a run, drives it through the automated stages, and
// leaves it at StatusDraftWaitingGate1 awaiting human review.
type Controller struct {
	store     *Store
	niche     NicheSelector
	driver    PipelineDriver
	rootDir   string
	maxPerDay int
}

// NewController wires a run Store, niche selector, and pipeline driver.
// rootDir is the artifacts root each run's RunContext is scoped under.
func NewController(store *Store, niche NicheSelector, driver PipelineDriver, rootDir string) *Controller {
	return &Controller{store: store, niche: niche, driver: driver, rootDir: rootDir}
}

// ErrDailyRunCapReached is returned by RunDay when the configured daily
// run cap has already been met for the requested date.
var ErrDailyRunCapReached = errors.New("daily run cap reached")

// SetMaxRunsPerDay enables the daily episode cap: RunDay refuses to
// create another run once CountCreatedOn(date) reaches max. max <= 0
// (the default) disables the cap entirely. Grounded on
// market_auto_dispatch.py's --max-long-videos-per-day (this repo models
// one video per run, so "episode" and "run" coincide).
func (c *Controller) SetMaxRunsPerDay(max int) {
	c.maxPerDay = max
}

// RunDay picks the niche for date, creates its run, and drives it
// through the automated pipeline stages. The run is left at
// StatusDraftWaitingGate1 on success; a stage failure marks it Failed
// with the aborting reason preserved in history.
func (c *Controller) RunDay(ctx context.Context, date string) error {
	if c.maxPerDay > 0 {
		count, err := c.store.CountCreatedOn(date)
		if err != nil {
			return fmt.Errorf("count runs for %s: %w", date, err)
		}
		if count >= c.maxPerDay {
			return fmt.Errorf("%w: %d/%d runs already created for %s", ErrDailyRunCapReached, count, c.maxPerDay, date)
		}
	}

	pick, err := c.niche.PickForDate(ctx, date)
	if err != nil {
		return fmt.Errorf("pick niche for %s: %w", date, err)
	}

	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		return fmt.Errorf("parse date %s: %w", date, err)
	}
	runSlug := fsutil.RunSlug(pick.Niche.Keyword, parsed)

	state, err := c.store.Create(runSlug, pick.Niche.Keyword, pick.Niche.Category, nil)
	if err != nil {
		return fmt.Errorf("create run %s: %w", runSlug, err)
	}

	rc := &models.RunContext{
		RunSlug:  runSlug,
		Niche:    pick.Niche.Keyword,
		Category: pick.Niche.Category,
		RootDir:  filepath.Join(c.rootDir, runSlug),
		Bus:      models.NewBus(),
	}

	if err := c.driver.Run(ctx, rc); err != nil {
		now := time.Now().UTC()
		state.Status = models.StatusFailed
		state.AppendHistory(now, string(state.Status), "automated stages aborted: "+err.Error())
		if saveErr := c.store.Save(state); saveErr != nil {
			return saveErr
		}
		return fmt.Errorf("run %s aborted: %w", runSlug, err)
	}

	return nil
}

// Status loads a run's persisted PipelineState.
func (c *Controller) Status(runSlug string) (models.PipelineState, error) {
	state, err := c.store.Load(runSlug)
	if err != nil {
		return models.PipelineState{}, err
	}
	return *state, nil
}
