// Package cleanup enforces filesystem retention on the job and run
// stores: terminal jobs and published/failed runs are removed once
// they age past the configured window.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/ridgeline-media/topfive/pkg/config"
	"github.com/ridgeline-media/topfive/pkg/job"
	"github.com/ridgeline-media/topfive/pkg/models"
	"github.com/ridgeline-media/topfive/pkg/run"
)

// Service periodically removes terminal job workspaces and terminal
// run workspaces older than their configured retention window.
// All operations are idempotent and safe to run from multiple
// processes against the same roots: a missing directory is not an
// error, only logged and skipped.
type Service struct {
	cfg       *config.RetentionConfig
	jobStore  *job.Store
	runStore  *run.Store

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a cleanup service over the given job and run
// stores, bounded by cfg.
func NewService(cfg *config.RetentionConfig, jobStore *job.Store, runStore *run.Store) *Service {
	return &Service{cfg: cfg, jobStore: jobStore, runStore: runStore}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("cleanup service started",
		"job_retention_days", s.cfg.JobRetentionDays,
		"run_retention_days", s.cfg.RunRetentionDays,
		"interval", s.cfg.CleanupInterval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.runAll()

	ticker := time.NewTicker(s.cfg.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runAll()
		}
	}
}

func (s *Service) runAll() {
	s.sweepJobs()
	s.sweepRuns()
}

func (s *Service) sweepJobs() {
	jobs, err := s.jobStore.List()
	if err != nil {
		slog.Error("retention: list jobs failed", "error", err)
		return
	}
	cutoff := time.Now().Add(-time.Duration(s.cfg.JobRetentionDays) * 24 * time.Hour)

	var removed int
	for _, j := range jobs {
		if !j.Status.Terminal() || j.CreatedAt.After(cutoff) {
			continue
		}
		if err := s.jobStore.Delete(j.ID); err != nil {
			slog.Error("retention: delete job failed", "job_id", j.ID, "error", err)
			continue
		}
		removed++
	}
	if removed > 0 {
		slog.Info("retention: removed old jobs", "count", removed)
	}
}

func (s *Service) sweepRuns() {
	runs, err := s.runStore.List()
	if err != nil {
		slog.Error("retention: list runs failed", "error", err)
		return
	}
	cutoff := time.Now().Add(-time.Duration(s.cfg.RunRetentionDays) * 24 * time.Hour)

	var removed int
	for _, state := range runs {
		if !isTerminalRun(state.Status) || len(state.History) == 0 {
			continue
		}
		lastEntry := state.History[len(state.History)-1]
		if lastEntry.Timestamp.After(cutoff) {
			continue
		}
		if err := s.runStore.Delete(state.RunSlug); err != nil {
			slog.Error("retention: delete run failed", "run_slug", state.RunSlug, "error", err)
			continue
		}
		removed++
	}
	if removed > 0 {
		slog.Info("retention: removed old runs", "count", removed)
	}
}

func isTerminalRun(status models.RunStatus) bool {
	return status == models.StatusPublished || status == models.StatusFailed
}
