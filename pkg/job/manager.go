package job

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ridgeline-media/topfive/pkg/models"
)

// Sentinel errors for quota/capacity rejection, mirroring the worker
// pool's ErrAtCapacity/ErrNoSessionsAvailable pair.
var (
	// ErrRateLimited indicates the admin has created MaxJobsPerHour jobs
	// in the trailing hour already.
	ErrRateLimited = errors.New("admin rate limit exceeded")

	// ErrAtCapacity indicates MaxConcurrentJobs jobs are already running.
	ErrAtCapacity = errors.New("at job capacity")
)

// Config bounds per-admin and global job throughput, per spec.md §4.8.
type Config struct {
	MaxJobsPerHour   int
	MaxConcurrentJobs int
	MaxIterations     int
	CheckpointInterval int
}

// DefaultConfig returns the spec's default bounds.
func DefaultConfig() Config {
	return Config{
		MaxJobsPerHour:     10,
		MaxConcurrentJobs:  1,
		MaxIterations:      20,
		CheckpointInterval: 5,
	}
}

// Manager gates job creation against per-admin rate limits and a global
// concurrency cap, the same shape as queue.Worker.pollAndProcess's
// capacity check, generalized to a quota check at creation time instead
// of a claim-time check (jobs have no separate claim step; one worker
// drives one job to completion).
type Manager struct {
	mu    sync.Mutex
	store *Store
	cfg   Config
}

// NewManager wraps a Store with quota enforcement.
func NewManager(store *Store, cfg Config) *Manager {
	return &Manager{store: store, cfg: cfg}
}

// CreateJob validates quota, then persists a new queued job.
func (m *Manager) CreateJob(adminID int64, title, prompt string, jobType models.JobType) (*models.Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	jobs, err := m.store.List()
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}

	cutoff := time.Now().Add(-time.Hour)
	var adminCount, runningCount int
	for _, j := range jobs {
		if j.AdminID == adminID && j.CreatedAt.After(cutoff) {
			adminCount++
		}
		if j.Status == models.JobStatusRunning {
			runningCount++
		}
	}

	if adminCount >= m.cfg.MaxJobsPerHour {
		return nil, ErrRateLimited
	}
	if runningCount >= m.cfg.MaxConcurrentJobs {
		return nil, ErrAtCapacity
	}

	now := time.Now().UTC()
	j := &models.Job{
		ID:        uuid.NewString(),
		Title:     title,
		Prompt:    prompt,
		Status:    models.JobStatusQueued,
		AdminID:   adminID,
		JobType:   jobType,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := m.store.Create(j); err != nil {
		return nil, fmt.Errorf("create job: %w", err)
	}
	return j, nil
}

// CanStart reports whether another job may transition to running right
// now, independent of CreateJob's admission check (used by the runner
// just before claiming a queued job, since time may have passed between
// creation and start).
func (m *Manager) CanStart() (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	jobs, err := m.store.List()
	if err != nil {
		return false, fmt.Errorf("list jobs: %w", err)
	}
	running := 0
	for _, j := range jobs {
		if j.Status == models.JobStatusRunning {
			running++
		}
	}
	return running < m.cfg.MaxConcurrentJobs, nil
}

// Cancel transitions a job to canceled if it is not already terminal.
// The running worker detects this at the top of its next iteration
// (spec.md §5's "mid-LLM-call cancellation is not guaranteed").
func (m *Manager) Cancel(jobID string) error {
	j, err := m.store.Load(jobID)
	if err != nil {
		return err
	}
	if j.Status.Terminal() {
		return fmt.Errorf("job %s already terminal (%s)", jobID, j.Status)
	}
	j.Status = models.JobStatusCanceled
	now := time.Now().UTC()
	j.CompletedAt = &now
	return m.store.Save(j)
}

// Approve resolves a pending permission request and, if approved,
// transitions the job back to running so the next RunJob call resumes
// the tool loop.
func (m *Manager) Approve(jobID, permID string, approved bool) error {
	j, err := m.store.Load(jobID)
	if err != nil {
		return err
	}
	if j.Status != models.JobStatusBlocked {
		return fmt.Errorf("job %s is not blocked", jobID)
	}
	var found bool
	for i := range j.Permissions {
		if j.Permissions[i].PermID == permID && j.Permissions[i].Approved == nil {
			now := time.Now().UTC()
			j.Permissions[i].Approved = &approved
			j.Permissions[i].ResolvedAt = &now
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("permission %s not found or already resolved", permID)
	}
	if approved {
		j.Status = models.JobStatusRunning
	}
	return m.store.Save(j)
}
