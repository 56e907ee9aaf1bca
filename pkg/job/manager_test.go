package job

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridgeline-media/topfive/pkg/models"
)

func testManager(t *testing.T, cfg Config) (*Manager, *Store) {
	store := NewStore(t.TempDir())
	return NewManager(store, cfg), store
}

func TestManager_CreateJob_Succeeds(t *testing.T) {
	mgr, _ := testManager(t, DefaultConfig())
	j, err := mgr.CreateJob(1, "title", "prompt", models.JobTypeGeneral)
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusQueued, j.Status)
	assert.NotEmpty(t, j.ID)
}

func TestManager_CreateJob_RejectsOverPerAdminRateLimit(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxJobsPerHour = 2
	mgr, _ := testManager(t, cfg)

	_, err := mgr.CreateJob(1, "t1", "p1", models.JobTypeGeneral)
	require.NoError(t, err)
	_, err = mgr.CreateJob(1, "t2", "p2", models.JobTypeGeneral)
	require.NoError(t, err)

	_, err = mgr.CreateJob(1, "t3", "p3", models.JobTypeGeneral)
	assert.ErrorIs(t, err, ErrRateLimited)
}

func TestManager_CreateJob_RateLimitIsPerAdmin(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxJobsPerHour = 1
	mgr, _ := testManager(t, cfg)

	_, err := mgr.CreateJob(1, "t1", "p1", models.JobTypeGeneral)
	require.NoError(t, err)

	_, err = mgr.CreateJob(2, "t2", "p2", models.JobTypeGeneral)
	assert.NoError(t, err)
}

func TestManager_CreateJob_RejectsAtGlobalConcurrency(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxConcurrentJobs = 1
	mgr, store := testManager(t, cfg)

	running := newTestJob("running-job")
	running.Status = models.JobStatusRunning
	require.NoError(t, store.Create(running))

	_, err := mgr.CreateJob(1, "t2", "p2", models.JobTypeGeneral)
	assert.ErrorIs(t, err, ErrAtCapacity)
}

func TestManager_Cancel_TransitionsNonTerminalJob(t *testing.T) {
	mgr, store := testManager(t, DefaultConfig())
	j := newTestJob("job-1")
	j.Status = models.JobStatusRunning
	require.NoError(t, store.Create(j))

	require.NoError(t, mgr.Cancel("job-1"))

	reloaded, err := store.Load("job-1")
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusCanceled, reloaded.Status)
}

func TestManager_Cancel_RejectsAlreadyTerminalJob(t *testing.T) {
	mgr, store := testManager(t, DefaultConfig())
	j := newTestJob("job-1")
	j.Status = models.JobStatusCompleted
	require.NoError(t, store.Create(j))

	err := mgr.Cancel("job-1")
	assert.Error(t, err)
}

func TestManager_Approve_ApprovedResolvesAndResumesRunning(t *testing.T) {
	mgr, store := testManager(t, DefaultConfig())
	j := newTestJob("job-1")
	j.Status = models.JobStatusBlocked
	j.Permissions = []models.PermissionRequest{{
		PermID:    "perm-1",
		JobID:     "job-1",
		Action:    "delete things",
		RiskLevel: models.RiskHigh,
		CreatedAt: time.Now(),
	}}
	require.NoError(t, store.Create(j))

	require.NoError(t, mgr.Approve("job-1", "perm-1", true))

	reloaded, err := store.Load("job-1")
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusRunning, reloaded.Status)
	require.Len(t, reloaded.Permissions, 1)
	require.NotNil(t, reloaded.Permissions[0].Approved)
	assert.True(t, *reloaded.Permissions[0].Approved)
}

func TestManager_Approve_DeniedStaysBlocked(t *testing.T) {
	mgr, store := testManager(t, DefaultConfig())
	j := newTestJob("job-1")
	j.Status = models.JobStatusBlocked
	j.Permissions = []models.PermissionRequest{{
		PermID:    "perm-1",
		JobID:     "job-1",
		Action:    "delete things",
		RiskLevel: models.RiskHigh,
		CreatedAt: time.Now(),
	}}
	require.NoError(t, store.Create(j))

	require.NoError(t, mgr.Approve("job-1", "perm-1", false))

	reloaded, err := store.Load("job-1")
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusBlocked, reloaded.Status)
	require.NotNil(t, reloaded.Permissions[0].Approved)
	assert.False(t, *reloaded.Permissions[0].Approved)
}
