package models

import "time"

// JobStatus is the lifecycle state of an admin job, per spec.md §4.8.
type JobStatus string

// Recognized job statuses.
const (
	JobStatusQueued    JobStatus = "queued"
	JobStatusRunning   JobStatus = "running"
	JobStatusBlocked   JobStatus = "blocked"
	JobStatusCompleted JobStatus = "completed"
	JobStatusFailed    JobStatus = "failed"
	JobStatusCanceled  JobStatus = "canceled"
)

// Terminal reports whether the status is one of the three terminal states
// a job can never leave (spec.md §8, "job lifecycle monotonicity").
func (s JobStatus) Terminal() bool {
	return s == JobStatusCompleted || s == JobStatusFailed || s == JobStatusCanceled
}

// JobType selects the system prompt and workspace template used by the
// worker loop.
type JobType string

// Recognized job types.
const (
	JobTypeGeneral  JobType = "general"
	JobTypeStudy    JobType = "study"
	JobTypePipeline JobType = "pipeline"
)

// RiskLevel is the worker's self-assessed risk of a requested action.
type RiskLevel string

// Recognized risk levels.
const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// Job is an admin-issued, Telegram-controlled task executed in an isolated
// workspace, per spec.md §3/§4.8.
type Job struct {
	ID              string            `json:"id"`
	Title           string            `json:"title"`
	Prompt          string            `json:"prompt"`
	Status          JobStatus         `json:"status"`
	ProgressPercent int               `json:"progress_percent"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
	StartedAt       *time.Time        `json:"started_at,omitempty"`
	CompletedAt     *time.Time        `json:"completed_at,omitempty"`
	AdminID         int64             `json:"admin_id"`
	JobType         JobType           `json:"job_type"`
	LogsPath        string            `json:"logs_path"`
	Artifacts       []Artifact        `json:"artifacts,omitempty"`
	Permissions     []PermissionRequest `json:"permissions,omitempty"`
	Instructions    []string          `json:"instructions,omitempty"`
	Checkpoint      string            `json:"checkpoint,omitempty"`
	Error           string            `json:"error,omitempty"`
	Iteration       int               `json:"iteration"`
}

// Workspace returns the job's sandbox directory relative to JOBS_ROOT.
func (j *Job) Workspace(jobsRoot string) string {
	return jobsRoot + "/" + j.ID
}

// PendingPermission returns the first unresolved permission request, or
// nil if none is pending. A job in status Blocked must have at least one
// (spec.md §3 invariant).
func (j *Job) PendingPermission() *PermissionRequest {
	for i := range j.Permissions {
		if j.Permissions[i].Approved == nil {
			return &j.Permissions[i]
		}
	}
	return nil
}

// PermissionRequest is a worker-initiated pause requesting admin approval
// for a risky action.
type PermissionRequest struct {
	PermID         string     `json:"perm_id"`
	JobID          string     `json:"job_id"`
	Action         string     `json:"action"`
	Reason         string     `json:"reason"`
	RiskLevel      RiskLevel  `json:"risk_level"`
	SafeAlternative string    `json:"safe_alternative,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	Approved       *bool      `json:"approved"` // nil = pending
	ResolvedAt     *time.Time `json:"resolved_at,omitempty"`
}

// Artifact is a named file registered against a job or run workspace.
type Artifact struct {
	Name      string    `json:"name"`
	Path      string    `json:"path"`
	MimeType  string    `json:"mime_type"`
	CreatedAt time.Time `json:"created_at"`
}
