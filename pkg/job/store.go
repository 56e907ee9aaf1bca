// Package job implements the admin job subsystem from spec.md §4.8: a
// filesystem-backed store, per-admin/global quota gating, and the
// sandboxed LLM tool loop that drives a job from queued to a terminal
// state.
package job

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/ridgeline-media/topfive/pkg/fsutil"
	"github.com/ridgeline-media/topfive/pkg/models"
)

// Store persists jobs one directory per job under root, matching
// <JOBS_ROOT>/<job_id>/job.json.
type Store struct {
	root string
}

// NewStore creates a Store rooted at root. The directory is created lazily
// by Create/Save, not here.
func NewStore(root string) *Store {
	return &Store{root: root}
}

// Root returns the job store's root directory.
func (s *Store) Root() string {
	return s.root
}

// Dir returns a job's workspace directory.
func (s *Store) Dir(jobID string) string {
	return filepath.Join(s.root, jobID)
}

func (s *Store) jobPath(jobID string) string {
	return filepath.Join(s.Dir(jobID), "job.json")
}

// Create persists a new job and creates its workspace directory and
// artifacts subdirectory.
func (s *Store) Create(j *models.Job) error {
	dir := s.Dir(j.ID)
	if err := fsutil.EnsureDir(filepath.Join(dir, "artifacts")); err != nil {
		return fmt.Errorf("create job workspace %s: %w", dir, err)
	}
	j.LogsPath = filepath.Join(dir, "logs.txt")
	if err := fsutil.WriteFileAtomic(j.LogsPath, nil, 0o644); err != nil {
		return fmt.Errorf("create logs.txt: %w", err)
	}
	return s.Save(j)
}

// Save atomically persists the job's current state.
func (s *Store) Save(j *models.Job) error {
	j.UpdatedAt = time.Now().UTC()
	return fsutil.WriteJSONAtomic(s.jobPath(j.ID), j)
}

// Load reads a job by ID.
func (s *Store) Load(jobID string) (*models.Job, error) {
	var j models.Job
	if err := fsutil.ReadJSON(s.jobPath(jobID), &j); err != nil {
		return nil, fmt.Errorf("load job %s: %w", jobID, err)
	}
	return &j, nil
}

// List returns every job in the store, sorted by CreatedAt descending
// (most recent first). Directories that are missing or contain an
// unreadable job.json are skipped rather than failing the whole listing.
func (s *Store) List() ([]*models.Job, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("list jobs root %s: %w", s.root, err)
	}

	var jobs []*models.Job
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		j, err := s.Load(e.Name())
		if err != nil {
			continue
		}
		jobs = append(jobs, j)
	}
	sort.Slice(jobs, func(i, k int) bool { return jobs[i].CreatedAt.After(jobs[k].CreatedAt) })
	return jobs, nil
}

// Delete removes a job's entire workspace directory. Used by retention
// sweeps once a terminal job has aged past its retention window.
func (s *Store) Delete(jobID string) error {
	if err := os.RemoveAll(s.Dir(jobID)); err != nil {
		return fmt.Errorf("delete job %s: %w", jobID, err)
	}
	return nil
}

// AppendLog appends a line to the job's logs.txt.
func (s *Store) AppendLog(jobID, line string) error {
	path := filepath.Join(s.Dir(jobID), "logs.txt")
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open logs.txt: %w", err)
	}
	defer f.Close()
	_, err = f.WriteString(line + "\n")
	return err
}

// ReadLogs returns the full contents of a job's logs.txt.
func (s *Store) ReadLogs(jobID string) (string, error) {
	data, err := os.ReadFile(filepath.Join(s.Dir(jobID), "logs.txt"))
	if err != nil {
		return "", fmt.Errorf("read logs for job %s: %w", jobID, err)
	}
	return string(data), nil
}

// ReadArtifact returns the contents of a named artifact file within a
// job's workspace.
func (s *Store) ReadArtifact(jobID string, artifact models.Artifact) (string, error) {
	data, err := os.ReadFile(artifact.Path)
	if err != nil {
		return "", fmt.Errorf("read artifact %s for job %s: %w", artifact.Name, jobID, err)
	}
	return string(data), nil
}

// AppendAudit appends one JSON-lines entry to JOBS_ROOT/admin_actions.jsonl.
func (s *Store) AppendAudit(entry AuditEntry) error {
	if err := fsutil.EnsureDir(s.root); err != nil {
		return err
	}
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshal audit entry: %w", err)
	}
	path := filepath.Join(s.root, "admin_actions.jsonl")
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open admin_actions.jsonl: %w", err)
	}
	defer f.Close()
	_, err = f.Write(append(data, '\n'))
	return err
}

// AuditEntry is one admin action record appended to admin_actions.jsonl.
type AuditEntry struct {
	Timestamp time.Time `json:"timestamp"`
	AdminID   int64     `json:"admin_id"`
	Action    string    `json:"action"`
	JobID     string    `json:"job_id,omitempty"`
	Detail    string    `json:"detail,omitempty"`
}
