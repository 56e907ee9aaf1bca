package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/ridgeline-media/topfive/pkg/models"
)

// JobRepo durably mirrors job.Store writes, and owns the
// permission_requests and job-scoped artifacts tables outright (the
// filesystem store keeps them embedded in job.json; here they get their
// own rows so a dashboard can query pending approvals across every job
// without loading each job's full state).
type JobRepo struct {
	db *sql.DB
}

// Upsert writes a job's current fields, replacing any prior row.
func (r *JobRepo) Upsert(ctx context.Context, job *models.Job) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO jobs (id, title, prompt, status, progress_percent, created_at, updated_at,
			started_at, completed_at, admin_id, job_type, logs_path, instructions, checkpoint, error, iteration)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			prompt = EXCLUDED.prompt,
			status = EXCLUDED.status,
			progress_percent = EXCLUDED.progress_percent,
			updated_at = EXCLUDED.updated_at,
			started_at = EXCLUDED.started_at,
			completed_at = EXCLUDED.completed_at,
			logs_path = EXCLUDED.logs_path,
			instructions = EXCLUDED.instructions,
			checkpoint = EXCLUDED.checkpoint,
			error = EXCLUDED.error,
			iteration = EXCLUDED.iteration`,
		job.ID, job.Title, job.Prompt, job.Status, job.ProgressPercent, job.CreatedAt, job.UpdatedAt,
		nullableTime(job.StartedAt), nullableTime(job.CompletedAt), job.AdminID, job.JobType, job.LogsPath,
		pq.StringArray(job.Instructions), job.Checkpoint, job.Error, job.Iteration)
	if err != nil {
		return fmt.Errorf("upsert job %s: %w", job.ID, err)
	}

	for _, p := range job.Permissions {
		if err := r.upsertPermission(ctx, job.ID, p); err != nil {
			return err
		}
	}
	for _, a := range job.Artifacts {
		if err := r.insertArtifact(ctx, "job", job.ID, a); err != nil {
			return err
		}
	}
	return nil
}

func (r *JobRepo) upsertPermission(ctx context.Context, jobID string, p models.PermissionRequest) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO permission_requests (perm_id, job_id, action, reason, risk_level, safe_alternative, created_at, approved, resolved_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (perm_id) DO UPDATE SET
			approved = EXCLUDED.approved,
			resolved_at = EXCLUDED.resolved_at`,
		p.PermID, jobID, p.Action, p.Reason, p.RiskLevel, p.SafeAlternative, p.CreatedAt, p.Approved, nullableTime(p.ResolvedAt))
	if err != nil {
		return fmt.Errorf("upsert permission_request %s: %w", p.PermID, err)
	}
	return nil
}

func (r *JobRepo) insertArtifact(ctx context.Context, ownerType, ownerID string, a models.Artifact) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO artifacts (owner_type, owner_id, name, path, mime_type, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (owner_type, owner_id, name) DO UPDATE SET
			path = EXCLUDED.path,
			mime_type = EXCLUDED.mime_type`,
		ownerType, ownerID, a.Name, a.Path, a.MimeType, a.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert artifact %s/%s: %w", ownerID, a.Name, err)
	}
	return nil
}

// PendingPermissions returns every unresolved permission request across
// every job, oldest first — the query the Telegram admin surface polls
// to list approvals it owes a response.
func (r *JobRepo) PendingPermissions(ctx context.Context) ([]models.PermissionRequest, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT perm_id, job_id, action, reason, risk_level, safe_alternative, created_at
		FROM permission_requests WHERE approved IS NULL ORDER BY created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("list pending permissions: %w", err)
	}
	defer rows.Close()

	var out []models.PermissionRequest
	for rows.Next() {
		var p models.PermissionRequest
		if err := rows.Scan(&p.PermID, &p.JobID, &p.Action, &p.Reason, &p.RiskLevel, &p.SafeAlternative, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan permission_request: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Delete removes a job's mirrored row (and its permission_requests/
// artifacts rows, via ON DELETE CASCADE), matching job.Store.Delete.
func (r *JobRepo) Delete(ctx context.Context, jobID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM jobs WHERE id = $1`, jobID)
	if err != nil {
		return fmt.Errorf("delete job %s: %w", jobID, err)
	}
	return nil
}

func nullableTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
