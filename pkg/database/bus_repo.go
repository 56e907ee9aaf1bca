package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ridgeline-media/topfive/pkg/models"
)

// BusMessageRepo durably mirrors models.Bus publications. The bus itself
// stays in-memory and authoritative for a running pipeline (per
// models.Bus's doc comment, "discarded with its RunContext"); this table
// is the only place a message survives past that, for post-hoc review of
// what agents told each other during a run.
type BusMessageRepo struct {
	db *sql.DB
}

// Append records one bus message against runSlug, preserving the
// insertion order the bus itself guarantees via an auto-incrementing id.
func (r *BusMessageRepo) Append(ctx context.Context, runSlug string, msg models.Message) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO bus_messages (run_slug, sender, receiver, msg_type, stage, content, timestamp)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		runSlug, msg.Sender, msg.Receiver, msg.Type, msg.Stage, msg.Content, msg.Timestamp)
	if err != nil {
		return fmt.Errorf("append bus_message for run %s: %w", runSlug, err)
	}
	return nil
}

// ForRun returns every mirrored message for runSlug, in insertion order.
func (r *BusMessageRepo) ForRun(ctx context.Context, runSlug string) ([]models.Message, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT sender, receiver, msg_type, stage, content, timestamp
		FROM bus_messages WHERE run_slug = $1 ORDER BY id ASC`, runSlug)
	if err != nil {
		return nil, fmt.Errorf("list bus_messages for run %s: %w", runSlug, err)
	}
	defer rows.Close()

	var out []models.Message
	for rows.Next() {
		var m models.Message
		if err := rows.Scan(&m.Sender, &m.Receiver, &m.Type, &m.Stage, &m.Content, &m.Timestamp); err != nil {
			return nil, fmt.Errorf("scan bus_message: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
