package niche

import (
	"context"

	"github.com/ridgeline-media/topfive/pkg/models"
)

// HistoryRepository is the storage seam Picker's callers pick a niche
// through: FileHistoryStore wraps the filesystem-backed HistoryStore for
// single-process/dev use, and pkg/database.NicheHistoryRepo backs it with
// Postgres (one row per date, upserted with INSERT ... ON CONFLICT) for
// deployments that run more than one admin process against the same
// history.
type HistoryRepository interface {
	Entries(ctx context.Context) ([]models.NicheHistoryEntry, error)
	Upsert(ctx context.Context, entry models.NicheHistoryEntry) error
}

// FileHistoryStore adapts *HistoryStore to HistoryRepository. The
// underlying store has no genuine blocking I/O, so ctx is accepted for
// interface conformance and otherwise ignored.
type FileHistoryStore struct {
	*HistoryStore
}

// NewFileHistoryStore wraps an already-loaded HistoryStore.
func NewFileHistoryStore(s *HistoryStore) *FileHistoryStore {
	return &FileHistoryStore{HistoryStore: s}
}

// Entries implements HistoryRepository.
func (f *FileHistoryStore) Entries(ctx context.Context) ([]models.NicheHistoryEntry, error) {
	return f.HistoryStore.Entries(), nil
}

// Upsert implements HistoryRepository.
func (f *FileHistoryStore) Upsert(ctx context.Context, entry models.NicheHistoryEntry) error {
	return f.HistoryStore.Upsert(entry)
}
