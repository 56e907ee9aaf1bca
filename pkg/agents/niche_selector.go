package agents

import (
	"context"
	"fmt"
	"time"

	"github.com/ridgeline-media/topfive/pkg/models"
	"github.com/ridgeline-media/topfive/pkg/niche"
)

// NicheSelector adapts niche.Picker to run.NicheSelector by supplying
// the history lookup and date parsing run.Controller leaves to its
// caller, per run.Controller's own "satisfied once wrapped ... by the
// caller" doc comment.
type NicheSelector struct {
	picker *niche.Picker
	repo   niche.HistoryRepository
}

// NewNicheSelector wraps a niche.Picker and a HistoryRepository (either
// niche.FileHistoryStore for single-process use or
// database.NicheHistoryRepo for a multi-process admin deployment).
func NewNicheSelector(picker *niche.Picker, repo niche.HistoryRepository) *NicheSelector {
	return &NicheSelector{picker: picker, repo: repo}
}

// PickForDate implements run.NicheSelector.
func (s *NicheSelector) PickForDate(ctx context.Context, date string) (models.PickResult, error) {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return models.PickResult{}, fmt.Errorf("parse date %s: %w", date, err)
	}
	return s.picker.PickAndRecord(ctx, s.repo, d)
}
