package niche

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"sort"
	"time"

	"github.com/ridgeline-media/topfive/pkg/fsutil"
	"github.com/ridgeline-media/topfive/pkg/models"
)

// ErrNoAvailableNiches is returned when every pool entry is excluded by
// the 60-/30-day rotation window.
var ErrNoAvailableNiches = errors.New("no-available-niches")

const (
	category60DayWindow    = 60 * 24 * time.Hour
	category30DayWindow    = 30 * 24 * time.Hour
	categoryRotationWindow = 2 * 24 * time.Hour
	subcatRotationWindow   = 14 * 24 * time.Hour
	intentRotationWindow   = 7 * 24 * time.Hour

	thresholdHigh = 70
	thresholdLow  = 60
	minPassHigh   = 12
)

// Picker selects a single niche for a given date out of Pool, penalized
// against recent history so the same category/subcategory/intent don't
// repeat too soon.
type Picker struct {
	pool []models.NicheCandidate
}

// NewPicker builds a Picker over the given candidate pool (normally
// niche.Pool; overridable in tests).
func NewPicker(pool []models.NicheCandidate) *Picker {
	return &Picker{pool: pool}
}

// Pick runs the full selection algorithm for date d against history.
func (p *Picker) Pick(d time.Time, history []models.NicheHistoryEntry) (models.PickResult, error) {
	used60 := UsedWithin(history, d, category60DayWindow)
	available := filterOut(p.pool, used60)
	if len(available) == 0 {
		used30 := UsedWithin(history, d, category30DayWindow)
		available = filterOut(p.pool, used30)
	}
	if len(available) == 0 {
		return models.PickResult{}, ErrNoAvailableNiches
	}

	scored := make([]models.ScoredNiche, 0, len(available))
	for _, cand := range available {
		bonus := rotationBonus(cand, history, d)
		scored = append(scored, models.ScoredNiche{
			Candidate:    cand,
			StaticScore:  cand.StaticScore(),
			RotationBonus: bonus,
			Total:        cand.StaticScore() + bonus,
		})
	}

	threshold, filtered := applyThreshold(scored)
	seed := dateSeed(fsutil.ISODate(d))
	sortByTotalThenHash(filtered, seed)

	return models.PickResult{
		Date:       fsutil.ISODate(d),
		Niche:      filtered[0].Candidate,
		Total:      filtered[0].Total,
		Threshold:  threshold,
		Candidates: len(filtered),
		FetchedAt:  d,
	}, nil
}

func filterOut(pool []models.NicheCandidate, exclude map[string]bool) []models.NicheCandidate {
	var out []models.NicheCandidate
	for _, c := range pool {
		if !exclude[c.Keyword] {
			out = append(out, c)
		}
	}
	return out
}

// rotationBonus implements spec.md §4.3 step 2.
func rotationBonus(c models.NicheCandidate, history []models.NicheHistoryEntry, asOf time.Time) int {
	bonus := 0
	if !lastUsedWithin(history, asOf, categoryRotationWindow, func(e models.NicheHistoryEntry) string { return e.Category }, c.Category) {
		bonus += 15
	}
	if !lastUsedWithin(history, asOf, subcatRotationWindow, func(e models.NicheHistoryEntry) string { return e.Subcategory }, c.Subcategory) {
		bonus += 10
	}
	if !lastUsedWithin(history, asOf, intentRotationWindow, func(e models.NicheHistoryEntry) string { return string(e.Intent) }, string(c.Intent)) {
		bonus += 5
	}
	return bonus
}

// applyThreshold implements spec.md §4.3 step 3: prefer total>=70; if
// fewer than 12 pass, lower to 60; finally fall back to the full set.
func applyThreshold(scored []models.ScoredNiche) (int, []models.ScoredNiche) {
	high := filterByThreshold(scored, thresholdHigh)
	if len(high) >= minPassHigh {
		return thresholdHigh, high
	}
	low := filterByThreshold(scored, thresholdLow)
	if len(low) >= minPassHigh {
		return thresholdLow, low
	}
	return 0, scored
}

func filterByThreshold(scored []models.ScoredNiche, threshold int) []models.ScoredNiche {
	var out []models.ScoredNiche
	for _, s := range scored {
		if s.Total >= threshold {
			out = append(out, s)
		}
	}
	return out
}

// dateSeed computes int(sha256(date)[:8], 16) as specified.
func dateSeed(date string) uint64 {
	sum := sha256.Sum256([]byte(date))
	return uint64(binary.BigEndian.Uint32(sum[:4]))
}

// sortByTotalThenHash sorts descending by Total, breaking ties by
// hash((keyword, date_seed)) for deterministic, non-arbitrary ordering.
func sortByTotalThenHash(scored []models.ScoredNiche, seed uint64) {
	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].Total != scored[j].Total {
			return scored[i].Total > scored[j].Total
		}
		return tieBreakHash(scored[i].Candidate.Keyword, seed) < tieBreakHash(scored[j].Candidate.Keyword, seed)
	})
}

func tieBreakHash(keyword string, seed uint64) uint64 {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, seed)
	h := sha256.New()
	h.Write([]byte(keyword))
	h.Write(buf)
	sum := h.Sum(nil)
	return binary.BigEndian.Uint64(sum[:8])
}

// PickAndRecord reads repo's current history, picks a niche for d, and
// upserts the resulting entry back through repo. The read and the upsert
// are separate calls with no lock held between them. A
// database.NicheHistoryRepo upserts with a single INSERT ... ON CONFLICT,
// so processes racing the same date still leave one row for it (the last
// writer wins); FileHistoryStore has no such guard, matching its
// single-process use.
func (p *Picker) PickAndRecord(ctx context.Context, repo HistoryRepository, d time.Time) (models.PickResult, error) {
	history, err := repo.Entries(ctx)
	if err != nil {
		return models.PickResult{}, err
	}

	result, err := p.Pick(d, history)
	if err != nil {
		return models.PickResult{}, err
	}

	entry := models.NicheHistoryEntry{
		Date:        result.Date,
		Niche:       result.Niche.Keyword,
		Category:    result.Niche.Category,
		Subcategory: result.Niche.Subcategory,
		Intent:      result.Niche.Intent,
	}
	if err := repo.Upsert(ctx, entry); err != nil {
		return models.PickResult{}, err
	}
	return result, nil
}
