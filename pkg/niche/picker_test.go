package niche

import (
	"testing"
	"time"

	"github.com/ridgeline-media/topfive/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPool() []models.NicheCandidate {
	pool := []models.NicheCandidate{
		{Keyword: "a", Category: "cat1", Subcategory: "sub1", Intent: models.IntentGeneral, PriceMax: 50, ReviewCoverage: 5, AmazonDepth: 5, Monetization: 5},
		{Keyword: "b", Category: "cat2", Subcategory: "sub2", Intent: models.IntentFitness, PriceMax: 100, ReviewCoverage: 4, AmazonDepth: 4, Monetization: 4},
		{Keyword: "c", Category: "cat3", Subcategory: "sub3", Intent: models.IntentGaming, PriceMax: 500, ReviewCoverage: 3, AmazonDepth: 3, Monetization: 3},
	}
	for i := range pool {
		pool[i].DerivePriceBand()
	}
	return pool
}

func TestPick_Deterministic(t *testing.T) {
	p := NewPicker(testPool())
	d := time.Date(2026, 7, 31, 0, 0, 0, 0, time.UTC)

	r1, err := p.Pick(d, nil)
	require.NoError(t, err)
	r2, err := p.Pick(d, nil)
	require.NoError(t, err)

	assert.Equal(t, r1.Niche.Keyword, r2.Niche.Keyword)
}

func TestPick_ExcludesRecentlyUsedWithin60Days(t *testing.T) {
	p := NewPicker(testPool())
	d := time.Date(2026, 7, 31, 0, 0, 0, 0, time.UTC)
	history := []models.NicheHistoryEntry{
		{Date: "2026-07-30", Niche: "a", Category: "cat1", Subcategory: "sub1", Intent: "general"},
		{Date: "2026-07-29", Niche: "b", Category: "cat2", Subcategory: "sub2", Intent: "fitness"},
	}

	r, err := p.Pick(d, history)
	require.NoError(t, err)
	assert.Equal(t, "c", r.Niche.Keyword, "only c is outside the 60-day window")
}

func TestPick_RelaxesTo30DaysWhenPoolEmpty(t *testing.T) {
	pool := []models.NicheCandidate{
		{Keyword: "only", Category: "cat1", Subcategory: "sub1", Intent: models.IntentGeneral, PriceMax: 50},
	}
	p := NewPicker(pool)
	d := time.Date(2026, 7, 31, 0, 0, 0, 0, time.UTC)

	// Used 45 days ago: inside the 60-day window, outside the 30-day one.
	usedDate := d.Add(-45 * 24 * time.Hour)
	history := []models.NicheHistoryEntry{
		{Date: usedDate.Format("2006-01-02"), Niche: "only", Category: "cat1", Subcategory: "sub1", Intent: "general"},
	}

	r, err := p.Pick(d, history)
	require.NoError(t, err)
	assert.Equal(t, "only", r.Niche.Keyword)
}

func TestPick_FailsWhenNoAvailableNiches(t *testing.T) {
	pool := []models.NicheCandidate{
		{Keyword: "only", Category: "cat1", Subcategory: "sub1", Intent: models.IntentGeneral, PriceMax: 50},
	}
	p := NewPicker(pool)
	d := time.Date(2026, 7, 31, 0, 0, 0, 0, time.UTC)

	usedDate := d.Add(-10 * 24 * time.Hour)
	history := []models.NicheHistoryEntry{
		{Date: usedDate.Format("2006-01-02"), Niche: "only", Category: "cat1", Subcategory: "sub1", Intent: "general"},
	}

	_, err := p.Pick(d, history)
	assert.ErrorIs(t, err, ErrNoAvailableNiches)
}

func TestRotationBonus_AllBonusesApplyWhenNothingRecentlyUsed(t *testing.T) {
	d := time.Date(2026, 7, 31, 0, 0, 0, 0, time.UTC)
	c := models.NicheCandidate{Category: "cat1", Subcategory: "sub1", Intent: models.IntentGeneral}

	bonus := rotationBonus(c, nil, d)
	assert.Equal(t, 30, bonus)
}

func TestDateSeed_Deterministic(t *testing.T) {
	assert.Equal(t, dateSeed("2026-07-31"), dateSeed("2026-07-31"))
	assert.NotEqual(t, dateSeed("2026-07-31"), dateSeed("2026-08-01"))
}
