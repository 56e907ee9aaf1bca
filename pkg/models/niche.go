// Package models defines the value objects persisted and exchanged across
// the pipeline: niches, research candidates, marketplace verification,
// ranked products, fetch results, jobs, and bus messages. Every type here
// serializes to the snake_case JSON documented in spec.md §3; fields are
// tagged explicitly rather than relying on reflection-based renames, so the
// on-disk contract survives internal refactors.
package models

import "time"

// Intent is the audience/use-case tag attached to a niche candidate.
type Intent string

// Recognized niche intents.
const (
	IntentGeneral  Intent = "general"
	IntentGaming   Intent = "gaming"
	IntentTravel   Intent = "travel"
	IntentFitness  Intent = "fitness"
	IntentWork     Intent = "work"
	IntentCreative Intent = "creative"
)

// PriceBand buckets a niche by its typical product price range.
type PriceBand string

// Recognized price bands.
const (
	PriceBandBudget  PriceBand = "budget"
	PriceBandMid     PriceBand = "mid"
	PriceBandPremium PriceBand = "premium"
)

// NicheCandidate is one entry in the curated niche pool.
type NicheCandidate struct {
	Keyword         string    `json:"keyword"`
	Category        string    `json:"category"`
	Subcategory     string    `json:"subcategory"`
	Intent          Intent    `json:"intent"`
	PriceBand       PriceBand `json:"price_band,omitempty"`
	PriceMin        float64   `json:"price_min"`
	PriceMax        float64   `json:"price_max"`
	ReviewCoverage  int       `json:"review_coverage"`  // 1-5
	AmazonDepth     int       `json:"amazon_depth"`     // 1-5
	Monetization    int       `json:"monetization"`     // 1-5
}

// DerivePriceBand fills PriceBand from PriceMax when it is empty, per
// spec.md §3: <80 budget, <250 mid, else premium.
func (c *NicheCandidate) DerivePriceBand() {
	if c.PriceBand != "" {
		return
	}
	switch {
	case c.PriceMax < 80:
		c.PriceBand = PriceBandBudget
	case c.PriceMax < 250:
		c.PriceBand = PriceBandMid
	default:
		c.PriceBand = PriceBandPremium
	}
}

// StaticScore computes the candidate's base score: rc*4 + ad*3 + mon*5 + 10
// (max 70), per spec.md §3.
func (c *NicheCandidate) StaticScore() int {
	return c.ReviewCoverage*4 + c.AmazonDepth*3 + c.Monetization*5 + 10
}

// NicheHistoryEntry is one upserted-by-date row in the process-wide niche
// history log.
type NicheHistoryEntry struct {
	Date            string   `json:"date"` // YYYY-MM-DD
	Niche           string   `json:"niche"`
	VideoID         string   `json:"video_id,omitempty"`
	Category        string   `json:"category"`
	Subcategory     string   `json:"subcategory"`
	Intent          Intent   `json:"intent"`
	SeedKeywords    []string `json:"seed_keywords,omitempty"`
	FinalTop5ASINs  []string `json:"final_top5_asins,omitempty"`
}

// ScoredNiche is a NicheCandidate annotated with its rotation-adjusted
// total score for a specific pick date.
type ScoredNiche struct {
	Candidate    NicheCandidate `json:"candidate"`
	StaticScore  int            `json:"static_score"`
	RotationBonus int           `json:"rotation_bonus"`
	Total        int            `json:"total"`
}

// PickResult is the outcome of a niche pick for a single date.
type PickResult struct {
	Date      string       `json:"date"`
	Niche     NicheCandidate `json:"niche"`
	Total     int          `json:"total"`
	Threshold int          `json:"threshold_applied"`
	Candidates int         `json:"candidates_considered"`
	FetchedAt time.Time    `json:"fetched_at"`
}
