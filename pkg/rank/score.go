package rank

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/ridgeline-media/topfive/pkg/models"
)

// Composite score weights, per spec.md §4.6 step 2.
const (
	weightEvidence   = 3.0
	weightConfidence = 2.0
	weightPrice      = 1.0
	weightReviews    = 0.5
	weightRegret     = 2.5
)

var priceAmountPattern = regexp.MustCompile(`\$?([0-9]+(?:\.[0-9]{1,2})?)`)

// Score computes a product's Scorecard per spec.md §4.6 step 2 / §4.6a.
func Score(p models.VerifiedProduct) models.Scorecard {
	evidence := evidenceScore(p.Evidence)
	confidence := confidenceScore(p.MatchConfidence)
	price := priceScore(p.AmazonPrice)
	reviews := reviewsScore(p.AmazonReviewsCount)
	regret := RegretTotal(p)

	total := weightEvidence*evidence + weightConfidence*confidence +
		weightPrice*price + weightReviews*reviews - weightRegret*regret

	return models.Scorecard{
		Evidence:      evidence,
		Confidence:    confidence,
		Price:         price,
		Reviews:       reviews,
		RegretPenalty: weightRegret * regret,
		Total:         total,
	}
}

// evidenceScore = 2*|sources| + 2*has(Wirecutter) + 1.5*has(RTINGS).
func evidenceScore(sources []string) float64 {
	score := 2.0 * float64(len(sources))
	for _, s := range sources {
		switch s {
		case "Wirecutter":
			score += 2.0
		case "RTINGS":
			score += 1.5
		}
	}
	return score
}

func confidenceScore(c models.MatchConfidence) float64 {
	switch c {
	case models.ConfidenceHigh:
		return 3.0
	case models.ConfidenceMedium:
		return 1.5
	default:
		return 0.5
	}
}

// priceScore buckets the numeric $X.YZ parsed from amazonPrice, per
// spec.md §4.6 step 2. An unparseable price scores the "else" bucket.
func priceScore(amazonPrice string) float64 {
	p, ok := ParsePrice(amazonPrice)
	if !ok {
		return 1.0
	}
	switch {
	case p >= 50 && p <= 300:
		return 2.0
	case (p >= 30 && p < 50) || (p > 300 && p <= 500):
		return 1.5
	case p < 30:
		return 0.5
	default:
		return 1.0
	}
}

func reviewsScore(count int) float64 {
	switch {
	case count > 10000:
		return 2.0
	case count > 1000:
		return 1.5
	case count > 100:
		return 1.0
	default:
		return 0.5
	}
}

// ParsePrice extracts the numeric dollar amount from a raw display
// price like "$129.99". Returns (0, false) if no amount is found.
func ParsePrice(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	m := priceAmountPattern.FindStringSubmatch(raw)
	if m == nil {
		return 0, false
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
