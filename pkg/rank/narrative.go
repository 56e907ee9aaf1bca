package rank

import (
	"fmt"
	"strings"

	"github.com/ridgeline-media/topfive/pkg/models"
)

// downsideKeywords mark a key-claim/reason string as describing a
// weakness rather than a strength, per spec.md §4.6 step 6.
var downsideKeywords = []string{
	"downside", "drawback", "weakness", "complaint", "lacking", "missing",
	"disappointing", "worse", "cons", "mediocre", "struggles", "falls short",
	"only complaint", "but it", "however", "unfortunately", "trade-off",
}

const maxBenefits = 3

// labelFallbackAvoid is used when no downside keyword match exists for a
// product, keyed by category label.
var labelFallbackAvoid = map[models.CategoryLabel]string{
	models.LabelNoRegretPick:    "you need the absolute cheapest option regardless of quality",
	models.LabelBestValue:       "you want premium materials and are not budget-constrained",
	models.LabelBestUpgrade:     "you're on a tight budget",
	models.LabelBestForScenario: "your use case doesn't match this one",
	models.LabelBestAlternative: "one of the higher-ranked picks fits your needs",
}

// Synthesize fills Benefits, Downside, BuyThisIf, and AvoidThisIf on p,
// per spec.md §4.6 step 6. claims is the union of p's own KeyClaims and
// any additional per-source reasons the caller has collected.
func Synthesize(p *models.TopProduct, claims []string) {
	p.Benefits = extractBenefits(claims)
	p.Downside = extractDownside(claims)

	topBenefit := ""
	if len(p.Benefits) > 0 {
		topBenefit = p.Benefits[0]
	}
	p.BuyThisIf = composeBuyThisIf(p.CategoryLabel, topBenefit)
	p.AvoidThisIf = composeAvoidThisIf(p.CategoryLabel, p.Downside)
}

// extractBenefits takes up to 3 claims that do not contain a downside
// keyword.
func extractBenefits(claims []string) []string {
	var benefits []string
	for _, c := range claims {
		if c == "" || containsAny(strings.ToLower(c), downsideKeywords) {
			continue
		}
		benefits = append(benefits, c)
		if len(benefits) >= maxBenefits {
			break
		}
	}
	return benefits
}

// extractDownside returns the first claim containing a downside keyword.
func extractDownside(claims []string) string {
	for _, c := range claims {
		if containsAny(strings.ToLower(c), downsideKeywords) {
			return c
		}
	}
	return ""
}

func composeBuyThisIf(label models.CategoryLabel, topBenefit string) string {
	if topBenefit == "" {
		return fmt.Sprintf("you want the %s in this lineup", strings.ToLower(string(label)))
	}
	return fmt.Sprintf("you want %s — %s", strings.ToLower(string(label)), topBenefit)
}

func composeAvoidThisIf(label models.CategoryLabel, downside string) string {
	if downside != "" {
		return downside
	}
	if fallback, ok := labelFallbackAvoid[label]; ok {
		return fallback
	}
	return "this doesn't match what you're shopping for"
}
