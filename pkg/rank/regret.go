package rank

import (
	"strings"

	"github.com/ridgeline-media/topfive/pkg/models"
)

// regretCap is the maximum accumulated regret total, per spec.md §4.6a.
const regretCap = 3.0

var warrantyPattern = []string{"warranty", "guarantee"}

// RegretTotal accumulates regret points for each risk signal present on
// p, capped at 3, per spec.md §4.6a:
//   - single source: +1
//   - no downside mentioned in key claims: +0.5
//   - no warranty info mentioned: +0.5
//   - extreme price (<$20 or >$800): +1
func RegretTotal(p models.VerifiedProduct) float64 {
	var total float64

	if len(p.Evidence) <= 1 {
		total += 1.0
	}

	if !hasDownsideSignal(p.KeyClaims) {
		total += 0.5
	}

	if !hasWarrantyMention(p.KeyClaims) {
		total += 0.5
	}

	if price, ok := ParsePrice(p.AmazonPrice); ok && (price < 20 || price > 800) {
		total += 1.0
	}

	if total > regretCap {
		total = regretCap
	}
	return total
}

func hasDownsideSignal(claims []string) bool {
	for _, c := range claims {
		if containsAny(strings.ToLower(c), downsideKeywords) {
			return true
		}
	}
	return false
}

func hasWarrantyMention(claims []string) bool {
	for _, c := range claims {
		if containsAny(strings.ToLower(c), warrantyPattern) {
			return true
		}
	}
	return false
}

func containsAny(haystack string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(haystack, n) {
			return true
		}
	}
	return false
}
