package rank

import (
	"strings"

	"github.com/ridgeline-media/topfive/pkg/models"
)

// upgradeKeywords trigger a Best Upgrade label from key_claims, per
// spec.md §4.6 step 4.
var upgradeKeywords = []string{"upgrade pick", "premium", "splurge"}

// scenarioKeywords trigger a Best for Specific Scenario label.
var scenarioKeywords = []string{
	"travel", "calls", "gaming", "running", "music", "rooms", "commute", "office",
}

// defaultLabelByRank is the fallback buyer label when nothing in a
// product's key_claims or price distinguishes it, per spec.md §4.6 step 4.
var defaultLabelByRank = map[int]models.CategoryLabel{
	2: models.LabelBestValue,
	3: models.LabelBestUpgrade,
	4: models.LabelBestForScenario,
	5: models.LabelBestAlternative,
}

// AssignLabel returns the buyer-facing label for a product at the given
// rank (1-indexed), per spec.md §4.6 step 4's ordered rule set.
func AssignLabel(rank int, p models.VerifiedProduct) models.CategoryLabel {
	if rank == 1 {
		return models.LabelNoRegretPick
	}

	claims := strings.ToLower(strings.Join(p.KeyClaims, " "))
	if strings.Contains(claims, "best value") {
		return models.LabelBestValue
	}
	if containsAny(claims, upgradeKeywords) {
		return models.LabelBestUpgrade
	}
	if containsAny(claims, scenarioKeywords) {
		return models.LabelBestForScenario
	}

	if price, ok := ParsePrice(p.AmazonPrice); ok && price > 250 {
		return models.LabelBestUpgrade
	}

	if label, ok := defaultLabelByRank[rank]; ok {
		return label
	}
	return models.LabelBestAlternative
}
