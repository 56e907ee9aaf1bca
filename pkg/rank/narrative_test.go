package rank

import (
	"testing"

	"github.com/ridgeline-media/topfive/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestSynthesize_ExtractsBenefitsAndDownside(t *testing.T) {
	tp := &models.TopProduct{CategoryLabel: models.LabelBestValue}
	claims := []string{
		"30-hour battery life",
		"excellent active noise cancellation",
		"downside: the app is clunky",
		"comfortable for long sessions",
	}
	Synthesize(tp, claims)

	assert.Len(t, tp.Benefits, 3)
	assert.NotContains(t, tp.Benefits, "downside: the app is clunky")
	assert.Equal(t, "downside: the app is clunky", tp.Downside)
	assert.Contains(t, tp.BuyThisIf, "best value")
	assert.Equal(t, tp.Downside, tp.AvoidThisIf)
}

func TestSynthesize_FallsBackWhenNoDownsideFound(t *testing.T) {
	tp := &models.TopProduct{CategoryLabel: models.LabelBestUpgrade}
	Synthesize(tp, []string{"premium build quality"})

	assert.Equal(t, "", tp.Downside)
	assert.Equal(t, "you're on a tight budget", tp.AvoidThisIf)
}

func TestSynthesize_NoBenefitsFallsBackToLabel(t *testing.T) {
	tp := &models.TopProduct{CategoryLabel: models.LabelNoRegretPick}
	Synthesize(tp, nil)

	assert.Empty(t, tp.Benefits)
	assert.Contains(t, tp.BuyThisIf, "no-regret pick")
}
