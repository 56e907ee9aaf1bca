package rank

import (
	"testing"

	"github.com/ridgeline-media/topfive/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestAssignLabel_RankOneIsAlwaysNoRegret(t *testing.T) {
	p := models.VerifiedProduct{KeyClaims: []string{"premium"}}
	assert.Equal(t, models.LabelNoRegretPick, AssignLabel(1, p))
}

func TestAssignLabel_BestValueFromClaims(t *testing.T) {
	p := models.VerifiedProduct{KeyClaims: []string{"best value"}}
	assert.Equal(t, models.LabelBestValue, AssignLabel(2, p))
}

func TestAssignLabel_BestUpgradeFromClaims(t *testing.T) {
	p := models.VerifiedProduct{KeyClaims: []string{"upgrade pick"}}
	assert.Equal(t, models.LabelBestUpgrade, AssignLabel(3, p))
}

func TestAssignLabel_ScenarioFromClaims(t *testing.T) {
	p := models.VerifiedProduct{KeyClaims: []string{"great for gaming sessions"}}
	assert.Equal(t, models.LabelBestForScenario, AssignLabel(4, p))
}

func TestAssignLabel_HighPriceFallsBackToUpgrade(t *testing.T) {
	p := models.VerifiedProduct{AmazonPrice: "$275.00"}
	assert.Equal(t, models.LabelBestUpgrade, AssignLabel(5, p))
}

func TestAssignLabel_RankDefaultFallback(t *testing.T) {
	p := models.VerifiedProduct{AmazonPrice: "$80.00"}
	assert.Equal(t, models.LabelBestValue, AssignLabel(2, p))
	assert.Equal(t, models.LabelBestUpgrade, AssignLabel(3, p))
	assert.Equal(t, models.LabelBestForScenario, AssignLabel(4, p))
	assert.Equal(t, models.LabelBestAlternative, AssignLabel(5, p))
}
