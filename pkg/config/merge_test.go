package config

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ridgeline-media/topfive/pkg/models"
)

func TestMergeNiche_NilUserReturnsBuiltinUnchanged(t *testing.T) {
	builtin := &NichePoolConfig{LookbackDays: 30}
	result := mergeNiche(builtin, nil)
	assert.Same(t, builtin, result)
}

func TestMergeNiche_AppendsExtraCandidatesAndOverridesLookback(t *testing.T) {
	builtin := &NichePoolConfig{
		LookbackDays:    30,
		ExtraCandidates: []models.NicheCandidate{{Keyword: "builtin widget"}},
	}
	user := &NichePoolConfig{
		LookbackDays:    14,
		ExtraCandidates: []models.NicheCandidate{{Keyword: "operator widget"}},
	}

	result := mergeNiche(builtin, user)
	assert.Equal(t, 14, result.LookbackDays)
	assert.Len(t, result.ExtraCandidates, 2)
	assert.Equal(t, "builtin widget", result.ExtraCandidates[0].Keyword)
	assert.Equal(t, "operator widget", result.ExtraCandidates[1].Keyword)

	// builtin must not be mutated
	assert.Len(t, builtin.ExtraCandidates, 1)
}

func TestMergeOutlets_OverridesExistingDomainAppendsNew(t *testing.T) {
	builtin := &OutletsConfig{
		WeightOverrides: []OutletOverride{{Domain: "rtings.com", Weight: 2.5}},
	}
	user := &OutletsConfig{
		WeightOverrides: []OutletOverride{
			{Domain: "rtings.com", Weight: 4.0},
			{Domain: "reviewed.com", Weight: 1.0},
		},
		AllowedResearchDomains: []string{"reviewed.com"},
	}

	result := mergeOutlets(builtin, user)
	assert.Len(t, result.WeightOverrides, 2)
	assert.Contains(t, result.AllowedResearchDomains, "reviewed.com")

	byDomain := map[string]float64{}
	for _, o := range result.WeightOverrides {
		byDomain[o.Domain] = o.Weight
	}
	assert.Equal(t, 4.0, byDomain["rtings.com"])
	assert.Equal(t, 1.0, byDomain["reviewed.com"])

	// builtin must not be mutated
	assert.Len(t, builtin.WeightOverrides, 1)
}
