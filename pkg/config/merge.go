package config

import "github.com/ridgeline-media/topfive/pkg/models"

// mergeNiche appends operator-supplied candidates to the built-in pool
// and lets a configured lookback override the default window.
func mergeNiche(builtin *NichePoolConfig, user *NichePoolConfig) *NichePoolConfig {
	if user == nil {
		return builtin
	}
	result := &NichePoolConfig{
		LookbackDays:    builtin.LookbackDays,
		ExtraCandidates: append([]models.NicheCandidate{}, builtin.ExtraCandidates...),
	}
	if user.LookbackDays > 0 {
		result.LookbackDays = user.LookbackDays
	}
	result.ExtraCandidates = append(result.ExtraCandidates, user.ExtraCandidates...)
	return result
}

// mergeOutlets layers weight overrides and extra allowed research
// domains on top of the built-in whitelist. User-supplied overrides for
// a domain already present win; new domains are appended.
func mergeOutlets(builtin *OutletsConfig, user *OutletsConfig) *OutletsConfig {
	if user == nil {
		return builtin
	}
	result := &OutletsConfig{
		AllowedResearchDomains: append([]string{}, builtin.AllowedResearchDomains...),
		WeightOverrides:        append([]OutletOverride{}, builtin.WeightOverrides...),
	}
	result.AllowedResearchDomains = append(result.AllowedResearchDomains, user.AllowedResearchDomains...)

	byDomain := make(map[string]int, len(result.WeightOverrides))
	for i, o := range result.WeightOverrides {
		byDomain[o.Domain] = i
	}
	for _, o := range user.WeightOverrides {
		if i, ok := byDomain[o.Domain]; ok {
			result.WeightOverrides[i] = o
			continue
		}
		result.WeightOverrides = append(result.WeightOverrides, o)
	}
	return result
}
