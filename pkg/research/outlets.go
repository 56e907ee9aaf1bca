// Package research implements reviews-first product discovery: querying a
// whitelisted outlet set, extracting product mentions from result text,
// and aggregating them into an evidence-scored shortlist.
package research

// Outlet is a whitelisted review publication and its source weight used
// in evidence scoring.
type Outlet struct {
	Name   string
	Domain string
	Weight float64
}

// Outlets is the fixed whitelist from spec.md §4.4. Order does not affect
// scoring; it only determines query issue order.
var Outlets = []Outlet{
	{Name: "Wirecutter", Domain: "nytimes.com/wirecutter", Weight: 3.0},
	{Name: "RTINGS", Domain: "rtings.com", Weight: 2.5},
	{Name: "Tom's Guide", Domain: "tomsguide.com", Weight: 2.0},
	{Name: "PCMag", Domain: "pcmag.com", Weight: 2.0},
	{Name: "The Verge", Domain: "theverge.com", Weight: 2.0},
	{Name: "CNET", Domain: "cnet.com", Weight: 2.0},
	{Name: "TechRadar", Domain: "techradar.com", Weight: 1.5},
	{Name: "Good Housekeeping", Domain: "goodhousekeeping.com", Weight: 1.5},
	{Name: "Popular Mechanics", Domain: "popularmechanics.com", Weight: 1.5},
}

// WeightForDomain returns the configured weight for a result's source
// domain, matching by suffix so "www.rtings.com" still resolves to
// "rtings.com". Returns (0, false) for an unrecognized domain.
func WeightForDomain(domain string) (float64, bool) {
	for _, o := range Outlets {
		if hasDomainSuffix(domain, o.Domain) {
			return o.Weight, true
		}
	}
	return 0, false
}

func hasDomainSuffix(domain, suffix string) bool {
	if domain == suffix {
		return true
	}
	if len(domain) > len(suffix) && domain[len(domain)-len(suffix)-1:] == "."+suffix {
		return true
	}
	return false
}
