package orchestrator

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/ridgeline-media/topfive/pkg/fsutil"
	"github.com/ridgeline-media/topfive/pkg/models"
)

// allowedResearchDomains is ALLOWED_RESEARCH_DOMAINS from spec.md §4.9.
var allowedResearchDomains = map[string]bool{
	"nytimes.com": true,
	"rtings.com":  true,
	"pcmag.com":   true,
}

const minShortlistEntries = 8
const minVerifiedEntries = 5
const topFiveCount = 5

// QAGate checks the per-stage invariants from spec.md §4.9 by re-reading
// each stage's flushed output from disk, never from in-memory state
// (spec.md §5's "downstream stages must re-read from disk" rule applies
// equally to the gate that checks them).
type QAGate struct{}

// NewQAGate constructs a QAGate. It holds no state.
func NewQAGate() *QAGate { return &QAGate{} }

// Check implements Gate.
func (g *QAGate) Check(stage string, rc *models.RunContext) []Violation {
	switch stage {
	case StageNiche:
		return g.checkNiche(rc)
	case StageResearch:
		return g.checkResearch(rc)
	case StageVerify:
		return g.checkVerify(rc)
	case StageRank:
		return g.checkRank(rc)
	case StageManifest:
		return g.checkManifest(rc)
	default:
		return nil
	}
}

func (g *QAGate) checkNiche(rc *models.RunContext) []Violation {
	var violations []Violation
	if rc.Niche == "" {
		violations = append(violations, Violation{Stage: StageNiche, Reason: "run context has no niche set"})
	}
	path := filepath.Join(rc.RootDir, "inputs", "niche.txt")
	if _, err := os.Stat(path); err != nil {
		violations = append(violations, Violation{Stage: StageNiche, Reason: "niche.txt not present"})
	}
	return violations
}

func (g *QAGate) checkResearch(rc *models.RunContext) []Violation {
	path := filepath.Join(rc.RootDir, "inputs", "shortlist.json")
	var shortlist []models.ProductCandidate
	if err := fsutil.ReadJSON(path, &shortlist); err != nil {
		return []Violation{{Stage: StageResearch, Reason: "shortlist.json missing or unreadable"}}
	}

	var violations []Violation
	if len(shortlist) < minShortlistEntries {
		violations = append(violations, Violation{
			Stage:  StageResearch,
			Reason: fmt.Sprintf("shortlist has %d entries, need at least %d", len(shortlist), minShortlistEntries),
		})
	}
	violations = append(violations, checkAllowedDomains(StageResearch, shortlist)...)
	return violations
}

func (g *QAGate) checkVerify(rc *models.RunContext) []Violation {
	path := filepath.Join(rc.RootDir, "inputs", "verified.json")
	var verified []models.VerifiedProduct
	if err := fsutil.ReadJSON(path, &verified); err != nil {
		return []Violation{{Stage: StageVerify, Reason: "verified.json missing or unreadable"}}
	}
	if len(verified) < minVerifiedEntries {
		return []Violation{{
			Stage:  StageVerify,
			Reason: fmt.Sprintf("verified.json has %d entries, need at least %d", len(verified), minVerifiedEntries),
		}}
	}
	return nil
}

func (g *QAGate) checkRank(rc *models.RunContext) []Violation {
	path := filepath.Join(rc.RootDir, "inputs", "products.json")
	var products []models.TopProduct
	if err := fsutil.ReadJSON(path, &products); err != nil {
		return []Violation{{Stage: StageRank, Reason: "products.json missing or unreadable"}}
	}
	if len(products) != topFiveCount {
		return []Violation{{
			Stage:  StageRank,
			Reason: fmt.Sprintf("products.json has %d ranked entries, need exactly %d", len(products), topFiveCount),
		}}
	}
	for _, p := range products {
		if p.AffiliateURL == "" {
			return []Violation{{Stage: StageRank, Reason: fmt.Sprintf("product %q has no affiliate URL", p.ProductName)}}
		}
	}
	return nil
}

func (g *QAGate) checkManifest(rc *models.RunContext) []Violation {
	resolveDir := filepath.Join(rc.RootDir, "resolve")
	var violations []Violation
	for _, name := range []string{"edit_manifest.json", "markers.csv", "notes.md"} {
		if _, err := os.Stat(filepath.Join(resolveDir, name)); err != nil {
			violations = append(violations, Violation{Stage: StageManifest, Reason: fmt.Sprintf("%s missing from resolve dir", name)})
		}
	}
	return violations
}

// checkAllowedDomains reports every candidate source URL whose host is
// not in allowedResearchDomains.
func checkAllowedDomains(stage string, candidates []models.ProductCandidate) []Violation {
	var violations []Violation
	for _, c := range candidates {
		for _, src := range c.Sources {
			host := hostOf(src.URL)
			if host != "" && !allowedResearchDomains[host] {
				violations = append(violations, Violation{
					Stage:  stage,
					Reason: fmt.Sprintf("source %q for %q uses disallowed domain %s", src.URL, c.ProductName, host),
				})
			}
		}
	}
	return violations
}

// hostOf extracts the registrable host from a URL, stripping any "www."
// prefix so "www.rtings.com" matches "rtings.com".
func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	host := u.Hostname()
	if len(host) > 4 && host[:4] == "www." {
		host = host[4:]
	}
	return host
}
