package orchestrator

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/ridgeline-media/topfive/pkg/fsutil"
	"github.com/ridgeline-media/topfive/pkg/models"
)

// urlPattern finds bare http(s) URLs embedded in free text, used to scan
// research_notes.md independently of the shortlist's structured Sources.
var urlPattern = regexp.MustCompile(`https?://[^\s)\]"']+`)

// SecurityGate independently re-derives the research-stage domain check
// from both the structured shortlist.json and the free-text
// research_notes.md, per spec.md §4.9's "security agent... independently
// audits shortlist and research report for unauthorized domains; aborts
// on any violation." It only ever runs at StageResearch — every other
// stage is a no-op, since the spec scopes this agent to the research
// domain allowlist.
type SecurityGate struct{}

// NewSecurityGate constructs a SecurityGate. It holds no state.
func NewSecurityGate() *SecurityGate { return &SecurityGate{} }

// Check implements Gate.
func (g *SecurityGate) Check(stage string, rc *models.RunContext) []Violation {
	if stage != StageResearch {
		return nil
	}

	var violations []Violation

	shortlistPath := filepath.Join(rc.RootDir, "inputs", "shortlist.json")
	var shortlist []models.ProductCandidate
	if err := fsutil.ReadJSON(shortlistPath, &shortlist); err == nil {
		violations = append(violations, checkAllowedDomains(StageResearch, shortlist)...)
	}

	notesPath := filepath.Join(rc.RootDir, "inputs", "research_notes.md")
	if data, err := os.ReadFile(notesPath); err == nil {
		for _, match := range urlPattern.FindAllString(string(data), -1) {
			host := hostOf(match)
			if host != "" && !allowedResearchDomains[host] {
				violations = append(violations, Violation{
					Stage:  StageResearch,
					Reason: fmt.Sprintf("research_notes.md cites disallowed domain %s (%s)", host, match),
				})
			}
		}
	}

	return violations
}
