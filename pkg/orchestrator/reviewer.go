package orchestrator

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/ridgeline-media/topfive/pkg/models"
)

// expectedScriptSections is the canonical marker count a five-product
// script should contain after pkg/script's parse stage: five
// [PRODUCT_N] markers plus [CONCLUSION].
const expectedScriptSections = topFiveCount + 1

var productMarkerPattern = regexp.MustCompile(`\[PRODUCT_\d\]`)

// ReviewerGate never aborts a run — it only appends informational
// findings, per spec.md §4.9's "warnings only — does not abort". The
// rank stage's brand-diversity warning is published directly by
// pkg/rank.Ranker (it already holds the scored Top-5 in memory); this
// gate covers the script-section-count check and any other
// read-from-disk warning named in spec.md §4.9.
type ReviewerGate struct{}

// NewReviewerGate constructs a ReviewerGate. It holds no state.
func NewReviewerGate() *ReviewerGate { return &ReviewerGate{} }

// Check implements Gate. Unlike QAGate/SecurityGate, the returned
// []Violation is never used to abort — Runner only publishes it as a
// models.MsgReview.
func (g *ReviewerGate) Check(stage string, rc *models.RunContext) []Violation {
	if stage != StageScript {
		return nil
	}

	path := filepath.Join(rc.RootDir, "script", "script.txt")
	data, err := os.ReadFile(path)
	if err != nil {
		return []Violation{{Stage: StageScript, Reason: "script.txt missing, cannot check section count"}}
	}

	count := len(productMarkerPattern.FindAllString(string(data), -1))
	if count != topFiveCount {
		return []Violation{{
			Stage:  StageScript,
			Reason: fmt.Sprintf("script.txt has %d product markers, expected %d", count, expectedScriptSections-1),
		}}
	}
	return nil
}
