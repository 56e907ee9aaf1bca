package script

import (
	"regexp"
	"strconv"
	"strings"
)

// Canonical section markers the parser normalizes informal headings to,
// per spec.md §4.7 step 3.
const (
	markerHook            = "[HOOK]"
	markerRetentionReset  = "[RETENTION_RESET]"
	markerConclusion      = "[CONCLUSION]"
)

func markerProduct(n int) string {
	return "[PRODUCT_" + strconv.Itoa(n) + "]"
}

var (
	productHeadingPattern = regexp.MustCompile(`(?m)^\s*#\s*([1-5])\s*[-–—:]\s*.*$`)
	quickResetPattern     = regexp.MustCompile(`(?mi)^\s*Quick Reset\s*:?\s*$`)
	conclusionPattern     = regexp.MustCompile(`(?mi)^\s*Conclusion\s*:?\s*$`)
	horizontalRulePattern = regexp.MustCompile(`(?m)^\s*-{3,}\s*$`)
	productMarkerPattern  = regexp.MustCompile(`\[PRODUCT_[1-5]\]`)
)

// Normalize rewrites informal headings ("#5 – Name", "Quick Reset",
// "Conclusion") into their canonical bracketed markers and inserts
// [HOOK] before the first product marker when prose precedes it. It is
// idempotent: normalizing already-canonical text is a no-op.
func Normalize(text string) string {
	out := productHeadingPattern.ReplaceAllStringFunc(text, func(m string) string {
		sub := productHeadingPattern.FindStringSubmatch(m)
		n := int(sub[1][0] - '0')
		return markerProduct(n)
	})
	out = quickResetPattern.ReplaceAllString(out, markerRetentionReset)
	out = conclusionPattern.ReplaceAllString(out, markerConclusion)

	return insertHookMarker(out)
}

// insertHookMarker inserts [HOOK] immediately before the first product
// marker, unless [HOOK] is already present or there is no non-blank
// prose preceding the first product marker.
func insertHookMarker(text string) string {
	if strings.Contains(text, markerHook) {
		return text
	}
	loc := productMarkerPattern.FindStringIndex(text)
	if loc == nil {
		return text
	}
	preceding := strings.TrimSpace(text[:loc[0]])
	if preceding == "" {
		return text
	}
	return text[:loc[0]] + markerHook + "\n" + text[loc[0]:]
}

// metadataLinePattern matches the informal label lines the body
// extraction trims out (spec.md §4.7 step 3): "avatar intro",
// "youtube description", "thumbnail headlines", plus anything after them.
var metadataLinePattern = regexp.MustCompile(`(?mi)^\s*(avatar intro|youtube description|thumbnail headlines)\s*:?\s*$`)

// ExtractBody returns the text between the first canonical section
// marker and the end of the [CONCLUSION] section, with horizontal
// rules and metadata label lines trimmed out. Returns "" if no markers
// are present.
func ExtractBody(normalized string) string {
	firstMarkerLoc := firstMarkerIndex(normalized)
	if firstMarkerLoc < 0 {
		return ""
	}

	body := normalized[firstMarkerLoc:]

	if metaLoc := metadataLinePattern.FindStringIndex(body); metaLoc != nil {
		body = body[:metaLoc[0]]
	}

	body = horizontalRulePattern.ReplaceAllString(body, "")
	return strings.TrimSpace(body)
}

func firstMarkerIndex(text string) int {
	candidates := []int{-1}
	if loc := strings.Index(text, markerHook); loc >= 0 {
		candidates = append(candidates, loc)
	}
	if loc := productMarkerPattern.FindStringIndex(text); loc != nil {
		candidates = append(candidates, loc[0])
	}

	best := -1
	for _, c := range candidates {
		if c < 0 {
			continue
		}
		if best < 0 || c < best {
			best = c
		}
	}
	return best
}
