package research

import (
	"regexp"
	"strings"
)

// stopWords halt a model-tail match — any of these tokens appearing after
// a brand name ends the product name there rather than absorbing the
// rest of the sentence.
var stopWords = map[string]bool{
	"is": true, "are": true, "has": true, "was": true, "with": true,
	"for": true, "and": true, "the": true, "our": true, "we": true,
	"vs": true, "offers": true, "from": true, "this": true, "that": true,
	"comes": true, "gets": true, "delivers": true, "features": true,
	"brings": true, "remains": true, "earns": true, "makes": true,
	"takes": true, "sits": true, "stands": true,
}

// modelTailPattern captures a run of title-cased/alphanumeric tokens
// immediately following a brand name — the candidate "model" portion of
// a product mention, e.g. "Sony WH-1000XM5" after matching brand "Sony".
var modelTailPattern = regexp.MustCompile(`^[\s:]+([A-Za-z0-9][A-Za-z0-9\-\.]*(?:\s+[A-Za-z0-9][A-Za-z0-9\-\.]*){0,6})`)

// boundaryPattern finds the earliest hard boundary in a model-tail match:
// commas, pipes, bullets, spaced dashes, em/en dashes, sentence
// boundaries ("X. Y"), and "…Read more" tails.
var boundaryPattern = regexp.MustCompile(`,|\||•|·| - | – | — |\.\s+[A-Z]|…\s*Read more`)

const maxProductNameLen = 80

// Mention is a raw product-name extraction from one piece of result text,
// before aggregation across sources.
type Mention struct {
	ProductName string
	Brand       string
}

// ExtractMentions scans text (title + description) for brand-anchored
// product mentions using the lexicon first, falling back to nothing if
// no known brand appears — this spec does not attempt brand-less
// extraction, since the false-positive rate would be unacceptable.
func ExtractMentions(text string) []Mention {
	var mentions []Mention
	for _, brand := range Brands {
		idx := findWordBoundary(text, brand)
		if idx < 0 {
			continue
		}
		rest := text[idx+len(brand):]
		m := modelTailPattern.FindStringSubmatch(rest)
		if m == nil {
			continue
		}
		tail := cutAtBoundary(m[1])
		name := strings.TrimSpace(brand + " " + tail)
		if !validProductName(brand, tail, name) {
			continue
		}
		mentions = append(mentions, Mention{ProductName: name, Brand: brand})
	}
	return mentions
}

// findWordBoundary finds brand in text as a whole-word, case-sensitive
// match (brand capitalization is meaningful: "JBL" should not match
// inside "jblah").
func findWordBoundary(text, brand string) int {
	idx := strings.Index(text, brand)
	for idx >= 0 {
		before := idx == 0 || !isWordChar(text[idx-1])
		afterIdx := idx + len(brand)
		after := afterIdx >= len(text) || !isWordChar(text[afterIdx])
		if before && after {
			return idx
		}
		next := strings.Index(text[idx+1:], brand)
		if next < 0 {
			return -1
		}
		idx = idx + 1 + next
	}
	return -1
}

func isWordChar(b byte) bool {
	return b == '_' ||
		(b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

// cutAtBoundary truncates a raw model-tail match at the first hard
// boundary token, then at the first stop-word after its leading word (a
// stop-word leading word is left for validProductName to reject).
func cutAtBoundary(tail string) string {
	loc := boundaryPattern.FindStringIndex(tail)
	if loc != nil {
		tail = tail[:loc[0]]
	}
	fields := strings.Fields(tail)
	for i := 1; i < len(fields); i++ {
		if stopWords[strings.ToLower(fields[i])] {
			fields = fields[:i]
			break
		}
	}
	return strings.Join(fields, " ")
}

// validProductName rejects candidates per spec.md §4.4: empty model
// portion, a first word that is itself a stop-word, or a total name
// exceeding 80 chars.
func validProductName(brand, tail, fullName string) bool {
	if strings.TrimSpace(tail) == "" {
		return false
	}
	firstWord := strings.ToLower(strings.Fields(tail)[0])
	if stopWords[firstWord] {
		return false
	}
	if len(fullName) > maxProductNameLen {
		return false
	}
	return true
}

// editorialLabels are the recognized "best X" / "editor's choice" style
// phrases extracted alongside a product mention.
var editorialLabels = []string{
	"best overall", "best budget", "best value", "editor's choice",
	"upgrade pick", "best splurge", "best premium", "best for beginners",
	"best for gaming", "best for travel", "top pick",
}

// ExtractLabel returns the first recognized editorial label found in
// text, lowercased, or "" if none match.
func ExtractLabel(text string) string {
	lower := strings.ToLower(text)
	for _, label := range editorialLabels {
		if strings.Contains(lower, label) {
			return label
		}
	}
	return ""
}
