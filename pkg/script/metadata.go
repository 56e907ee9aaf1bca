package script

import (
	"regexp"
	"strings"
)

var (
	avatarIntroSection    = sectionPattern("avatar intro")
	youtubeDescSection    = sectionPattern("youtube description")
	thumbnailHeadlSection = sectionPattern("thumbnail headlines")
)

// sectionPattern builds a regex matching a "<label>:" heading line
// followed by its content, up to the next recognized label or end of
// text.
func sectionPattern(label string) *regexp.Regexp {
	return regexp.MustCompile(`(?is)` + regexp.QuoteMeta(label) + `\s*:?\s*\n(.*?)(?:\n\s*(?:avatar intro|youtube description|thumbnail headlines)\s*:?\s*\n|\z)`)
}

// ExtractMetadata scans text (the full refined output, including any
// trailing metadata sections the body extraction trimmed away) for the
// avatar intro, YouTube description, and thumbnail headline lines, per
// spec.md §4.7 step 4.
func ExtractMetadata(text string) (avatarIntro, youtubeDescription string, thumbnailHeadlines []string) {
	avatarIntro = firstGroup(avatarIntroSection, text)
	youtubeDescription = firstGroup(youtubeDescSection, text)

	if raw := firstGroup(thumbnailHeadlSection, text); raw != "" {
		for _, line := range strings.Split(raw, "\n") {
			line = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "-"))
			if line != "" {
				thumbnailHeadlines = append(thumbnailHeadlines, strings.TrimSpace(line))
			}
		}
	}
	return
}

func firstGroup(re *regexp.Regexp, text string) string {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}
