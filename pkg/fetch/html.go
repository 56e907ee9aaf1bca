package fetch

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// strippedTags are removed wholesale — their entire subtree, not just the
// tag — before text extraction.
var strippedTags = []string{
	"script", "style", "noscript", "nav", "footer", "header",
	"aside", "iframe", "form", "button", "svg",
}

// blockTags force a line break after their content so extracted text
// keeps paragraph/heading structure instead of running words together.
var blockTags = map[string]bool{
	"p": true, "div": true, "br": true, "li": true, "tr": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"section": true, "article": true, "blockquote": true, "pre": true,
}

// HTMLToText converts raw HTML into plain text: strips non-content
// subtrees, emits a line break on block-level tags, and collapses inline
// whitespace. Used for both the direct HTML tier and the browser tier,
// which share the same conversion once they have DOM HTML in hand.
func HTMLToText(rawHTML string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return "", err
	}

	for _, tag := range strippedTags {
		doc.Find(tag).Remove()
	}

	var sb strings.Builder
	var walk func(*goquery.Selection)
	walk = func(sel *goquery.Selection) {
		sel.Contents().Each(func(_ int, node *goquery.Selection) {
			if goquery.NodeName(node) == "#text" {
				sb.WriteString(node.Text())
				return
			}
			walk(node)
			if blockTags[goquery.NodeName(node)] {
				sb.WriteByte('\n')
			}
		})
	}
	walk(doc.Selection)

	return collapseWhitespace(sb.String()), nil
}

// collapseWhitespace runs inline whitespace (spaces/tabs) together while
// preserving line breaks, then trims blank lines down to at most one.
func collapseWhitespace(s string) string {
	lines := strings.Split(s, "\n")
	var out []string
	blank := false
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line == "" {
			if blank {
				continue
			}
			blank = true
		} else {
			blank = false
		}
		out = append(out, line)
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}
