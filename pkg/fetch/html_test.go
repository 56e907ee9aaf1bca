package fetch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTMLToText_StripsNonContentTags(t *testing.T) {
	html := `
	<html><body>
		<nav>Site Nav</nav>
		<header>Header</header>
		<script>evil()</script>
		<style>.x{}</style>
		<p>First paragraph.</p>
		<p>Second paragraph.</p>
		<footer>Footer</footer>
	</body></html>`

	text, err := HTMLToText(html)
	require.NoError(t, err)

	assert.NotContains(t, text, "Site Nav")
	assert.NotContains(t, text, "Header")
	assert.NotContains(t, text, "evil()")
	assert.NotContains(t, text, "Footer")
	assert.Contains(t, text, "First paragraph.")
	assert.Contains(t, text, "Second paragraph.")
}

func TestHTMLToText_CollapsesInlineWhitespace(t *testing.T) {
	html := `<p>hello      world   \n   foo</p>`
	text, err := HTMLToText(html)
	require.NoError(t, err)
	assert.NotContains(t, text, "  ")
}

func TestHTMLToText_BreaksOnBlockTags(t *testing.T) {
	html := `<div><h1>Title</h1><p>Body text</p></div>`
	text, err := HTMLToText(html)
	require.NoError(t, err)
	assert.Contains(t, text, "Title\nBody text")
}
