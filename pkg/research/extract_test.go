package research

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractMentions_BasicBrandModel(t *testing.T) {
	mentions := ExtractMentions("The Sony WH-1000XM5 is our top pick for long flights.")
	if assert.Len(t, mentions, 1) {
		assert.Equal(t, "Sony", mentions[0].Brand)
		assert.Equal(t, "Sony WH-1000XM5", mentions[0].ProductName)
	}
}

func TestExtractMentions_StopsAtComma(t *testing.T) {
	mentions := ExtractMentions("Bose QuietComfort Ultra, a premium pick, delivers great ANC.")
	if assert.Len(t, mentions, 1) {
		assert.Equal(t, "Bose QuietComfort Ultra", mentions[0].ProductName)
	}
}

func TestExtractMentions_StopsAtSpacedDash(t *testing.T) {
	mentions := ExtractMentions("JBL Flip 6 - a great budget speaker for the beach.")
	if assert.Len(t, mentions, 1) {
		assert.Equal(t, "JBL Flip 6", mentions[0].ProductName)
	}
}

func TestExtractMentions_RejectsStopWordFirstToken(t *testing.T) {
	mentions := ExtractMentions("Sony is the best brand for headphones this year.")
	assert.Empty(t, mentions)
}

func TestExtractMentions_RejectsOverlongName(t *testing.T) {
	longTail := "X1 X2 X3 X4 X5 X6 X7 X8 X9 X10 X11 X12 X13 X14 X15"
	mentions := ExtractMentions("Sony " + longTail + " review")
	for _, m := range mentions {
		assert.LessOrEqual(t, len(m.ProductName), maxProductNameLen)
	}
}

func TestExtractMentions_NoKnownBrandReturnsEmpty(t *testing.T) {
	mentions := ExtractMentions("This obscure gadget from a no-name maker works fine.")
	assert.Empty(t, mentions)
}

func TestExtractLabel(t *testing.T) {
	assert.Equal(t, "best overall", ExtractLabel("Our Best Overall pick is..."))
	assert.Equal(t, "best value", ExtractLabel("the Best Value option here"))
	assert.Equal(t, "", ExtractLabel("nothing special about this one"))
}
