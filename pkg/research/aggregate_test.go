package research

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "sony wh 1000xm5", Normalize("Sony WH-1000XM5"))
	assert.Equal(t, "bose qc ultra", Normalize("  Bose   QC Ultra!! "))
}

func TestAggregator_AddAccumulatesAcrossOutlets(t *testing.T) {
	agg := NewAggregator()
	sony := Outlets[0]  // Wirecutter
	rtings := Outlets[1] // RTINGS

	agg.Add(Mention{ProductName: "Sony WH-1000XM5", Brand: "Sony"}, sony, "best overall")
	agg.Add(Mention{ProductName: "sony wh-1000xm5", Brand: "Sony"}, rtings, "")

	list := agg.Shortlist()
	require.Len(t, list, 1)
	assert.Equal(t, 2, list[0].SourceCount)
	assert.Greater(t, list[0].EvidenceScore, sony.Weight)
}

func TestAggregator_Shortlist_QualifiesBySourceCountOrBestOverall(t *testing.T) {
	agg := NewAggregator()
	o1, o2, o3 := Outlets[0], Outlets[1], Outlets[2]

	// Two sources -> qualifies on source_count.
	agg.Add(Mention{ProductName: "Bose QuietComfort Ultra", Brand: "Bose"}, o1, "")
	agg.Add(Mention{ProductName: "Bose QuietComfort Ultra", Brand: "Bose"}, o2, "")

	// Single source but "best overall" -> qualifies.
	agg.Add(Mention{ProductName: "JBL Flip 6", Brand: "JBL"}, o3, "best overall")

	// Single source, no label -> does not qualify directly (may top up).
	agg.Add(Mention{ProductName: "Anker Soundcore Q20", Brand: "Anker"}, o3, "")

	list := agg.Shortlist()
	names := make(map[string]bool)
	for _, c := range list {
		names[Normalize(c.ProductName)] = true
	}
	assert.True(t, names[Normalize("Bose QuietComfort Ultra")])
	assert.True(t, names[Normalize("JBL Flip 6")])
}

func TestAggregator_Shortlist_TopsUpWhenUnderfilled(t *testing.T) {
	agg := NewAggregator()
	o := Outlets[0]
	// Only one qualifying candidate, but several single-source ones to top up with.
	agg.Add(Mention{ProductName: "Bose QuietComfort Ultra", Brand: "Bose"}, o, "best overall")
	for i, brand := range []string{"JBL", "Anker", "Sony", "Beats"} {
		_ = i
		agg.Add(Mention{ProductName: brand + " Model X", Brand: brand}, o, "")
	}

	list := agg.Shortlist()
	assert.GreaterOrEqual(t, len(list), 1)
	assert.LessOrEqual(t, len(list), shortlistTopUp)
}

func TestAggregator_Shortlist_CapsAt15(t *testing.T) {
	agg := NewAggregator()
	brands := []string{
		"Sony", "Bose", "JBL", "Anker", "Beats", "Sennheiser", "Jabra",
		"Skullcandy", "Marshall", "Bang & Olufsen", "Shure", "Audio-Technica",
		"Logitech", "Razer", "SteelSeries", "HyperX", "Corsair", "Apple",
	}
	for _, b := range brands {
		agg.Add(Mention{ProductName: b + " Thing One", Brand: b}, Outlets[0], "best overall")
	}
	list := agg.Shortlist()
	assert.LessOrEqual(t, len(list), shortlistCap)
}
