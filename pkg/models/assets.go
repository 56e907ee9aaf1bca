package models

// AssetSpec is one ranked product's visual generation request, produced
// by the assets stage and consumed by the manifest stage.
type AssetSpec struct {
	Rank        int    `json:"rank"`
	ProductName string `json:"product_name"`
	Prompt      string `json:"prompt"`
	Style       string `json:"style"`
	ReferenceURL string `json:"reference_url,omitempty"`
}

// AssetPlan is the full asset-generation request for a run, one entry
// per ranked product.
type AssetPlan struct {
	RunSlug string      `json:"run_slug"`
	Specs   []AssetSpec `json:"specs"`
}

// NarrationSegment is one spoken line assigned to a ranked product,
// with its position in the narration timeline.
type NarrationSegment struct {
	Rank        int     `json:"rank"`
	ProductName string  `json:"product_name"`
	Text        string  `json:"text"`
	Voice       string  `json:"voice"`
	StartMS     int64   `json:"start_ms"`
	DurationMS  int64   `json:"duration_ms"`
}

// NarrationPlan is the full voice-over timeline for a run.
type NarrationPlan struct {
	RunSlug        string             `json:"run_slug"`
	Segments       []NarrationSegment `json:"segments"`
	TotalDurationMS int64             `json:"total_duration_ms"`
}

// ManifestClip is one ranked product's entry in the edit manifest: its
// asset prompt and narration segment joined by rank.
type ManifestClip struct {
	Rank        int    `json:"rank"`
	ProductName string `json:"product_name"`
	CategoryLabel CategoryLabel `json:"category_label"`
	AssetPrompt string `json:"asset_prompt"`
	NarrationText string `json:"narration_text"`
	StartMS     int64  `json:"start_ms"`
	DurationMS  int64  `json:"duration_ms"`
}

// EditManifest is the NLE-facing edit plan written to
// resolve/edit_manifest.json, per spec.md §6.
type EditManifest struct {
	RunSlug  string         `json:"run_slug"`
	Niche    string         `json:"niche"`
	Clips    []ManifestClip `json:"clips"`
	Warnings []string       `json:"warnings,omitempty"`
}
