package models

// ScriptCallMeta records one LLM call's timing and token usage, for the
// per-call breakdown in script_gen_meta.json.
type ScriptCallMeta struct {
	Stage        string  `json:"stage"` // "draft" or "refine"
	Provider     string  `json:"provider"`
	DurationMS   int64   `json:"duration_ms"`
	TokenEstimate int    `json:"token_estimate"`
}

// ScriptGenMeta is the script generator's output metadata, emitted
// alongside script.txt as script_gen_meta.json.
type ScriptGenMeta struct {
	AvatarIntro        string           `json:"avatar_intro,omitempty"`
	YoutubeDescription string           `json:"youtube_description,omitempty"`
	ThumbnailHeadlines []string         `json:"thumbnail_headlines,omitempty"`
	Calls              []ScriptCallMeta `json:"calls"`
	TotalDurationMS    int64            `json:"total_duration_ms"`
	TotalTokenEstimate int              `json:"total_token_estimate"`
}
