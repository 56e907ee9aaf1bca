package models

import "time"

// FetchMethod records which tier of the cost-ordered fetch cascade
// produced a result.
type FetchMethod string

// Recognized fetch methods. Cached results are recorded as
// "cached:<original_method>" (e.g. "cached:markdown"); use
// NewCachedMethod to build that value.
const (
	FetchMethodMarkdown FetchMethod = "markdown"
	FetchMethodHTML     FetchMethod = "html"
	FetchMethodBrowser  FetchMethod = "browser"
	FetchMethodFailed   FetchMethod = "failed"
)

// NewCachedMethod builds the "cached:<method>" tag for a cache hit.
func NewCachedMethod(original FetchMethod) FetchMethod {
	return FetchMethod("cached:" + string(original))
}

// FetchResult is the outcome of one fetch_* call.
type FetchResult struct {
	URL            string            `json:"url"`
	Text           string            `json:"text"`
	Method         FetchMethod       `json:"method"`
	ContentType    string            `json:"content_type,omitempty"`
	TokenEstimate  *int              `json:"token_estimate,omitempty"`
	ContentLength  int               `json:"content_length"`
	FetchedAt      time.Time         `json:"fetched_at"`
	Headers        map[string]string `json:"headers,omitempty"`
	ArtifactPath   string            `json:"artifact_path,omitempty"`
	RawHTML        string            `json:"-"` // only populated by HTTP/browser tiers
	Error          string            `json:"error,omitempty"`
}

// OK reports whether the fetch produced usable text, per spec.md §3:
// method != failed && len(text) > 0.
func (r *FetchResult) OK() bool {
	return r.Method != FetchMethodFailed && len(r.Text) > 0
}

// FetchCacheEntry is a TTL-indexed cache row. The text blob is stored
// on disk by the cache implementation; this struct is the metadata that
// travels with it.
type FetchCacheEntry struct {
	URL           string      `json:"url"`
	Method        FetchMethod `json:"method"`
	ContentType   string      `json:"content_type,omitempty"`
	TokenEstimate *int        `json:"token_estimate,omitempty"`
	ContentLength int         `json:"content_length"`
	FetchedAt     time.Time   `json:"fetched_at"`
}
