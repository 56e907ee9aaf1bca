package marketplace

import "context"

// SearchResult is one marketplace listing returned by a Backend, before
// similarity scoring or affiliate-link construction.
type SearchResult struct {
	ASIN         string
	Title        string
	Price        string // raw display price, e.g. "$129.99"
	ImageURL     string
	Rating       float64
	ReviewsCount int
}

// Backend abstracts the two ways to query the marketplace: the signed
// PA-API path and the browser-search fallback. Both return ordered
// results; the caller never knows which one answered.
type Backend interface {
	Search(ctx context.Context, query string) ([]SearchResult, error)
}
