package research

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// SearchResult is one organic result from a site-scoped search query.
type SearchResult struct {
	Title       string
	Description string
	URL         string
}

// SearchClient issues a "site:<domain> <query>" search and returns the
// top organic results. The concrete wire protocol is an external
// collaborator (spec.md §1); this interface is all the aggregator needs.
type SearchClient interface {
	Search(ctx context.Context, query string, limit int) ([]SearchResult, error)
}

// BraveSearchClient implements SearchClient against the Brave Search API,
// the search backend spec.md §6 lists (BRAVE_SEARCH_API_KEY).
type BraveSearchClient struct {
	apiKey     string
	httpClient *http.Client
	baseURL    string
}

// NewBraveSearchClient builds a client. An empty apiKey is allowed at
// construction time — the first Search call will fail with a "config"
// classified error, per spec.md §6's "missing a required key yields a
// config error".
func NewBraveSearchClient(apiKey string) *BraveSearchClient {
	return &BraveSearchClient{
		apiKey:     apiKey,
		httpClient: &http.Client{},
		baseURL:    "https://api.search.brave.com/res/v1/web/search",
	}
}

type braveResponse struct {
	Web struct {
		Results []struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			URL         string `json:"url"`
		} `json:"results"`
	} `json:"web"`
}

// Search issues query against the Brave Search API, returning up to limit
// organic results.
func (c *BraveSearchClient) Search(ctx context.Context, query string, limit int) ([]SearchResult, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("missing configuration: BRAVE_SEARCH_API_KEY not configured")
	}

	reqURL := fmt.Sprintf("%s?q=%s&count=%d", c.baseURL, url.QueryEscape(query), limit)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build search request: %w", err)
	}
	req.Header.Set("X-Subscription-Token", c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, fmt.Errorf("brave search 401: credentials rejected")
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("brave search returned HTTP %d", resp.StatusCode)
	}

	var parsed braveResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode brave search response: %w", err)
	}

	results := make([]SearchResult, 0, len(parsed.Web.Results))
	for i, r := range parsed.Web.Results {
		if i >= limit {
			break
		}
		results = append(results, SearchResult{Title: r.Title, Description: r.Description, URL: r.URL})
	}
	return results, nil
}
