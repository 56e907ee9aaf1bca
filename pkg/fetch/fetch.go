// Package fetch implements the cost-ordered fetch cascade: cache, then
// markdown content negotiation, then HTML extraction, then a headless
// browser fallback. The in-memory cache in cache.go uses the same
// TTL-indexed double-checked-locking shape throughout this package.
package fetch

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/ridgeline-media/topfive/pkg/models"
	"github.com/ridgeline-media/topfive/pkg/retry"
)

// Fetcher runs the cascade described in spec.md §4.1. The zero value is
// not usable; construct with New.
type Fetcher struct {
	httpClient *http.Client
	browser    *BrowserFetcher
	cache      *Cache
}

// Options configures a Fetcher.
type Options struct {
	HTTPTimeout   time.Duration
	CacheTTL      time.Duration
	BrowserCtx    context.Context // nil disables the browser tier
}

// New builds a Fetcher. When opts.BrowserCtx is nil, the browser fallback
// tier is skipped entirely (useful in environments without a Chrome
// binary, e.g. most CI sandboxes).
func New(opts Options) *Fetcher {
	if opts.HTTPTimeout <= 0 {
		opts.HTTPTimeout = 20 * time.Second
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = 30 * time.Minute
	}

	f := &Fetcher{
		httpClient: &http.Client{Timeout: opts.HTTPTimeout},
		cache:      NewCache(opts.CacheTTL),
	}
	if opts.BrowserCtx != nil {
		f.browser = NewBrowserFetcher(opts.BrowserCtx)
	}
	return f
}

// Close releases any browser resources held by the fetcher.
func (f *Fetcher) Close() {
	if f.browser != nil {
		f.browser.Close()
	}
}

// FetchMarkdown runs the full cascade for url, persisting to persistTo
// when non-empty. It never returns an error to the caller — per §4.1,
// total failure is represented as a FetchResult with Method "failed" and
// Error populated, not a Go error.
func (f *Fetcher) FetchMarkdown(ctx context.Context, url string, persistTo string) models.FetchResult {
	if cached, ok := f.cache.Get(url, minUsableTextLen); ok {
		f.finish(persistTo, &cached)
		return cached
	}

	if result, err := httpTier(ctx, f.httpClient, url); err == nil && len(result.Text) >= minUsableTextLen {
		f.cache.Put(result)
		f.finish(persistTo, &result)
		return result
	}

	if f.browser != nil {
		var result models.FetchResult
		retryErr := retry.WithRetry(func() error {
			r, err := f.browser.Fetch(ctx, url)
			if err != nil {
				return err
			}
			if len(r.Text) < minUsableTextLen {
				return fmt.Errorf("browser fetch too short: %d chars", len(r.Text))
			}
			result = r
			return nil
		}, retry.Options{MaxRetries: 2, BaseDelay: time.Second})

		if retryErr == nil {
			f.cache.Put(result)
			f.finish(persistTo, &result)
			return result
		}

		return f.failed(url, retryErr, persistTo)
	}

	return f.failed(url, fmt.Errorf("all fetch tiers exhausted for %s", url), persistTo)
}

// FetchPageText is the simplified contract: just the text and the method
// that produced it.
func (f *Fetcher) FetchPageText(ctx context.Context, url string, persistTo string) (string, models.FetchMethod) {
	r := f.FetchMarkdown(ctx, url, persistTo)
	return r.Text, r.Method
}

// FetchPageData is like FetchPageText but also surfaces raw HTML when the
// tier that produced the result captured it.
func (f *Fetcher) FetchPageData(ctx context.Context, url string, persistTo string) (string, models.FetchMethod, string) {
	r := f.FetchMarkdown(ctx, url, persistTo)
	return r.Text, r.Method, r.RawHTML
}

func (f *Fetcher) failed(url string, err error, persistTo string) models.FetchResult {
	r := models.FetchResult{
		URL:       url,
		Method:    models.FetchMethodFailed,
		FetchedAt: time.Now(),
		Error:     err.Error(),
	}
	f.finish(persistTo, &r)
	return r
}

func (f *Fetcher) finish(persistTo string, r *models.FetchResult) {
	if persistTo == "" {
		return
	}
	_ = persist(persistTo, r) // best-effort; a persistence failure never fails the fetch itself
}
