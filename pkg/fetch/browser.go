package fetch

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/chromedp"
	"github.com/ridgeline-media/topfive/pkg/models"
)

// settleDelay is how long the browser waits after domcontentloaded before
// capturing the DOM, to let client-side rendering finish.
const settleDelay = 2 * time.Second

// BrowserFetcher drives a headless Chrome instance to render pages that
// the plain HTTP tier can't (JS-rendered product pages, bot-gated
// review sites). A single allocator context is reused across calls so
// repeated fetches don't pay the browser-launch cost every time.
type BrowserFetcher struct {
	allocCtx context.Context
	cancel   context.CancelFunc
}

// NewBrowserFetcher starts a shared headless Chrome allocator. Call
// Close when the fetcher is no longer needed.
func NewBrowserFetcher(ctx context.Context) *BrowserFetcher {
	allocCtx, cancel := chromedp.NewExecAllocator(ctx, chromedp.DefaultExecAllocatorOptions[:]...)
	return &BrowserFetcher{allocCtx: allocCtx, cancel: cancel}
}

// Close releases the underlying browser process.
func (b *BrowserFetcher) Close() {
	b.cancel()
}

// Fetch navigates to url, waits for domcontentloaded plus a settle delay,
// then captures the rendered HTML and converts it to text the same way
// the plain HTML tier does.
func (b *BrowserFetcher) Fetch(ctx context.Context, url string) (models.FetchResult, error) {
	tabCtx, cancelTab := chromedp.NewContext(b.allocCtx)
	defer cancelTab()

	var rawHTML string
	err := chromedp.Run(tabCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body"),
		chromedp.Sleep(settleDelay),
		chromedp.OuterHTML("html", &rawHTML, chromedp.ByQuery),
	)
	if err != nil {
		return models.FetchResult{}, fmt.Errorf("browser navigate %s: %w", url, err)
	}

	text, err := HTMLToText(rawHTML)
	if err != nil {
		return models.FetchResult{}, fmt.Errorf("convert browser html from %s: %w", url, err)
	}

	return models.FetchResult{
		URL:           url,
		Text:          text,
		RawHTML:       rawHTML,
		Method:        models.FetchMethodBrowser,
		ContentLength: len(text),
		FetchedAt:     time.Now(),
	}, nil
}
