package marketplace

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/ridgeline-media/topfive/pkg/fetch"
)

// maxBrowserCards bounds how many search-result cards are parsed per
// query, per spec.md §4.5.
const maxBrowserCards = 5

// BrowserBackend drives Amazon's search results page with a headless
// browser when PA-API credentials aren't configured, reusing pkg/fetch's
// browser session rather than launching a second Chrome instance.
type BrowserBackend struct {
	browser *fetch.BrowserFetcher
}

// NewBrowserBackend wraps an already-running browser fetcher.
func NewBrowserBackend(browser *fetch.BrowserFetcher) *BrowserBackend {
	return &BrowserBackend{browser: browser}
}

// Search navigates to Amazon's search results for query and parses up
// to 5 result cards.
func (b *BrowserBackend) Search(ctx context.Context, query string) ([]SearchResult, error) {
	searchURL := "https://www.amazon.com/s?k=" + url.QueryEscape(query)
	result, err := b.browser.Fetch(ctx, searchURL)
	if err != nil {
		return nil, fmt.Errorf("browser search %q: %w", query, err)
	}
	if isCaptchaPage(result.Text) {
		return nil, fmt.Errorf("bot detection: CAPTCHA challenge on search results")
	}
	return parseSearchCards(result.RawHTML)
}

func isCaptchaPage(text string) bool {
	lower := strings.ToLower(text)
	return strings.Contains(lower, "captcha") || strings.Contains(lower, "verify you are human") ||
		strings.Contains(lower, "robot check")
}

var reviewCountPattern = regexp.MustCompile(`[\d,]+`)

// parseSearchCards extracts up to maxBrowserCards product cards from an
// Amazon search-results page's rendered HTML.
func parseSearchCards(rawHTML string) ([]SearchResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, fmt.Errorf("parse search results html: %w", err)
	}

	var results []SearchResult
	doc.Find("div[data-asin]").EachWithBreak(func(_ int, card *goquery.Selection) bool {
		asin, _ := card.Attr("data-asin")
		if asin == "" {
			return true
		}
		title := strings.TrimSpace(card.Find("h2 span").First().Text())
		if title == "" {
			return true
		}
		price := strings.TrimSpace(card.Find(".a-price .a-offscreen").First().Text())
		imageURL, _ := card.Find("img.s-image").First().Attr("src")
		rating := parseRating(card.Find("span.a-icon-alt").First().Text())
		reviews := parseReviewCount(card.Find("span.a-size-base.s-underline-text").First().Text())

		results = append(results, SearchResult{
			ASIN:         asin,
			Title:        title,
			Price:        price,
			ImageURL:     imageURL,
			Rating:       rating,
			ReviewsCount: reviews,
		})
		return len(results) < maxBrowserCards
	})
	return results, nil
}

func parseRating(s string) float64 {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return 0
	}
	v, _ := strconv.ParseFloat(fields[0], 64)
	return v
}

func parseReviewCount(s string) int {
	match := reviewCountPattern.FindString(s)
	if match == "" {
		return 0
	}
	n, _ := strconv.Atoi(strings.ReplaceAll(match, ",", ""))
	return n
}
