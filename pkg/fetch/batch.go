package fetch

import (
	"context"
	"fmt"
	"sync"

	"github.com/ridgeline-media/topfive/pkg/models"
)

// DefaultBatchWorkers is the default worker pool size for FetchBatch.
const DefaultBatchWorkers = 4

// FetchBatch fetches every URL concurrently with a bounded worker pool
// (default DefaultBatchWorkers, capped to len(urls)). Each task is
// isolated — a panic or failure in one fetch never cancels the others,
// and results are returned in the same order as urls regardless of which
// worker finished first.
func (f *Fetcher) FetchBatch(ctx context.Context, urls []string, persistTo string, workers int) []models.FetchResult {
	if workers <= 0 {
		workers = DefaultBatchWorkers
	}
	if workers > len(urls) {
		workers = len(urls)
	}
	if workers == 0 {
		return nil
	}

	results := make([]models.FetchResult, len(urls))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = f.fetchOneIsolated(ctx, urls[i], persistTo)
			}
		}()
	}

	for i := range urls {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return results
}

// fetchOneIsolated recovers from a panic in a single fetch so one bad URL
// cannot take down the rest of the batch.
func (f *Fetcher) fetchOneIsolated(ctx context.Context, url string, persistTo string) (result models.FetchResult) {
	defer func() {
		if r := recover(); r != nil {
			result = f.failed(url, panicError{r}, persistTo)
		}
	}()
	return f.FetchMarkdown(ctx, url, persistTo)
}

type panicError struct{ v any }

func (p panicError) Error() string {
	return fmt.Sprintf("recovered panic during fetch: %v", p.v)
}
