package fetch

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/ridgeline-media/topfive/pkg/models"
)

const minUsableTextLen = 200

// httpTier performs step 2 (markdown negotiation) and step 3 (HTML fetch +
// local conversion) of the cascade in a single round trip: the server
// either honors the markdown content-type negotiation or it doesn't, and
// either way a single GET tells us which.
func httpTier(ctx context.Context, client *http.Client, url string) (models.FetchResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return models.FetchResult{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "text/markdown, text/html;q=0.9")

	resp, err := client.Do(req)
	if err != nil {
		return models.FetchResult{}, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.FetchResult{}, fmt.Errorf("%s returned HTTP %d", url, resp.StatusCode)
	}

	contentType := resp.Header.Get("Content-Type")
	body, err := decodeBody(resp.Body, contentType)
	if err != nil {
		return models.FetchResult{}, fmt.Errorf("decode body from %s: %w", url, err)
	}

	now := time.Now()
	headers := map[string]string{"Content-Type": contentType}

	if strings.Contains(contentType, "text/markdown") {
		result := models.FetchResult{
			URL:           url,
			Text:          body,
			Method:        models.FetchMethodMarkdown,
			ContentType:   contentType,
			ContentLength: len(body),
			FetchedAt:     now,
			Headers:       headers,
		}
		if tok := resp.Header.Get("x-markdown-tokens"); tok != "" {
			if n, err := strconv.Atoi(tok); err == nil {
				result.TokenEstimate = &n
			}
		}
		return result, nil
	}

	text, err := HTMLToText(body)
	if err != nil {
		return models.FetchResult{}, fmt.Errorf("convert html from %s: %w", url, err)
	}

	return models.FetchResult{
		URL:           url,
		Text:          text,
		RawHTML:       body,
		Method:        models.FetchMethodHTML,
		ContentType:   contentType,
		ContentLength: len(text),
		FetchedAt:     now,
		Headers:       headers,
	}, nil
}

// decodeBody reads the response body as UTF-8, replacing invalid byte
// sequences rather than rejecting them — this is best-effort scraping,
// not a strict parser. A declared charset is not applied: a body in
// another encoding is sanitized as UTF-8, not transcoded.
func decodeBody(r io.Reader, contentType string) (string, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}

	_, params, err := mime.ParseMediaType(contentType)
	if err == nil {
		if charset := strings.ToLower(params["charset"]); charset != "" && charset != "utf-8" && charset != "utf8" {
			// Non-UTF-8 charsets get the same UTF-8 sanitizing as
			// every other body; no transcoding happens here.
			return sanitizeUTF8(string(raw)), nil
		}
	}

	return sanitizeUTF8(string(raw)), nil
}

// sanitizeUTF8 replaces invalid UTF-8 sequences with the replacement
// character instead of propagating a decode error.
func sanitizeUTF8(s string) string {
	return strings.ToValidUTF8(s, "�")
}
