// Package llmclient provides thin HTTP-backed implementations of the
// draft/refine/tool-loop/estimation seams that pkg/script, pkg/job,
// pkg/assets, and pkg/tts each define as external collaborators
// (spec.md §1). The wire protocol itself is out of scope; these types
// exist only so cmd/ entrypoints have something concrete to construct,
// the same role research.BraveSearchClient and marketplace.PAAPIBackend
// play for their own external APIs.
package llmclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// OpenAIClient calls the Chat Completions API. An empty apiKey makes
// every call fail with a config-classified error, matching
// BraveSearchClient and PAAPIBackend's own "blank credential" behavior.
type OpenAIClient struct {
	apiKey     string
	model      string
	httpClient *http.Client
	baseURL    string
}

// NewOpenAIClient builds a client for the given model (e.g. the
// JOB_WORKER_MODEL environment variable's value).
func NewOpenAIClient(apiKey, model string) *OpenAIClient {
	return &OpenAIClient{
		apiKey:     apiKey,
		model:      model,
		httpClient: &http.Client{Timeout: 150 * time.Second},
		baseURL:    "https://api.openai.com/v1/chat/completions",
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Usage struct {
		TotalTokens int `json:"total_tokens"`
	} `json:"usage"`
}

func (c *OpenAIClient) complete(ctx context.Context, prompt string) (string, int, error) {
	if c.apiKey == "" {
		return "", 0, fmt.Errorf("missing configuration: OPENAI_API_KEY not configured")
	}

	body, err := json.Marshal(chatRequest{
		Model:    c.model,
		Messages: []chatMessage{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", 0, fmt.Errorf("encode chat completion request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return "", 0, fmt.Errorf("build chat completion request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", 0, fmt.Errorf("chat completion request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return "", 0, fmt.Errorf("openai 401: credentials rejected")
	}
	if resp.StatusCode != http.StatusOK {
		return "", 0, fmt.Errorf("openai returned HTTP %d", resp.StatusCode)
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", 0, fmt.Errorf("decode chat completion response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", 0, fmt.Errorf("chat completion returned no choices")
	}
	return parsed.Choices[0].Message.Content, parsed.Usage.TotalTokens, nil
}
