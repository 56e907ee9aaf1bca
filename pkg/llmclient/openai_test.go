package llmclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAIClient_MissingAPIKeyIsConfigError(t *testing.T) {
	client := NewOpenAIClient("", "gpt-test")
	_, _, err := client.complete(context.Background(), "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OPENAI_API_KEY")
}

func TestOpenAIClient_Complete_ParsesResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer secret-key", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"hello back"}}],"usage":{"total_tokens":42}}`))
	}))
	defer srv.Close()

	client := NewOpenAIClient("secret-key", "gpt-test")
	client.baseURL = srv.URL

	text, tokens, err := client.complete(context.Background(), "hi")
	require.NoError(t, err)
	assert.Equal(t, "hello back", text)
	assert.Equal(t, 42, tokens)
}

func TestOpenAIClient_Complete_Returns401Error(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := NewOpenAIClient("bad-key", "gpt-test")
	client.baseURL = srv.URL

	_, _, err := client.complete(context.Background(), "hi")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestOpenAIClient_Complete_NoChoicesIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	client := NewOpenAIClient("secret-key", "gpt-test")
	client.baseURL = srv.URL

	_, _, err := client.complete(context.Background(), "hi")
	require.Error(t, err)
}
