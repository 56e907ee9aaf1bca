package llmclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridgeline-media/topfive/pkg/script"
)

func TestScriptAdapter_Draft_ReturnsProvidedText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"draft text"}}],"usage":{"total_tokens":10}}`))
	}))
	defer srv.Close()

	client := NewOpenAIClient("secret-key", "gpt-test")
	client.baseURL = srv.URL
	adapter := NewScriptAdapter(client)

	out, err := adapter.Draft(context.Background(), script.GenerateInput{Prompt: "write a script"})
	require.NoError(t, err)
	assert.Equal(t, "draft text", out.Text)
	assert.Equal(t, "openai:gpt-test", out.Provider)
	assert.Equal(t, 10, out.TokenEstimate)
}

func TestScriptAdapter_Refine_PropagatesError(t *testing.T) {
	adapter := NewScriptAdapter(NewOpenAIClient("", "gpt-test"))

	_, err := adapter.Refine(context.Background(), script.GenerateInput{Prompt: "refine this"})
	require.Error(t, err)
}
