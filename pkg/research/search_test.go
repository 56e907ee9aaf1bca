package research

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ridgeline-media/topfive/pkg/retry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBraveSearchClient_MissingAPIKeyIsConfigError(t *testing.T) {
	client := NewBraveSearchClient("")
	_, err := client.Search(context.Background(), "site:rtings.com best headphones", 5)
	require.Error(t, err)
	assert.Equal(t, retry.ClassConfig, retry.ClassifyMessage(err.Error()))
}

func TestBraveSearchClient_Search_ParsesResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "secret-key", r.Header.Get("X-Subscription-Token"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"web":{"results":[
			{"title":"Best Headphones 2026","description":"Sony WH-1000XM5 tops our list","url":"https://rtings.com/a"},
			{"title":"Runner Up","description":"Bose QC Ultra is close behind","url":"https://rtings.com/b"}
		]}}`))
	}))
	defer srv.Close()

	client := NewBraveSearchClient("secret-key")
	client.baseURL = srv.URL

	results, err := client.Search(context.Background(), "site:rtings.com best headphones", 5)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "Best Headphones 2026", results[0].Title)
}

func TestBraveSearchClient_Search_RespectsLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"web":{"results":[
			{"title":"A","description":"","url":"https://rtings.com/a"},
			{"title":"B","description":"","url":"https://rtings.com/b"},
			{"title":"C","description":"","url":"https://rtings.com/c"}
		]}}`))
	}))
	defer srv.Close()

	client := NewBraveSearchClient("secret-key")
	client.baseURL = srv.URL

	results, err := client.Search(context.Background(), "q", 1)
	require.NoError(t, err)
	assert.Len(t, results, 1)
}

func TestBraveSearchClient_Search_Returns401Error(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := NewBraveSearchClient("bad-key")
	client.baseURL = srv.URL

	_, err := client.Search(context.Background(), "q", 5)
	require.Error(t, err)
}

func TestBraveSearchClient_Search_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewBraveSearchClient("key")
	client.baseURL = srv.URL

	_, err := client.Search(context.Background(), "q", 5)
	require.Error(t, err)
}
