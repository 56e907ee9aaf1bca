package marketplace

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPAAPIBackend_MissingCredentialsIsConfigError(t *testing.T) {
	backend := NewPAAPIBackend("", "", "ridgeline-20")
	_, err := backend.Search(context.Background(), "Sony headphones")
	require.Error(t, err)
}

func TestPAAPIBackend_Search_ParsesItems(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "com.amazon.paapi5.v1.ProductAdvertisingAPIv1.SearchItems", r.Header.Get("X-Amz-Target"))
		assert.NotEmpty(t, r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"SearchResult":{"Items":[
			{"ASIN":"B0ABC12345","ItemInfo":{"Title":{"DisplayValue":"Sony WH-1000XM5 Headphones"}},
			 "Images":{"Primary":{"Large":{"URL":"https://img.example/x.jpg"}}},
			 "Offers":{"Listings":[{"Price":{"DisplayAmount":"$348.00"}}]},
			 "CustomerReviews":{"StarRating":4.7,"Count":12000}}
		]}}`))
	}))
	defer srv.Close()

	backend := NewPAAPIBackend("AKIAEXAMPLE", "secretkeyexample", "ridgeline-20")
	parsed, _ := url.Parse(srv.URL)
	backend.endpointScheme = "http"
	backend.endpointHost = parsed.Host

	results, err := backend.Search(context.Background(), "Sony WH-1000XM5")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "B0ABC12345", results[0].ASIN)
	assert.Equal(t, "$348.00", results[0].Price)
	assert.Equal(t, 12000, results[0].ReviewsCount)
}

func TestPAAPIBackend_Search_RejectsOn401(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	backend := NewPAAPIBackend("AKIAEXAMPLE", "secretkeyexample", "ridgeline-20")
	parsed, _ := url.Parse(srv.URL)
	backend.endpointScheme = "http"
	backend.endpointHost = parsed.Host

	_, err := backend.Search(context.Background(), "query")
	require.Error(t, err)
}
