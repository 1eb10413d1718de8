package bronclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	brondomain "github.com/vfg2006/seo-audit-api/infrastructure/integrator/bron/domain"
	"github.com/vfg2006/seo-audit-api/internal/config"
)

func newTestClient(serverURL string) Client {
	return NewClient(&config.Config{
		BRON: config.BRON{URL: serverURL + "/v1", APIKey: "chave"},
	})
}

func TestBronClient_GetKeywords(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/keywords", r.URL.Path)
		assert.Equal(t, "example.com", r.URL.Query().Get("domain"))
		assert.Equal(t, "chave", r.Header.Get("X-API-Key"))

		w.Write([]byte(`{"domain":"example.com","keywords":[{"keyword":"seo tools","position":4,"previous_position":9,"url":"https://example.com/tools","search_volume":2400}]}`))
	}))
	defer server.Close()

	resp, err := newTestClient(server.URL).GetKeywords(context.Background(), "example.com")

	require.NoError(t, err)
	require.Len(t, resp.Keywords, 1)
	assert.Equal(t, "seo tools", resp.Keywords[0].Keyword)
	assert.Equal(t, 4, *resp.Keywords[0].Position)
}

func TestBronClient_GetDomainSummary(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/domains/example.com/summary", r.URL.Path)

		w.Write([]byte(`{"domain":"example.com","tracked_keywords":25,"average_position":12.4,"visibility":0.31,"top_3":2,"top_10":9}`))
	}))
	defer server.Close()

	resp, err := newTestClient(server.URL).GetDomainSummary(context.Background(), "example.com")

	require.NoError(t, err)
	assert.Equal(t, 25, resp.TrackedKeywords)
	assert.Equal(t, 12.4, *resp.AveragePosition)
	assert.Equal(t, 9, resp.Top10)
}

func TestBronClient_RateLimited(t *testing.T) {
	tests := []struct {
		name       string
		retryAfter string
		expected   int
	}{
		{name: "Retry-After em segundos", retryAfter: "42", expected: 42},
		{name: "Sem Retry-After", retryAfter: "", expected: brondomain.DefaultRetryAfterSeconds},
		{name: "Retry-After em formato de data", retryAfter: "Wed, 21 Oct 2015 07:28:00 GMT", expected: brondomain.DefaultRetryAfterSeconds},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.retryAfter != "" {
					w.Header().Set("Retry-After", tt.retryAfter)
				}
				w.WriteHeader(http.StatusTooManyRequests)
			}))
			defer server.Close()

			resp, err := newTestClient(server.URL).GetKeywords(context.Background(), "example.com")

			assert.Nil(t, resp)
			var rateErr *brondomain.RateLimitedError
			require.ErrorAs(t, err, &rateErr)
			assert.Equal(t, tt.expected, rateErr.RetryAfter)
		})
	}
}

func TestBronClient_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).GetDomainSummary(context.Background(), "example.com")

	require.Error(t, err)
	var rateErr *brondomain.RateLimitedError
	assert.False(t, errors.As(err, &rateErr))
	assert.Contains(t, err.Error(), "500")
}
