package ahrefsclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/seo-audit-api/internal/config"
)

func newTestClient(serverURL string) Client {
	return NewClient(&config.Config{
		Ahrefs: config.Ahrefs{URL: serverURL + "/v3", Token: "token-teste"},
	})
}

func TestAhrefsClient_GetDomainRating(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v3/site-explorer/domain-rating", r.URL.Path)
		assert.Equal(t, "Bearer token-teste", r.Header.Get("Authorization"))
		assert.Equal(t, "example.com", r.URL.Query().Get("target"))
		assert.Equal(t, "2024-05-01", r.URL.Query().Get("date"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"domain_rating":{"domain_rating":72.5,"ahrefs_rank":1234}}`))
	}))
	defer server.Close()

	resp, err := newTestClient(server.URL).GetDomainRating(context.Background(), "example.com", "2024-05-01")

	require.NoError(t, err)
	assert.Equal(t, 72.5, resp.DomainRating.DomainRating)
	require.NotNil(t, resp.DomainRating.AhrefsRank)
	assert.Equal(t, int64(1234), *resp.DomainRating.AhrefsRank)
}

func TestAhrefsClient_GetBacklinksStats(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v3/site-explorer/backlinks-stats", r.URL.Path)
		assert.Equal(t, "subdomains", r.URL.Query().Get("mode"))

		w.Write([]byte(`{"metrics":{"live":5400,"all_time":9000,"live_refdomains":310,"all_time_refdomains":500}}`))
	}))
	defer server.Close()

	resp, err := newTestClient(server.URL).GetBacklinksStats(context.Background(), "example.com", "2024-05-01")

	require.NoError(t, err)
	assert.Equal(t, int64(5400), resp.Metrics.Live)
	assert.Equal(t, int64(310), resp.Metrics.LiveRefdomains)
}

func TestAhrefsClient_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error":"insufficient plan"}`))
	}))
	defer server.Close()

	resp, err := newTestClient(server.URL).GetDomainRating(context.Background(), "example.com", "2024-05-01")

	assert.Nil(t, resp)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
	assert.Contains(t, err.Error(), "insufficient plan")
}

func TestAhrefsClient_InvalidJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"metrics":`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).GetBacklinksStats(context.Background(), "example.com", "2024-05-01")

	assert.Error(t, err)
}
