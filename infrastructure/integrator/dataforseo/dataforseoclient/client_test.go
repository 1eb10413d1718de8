package dataforseoclient

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	dataforseodomain "github.com/vfg2006/seo-audit-api/infrastructure/integrator/dataforseo/domain"
	"github.com/vfg2006/seo-audit-api/internal/config"
)

func newTestClient(serverURL string) Client {
	return NewClient(&config.Config{
		DataForSEO: config.DataForSEO{
			URL:          serverURL + "/v3",
			Login:        "login",
			Password:     "senha",
			LocationCode: 2840,
			LanguageCode: "en",
		},
	})
}

func TestDataForSEOClient_GetDomainRankOverview(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v3/dataforseo_labs/google/domain_rank_overview/live", r.URL.Path)

		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "login", user)
		assert.Equal(t, "senha", pass)

		var tasks []dataforseodomain.TaskRequest
		body, _ := io.ReadAll(r.Body)
		assert.NoError(t, json.Unmarshal(body, &tasks))
		if !assert.Len(t, tasks, 1) {
			return
		}
		assert.Equal(t, "example.com", tasks[0].Target)
		assert.Equal(t, 2840, tasks[0].LocationCode)
		assert.Equal(t, "en", tasks[0].LanguageCode)

		w.Write([]byte(`{
			"status_code": 20000,
			"status_message": "Ok.",
			"tasks": [{
				"id": "t1",
				"status_code": 20000,
				"status_message": "Ok.",
				"result": [{
					"target": "example.com",
					"items": [{"metrics": {"organic": {"etv": 1520.5, "count": 340, "estimated_paid_traffic_cost": 2100.75}}}]
				}]
			}]
		}`))
	}))
	defer server.Close()

	resp, err := newTestClient(server.URL).GetDomainRankOverview(context.Background(), "example.com")
	require.NoError(t, err)

	result, err := resp.FirstResult()
	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, 1520.5, result.Items[0].Metrics.Organic.ETV)
	assert.Equal(t, int64(340), result.Items[0].Metrics.Organic.Count)
	assert.Equal(t, 2100.75, result.Items[0].Metrics.Organic.EstimatedPaidTrafficCost)
}

func TestDataForSEOClient_GetBacklinksSummary(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v3/backlinks/summary/live", r.URL.Path)

		w.Write([]byte(`{"status_code":20000,"tasks":[{"status_code":20000,"result":[{"target":"example.com","rank":412,"backlinks":8000,"referring_domains":600}]}]}`))
	}))
	defer server.Close()

	resp, err := newTestClient(server.URL).GetBacklinksSummary(context.Background(), "example.com")
	require.NoError(t, err)

	result, err := resp.FirstResult()
	require.NoError(t, err)
	assert.Equal(t, 412.0, result.Rank)
}

func TestDataForSEOClient_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	resp, err := newTestClient(server.URL).GetBacklinksSummary(context.Background(), "example.com")

	assert.Nil(t, resp)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}
