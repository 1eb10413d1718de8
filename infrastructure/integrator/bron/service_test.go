package bron

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	brondomain "github.com/vfg2006/seo-audit-api/infrastructure/integrator/bron/domain"
	"github.com/vfg2006/seo-audit-api/infrastructure/integrator/bron/mocks"
	"github.com/vfg2006/seo-audit-api/internal/config"
	"go.uber.org/mock/gomock"
)

func intPtr(v int) *int { return &v }

func TestBronService_GetKeywordRankings(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	service := New(&config.Config{}, mockClient)

	mockClient.EXPECT().
		GetKeywords(gomock.Any(), "example.com").
		Return(&brondomain.KeywordsResponse{
			Keywords: []brondomain.Keyword{
				{Keyword: "subiu", Position: intPtr(3), PreviousPosition: intPtr(8)},
				{Keyword: "caiu", Position: intPtr(12), PreviousPosition: intPtr(5)},
				{Keyword: "nova", Position: intPtr(40)},
			},
		}, nil)

	rankings, err := service.GetKeywordRankings(context.Background(), "example.com")

	require.NoError(t, err)
	assert.Equal(t, "example.com", rankings.Domain)
	require.Len(t, rankings.Keywords, 3)
	assert.Equal(t, 5, *rankings.Keywords[0].PositionChange)
	assert.Equal(t, -7, *rankings.Keywords[1].PositionChange)
	assert.Nil(t, rankings.Keywords[2].PositionChange)
}

func TestBronService_RateLimitedPassesThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	service := New(&config.Config{}, mockClient)

	mockClient.EXPECT().
		GetDomainSummary(gomock.Any(), "example.com").
		Return(nil, &brondomain.RateLimitedError{RetryAfter: 30})

	summary, err := service.GetRankSummary(context.Background(), "example.com")

	assert.Nil(t, summary)
	var rateErr *brondomain.RateLimitedError
	require.ErrorAs(t, err, &rateErr)
	assert.Equal(t, 30, rateErr.RetryAfter)
}

func TestBronService_IsConfigured(t *testing.T) {
	assert.False(t, New(&config.Config{}, nil).IsConfigured())
	assert.True(t, New(&config.Config{BRON: config.BRON{APIKey: "k"}}, nil).IsConfigured())
}
