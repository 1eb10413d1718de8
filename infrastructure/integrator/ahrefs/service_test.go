package ahrefs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	ahrefsdomain "github.com/vfg2006/seo-audit-api/infrastructure/integrator/ahrefs/domain"
	"github.com/vfg2006/seo-audit-api/infrastructure/integrator/ahrefs/mocks"
	"github.com/vfg2006/seo-audit-api/internal/config"
	"go.uber.org/mock/gomock"
)

func TestAhrefsService(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	service := &AhrefsService{
		cfg:    &config.Config{Ahrefs: config.Ahrefs{Token: "t"}},
		Client: mockClient,
		now:    func() time.Time { return time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC) },
	}

	assert.True(t, service.IsConfigured())

	mockClient.EXPECT().
		GetDomainRating(gomock.Any(), "example.com", "2024-05-01").
		Return(&ahrefsdomain.DomainRatingResponse{DomainRating: ahrefsdomain.DomainRating{DomainRating: 55}}, nil)

	rating, err := service.GetDomainRating(context.Background(), "example.com")
	require.NoError(t, err)
	assert.Equal(t, 55.0, rating)

	mockClient.EXPECT().
		GetBacklinksStats(gomock.Any(), "example.com", "2024-05-01").
		Return(nil, errors.New("timeout"))

	stats, err := service.GetBacklinksStats(context.Background(), "example.com")
	assert.Error(t, err)
	assert.Nil(t, stats)
}

func TestAhrefsService_IsConfigured(t *testing.T) {
	service := New(&config.Config{}, nil)
	assert.False(t, service.IsConfigured())
}
