package auditing

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	ahrefsdomain "github.com/vfg2006/seo-audit-api/infrastructure/integrator/ahrefs/domain"
	ahrefsmocks "github.com/vfg2006/seo-audit-api/infrastructure/integrator/ahrefs/mocks"
	dataforseodomain "github.com/vfg2006/seo-audit-api/infrastructure/integrator/dataforseo/domain"
	dataforseomocks "github.com/vfg2006/seo-audit-api/infrastructure/integrator/dataforseo/mocks"
	"github.com/vfg2006/seo-audit-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestFetcher_CheckCredentials(t *testing.T) {
	tests := []struct {
		name              string
		ahrefsConfigured  bool
		dfsConfigured     bool
		expectedErr       bool
		expectedInDetails string
	}{
		{name: "Ambos configurados", ahrefsConfigured: true, dfsConfigured: true},
		{name: "Sem Ahrefs", ahrefsConfigured: false, dfsConfigured: true, expectedErr: true, expectedInDetails: "ahrefs"},
		{name: "Sem DataForSEO", ahrefsConfigured: true, dfsConfigured: false, expectedErr: true, expectedInDetails: "dataforseo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			ahrefsMock := ahrefsmocks.NewMockAhrefsIntegrator(ctrl)
			dfsMock := dataforseomocks.NewMockDataForSEOIntegrator(ctrl)
			ahrefsMock.EXPECT().IsConfigured().Return(tt.ahrefsConfigured)
			dfsMock.EXPECT().IsConfigured().Return(tt.dfsConfigured)

			err := NewFetcher(ahrefsMock, dfsMock).CheckCredentials()

			if !tt.expectedErr {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMissingCredentials)
			assert.True(t, IsFatal(err))

			var auditErr *AuditError
			require.True(t, errors.As(err, &auditErr))
			assert.Equal(t, apiErrors.ErrMissingCredentials, auditErr.Code)
			assert.Contains(t, auditErr.Details, tt.expectedInDetails)
		})
	}
}

func TestFetcher_Fetch(t *testing.T) {
	ctx := context.Background()

	t.Run("Todas as fontes respondem", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		ahrefsMock := ahrefsmocks.NewMockAhrefsIntegrator(ctrl)
		dfsMock := dataforseomocks.NewMockDataForSEOIntegrator(ctrl)

		ahrefsMock.EXPECT().GetDomainRating(gomock.Any(), "example.com").Return(42.5, nil)
		ahrefsMock.EXPECT().GetBacklinksStats(gomock.Any(), "example.com").
			Return(&ahrefsdomain.BacklinksStats{Live: 1200, AllTime: 5000, LiveRefdomains: 80, AllTimeRefdomains: 300}, nil)
		dfsMock.EXPECT().GetOrganicMetrics(gomock.Any(), "example.com").
			Return(&dataforseodomain.OrganicMetrics{ETV: 1520.6, Count: 340, EstimatedPaidTrafficCost: 980.456}, nil)
		dfsMock.EXPECT().GetRankScore(gomock.Any(), "example.com").Return(312.0, nil)

		metrics, err := NewFetcher(ahrefsMock, dfsMock).Fetch(ctx, "example.com")
		require.NoError(t, err)

		require.NotNil(t, metrics.DomainRating)
		assert.Equal(t, 42.5, *metrics.DomainRating)
		assert.Equal(t, int64(1200), *metrics.Backlinks)
		assert.Equal(t, int64(80), *metrics.ReferringDomains)
		assert.Equal(t, int64(1521), *metrics.OrganicTraffic)
		assert.Equal(t, int64(340), *metrics.OrganicKeywords)
		assert.Equal(t, 980.46, *metrics.TrafficValue)
		assert.Equal(t, 312.0, *metrics.RankScore)
	})

	t.Run("Falha parcial deixa campos nulos", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		ahrefsMock := ahrefsmocks.NewMockAhrefsIntegrator(ctrl)
		dfsMock := dataforseomocks.NewMockDataForSEOIntegrator(ctrl)

		ahrefsMock.EXPECT().GetDomainRating(gomock.Any(), "example.com").Return(0.0, errors.New("timeout"))
		ahrefsMock.EXPECT().GetBacklinksStats(gomock.Any(), "example.com").Return(nil, errors.New("timeout"))
		dfsMock.EXPECT().GetOrganicMetrics(gomock.Any(), "example.com").
			Return(&dataforseodomain.OrganicMetrics{ETV: 10, Count: 2}, nil)
		dfsMock.EXPECT().GetRankScore(gomock.Any(), "example.com").Return(0.0, errors.New("40501"))

		metrics, err := NewFetcher(ahrefsMock, dfsMock).Fetch(ctx, "example.com")
		require.NoError(t, err)

		assert.Nil(t, metrics.DomainRating)
		assert.Nil(t, metrics.Backlinks)
		assert.Nil(t, metrics.ReferringDomains)
		assert.Nil(t, metrics.RankScore)
		assert.Equal(t, int64(10), *metrics.OrganicTraffic)
		assert.Equal(t, 0.0, *metrics.TrafficValue)
	})

	t.Run("Todas as fontes falham", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		ahrefsMock := ahrefsmocks.NewMockAhrefsIntegrator(ctrl)
		dfsMock := dataforseomocks.NewMockDataForSEOIntegrator(ctrl)

		ahrefsMock.EXPECT().GetDomainRating(gomock.Any(), gomock.Any()).Return(0.0, errors.New("a"))
		ahrefsMock.EXPECT().GetBacklinksStats(gomock.Any(), gomock.Any()).Return(nil, errors.New("b"))
		dfsMock.EXPECT().GetOrganicMetrics(gomock.Any(), gomock.Any()).Return(nil, errors.New("c"))
		dfsMock.EXPECT().GetRankScore(gomock.Any(), gomock.Any()).Return(0.0, errors.New("d"))

		metrics, err := NewFetcher(ahrefsMock, dfsMock).Fetch(ctx, "example.com")
		assert.Nil(t, metrics)
		assert.ErrorIs(t, err, ErrAllSourcesFailed)
		assert.False(t, IsFatal(err))

		var auditErr *AuditError
		require.True(t, errors.As(err, &auditErr))
		assert.Equal(t, "example.com", auditErr.Domain)
		assert.Contains(t, auditErr.Details, SourceAhrefsDomainRating)
		assert.Contains(t, auditErr.Details, SourceDataForSEOBacklinksSummary)
	})
}
