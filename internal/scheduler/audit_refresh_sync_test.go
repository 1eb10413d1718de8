package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/seo-audit-api/internal/config"
	"github.com/vfg2006/seo-audit-api/internal/domain"
	"github.com/vfg2006/seo-audit-api/internal/usecases/auditing"
	"github.com/vfg2006/seo-audit-api/internal/usecases/auditing/mocks"
	"github.com/vfg2006/seo-audit-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func newTestConfig() *config.Config {
	return &config.Config{
		AuditRefresh: config.AuditRefresh{
			CronSchedule:             "0 */6 * * *",
			StaleAfterDays:           7,
			BatchLimit:               10,
			RequestDelayMS:           500,
			InvocationTimeoutSeconds: 150,
			Enabled:                  true,
		},
	}
}

func TestAuditRefreshSyncService_RunOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	refresher := mocks.NewMockAuditRefresher(ctrl)
	service := NewAuditRefreshSyncService(refresher, newTestConfig())

	report := &domain.RefreshReport{
		Success:   true,
		Processed: 2,
		RunID:     "abc123XYZ0",
		Results: []domain.RefreshResult{
			{Domain: "a.com", Success: true},
			{Domain: "b.com", Success: false, Error: "falhou"},
		},
	}

	refresher.EXPECT().RefreshStale(gomock.Any()).
		DoAndReturn(func(ctx context.Context) (*domain.RefreshReport, error) {
			deadline, ok := ctx.Deadline()
			require.True(t, ok)
			assert.WithinDuration(t, time.Now().Add(150*time.Second), deadline, 5*time.Second)
			return report, nil
		})

	result, err := service.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, report, result)

	status := service.GetStatus()
	assert.Equal(t, false, status["sync_running"])
	assert.Equal(t, "abc123XYZ0", status["last_run_id"])
	assert.Equal(t, 2, status["last_processed"])
	assert.Equal(t, 1, status["last_failed"])
	assert.Equal(t, "", status["last_error"])
	assert.Equal(t, 150, status["invocation_timeout_s"])
}

func TestAuditRefreshSyncService_RunOnce_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	refresher := mocks.NewMockAuditRefresher(ctrl)
	service := NewAuditRefreshSyncService(refresher, newTestConfig())

	fatal := auditing.NewAuditError(auditing.ErrMissingCredentials, apiErrors.ErrMissingCredentials, "ahrefs")
	refresher.EXPECT().RefreshStale(gomock.Any()).Return(nil, fatal)

	result, err := service.RunOnce(context.Background())
	assert.Nil(t, result)
	assert.ErrorIs(t, err, auditing.ErrMissingCredentials)

	status := service.GetStatus()
	assert.Contains(t, status["last_error"], "credenciais")
	assert.Equal(t, false, status["sync_running"])
}

func TestAuditRefreshSyncService_RunOnce_Overlap(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	refresher := mocks.NewMockAuditRefresher(ctrl)
	service := NewAuditRefreshSyncService(refresher, newTestConfig())

	started := make(chan struct{})
	release := make(chan struct{})

	refresher.EXPECT().RefreshStale(gomock.Any()).
		DoAndReturn(func(ctx context.Context) (*domain.RefreshReport, error) {
			close(started)
			<-release
			return &domain.RefreshReport{Success: true}, nil
		}).Times(1)

	done := make(chan error, 1)
	go func() {
		_, err := service.RunOnce(context.Background())
		done <- err
	}()

	<-started

	_, err := service.RunOnce(context.Background())
	assert.ErrorIs(t, err, ErrSyncRunning)
	assert.False(t, service.TriggerManualSync())
	assert.Equal(t, true, service.GetStatus()["sync_running"])

	close(release)
	assert.NoError(t, <-done)
}

func TestAuditRefreshSyncService_StartDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := newTestConfig()
	cfg.AuditRefresh.Enabled = false

	service := NewAuditRefreshSyncService(mocks.NewMockAuditRefresher(ctrl), cfg)
	assert.NoError(t, service.Start(context.Background()))
	assert.Equal(t, false, service.GetStatus()["sync_enabled"])
}

func TestAuditRefreshSyncService_StartInvalidCron(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := newTestConfig()
	cfg.AuditRefresh.CronSchedule = "not a cron"

	service := NewAuditRefreshSyncService(mocks.NewMockAuditRefresher(ctrl), cfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	err := service.Start(ctx)
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrSyncRunning))
}
