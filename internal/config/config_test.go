package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAuditRefreshDurations(t *testing.T) {
	cfg := AuditRefresh{
		StaleAfterDays:           7,
		RequestDelayMS:           500,
		InvocationTimeoutSeconds: 150,
	}

	assert.Equal(t, 7*24*time.Hour, cfg.StaleAfter())
	assert.Equal(t, 500*time.Millisecond, cfg.RequestDelay())
	assert.Equal(t, 150*time.Second, cfg.InvocationTimeout())
}

func TestAuditRefreshDurations_Zero(t *testing.T) {
	cfg := AuditRefresh{}

	assert.Zero(t, cfg.StaleAfter())
	assert.Zero(t, cfg.RequestDelay())
	assert.Zero(t, cfg.InvocationTimeout())
}
