package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/seo-audit-api/internal/domain"
)

func TestAuditHistoryRepository_Insert(t *testing.T) {
	t.Run("Insere com snapshot_at monotônico e retorna id", func(t *testing.T) {
		conn, mock := newMockConn(t)
		repo := NewAuditHistoryRepository(conn)

		auditID := "a1"
		snapshot := &domain.AuditHistorySnapshot{
			AuditID: &auditID,
			Domain:  "example.com",
			AuditMetrics: domain.AuditMetrics{
				DomainRating: floatPtr(50),
			},
			Source: domain.SnapshotSourceAuto,
		}
		snapshotAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO audit_history") + `[\s\S]*` +
			regexp.QuoteMeta("GREATEST(NOW(), COALESCE((SELECT MAX(h.snapshot_at) FROM audit_history h WHERE h.domain = $11), NOW()))) RETURNING id, snapshot_at")).
			WithArgs(
				"a1",
				"example.com",
				50.0,
				nil, nil, nil, nil, nil, nil,
				"auto",
				"example.com",
			).
			WillReturnRows(sqlmock.NewRows([]string{"id", "snapshot_at"}).AddRow(int64(7), snapshotAt))

		saved, err := repo.Insert(context.Background(), snapshot)

		require.NoError(t, err)
		assert.Equal(t, int64(7), saved.ID)
		assert.Equal(t, snapshotAt, saved.SnapshotAt)
		assert.Equal(t, domain.SnapshotSourceAuto, saved.Source)
		assert.Zero(t, snapshot.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Origem inválida não chega ao banco", func(t *testing.T) {
		conn, mock := newMockConn(t)
		repo := NewAuditHistoryRepository(conn)

		_, err := repo.Insert(context.Background(), &domain.AuditHistorySnapshot{Domain: "a.com", Source: "cron"})

		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Erro do banco é propagado", func(t *testing.T) {
		conn, mock := newMockConn(t)
		repo := NewAuditHistoryRepository(conn)

		mock.ExpectQuery("INSERT INTO audit_history").WillReturnError(errors.New("fk violation"))

		saved, err := repo.Insert(context.Background(), &domain.AuditHistorySnapshot{Domain: "a.com", Source: domain.SnapshotSourceManual})

		assert.Error(t, err)
		assert.Nil(t, saved)
	})
}

func TestAuditHistoryRepository_ListByAuditID(t *testing.T) {
	conn, mock := newMockConn(t)
	repo := NewAuditHistoryRepository(conn)

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	first := start.AddDate(0, 0, 5)
	second := start.AddDate(0, 0, 35)

	mock.ExpectQuery(regexp.QuoteMeta("FROM audit_history WHERE audit_id = $1 AND snapshot_at >= $2 AND snapshot_at <= $3 ORDER BY snapshot_at ASC LIMIT 30")).
		WithArgs("a1", start, end).
		WillReturnRows(sqlmock.NewRows(historyColumns).
			AddRow(int64(1), "a1", "example.com", 40.0, nil, nil, nil, nil, nil, nil, "manual", first).
			AddRow(int64(2), "a1", "example.com", 45.0, int64(900), nil, nil, nil, nil, nil, "auto", second))

	history, err := repo.ListByAuditID(context.Background(), "a1", domain.HistoryFilter{
		StartDate: &start,
		EndDate:   &end,
		Limit:     30,
	})

	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, domain.SnapshotSourceManual, history[0].Source)
	assert.Equal(t, 45.0, *history[1].DomainRating)
	assert.Equal(t, int64(900), *history[1].OrganicTraffic)
	assert.Equal(t, "a1", *history[1].AuditID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuditHistoryRepository_GetBounds(t *testing.T) {
	t.Run("Último ponto vem da ordem decrescente mesmo acima do limite de listagem", func(t *testing.T) {
		conn, mock := newMockConn(t)
		repo := NewAuditHistoryRepository(conn)

		oldest := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
		newest := oldest.AddDate(0, 0, 499)

		mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM audit_history WHERE audit_id = $1")).
			WithArgs("a1").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(500))
		mock.ExpectQuery(regexp.QuoteMeta("FROM audit_history WHERE audit_id = $1 ORDER BY snapshot_at ASC LIMIT 1")).
			WithArgs("a1").
			WillReturnRows(sqlmock.NewRows(historyColumns).
				AddRow(int64(1), "a1", "example.com", 0.0, nil, nil, nil, nil, nil, nil, "auto", oldest))
		mock.ExpectQuery(regexp.QuoteMeta("FROM audit_history WHERE audit_id = $1 ORDER BY snapshot_at DESC LIMIT 1")).
			WithArgs("a1").
			WillReturnRows(sqlmock.NewRows(historyColumns).
				AddRow(int64(500), "a1", "example.com", 499.0, nil, nil, nil, nil, nil, nil, "auto", newest))

		bounds, err := repo.GetBounds(context.Background(), "a1", domain.HistoryFilter{})

		require.NoError(t, err)
		assert.Equal(t, 500, bounds.Count)
		assert.Equal(t, oldest, bounds.First.SnapshotAt)
		assert.Equal(t, newest, bounds.Last.SnapshotAt)
		assert.Equal(t, 499.0, *bounds.Last.DomainRating)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Intervalo vazio não busca pontas", func(t *testing.T) {
		conn, mock := newMockConn(t)
		repo := NewAuditHistoryRepository(conn)

		start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

		mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM audit_history WHERE audit_id = $1 AND snapshot_at >= $2")).
			WithArgs("a1", start).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		bounds, err := repo.GetBounds(context.Background(), "a1", domain.HistoryFilter{StartDate: &start})

		require.NoError(t, err)
		assert.Equal(t, 0, bounds.Count)
		assert.Nil(t, bounds.First)
		assert.Nil(t, bounds.Last)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Erro na contagem é propagado", func(t *testing.T) {
		conn, mock := newMockConn(t)
		repo := NewAuditHistoryRepository(conn)

		mock.ExpectQuery("SELECT COUNT").WillReturnError(errors.New("conexão perdida"))

		bounds, err := repo.GetBounds(context.Background(), "a1", domain.HistoryFilter{})

		assert.Error(t, err)
		assert.Nil(t, bounds)
	})
}
