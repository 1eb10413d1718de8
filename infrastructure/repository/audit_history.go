package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/seo-audit-api/infrastructure/database/postgres"
	"github.com/vfg2006/seo-audit-api/internal/domain"
)

const (
	auditHistoryTable = "audit_history"
)

// snapshotAtExpr mantém snapshot_at não decrescente por domínio mesmo com relógios divergentes
const snapshotAtExpr = "GREATEST(NOW(), COALESCE((SELECT MAX(h.snapshot_at) FROM audit_history h WHERE h.domain = ?), NOW()))"

// AuditHistoryRepository só insere e lê. Pontos de histórico nunca são alterados ou removidos.
type AuditHistoryRepository interface {
	Insert(ctx context.Context, snapshot *domain.AuditHistorySnapshot) (*domain.AuditHistorySnapshot, error)
	ListByAuditID(ctx context.Context, auditID string, filter domain.HistoryFilter) ([]*domain.AuditHistorySnapshot, error)
	GetBounds(ctx context.Context, auditID string, filter domain.HistoryFilter) (*domain.HistoryBounds, error)
}

type auditHistoryRepository struct {
	conn *postgres.Connection
}

func NewAuditHistoryRepository(conn *postgres.Connection) AuditHistoryRepository {
	return &auditHistoryRepository{
		conn: conn,
	}
}

func (r *auditHistoryRepository) Insert(ctx context.Context, snapshot *domain.AuditHistorySnapshot) (*domain.AuditHistorySnapshot, error) {
	if !snapshot.Source.IsValid() {
		return nil, fmt.Errorf("origem de histórico inválida: %q", snapshot.Source)
	}

	query, args, err := squirrel.
		Insert(auditHistoryTable).
		Columns(
			"audit_id",
			"domain",
			"domain_rating",
			"organic_traffic",
			"organic_keywords",
			"backlinks",
			"referring_domains",
			"traffic_value",
			"rank_score",
			"source",
			"snapshot_at",
		).
		Values(
			snapshot.AuditID,
			snapshot.Domain,
			snapshot.DomainRating,
			snapshot.OrganicTraffic,
			snapshot.OrganicKeywords,
			snapshot.Backlinks,
			snapshot.ReferringDomains,
			snapshot.TrafficValue,
			snapshot.RankScore,
			string(snapshot.Source),
			squirrel.Expr(snapshotAtExpr, snapshot.Domain),
		).
		Suffix("RETURNING id, snapshot_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	saved := *snapshot
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&saved.ID, &saved.SnapshotAt); err != nil {
		return nil, fmt.Errorf("erro ao inserir histórico de %s: %w", snapshot.Domain, err)
	}

	return &saved, nil
}

var historyColumns = []string{
	"id",
	"audit_id",
	"domain",
	"domain_rating",
	"organic_traffic",
	"organic_keywords",
	"backlinks",
	"referring_domains",
	"traffic_value",
	"rank_score",
	"source",
	"snapshot_at",
}

// applyHistoryFilter restringe a consulta à auditoria e ao intervalo de datas do filtro
func applyHistoryFilter(builder squirrel.SelectBuilder, auditID string, filter domain.HistoryFilter) squirrel.SelectBuilder {
	builder = builder.
		From(auditHistoryTable).
		Where(squirrel.Eq{"audit_id": auditID}).
		PlaceholderFormat(squirrel.Dollar)

	if filter.StartDate != nil {
		builder = builder.Where(squirrel.GtOrEq{"snapshot_at": *filter.StartDate})
	}

	if filter.EndDate != nil {
		builder = builder.Where(squirrel.LtOrEq{"snapshot_at": *filter.EndDate})
	}

	return builder
}

func scanSnapshot(row rowScanner) (*domain.AuditHistorySnapshot, error) {
	snapshot := &domain.AuditHistorySnapshot{}
	var source string

	err := row.Scan(
		&snapshot.ID,
		&snapshot.AuditID,
		&snapshot.Domain,
		&snapshot.DomainRating,
		&snapshot.OrganicTraffic,
		&snapshot.OrganicKeywords,
		&snapshot.Backlinks,
		&snapshot.ReferringDomains,
		&snapshot.TrafficValue,
		&snapshot.RankScore,
		&source,
		&snapshot.SnapshotAt,
	)
	if err != nil {
		return nil, err
	}

	snapshot.Source = domain.SnapshotSource(source)
	return snapshot, nil
}

// ListByAuditID retorna o histórico em ordem crescente de snapshot_at
func (r *auditHistoryRepository) ListByAuditID(ctx context.Context, auditID string, filter domain.HistoryFilter) ([]*domain.AuditHistorySnapshot, error) {
	query, args, err := applyHistoryFilter(squirrel.Select(historyColumns...), auditID, filter).
		OrderBy("snapshot_at ASC").
		Limit(uint64(filter.NormalizedLimit())).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	history := make([]*domain.AuditHistorySnapshot, 0)
	for rows.Next() {
		snapshot, err := scanSnapshot(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear histórico: %w", err)
		}
		history = append(history, snapshot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return history, nil
}

// GetBounds retorna o primeiro e o último ponto do intervalo e o total de pontos, sem o
// limite de paginação usado por ListByAuditID
func (r *auditHistoryRepository) GetBounds(ctx context.Context, auditID string, filter domain.HistoryFilter) (*domain.HistoryBounds, error) {
	query, args, err := applyHistoryFilter(squirrel.Select("COUNT(*)"), auditID, filter).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query de contagem: %w", err)
	}

	bounds := &domain.HistoryBounds{}
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&bounds.Count); err != nil {
		return nil, fmt.Errorf("erro ao contar histórico: %w", err)
	}

	if bounds.Count == 0 {
		return bounds, nil
	}

	if bounds.First, err = r.edgeSnapshot(ctx, auditID, filter, "snapshot_at ASC"); err != nil {
		return nil, err
	}

	if bounds.Last, err = r.edgeSnapshot(ctx, auditID, filter, "snapshot_at DESC"); err != nil {
		return nil, err
	}

	return bounds, nil
}

func (r *auditHistoryRepository) edgeSnapshot(ctx context.Context, auditID string, filter domain.HistoryFilter, order string) (*domain.AuditHistorySnapshot, error) {
	query, args, err := applyHistoryFilter(squirrel.Select(historyColumns...), auditID, filter).
		OrderBy(order).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	snapshot, err := scanSnapshot(r.conn.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar ponto de histórico (%s): %w", order, err)
	}

	return snapshot, nil
}
