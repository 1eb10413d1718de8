// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/seo-audit-api/infrastructure/database/postgres"
	"github.com/vfg2006/seo-audit-api/internal/domain"
	"github.com/vfg2006/seo-audit-api/pkg/utils"
)

const (
	auditTable = "saved_audits"
)

var auditColumns = []string{
	"id",
	"domain",
	"slug",
	"domain_rating",
	"organic_traffic",
	"organic_keywords",
	"backlinks",
	"referring_domains",
	"traffic_value",
	"rank_score",
	"category",
	"submitter_email",
	"created_at",
	"updated_at",
}

type AuditRepository interface {
	ListStale(ctx context.Context, olderThan time.Time, limit int) ([]*domain.Audit, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Audit, error)
	List(ctx context.Context, filter domain.AuditFilter) ([]*domain.Audit, error)
	UpsertMetrics(ctx context.Context, audit *domain.Audit) (string, error)
	Claim(ctx context.Context, slug, email string) (bool, error)
}

type auditRepository struct {
	conn *postgres.Connection
}

func NewAuditRepository(conn *postgres.Connection) AuditRepository {
	return &auditRepository{
		conn: conn,
	}
}

// ListStale retorna até limit auditorias cujo updated_at é anterior a olderThan.
// A ordem não é garantida.
func (r *auditRepository) ListStale(ctx context.Context, olderThan time.Time, limit int) ([]*domain.Audit, error) {
	query, args, err := squirrel.
		Select(auditColumns...).
		From(auditTable).
		Where(squirrel.Lt{"updated_at": olderThan}).
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryAudits(ctx, query, args...)
}

func (r *auditRepository) GetBySlug(ctx context.Context, slug string) (*domain.Audit, error) {
	query, args, err := squirrel.
		Select(auditColumns...).
		From(auditTable).
		Where(squirrel.Eq{"slug": slug}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	audit, err := scanAudit(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear auditoria: %w", err)
	}

	return audit, nil
}

func (r *auditRepository) List(ctx context.Context, filter domain.AuditFilter) ([]*domain.Audit, error) {
	builder := squirrel.
		Select(auditColumns...).
		From(auditTable).
		OrderBy("updated_at DESC").
		Limit(uint64(filter.NormalizedLimit())).
		PlaceholderFormat(squirrel.Dollar)

	if filter.Category != nil && *filter.Category != "" {
		builder = builder.Where(squirrel.Eq{"category": *filter.Category})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryAudits(ctx, query, args...)
}

// UpsertMetrics grava as métricas atuais pelo slug e retorna o id da linha.
// Categoria e estado de reivindicação não são sobrescritos.
func (r *auditRepository) UpsertMetrics(ctx context.Context, audit *domain.Audit) (string, error) {
	id := audit.ID
	if id == "" {
		id = utils.GenerateAuditID()
	}

	query, args, err := squirrel.
		Insert(auditTable).
		Columns(
			"id",
			"domain",
			"slug",
			"domain_rating",
			"organic_traffic",
			"organic_keywords",
			"backlinks",
			"referring_domains",
			"traffic_value",
			"rank_score",
		).
		Values(
			id,
			audit.Domain,
			audit.Slug,
			audit.DomainRating,
			audit.OrganicTraffic,
			audit.OrganicKeywords,
			audit.Backlinks,
			audit.ReferringDomains,
			audit.TrafficValue,
			audit.RankScore,
		).
		Suffix(`
			ON CONFLICT (slug) DO UPDATE SET
				domain = EXCLUDED.domain,
				domain_rating = EXCLUDED.domain_rating,
				organic_traffic = EXCLUDED.organic_traffic,
				organic_keywords = EXCLUDED.organic_keywords,
				backlinks = EXCLUDED.backlinks,
				referring_domains = EXCLUDED.referring_domains,
				traffic_value = EXCLUDED.traffic_value,
				rank_score = EXCLUDED.rank_score,
				updated_at = NOW()
			RETURNING id
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("erro ao construir query de upsert: %w", err)
	}

	var savedID string
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&savedID); err != nil {
		return "", fmt.Errorf("erro ao executar upsert da auditoria %s: %w", audit.Slug, err)
	}

	return savedID, nil
}

// Claim grava o e-mail apenas quando a auditoria ainda não foi reivindicada.
// Retorna falso quando nenhuma linha foi alterada.
func (r *auditRepository) Claim(ctx context.Context, slug, email string) (bool, error) {
	query, args, err := squirrel.
		Update(auditTable).
		Set("submitter_email", email).
		Where(squirrel.Eq{"slug": slug}).
		Where(squirrel.Eq{"submitter_email": nil}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("erro ao reivindicar auditoria: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("erro ao verificar linhas afetadas: %w", err)
	}

	return rows == 1, nil
}

func (r *auditRepository) queryAudits(ctx context.Context, query string, args ...interface{}) ([]*domain.Audit, error) {
	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	audits := make([]*domain.Audit, 0)
	for rows.Next() {
		audit, err := scanAudit(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear auditoria: %w", err)
		}
		audits = append(audits, audit)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return audits, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAudit(row rowScanner) (*domain.Audit, error) {
	audit := &domain.Audit{}

	err := row.Scan(
		&audit.ID,
		&audit.Domain,
		&audit.Slug,
		&audit.DomainRating,
		&audit.OrganicTraffic,
		&audit.OrganicKeywords,
		&audit.Backlinks,
		&audit.ReferringDomains,
		&audit.TrafficValue,
		&audit.RankScore,
		&audit.Category,
		&audit.SubmitterEmail,
		&audit.CreatedAt,
		&audit.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return audit, nil
}
