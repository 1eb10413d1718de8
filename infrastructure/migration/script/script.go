package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/seo-audit-api/infrastructure/database/postgres"
	"github.com/vfg2006/seo-audit-api/internal/config"
	"github.com/vfg2006/seo-audit-api/internal/domain"
	"github.com/vfg2006/seo-audit-api/pkg/utils"
)

// schemaStatements cria as tabelas e índices. Todas as instruções são idempotentes.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS saved_audits (
		id                UUID PRIMARY KEY,
		domain            TEXT NOT NULL,
		domain_rating     DOUBLE PRECISION,
		organic_traffic   BIGINT,
		organic_keywords  BIGINT,
		backlinks         BIGINT,
		referring_domains BIGINT,
		traffic_value     DOUBLE PRECISION,
		rank_score        DOUBLE PRECISION,
		category          TEXT,
		submitter_email   TEXT,
		created_at        TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at        TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`ALTER TABLE saved_audits ADD COLUMN IF NOT EXISTS slug TEXT`,
	`CREATE INDEX IF NOT EXISTS saved_audits_updated_at_idx ON saved_audits (updated_at)`,
	`CREATE INDEX IF NOT EXISTS saved_audits_category_idx ON saved_audits (category)`,
	`CREATE TABLE IF NOT EXISTS audit_history (
		id                BIGSERIAL PRIMARY KEY,
		audit_id          UUID REFERENCES saved_audits (id) ON DELETE SET NULL,
		domain            TEXT NOT NULL,
		domain_rating     DOUBLE PRECISION,
		organic_traffic   BIGINT,
		organic_keywords  BIGINT,
		backlinks         BIGINT,
		referring_domains BIGINT,
		traffic_value     DOUBLE PRECISION,
		rank_score        DOUBLE PRECISION,
		source            TEXT NOT NULL CHECK (source IN ('manual', 'auto')),
		snapshot_at       TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS audit_history_audit_id_snapshot_idx ON audit_history (audit_id, snapshot_at)`,
	`CREATE INDEX IF NOT EXISTS audit_history_domain_snapshot_idx ON audit_history (domain, snapshot_at)`,
}

// constraintStatements rodam depois do preenchimento dos slugs
var constraintStatements = []string{
	`ALTER TABLE saved_audits ALTER COLUMN slug SET NOT NULL`,
	`CREATE UNIQUE INDEX IF NOT EXISTS saved_audits_slug_key ON saved_audits (slug)`,
}

type pendingSlug struct {
	ID     string
	Domain string
}

func setupLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
	logrus.Info("Iniciando script de migração...")
}

func applyStatements(ctx context.Context, tx *sql.Tx, statements []string) error {
	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("erro ao executar instrução %d/%d: %w", i+1, len(statements), err)
		}
	}
	return nil
}

func listMissingSlugs(ctx context.Context, tx *sql.Tx) ([]pendingSlug, error) {
	query, args, err := squirrel.
		Select("id", "domain").
		From("saved_audits").
		Where(squirrel.Eq{"slug": nil}).
		OrderBy("created_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir query: %w", err)
	}

	rows, err := tx.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar auditorias sem slug: %w", err)
	}
	defer rows.Close()

	pending := make([]pendingSlug, 0)
	for rows.Next() {
		var p pendingSlug
		if err := rows.Scan(&p.ID, &p.Domain); err != nil {
			return nil, fmt.Errorf("erro ao ler auditoria: %w", err)
		}
		pending = append(pending, p)
	}

	return pending, rows.Err()
}

// listExistingSlugs retorna os slugs já gravados para que o preenchimento não os repita
func listExistingSlugs(ctx context.Context, tx *sql.Tx) (map[string]struct{}, error) {
	query, args, err := squirrel.
		Select("slug").
		From("saved_audits").
		Where(squirrel.NotEq{"slug": nil}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir query: %w", err)
	}

	rows, err := tx.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar slugs existentes: %w", err)
	}
	defer rows.Close()

	used := make(map[string]struct{})
	for rows.Next() {
		var slug string
		if err := rows.Scan(&slug); err != nil {
			return nil, fmt.Errorf("erro ao ler slug: %w", err)
		}
		used[slug] = struct{}{}
	}

	return used, rows.Err()
}

// uniqueSlug adiciona um sufixo curto enquanto o slug já estiver em uso
func uniqueSlug(base string, used map[string]struct{}) (string, error) {
	slug := base
	for {
		if _, taken := used[slug]; !taken {
			return slug, nil
		}

		suffix, err := utils.GenerateRunID()
		if err != nil {
			return "", fmt.Errorf("erro ao gerar sufixo do slug: %w", err)
		}
		slug = fmt.Sprintf("%s-%s", base, suffix[:6])
	}
}

// backfillSlugs preenche o slug das auditorias antigas. Domínios repetidos, entre si ou com
// slugs já gravados, recebem um sufixo curto para não violar o índice único criado em seguida.
func backfillSlugs(ctx context.Context, tx *sql.Tx) error {
	pending, err := listMissingSlugs(ctx, tx)
	if err != nil {
		return err
	}

	if len(pending) == 0 {
		logrus.Info("Nenhum slug ausente")
		return nil
	}

	used, err := listExistingSlugs(ctx, tx)
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"audits":   len(pending),
		"existing": len(used),
	}).Info("Preenchendo slugs ausentes")
	startTime := time.Now()

	for i, p := range pending {
		normalized, err := domain.NormalizeDomain(p.Domain)
		if err != nil {
			normalized = p.Domain
			logrus.WithField("domain", p.Domain).Warn("Domínio inválido, slug gerado a partir do valor bruto")
		}

		slug, err := uniqueSlug(domain.Slugify(normalized), used)
		if err != nil {
			return err
		}

		if err := updateSlug(ctx, tx, p.ID, slug); err != nil {
			return err
		}
		used[slug] = struct{}{}

		if i > 0 && i%100 == 0 {
			logrus.Infof("Progresso: %d/%d slugs preenchidos", i+1, len(pending))
		}
	}

	logrus.WithField("duration", time.Since(startTime).String()).Info("Preenchimento de slugs concluído")
	return nil
}

func updateSlug(ctx context.Context, tx *sql.Tx, id, slug string) error {
	query, args, err := squirrel.
		Update("saved_audits").
		Set("slug", slug).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir update: %w", err)
	}

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao gravar slug %s: %w", slug, err)
	}
	return nil
}

func main() {
	setupLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar configuração")
	}

	ctx := context.Background()

	logrus.Info("Conectando ao banco de dados...")
	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao banco de dados")
	}
	defer conn.Close()

	startTime := time.Now()

	err = conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if err := applyStatements(ctx, tx, schemaStatements); err != nil {
			return err
		}
		if err := backfillSlugs(ctx, tx); err != nil {
			return err
		}
		return applyStatements(ctx, tx, constraintStatements)
	})
	if err != nil {
		logrus.WithError(err).Fatal("Migração falhou, nenhuma alteração foi aplicada")
	}

	logrus.WithField("duration", time.Since(startTime).String()).Info("Migração concluída com sucesso")
}
