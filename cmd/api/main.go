package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/seo-audit-api/infrastructure/database/postgres"
	"github.com/vfg2006/seo-audit-api/infrastructure/integrator/ahrefs"
	"github.com/vfg2006/seo-audit-api/infrastructure/integrator/ahrefs/ahrefsclient"
	"github.com/vfg2006/seo-audit-api/infrastructure/integrator/bron"
	"github.com/vfg2006/seo-audit-api/infrastructure/integrator/bron/bronclient"
	"github.com/vfg2006/seo-audit-api/infrastructure/integrator/dataforseo"
	"github.com/vfg2006/seo-audit-api/infrastructure/integrator/dataforseo/dataforseoclient"
	"github.com/vfg2006/seo-audit-api/infrastructure/repository"
	"github.com/vfg2006/seo-audit-api/internal/api"
	"github.com/vfg2006/seo-audit-api/internal/config"
	"github.com/vfg2006/seo-audit-api/internal/scheduler"
	"github.com/vfg2006/seo-audit-api/internal/usecases/auditing"
	"github.com/vfg2006/seo-audit-api/internal/usecases/authenticating"
	"github.com/vfg2006/seo-audit-api/internal/usecases/tracking"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	auditRepo := repository.NewAuditRepository(pgConn)
	auditHistoryRepo := repository.NewAuditHistoryRepository(pgConn)

	authenticator := authenticating.NewService(cfg)

	ahrefsIntegrator := ahrefs.New(cfg, ahrefsclient.NewClient(cfg))
	dataforseoIntegrator := dataforseo.New(cfg, dataforseoclient.NewClient(cfg))
	bronIntegrator := bron.New(cfg, bronclient.NewClient(cfg))

	if !ahrefsIntegrator.IsConfigured() || !dataforseoIntegrator.IsConfigured() {
		logrus.Warn("Credenciais do Ahrefs ou do DataForSEO ausentes, atualizações de auditoria vão falhar")
	}

	fetcher := auditing.NewFetcher(ahrefsIntegrator, dataforseoIntegrator)
	auditService := auditing.NewService(auditRepo, auditHistoryRepo, fetcher, cfg)
	rankTracker := tracking.NewService(bronIntegrator)

	auditRefreshSyncService := scheduler.NewAuditRefreshSyncService(auditService, cfg)

	if err := auditRefreshSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de atualização de auditorias")
	} else {
		logrus.Info("Agendador de atualização de auditorias iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		auditService,
		rankTracker,
		authenticator,
		auditRefreshSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
