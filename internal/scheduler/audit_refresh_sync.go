package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/seo-audit-api/internal/config"
	"github.com/vfg2006/seo-audit-api/internal/domain"
	"github.com/vfg2006/seo-audit-api/internal/usecases/auditing"
)

// JobAuditRefresh é o nome do job de atualização das auditorias desatualizadas
const JobAuditRefresh = "audit-refresh"

// ErrSyncRunning indica que já existe uma atualização em andamento
var ErrSyncRunning = errors.New("atualização de auditorias já em andamento")

// AuditRefreshScheduler agenda e executa a atualização em lote das auditorias
type AuditRefreshScheduler interface {
	Start(ctx context.Context) error
	RunOnce(ctx context.Context) (*domain.RefreshReport, error)
	TriggerManualSync() bool
	GetStatus() map[string]any
}

// AuditRefreshSyncConfig representa a configuração do agendador de auditorias
type AuditRefreshSyncConfig struct {
	CronSchedule      string
	InvocationTimeout time.Duration
	SyncEnabled       bool
}

// AuditRefreshSyncService gerencia o agendamento e execução da atualização das auditorias
type AuditRefreshSyncService struct {
	scheduler    *gocron.Scheduler
	config       AuditRefreshSyncConfig
	auditService auditing.AuditRefresher

	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastRunID           string
	lastProcessed       int
	lastFailed          int
	lastError           string
}

// NewAuditRefreshSyncService cria uma nova instância do agendador de auditorias
func NewAuditRefreshSyncService(auditService auditing.AuditRefresher, appConfig *config.Config) *AuditRefreshSyncService {
	syncConfig := AuditRefreshSyncConfig{
		CronSchedule:      appConfig.AuditRefresh.CronSchedule,
		InvocationTimeout: appConfig.AuditRefresh.InvocationTimeout(),
		SyncEnabled:       appConfig.AuditRefresh.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":      syncConfig.CronSchedule,
		"invocation_timeout": syncConfig.InvocationTimeout.String(),
		"stale_after_days":   appConfig.AuditRefresh.StaleAfterDays,
		"batch_limit":        appConfig.AuditRefresh.BatchLimit,
		"request_delay_ms":   appConfig.AuditRefresh.RequestDelayMS,
		"sync_enabled":       syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de auditorias carregada")

	return &AuditRefreshSyncService{
		scheduler:    gocron.NewScheduler(time.UTC),
		config:       syncConfig,
		auditService: auditService,
	}
}

// Start inicia o agendador
func (s *AuditRefreshSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Atualização automática de auditorias desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de atualização de auditorias")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if _, err := s.RunOnce(ctx); err != nil && !errors.Is(err, ErrSyncRunning) {
			logrus.WithError(err).Error("Execução agendada de atualização de auditorias falhou")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar atualização de auditorias: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de atualização de auditorias")
		s.scheduler.Stop()
	}()

	return nil
}

// RunOnce executa uma atualização em lote de forma síncrona, limitada por InvocationTimeout.
// Retorna ErrSyncRunning se outra execução estiver em andamento.
func (s *AuditRefreshSyncService) RunOnce(ctx context.Context) (*domain.RefreshReport, error) {
	if !s.acquire() {
		logrus.Info("Atualização de auditorias já em andamento, ignorando")
		return nil, ErrSyncRunning
	}
	defer s.release()

	if s.config.InvocationTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.InvocationTimeout)
		defer cancel()
	}

	startTime := time.Now()
	logrus.WithField("job", JobAuditRefresh).Info("Iniciando atualização em lote das auditorias")

	report, err := s.auditService.RefreshStale(ctx)
	s.record(report, err)

	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"job":       JobAuditRefresh,
		"run_id":    report.RunID,
		"processed": report.Processed,
		"failed":    report.Failed(),
		"duration":  time.Since(startTime).String(),
	}).Info("Atualização em lote das auditorias concluída")

	return report, nil
}

// TriggerManualSync inicia manualmente uma atualização em segundo plano.
// Retorna falso quando já existe uma execução em andamento.
func (s *AuditRefreshSyncService) TriggerManualSync() bool {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Atualização de auditorias já em andamento, ignorando solicitação manual")
		return false
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando atualização manual de auditorias")
	go func() {
		if _, err := s.RunOnce(context.Background()); err != nil && !errors.Is(err, ErrSyncRunning) {
			logrus.WithError(err).Error("Atualização manual de auditorias falhou")
		}
	}()

	return true
}

// GetStatus retorna o status atual do agendador
func (s *AuditRefreshSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"job":                    JobAuditRefresh,
		"sync_running":           s.syncRunning,
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"invocation_timeout_s":   int(s.config.InvocationTimeout.Seconds()),
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_run_id":            s.lastRunID,
		"last_processed":         s.lastProcessed,
		"last_failed":            s.lastFailed,
		"last_error":             s.lastError,
	}
}

func (s *AuditRefreshSyncService) acquire() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		return false
	}

	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	return true
}

func (s *AuditRefreshSyncService) release() {
	s.syncMutex.Lock()
	s.syncRunning = false
	s.syncMutex.Unlock()
}

func (s *AuditRefreshSyncService) record(report *domain.RefreshReport, err error) {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	s.lastSyncCompletedAt = time.Now()

	if err != nil {
		s.lastError = err.Error()
		s.lastRunID = ""
		s.lastProcessed = 0
		s.lastFailed = 0
		return
	}

	s.lastError = ""
	s.lastRunID = report.RunID
	s.lastProcessed = report.Processed
	s.lastFailed = report.Failed()
}
