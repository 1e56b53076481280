package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-integration-api/infrastructure/repository"
	"github.com/vfg2006/ads-integration-api/internal/config"
	"github.com/vfg2006/ads-integration-api/internal/domain"
	"github.com/vfg2006/ads-integration-api/pkg/log"
	"github.com/vfg2006/ads-integration-api/pkg/metrics"
)

// IntegrationSyncConfig representa a configuração do agendador de sincronização das integrações
type IntegrationSyncConfig struct {
	CronSchedule        string
	RefreshWindow       time.Duration
	RequestDelaySeconds int
	SyncEnabled         bool
}

type tokenRefresher interface {
	RefreshToken(ctx context.Context, integration *domain.Integration) error
}

type accountSyncer interface {
	SyncIntegrationAccounts(ctx context.Context, integration *domain.Integration) ([]*domain.AdAccount, error)
}

// SyncSummary resume a última execução
type SyncSummary struct {
	Integrations int `json:"integrations"`
	Refreshed    int `json:"refreshed"`
	Synced       int `json:"synced"`
	Failed       int `json:"failed"`
}

// IntegrationSyncService renova os tokens de longa duração e ressincroniza as contas de anúncio
// de todas as integrações conectadas do Facebook
type IntegrationSyncService struct {
	scheduler           *gocron.Scheduler
	config              IntegrationSyncConfig
	integrationRepo     repository.IntegrationRepository
	refresher           tokenRefresher
	syncer              accountSyncer
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSummary         SyncSummary
	now                 func() time.Time
	sleep               func(time.Duration)
}

func NewIntegrationSyncService(
	integrationRepo repository.IntegrationRepository,
	refresher tokenRefresher,
	syncer accountSyncer,
	appConfig *config.Config,
) *IntegrationSyncService {
	syncConfig := IntegrationSyncConfig{
		CronSchedule:        appConfig.IntegrationSync.CronSchedule,
		RefreshWindow:       time.Duration(appConfig.IntegrationSync.RefreshWindowHours) * time.Hour,
		RequestDelaySeconds: appConfig.IntegrationSync.RequestDelaySeconds,
		SyncEnabled:         appConfig.IntegrationSync.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":         syncConfig.CronSchedule,
		"refresh_window":        syncConfig.RefreshWindow.String(),
		"request_delay_seconds": syncConfig.RequestDelaySeconds,
		"sync_enabled":          syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de integrações carregada")

	return &IntegrationSyncService{
		scheduler:       gocron.NewScheduler(time.Local),
		config:          syncConfig,
		integrationRepo: integrationRepo,
		refresher:       refresher,
		syncer:          syncer,
		now:             time.Now,
		sleep:           time.Sleep,
	}
}

// Start inicia o agendador
func (s *IntegrationSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de integrações desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização de integrações")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllIntegrations(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de integrações: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de integrações")
		s.scheduler.Stop()
	}()

	return nil
}

// syncAllIntegrations processa as integrações conectadas uma por vez
func (s *IntegrationSyncService) syncAllIntegrations(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de integrações já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	ctx, _ = log.WithCorrelationID(ctx, "")
	logger := log.ForContext(ctx)
	startTime := s.now()

	integrations, err := s.integrationRepo.ListByProviderAndStatus(ctx, domain.ProviderFacebook, domain.IntegrationStatusConnected)
	if err != nil {
		logger.WithError(err).Error("Erro ao buscar integrações para sincronização")
		metrics.ObserveStage("background_sync", false)
		return
	}

	summary := SyncSummary{Integrations: len(integrations)}

	for i, integration := range integrations {
		if ctx.Err() != nil {
			logger.Warn("Sincronização de integrações interrompida")
			break
		}

		refreshed, ok := s.processIntegration(ctx, integration)
		if refreshed {
			summary.Refreshed++
		}
		if ok {
			summary.Synced++
		} else {
			summary.Failed++
		}

		// Aguardar antes da próxima integração para evitar sobrecarga na API
		if i < len(integrations)-1 && s.config.RequestDelaySeconds > 0 {
			s.sleep(time.Duration(s.config.RequestDelaySeconds) * time.Second)
		}
	}

	metrics.ObserveStage("background_sync", summary.Failed == 0)

	logger.WithFields(log.Fields{
		"duration":     s.now().Sub(startTime).String(),
		"integrations": summary.Integrations,
		"refreshed":    summary.Refreshed,
		"synced":       summary.Synced,
		"failed":       summary.Failed,
	}).Info("Sincronização de integrações concluída")

	s.syncMutex.Lock()
	s.lastSummary = summary
	s.lastSyncCompletedAt = s.now()
	s.syncMutex.Unlock()
}

// processIntegration renova o token quando ele expira dentro da janela e ressincroniza as contas
func (s *IntegrationSyncService) processIntegration(ctx context.Context, integration *domain.Integration) (refreshed bool, ok bool) {
	logger := log.ForContext(ctx).WithFields(log.Fields{
		"integration_id": integration.ID,
		"user_id":        integration.UserID,
	})

	if integration.TokenExpiresWithin(s.config.RefreshWindow, s.now()) {
		if err := s.refresher.RefreshToken(ctx, integration); err != nil {
			logger.WithError(err).Error("Erro ao renovar token da integração")
			return false, false
		}
		refreshed = true
	}

	accounts, err := s.syncer.SyncIntegrationAccounts(ctx, integration)
	if err != nil {
		logger.WithError(err).Error("Erro ao sincronizar contas da integração")
		return refreshed, false
	}

	logger.WithField("accounts", len(accounts)).Info("Integração sincronizada")

	return refreshed, true
}

// TriggerManualSync inicia manualmente uma sincronização das integrações
func (s *IntegrationSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de integrações já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de integrações")
	go s.syncAllIntegrations(context.Background())
}

// GetStatus retorna o status atual do agendador
func (s *IntegrationSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"sync_refresh_window":    s.config.RefreshWindow.String(),
		"sync_request_delay_s":   s.config.RequestDelaySeconds,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_summary":      s.lastSummary,
	}
}
