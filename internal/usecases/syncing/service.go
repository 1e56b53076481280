package syncing

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/ads-integration-api/infrastructure/integrator/facebook"
	fbdomain "github.com/vfg2006/ads-integration-api/infrastructure/integrator/facebook/domain"
	"github.com/vfg2006/ads-integration-api/infrastructure/repository"
	"github.com/vfg2006/ads-integration-api/internal/config"
	"github.com/vfg2006/ads-integration-api/internal/domain"
	"github.com/vfg2006/ads-integration-api/pkg/apiErrors"
	"github.com/vfg2006/ads-integration-api/pkg/guard"
	"github.com/vfg2006/ads-integration-api/pkg/log"
	"github.com/vfg2006/ads-integration-api/pkg/metrics"
)

// AdsFetcher busca contas e campanhas já percorrendo toda a paginação
type AdsFetcher interface {
	GetAllAdAccounts(ctx context.Context, accessToken string) ([]fbdomain.AdAccount, error)
	GetAllCampaigns(ctx context.Context, accessToken, accountID string) ([]fbdomain.Campaign, error)
}

type Syncer interface {
	SyncAccounts(ctx context.Context, userID string) domain.Result[[]*domain.AdAccount]
	SyncIntegrationAccounts(ctx context.Context, integration *domain.Integration) ([]*domain.AdAccount, error)
	ListAdAccounts(ctx context.Context, userID string) domain.Result[[]*domain.AdAccount]
	SelectAccounts(ctx context.Context, userID string, accountIDs []string) domain.Result[[]*domain.AdAccount]
	DeselectAccounts(ctx context.Context, userID string, accountIDs []string) domain.Result[[]*domain.AdAccount]
	SyncSelectedAccounts(ctx context.Context, userID string, accountIDs []string) domain.Result[*domain.CampaignSyncReport]
	State(ctx context.Context, userID string) domain.Result[*domain.IntegrationState]
}

type Service struct {
	fetcher         AdsFetcher
	integrationRepo repository.IntegrationRepository
	adAccountRepo   repository.AdAccountRepository
	campaignRepo    repository.CampaignRepository
	guard           guard.Guard
	errorPolicy     ErrorPolicy
	statusPolicy    facebook.StatusPolicy
	now             func() time.Time
}

func NewService(
	cfg *config.Config,
	fetcher AdsFetcher,
	integrationRepo repository.IntegrationRepository,
	adAccountRepo repository.AdAccountRepository,
	campaignRepo repository.CampaignRepository,
	g guard.Guard,
) *Service {
	return &Service{
		fetcher:         fetcher,
		integrationRepo: integrationRepo,
		adAccountRepo:   adAccountRepo,
		campaignRepo:    campaignRepo,
		guard:           g,
		errorPolicy:     ParseErrorPolicy(cfg.CampaignSync.ErrorPolicy),
		statusPolicy:    facebook.ParseStatusPolicy(cfg.CampaignSync.StatusPolicy),
		now:             time.Now,
	}
}

// SyncAccounts busca todas as contas de anúncio do usuário no Facebook e faz o upsert
func (s *Service) SyncAccounts(ctx context.Context, userID string) (res domain.Result[[]*domain.AdAccount]) {
	logger := log.ForContext(ctx).WithField("user_id", userID)

	release, err := s.guard.TryAcquire(ctx, guard.Key(userID, domain.OperationLoadingIntegration))
	if err != nil {
		return busy[[]*domain.AdAccount](logger, err)
	}
	defer release()

	defer domain.Recover(&res, apiErrors.ErrInternalServer, s.onPanic(ctx, logger, "account_sync"))

	integration, syncErr := s.loadConnectedIntegration(ctx, userID)
	if syncErr != nil {
		return failWith[[]*domain.AdAccount](ctx, syncErr, messageFor(syncErr))
	}

	accounts, err := s.SyncIntegrationAccounts(ctx, integration)
	if err != nil {
		var syncErr *SyncError
		if !errors.As(err, &syncErr) {
			syncErr = NewSyncError(err, apiErrors.ErrInternalServer, "")
		}
		return failWith[[]*domain.AdAccount](ctx, syncErr, messageFor(syncErr))
	}

	domain.NotifySuccess(ctx, fmt.Sprintf("%d contas de anúncio sincronizadas", len(accounts)))

	return domain.Ok(accounts)
}

// SyncIntegrationAccounts é o núcleo do AccountSync, também usado pelo job em background.
// Se a persistência falhar nada é devolvido, para não expor uma lista parcial.
func (s *Service) SyncIntegrationAccounts(ctx context.Context, integration *domain.Integration) ([]*domain.AdAccount, error) {
	logger := log.ForContext(ctx).WithField("integration_id", integration.ID)

	fetched, err := s.fetcher.GetAllAdAccounts(ctx, integration.AccessToken)
	if err != nil {
		metrics.ObserveStage("account_fetch", false)
		logger.WithError(err).Error("Erro ao buscar contas de anúncio no Facebook")

		if s.markExpiredIfRevoked(ctx, integration, err) {
			return nil, NewSyncError(ErrTokenExpired, apiErrors.ErrFacebookTokenExpired, "")
		}
		return nil, NewSyncError(ErrFetchAdAccounts, apiErrors.ErrFacebookRequest, graphDetails(err))
	}
	metrics.ObserveStage("account_fetch", true)

	now := s.now().UTC()
	rows := make([]*domain.AdAccount, 0, len(fetched))
	for _, a := range fetched {
		rows = append(rows, facebook.FactoryAdAccount(a, integration.ID, now))
	}

	saved, err := s.adAccountRepo.SaveFacebookAdAccounts(ctx, rows)
	if err != nil {
		metrics.ObserveStage("account_persist", false)
		logger.WithError(err).Error("Erro ao salvar contas de anúncio")
		return nil, NewSyncError(ErrSaveAdAccounts, apiErrors.ErrDatabaseOperation, "")
	}
	metrics.ObserveStage("account_persist", true)
	metrics.AddPersistedRows("fb_ad_accounts", len(saved))

	if err := s.integrationRepo.TouchLastSync(ctx, integration.ID, now); err != nil {
		logger.WithError(err).Warn("Erro ao atualizar last_sync_at da integração")
	}

	logger.WithField("accounts", len(saved)).Info("Contas de anúncio sincronizadas")

	return saved, nil
}

func (s *Service) ListAdAccounts(ctx context.Context, userID string) (res domain.Result[[]*domain.AdAccount]) {
	logger := log.ForContext(ctx).WithField("user_id", userID)

	defer domain.Recover(&res, apiErrors.ErrInternalServer, s.onPanic(ctx, logger, "account_list"))

	integration, err := s.integrationRepo.GetByUserAndProvider(ctx, userID, domain.ProviderFacebook)
	if err != nil {
		logger.WithError(err).Error("Erro ao buscar integração")
		return domain.Fail[[]*domain.AdAccount](apiErrors.ErrDatabaseOperation, MsgLoadAdAccountsError)
	}
	if integration == nil {
		return domain.Ok([]*domain.AdAccount{})
	}

	accounts, err := s.adAccountRepo.ListByIntegration(ctx, integration.ID)
	if err != nil {
		logger.WithError(err).Error("Erro ao listar contas de anúncio")
		return domain.Fail[[]*domain.AdAccount](apiErrors.ErrDatabaseOperation, MsgLoadAdAccountsError)
	}

	return domain.Ok(accounts)
}

// SelectAccounts apenas liga o is_active das contas escolhidas pelo usuário
func (s *Service) SelectAccounts(ctx context.Context, userID string, accountIDs []string) domain.Result[[]*domain.AdAccount] {
	return s.setActive(ctx, userID, accountIDs, true)
}

func (s *Service) DeselectAccounts(ctx context.Context, userID string, accountIDs []string) domain.Result[[]*domain.AdAccount] {
	return s.setActive(ctx, userID, accountIDs, false)
}

func (s *Service) setActive(ctx context.Context, userID string, accountIDs []string, active bool) (res domain.Result[[]*domain.AdAccount]) {
	logger := log.ForContext(ctx).WithFields(log.Fields{"user_id": userID, "active": active})

	ids := uniqueIDs(accountIDs)
	if len(ids) == 0 {
		return domain.Fail[[]*domain.AdAccount](apiErrors.ErrMissingRequiredData, MsgNoAccountsSelected)
	}

	release, err := s.guard.TryAcquire(ctx, guard.Key(userID, domain.OperationLoadingSelectAdAccount))
	if err != nil {
		return busy[[]*domain.AdAccount](logger, err)
	}
	defer release()

	defer domain.Recover(&res, apiErrors.ErrInternalServer, s.onPanic(ctx, logger, "account_select"))

	integration, err := s.integrationRepo.GetByUserAndProvider(ctx, userID, domain.ProviderFacebook)
	if err != nil || integration == nil {
		syncErr := NewSyncError(ErrIntegrationNotFound, apiErrors.ErrIntegrationNotFound, "")
		if err != nil {
			logger.WithError(err).Error("Erro ao buscar integração")
			syncErr = NewSyncError(ErrSaveAdAccounts, apiErrors.ErrDatabaseOperation, "")
		}
		return failWith[[]*domain.AdAccount](ctx, syncErr, messageFor(syncErr))
	}

	updated, err := s.adAccountRepo.SetActive(ctx, integration.ID, ids, active)
	if err != nil {
		logger.WithError(err).Error("Erro ao atualizar seleção de contas")
		return failWith[[]*domain.AdAccount](ctx, NewSyncError(ErrMarkAccountsActive, apiErrors.ErrDatabaseOperation, ""), MsgSelectAdAccountsError)
	}

	if active {
		domain.NotifySuccess(ctx, fmt.Sprintf("%d contas de anúncio selecionadas", len(updated)))
	} else {
		domain.NotifySuccess(ctx, fmt.Sprintf("%d contas de anúncio removidas da seleção", len(updated)))
	}

	return domain.Ok(updated)
}

// State devolve integrações, contas e as flags de operação em andamento do usuário
func (s *Service) State(ctx context.Context, userID string) (res domain.Result[*domain.IntegrationState]) {
	logger := log.ForContext(ctx).WithField("user_id", userID)

	defer domain.Recover(&res, apiErrors.ErrInternalServer, s.onPanic(ctx, logger, "state"))

	integrations, err := s.integrationRepo.ListByUser(ctx, userID)
	if err != nil {
		logger.WithError(err).Error("Erro ao listar integrações")
		return domain.Fail[*domain.IntegrationState](apiErrors.ErrDatabaseOperation, MsgLoadAdAccountsError)
	}

	state := &domain.IntegrationState{
		Integrations:              integrations,
		AdAccounts:                []*domain.AdAccount{},
		IsConnectingFacebookAds:   s.guard.IsHeld(ctx, guard.Key(userID, domain.OperationConnecting)),
		IsLoadingIntegration:      s.guard.IsHeld(ctx, guard.Key(userID, domain.OperationLoadingIntegration)),
		IsLoadingSelectAdAccounts: s.guard.IsHeld(ctx, guard.Key(userID, domain.OperationLoadingSelectAdAccount)),
		IsFetchPutAdAccounts:      s.guard.IsHeld(ctx, guard.Key(userID, domain.OperationFetchPutAdAccounts)),
	}

	for _, integration := range integrations {
		if integration.Provider != domain.ProviderFacebook {
			continue
		}

		accounts, err := s.adAccountRepo.ListByIntegration(ctx, integration.ID)
		if err != nil {
			logger.WithError(err).Error("Erro ao listar contas de anúncio")
			return domain.Fail[*domain.IntegrationState](apiErrors.ErrDatabaseOperation, MsgLoadAdAccountsError)
		}
		state.AdAccounts = append(state.AdAccounts, accounts...)
	}

	return domain.Ok(state)
}

func (s *Service) loadConnectedIntegration(ctx context.Context, userID string) (*domain.Integration, *SyncError) {
	integration, err := s.integrationRepo.GetByUserAndProvider(ctx, userID, domain.ProviderFacebook)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao buscar integração")
		return nil, NewSyncError(ErrIntegrationNotFound, apiErrors.ErrDatabaseOperation, "")
	}

	if integration == nil || integration.Status == domain.IntegrationStatusDisconnected {
		return nil, NewSyncError(ErrIntegrationNotFound, apiErrors.ErrIntegrationNotFound, "")
	}

	if !integration.IsConnected() {
		return nil, NewSyncError(ErrTokenExpired, apiErrors.ErrFacebookTokenExpired, "")
	}

	return integration, nil
}

// markExpiredIfRevoked marca a integração como expirada quando a Graph API recusa o token
func (s *Service) markExpiredIfRevoked(ctx context.Context, integration *domain.Integration, err error) bool {
	var graphErr *fbdomain.GraphError
	if !errors.As(err, &graphErr) || !graphErr.IsTokenExpired() {
		return false
	}

	if err := s.integrationRepo.UpdateStatus(ctx, integration.ID, domain.IntegrationStatusExpired); err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao marcar integração como expirada")
	}
	integration.Status = domain.IntegrationStatusExpired

	return true
}

func (s *Service) onPanic(ctx context.Context, logger log.Logger, stage string) func(p any) {
	return func(p any) {
		logger.WithField("panic_error", p).Errorf("Erro inesperado em %s", stage)
		domain.NotifyError(ctx, domain.MsgUnexpectedError)
		metrics.ObserveStage(stage, false)
	}
}

func messageFor(err *SyncError) string {
	switch {
	case errors.Is(err, ErrTokenExpired):
		return MsgIntegrationExpired
	case errors.Is(err, ErrIntegrationNotFound):
		return MsgIntegrationNotFound
	case errors.Is(err, ErrFetchAdAccounts):
		return userMessage(MsgFetchAdAccountsError, "", err.Details)
	case errors.Is(err, ErrSaveAdAccounts):
		return MsgSaveAdAccountsError
	case errors.Is(err, ErrFetchCampaigns):
		return userMessage(MsgFetchCampaignsError, err.AccountID, err.Details)
	case errors.Is(err, ErrSaveCampaigns):
		return userMessage(MsgSaveCampaignsError, err.AccountID, "")
	case errors.Is(err, ErrSaveCampaignAds):
		return userMessage(MsgSaveCampaignAdsError, err.AccountID, "")
	default:
		return domain.MsgUnexpectedError
	}
}

func failWith[T any](ctx context.Context, err *SyncError, message string) domain.Result[T] {
	domain.NotifyError(ctx, message)
	return domain.Fail[T](err.Code, message)
}

func busy[T any](logger log.Logger, err error) domain.Result[T] {
	if errors.Is(err, guard.ErrInProgress) {
		logger.Info("Operação já em andamento, ignorando nova chamada")
		return domain.Fail[T](apiErrors.ErrOperationInProgress, MsgOperationInProgress)
	}

	logger.WithError(err).Error("Erro ao verificar operação em andamento")
	return domain.Fail[T](apiErrors.ErrInternalServer, domain.MsgUnexpectedError)
}

// graphDetails extrai a mensagem estruturada da Graph API, quando houver
func graphDetails(err error) string {
	var graphErr *fbdomain.GraphError
	if errors.As(err, &graphErr) && graphErr.Message() != "" {
		return graphErr.Message()
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return "tempo limite excedido"
	}

	return "falha de comunicação com o Facebook"
}

func uniqueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))

	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}

	return out
}
