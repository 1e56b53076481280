package syncing

import (
	"context"

	"github.com/pkg/errors"
	"github.com/vfg2006/ads-integration-api/infrastructure/integrator/facebook"
	"github.com/vfg2006/ads-integration-api/internal/domain"
	"github.com/vfg2006/ads-integration-api/pkg/apiErrors"
	"github.com/vfg2006/ads-integration-api/pkg/guard"
	"github.com/vfg2006/ads-integration-api/pkg/log"
	"github.com/vfg2006/ads-integration-api/pkg/metrics"
)

// SyncSelectedAccounts marca as contas como ativas e sincroniza as campanhas e anúncios de
// cada uma, em sequência e na ordem recebida. Campanhas são sempre gravadas antes dos anúncios.
func (s *Service) SyncSelectedAccounts(ctx context.Context, userID string, accountIDs []string) (res domain.Result[*domain.CampaignSyncReport]) {
	logger := log.ForContext(ctx).WithField("user_id", userID)

	ids := uniqueIDs(accountIDs)
	if len(ids) == 0 {
		return domain.Fail[*domain.CampaignSyncReport](apiErrors.ErrMissingRequiredData, MsgNoAccountsSelected)
	}

	release, err := s.guard.TryAcquire(ctx, guard.Key(userID, domain.OperationFetchPutAdAccounts))
	if err != nil {
		return busy[*domain.CampaignSyncReport](logger, err)
	}
	defer release()

	defer domain.Recover(&res, apiErrors.ErrInternalServer, s.onPanic(ctx, logger, "campaign_sync"))

	integration, syncErr := s.loadConnectedIntegration(ctx, userID)
	if syncErr != nil {
		return failWith[*domain.CampaignSyncReport](ctx, syncErr, messageFor(syncErr))
	}

	// MarkingAccountsActive: uma falha aqui aborta antes de qualquer busca de campanhas
	marked, err := s.adAccountRepo.SetActive(ctx, integration.ID, ids, true)
	if err != nil {
		logger.WithError(err).Error("Erro ao marcar contas como ativas")
		metrics.ObserveStage("mark_active", false)
		return failWith[*domain.CampaignSyncReport](ctx,
			NewSyncError(ErrMarkAccountsActive, apiErrors.ErrDatabaseOperation, ""), MsgSelectAdAccountsError)
	}
	metrics.ObserveStage("mark_active", true)

	accounts := orderByIDs(marked, ids)
	if len(accounts) == 0 {
		return failWith[*domain.CampaignSyncReport](ctx,
			NewSyncError(ErrIntegrationNotFound, apiErrors.ErrInvalidRequest, ""), MsgNoAccountsSelected)
	}
	if len(accounts) < len(ids) {
		logger.WithField("requested", len(ids)).WithField("found", len(accounts)).
			Warn("Algumas contas selecionadas não pertencem à integração do usuário")
	}

	report := &domain.CampaignSyncReport{Accounts: make([]domain.AccountSyncReport, 0, len(accounts))}
	var firstErr *SyncError

	for _, account := range accounts {
		accountReport, err := s.syncAccountCampaigns(ctx, integration, account)
		if err != nil {
			message := messageFor(err)
			accountReport.Error = message
			report.Accounts = append(report.Accounts, accountReport)

			domain.NotifyError(ctx, message)
			if firstErr == nil {
				firstErr = err
			}

			// Token revogado falharia em todas as contas seguintes
			if s.errorPolicy == ErrorPolicyFailFast || errors.Is(err, ErrTokenExpired) {
				break
			}
			continue
		}

		report.Accounts = append(report.Accounts, accountReport)
	}

	if firstErr != nil {
		metrics.ObserveStage("campaign_sync", false)
		message := messageFor(firstErr)
		if s.errorPolicy == ErrorPolicyContinue {
			message = MsgCampaignsPartial
		}
		return domain.FailWithData(report, firstErr.Code, message)
	}

	metrics.ObserveStage("campaign_sync", true)
	domain.NotifySuccess(ctx, MsgCampaignsSynced)

	return domain.Ok(report)
}

// syncAccountCampaigns executa FetchingCampaigns, PersistingCampaigns e PersistingCampaignAds de uma conta
func (s *Service) syncAccountCampaigns(ctx context.Context, integration *domain.Integration, account *domain.AdAccount) (domain.AccountSyncReport, *SyncError) {
	report := domain.AccountSyncReport{AccountID: account.AccountID}
	logger := log.ForContext(ctx).WithFields(log.Fields{
		"account_id":    account.AccountID,
		"ad_account_id": account.ID,
	})

	fetched, err := s.fetcher.GetAllCampaigns(ctx, integration.AccessToken, account.AccountID)
	if err != nil {
		logger.WithError(err).Error("Erro ao buscar campanhas")
		metrics.ObserveStage("campaign_fetch", false)

		if s.markExpiredIfRevoked(ctx, integration, err) {
			return report, NewSyncErrorWithAccount(ErrTokenExpired, apiErrors.ErrFacebookTokenExpired, account.AccountID, "")
		}
		return report, NewSyncErrorWithAccount(ErrFetchCampaigns, apiErrors.ErrFacebookRequest, account.AccountID, graphDetails(err))
	}
	metrics.ObserveStage("campaign_fetch", true)

	rows := make([]*domain.Campaign, 0, len(fetched))
	for _, c := range fetched {
		rows = append(rows, facebook.FactoryCampaign(c, account.ID, s.statusPolicy))
	}

	saved, err := s.campaignRepo.SaveCampaigns(ctx, rows)
	if err != nil {
		logger.WithError(err).Error("Erro ao salvar campanhas")
		return report, NewSyncErrorWithAccount(ErrSaveCampaigns, apiErrors.ErrDatabaseOperation, account.AccountID, "")
	}
	report.Campaigns = len(saved)
	metrics.AddPersistedRows("fb_campaigns", len(saved))

	persisted := make(map[string]*domain.Campaign, len(saved))
	for _, c := range saved {
		persisted[c.CampaignID] = c
	}

	// Anúncios só entram ligados ao id interno de uma campanha gravada neste lote
	ads := make([]*domain.CampaignAd, 0)
	for i := range fetched {
		parent, ok := persisted[fetched[i].ID]
		if !ok {
			logger.WithField("campaign_id", fetched[i].ID).Warn("Campanha não retornada pelo upsert, anúncios ignorados")
			continue
		}

		for _, adID := range fetched[i].AdIDs() {
			ads = append(ads, &domain.CampaignAd{AdID: adID, CampaignID: parent.ID})
		}
	}

	if len(ads) > 0 {
		savedAds, err := s.campaignRepo.SaveCampaignAds(ctx, ads)
		if err != nil {
			logger.WithError(err).Error("Erro ao salvar anúncios das campanhas")
			return report, NewSyncErrorWithAccount(ErrSaveCampaignAds, apiErrors.ErrDatabaseOperation, account.AccountID, "")
		}
		report.Ads = len(savedAds)
		metrics.AddPersistedRows("fb_campaign_ads", len(savedAds))
	}

	logger.WithFields(log.Fields{
		"campaigns": report.Campaigns,
		"ads":       report.Ads,
	}).Info("Campanhas da conta sincronizadas")

	return report, nil
}

// orderByIDs devolve as contas na ordem em que foram selecionadas
func orderByIDs(accounts []*domain.AdAccount, ids []string) []*domain.AdAccount {
	byAccountID := make(map[string]*domain.AdAccount, len(accounts))
	for _, account := range accounts {
		byAccountID[account.AccountID] = account
	}

	ordered := make([]*domain.AdAccount, 0, len(ids))
	for _, id := range ids {
		if account, ok := byAccountID[id]; ok {
			ordered = append(ordered, account)
		}
	}

	return ordered
}
