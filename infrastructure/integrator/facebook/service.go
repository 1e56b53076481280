package facebook

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	fbdomain "github.com/vfg2006/ads-integration-api/infrastructure/integrator/facebook/domain"
	"github.com/vfg2006/ads-integration-api/infrastructure/integrator/facebook/fbclient"
	"github.com/vfg2006/ads-integration-api/internal/config"
	"github.com/vfg2006/ads-integration-api/internal/domain"
)

// graphTimeLayout é o formato de data usado pela Graph API (ex.: 2024-01-15T10:00:00-0300)
const graphTimeLayout = "2006-01-02T15:04:05-0700"

type StatusPolicy string

const (
	// StatusPolicyProvider grava status=true apenas quando a campanha está ACTIVE no Facebook
	StatusPolicyProvider StatusPolicy = "provider"
	// StatusPolicyForceActive grava status=true para toda campanha sincronizada
	StatusPolicyForceActive StatusPolicy = "force_active"
)

func ParseStatusPolicy(s string) StatusPolicy {
	if StatusPolicy(strings.ToLower(strings.TrimSpace(s))) == StatusPolicyForceActive {
		return StatusPolicyForceActive
	}

	return StatusPolicyProvider
}

type FacebookIntegrator struct {
	cfg    *config.Config
	Client fbclient.Client
}

func New(cfg *config.Config, client fbclient.Client) *FacebookIntegrator {
	return &FacebookIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

func (s *FacebookIntegrator) maxPages() int {
	if s.cfg == nil || s.cfg.Facebook.MaxPages <= 0 {
		return 50
	}

	return s.cfg.Facebook.MaxPages
}

// GetAllAdAccounts percorre todas as páginas de /me/adaccounts até não haver próximo cursor
func (s *FacebookIntegrator) GetAllAdAccounts(ctx context.Context, accessToken string) ([]fbdomain.AdAccount, error) {
	accounts := make([]fbdomain.AdAccount, 0)

	after := ""
	for page := 1; page <= s.maxPages(); page++ {
		resp, err := s.Client.MeAdAccounts(ctx, accessToken, after)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"page":  page,
				"error": err.Error(),
			}).Error("facebook: failed to get ad accounts page")
			return nil, err
		}

		accounts = append(accounts, resp.Data...)

		after = resp.Paging.NextCursor()
		if after == "" {
			break
		}

		if page == s.maxPages() {
			logrus.WithField("max_pages", s.maxPages()).Warn("facebook: ad accounts page limit reached, remaining pages ignored")
		}
	}

	logrus.WithField("total_accounts", len(accounts)).Debug("facebook: ad accounts retrieved")

	return accounts, nil
}

// GetAllCampaigns percorre todas as páginas de campanhas da conta
func (s *FacebookIntegrator) GetAllCampaigns(ctx context.Context, accessToken, accountID string) ([]fbdomain.Campaign, error) {
	campaigns := make([]fbdomain.Campaign, 0)

	after := ""
	for page := 1; page <= s.maxPages(); page++ {
		resp, err := s.Client.GetCampaignsByAccountID(ctx, accessToken, accountID, after)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"account_id": accountID,
				"page":       page,
				"error":      err.Error(),
			}).Error("facebook: failed to get campaigns page")
			return nil, err
		}

		campaigns = append(campaigns, resp.Data...)

		after = resp.Paging.NextCursor()
		if after == "" {
			break
		}
	}

	logrus.WithFields(logrus.Fields{
		"account_id":      accountID,
		"total_campaigns": len(campaigns),
	}).Debug("facebook: campaigns retrieved")

	return campaigns, nil
}

// FactoryAdAccount converte a conta da Graph API na linha persistida.
// Sem business associado, nome e id do business assumem os da própria conta.
func FactoryAdAccount(a fbdomain.AdAccount, integrationID string, now time.Time) *domain.AdAccount {
	accountID := a.AccountID
	if accountID == "" {
		accountID = strings.TrimPrefix(a.ID, "act_")
	}

	businessName := a.Name
	businessID := accountID
	if a.Business != nil && a.Business.ID != "" {
		businessName = a.Business.Name
		businessID = a.Business.ID
	}

	return &domain.AdAccount{
		AccountID:     accountID,
		Name:          a.Name,
		AccountStatus: a.AccountStatus,
		AmountSpent:   parseInt(a.AmountSpent),
		Currency:      a.Currency,
		TimezoneName:  a.TimezoneName,
		BusinessName:  businessName,
		BusinessID:    businessID,
		IntegrationID: integrationID,
		UpdatedAt:     now,
	}
}

// FactoryCampaign converte a campanha da Graph API na linha persistida, ligada à conta pelo id interno
func FactoryCampaign(c fbdomain.Campaign, adAccountID string, policy StatusPolicy) *domain.Campaign {
	return &domain.Campaign{
		CampaignID:      c.ID,
		AdAccountID:     adAccountID,
		Name:            c.Name,
		Objective:       c.Objective,
		Status:          MapCampaignStatus(c, policy),
		EffectiveStatus: c.EffectiveStatus,
		BuyingType:      c.BuyingType,
		DailyBudget:     parseOptionalInt(c.DailyBudget),
		LifetimeBudget:  parseOptionalInt(c.LifetimeBudget),
		BudgetRemaining: parseOptionalInt(c.BudgetRemaining),
		StartTime:       ParseGraphTime(c.StartTime),
		CreatedTime:     ParseGraphTime(c.CreatedTime),
		UpdatedTime:     ParseGraphTime(c.UpdatedTime),
	}
}

func MapCampaignStatus(c fbdomain.Campaign, policy StatusPolicy) bool {
	if policy == StatusPolicyForceActive {
		return true
	}

	status := c.EffectiveStatus
	if status == "" {
		status = c.Status
	}

	return status == "ACTIVE"
}

func ParseGraphTime(value string) *time.Time {
	if value == "" {
		return nil
	}

	for _, layout := range []string{graphTimeLayout, time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return &t
		}
	}

	logrus.WithField("value", value).Warn("facebook: invalid graph time")
	return nil
}

// parseInt converte valores monetários da Graph API (strings) em inteiro; inválido vira 0
func parseInt(value string) int64 {
	if value == "" {
		return 0
	}

	if n, err := strconv.ParseInt(value, 10, 64); err == nil {
		return n
	}

	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"value": value,
			"error": err.Error(),
		}).Warn("facebook: error converting value to integer")
		return 0
	}

	return int64(f)
}

func parseOptionalInt(value string) *int64 {
	if value == "" {
		return nil
	}

	n := parseInt(value)
	return &n
}
