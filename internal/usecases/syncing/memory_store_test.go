package syncing

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/vfg2006/ads-integration-api/internal/domain"
)

// memoryStore implementa os três repositórios com as mesmas chaves de upsert do Postgres
type memoryStore struct {
	mu           sync.Mutex
	integrations map[string]*domain.Integration
	adAccounts   map[string]*domain.AdAccount  // por account_id
	campaigns    map[string]*domain.Campaign   // por campaign_id
	campaignAds  map[string]*domain.CampaignAd // por ad_id

	failSetActive     error
	failSaveAccounts  error
	failSaveCampaigns map[string]error // por id interno da conta
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		integrations:      make(map[string]*domain.Integration),
		adAccounts:        make(map[string]*domain.AdAccount),
		campaigns:         make(map[string]*domain.Campaign),
		campaignAds:       make(map[string]*domain.CampaignAd),
		failSaveCampaigns: make(map[string]error),
	}
}

func (m *memoryStore) GetByUserAndProvider(_ context.Context, userID string, provider domain.Provider) (*domain.Integration, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, i := range m.integrations {
		if i.UserID == userID && i.Provider == provider {
			cp := *i
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memoryStore) ListByUser(_ context.Context, userID string) ([]*domain.Integration, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]*domain.Integration, 0)
	for _, i := range m.integrations {
		if i.UserID == userID {
			cp := *i
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *memoryStore) ListByProviderAndStatus(_ context.Context, provider domain.Provider, status domain.IntegrationStatus) ([]*domain.Integration, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]*domain.Integration, 0)
	for _, i := range m.integrations {
		if i.Provider == provider && i.Status == status {
			cp := *i
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *memoryStore) Upsert(_ context.Context, integration *domain.Integration) (*domain.Integration, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.integrations {
		if existing.UserID == integration.UserID && existing.Provider == integration.Provider {
			integration.ID = existing.ID
		}
	}
	if integration.ID == "" {
		integration.ID = uuid.NewString()
	}

	cp := *integration
	m.integrations[cp.ID] = &cp
	return integration, nil
}

func (m *memoryStore) UpdateToken(_ context.Context, id, accessToken string, expiresAt *time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.integrations[id].AccessToken = accessToken
	m.integrations[id].TokenExpiresAt = expiresAt
	m.integrations[id].Status = domain.IntegrationStatusConnected
	return nil
}

func (m *memoryStore) UpdateStatus(_ context.Context, id string, status domain.IntegrationStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.integrations[id].Status = status
	return nil
}

func (m *memoryStore) Disconnect(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.integrations[id].Status = domain.IntegrationStatusDisconnected
	m.integrations[id].AccessToken = ""
	return nil
}

func (m *memoryStore) TouchLastSync(_ context.Context, id string, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.integrations[id].LastSyncAt = &at
	return nil
}

func (m *memoryStore) SaveFacebookAdAccounts(_ context.Context, accounts []*domain.AdAccount) ([]*domain.AdAccount, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failSaveAccounts != nil {
		return nil, m.failSaveAccounts
	}

	out := make([]*domain.AdAccount, 0, len(accounts))
	for _, a := range accounts {
		row := *a
		if existing, ok := m.adAccounts[a.AccountID]; ok {
			row.ID = existing.ID
			row.IsActive = existing.IsActive
		} else {
			row.ID = uuid.NewString()
			row.IsActive = false
		}
		m.adAccounts[row.AccountID] = &row

		cp := row
		out = append(out, &cp)
	}
	return out, nil
}

func (m *memoryStore) ListByIntegration(_ context.Context, integrationID string) ([]*domain.AdAccount, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]*domain.AdAccount, 0)
	for _, a := range m.adAccounts {
		if a.IntegrationID == integrationID {
			cp := *a
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *memoryStore) SetActive(_ context.Context, integrationID string, accountIDs []string, active bool) ([]*domain.AdAccount, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failSetActive != nil {
		return nil, m.failSetActive
	}

	out := make([]*domain.AdAccount, 0)
	// ordem invertida de propósito: o Postgres não garante a ordem do RETURNING
	for i := len(accountIDs) - 1; i >= 0; i-- {
		a, ok := m.adAccounts[accountIDs[i]]
		if !ok || a.IntegrationID != integrationID {
			continue
		}
		a.IsActive = active
		cp := *a
		out = append(out, &cp)
	}
	return out, nil
}

func (m *memoryStore) SaveCampaigns(_ context.Context, campaigns []*domain.Campaign) ([]*domain.Campaign, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]*domain.Campaign, 0, len(campaigns))
	for _, c := range campaigns {
		if err := m.failSaveCampaigns[c.AdAccountID]; err != nil {
			return nil, err
		}

		row := *c
		if existing, ok := m.campaigns[c.CampaignID]; ok {
			row.ID = existing.ID
		} else {
			row.ID = uuid.NewString()
		}
		m.campaigns[row.CampaignID] = &row

		cp := row
		out = append(out, &cp)
	}
	return out, nil
}

func (m *memoryStore) SaveCampaignAds(_ context.Context, ads []*domain.CampaignAd) ([]*domain.CampaignAd, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]*domain.CampaignAd, 0, len(ads))
	for _, ad := range ads {
		if !m.hasCampaignID(ad.CampaignID) {
			return nil, errors.New("violates foreign key constraint fb_campaign_ads_campaign_id_fkey")
		}

		row := *ad
		if existing, ok := m.campaignAds[ad.AdID]; ok {
			row.ID = existing.ID
		} else {
			row.ID = uuid.NewString()
		}
		m.campaignAds[row.AdID] = &row

		cp := row
		out = append(out, &cp)
	}
	return out, nil
}

func (m *memoryStore) ListByAdAccount(_ context.Context, adAccountID string) ([]*domain.Campaign, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]*domain.Campaign, 0)
	for _, c := range m.campaigns {
		if c.AdAccountID == adAccountID {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *memoryStore) hasCampaignID(id string) bool {
	for _, c := range m.campaigns {
		if c.ID == id {
			return true
		}
	}
	return false
}

func (m *memoryStore) campaignsOf(accountID string) []*domain.Campaign {
	m.mu.Lock()
	account, ok := m.adAccounts[accountID]
	m.mu.Unlock()
	if !ok {
		return nil
	}

	campaigns, _ := m.ListByAdAccount(context.Background(), account.ID)
	return campaigns
}

func (m *memoryStore) counts() (integrations, accounts, campaigns, ads int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.integrations), len(m.adAccounts), len(m.campaigns), len(m.campaignAds)
}
