package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-integration-api/internal/domain"
)

func TestBuildAdAccountsUpsert(t *testing.T) {
	accounts := []*domain.AdAccount{
		{AccountID: "111", Name: "Conta 1", AmountSpent: 100, IntegrationID: "int-1"},
		{AccountID: "222", Name: "Conta 2", AmountSpent: 200, IntegrationID: "int-1"},
	}

	query, args, err := buildAdAccountsUpsert(accounts)
	require.NoError(t, err)

	assert.Contains(t, query, "INSERT INTO fb_ad_accounts")
	assert.Contains(t, query, "ON CONFLICT (account_id) DO UPDATE SET")
	assert.Contains(t, query, "RETURNING id, account_id")
	assert.NotContains(t, query, "is_active = EXCLUDED.is_active")
	assert.Contains(t, query, "$20")
	assert.Len(t, args, 20)
	assert.Equal(t, "111", args[0])
	assert.Equal(t, "222", args[10])
}

func TestBuildSetActive(t *testing.T) {
	query, args, err := buildSetActive("int-1", []string{"111", "222"}, true)
	require.NoError(t, err)

	assert.Contains(t, query, "UPDATE fb_ad_accounts SET is_active = $1")
	assert.Contains(t, query, "account_id IN ($")
	assert.Contains(t, query, "integration_id = $")
	assert.Contains(t, query, "RETURNING id, account_id")
	assert.Equal(t, true, args[0])
	assert.Len(t, args, 4)
}

func TestBuildCampaignsUpsert(t *testing.T) {
	budget := int64(5000)
	start := time.Date(2024, 1, 15, 13, 0, 0, 0, time.UTC)

	query, args, err := buildCampaignsUpsert([]*domain.Campaign{
		{CampaignID: "c-1", AdAccountID: "acc-uuid", Name: "Campanha", Status: true, DailyBudget: &budget, StartTime: &start},
	})
	require.NoError(t, err)

	assert.Contains(t, query, "INSERT INTO fb_campaigns (campaign_id,fb_ad_account_id,")
	assert.Contains(t, query, "ON CONFLICT (campaign_id) DO UPDATE SET")
	assert.Contains(t, query, "RETURNING id, campaign_id")
	assert.Len(t, args, len(campaignColumns)-1)
	assert.Equal(t, "c-1", args[0])
	assert.Equal(t, "acc-uuid", args[1])
}

func TestBuildCampaignAdsUpsert(t *testing.T) {
	query, args, err := buildCampaignAdsUpsert([]*domain.CampaignAd{
		{AdID: "ad-1", CampaignID: "camp-uuid-1"},
		{AdID: "ad-2", CampaignID: "camp-uuid-1"},
	})
	require.NoError(t, err)

	assert.Contains(t, query, "INSERT INTO fb_campaign_ads (ad_id,campaign_id) VALUES ($1,$2),($3,$4)")
	assert.Contains(t, query, "ON CONFLICT (ad_id) DO UPDATE SET")
	assert.Equal(t, []any{"ad-1", "camp-uuid-1", "ad-2", "camp-uuid-1"}, args)
}

func TestBuildIntegrationUpsert(t *testing.T) {
	expires := time.Now().Add(60 * 24 * time.Hour)

	query, args, err := buildIntegrationUpsert(&domain.Integration{
		UserID:            "user-1",
		Provider:          domain.ProviderFacebook,
		ProviderAccountID: "fb-user",
		AccessToken:       "plain",
		TokenExpiresAt:    &expires,
		Status:            domain.IntegrationStatusConnected,
	}, "cipher")
	require.NoError(t, err)

	assert.Contains(t, query, "ON CONFLICT (user_id, provider) DO UPDATE SET")
	assert.Contains(t, query, "NOW()")
	assert.Equal(t, "cipher", args[3])
	assert.NotContains(t, args, "plain")
}

func TestDedupeBy(t *testing.T) {
	accounts := []*domain.AdAccount{
		{AccountID: "111", AmountSpent: 1},
		{AccountID: "222", AmountSpent: 2},
		{AccountID: "111", AmountSpent: 3},
	}

	out := dedupeBy(accounts, func(a *domain.AdAccount) string { return a.AccountID })

	require.Len(t, out, 2)
	assert.Equal(t, "111", out[0].AccountID)
	assert.Equal(t, int64(3), out[0].AmountSpent)
	assert.Equal(t, "222", out[1].AccountID)
}
