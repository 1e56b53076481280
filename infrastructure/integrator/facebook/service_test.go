package facebook

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	fbdomain "github.com/vfg2006/ads-integration-api/infrastructure/integrator/facebook/domain"
	"github.com/vfg2006/ads-integration-api/infrastructure/integrator/facebook/mocks"
	"github.com/vfg2006/ads-integration-api/internal/config"
	"go.uber.org/mock/gomock"
)

func TestGetAllAdAccounts_DrainsPagination(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)
	integrator := New(&config.Config{Facebook: config.Facebook{MaxPages: 10}}, client)

	gomock.InOrder(
		client.EXPECT().MeAdAccounts(gomock.Any(), "token", "").Return(&fbdomain.AdAccountsPage{
			Data:   []fbdomain.AdAccount{{ID: "act_1"}, {ID: "act_2"}},
			Paging: fbdomain.Paging{Cursors: fbdomain.Cursors{After: "c1"}, Next: "https://next"},
		}, nil),
		client.EXPECT().MeAdAccounts(gomock.Any(), "token", "c1").Return(&fbdomain.AdAccountsPage{
			Data:   []fbdomain.AdAccount{{ID: "act_3"}},
			Paging: fbdomain.Paging{Cursors: fbdomain.Cursors{After: "c2"}},
		}, nil),
	)

	accounts, err := integrator.GetAllAdAccounts(context.Background(), "token")
	require.NoError(t, err)
	assert.Len(t, accounts, 3)
}

func TestGetAllAdAccounts_RespectsPageLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)
	integrator := New(&config.Config{Facebook: config.Facebook{MaxPages: 2}}, client)

	client.EXPECT().MeAdAccounts(gomock.Any(), "token", gomock.Any()).Return(&fbdomain.AdAccountsPage{
		Data:   []fbdomain.AdAccount{{ID: "act_1"}},
		Paging: fbdomain.Paging{Cursors: fbdomain.Cursors{After: "again"}, Next: "https://next"},
	}, nil).Times(2)

	accounts, err := integrator.GetAllAdAccounts(context.Background(), "token")
	require.NoError(t, err)
	assert.Len(t, accounts, 2)
}

func TestGetAllCampaigns_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)
	integrator := New(&config.Config{}, client)

	client.EXPECT().GetCampaignsByAccountID(gomock.Any(), "token", "111", "").Return(nil, errors.New("network"))

	campaigns, err := integrator.GetAllCampaigns(context.Background(), "token", "111")
	assert.Error(t, err)
	assert.Nil(t, campaigns)
}

func TestFactoryAdAccount(t *testing.T) {
	now := time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC)

	t.Run("sem business usa nome e id da própria conta", func(t *testing.T) {
		acc := FactoryAdAccount(fbdomain.AdAccount{
			ID:          "act_111",
			Name:        "Loja A",
			AmountSpent: "1520",
		}, "integ-1", now)

		assert.Equal(t, "111", acc.AccountID)
		assert.Equal(t, "Loja A", acc.BusinessName)
		assert.Equal(t, "111", acc.BusinessID)
		assert.Equal(t, int64(1520), acc.AmountSpent)
		assert.Equal(t, "integ-1", acc.IntegrationID)
		assert.False(t, acc.IsActive)
	})

	t.Run("com business e valor inválido", func(t *testing.T) {
		acc := FactoryAdAccount(fbdomain.AdAccount{
			ID:          "act_222",
			AccountID:   "222",
			Name:        "Loja B",
			AmountSpent: "abc",
			Business:    &fbdomain.Business{ID: "b1", Name: "Grupo"},
		}, "integ-1", now)

		assert.Equal(t, "Grupo", acc.BusinessName)
		assert.Equal(t, "b1", acc.BusinessID)
		assert.Equal(t, int64(0), acc.AmountSpent)
	})
}

func TestFactoryCampaign(t *testing.T) {
	c := fbdomain.Campaign{
		ID:              "c1",
		Name:            "Campanha",
		Objective:       "OUTCOME_TRAFFIC",
		Status:          "ACTIVE",
		EffectiveStatus: "PAUSED",
		DailyBudget:     "5000",
		StartTime:       "2024-01-15T10:00:00-0300",
	}

	row := FactoryCampaign(c, "acc-internal", StatusPolicyProvider)
	assert.Equal(t, "acc-internal", row.AdAccountID)
	assert.False(t, row.Status)
	assert.Equal(t, "PAUSED", row.EffectiveStatus)
	require.NotNil(t, row.DailyBudget)
	assert.Equal(t, int64(5000), *row.DailyBudget)
	assert.Nil(t, row.LifetimeBudget)
	require.NotNil(t, row.StartTime)
	assert.Equal(t, 13, row.StartTime.UTC().Hour())

	forced := FactoryCampaign(c, "acc-internal", StatusPolicyForceActive)
	assert.True(t, forced.Status)
}

func TestParseStatusPolicy(t *testing.T) {
	assert.Equal(t, StatusPolicyForceActive, ParseStatusPolicy(" FORCE_ACTIVE "))
	assert.Equal(t, StatusPolicyProvider, ParseStatusPolicy("provider"))
	assert.Equal(t, StatusPolicyProvider, ParseStatusPolicy(""))
}
