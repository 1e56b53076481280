package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ads-integration-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ads-integration-api/internal/domain"
	"go.uber.org/mock/gomock"
)

type fakeRefresher struct {
	calls []string
	fail  map[string]error
}

func (f *fakeRefresher) RefreshToken(_ context.Context, integration *domain.Integration) error {
	f.calls = append(f.calls, integration.ID)
	return f.fail[integration.ID]
}

type fakeAccountSyncer struct {
	calls []string
	fail  map[string]error
}

func (f *fakeAccountSyncer) SyncIntegrationAccounts(_ context.Context, integration *domain.Integration) ([]*domain.AdAccount, error) {
	f.calls = append(f.calls, integration.ID)
	if err := f.fail[integration.ID]; err != nil {
		return nil, err
	}
	return []*domain.AdAccount{{AccountID: "111", IntegrationID: integration.ID}}, nil
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func TestIntegrationSyncService_syncAllIntegrations(t *testing.T) {
	now := time.Date(2024, 1, 16, 4, 0, 0, 0, time.UTC)

	expiringSoon := &domain.Integration{ID: "int-expiring", UserID: "u1", TokenExpiresAt: timePtr(now.Add(48 * time.Hour))}
	longLived := &domain.Integration{ID: "int-valid", UserID: "u2", TokenExpiresAt: timePtr(now.Add(50 * 24 * time.Hour))}
	unknownExpiry := &domain.Integration{ID: "int-unknown", UserID: "u3"}

	tests := []struct {
		name          string
		integrations  []*domain.Integration
		listErr       error
		refreshFail   map[string]error
		syncFail      map[string]error
		wantRefreshed []string
		wantSynced    []string
		wantSummary   SyncSummary
		wantSleeps    int
	}{
		{
			name:          "renova apenas tokens dentro da janela e sincroniza todas",
			integrations:  []*domain.Integration{expiringSoon, longLived, unknownExpiry},
			wantRefreshed: []string{"int-expiring", "int-unknown"},
			wantSynced:    []string{"int-expiring", "int-valid", "int-unknown"},
			wantSummary:   SyncSummary{Integrations: 3, Refreshed: 2, Synced: 3},
			wantSleeps:    2,
		},
		{
			name:          "token revogado não sincroniza a integração",
			integrations:  []*domain.Integration{expiringSoon, longLived},
			refreshFail:   map[string]error{"int-expiring": errors.New("token expirado")},
			wantRefreshed: []string{"int-expiring"},
			wantSynced:    []string{"int-valid"},
			wantSummary:   SyncSummary{Integrations: 2, Synced: 1, Failed: 1},
			wantSleeps:    1,
		},
		{
			name:          "falha na sincronização segue para a próxima",
			integrations:  []*domain.Integration{longLived, expiringSoon},
			syncFail:      map[string]error{"int-valid": errors.New("graph indisponível")},
			wantRefreshed: []string{"int-expiring"},
			wantSynced:    []string{"int-valid", "int-expiring"},
			wantSummary:   SyncSummary{Integrations: 2, Refreshed: 1, Synced: 1, Failed: 1},
			wantSleeps:    1,
		},
		{
			name:        "erro ao listar integrações não processa nada",
			listErr:     errors.New("connection refused"),
			wantSummary: SyncSummary{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockIntegrationRepo := mocks.NewMockIntegrationRepository(ctrl)
			mockIntegrationRepo.EXPECT().
				ListByProviderAndStatus(gomock.Any(), domain.ProviderFacebook, domain.IntegrationStatusConnected).
				Return(tt.integrations, tt.listErr)

			refresher := &fakeRefresher{fail: tt.refreshFail}
			syncer := &fakeAccountSyncer{fail: tt.syncFail}
			sleeps := 0

			service := &IntegrationSyncService{
				config: IntegrationSyncConfig{
					RefreshWindow:       7 * 24 * time.Hour,
					RequestDelaySeconds: 2,
					SyncEnabled:         true,
				},
				integrationRepo: mockIntegrationRepo,
				refresher:       refresher,
				syncer:          syncer,
				now:             func() time.Time { return now },
				sleep:           func(time.Duration) { sleeps++ },
			}

			service.syncAllIntegrations(context.Background())

			assert.Equal(t, tt.wantRefreshed, refresher.calls)
			assert.Equal(t, tt.wantSynced, syncer.calls)
			assert.Equal(t, tt.wantSummary, service.lastSummary)
			assert.Equal(t, tt.wantSleeps, sleeps)
			assert.False(t, service.syncRunning)
		})
	}
}

func TestIntegrationSyncService_skipsWhenRunning(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Nenhuma chamada ao repositório é esperada
	service := &IntegrationSyncService{
		integrationRepo: mocks.NewMockIntegrationRepository(ctrl),
		syncRunning:     true,
		now:             time.Now,
		sleep:           func(time.Duration) {},
	}

	service.syncAllIntegrations(context.Background())
	service.TriggerManualSync()

	assert.True(t, service.syncRunning)
	assert.Equal(t, true, service.GetStatus()["sync_running"])
}

func TestIntegrationSyncService_StartDisabled(t *testing.T) {
	service := &IntegrationSyncService{config: IntegrationSyncConfig{SyncEnabled: false}}

	assert.NoError(t, service.Start(context.Background()))
}
