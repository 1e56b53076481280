package integrations

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-integration-api/internal/domain"
	"github.com/vfg2006/ads-integration-api/internal/usecases/connecting"
	"github.com/vfg2006/ads-integration-api/pkg/apiErrors"
)

type fakeConnector struct {
	res   domain.Result[*domain.Integration]
	calls int
}

func (f *fakeConnector) Connect(_ context.Context, _ string, _ connecting.LoginInput) domain.Result[*domain.Integration] {
	f.calls++
	return f.res
}

type fakeSyncer struct {
	res   domain.Result[[]*domain.AdAccount]
	calls int
}

func (f *fakeSyncer) SyncAccounts(_ context.Context, _ string) domain.Result[[]*domain.AdAccount] {
	f.calls++
	return f.res
}

func connectedIntegration() domain.Result[*domain.Integration] {
	return domain.Ok(&domain.Integration{ID: "integration-1", Provider: domain.ProviderFacebook, Status: domain.IntegrationStatusConnected})
}

func TestDispatcher_Connect(t *testing.T) {
	accounts := []*domain.AdAccount{{AccountID: "111"}, {AccountID: "222"}}

	tests := []struct {
		name          string
		provider      string
		connectRes    domain.Result[*domain.Integration]
		syncRes       domain.Result[[]*domain.AdAccount]
		wantSuccess   bool
		wantMessage   string
		wantCode      string
		wantAccounts  int
		wantConnect   int
		wantSyncCalls int
	}{
		{
			name:          "facebook conecta e carrega contas",
			provider:      "facebook",
			connectRes:    connectedIntegration(),
			syncRes:       domain.Ok(accounts),
			wantSuccess:   true,
			wantMessage:   connecting.MsgConnected,
			wantAccounts:  2,
			wantConnect:   1,
			wantSyncCalls: 1,
		},
		{
			name:          "id em maiúsculas é normalizado",
			provider:      " FaceBook ",
			connectRes:    connectedIntegration(),
			syncRes:       domain.Ok(accounts),
			wantSuccess:   true,
			wantMessage:   connecting.MsgConnected,
			wantAccounts:  2,
			wantConnect:   1,
			wantSyncCalls: 1,
		},
		{
			name:          "falha na conexão não sincroniza contas",
			provider:      "facebook",
			connectRes:    domain.Fail[*domain.Integration](apiErrors.ErrFacebookTokenExchange, connecting.MsgTokenExchangeFailed),
			wantSuccess:   false,
			wantMessage:   connecting.MsgTokenExchangeFailed,
			wantCode:      apiErrors.ErrFacebookTokenExchange,
			wantConnect:   1,
			wantSyncCalls: 0,
		},
		{
			name:          "falha no carregamento mantém a conexão",
			provider:      "facebook",
			connectRes:    connectedIntegration(),
			syncRes:       domain.Fail[[]*domain.AdAccount](apiErrors.ErrFacebookRequest, "Erro ao buscar contas de anúncio"),
			wantSuccess:   true,
			wantMessage:   "Erro ao buscar contas de anúncio",
			wantAccounts:  0,
			wantConnect:   1,
			wantSyncCalls: 1,
		},
		{
			name:        "google ainda não suportado",
			provider:    "google",
			wantMessage: "Integração google ainda não suportada",
			wantCode:    apiErrors.ErrIntegrationNotSupported,
		},
		{
			name:        "tiktok ainda não suportado",
			provider:    "TikTok",
			wantMessage: "Integração tiktok ainda não suportada",
			wantCode:    apiErrors.ErrIntegrationNotSupported,
		},
		{
			name:        "linkedin ainda não suportado",
			provider:    "linkedin",
			wantMessage: "Integração linkedin ainda não suportada",
			wantCode:    apiErrors.ErrIntegrationNotSupported,
		},
		{
			name:        "instagram ainda não suportado",
			provider:    "instagram",
			wantMessage: "Integração instagram ainda não suportada",
			wantCode:    apiErrors.ErrIntegrationNotSupported,
		},
		{
			name:        "provedor desconhecido",
			provider:    "myspace",
			wantMessage: "Integração desconhecida: myspace",
			wantCode:    apiErrors.ErrInvalidRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn := &fakeConnector{res: tt.connectRes}
			syncer := &fakeSyncer{res: tt.syncRes}
			dispatcher := NewDispatcher(NewFacebookHandler(conn, syncer))

			res := dispatcher.Connect(context.Background(), tt.provider, "user-1", connecting.LoginInput{Code: "code"})

			assert.Equal(t, tt.wantSuccess, res.Success)
			assert.Equal(t, tt.wantMessage, res.Message)
			assert.Equal(t, tt.wantCode, res.Code)
			assert.Equal(t, tt.wantConnect, conn.calls)
			assert.Equal(t, tt.wantSyncCalls, syncer.calls)

			if tt.wantSuccess {
				require.NotNil(t, res.Data)
				assert.NotNil(t, res.Data.Integration)
				assert.Len(t, res.Data.AdAccounts, tt.wantAccounts)
			}
		})
	}
}

func TestDispatcher_Sync(t *testing.T) {
	syncer := &fakeSyncer{res: domain.Ok([]*domain.AdAccount{{AccountID: "111"}})}
	dispatcher := NewDispatcher(NewFacebookHandler(&fakeConnector{}, syncer))

	res := dispatcher.Sync(context.Background(), "facebook", "user-1")
	require.True(t, res.Success)
	assert.Len(t, res.Data, 1)

	ctx, notifications := domain.WithNotifications(context.Background())
	res = dispatcher.Sync(ctx, "google", "user-1")
	assert.False(t, res.Success)
	assert.Equal(t, apiErrors.ErrIntegrationNotSupported, res.Code)
	assert.Equal(t, 1, syncer.calls)
	assert.Equal(t, []domain.Notification{{Level: domain.NotificationError, Message: "Integração google ainda não suportada"}}, notifications.List())
}

func TestDispatcher_Supported(t *testing.T) {
	dispatcher := NewDispatcher(NewFacebookHandler(&fakeConnector{}, &fakeSyncer{}))

	res := dispatcher.Supported(context.Background(), "Facebook")
	require.True(t, res.Success)
	assert.Equal(t, domain.ProviderFacebook, res.Data)

	res = dispatcher.Supported(context.Background(), "linkedin")
	assert.False(t, res.Success)
	assert.Equal(t, "Integração linkedin ainda não suportada", res.Message)

	res = dispatcher.Supported(context.Background(), "orkut")
	assert.Equal(t, "Integração desconhecida: orkut", res.Message)
}
