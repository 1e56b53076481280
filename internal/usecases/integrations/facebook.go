package integrations

import (
	"context"

	"github.com/vfg2006/ads-integration-api/internal/domain"
	"github.com/vfg2006/ads-integration-api/internal/usecases/connecting"
)

type connector interface {
	Connect(ctx context.Context, userID string, in connecting.LoginInput) domain.Result[*domain.Integration]
}

type accountSyncer interface {
	SyncAccounts(ctx context.Context, userID string) domain.Result[[]*domain.AdAccount]
}

// FacebookHandler conecta a conta e em seguida carrega as contas de anúncio.
// Uma falha no carregamento não desfaz a conexão: as contas ficam vazias e a
// mensagem de erro segue nas notificações.
type FacebookHandler struct {
	connector connector
	syncer    accountSyncer
}

func NewFacebookHandler(connector connector, syncer accountSyncer) *FacebookHandler {
	return &FacebookHandler{
		connector: connector,
		syncer:    syncer,
	}
}

func (h *FacebookHandler) Connect(ctx context.Context, userID string, in connecting.LoginInput) domain.Result[*ConnectData] {
	connected := h.connector.Connect(ctx, userID, in)
	if !connected.Success {
		return domain.Fail[*ConnectData](connected.Code, connected.Message)
	}

	data := &ConnectData{
		Integration: connected.Data,
		AdAccounts:  []*domain.AdAccount{},
	}

	synced := h.syncer.SyncAccounts(ctx, userID)
	if !synced.Success {
		return domain.OkWithMessage(data, synced.Message)
	}

	data.AdAccounts = synced.Data

	return domain.OkWithMessage(data, connecting.MsgConnected)
}

func (h *FacebookHandler) Sync(ctx context.Context, userID string) domain.Result[[]*domain.AdAccount] {
	return h.syncer.SyncAccounts(ctx, userID)
}
