package integrations

import (
	"context"
	"fmt"
	"strings"

	"github.com/vfg2006/ads-integration-api/internal/domain"
	"github.com/vfg2006/ads-integration-api/internal/usecases/connecting"
	"github.com/vfg2006/ads-integration-api/pkg/apiErrors"
	"github.com/vfg2006/ads-integration-api/pkg/log"
)

// ConnectData é o retorno da conexão: a integração gravada e as contas carregadas em seguida
type ConnectData struct {
	Integration *domain.Integration `json:"integration"`
	AdAccounts  []*domain.AdAccount `json:"adAccounts"`
}

// ProviderHandler implementa conexão e sincronização de uma plataforma de anúncios
type ProviderHandler interface {
	Connect(ctx context.Context, userID string, in connecting.LoginInput) domain.Result[*ConnectData]
	Sync(ctx context.Context, userID string) domain.Result[[]*domain.AdAccount]
}

type Dispatcher struct {
	handlers    map[domain.Provider]ProviderHandler
	unsupported map[domain.Provider]struct{}
}

func NewDispatcher(facebook ProviderHandler) *Dispatcher {
	return &Dispatcher{
		handlers: map[domain.Provider]ProviderHandler{
			domain.ProviderFacebook: facebook,
		},
		unsupported: map[domain.Provider]struct{}{
			domain.ProviderGoogle:    {},
			domain.ProviderTikTok:    {},
			domain.ProviderLinkedIn:  {},
			domain.ProviderInstagram: {},
		},
	}
}

func (d *Dispatcher) Connect(ctx context.Context, provider, userID string, in connecting.LoginInput) domain.Result[*ConnectData] {
	handler, res, ok := lookup[*ConnectData](ctx, d, provider)
	if !ok {
		return res
	}

	return handler.Connect(ctx, userID, in)
}

func (d *Dispatcher) Sync(ctx context.Context, provider, userID string) domain.Result[[]*domain.AdAccount] {
	handler, res, ok := lookup[[]*domain.AdAccount](ctx, d, provider)
	if !ok {
		return res
	}

	return handler.Sync(ctx, userID)
}

// Supported valida o id do provedor. Rotas específicas de um provedor usam a mesma
// resposta de não suportado ou desconhecido do Connect.
func (d *Dispatcher) Supported(ctx context.Context, provider string) domain.Result[domain.Provider] {
	_, res, ok := lookup[domain.Provider](ctx, d, provider)
	if !ok {
		return res
	}

	return domain.Ok(normalize(provider))
}

func normalize(provider string) domain.Provider {
	return domain.Provider(strings.ToLower(strings.TrimSpace(provider)))
}

// lookup resolve o handler do provedor; ids são comparados em minúsculas
func lookup[T any](ctx context.Context, d *Dispatcher, provider string) (ProviderHandler, domain.Result[T], bool) {
	id := normalize(provider)

	if handler, ok := d.handlers[id]; ok {
		return handler, domain.Result[T]{}, true
	}

	logger := log.ForContext(ctx).WithField("provider", id)

	var res domain.Result[T]
	if _, ok := d.unsupported[id]; ok {
		logger.Info("Integração ainda não suportada")
		res = domain.Fail[T](apiErrors.ErrIntegrationNotSupported, fmt.Sprintf("Integração %s ainda não suportada", id))
	} else {
		logger.Warn("Integração desconhecida")
		res = domain.Fail[T](apiErrors.ErrInvalidRequest, fmt.Sprintf("Integração desconhecida: %s", id))
	}

	domain.NotifyError(ctx, res.Message)

	return nil, res, false
}
