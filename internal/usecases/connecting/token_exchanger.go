package connecting

import (
	"context"

	fbdomain "github.com/vfg2006/ads-integration-api/infrastructure/integrator/facebook/domain"
	"github.com/vfg2006/ads-integration-api/infrastructure/integrator/facebook/fbclient"
	"github.com/vfg2006/ads-integration-api/internal/domain"
	"github.com/vfg2006/ads-integration-api/pkg/apiErrors"
	"github.com/vfg2006/ads-integration-api/pkg/log"
)

type TokenData = fbdomain.TokenResponse

// TokenExchanger troca o token de curta duração por um de longa duração. Não há retry.
type TokenExchanger struct {
	client fbclient.Client
}

func NewTokenExchanger(client fbclient.Client) *TokenExchanger {
	return &TokenExchanger{client: client}
}

func (t *TokenExchanger) ExchangeForLongLivedToken(ctx context.Context, shortLivedToken string) domain.Result[*TokenData] {
	if shortLivedToken == "" {
		return domain.Fail[*TokenData](apiErrors.ErrMissingRequiredData, MsgTokenExchangeFailed)
	}

	token, err := t.client.GetLongLivedToken(ctx, shortLivedToken)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao obter token de longa duração")
		return domain.Fail[*TokenData](apiErrors.ErrFacebookTokenExchange, graphMessage(err, MsgTokenExchangeFailed))
	}

	return domain.Ok(token)
}
