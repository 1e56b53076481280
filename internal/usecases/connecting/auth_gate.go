package connecting

import (
	"context"
	"net/url"
	"strings"

	"github.com/pkg/errors"
	fbdomain "github.com/vfg2006/ads-integration-api/infrastructure/integrator/facebook/domain"
	"github.com/vfg2006/ads-integration-api/infrastructure/integrator/facebook/fbclient"
	"github.com/vfg2006/ads-integration-api/internal/config"
	"github.com/vfg2006/ads-integration-api/internal/domain"
	"github.com/vfg2006/ads-integration-api/pkg/apiErrors"
	"github.com/vfg2006/ads-integration-api/pkg/log"
	"github.com/vfg2006/ads-integration-api/pkg/utils"
)

// Scopes são as permissões pedidas no popup de login
var Scopes = []string{"ads_read", "ads_management", "business_management"}

const statusConnected = "connected"

// LoginInput aceita o resultado do FB.login do SDK ou o code do redirect OAuth
type LoginInput struct {
	Status       string                 `json:"status,omitempty"`
	AuthResponse *fbdomain.AuthResponse `json:"authResponse,omitempty"`
	Code         string                 `json:"code,omitempty"`
	Error        string                 `json:"error,omitempty"`
	ErrorReason  string                 `json:"error_reason,omitempty"`
}

type LoginData = fbdomain.AuthResponse

// AuthGate obtém o token de curta duração e a identidade do usuário no Facebook
type AuthGate struct {
	cfg    config.Facebook
	client fbclient.Client
}

func NewAuthGate(cfg *config.Config, client fbclient.Client) *AuthGate {
	return &AuthGate{
		cfg:    cfg.Facebook,
		client: client,
	}
}

// Initialized substitui a checagem de SDK carregado: sem app id e secret nenhum login é possível
func (g *AuthGate) Initialized() bool {
	return g.cfg.AppID != "" && g.cfg.AppSecret != ""
}

func (g *AuthGate) NewState() (string, error) {
	return utils.GenerateState()
}

// LoginURL monta a URL do diálogo OAuth do Facebook
func (g *AuthGate) LoginURL(state string) string {
	params := url.Values{}
	params.Set("client_id", g.cfg.AppID)
	params.Set("redirect_uri", g.cfg.RedirectURI)
	params.Set("state", state)
	params.Set("scope", strings.Join(Scopes, ","))
	params.Set("response_type", "code")

	return strings.TrimRight(g.cfg.DialogURL, "/") + "/" + g.cfg.Version + "/dialog/oauth?" + params.Encode()
}

// Login valida a resposta do popup (ou troca o code) e devolve o token de curta duração.
// Uma recusa é sempre uma falha terminal, sem nova tentativa.
func (g *AuthGate) Login(ctx context.Context, in LoginInput) domain.Result[*LoginData] {
	logger := log.ForContext(ctx)

	if !g.Initialized() {
		logger.Error("Login no Facebook chamado sem FACEBOOK_APP_ID/FACEBOOK_APP_SECRET")
		return domain.Fail[*LoginData](apiErrors.ErrFacebookNotConfigured, MsgSDKNotInitialized)
	}

	if in.Error != "" || (in.Status != "" && in.Status != statusConnected) {
		logger.WithFields(log.Fields{
			"status":       in.Status,
			"error_reason": in.ErrorReason,
		}).Info("Login no Facebook recusado pelo usuário")
		return domain.Fail[*LoginData](apiErrors.ErrFacebookLogin, MsgLoginCancelled)
	}

	switch {
	case in.AuthResponse != nil:
		return g.loginWithAuthResponse(ctx, in.AuthResponse)
	case in.Code != "":
		return g.loginWithCode(ctx, in.Code)
	default:
		return domain.Fail[*LoginData](apiErrors.ErrFacebookLogin, MsgLoginCancelled)
	}
}

func (g *AuthGate) loginWithAuthResponse(ctx context.Context, auth *fbdomain.AuthResponse) domain.Result[*LoginData] {
	if auth.AccessToken == "" || auth.UserID == "" {
		return domain.Fail[*LoginData](apiErrors.ErrMissingRequiredData, MsgInvalidLoginResponse)
	}

	if auth.SignedRequest != "" {
		signed, err := ParseSignedRequest(auth.SignedRequest, g.cfg.AppSecret)
		if err != nil {
			log.ForContext(ctx).WithError(err).Warn("signedRequest do Facebook rejeitado")
			return domain.Fail[*LoginData](apiErrors.ErrFacebookLogin, MsgInvalidLoginResponse)
		}

		if signed.UserID != auth.UserID {
			log.ForContext(ctx).WithError(ErrSignedRequestMismatch).Warn("signedRequest do Facebook rejeitado")
			return domain.Fail[*LoginData](apiErrors.ErrFacebookLogin, MsgInvalidLoginResponse)
		}
	}

	return domain.Ok(auth)
}

func (g *AuthGate) loginWithCode(ctx context.Context, code string) domain.Result[*LoginData] {
	token, err := g.client.ExchangeCodeForToken(ctx, code)
	if err != nil {
		log.ForContext(ctx).WithError(err).Warn("Erro ao trocar o code do Facebook por token")
		return domain.Fail[*LoginData](apiErrors.ErrFacebookLogin, graphMessage(err, MsgLoginCancelled))
	}

	me, err := g.client.GetMe(ctx, token.AccessToken)
	if err != nil {
		log.ForContext(ctx).WithError(err).Warn("Erro ao buscar o usuário do Facebook")
		return domain.Fail[*LoginData](apiErrors.ErrFacebookLogin, graphMessage(err, MsgInvalidLoginResponse))
	}

	return domain.Ok(&LoginData{
		AccessToken: token.AccessToken,
		UserID:      me.ID,
		ExpiresIn:   token.ExpiresIn,
	})
}

// graphMessage usa a mensagem estruturada da Graph API quando houver
func graphMessage(err error, fallback string) string {
	var graphErr *fbdomain.GraphError
	if errors.As(err, &graphErr) && graphErr.Message() != "" {
		return graphErr.Message()
	}

	return fallback
}

func isTokenExpired(err error) bool {
	var graphErr *fbdomain.GraphError
	return errors.As(err, &graphErr) && graphErr.IsTokenExpired()
}
