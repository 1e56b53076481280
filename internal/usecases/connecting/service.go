package connecting

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/ads-integration-api/infrastructure/repository"
	"github.com/vfg2006/ads-integration-api/internal/domain"
	"github.com/vfg2006/ads-integration-api/pkg/apiErrors"
	"github.com/vfg2006/ads-integration-api/pkg/guard"
	"github.com/vfg2006/ads-integration-api/pkg/log"
	"github.com/vfg2006/ads-integration-api/pkg/metrics"
)

type Connector interface {
	LoginURL(ctx context.Context) domain.Result[*LoginURLData]
	Connect(ctx context.Context, userID string, in LoginInput) domain.Result[*domain.Integration]
	Disconnect(ctx context.Context, userID string) domain.Result[*domain.Integration]
	RefreshToken(ctx context.Context, integration *domain.Integration) error
}

type LoginURLData struct {
	URL    string   `json:"url"`
	State  string   `json:"state"`
	Scopes []string `json:"scopes"`
}

type Service struct {
	gate            *AuthGate
	exchanger       *TokenExchanger
	integrationRepo repository.IntegrationRepository
	guard           guard.Guard
	now             func() time.Time
}

func NewService(
	gate *AuthGate,
	exchanger *TokenExchanger,
	integrationRepo repository.IntegrationRepository,
	g guard.Guard,
) *Service {
	return &Service{
		gate:            gate,
		exchanger:       exchanger,
		integrationRepo: integrationRepo,
		guard:           g,
		now:             time.Now,
	}
}

func (s *Service) LoginURL(ctx context.Context) domain.Result[*LoginURLData] {
	if !s.gate.Initialized() {
		return domain.Fail[*LoginURLData](apiErrors.ErrFacebookNotConfigured, MsgSDKNotInitialized)
	}

	state, err := s.gate.NewState()
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao gerar state do OAuth")
		return domain.Fail[*LoginURLData](apiErrors.ErrInternalServer, domain.MsgUnexpectedError)
	}

	return domain.Ok(&LoginURLData{
		URL:    s.gate.LoginURL(state),
		State:  state,
		Scopes: Scopes,
	})
}

// Connect executa login, troca de token e upsert da integração (user_id, provider).
// Qualquer falha aborta o fluxo sem criar a integração.
func (s *Service) Connect(ctx context.Context, userID string, in LoginInput) (res domain.Result[*domain.Integration]) {
	logger := log.ForContext(ctx).WithField("user_id", userID)

	release, err := s.guard.TryAcquire(ctx, guard.Key(userID, domain.OperationConnecting))
	if err != nil {
		return busy[*domain.Integration](logger, err)
	}
	defer release()

	defer domain.Recover(&res, apiErrors.ErrInternalServer, func(p any) {
		logger.WithField("panic_error", p).Error("Erro inesperado ao conectar o Facebook Ads")
		domain.NotifyError(ctx, domain.MsgUnexpectedError)
		metrics.ObserveStage("connect", false)
	})

	login := s.gate.Login(ctx, in)
	if !login.Success {
		return s.failConnect(ctx, login.Code, login.Message)
	}

	exchange := s.exchanger.ExchangeForLongLivedToken(ctx, login.Data.AccessToken)
	if !exchange.Success {
		return s.failConnect(ctx, exchange.Code, exchange.Message)
	}

	integration := &domain.Integration{
		UserID:            userID,
		Provider:          domain.ProviderFacebook,
		ProviderAccountID: login.Data.UserID,
		AccessToken:       exchange.Data.AccessToken,
		TokenExpiresAt:    s.expiresAt(exchange.Data.ExpiresIn),
		Status:            domain.IntegrationStatusConnected,
	}

	saved, err := s.integrationRepo.Upsert(ctx, integration)
	if err != nil {
		logger.WithError(err).Error("Erro ao salvar integração do Facebook")
		return s.failConnect(ctx, apiErrors.ErrDatabaseOperation, MsgSaveIntegrationError)
	}

	logger.WithField("integration_id", saved.ID).Info("Facebook Ads conectado")
	domain.NotifySuccess(ctx, MsgConnected)
	metrics.ObserveStage("connect", true)

	return domain.Ok(saved)
}

func (s *Service) failConnect(ctx context.Context, code, message string) domain.Result[*domain.Integration] {
	domain.NotifyError(ctx, message)
	metrics.ObserveStage("connect", false)

	return domain.Fail[*domain.Integration](code, message)
}

// Disconnect marca a integração como desconectada e descarta o token. A linha nunca é removida.
func (s *Service) Disconnect(ctx context.Context, userID string) (res domain.Result[*domain.Integration]) {
	logger := log.ForContext(ctx).WithField("user_id", userID)

	release, err := s.guard.TryAcquire(ctx, guard.Key(userID, domain.OperationConnecting))
	if err != nil {
		return busy[*domain.Integration](logger, err)
	}
	defer release()

	defer domain.Recover(&res, apiErrors.ErrInternalServer, func(p any) {
		logger.WithField("panic_error", p).Error("Erro inesperado ao desconectar o Facebook Ads")
		domain.NotifyError(ctx, domain.MsgUnexpectedError)
	})

	integration, err := s.integrationRepo.GetByUserAndProvider(ctx, userID, domain.ProviderFacebook)
	if err != nil {
		logger.WithError(err).Error("Erro ao buscar integração")
		domain.NotifyError(ctx, MsgSaveIntegrationError)
		return domain.Fail[*domain.Integration](apiErrors.ErrDatabaseOperation, MsgSaveIntegrationError)
	}
	if integration == nil {
		return domain.Fail[*domain.Integration](apiErrors.ErrIntegrationNotFound, MsgIntegrationNotFound)
	}

	if err := s.integrationRepo.Disconnect(ctx, integration.ID); err != nil {
		logger.WithError(err).Error("Erro ao desconectar integração")
		domain.NotifyError(ctx, MsgSaveIntegrationError)
		return domain.Fail[*domain.Integration](apiErrors.ErrDatabaseOperation, MsgSaveIntegrationError)
	}

	integration.Status = domain.IntegrationStatusDisconnected
	integration.AccessToken = ""
	integration.TokenExpiresAt = nil

	domain.NotifySuccess(ctx, MsgDisconnected)

	return domain.Ok(integration)
}

// RefreshToken renova o token de longa duração da integração. Tokens revogados
// (código 190) marcam a integração como expirada.
func (s *Service) RefreshToken(ctx context.Context, integration *domain.Integration) error {
	logger := log.ForContext(ctx).WithFields(log.Fields{
		"integration_id": integration.ID,
		"user_id":        integration.UserID,
	})

	token, err := s.exchanger.client.GetLongLivedToken(ctx, integration.AccessToken)
	if err != nil {
		if isTokenExpired(err) {
			logger.Warn("Token do Facebook expirado, marcando integração como expirada")
			if statusErr := s.integrationRepo.UpdateStatus(ctx, integration.ID, domain.IntegrationStatusExpired); statusErr != nil {
				logger.WithError(statusErr).Error("Erro ao marcar integração como expirada")
			}
			integration.Status = domain.IntegrationStatusExpired
			return NewConnectError(ErrTokenExpired, apiErrors.ErrFacebookTokenExpired, integration.ID, err.Error())
		}

		return NewConnectError(errors.New(MsgTokenExchangeFailed), apiErrors.ErrFacebookTokenExchange, integration.ID, err.Error())
	}

	expiresAt := s.expiresAt(token.ExpiresIn)
	if err := s.integrationRepo.UpdateToken(ctx, integration.ID, token.AccessToken, expiresAt); err != nil {
		return NewConnectError(errors.New(MsgSaveIntegrationError), apiErrors.ErrDatabaseOperation, integration.ID, err.Error())
	}

	integration.AccessToken = token.AccessToken
	integration.TokenExpiresAt = expiresAt
	integration.Status = domain.IntegrationStatusConnected

	logger.Info("Token do Facebook renovado")

	return nil
}

func (s *Service) expiresAt(expiresIn int64) *time.Time {
	if expiresIn <= 0 {
		return nil
	}

	t := s.now().UTC().Add(time.Duration(expiresIn) * time.Second)
	return &t
}

func busy[T any](logger log.Logger, err error) domain.Result[T] {
	if errors.Is(err, guard.ErrInProgress) {
		logger.Info("Operação já em andamento, ignorando nova chamada")
		return domain.Fail[T](apiErrors.ErrOperationInProgress, MsgOperationInProgress)
	}

	logger.WithError(err).Error("Erro ao verificar operação em andamento")
	return domain.Fail[T](apiErrors.ErrInternalServer, domain.MsgUnexpectedError)
}
