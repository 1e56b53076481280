package fbclient

//go:generate mockgen -source=client.go -destination=../mocks/mock_client.go -package=mocks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"
	fbdomain "github.com/vfg2006/ads-integration-api/infrastructure/integrator/facebook/domain"
	"github.com/vfg2006/ads-integration-api/internal/config"
	"github.com/vfg2006/ads-integration-api/pkg/metrics"
)

var ErrNoData = errors.New("no data found")

type Client interface {
	ExchangeCodeForToken(ctx context.Context, code string) (*fbdomain.TokenResponse, error)
	GetLongLivedToken(ctx context.Context, shortLivedToken string) (*fbdomain.TokenResponse, error)
	GetMe(ctx context.Context, accessToken string) (*fbdomain.User, error)
	MeAdAccounts(ctx context.Context, accessToken, after string) (*fbdomain.AdAccountsPage, error)
	GetCampaignsByAccountID(ctx context.Context, accessToken, accountID, after string) (*fbdomain.CampaignsPage, error)
}

type FacebookClient struct {
	Cfg        config.Facebook
	HTTPClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	return &FacebookClient{
		Cfg:        cfg.Facebook,
		HTTPClient: &http.Client{},
	}
}

// get executa um GET na Graph API com timeout próprio e decodifica o corpo em out
func (c *FacebookClient) get(ctx context.Context, endpoint, path string, params url.Values, out any) error {
	timeout := c.Cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	started := time.Now()
	err := c.doGet(ctx, path, params, out)
	metrics.ObserveGraphRequest(endpoint, started, err)

	return err
}

func (c *FacebookClient) doGet(ctx context.Context, path string, params url.Values, out any) error {
	// A URL carrega o access_token e nunca deve ir para o log
	requestURL := c.Cfg.URL + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return err
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		// *url.Error repete a URL (com o token) na mensagem
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = urlErr.Err
		}
		logrus.WithField("path", path).WithError(err).Error("Erro ao fazer a requisição")
		return fmt.Errorf("erro ao fazer a requisição: %w", err)
	}
	defer resp.Body.Close()

	body, err := HandleResponse(resp)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, out); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return fmt.Errorf("erro ao decodificar resposta: %w", err)
	}

	return nil
}

// HandleResponse lê o corpo da resposta e converte respostas != 200 em *fbdomain.GraphError
func HandleResponse(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler resposta: %w", err)
	}

	if resp.StatusCode == http.StatusOK {
		return body, nil
	}

	graphErr := &fbdomain.GraphError{
		StatusCode: resp.StatusCode,
		Body:       string(body),
	}

	var errorResp fbdomain.ErrorResponse
	if err := json.Unmarshal(body, &errorResp); err == nil && errorResp.Error.Message != "" {
		graphErr.Response = &errorResp
	}

	logrus.WithFields(logrus.Fields{
		"status_code": resp.StatusCode,
		"error":       graphErr.Error(),
	}).Warn("Graph API respondeu com erro")

	return nil, graphErr
}
