package fbclient

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"
	fbdomain "github.com/vfg2006/ads-integration-api/infrastructure/integrator/facebook/domain"
)

var ErrEmptyToken = errors.New("token de acesso não pode ser vazio")

// GetLongLivedToken troca um token de curta duração por um de longa duração
func (c *FacebookClient) GetLongLivedToken(ctx context.Context, shortLivedToken string) (*fbdomain.TokenResponse, error) {
	if shortLivedToken == "" {
		return nil, ErrEmptyToken
	}

	params := url.Values{}
	params.Add("grant_type", "fb_exchange_token")
	params.Add("client_id", c.Cfg.AppID)
	params.Add("client_secret", c.Cfg.AppSecret)
	params.Add("fb_exchange_token", shortLivedToken)

	var tokenResp fbdomain.TokenResponse
	if err := c.get(ctx, "oauth_exchange", "/oauth/access_token", params, &tokenResp); err != nil {
		return nil, err
	}

	if tokenResp.AccessToken == "" {
		return nil, fmt.Errorf("token retornado pela API é vazio")
	}

	logrus.Infof("Token de longa duração obtido com sucesso. Expira em %s.", FormatDuration(tokenResp.ExpiresIn))

	return &tokenResp, nil
}

// ExchangeCodeForToken troca o code do redirect OAuth por um token de curta duração
func (c *FacebookClient) ExchangeCodeForToken(ctx context.Context, code string) (*fbdomain.TokenResponse, error) {
	if code == "" {
		return nil, fmt.Errorf("code de autorização não pode ser vazio")
	}

	params := url.Values{}
	params.Add("client_id", c.Cfg.AppID)
	params.Add("client_secret", c.Cfg.AppSecret)
	params.Add("redirect_uri", c.Cfg.RedirectURI)
	params.Add("code", code)

	var tokenResp fbdomain.TokenResponse
	if err := c.get(ctx, "oauth_code", "/oauth/access_token", params, &tokenResp); err != nil {
		return nil, err
	}

	if tokenResp.AccessToken == "" {
		return nil, fmt.Errorf("token retornado pela API é vazio")
	}

	return &tokenResp, nil
}

// GetMe devolve a identidade dona do token
func (c *FacebookClient) GetMe(ctx context.Context, accessToken string) (*fbdomain.User, error) {
	if accessToken == "" {
		return nil, ErrEmptyToken
	}

	params := url.Values{}
	params.Add("fields", "id,name")
	params.Add("access_token", accessToken)

	var user fbdomain.User
	if err := c.get(ctx, "me", "/me", params, &user); err != nil {
		return nil, err
	}

	if user.ID == "" {
		return nil, ErrNoData
	}

	return &user, nil
}

// FormatDuration formata a duração em segundos para um formato legível
func FormatDuration(seconds int64) string {
	duration := time.Duration(seconds) * time.Second
	days := duration / (24 * time.Hour)
	hours := (duration % (24 * time.Hour)) / time.Hour
	minutes := (duration % time.Hour) / time.Minute

	return fmt.Sprintf("%d dias, %d horas e %d minutos", days, hours, minutes)
}
