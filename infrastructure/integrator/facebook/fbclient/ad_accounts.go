package fbclient

import (
	"context"
	"net/url"
	"strconv"

	fbdomain "github.com/vfg2006/ads-integration-api/infrastructure/integrator/facebook/domain"
)

const (
	AdAccountsPageSize = 25
	AdAccountFields    = "id,name,account_id,account_status,currency,timezone_name,amount_spent,daily_spend_limit,spend_cap,business"
)

// MeAdAccounts busca uma página das contas de anúncio da identidade autenticada
func (c *FacebookClient) MeAdAccounts(ctx context.Context, accessToken, after string) (*fbdomain.AdAccountsPage, error) {
	if accessToken == "" {
		return nil, ErrEmptyToken
	}

	params := url.Values{}
	params.Add("access_token", accessToken)
	params.Add("fields", AdAccountFields)
	params.Add("limit", strconv.Itoa(AdAccountsPageSize))
	if after != "" {
		params.Add("after", after)
	}

	var page fbdomain.AdAccountsPage
	if err := c.get(ctx, "me_adaccounts", "/me/adaccounts", params, &page); err != nil {
		return nil, err
	}

	if page.Data == nil {
		return nil, ErrNoData
	}

	return &page, nil
}
