package fbclient

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	fbdomain "github.com/vfg2006/ads-integration-api/infrastructure/integrator/facebook/domain"
)

const (
	CampaignsPageSize = 100
	CampaignFields    = "id,account_id,name,objective,status,effective_status,buying_type,daily_budget,lifetime_budget,budget_remaining,start_time,created_time,updated_time,ads.limit(100){id}"
)

// GetCampaignsByAccountID busca uma página das campanhas da conta, com os anúncios aninhados
func (c *FacebookClient) GetCampaignsByAccountID(ctx context.Context, accessToken, accountID, after string) (*fbdomain.CampaignsPage, error) {
	if accessToken == "" {
		return nil, ErrEmptyToken
	}

	accountID = strings.TrimPrefix(accountID, "act_")
	if accountID == "" {
		return nil, fmt.Errorf("id da conta de anúncio não pode ser vazio")
	}

	params := url.Values{}
	params.Add("access_token", accessToken)
	params.Add("fields", CampaignFields)
	params.Add("limit", strconv.Itoa(CampaignsPageSize))
	if after != "" {
		params.Add("after", after)
	}

	var page fbdomain.CampaignsPage
	if err := c.get(ctx, "campaigns", fmt.Sprintf("/act_%s/campaigns", accountID), params, &page); err != nil {
		return nil, err
	}

	if page.Data == nil {
		return nil, ErrNoData
	}

	return &page, nil
}
