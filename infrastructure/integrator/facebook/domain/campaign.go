package fbdomain

type Cursors struct {
	Before string `json:"before"`
	After  string `json:"after"`
}

type Paging struct {
	Cursors  Cursors `json:"cursors"`
	Next     string  `json:"next,omitempty"`
	Previous string  `json:"previous,omitempty"`
}

// NextCursor devolve o cursor da próxima página, ou vazio quando não há mais páginas
func (p Paging) NextCursor() string {
	if p.Next == "" {
		return ""
	}

	return p.Cursors.After
}

type AdRef struct {
	ID string `json:"id"`
}

type AdsEdge struct {
	Data   []AdRef `json:"data"`
	Paging Paging  `json:"paging"`
}

// Campaign é a campanha como devolvida por /act_<id>/campaigns, com os anúncios aninhados
type Campaign struct {
	ID              string   `json:"id"`
	AccountID       string   `json:"account_id"`
	Name            string   `json:"name"`
	Objective       string   `json:"objective"`
	Status          string   `json:"status"`
	EffectiveStatus string   `json:"effective_status"`
	BuyingType      string   `json:"buying_type"`
	DailyBudget     string   `json:"daily_budget"`
	LifetimeBudget  string   `json:"lifetime_budget"`
	BudgetRemaining string   `json:"budget_remaining"`
	StartTime       string   `json:"start_time"`
	CreatedTime     string   `json:"created_time"`
	UpdatedTime     string   `json:"updated_time"`
	Ads             *AdsEdge `json:"ads,omitempty"`
}

// AdIDs devolve os ids dos anúncios aninhados na campanha
func (c *Campaign) AdIDs() []string {
	if c.Ads == nil {
		return nil
	}

	ids := make([]string, 0, len(c.Ads.Data))
	for _, ad := range c.Ads.Data {
		if ad.ID == "" {
			continue
		}
		ids = append(ids, ad.ID)
	}

	return ids
}

type CampaignsPage struct {
	Data   []Campaign `json:"data"`
	Paging Paging     `json:"paging"`
}
