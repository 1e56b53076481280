package domain

import "time"

type Campaign struct {
	ID              string     `json:"id"`
	CampaignID      string     `json:"campaign_id"`
	AdAccountID     string     `json:"fb_ad_account_id"`
	Name            string     `json:"name"`
	Objective       string     `json:"objective"`
	Status          bool       `json:"status"`
	EffectiveStatus string     `json:"effective_status"`
	BuyingType      string     `json:"buying_type"`
	DailyBudget     *int64     `json:"daily_budget"`
	LifetimeBudget  *int64     `json:"lifetime_budget"`
	BudgetRemaining *int64     `json:"budget_remaining"`
	StartTime       *time.Time `json:"start_time"`
	CreatedTime     *time.Time `json:"created_time"`
	UpdatedTime     *time.Time `json:"updated_time"`
}

// CampaignAd liga um anúncio à campanha já persistida (id interno, nunca o externo)
type CampaignAd struct {
	ID         string `json:"id"`
	AdID       string `json:"ad_id"`
	CampaignID string `json:"campaign_id"`
}

// AccountSyncReport resume o resultado da sincronização de campanhas de uma conta
type AccountSyncReport struct {
	AccountID string `json:"account_id"`
	Campaigns int    `json:"campaigns"`
	Ads       int    `json:"ads"`
	Error     string `json:"error,omitempty"`
}

type CampaignSyncReport struct {
	Accounts []AccountSyncReport `json:"accounts"`
}
