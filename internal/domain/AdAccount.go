package domain

import "time"

// AdAccount é uma conta de anúncios do Facebook descoberta sob uma Integration.
// A unicidade é garantida pelo AccountID (id externo).
type AdAccount struct {
	ID            string     `json:"id"`
	AccountID     string     `json:"account_id"`
	Name          string     `json:"name"`
	AccountStatus int        `json:"account_status"`
	IsActive      bool       `json:"is_active"`
	AmountSpent   int64      `json:"amount_spent"`
	Currency      string     `json:"currency"`
	TimezoneName  string     `json:"timezone_name"`
	BusinessName  string     `json:"business_name"`
	BusinessID    string     `json:"business_id"`
	IntegrationID string     `json:"integration_id"`
	UpdatedAt     time.Time  `json:"updated_at"`
	Campaigns     []Campaign `json:"campaigns,omitempty"`
}

type SelectAdAccountsRequest struct {
	IDs []string `json:"ids"`
}
