package fbdomain

type Business struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// AdAccount é a conta de anúncios como devolvida por /me/adaccounts.
// ID vem no formato "act_<account_id>".
type AdAccount struct {
	ID              string    `json:"id"`
	AccountID       string    `json:"account_id"`
	Name            string    `json:"name"`
	AccountStatus   int       `json:"account_status"`
	Currency        string    `json:"currency"`
	TimezoneName    string    `json:"timezone_name"`
	AmountSpent     string    `json:"amount_spent"`
	DailySpendLimit string    `json:"daily_spend_limit"`
	SpendCap        string    `json:"spend_cap"`
	Business        *Business `json:"business,omitempty"`
}

type AdAccountsPage struct {
	Data   []AdAccount `json:"data"`
	Paging Paging      `json:"paging"`
}
