package domain

// Operações com flag de "em andamento" expostas ao dashboard
const (
	OperationConnecting             = "connecting"
	OperationLoadingIntegration     = "loading_integration"
	OperationLoadingSelectAdAccount = "loading_select_ad_accounts"
	OperationFetchPutAdAccounts     = "fetch_put_ad_accounts"
)

// IntegrationState é o estado consumido pela tela de integrações
type IntegrationState struct {
	Integrations              []*Integration `json:"integrations"`
	AdAccounts                []*AdAccount   `json:"adAccounts"`
	IsConnectingFacebookAds   bool           `json:"isConnectingFacebookAds"`
	IsLoadingIntegration      bool           `json:"isLoadingIntegration"`
	IsLoadingSelectAdAccounts bool           `json:"isLoadingSelectAdAccounts"`
	IsFetchPutAdAccounts      bool           `json:"isFetchPutAdAccounts"`
}
