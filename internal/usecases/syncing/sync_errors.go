package syncing

import (
	"errors"
	"fmt"
	"strings"
)

// Mensagens exibidas ao usuário
const (
	MsgIntegrationNotFound   = "Integração com o Facebook Ads não encontrada"
	MsgIntegrationExpired    = "A conexão com o Facebook Ads expirou. Conecte novamente."
	MsgFetchAdAccountsError  = "Erro ao buscar contas de anúncio"
	MsgSaveAdAccountsError   = "Erro ao salvar contas de anúncio"
	MsgLoadAdAccountsError   = "Erro ao carregar contas de anúncio"
	MsgSelectAdAccountsError = "Erro ao selecionar contas de anúncio"
	MsgNoAccountsSelected    = "Nenhuma conta de anúncio selecionada"
	MsgFetchCampaignsError   = "Erro ao buscar campanhas da conta"
	MsgSaveCampaignsError    = "Erro ao salvar campanhas da conta"
	MsgSaveCampaignAdsError  = "Erro ao salvar anúncios das campanhas da conta"
	MsgCampaignsSynced       = "Campanhas sincronizadas com sucesso!"
	MsgCampaignsPartial      = "Sincronização de campanhas concluída com erros"
	MsgOperationInProgress   = "Operação já em andamento"
)

var (
	ErrIntegrationNotFound = errors.New("integração não encontrada")
	ErrTokenExpired        = errors.New("token do Facebook expirado ou revogado")
	ErrFetchAdAccounts     = errors.New("erro ao buscar contas de anúncio")
	ErrSaveAdAccounts      = errors.New("erro ao salvar contas de anúncio")
	ErrMarkAccountsActive  = errors.New("erro ao marcar contas como ativas")
	ErrFetchCampaigns      = errors.New("erro ao buscar campanhas")
	ErrSaveCampaigns       = errors.New("erro ao salvar campanhas")
	ErrSaveCampaignAds     = errors.New("erro ao salvar anúncios das campanhas")
)

// SyncError é um erro com contexto adicional para a sincronização
type SyncError struct {
	Err       error  // Erro base
	Code      string // Código de erro para API
	AccountID string // Conta de anúncio envolvida (quando aplicável)
	Details   string // Detalhes adicionais
}

func (e *SyncError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *SyncError) Unwrap() error {
	return e.Err
}

func NewSyncError(err error, code, details string) *SyncError {
	return &SyncError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func NewSyncErrorWithAccount(err error, code, accountID, details string) *SyncError {
	return &SyncError{
		Err:       err,
		Code:      code,
		AccountID: accountID,
		Details:   details,
	}
}

// userMessage monta o texto do toast: "<mensagem> <conta>: <detalhe>"
func userMessage(message, accountID, details string) string {
	var b strings.Builder
	b.WriteString(message)
	if accountID != "" {
		b.WriteString(" ")
		b.WriteString(accountID)
	}
	if details != "" {
		b.WriteString(": ")
		b.WriteString(details)
	}
	return b.String()
}
