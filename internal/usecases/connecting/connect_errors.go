package connecting

import (
	"errors"
	"fmt"
)

// Mensagens exibidas ao usuário
const (
	MsgSDKNotInitialized    = "SDK do Facebook não inicializado"
	MsgLoginCancelled       = "Login no Facebook cancelado ou não autorizado"
	MsgInvalidLoginResponse = "Resposta de login do Facebook inválida"
	MsgTokenExchangeFailed  = "Erro ao obter token de longa duração"
	MsgSaveIntegrationError = "Erro ao salvar integração"
	MsgIntegrationNotFound  = "Integração não encontrada"
	MsgOperationInProgress  = "Operação já em andamento"
	MsgConnected            = "Facebook Ads conectado com sucesso!"
	MsgDisconnected         = "Facebook Ads desconectado"
)

var (
	ErrNotInitialized        = errors.New("app do Facebook não configurado")
	ErrInvalidSignedRequest  = errors.New("signed request inválido")
	ErrSignedRequestMismatch = errors.New("signed request pertence a outro usuário")
	ErrTokenExpired          = errors.New("token do Facebook expirado ou revogado")
)

// ConnectError é um erro com contexto adicional para o fluxo de conexão
type ConnectError struct {
	Err           error  // Erro base
	Code          string // Código de erro para API
	IntegrationID string // Integração envolvida (quando aplicável)
	Details       string // Detalhes adicionais
}

func (e *ConnectError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ConnectError) Unwrap() error {
	return e.Err
}

func NewConnectError(err error, code, integrationID, details string) *ConnectError {
	return &ConnectError{
		Err:           err,
		Code:          code,
		IntegrationID: integrationID,
		Details:       details,
	}
}
