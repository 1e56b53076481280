package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

const (
	// Erros de autenticação
	ErrInvalidToken          = "AUTH_006" // Token inválido
	ErrExpiredToken          = "AUTH_007" // Token expirado
	ErrInsufficientPrivilege = "AUTH_008" // Privilégios insuficientes

	// Erros de validação
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido
	ErrNotFound            = "VAL_004" // Rota não encontrada
	ErrMethodNotAllowed    = "VAL_005" // Método não permitido

	// Erros da integração com o Facebook
	ErrFacebookLogin         = "FB_001" // Login no Facebook recusado ou inválido
	ErrFacebookTokenExchange = "FB_002" // Falha ao obter token de longa duração
	ErrFacebookTokenExpired  = "FB_003" // Token do Facebook expirado ou revogado
	ErrFacebookRequest       = "FB_004" // Erro na Graph API
	ErrFacebookNotConfigured = "FB_005" // App do Facebook não configurado

	// Erros de integração
	ErrIntegrationNotFound     = "INT_001" // Integração não encontrada
	ErrIntegrationNotSupported = "INT_002" // Integração não suportada
	ErrOperationInProgress     = "INT_003" // Operação já em andamento

	// Erros do servidor
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
	ErrExternalService   = "SRV_003" // Erro em serviço externo
	ErrCommunication     = "SRV_004" // Erro de comunicação
)

var httpStatusMap = map[string]int{
	ErrInvalidToken:            http.StatusUnauthorized,
	ErrExpiredToken:            http.StatusUnauthorized,
	ErrInsufficientPrivilege:   http.StatusForbidden,
	ErrInvalidRequest:          http.StatusBadRequest,
	ErrMissingRequiredData:     http.StatusBadRequest,
	ErrInvalidFormat:           http.StatusBadRequest,
	ErrNotFound:                http.StatusNotFound,
	ErrMethodNotAllowed:        http.StatusMethodNotAllowed,
	ErrFacebookLogin:           http.StatusUnauthorized,
	ErrFacebookTokenExchange:   http.StatusBadGateway,
	ErrFacebookTokenExpired:    http.StatusUnauthorized,
	ErrFacebookRequest:         http.StatusBadGateway,
	ErrFacebookNotConfigured:   http.StatusServiceUnavailable,
	ErrIntegrationNotFound:     http.StatusNotFound,
	ErrIntegrationNotSupported: http.StatusNotImplemented,
	ErrOperationInProgress:     http.StatusConflict,
	ErrInternalServer:          http.StatusInternalServerError,
	ErrDatabaseOperation:       http.StatusInternalServerError,
	ErrExternalService:         http.StatusBadGateway,
	ErrCommunication:           http.StatusServiceUnavailable,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}

	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	_ = jsoniter.NewEncoder(w).Encode(apiErr)
}

// FromError cria um erro de API a partir de um erro Go
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Erro desconhecido",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
