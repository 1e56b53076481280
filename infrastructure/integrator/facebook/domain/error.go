package fbdomain

import (
	"fmt"
	"net/http"
)

// ErrorResponse representa a estrutura de erro da Graph API
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

// ErrorDetails contém os detalhes de erro da Graph API
type ErrorDetails struct {
	Message      string `json:"message"`
	Type         string `json:"type"`
	Code         int    `json:"code"`
	ErrorSubcode int    `json:"error_subcode,omitempty"`
	FBTraceID    string `json:"fbtrace_id"`
}

// IsTokenExpired verifica se o erro é de token expirado
func (e *ErrorResponse) IsTokenExpired() bool {
	// 190 = token inválido/expirado; subcódigos 460, 463 e 467 também indicam problema no token
	return e.Error.Code == 190 ||
		(e.Error.Type == "OAuthException" && (e.Error.ErrorSubcode == 460 || e.Error.ErrorSubcode == 463 || e.Error.ErrorSubcode == 467))
}

// GraphError é o erro devolvido pelo cliente quando a Graph API responde com status != 200
type GraphError struct {
	StatusCode int
	Response   *ErrorResponse
	Body       string
}

func (e *GraphError) Error() string {
	if e.Response != nil && e.Response.Error.Message != "" {
		return e.Response.Error.Message
	}

	return fmt.Sprintf("erro na resposta da API. Status: %d", e.StatusCode)
}

// Message devolve a mensagem estruturada do provedor, quando existir
func (e *GraphError) Message() string {
	if e.Response == nil {
		return ""
	}

	return e.Response.Error.Message
}

func (e *GraphError) IsTokenExpired() bool {
	if e.Response != nil && e.Response.IsTokenExpired() {
		return true
	}

	return e.StatusCode == http.StatusUnauthorized
}
