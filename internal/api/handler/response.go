package handler

import (
	"context"
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/ads-integration-api/internal/domain"
	"github.com/vfg2006/ads-integration-api/pkg/apiErrors"
	"github.com/vfg2006/ads-integration-api/pkg/log"
	"github.com/vfg2006/ads-integration-api/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Response é o envelope devolvido ao dashboard em todas as rotas de integração
type Response struct {
	Success       bool                  `json:"success"`
	Data          any                   `json:"data,omitempty"`
	Message       string                `json:"message,omitempty"`
	Code          string                `json:"code,omitempty"`
	Notifications []domain.Notification `json:"notifications"`
}

// writeResult escreve o Result com as notificações emitidas durante a requisição.
// Falhas usam o status HTTP do código de erro.
func writeResult[T any](w http.ResponseWriter, r *http.Request, res domain.Result[T], notifications *domain.Notifications) {
	status := http.StatusOK
	if !res.Success {
		status = apiErrors.StatusFor(res.Code)
	}

	resp := Response{
		Success:       res.Success,
		Data:          res.Data,
		Message:       res.Message,
		Code:          res.Code,
		Notifications: []domain.Notification{},
	}
	if notifications != nil {
		resp.Notifications = notifications.List()
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao codificar resposta")
	}
}

// requestContext devolve o contexto com o coletor de notificações e o id do usuário autenticado
func requestContext(w http.ResponseWriter, r *http.Request) (context.Context, *domain.Notifications, string, bool) {
	claims, ok := middleware.UserFromContext(r.Context())
	if !ok || claims.UserID() == "" {
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
		return nil, nil, "", false
	}

	ctx, notifications := domain.WithNotifications(r.Context())

	return ctx, notifications, claims.UserID(), true
}

// decodeBody decodifica o JSON do corpo. Corpo vazio mantém o valor zero.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil && err != io.EOF {
		log.ForContext(r.Context()).WithError(err).Warn("Corpo da requisição inválido")
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
		return false
	}

	return true
}
