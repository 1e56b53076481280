package apiErrors

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()

	WriteError(rec, ErrOperationInProgress, "Operação já em andamento", nil)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"code":"INT_003","message":"Operação já em andamento"}`, rec.Body.String())
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusBadGateway, StatusFor(ErrFacebookTokenExchange))
	assert.Equal(t, http.StatusNotImplemented, StatusFor(ErrIntegrationNotSupported))
	assert.Equal(t, http.StatusInternalServerError, StatusFor("XXX_999"))
}

func TestFromError(t *testing.T) {
	assert.Equal(t, APIError{Code: ErrInternalServer, Message: "Erro desconhecido"}, FromError(nil, ErrInvalidRequest))
	assert.Equal(t, APIError{Code: ErrInvalidRequest, Message: "boom"}, FromError(errors.New("boom"), ErrInvalidRequest))
}
