package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-integration-api/internal/api/handler"
	"github.com/vfg2006/ads-integration-api/internal/config"
	"github.com/vfg2006/ads-integration-api/internal/domain"
	"github.com/vfg2006/ads-integration-api/internal/usecases/connecting"
	"github.com/vfg2006/ads-integration-api/internal/usecases/integrations"
	"github.com/vfg2006/ads-integration-api/internal/usecases/syncing"
	"github.com/vfg2006/ads-integration-api/pkg/apiErrors"
)

type fakeAuthenticator struct{}

func (fakeAuthenticator) ValidateToken(token string) (*domain.Claims, error) {
	switch token {
	case "user-token":
		return &domain.Claims{Role: "authenticated", RegisteredClaims: jwt.RegisteredClaims{Subject: "user-1"}}, nil
	case "service-token":
		return &domain.Claims{Role: "service_role", RegisteredClaims: jwt.RegisteredClaims{Subject: "service"}}, nil
	}
	return nil, errors.New("token inválido")
}

// fakeSyncer implementa apenas os métodos usados nos testes
type fakeSyncer struct {
	syncing.Syncer
	campaignIDs []string
	campaignRes domain.Result[*domain.CampaignSyncReport]
	stateRes    domain.Result[*domain.IntegrationState]
}

func (f *fakeSyncer) SyncSelectedAccounts(ctx context.Context, _ string, ids []string) domain.Result[*domain.CampaignSyncReport] {
	f.campaignIDs = ids
	if f.campaignRes.Success {
		domain.NotifySuccess(ctx, syncing.MsgCampaignsSynced)
	} else {
		domain.NotifyError(ctx, f.campaignRes.Message)
	}
	return f.campaignRes
}

func (f *fakeSyncer) State(_ context.Context, _ string) domain.Result[*domain.IntegrationState] {
	return f.stateRes
}

func (f *fakeSyncer) SyncAccounts(_ context.Context, _ string) domain.Result[[]*domain.AdAccount] {
	return domain.Ok([]*domain.AdAccount{})
}

type fakeConnector struct {
	connecting.Connector
	userID string
}

func (f *fakeConnector) Connect(_ context.Context, userID string, _ connecting.LoginInput) domain.Result[*domain.Integration] {
	f.userID = userID
	return domain.Ok(&domain.Integration{ID: "integration-1", UserID: userID, Provider: domain.ProviderFacebook})
}

type fakeCronJob struct {
	triggered int
}

func (f *fakeCronJob) TriggerManualSync() { f.triggered++ }

func (f *fakeCronJob) GetStatus() map[string]any { return map[string]any{"sync_enabled": true} }

type testServer struct {
	handler   http.Handler
	syncer    *fakeSyncer
	connector *fakeConnector
	cron      *fakeCronJob
}

func newTestServer() *testServer {
	syncer := &fakeSyncer{}
	connector := &fakeConnector{}
	cron := &fakeCronJob{}

	cfg := &config.Config{Server: config.Server{AllowedOrigins: []string{"http://localhost:3000"}}}
	h := NewHandler(cfg, Services{
		Authenticator: fakeAuthenticator{},
		Connector:     connector,
		Syncer:        syncer,
		Dispatcher:    integrations.NewDispatcher(integrations.NewFacebookHandler(connector, syncer)),
		CronJobs:      handler.CronJobServices{IntegrationSyncService: cron},
	})

	return &testServer{handler: h, syncer: syncer, connector: connector, cron: cron}
}

func (s *testServer) do(method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) handler.Response {
	t.Helper()

	var resp handler.Response
	require.NoError(t, jsoniter.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestHealthcheckIsPublic(t *testing.T) {
	s := newTestServer()

	rec := s.do(http.MethodGet, "/healthcheck", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Correlation-ID"))
}

func TestRoutesRequireToken(t *testing.T) {
	s := newTestServer()

	rec := s.do(http.MethodGet, "/v1/integrations/facebook/state", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = s.do(http.MethodGet, "/v1/integrations/facebook/state", "outro", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSyncCampaignsRoute(t *testing.T) {
	s := newTestServer()
	s.syncer.campaignRes = domain.Ok(&domain.CampaignSyncReport{Accounts: []domain.AccountSyncReport{{AccountID: "111", Campaigns: 1, Ads: 1}}})

	rec := s.do(http.MethodPost, "/v1/integrations/facebook/campaigns/sync", "user-token", `{"ids":["111","222"]}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"111", "222"}, s.syncer.campaignIDs)

	resp := decode(t, rec)
	assert.True(t, resp.Success)
	assert.Equal(t, []domain.Notification{{Level: domain.NotificationSuccess, Message: syncing.MsgCampaignsSynced}}, resp.Notifications)
}

func TestFailedResultUsesErrorStatus(t *testing.T) {
	s := newTestServer()
	s.syncer.campaignRes = domain.Fail[*domain.CampaignSyncReport](apiErrors.ErrOperationInProgress, syncing.MsgOperationInProgress)

	rec := s.do(http.MethodPost, "/v1/integrations/facebook/campaigns/sync", "user-token", `{"ids":["111"]}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
	resp := decode(t, rec)
	assert.False(t, resp.Success)
	assert.Equal(t, apiErrors.ErrOperationInProgress, resp.Code)
	assert.Equal(t, syncing.MsgOperationInProgress, resp.Message)
	assert.Len(t, resp.Notifications, 1)
}

func TestInvalidBody(t *testing.T) {
	s := newTestServer()

	rec := s.do(http.MethodPost, "/v1/integrations/facebook/campaigns/sync", "user-token", `{"ids":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, s.syncer.campaignIDs)
}

func TestUnsupportedProviders(t *testing.T) {
	s := newTestServer()

	rec := s.do(http.MethodGet, "/v1/integrations/google/state", "user-token", "")
	assert.Equal(t, http.StatusNotImplemented, rec.Code)
	assert.Equal(t, "Integração google ainda não suportada", decode(t, rec).Message)

	rec = s.do(http.MethodPost, "/v1/integrations/TikTok/connect", "user-token", `{"code":"abc"}`)
	assert.Equal(t, http.StatusNotImplemented, rec.Code)
	assert.Equal(t, "Integração tiktok ainda não suportada", decode(t, rec).Message)

	rec = s.do(http.MethodPost, "/v1/integrations/orkut/connect", "user-token", `{"code":"abc"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Integração desconhecida: orkut", decode(t, rec).Message)
}

func TestConnectFacebookRoute(t *testing.T) {
	s := newTestServer()

	rec := s.do(http.MethodPost, "/v1/integrations/facebook/connect", "user-token", `{"code":"abc"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user-1", s.connector.userID)
	assert.True(t, decode(t, rec).Success)
}

func TestCronRoutesAreServiceOnly(t *testing.T) {
	s := newTestServer()

	rec := s.do(http.MethodPost, "/v1/cron/integrations/run", "user-token", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, 0, s.cron.triggered)

	rec = s.do(http.MethodPost, "/v1/cron/integrations/run", "service-token", "")
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, 1, s.cron.triggered)

	rec = s.do(http.MethodPost, "/v1/cron/insights/run", "service-token", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodGet, "/v1/cron/status", "service-token", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "integrations")
}

func TestUnknownRoute(t *testing.T) {
	s := newTestServer()

	rec := s.do(http.MethodGet, "/v1/nada", "user-token", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
