package fbclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	fbdomain "github.com/vfg2006/ads-integration-api/infrastructure/integrator/facebook/domain"
	"github.com/vfg2006/ads-integration-api/internal/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *FacebookClient {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return &FacebookClient{
		Cfg: config.Facebook{
			URL:            server.URL + "/v22.0",
			AppID:          "app-id",
			AppSecret:      "app-secret",
			RedirectURI:    "http://localhost/callback",
			RequestTimeout: 2 * time.Second,
		},
		HTTPClient: server.Client(),
	}
}

func TestGetLongLivedToken(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantErr     bool
		wantMessage string
		wantToken   string
	}{
		{
			name:      "status 200 devolve o token de longa duração",
			status:    http.StatusOK,
			body:      `{"access_token":"long-token","token_type":"bearer","expires_in":5183944}`,
			wantToken: "long-token",
		},
		{
			name:        "status 400 devolve a mensagem estruturada do provedor",
			status:      http.StatusBadRequest,
			body:        `{"error":{"message":"Error validating access token","type":"OAuthException","code":190}}`,
			wantErr:     true,
			wantMessage: "Error validating access token",
		},
		{
			name:    "status 500 sem corpo estruturado",
			status:  http.StatusInternalServerError,
			body:    `oops`,
			wantErr: true,
		},
		{
			name:    "status 200 com token vazio é erro",
			status:  http.StatusOK,
			body:    `{"access_token":"","token_type":"bearer","expires_in":10}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/v22.0/oauth/access_token", r.URL.Path)
				q := r.URL.Query()
				assert.Equal(t, "fb_exchange_token", q.Get("grant_type"))
				assert.Equal(t, "app-id", q.Get("client_id"))
				assert.Equal(t, "app-secret", q.Get("client_secret"))
				assert.Equal(t, "short-token", q.Get("fb_exchange_token"))

				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			resp, err := client.GetLongLivedToken(context.Background(), "short-token")
			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, resp)
				if tt.wantMessage != "" {
					var graphErr *fbdomain.GraphError
					require.True(t, errors.As(err, &graphErr))
					assert.Equal(t, tt.wantMessage, graphErr.Message())
					assert.True(t, graphErr.IsTokenExpired())
				}
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, resp.AccessToken)
			assert.Equal(t, int64(5183944), resp.ExpiresIn)
		})
	}
}

func TestGetLongLivedToken_EmptyToken(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("nenhuma requisição deveria ser feita")
	})

	_, err := client.GetLongLivedToken(context.Background(), "")
	assert.ErrorIs(t, err, ErrEmptyToken)
}

func TestGetLongLivedToken_Timeout(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
	})
	client.Cfg.RequestTimeout = 50 * time.Millisecond

	_, err := client.GetLongLivedToken(context.Background(), "short-token")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestMeAdAccounts(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v22.0/me/adaccounts", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "token", q.Get("access_token"))
		assert.Equal(t, "25", q.Get("limit"))
		assert.Equal(t, AdAccountFields, q.Get("fields"))
		assert.Equal(t, "cursor-1", q.Get("after"))

		_, _ = w.Write([]byte(`{
			"data":[{"id":"act_111","account_id":"111","name":"Loja A","account_status":1,"amount_spent":"1520","business":{"id":"b1","name":"BM"}}],
			"paging":{"cursors":{"before":"a","after":"b"}}
		}`))
	})

	page, err := client.MeAdAccounts(context.Background(), "token", "cursor-1")
	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	assert.Equal(t, "111", page.Data[0].AccountID)
	assert.Equal(t, "b1", page.Data[0].Business.ID)
	assert.Equal(t, "b", page.Paging.Cursors.After)
	assert.Empty(t, page.Paging.NextCursor())
}

func TestMeAdAccounts_MissingData(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	})

	_, err := client.MeAdAccounts(context.Background(), "token", "")
	assert.ErrorIs(t, err, ErrNoData)
}

func TestGetCampaignsByAccountID(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v22.0/act_111/campaigns", r.URL.Path)
		assert.Equal(t, "100", r.URL.Query().Get("limit"))
		assert.Empty(t, r.URL.Query().Get("after"))

		_, _ = w.Write([]byte(`{"data":[{"id":"c1","name":"Campanha","effective_status":"PAUSED","ads":{"data":[{"id":"ad1"},{"id":"ad2"}]}}]}`))
	})

	page, err := client.GetCampaignsByAccountID(context.Background(), "token", "act_111", "")
	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	assert.Equal(t, []string{"ad1", "ad2"}, page.Data[0].AdIDs())
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "60 dias, 0 horas e 0 minutos", FormatDuration(60*24*60*60))
	assert.Equal(t, "0 dias, 1 horas e 30 minutos", FormatDuration(90*60))
}
