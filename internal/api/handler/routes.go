package handler

import (
	"net/http"

	"github.com/vfg2006/ads-integration-api/internal/api/handler/router"
	"github.com/vfg2006/ads-integration-api/internal/usecases/connecting"
	"github.com/vfg2006/ads-integration-api/internal/usecases/integrations"
	"github.com/vfg2006/ads-integration-api/internal/usecases/syncing"
	"github.com/vfg2006/ads-integration-api/pkg/metrics"
	"github.com/vfg2006/ads-integration-api/pkg/middleware"
)

var userRoles = []func(http.Handler) http.Handler{
	middleware.RoleMiddleware(middleware.RoleAuthenticated, middleware.RoleService),
}

func Healthcheck(db Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
		},
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: metrics.Handler(),
		},
	}
}

// Integrations registra as rotas sob /v1/integrations/:provider. Hoje apenas o
// Facebook está implementado; os demais provedores recebem a resposta de não suportado.
func Integrations(connector connecting.Connector, dispatcher *integrations.Dispatcher, service syncing.Syncer) []router.Route {
	providerRoles := []func(http.Handler) http.Handler{
		middleware.RoleMiddleware(middleware.RoleAuthenticated, middleware.RoleService),
		SupportedProvider(dispatcher),
	}

	return []router.Route{
		{
			Path:        "/v1/integrations/:provider/connect",
			Method:      http.MethodPost,
			Handler:     ConnectProvider(dispatcher),
			Middlewares: userRoles,
		},
		{
			Path:        "/v1/integrations/:provider/login-url",
			Method:      http.MethodGet,
			Handler:     FacebookLoginURL(connector),
			Middlewares: providerRoles,
		},
		{
			Path:        "/v1/integrations/:provider/disconnect",
			Method:      http.MethodPost,
			Handler:     FacebookDisconnect(connector),
			Middlewares: providerRoles,
		},
		{
			Path:        "/v1/integrations/:provider/state",
			Method:      http.MethodGet,
			Handler:     FacebookState(service),
			Middlewares: providerRoles,
		},
		{
			Path:        "/v1/integrations/:provider/ad-accounts",
			Method:      http.MethodGet,
			Handler:     ListAdAccounts(service),
			Middlewares: providerRoles,
		},
		{
			Path:        "/v1/integrations/:provider/ad-accounts/sync",
			Method:      http.MethodPost,
			Handler:     SyncAdAccounts(service),
			Middlewares: providerRoles,
		},
		{
			Path:        "/v1/integrations/:provider/ad-accounts/select",
			Method:      http.MethodPut,
			Handler:     SelectAdAccounts(service),
			Middlewares: providerRoles,
		},
		{
			Path:        "/v1/integrations/:provider/ad-accounts/select",
			Method:      http.MethodDelete,
			Handler:     DeselectAdAccounts(service),
			Middlewares: providerRoles,
		},
		{
			Path:        "/v1/integrations/:provider/campaigns/sync",
			Method:      http.MethodPost,
			Handler:     SyncCampaigns(service),
			Middlewares: providerRoles,
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.ServiceOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.ServiceOnly()},
		},
	}
}
