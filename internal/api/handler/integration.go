package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/ads-integration-api/internal/domain"
	"github.com/vfg2006/ads-integration-api/internal/usecases/connecting"
	"github.com/vfg2006/ads-integration-api/internal/usecases/integrations"
	"github.com/vfg2006/ads-integration-api/internal/usecases/syncing"
	"github.com/vfg2006/ads-integration-api/pkg/log"
)

// FacebookLoginURL devolve a URL do diálogo OAuth e o state gerado para esta tentativa
func FacebookLoginURL(service connecting.Connector) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, notifications, _, ok := requestContext(w, r)
		if !ok {
			return
		}

		writeResult(w, r, service.LoginURL(ctx), notifications)
	})
}

// ConnectProvider despacha a conexão pelo id do provedor na URL. O corpo é o
// resultado do FB.login ({status, authResponse}) ou o {code} do redirect OAuth.
func ConnectProvider(dispatcher *integrations.Dispatcher) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, notifications, userID, ok := requestContext(w, r)
		if !ok {
			return
		}

		var in connecting.LoginInput
		if !decodeBody(w, r, &in) {
			return
		}

		provider := providerParam(r)
		log.ForContext(ctx).WithFields(log.Fields{
			"user_id":  userID,
			"provider": provider,
		}).Info("INIT - ConnectProvider")

		writeResult(w, r, dispatcher.Connect(ctx, provider, userID, in), notifications)
	})
}

// SupportedProvider barra as rotas de provedores ainda não implementados
func SupportedProvider(dispatcher *integrations.Dispatcher) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, notifications := domain.WithNotifications(r.Context())

			res := dispatcher.Supported(ctx, providerParam(r))
			if !res.Success {
				writeResult(w, r, res, notifications)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func providerParam(r *http.Request) string {
	return httprouter.ParamsFromContext(r.Context()).ByName("provider")
}

func FacebookDisconnect(service connecting.Connector) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, notifications, userID, ok := requestContext(w, r)
		if !ok {
			return
		}

		writeResult(w, r, service.Disconnect(ctx, userID), notifications)
	})
}

// FacebookState devolve integrações, contas e as flags de operação em andamento
func FacebookState(service syncing.Syncer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, notifications, userID, ok := requestContext(w, r)
		if !ok {
			return
		}

		writeResult(w, r, service.State(ctx, userID), notifications)
	})
}
