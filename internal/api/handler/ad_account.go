package handler

import (
	"net/http"

	"github.com/vfg2006/ads-integration-api/internal/domain"
	"github.com/vfg2006/ads-integration-api/internal/usecases/syncing"
	"github.com/vfg2006/ads-integration-api/pkg/log"
)

func SyncAdAccounts(service syncing.Syncer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, notifications, userID, ok := requestContext(w, r)
		if !ok {
			return
		}

		log.ForContext(ctx).WithField("user_id", userID).Info("INIT - SyncAdAccounts")

		writeResult(w, r, service.SyncAccounts(ctx, userID), notifications)
	})
}

func ListAdAccounts(service syncing.Syncer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, notifications, userID, ok := requestContext(w, r)
		if !ok {
			return
		}

		writeResult(w, r, service.ListAdAccounts(ctx, userID), notifications)
	})
}

// SelectAdAccounts liga o is_active das contas informadas, sem sincronizar campanhas
func SelectAdAccounts(service syncing.Syncer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, notifications, userID, ok := requestContext(w, r)
		if !ok {
			return
		}

		var req domain.SelectAdAccountsRequest
		if !decodeBody(w, r, &req) {
			return
		}

		writeResult(w, r, service.SelectAccounts(ctx, userID, req.IDs), notifications)
	})
}

func DeselectAdAccounts(service syncing.Syncer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, notifications, userID, ok := requestContext(w, r)
		if !ok {
			return
		}

		var req domain.SelectAdAccountsRequest
		if !decodeBody(w, r, &req) {
			return
		}

		writeResult(w, r, service.DeselectAccounts(ctx, userID, req.IDs), notifications)
	})
}
