package handler

import (
	"net/http"

	"github.com/vfg2006/ads-integration-api/internal/domain"
	"github.com/vfg2006/ads-integration-api/internal/usecases/syncing"
	"github.com/vfg2006/ads-integration-api/pkg/log"
)

// SyncCampaigns marca as contas como ativas e sincroniza suas campanhas e anúncios
func SyncCampaigns(service syncing.Syncer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, notifications, userID, ok := requestContext(w, r)
		if !ok {
			return
		}

		var req domain.SelectAdAccountsRequest
		if !decodeBody(w, r, &req) {
			return
		}

		log.ForContext(ctx).WithFields(log.Fields{
			"user_id":  userID,
			"accounts": len(req.IDs),
		}).Info("INIT - SyncCampaigns")

		writeResult(w, r, service.SyncSelectedAccounts(ctx, userID, req.IDs), notifications)
	})
}
