package controllers

import (
	"net/http"

	"github.com/rajuvisuals/payments-backend/api/responses"
	"github.com/rajuvisuals/payments-backend/pkg/config"
	"github.com/rajuvisuals/payments-backend/pkg/firestore"
)

// Health reports service liveness and whether the document store answers.
// The service stays up without a store, so "not connected" is a 200.
func Health(cfg *config.Config, store firestore.Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		storeStatus := "not connected"
		if store != nil && store.Ping(r.Context()) == nil {
			storeStatus = "connected"
		}
		responses.WriteJSON(w, http.StatusOK, map[string]string{
			"status":  "ok",
			"service": cfg.App.ServiceName,
			"store":   storeStatus,
		})
	}
}
