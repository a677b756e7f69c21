package handlers

import (
	"food-rescue-dashboard/internal/api/dto"
	"food-rescue-dashboard/internal/platform/obs"
	"food-rescue-dashboard/internal/ports"
	"food-rescue-dashboard/internal/services"
	"net/http"

	"go.uber.org/zap"
)

type ReconciliationHandler struct {
	Store ports.Store
}

// Get joins destinations, package items and transactions into per-household
// delivery totals. Nothing is cached; every call reads current storage.
func (h *ReconciliationHandler) Get(w http.ResponseWriter, r *http.Request) {
	rec, err := services.Reconcile(r.Context(), h.Store)
	if err != nil {
		zap.L().Error("reconcile failed",
			zap.String("req_id", obs.RequestID(r.Context())),
			zap.Error(err),
		)
		writeJSON(w, r, http.StatusInternalServerError, dto.NewReconciliationError("failed to reconcile households"))
		return
	}

	writeJSON(w, r, http.StatusOK, dto.NewReconciliationResponse(*rec))
}
