package handlers

import (
	"food-rescue-dashboard/internal/api/dto"
	"food-rescue-dashboard/internal/platform/obs"
	"food-rescue-dashboard/internal/ports"
	"food-rescue-dashboard/internal/services"
	"net/http"

	"go.uber.org/zap"
)

type StatsHandler struct {
	Repo ports.TransactionRepository
}

func (h *StatsHandler) Inventory(w http.ResponseWriter, r *http.Request) {
	summary, err := services.SummarizeInventory(r.Context(), h.Repo)
	if err != nil {
		zap.L().Error("inventory stats failed",
			zap.String("req_id", obs.RequestID(r.Context())),
			zap.Error(err),
		)
		writeError(w, r, http.StatusInternalServerError, "failed to summarize inventory")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.NewInventoryStatsResponse(*summary))
}
