package handlers

import (
	"food-rescue-dashboard/internal/api/dto"
	"food-rescue-dashboard/internal/platform/obs"
	"food-rescue-dashboard/internal/ports"
	"net/http"
	"strconv"

	"go.uber.org/zap"
)

const (
	defaultImportsLimit = 20
	maxImportsLimit     = 200
)

type ImportsHandler struct {
	Repo ports.ImportLogRepository
}

// List returns the most recent uploads, newest first.
func (h *ImportsHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := defaultImportsLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxImportsLimit {
			writeError(w, r, http.StatusBadRequest, "limit must be between 1 and 200")
			return
		}
		limit = n
	}

	recs, err := h.Repo.ListImports(r.Context(), limit)
	if err != nil {
		zap.L().Error("list imports failed",
			zap.String("req_id", obs.RequestID(r.Context())),
			zap.Error(err),
		)
		writeError(w, r, http.StatusInternalServerError, "failed to list imports")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.NewListImportsResponse(recs))
}
