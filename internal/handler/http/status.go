package http

import (
	"net/http"

	"github.com/artarona/WORK-PAGINAWEB-IA/internal/logger"
	"github.com/artarona/WORK-PAGINAWEB-IA/internal/utils"
	"github.com/artarona/WORK-PAGINAWEB-IA/models"
)

func (h *Handler) status(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.Status.Status(r.Context()), http.StatusOK)
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	health, err := h.services.Status.Health(ctx)
	if err != nil {
		log.Err(err).Msg("health probe failed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "unhealthy"}, http.StatusServiceUnavailable)
		return
	}

	utils.WriteJSON(w, health, http.StatusOK)
}
