package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/artarona/WORK-PAGINAWEB-IA/internal/logger"
	"github.com/artarona/WORK-PAGINAWEB-IA/internal/service"
	"github.com/artarona/WORK-PAGINAWEB-IA/internal/utils"
	"github.com/artarona/WORK-PAGINAWEB-IA/models"
)

// chatErrorMessage is the generic Spanish reply the front end shows when the
// assistant pipeline fails for any reason other than bad input.
const chatErrorMessage = "Ocurrió un error procesando tu consulta."

func (h *Handler) chat(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	resp, err := h.services.Chat.Chat(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyMessage):
			log.Err(err).Msg("empty chat message")
			utils.WriteJSON(w, models.ErrorResponse{Error: "El mensaje no puede estar vacío"}, http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during chat processing")
			utils.WriteJSON(w, models.ErrorResponse{Error: chatErrorMessage}, http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}
