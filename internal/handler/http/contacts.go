package http

import (
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"strings"

	"github.com/artarona/WORK-PAGINAWEB-IA/internal/logger"
	"github.com/artarona/WORK-PAGINAWEB-IA/internal/service"
	"github.com/artarona/WORK-PAGINAWEB-IA/internal/utils"
	"github.com/artarona/WORK-PAGINAWEB-IA/models"
)

// saveContact persists a lead captured by the public web form. The client
// address and user agent are stamped server-side so the form cannot spoof
// them.
func (h *Handler) saveContact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var contact models.Contact
	if err := json.NewDecoder(r.Body).Decode(&contact); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	contact.IPAddress = clientIP(r)
	contact.UserAgent = r.UserAgent()

	saved, err := h.services.Contacts.Save(ctx, contact)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid contact data provided")
			utils.WriteJSON(w, models.ErrorResponse{Error: "El nombre es obligatorio"}, http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrContactsUnavailable):
			log.Err(err).Msg("contact storage is not configured")
			utils.WriteJSON(w, models.ErrorResponse{Error: "El registro de contactos no está disponible"}, http.StatusServiceUnavailable)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during contact save")
			utils.WriteJSON(w, models.ErrorResponse{Error: http.StatusText(http.StatusInternalServerError)}, statusFromError(err))
			return
		}
	}

	utils.WriteJSON(w, models.SavedResponse{
		Message:   "Contacto guardado correctamente",
		Timestamp: saved.Timestamp,
	}, http.StatusOK)
}

// clientIP resolves the originating address, honouring the proxy header the
// hosting platform sets in front of the service.
func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		parts := strings.Split(forwarded, ",")
		return strings.TrimSpace(parts[0])
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
