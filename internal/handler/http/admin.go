package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/artarona/WORK-PAGINAWEB-IA/internal/logger"
	"github.com/artarona/WORK-PAGINAWEB-IA/internal/service"
	"github.com/artarona/WORK-PAGINAWEB-IA/internal/utils"
	"github.com/artarona/WORK-PAGINAWEB-IA/models"
)

func (h *Handler) adminLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.AdminLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	token, err := h.services.Auth.AdminLogin(ctx, req.Token)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAdminDisabled):
			log.Err(err).Msg("admin access is disabled")
			utils.WriteJSON(w, models.ErrorResponse{Error: "El acceso de administración está deshabilitado"}, http.StatusServiceUnavailable)
			return
		case errors.Is(err, service.ErrWrongAdminToken):
			log.Err(err).Msg("wrong admin token")
			utils.WriteJSON(w, models.ErrorResponse{Error: "Token de administración inválido"}, http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during admin login")
			utils.WriteJSON(w, models.ErrorResponse{Error: http.StatusText(http.StatusInternalServerError)}, http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, models.AdminLoginResponse{
		AccessToken: token.SignedString,
		TokenType:   "bearer",
	}, http.StatusOK)
}

func (h *Handler) listContacts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	contacts, err := h.services.Contacts.All(ctx)
	if err != nil {
		log.Err(err).Msg("contact listing failed")
		utils.WriteJSON(w, models.ErrorResponse{Error: http.StatusText(statusFromError(err))}, statusFromError(err))
		return
	}
	if contacts == nil {
		contacts = []models.Contact{}
	}

	utils.WriteJSON(w, models.ContactList{Total: len(contacts), Contacts: contacts}, http.StatusOK)
}

func (h *Handler) createContact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var contact models.Contact
	if err := json.NewDecoder(r.Body).Decode(&contact); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	saved, err := h.services.Contacts.Save(ctx, contact)
	if err != nil {
		log.Err(err).Msg("contact save failed")
		utils.WriteJSON(w, models.ErrorResponse{Error: http.StatusText(statusFromError(err))}, statusFromError(err))
		return
	}

	utils.WriteJSON(w, saved, http.StatusCreated)
}

func (h *Handler) getContact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	contact, err := h.services.Contacts.ByTimestamp(ctx, chi.URLParam(r, "timestamp"))
	if err != nil {
		log.Err(err).Msg("contact lookup failed")
		utils.WriteJSON(w, models.ErrorResponse{Error: http.StatusText(statusFromError(err))}, statusFromError(err))
		return
	}

	utils.WriteJSON(w, contact, http.StatusOK)
}

func (h *Handler) updateContact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var contact models.Contact
	if err := json.NewDecoder(r.Body).Decode(&contact); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	// the path parameter is authoritative over whatever the body carries
	contact.Timestamp = chi.URLParam(r, "timestamp")

	updated, err := h.services.Contacts.Update(ctx, contact)
	if err != nil {
		log.Err(err).Msg("contact update failed")
		utils.WriteJSON(w, models.ErrorResponse{Error: http.StatusText(statusFromError(err))}, statusFromError(err))
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteContact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := h.services.Contacts.Delete(ctx, chi.URLParam(r, "timestamp")); err != nil {
		log.Err(err).Msg("contact delete failed")
		utils.WriteJSON(w, models.ErrorResponse{Error: http.StatusText(statusFromError(err))}, statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) clearContacts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	deleted, err := h.services.Contacts.Clear(ctx)
	if err != nil {
		log.Err(err).Msg("contact clear failed")
		utils.WriteJSON(w, models.ErrorResponse{Error: http.StatusText(statusFromError(err))}, statusFromError(err))
		return
	}

	log.Info().Int("deleted", deleted).Msg("contact database cleared")

	utils.WriteJSON(w, models.ClearedResponse{Deleted: deleted}, http.StatusOK)
}

func (h *Handler) contactStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	stats, err := h.services.Contacts.Stats(ctx)
	if err != nil {
		log.Err(err).Msg("contact stats lookup failed")
		utils.WriteJSON(w, models.ErrorResponse{Error: http.StatusText(statusFromError(err))}, statusFromError(err))
		return
	}

	utils.WriteJSON(w, stats, http.StatusOK)
}

func (h *Handler) exportContacts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	workbook, err := h.services.Contacts.ExportXLSX(ctx)
	if err != nil {
		log.Err(err).Msg("contact export failed")
		utils.WriteJSON(w, models.ErrorResponse{Error: http.StatusText(statusFromError(err))}, statusFromError(err))
		return
	}

	filename := fmt.Sprintf("contactos_%s.xlsx", time.Now().UTC().Format("20060102"))

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(workbook)
}
