package http

import (
	"net/http"
	"strconv"

	"github.com/artarona/WORK-PAGINAWEB-IA/internal/logger"
	"github.com/artarona/WORK-PAGINAWEB-IA/internal/utils"
	"github.com/artarona/WORK-PAGINAWEB-IA/models"
)

func (h *Handler) listProperties(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	list, err := h.services.Properties.Search(ctx, models.SearchFilter{})
	if err != nil {
		log.Err(err).Msg("catalog listing failed")
		utils.WriteJSON(w, models.ErrorResponse{Error: http.StatusText(http.StatusInternalServerError)}, statusFromError(err))
		return
	}

	utils.WriteJSON(w, list, http.StatusOK)
}

func (h *Handler) searchProperties(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	filter := filterFromQuery(r)

	list, err := h.services.Properties.Search(ctx, filter)
	if err != nil {
		log.Err(err).Msg("catalog search failed")
		utils.WriteJSON(w, models.ErrorResponse{Error: http.StatusText(http.StatusInternalServerError)}, statusFromError(err))
		return
	}

	utils.WriteJSON(w, list, http.StatusOK)
}

// filterFromQuery builds a catalog filter from the search query string. The
// parameter names match what the web front end sends. Non-numeric values for
// the numeric parameters are treated as absent.
func filterFromQuery(r *http.Request) models.SearchFilter {
	query := r.URL.Query()

	filter := models.SearchFilter{
		Operation:    query.Get("ope"),
		Type:         query.Get("tipo"),
		Neighborhood: query.Get("loc"),
	}

	if raw := query.Get("precio_max"); raw != "" {
		if maxPrice, err := strconv.ParseFloat(raw, 64); err == nil {
			filter.MaxPrice = &maxPrice
		}
	}
	if raw := query.Get("ambientes"); raw != "" {
		if minRooms, err := strconv.Atoi(raw); err == nil {
			filter.MinRooms = &minRooms
		}
	}

	return filter
}

func (h *Handler) filterOptions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	options, err := h.services.Properties.FilterOptions(ctx)
	if err != nil {
		log.Err(err).Msg("filter options lookup failed")
		utils.WriteJSON(w, models.ErrorResponse{Error: http.StatusText(http.StatusInternalServerError)}, statusFromError(err))
		return
	}

	utils.WriteJSON(w, options, http.StatusOK)
}

func (h *Handler) catalogStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	stats, err := h.services.Properties.Stats(ctx)
	if err != nil {
		log.Err(err).Msg("catalog stats lookup failed")
		utils.WriteJSON(w, models.ErrorResponse{Error: http.StatusText(http.StatusInternalServerError)}, statusFromError(err))
		return
	}

	utils.WriteJSON(w, stats, http.StatusOK)
}
