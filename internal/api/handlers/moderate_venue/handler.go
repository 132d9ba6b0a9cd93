package moderate_venue

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/fieldmax/booking-service/internal/api/handlers"
	venuesService "github.com/fieldmax/booking-service/internal/service/venues"
	"github.com/fieldmax/booking-service/internal/service/venues/models"
)

const (
	msgInvalidVenueID     = "некорректный ID комплекса"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgVenueNotFound      = "комплекс не найден"
	msgCannotModerate     = "комплекс не ожидает модерации"
)

type Handler struct {
	service VenuesService
	logger  Logger
}

func NewHandler(service VenuesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/venues/{venueId}/moderate
// Доступно только администратору (RequireAdmin в роутере)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	venueID, err := strconv.ParseInt(vars["venueId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /venues/{id}/moderate - Invalid venue ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVenueID)
		return
	}

	var req models.ModerateVenueRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /venues/{id}/moderate - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Moderate(r.Context(), venueID, &req)
	if err != nil {
		switch {
		case errors.Is(err, venuesService.ErrVenueNotFound):
			h.logger.Warn("PATCH /venues/{id}/moderate - Venue not found: venue_id=%d", venueID)
			handlers.RespondNotFound(w, msgVenueNotFound)

		case errors.Is(err, venuesService.ErrCannotModerate):
			h.logger.Warn("PATCH /venues/{id}/moderate - Cannot moderate: venue_id=%d", venueID)
			handlers.RespondError(w, http.StatusConflict, msgCannotModerate)

		default:
			h.logger.Error("PATCH /venues/{id}/moderate - Failed to moderate venue: venue_id=%d, error=%v", venueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /venues/{id}/moderate - Venue moderated successfully: venue_id=%d, status=%s",
		venueID, result.Status)
	handlers.RespondJSON(w, http.StatusOK, result)
}
