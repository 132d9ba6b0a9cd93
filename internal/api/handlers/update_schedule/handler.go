package update_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/fieldmax/booking-service/internal/api/handlers"
	"github.com/fieldmax/booking-service/internal/api/middleware"
	venuesService "github.com/fieldmax/booking-service/internal/service/venues"
	"github.com/fieldmax/booking-service/internal/service/venues/models"
)

const (
	msgInvalidVenueID     = "некорректный ID комплекса"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgVenueNotFound      = "комплекс не найден"
	msgAccessDenied       = "доступ только для владельца комплекса"
	msgInvalidHours       = "время открытия должно быть раньше времени закрытия"
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

// Handle PUT /api/v1/venues/{venueId}/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())

	vars := mux.Vars(r)
	venueID, err := strconv.ParseInt(vars["venueId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /venues/{id}/schedule - Invalid venue ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVenueID)
		return
	}

	var req models.UpdateScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /venues/{id}/schedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.UserID = userID

	result, err := h.service.UpdateSchedule(r.Context(), venueID, &req)
	if err != nil {
		switch {
		case errors.Is(err, venuesService.ErrVenueNotFound):
			h.logger.Warn("PUT /venues/{id}/schedule - Venue not found: venue_id=%d", venueID)
			handlers.RespondNotFound(w, msgVenueNotFound)

		case errors.Is(err, venuesService.ErrAccessDenied):
			h.logger.Warn("PUT /venues/{id}/schedule - Access denied: venue_id=%d, user_id=%d", venueID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, venuesService.ErrInvalidHours):
			h.logger.Warn("PUT /venues/{id}/schedule - Invalid hours: venue_id=%d", venueID)
			handlers.RespondBadRequest(w, msgInvalidHours)

		case errors.Is(err, venuesService.ErrInvalidInput):
			h.logger.Warn("PUT /venues/{id}/schedule - Invalid input: venue_id=%d, error=%v", venueID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("PUT /venues/{id}/schedule - Failed to update schedule: venue_id=%d, error=%v", venueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /venues/{id}/schedule - Schedule updated successfully: venue_id=%d, user_id=%d", venueID, userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
