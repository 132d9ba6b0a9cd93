package create_schedule_override

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

// Handle POST /api/v1/venues/{venueId}/schedule/overrides
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())

	vars := mux.Vars(r)
	venueID, err := strconv.ParseInt(vars["venueId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /venues/{id}/schedule/overrides - Invalid venue ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVenueID)
		return
	}

	var req models.CreateOverrideRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /venues/{id}/schedule/overrides - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.UserID = userID

	result, err := h.service.CreateOverride(r.Context(), venueID, &req)
	if err != nil {
		switch {
		case errors.Is(err, venuesService.ErrVenueNotFound):
			h.logger.Warn("POST /venues/{id}/schedule/overrides - Venue not found: venue_id=%d", venueID)
			handlers.RespondNotFound(w, msgVenueNotFound)

		case errors.Is(err, venuesService.ErrAccessDenied):
			h.logger.Warn("POST /venues/{id}/schedule/overrides - Access denied: venue_id=%d, user_id=%d", venueID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, venuesService.ErrInvalidHours):
			h.logger.Warn("POST /venues/{id}/schedule/overrides - Invalid hours: venue_id=%d", venueID)
			handlers.RespondBadRequest(w, msgInvalidHours)

		case errors.Is(err, venuesService.ErrInvalidInput):
			h.logger.Warn("POST /venues/{id}/schedule/overrides - Invalid input: venue_id=%d, error=%v", venueID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /venues/{id}/schedule/overrides - Failed to create override: venue_id=%d, error=%v", venueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /venues/{id}/schedule/overrides - Override created successfully: venue_id=%d, date=%s",
		venueID, result.Date)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
