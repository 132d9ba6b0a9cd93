package submit_venue

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/fieldmax/booking-service/internal/api/handlers"
	"github.com/fieldmax/booking-service/internal/api/middleware"
	venuesService "github.com/fieldmax/booking-service/internal/service/venues"
)

const (
	msgInvalidVenueID = "некорректный ID комплекса"
	msgVenueNotFound  = "комплекс не найден"
	msgAccessDenied   = "доступ только для владельца комплекса"
	msgCannotSubmit   = "комплекс нельзя отправить на модерацию в текущем статусе"
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

// Handle POST /api/v1/venues/{venueId}/submit
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())

	vars := mux.Vars(r)
	venueID, err := strconv.ParseInt(vars["venueId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /venues/{id}/submit - Invalid venue ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVenueID)
		return
	}

	result, err := h.service.Submit(r.Context(), venueID, userID)
	if err != nil {
		switch {
		case errors.Is(err, venuesService.ErrVenueNotFound):
			h.logger.Warn("POST /venues/{id}/submit - Venue not found: venue_id=%d", venueID)
			handlers.RespondNotFound(w, msgVenueNotFound)

		case errors.Is(err, venuesService.ErrAccessDenied):
			h.logger.Warn("POST /venues/{id}/submit - Access denied: venue_id=%d, user_id=%d", venueID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, venuesService.ErrCannotSubmit):
			h.logger.Warn("POST /venues/{id}/submit - Cannot submit: venue_id=%d", venueID)
			handlers.RespondError(w, http.StatusConflict, msgCannotSubmit)

		default:
			h.logger.Error("POST /venues/{id}/submit - Failed to submit venue: venue_id=%d, error=%v", venueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /venues/{id}/submit - Venue submitted successfully: venue_id=%d, user_id=%d", venueID, userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
