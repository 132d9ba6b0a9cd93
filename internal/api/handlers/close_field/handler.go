package close_field

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
	msgInvalidFieldID     = "некорректный ID площадки"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgFieldNotFound      = "площадка не найдена"
	msgAccessDenied       = "доступ только для владельца комплекса"
)

// CloseFieldRequest HTTP request model
type CloseFieldRequest struct {
	Closed bool `json:"closed"`
}

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

// Handle PATCH /api/v1/fields/{fieldId}/close
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())

	vars := mux.Vars(r)
	fieldID, err := strconv.ParseInt(vars["fieldId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /fields/{id}/close - Invalid field ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFieldID)
		return
	}

	var req CloseFieldRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /fields/{id}/close - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq := &models.CloseFieldRequest{
		UserID: userID,
		Closed: req.Closed,
	}

	if err := h.service.CloseField(r.Context(), fieldID, serviceReq); err != nil {
		switch {
		case errors.Is(err, venuesService.ErrFieldNotFound):
			h.logger.Warn("PATCH /fields/{id}/close - Field not found: field_id=%d", fieldID)
			handlers.RespondNotFound(w, msgFieldNotFound)

		case errors.Is(err, venuesService.ErrVenueNotFound):
			h.logger.Warn("PATCH /fields/{id}/close - Venue not found: field_id=%d", fieldID)
			handlers.RespondNotFound(w, msgFieldNotFound)

		case errors.Is(err, venuesService.ErrAccessDenied):
			h.logger.Warn("PATCH /fields/{id}/close - Access denied: field_id=%d, user_id=%d", fieldID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("PATCH /fields/{id}/close - Failed to close field: field_id=%d, error=%v", fieldID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /fields/{id}/close - Field updated successfully: field_id=%d, closed=%t", fieldID, req.Closed)
	w.WriteHeader(http.StatusNoContent)
}
