package get_user_bookings

import (
	"net/http"

	"github.com/fieldmax/booking-service/internal/api/handlers"
	"github.com/fieldmax/booking-service/internal/api/middleware"
	"github.com/fieldmax/booking-service/internal/service/bookings/models"
)

const (
	msgInvalidPagination = "некорректные параметры пагинации: используйте page/limit или take/cursor"
)

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings
// Query params: page, limit (постраничный режим) или take, cursor (курсорный режим)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())

	page, err := ParsePageRequest(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /bookings - Invalid pagination: user_id=%d, error=%v", userID, err)
		handlers.RespondBadRequest(w, msgInvalidPagination)
		return
	}

	serviceReq := &models.GetUserBookingsRequest{
		UserID: userID,
		Page:   page,
	}

	result, err := h.service.GetUserBookings(r.Context(), serviceReq)
	if err != nil {
		h.logger.Error("GET /bookings - Failed to get bookings: user_id=%d, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /bookings - Bookings retrieved successfully: user_id=%d, count=%d", userID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
