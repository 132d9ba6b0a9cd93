package list_pending_venues

import (
	"net/http"

	"github.com/fieldmax/booking-service/internal/api/handlers"
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

// Handle GET /api/v1/venues/pending
// Доступно только администратору (RequireAdmin в роутере)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListPending(r.Context())
	if err != nil {
		h.logger.Error("GET /venues/pending - Failed to list venues: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /venues/pending - Venues retrieved successfully: count=%d", len(result.Venues))
	handlers.RespondJSON(w, http.StatusOK, result)
}
