package get_revenue

import (
	"errors"
	"net/http"

	"github.com/fieldmax/booking-service/internal/api/handlers"
	"github.com/fieldmax/booking-service/internal/api/middleware"
	dashboardService "github.com/fieldmax/booking-service/internal/service/dashboard"
)

const (
	msgInvalidPeriod = "некорректный период, ожидаются from и to в формате YYYY-MM-DD"
	msgInvalidQuery  = "некорректные параметры запроса"
	msgNoVenues      = "у владельца нет комплексов"
)

type Handler struct {
	service DashboardService
	logger  Logger
}

func NewHandler(service DashboardService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/dashboard/revenue
// Query params: from, to (required, YYYY-MM-DD), bucket (day|month, default day)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())
	isAdmin := middleware.IsAdmin(r.Context())

	serviceReq, err := ToServiceRequest(userID, isAdmin, r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /dashboard/revenue - Invalid period: user_id=%d, error=%v", userID, err)
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}

	result, err := h.service.GetRevenue(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, dashboardService.ErrNoVenues):
			h.logger.Warn("GET /dashboard/revenue - No venues: user_id=%d", userID)
			handlers.RespondNotFound(w, msgNoVenues)

		case errors.Is(err, dashboardService.ErrInvalidInput):
			h.logger.Warn("GET /dashboard/revenue - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidQuery)

		default:
			h.logger.Error("GET /dashboard/revenue - Failed to get revenue: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /dashboard/revenue - Revenue retrieved successfully: user_id=%d, buckets=%d",
		userID, len(result.Points))
	handlers.RespondJSON(w, http.StatusOK, result)
}
