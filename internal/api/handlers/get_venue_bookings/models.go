package get_venue_bookings

import (
	"net/url"
	"time"

	getUserBookings "github.com/fieldmax/booking-service/internal/api/handlers/get_user_bookings"
	"github.com/fieldmax/booking-service/internal/domain"
	"github.com/fieldmax/booking-service/internal/service/bookings/models"
)

// ToServiceRequest собирает запрос сервиса из параметров URL и query
func ToServiceRequest(venueID, userID int64, query url.Values) (*models.GetVenueBookingsRequest, error) {
	page, err := getUserBookings.ParsePageRequest(query)
	if err != nil {
		return nil, err
	}

	req := &models.GetVenueBookingsRequest{
		UserID:  userID,
		VenueID: venueID,
		Page:    page,
	}

	if startStr := query.Get("startDate"); startStr != "" {
		start, err := time.Parse(domain.DateFormat, startStr)
		if err != nil {
			return nil, err
		}
		req.StartDate = &start
	}

	if endStr := query.Get("endDate"); endStr != "" {
		end, err := time.Parse(domain.DateFormat, endStr)
		if err != nil {
			return nil, err
		}
		req.EndDate = &end
	}

	if statusStr := query.Get("status"); statusStr != "" {
		req.Status = &statusStr
	}

	return req, nil
}
