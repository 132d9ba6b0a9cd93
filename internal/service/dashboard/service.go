package dashboard

import (
	"context"
	"fmt"

	"github.com/fieldmax/booking-service/internal/domain"
	"github.com/fieldmax/booking-service/internal/service/dashboard/models"
)

// Service сервис дашборда владельца: агрегация выручки по бронированиям
type Service struct {
	bookingRepo BookingRepository
	venueRepo   VenueRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса дашборда
func NewService(
	bookingRepo BookingRepository,
	venueRepo VenueRepository,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		venueRepo:   venueRepo,
		logger:      logger,
	}
}

// GetRevenue возвращает временной ряд выручки за период
// Владелец видит только свои комплексы, администратор - все
func (s *Service) GetRevenue(ctx context.Context, req *models.GetRevenueRequest) (*models.RevenueResponse, error) {
	s.logger.Info("GetRevenue: user=%d, admin=%t, period=%s to %s, bucket=%s",
		req.UserID, req.IsAdmin, req.From.Format(domain.DateFormat), req.To.Format(domain.DateFormat), req.Bucket)

	if err := validateRequest(req); err != nil {
		s.logger.Warn("GetRevenue: validation failed: %v", err)
		return nil, err
	}

	filter := domain.RevenueFilter{
		From:   req.From,
		To:     req.To,
		Bucket: req.Bucket,
	}

	// Владелец видит только свои комплексы
	if !req.IsAdmin {
		venueIDs, err := s.venueRepo.GetIDsByOwner(ctx, req.UserID)
		if err != nil {
			s.logger.Error("GetRevenue: failed to get venues for owner=%d: %v", req.UserID, err)
			return nil, fmt.Errorf("%w: GetRevenue - repository error: %v", ErrInternal, err)
		}
		if len(venueIDs) == 0 {
			s.logger.Warn("GetRevenue: owner=%d has no venues", req.UserID)
			return nil, ErrNoVenues
		}
		filter.VenueIDs = venueIDs
	}

	rows, err := s.bookingRepo.Revenue(ctx, filter)
	if err != nil {
		s.logger.Error("GetRevenue: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetRevenue - repository error: %v", ErrInternal, err)
	}

	resp := models.FromDomainRevenueRows(req, rows)

	s.logger.Info("GetRevenue: %d buckets, total realized %s for user=%d",
		len(resp.Points), resp.TotalRealized, req.UserID)
	return resp, nil
}

// validateRequest валидирует параметры запроса выручки
func validateRequest(req *models.GetRevenueRequest) error {
	if req.From.IsZero() || req.To.IsZero() {
		return fmt.Errorf("%w: from and to are required", ErrInvalidInput)
	}
	if req.To.Before(req.From) {
		return fmt.Errorf("%w: to must not be before from", ErrInvalidInput)
	}
	if req.Bucket != domain.BucketDay && req.Bucket != domain.BucketMonth {
		return fmt.Errorf("%w: bucket must be day or month", ErrInvalidInput)
	}
	return nil
}
