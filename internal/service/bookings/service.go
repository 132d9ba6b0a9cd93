package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/fieldmax/booking-service/internal/domain"
	bookingRepo "github.com/fieldmax/booking-service/internal/infra/storage/booking"
	venueRepo "github.com/fieldmax/booking-service/internal/infra/storage/venue"
	"github.com/fieldmax/booking-service/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo  BookingRepository
	fieldRepo    FieldRepository
	venueRepo    VenueRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	fieldRepo FieldRepository,
	venueRepo VenueRepository,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		fieldRepo:    fieldRepo,
		venueRepo:    venueRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetByID получает бронирование по ID
// Проверяет права доступа - пользователь может видеть только своё бронирование
// или если он владелец комплекса, которому принадлежит площадка
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, userID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	// Проверяем права доступа
	if err := s.checkUserAccess(ctx, booking, userID); err != nil {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", userID, id)
		return nil, err
	}

	s.logger.Info("GetByID: successfully fetched booking id=%d", id)
	return models.FromDomainBooking(booking), nil
}

// GetUserBookings получает историю бронирований пользователя с пагинацией
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%d", req.UserID)

	page, err := s.bookingRepo.ListByUser(ctx, req.UserID, req.Page)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: successfully fetched %d bookings for user=%d", len(page.Bookings), req.UserID)
	return models.FromDomainBookingPage(req.Page.Mode, page), nil
}

// GetVenueBookings получает бронирования комплекса с фильтрацией и пагинацией
// Доступно только владельцу комплекса
//
// Примеры использования:
// - Все бронирования: GetVenueBookings(ctx, &GetVenueBookingsRequest{VenueID: 1, UserID: 2})
// - Бронирования за период: указать StartDate и EndDate
// - Только подтвержденные: указать Status = "CONFIRMED"
func (s *Service) GetVenueBookings(ctx context.Context, req *models.GetVenueBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetVenueBookings: fetching bookings for venue=%d, user=%d", req.VenueID, req.UserID)

	// Проверяем права владельца
	if err := s.checkVenueOwner(ctx, req.VenueID, req.UserID); err != nil {
		return nil, err
	}

	// Конвертируем request в domain фильтр
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetVenueBookings: invalid filter for venue=%d: %v", req.VenueID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	page, err := s.bookingRepo.ListByVenue(ctx, filter, req.Page)
	if err != nil {
		s.logger.Error("GetVenueBookings: repository error for venue=%d: %v", req.VenueID, err)
		return nil, fmt.Errorf("%w: GetVenueBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetVenueBookings: successfully fetched %d bookings for venue=%d", len(page.Bookings), req.VenueID)
	return models.FromDomainBookingPage(req.Page.Mode, page), nil
}

// Cancel отменяет бронирование
// Пользователь может отменить только своё бронирование,
// владелец комплекса - любое бронирование своих площадок
func (s *Service) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking id=%d by user=%d", bookingID, req.UserID)

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	// Проверяем, можно ли отменить бронирование
	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", bookingID, booking.Status)
		return ErrCannotCancel
	}

	// Проверяем права доступа
	if err := s.checkUserAccess(ctx, booking, req.UserID); err != nil {
		s.logger.Warn("Cancel: access denied for user=%d to cancel booking id=%d", req.UserID, bookingID)
		return err
	}

	if err := s.bookingRepo.Cancel(ctx, bookingID, req.CancellationReason); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found during cancellation", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d", bookingID)
	return nil
}

// Complete отмечает бронирование завершённым после окончания слота
// Доступно только владельцу комплекса
func (s *Service) Complete(ctx context.Context, bookingID int64, req *models.CompleteBookingRequest) error {
	s.logger.Info("Complete: completing booking id=%d by user=%d", bookingID, req.UserID)

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Complete: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Complete: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Complete - repository error: %v", ErrInternal, err)
	}

	// Завершать бронирование может только владелец комплекса
	if err := s.checkFieldOwner(ctx, booking.FieldID, req.UserID); err != nil {
		s.logger.Warn("Complete: access denied for user=%d to complete booking id=%d", req.UserID, bookingID)
		return err
	}

	if !booking.CanBeCompleted(s.timeProvider.Now()) {
		s.logger.Warn("Complete: booking id=%d cannot be completed, status=%s", bookingID, booking.Status)
		return ErrCannotComplete
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, domain.StatusCompleted); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Complete: booking id=%d not found during update", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Complete: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Complete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Complete: successfully completed booking id=%d", bookingID)
	return nil
}

// Вспомогательные методы

// checkUserAccess проверяет, что пользователь имеет доступ к бронированию
// Пользователь может видеть своё бронирование или если он владелец комплекса
func (s *Service) checkUserAccess(ctx context.Context, booking *domain.Booking, userID int64) error {
	// Если пользователь владелец бронирования - доступ разрешён
	if booking.UserID == userID {
		return nil
	}

	if err := s.checkFieldOwner(ctx, booking.FieldID, userID); err != nil {
		return ErrAccessDenied
	}

	return nil
}

// checkFieldOwner проверяет, что пользователь владеет комплексом площадки
func (s *Service) checkFieldOwner(ctx context.Context, fieldID int64, userID int64) error {
	field, err := s.fieldRepo.GetByID(ctx, fieldID)
	if err != nil {
		s.logger.Error("checkFieldOwner: failed to get field id=%d: %v", fieldID, err)
		return fmt.Errorf("%w: checkFieldOwner - repository error: %v", ErrInternal, err)
	}

	return s.checkVenueOwner(ctx, field.VenueID, userID)
}

// checkVenueOwner проверяет, что пользователь является владельцем комплекса
func (s *Service) checkVenueOwner(ctx context.Context, venueID int64, userID int64) error {
	venue, err := s.venueRepo.GetByID(ctx, venueID)
	if err != nil {
		if errors.Is(err, venueRepo.ErrVenueNotFound) {
			s.logger.Warn("checkVenueOwner: venue id=%d not found", venueID)
			return ErrVenueNotFound
		}
		s.logger.Error("checkVenueOwner: failed to get venue id=%d: %v", venueID, err)
		return fmt.Errorf("%w: checkVenueOwner - repository error: %v", ErrInternal, err)
	}

	if venue.OwnerID != userID {
		s.logger.Warn("checkVenueOwner: user=%d is not the owner of venue=%d", userID, venueID)
		return ErrAccessDenied
	}

	return nil
}
