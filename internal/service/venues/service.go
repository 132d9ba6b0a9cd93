package venues

import (
	"context"
	"errors"
	"fmt"

	"github.com/fieldmax/booking-service/internal/domain"
	fieldRepo "github.com/fieldmax/booking-service/internal/infra/storage/field"
	scheduleRepo "github.com/fieldmax/booking-service/internal/infra/storage/schedule"
	venueRepo "github.com/fieldmax/booking-service/internal/infra/storage/venue"
	"github.com/fieldmax/booking-service/internal/service/venues/models"
	"github.com/fieldmax/booking-service/pkg/types"
)

// Service сервис для работы с комплексами: модерация, расписания, закрытие площадок
type Service struct {
	venueRepo    VenueRepository
	fieldRepo    FieldRepository
	scheduleRepo ScheduleRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса комплексов
func NewService(
	venueRepo VenueRepository,
	fieldRepo FieldRepository,
	scheduleRepo ScheduleRepository,
	logger Logger,
) *Service {
	return &Service{
		venueRepo:    venueRepo,
		fieldRepo:    fieldRepo,
		scheduleRepo: scheduleRepo,
		logger:       logger,
	}
}

// Submit отправляет комплекс на модерацию
// Доступно только владельцу, комплекс должен быть в статусе DRAFT или REJECTED
func (s *Service) Submit(ctx context.Context, venueID int64, userID int64) (*models.VenueResponse, error) {
	s.logger.Info("Submit: submitting venue id=%d by user=%d", venueID, userID)

	venue, err := s.getOwnedVenue(ctx, venueID, userID)
	if err != nil {
		return nil, err
	}

	if !venue.CanBeSubmitted() {
		s.logger.Warn("Submit: venue id=%d cannot be submitted, status=%s", venueID, venue.Status)
		return nil, ErrCannotSubmit
	}

	if err := s.venueRepo.UpdateStatus(ctx, venueID, domain.VenuePending); err != nil {
		s.logger.Error("Submit: repository error for venue id=%d: %v", venueID, err)
		return nil, fmt.Errorf("%w: Submit - repository error: %v", ErrInternal, err)
	}

	venue.Status = domain.VenuePending
	s.logger.Info("Submit: venue id=%d submitted for moderation", venueID)
	return models.FromDomainVenue(venue), nil
}

// Moderate применяет решение модератора к комплексу
// Доступно только администратору, комплекс должен быть в статусе PENDING
func (s *Service) Moderate(ctx context.Context, venueID int64, req *models.ModerateVenueRequest) (*models.VenueResponse, error) {
	s.logger.Info("Moderate: moderating venue id=%d, approve=%t", venueID, req.Approve)

	venue, err := s.venueRepo.GetByID(ctx, venueID)
	if err != nil {
		if errors.Is(err, venueRepo.ErrVenueNotFound) {
			s.logger.Warn("Moderate: venue id=%d not found", venueID)
			return nil, ErrVenueNotFound
		}
		s.logger.Error("Moderate: repository error for venue id=%d: %v", venueID, err)
		return nil, fmt.Errorf("%w: Moderate - repository error: %v", ErrInternal, err)
	}

	if !venue.CanBeModerated() {
		s.logger.Warn("Moderate: venue id=%d is not pending, status=%s", venueID, venue.Status)
		return nil, ErrCannotModerate
	}

	newStatus := domain.VenueRejected
	if req.Approve {
		newStatus = domain.VenueApproved
	}

	if err := s.venueRepo.UpdateStatus(ctx, venueID, newStatus); err != nil {
		s.logger.Error("Moderate: repository error for venue id=%d: %v", venueID, err)
		return nil, fmt.Errorf("%w: Moderate - repository error: %v", ErrInternal, err)
	}

	venue.Status = newStatus
	s.logger.Info("Moderate: venue id=%d moderated to status=%s", venueID, newStatus)
	return models.FromDomainVenue(venue), nil
}

// ListPending возвращает комплексы, ожидающие модерации
// Доступно только администратору
func (s *Service) ListPending(ctx context.Context) (*models.VenueListResponse, error) {
	s.logger.Info("ListPending: fetching venues pending moderation")

	venues, err := s.venueRepo.ListByStatus(ctx, domain.VenuePending)
	if err != nil {
		s.logger.Error("ListPending: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListPending - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListPending: fetched %d venues", len(venues))
	return models.FromDomainVenueList(venues), nil
}

// GetSchedule возвращает недельное расписание комплекса
func (s *Service) GetSchedule(ctx context.Context, venueID int64) (*models.ScheduleResponse, error) {
	s.logger.Info("GetSchedule: fetching schedule for venue=%d", venueID)

	if _, err := s.venueRepo.GetByID(ctx, venueID); err != nil {
		if errors.Is(err, venueRepo.ErrVenueNotFound) {
			s.logger.Warn("GetSchedule: venue id=%d not found", venueID)
			return nil, ErrVenueNotFound
		}
		s.logger.Error("GetSchedule: repository error for venue id=%d: %v", venueID, err)
		return nil, fmt.Errorf("%w: GetSchedule - repository error: %v", ErrInternal, err)
	}

	schedules, err := s.scheduleRepo.ListWeekly(ctx, venueID)
	if err != nil {
		s.logger.Error("GetSchedule: repository error for venue id=%d: %v", venueID, err)
		return nil, fmt.Errorf("%w: GetSchedule - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSchedules(venueID, schedules), nil
}

// UpdateSchedule создает или обновляет недельное расписание на день недели
// Доступно только владельцу комплекса
func (s *Service) UpdateSchedule(ctx context.Context, venueID int64, req *models.UpdateScheduleRequest) (*models.ScheduleResponse, error) {
	s.logger.Info("UpdateSchedule: venue=%d, day=%d, hours=%s-%s by user=%d",
		venueID, req.DayOfWeek, req.OpenTime, req.CloseTime, req.UserID)

	if _, err := s.getOwnedVenue(ctx, venueID, req.UserID); err != nil {
		return nil, err
	}

	if req.DayOfWeek < 0 || req.DayOfWeek > 6 {
		s.logger.Warn("UpdateSchedule: invalid day of week %d for venue=%d", req.DayOfWeek, venueID)
		return nil, fmt.Errorf("%w: dayOfWeek must be in [0, 6]", ErrInvalidInput)
	}

	openTime, err := types.NewTimeStringFromString(req.OpenTime)
	if err != nil {
		s.logger.Warn("UpdateSchedule: invalid open time %q: %v", req.OpenTime, err)
		return nil, fmt.Errorf("%w: invalid openTime: %v", ErrInvalidInput, err)
	}

	closeTime, err := types.NewTimeStringFromString(req.CloseTime)
	if err != nil {
		s.logger.Warn("UpdateSchedule: invalid close time %q: %v", req.CloseTime, err)
		return nil, fmt.Errorf("%w: invalid closeTime: %v", ErrInvalidInput, err)
	}

	schedule := &domain.Schedule{
		VenueID:   venueID,
		DayOfWeek: req.DayOfWeek,
		OpenTime:  openTime,
		CloseTime: closeTime,
	}

	if _, err := s.scheduleRepo.UpsertWeekly(ctx, schedule); err != nil {
		if errors.Is(err, scheduleRepo.ErrInvalidHours) {
			s.logger.Warn("UpdateSchedule: invalid hours %s-%s for venue=%d", req.OpenTime, req.CloseTime, venueID)
			return nil, ErrInvalidHours
		}
		s.logger.Error("UpdateSchedule: repository error for venue id=%d: %v", venueID, err)
		return nil, fmt.Errorf("%w: UpdateSchedule - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateSchedule: schedule updated for venue=%d, day=%d", venueID, req.DayOfWeek)
	return s.GetSchedule(ctx, venueID)
}

// CreateOverride создает исключение из расписания на конкретную дату
// Доступно только владельцу комплекса
func (s *Service) CreateOverride(ctx context.Context, venueID int64, req *models.CreateOverrideRequest) (*models.OverrideResponse, error) {
	s.logger.Info("CreateOverride: venue=%d, date=%s, closed=%t by user=%d",
		venueID, req.Date, req.IsClosed, req.UserID)

	if _, err := s.getOwnedVenue(ctx, venueID, req.UserID); err != nil {
		return nil, err
	}

	override, err := req.ToDomainOverride(venueID)
	if err != nil {
		s.logger.Warn("CreateOverride: invalid request for venue=%d: %v", venueID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.scheduleRepo.CreateOverride(ctx, override)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrInvalidHours) {
			s.logger.Warn("CreateOverride: invalid hours for venue=%d on %s", venueID, req.Date)
			return nil, ErrInvalidHours
		}
		s.logger.Error("CreateOverride: repository error for venue id=%d: %v", venueID, err)
		return nil, fmt.Errorf("%w: CreateOverride - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateOverride: override created for venue=%d on %s", venueID, req.Date)
	return models.FromDomainOverride(created), nil
}

// CloseField временно закрывает или открывает площадку
// Доступно только владельцу комплекса
func (s *Service) CloseField(ctx context.Context, fieldID int64, req *models.CloseFieldRequest) error {
	s.logger.Info("CloseField: field=%d, closed=%t by user=%d", fieldID, req.Closed, req.UserID)

	field, err := s.fieldRepo.GetByID(ctx, fieldID)
	if err != nil {
		if errors.Is(err, fieldRepo.ErrFieldNotFound) {
			s.logger.Warn("CloseField: field id=%d not found", fieldID)
			return ErrFieldNotFound
		}
		s.logger.Error("CloseField: repository error for field id=%d: %v", fieldID, err)
		return fmt.Errorf("%w: CloseField - repository error: %v", ErrInternal, err)
	}

	if _, err := s.getOwnedVenue(ctx, field.VenueID, req.UserID); err != nil {
		return err
	}

	if err := s.fieldRepo.SetClosed(ctx, fieldID, req.Closed); err != nil {
		s.logger.Error("CloseField: repository error for field id=%d: %v", fieldID, err)
		return fmt.Errorf("%w: CloseField - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CloseField: field id=%d closed=%t", fieldID, req.Closed)
	return nil
}

// getOwnedVenue получает комплекс и проверяет, что пользователь его владелец
func (s *Service) getOwnedVenue(ctx context.Context, venueID int64, userID int64) (*domain.Venue, error) {
	venue, err := s.venueRepo.GetByID(ctx, venueID)
	if err != nil {
		if errors.Is(err, venueRepo.ErrVenueNotFound) {
			s.logger.Warn("getOwnedVenue: venue id=%d not found", venueID)
			return nil, ErrVenueNotFound
		}
		s.logger.Error("getOwnedVenue: repository error for venue id=%d: %v", venueID, err)
		return nil, fmt.Errorf("%w: getOwnedVenue - repository error: %v", ErrInternal, err)
	}

	if venue.OwnerID != userID {
		s.logger.Warn("getOwnedVenue: user=%d is not the owner of venue=%d", userID, venueID)
		return nil, ErrAccessDenied
	}

	return venue, nil
}
