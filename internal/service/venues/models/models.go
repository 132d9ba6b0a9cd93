package models

import (
	"errors"
	"time"

	"github.com/fieldmax/booking-service/internal/domain"
	"github.com/fieldmax/booking-service/pkg/ptr"
	"github.com/fieldmax/booking-service/pkg/types"
)

var (
	// ErrInvalidDecision возвращается при некорректном решении модерации
	ErrInvalidDecision = errors.New("invalid moderation decision")
)

// Request модели

// ModerateVenueRequest решение модератора по комплексу
type ModerateVenueRequest struct {
	Approve bool    `json:"approve"`
	Comment *string `json:"comment,omitempty"`
}

// UpdateScheduleRequest запрос на изменение недельного расписания
type UpdateScheduleRequest struct {
	UserID    int64
	DayOfWeek int    `json:"dayOfWeek"` // 0=воскресенье .. 6=суббота
	OpenTime  string `json:"openTime"`  // "08:00"
	CloseTime string `json:"closeTime"` // "22:00"
}

// CreateOverrideRequest запрос на исключение из расписания на дату
type CreateOverrideRequest struct {
	UserID    int64
	Date      string  `json:"date"` // "2025-10-15"
	IsClosed  bool    `json:"isClosed"`
	OpenTime  *string `json:"openTime,omitempty"`
	CloseTime *string `json:"closeTime,omitempty"`
}

// CloseFieldRequest запрос на временное закрытие площадки владельцем
type CloseFieldRequest struct {
	UserID int64
	Closed bool `json:"closed"`
}

// Response модели

// VenueResponse ответ с данными комплекса
type VenueResponse struct {
	ID      int64  `json:"id"`
	OwnerID int64  `json:"ownerId"`
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	Status  string `json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// VenueListResponse ответ со списком комплексов
type VenueListResponse struct {
	Venues []VenueResponse `json:"venues"`
}

// ScheduleDayResponse расписание на один день недели
type ScheduleDayResponse struct {
	DayOfWeek int    `json:"dayOfWeek"`
	OpenTime  string `json:"openTime"`
	CloseTime string `json:"closeTime"`
}

// ScheduleResponse недельное расписание комплекса
type ScheduleResponse struct {
	VenueID int64                 `json:"venueId"`
	Days    []ScheduleDayResponse `json:"days"`
}

// OverrideResponse исключение из расписания
type OverrideResponse struct {
	VenueID   int64   `json:"venueId"`
	Date      string  `json:"date"`
	IsClosed  bool    `json:"isClosed"`
	OpenTime  *string `json:"openTime,omitempty"`
	CloseTime *string `json:"closeTime,omitempty"`
}

// Методы конвертации

// FromDomainVenue конвертирует domain модель в DTO
func FromDomainVenue(v *domain.Venue) *VenueResponse {
	if v == nil {
		return nil
	}

	return &VenueResponse{
		ID:        v.ID,
		OwnerID:   v.OwnerID,
		Name:      v.Name,
		Address:   v.Address,
		City:      v.City,
		Status:    string(v.Status),
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}

// FromDomainVenueList конвертирует список domain моделей в DTO
func FromDomainVenueList(venues []*domain.Venue) *VenueListResponse {
	resp := &VenueListResponse{
		Venues: make([]VenueResponse, 0, len(venues)),
	}

	for _, venue := range venues {
		if venueResp := FromDomainVenue(venue); venueResp != nil {
			resp.Venues = append(resp.Venues, *venueResp)
		}
	}

	return resp
}

// FromDomainSchedules конвертирует недельное расписание в DTO
func FromDomainSchedules(venueID int64, schedules []*domain.Schedule) *ScheduleResponse {
	resp := &ScheduleResponse{
		VenueID: venueID,
		Days:    make([]ScheduleDayResponse, 0, len(schedules)),
	}

	for _, s := range schedules {
		resp.Days = append(resp.Days, ScheduleDayResponse{
			DayOfWeek: s.DayOfWeek,
			OpenTime:  s.OpenTime.String(),
			CloseTime: s.CloseTime.String(),
		})
	}

	return resp
}

// FromDomainOverride конвертирует исключение из расписания в DTO
func FromDomainOverride(o *domain.ScheduleOverride) *OverrideResponse {
	if o == nil {
		return nil
	}

	resp := &OverrideResponse{
		VenueID:  o.VenueID,
		Date:     o.Date.Format(domain.DateFormat),
		IsClosed: o.IsClosed,
	}

	if o.OpenTime != nil {
		resp.OpenTime = ptr.Ptr(o.OpenTime.String())
	}
	if o.CloseTime != nil {
		resp.CloseTime = ptr.Ptr(o.CloseTime.String())
	}

	return resp
}

// ToDomainOverride конвертирует запрос в domain модель
func (r *CreateOverrideRequest) ToDomainOverride(venueID int64) (*domain.ScheduleOverride, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	override := &domain.ScheduleOverride{
		VenueID:  venueID,
		Date:     date,
		IsClosed: r.IsClosed,
	}

	if r.OpenTime != nil {
		open, err := types.NewTimeStringFromString(*r.OpenTime)
		if err != nil {
			return nil, err
		}
		override.OpenTime = &open
	}
	if r.CloseTime != nil {
		closeTime, err := types.NewTimeStringFromString(*r.CloseTime)
		if err != nil {
			return nil, err
		}
		override.CloseTime = &closeTime
	}

	return override, nil
}
