package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// FieldStatus represents the moderation status of a field
type FieldStatus string

const (
	FieldPending  FieldStatus = "PENDING"
	FieldApproved FieldStatus = "APPROVED"
	FieldRejected FieldStatus = "REJECTED"
)

// Field represents a bookable playing field inside a venue
type Field struct {
	ID           int64
	VenueID      int64
	Name         string
	SportType    string
	PricePerHour decimal.Decimal
	IsClosed     bool
	Status       FieldStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsBookable returns true if the field accepts bookings:
// it must be approved and not closed by the renter
func (f *Field) IsBookable() bool {
	return f.Status == FieldApproved && !f.IsClosed
}
