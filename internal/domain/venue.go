package domain

import "time"

// VenueStatus represents the moderation status of a venue listing
type VenueStatus string

const (
	VenueDraft    VenueStatus = "DRAFT"
	VenuePending  VenueStatus = "PENDING"
	VenueApproved VenueStatus = "APPROVED"
	VenueRejected VenueStatus = "REJECTED"
)

// Venue represents a sports venue listed by a renter
type Venue struct {
	ID      int64
	OwnerID int64
	Name    string
	Address string
	City    string
	Status  VenueStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsApproved returns true if the venue passed moderation
func (v *Venue) IsApproved() bool {
	return v.Status == VenueApproved
}

// CanBeSubmitted returns true if the venue can be sent to moderation
func (v *Venue) CanBeSubmitted() bool {
	return v.Status == VenueDraft || v.Status == VenueRejected
}

// CanBeModerated returns true if an admin decision is applicable
func (v *Venue) CanBeModerated() bool {
	return v.Status == VenuePending
}
