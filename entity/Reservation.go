package entity

import (
	"time"

	"gorm.io/gorm"
)

// Reservation occupies one table for the half-open window [StartsAt, EndsAt).
// Timestamps are stored in UTC. Cancellation is a soft delete: IsActive flips
// to false and the row stays; every availability and conflict query filters on
// IsActive. A window change is modeled as cancel + recreate, never an update.
type Reservation struct {
	gorm.Model
	HostID uint  `gorm:"not null;index" json:"hostId"`
	Host   Eater `json:"-"`

	RestaurantID uint       `gorm:"not null;index" json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	TableID uint  `gorm:"not null;index" json:"tableId"`
	Table   Table `json:"-"`

	StartsAt time.Time `gorm:"not null;index" json:"startsAt"`
	EndsAt   time.Time `gorm:"not null" json:"endsAt"`

	PartySize int  `gorm:"not null" json:"partySize"`
	IsActive  bool `gorm:"not null;default:true" json:"isActive"`

	// Attendees always include the host.
	Attendees []Eater `gorm:"many2many:reservation_attendees;" json:"-"`
}
