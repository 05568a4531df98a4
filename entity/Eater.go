package entity

import (
	"gorm.io/gorm"
)

type Eater struct {
	gorm.Model
	Name     string `gorm:"not null" json:"name"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `json:"-"`
	Role     string `gorm:"not null;default:eater" json:"role"`

	// Soft delete flag; inactive eaters are invisible to search and booking.
	IsActive bool `gorm:"not null;default:true" json:"isActive"`

	DietaryRestrictions []DietaryRestriction `gorm:"many2many:eater_dietary_restrictions;" json:"-"`

	// Reservations this eater hosts (creator of the booking).
	HostedReservations []Reservation `gorm:"foreignKey:HostID" json:"-"`

	// Reservations this eater attends, host included.
	AttendingReservations []Reservation `gorm:"many2many:reservation_attendees;" json:"-"`
}
