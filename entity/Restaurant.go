package entity

import (
	"gorm.io/gorm"
)

type Restaurant struct {
	gorm.Model
	Name          string  `gorm:"uniqueIndex;not null" json:"name"`
	AverageRating float64 `json:"averageRating"`
	Address       string  `json:"address"`
	Phone         string  `json:"phone"`
	Email         string  `json:"email"`
	WebsiteURL    string  `json:"websiteUrl"`
	HasParking    bool    `json:"hasParking"`

	AcceptsReservations bool `gorm:"not null;default:true" json:"acceptsReservations"`
	IsActive            bool `gorm:"not null;default:true" json:"isActive"`

	Endorsements []Endorsement `gorm:"many2many:restaurant_endorsements;" json:"-"`

	// Weekly operating hours, at most one row per weekday.
	Hours []RestaurantHours `json:"-"`

	Tables       []Table       `json:"-"`
	Reservations []Reservation `json:"-"`
}
