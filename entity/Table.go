package entity

import (
	"gorm.io/gorm"
)

type Table struct {
	gorm.Model
	RestaurantID uint `gorm:"not null;index" json:"restaurantId"`
	Capacity     int  `gorm:"not null" json:"capacity"`
	IsActive     bool `gorm:"not null;default:true" json:"isActive"`

	Reservations []Reservation `json:"-"`
}
