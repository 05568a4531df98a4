package entity

import (
	"gorm.io/gorm"
)

// RestaurantHours is one open/close interval for one weekday.
// Weekday follows time.Weekday: 0 = Sunday .. 6 = Saturday. A weekday with no
// row means closed all day. Times are minutes since midnight; a 24-hour day is
// OpensAt=0, ClosesAt=1440 (end-exclusive sentinel equal to start of next day).
type RestaurantHours struct {
	gorm.Model
	RestaurantID uint `gorm:"uniqueIndex:idx_restaurant_weekday;not null" json:"restaurantId"`
	Weekday      int  `gorm:"uniqueIndex:idx_restaurant_weekday;not null" json:"weekday"`
	OpensAt      int  `gorm:"not null" json:"opensAt"`
	ClosesAt     int  `gorm:"not null" json:"closesAt"`
}
