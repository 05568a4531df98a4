package configs

import (
	"github.com/eddietapia/reservations/entity"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(source string) {
	database, err := gorm.Open(sqlite.Open(source), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	db = database
}

func SetupDatabase() {
	db.AutoMigrate(
		&entity.Eater{},
		&entity.DietaryRestriction{}, &entity.Endorsement{},
		&entity.Restaurant{}, &entity.RestaurantHours{}, &entity.Table{},
		&entity.Reservation{},
	)
}
