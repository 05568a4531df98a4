package configs

import (
	"log"

	"github.com/eddietapia/reservations/entity"

	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin creates the admin account on first boot.
func SeedAdmin() error {
	db := DB()
	email := getEnv("ADMIN_EMAIL", "")
	pass := getEnv("ADMIN_PASSWORD", "")
	if email == "" || pass == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.Eater{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", email)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	admin := entity.Eater{
		Name:     "Admin",
		Email:    email,
		Password: string(hash),
		Role:     "admin",
		IsActive: true,
	}
	return db.Create(&admin).Error
}

// SeedLookups loads the dietary restrictions, endorsements and the
// restriction->endorsement mapping, plus a demo restaurant catalog.
func SeedLookups() error {
	db := DB()

	restrictions := map[string]*entity.DietaryRestriction{}
	for _, name := range []string{"Gluten Free", "Vegetarian", "Paleo", "Vegan"} {
		r := &entity.DietaryRestriction{Name: name}
		if err := db.FirstOrCreate(r, entity.DietaryRestriction{Name: name}).Error; err != nil {
			return err
		}
		restrictions[name] = r
	}

	// endorsement -> restrictions it satisfies
	endorsementMap := map[string][]string{
		"Gluten Free Options": {"Gluten Free"},
		"Vegetarian-Friendly": {"Vegetarian"},
		"Vegan-Friendly":      {"Vegan"},
		"Paleo-friendly":      {"Paleo"},
	}
	endorsements := map[string]*entity.Endorsement{}
	for name, satisfied := range endorsementMap {
		e := &entity.Endorsement{Name: name}
		if err := db.FirstOrCreate(e, entity.Endorsement{Name: name}).Error; err != nil {
			return err
		}
		for _, rName := range satisfied {
			if err := db.Model(e).Association("Restrictions").Append(restrictions[rName]); err != nil {
				return err
			}
		}
		endorsements[name] = e
	}

	type seedRestaurant struct {
		rest         entity.Restaurant
		hours        [2]int // open/close minutes applied to every weekday
		tables       []int
		endorsements []string
	}
	open24 := [2]int{0, 1440}
	catalog := []seedRestaurant{
		{
			rest:         entity.Restaurant{Name: "Tartine Bakery", AverageRating: 4.5, Address: "123 Main St", Phone: "555-1234", HasParking: true, AcceptsReservations: true, IsActive: true},
			hours:        [2]int{8 * 60, 20 * 60},
			tables:       []int{4, 4, 2, 2},
			endorsements: []string{"Vegetarian-Friendly", "Gluten Free Options"},
		},
		{
			rest:         entity.Restaurant{Name: "Tacos el Gordo", AverageRating: 4.6, Address: "456 Oak Ave", Phone: "555-5678", AcceptsReservations: true, IsActive: true},
			hours:        [2]int{11 * 60, 22 * 60},
			tables:       []int{6, 4, 4, 4, 4},
			endorsements: []string{"Gluten Free Options"},
		},
		{
			rest:         entity.Restaurant{Name: "Lardo", AverageRating: 4.1, Address: "789 Pine St", Phone: "555-9876", HasParking: true, AcceptsReservations: true, IsActive: true},
			hours:        open24,
			tables:       []int{2, 2, 2, 2, 4, 4, 6},
			endorsements: []string{"Gluten Free Options"},
		},
		{
			rest:         entity.Restaurant{Name: "Panadería Rosetta", AverageRating: 4.3, Address: "101 Walnut St", Phone: "555-1010", HasParking: true, AcceptsReservations: true, IsActive: true},
			hours:        open24,
			tables:       []int{2, 2, 2, 4, 4},
			endorsements: []string{"Vegetarian-Friendly", "Gluten Free Options"},
		},
		{
			rest:         entity.Restaurant{Name: "Tetetlán", AverageRating: 4.4, Address: "202 Elm St", Phone: "555-2020", HasParking: true, AcceptsReservations: true, IsActive: true},
			hours:        open24,
			tables:       []int{2, 2, 2, 2, 4, 4, 6},
			endorsements: []string{"Paleo-friendly", "Gluten Free Options"},
		},
		{
			rest:   entity.Restaurant{Name: "Falling Piano Brewing Co", AverageRating: 4.2, Address: "304 Oak St", Phone: "555-3040", HasParking: true, AcceptsReservations: true, IsActive: true},
			hours:  open24,
			tables: []int{2, 2, 2, 2, 2, 4, 4, 4, 4, 4, 6, 6, 6, 6, 6},
		},
		{
			rest:         entity.Restaurant{Name: "u.to.pi.a", AverageRating: 4.5, Address: "456 Oak Ave", Phone: "555-5679", HasParking: true, AcceptsReservations: true, IsActive: true},
			hours:        open24,
			tables:       []int{2, 2},
			endorsements: []string{"Vegetarian-Friendly", "Vegan-Friendly"},
		},
	}

	for _, s := range catalog {
		rest := s.rest
		if err := db.FirstOrCreate(&rest, entity.Restaurant{Name: rest.Name}).Error; err != nil {
			return err
		}

		var hoursCount int64
		db.Model(&entity.RestaurantHours{}).Where("restaurant_id = ?", rest.ID).Count(&hoursCount)
		if hoursCount == 0 {
			for weekday := 0; weekday < 7; weekday++ {
				h := entity.RestaurantHours{
					RestaurantID: rest.ID,
					Weekday:      weekday,
					OpensAt:      s.hours[0],
					ClosesAt:     s.hours[1],
				}
				if err := db.Create(&h).Error; err != nil {
					return err
				}
			}
		}

		var tableCount int64
		db.Model(&entity.Table{}).Where("restaurant_id = ?", rest.ID).Count(&tableCount)
		if tableCount == 0 {
			for _, capacity := range s.tables {
				t := entity.Table{RestaurantID: rest.ID, Capacity: capacity, IsActive: true}
				if err := db.Create(&t).Error; err != nil {
					return err
				}
			}
		}

		for _, name := range s.endorsements {
			if err := db.Model(&rest).Association("Endorsements").Append(endorsements[name]); err != nil {
				return err
			}
		}
	}

	return nil
}
