package services

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/eddietapia/reservations/entity"
	"github.com/eddietapia/reservations/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// mondayAt returns a UTC timestamp on a fixed Monday; most schedule fixtures
// are keyed to weekdays, so tests anchor on a known one (2026-08-31).
func mondayAt(hour, min int) time.Time {
	return time.Date(2026, time.August, 31, hour, min, 0, 0, time.UTC)
}

func window(start, end time.Time) TimeWindow {
	return TimeWindow{Start: start, End: end}
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&entity.Eater{},
		&entity.DietaryRestriction{}, &entity.Endorsement{},
		&entity.Restaurant{}, &entity.RestaurantHours{}, &entity.Table{},
		&entity.Reservation{},
	))
	return db
}

type fixtures struct {
	t  *testing.T
	db *gorm.DB
}

func (f *fixtures) eater(name string, restrictions ...*entity.DietaryRestriction) *entity.Eater {
	e := &entity.Eater{
		Name:     name,
		Email:    strings.ToLower(name) + "@example.com",
		Role:     "eater",
		IsActive: true,
	}
	for _, r := range restrictions {
		e.DietaryRestrictions = append(e.DietaryRestrictions, *r)
	}
	require.NoError(f.t, f.db.Create(e).Error)
	return e
}

func (f *fixtures) restriction(name string) *entity.DietaryRestriction {
	r := &entity.DietaryRestriction{Name: name}
	require.NoError(f.t, f.db.Create(r).Error)
	return r
}

func (f *fixtures) endorsement(name string, satisfies ...*entity.DietaryRestriction) *entity.Endorsement {
	e := &entity.Endorsement{Name: name}
	for _, r := range satisfies {
		e.Restrictions = append(e.Restrictions, *r)
	}
	require.NoError(f.t, f.db.Create(e).Error)
	return e
}

type restaurantOpts struct {
	rating       float64
	accepts      bool
	hours        []entity.RestaurantHours
	tables       []int
	endorsements []*entity.Endorsement
}

// allWeek builds one open/close pair applied to every weekday.
func allWeek(opensAt, closesAt int) []entity.RestaurantHours {
	hours := make([]entity.RestaurantHours, 0, 7)
	for d := 0; d < 7; d++ {
		hours = append(hours, entity.RestaurantHours{Weekday: d, OpensAt: opensAt, ClosesAt: closesAt})
	}
	return hours
}

func (f *fixtures) restaurant(name string, opts restaurantOpts) *entity.Restaurant {
	r := &entity.Restaurant{
		Name:                name,
		AverageRating:       opts.rating,
		AcceptsReservations: opts.accepts,
		IsActive:            true,
		Hours:               opts.hours,
	}
	for _, capacity := range opts.tables {
		r.Tables = append(r.Tables, entity.Table{Capacity: capacity, IsActive: true})
	}
	for _, e := range opts.endorsements {
		r.Endorsements = append(r.Endorsements, *e)
	}
	require.NoError(f.t, f.db.Create(r).Error)
	return r
}

func newAvailabilityService(db *gorm.DB) *AvailabilityService {
	return NewAvailabilityService(
		repository.NewEaterRepository(db),
		repository.NewRestaurantRepository(db),
		repository.NewReservationRepository(db),
	)
}

func newReservationService(db *gorm.DB) *ReservationService {
	return NewReservationService(
		db,
		repository.NewEaterRepository(db),
		repository.NewRestaurantRepository(db),
		repository.NewReservationRepository(db),
		nil,
	)
}
