package repository

import (
	"time"

	"github.com/eddietapia/reservations/entity"

	"gorm.io/gorm"
)

type ReservationRepository struct {
	DB *gorm.DB
}

func NewReservationRepository(db *gorm.DB) *ReservationRepository {
	return &ReservationRepository{DB: db}
}

// Create inserts the reservation and its attendee rows inside tx.
func (r *ReservationRepository) Create(tx *gorm.DB, res *entity.Reservation) error {
	return tx.Create(res).Error
}

func (r *ReservationRepository) FindByID(id uint) (*entity.Reservation, error) {
	var res entity.Reservation
	err := r.DB.
		Preload("Host").
		Preload("Restaurant").
		Preload("Table").
		Preload("Attendees").
		First(&res, id).Error
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// ActiveForRestaurantOverlapping returns the active reservations on any of the
// restaurant's tables that overlap [start, end). Standard half-open overlap:
// other.start < end AND start < other.end.
func (r *ReservationRepository) ActiveForRestaurantOverlapping(tx *gorm.DB, restaurantID uint, start, end time.Time) ([]entity.Reservation, error) {
	var out []entity.Reservation
	err := tx.
		Where("restaurant_id = ? AND is_active = ?", restaurantID, true).
		Where("starts_at < ? AND ends_at > ?", end, start).
		Find(&out).Error
	return out, err
}

// ActiveForRestaurantsOverlapping returns the active reservations across all
// the given restaurants that overlap [start, end), in one round trip; callers
// group by RestaurantID.
func (r *ReservationRepository) ActiveForRestaurantsOverlapping(tx *gorm.DB, restaurantIDs []uint, start, end time.Time) ([]entity.Reservation, error) {
	if len(restaurantIDs) == 0 {
		return nil, nil
	}
	var out []entity.Reservation
	err := tx.
		Where("restaurant_id IN ? AND is_active = ?", restaurantIDs, true).
		Where("starts_at < ? AND ends_at > ?", end, start).
		Find(&out).Error
	return out, err
}

// FirstActiveForEaterOverlapping returns the eater's first active reservation,
// at any restaurant, that overlaps [start, end). nil means the eater is free.
func (r *ReservationRepository) FirstActiveForEaterOverlapping(tx *gorm.DB, eaterID uint, start, end time.Time) (*entity.Reservation, error) {
	var out []entity.Reservation
	err := tx.
		Joins("JOIN reservation_attendees ra ON ra.reservation_id = reservations.id").
		Where("ra.eater_id = ?", eaterID).
		Where("reservations.is_active = ?", true).
		Where("reservations.starts_at < ? AND reservations.ends_at > ?", end, start).
		Order("reservations.id").
		Limit(1).
		Find(&out).Error
	if err != nil || len(out) == 0 {
		return nil, err
	}
	return &out[0], nil
}

func (r *ReservationRepository) ListActiveForEater(eaterID uint) ([]entity.Reservation, error) {
	var out []entity.Reservation
	err := r.DB.
		Joins("JOIN reservation_attendees ra ON ra.reservation_id = reservations.id").
		Where("ra.eater_id = ?", eaterID).
		Where("reservations.is_active = ?", true).
		Preload("Restaurant").
		Preload("Table").
		Order("reservations.starts_at").
		Find(&out).Error
	return out, err
}

// SoftCancel flips the active flag inside tx; the row is never removed, so a
// concurrent booking check sees either the active or the cancelled state.
func (r *ReservationRepository) SoftCancel(tx *gorm.DB, id uint) (int64, error) {
	result := tx.Model(&entity.Reservation{}).
		Where("id = ? AND is_active = ?", id, true).
		Update("is_active", false)
	return result.RowsAffected, result.Error
}
