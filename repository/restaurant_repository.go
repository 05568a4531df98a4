package repository

import (
	"github.com/eddietapia/reservations/entity"

	"gorm.io/gorm"
)

type RestaurantRepository struct {
	DB *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{DB: db}
}

// FindCatalog loads every active, reservation-accepting restaurant with the
// relations the availability engine needs: endorsements (and the restrictions
// each one satisfies), weekly hours, and active tables.
func (r *RestaurantRepository) FindCatalog() ([]entity.Restaurant, error) {
	var rests []entity.Restaurant
	err := r.DB.
		Preload("Endorsements.Restrictions").
		Preload("Hours").
		Preload("Tables", "is_active = ?", true).
		Where("is_active = ? AND accepts_reservations = ?", true, true).
		Order("id").
		Find(&rests).Error
	return rests, err
}

func (r *RestaurantRepository) FindAll() ([]entity.Restaurant, error) {
	var rests []entity.Restaurant
	err := r.DB.
		Preload("Endorsements").
		Preload("Hours").
		Where("is_active = ?", true).
		Order("id").
		Find(&rests).Error
	return rests, err
}

func (r *RestaurantRepository) FindByID(id uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	err := r.DB.
		Preload("Endorsements.Restrictions").
		Preload("Hours").
		Preload("Tables", "is_active = ?", true).
		Where("is_active = ?", true).
		First(&rest, id).Error
	if err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *RestaurantRepository) Create(rest *entity.Restaurant) error {
	return r.DB.Create(rest).Error
}

func (r *RestaurantRepository) AddTable(table *entity.Table) error {
	return r.DB.Create(table).Error
}

// ReplaceHours swaps a restaurant's full weekly schedule in one transaction.
func (r *RestaurantRepository) ReplaceHours(restaurantID uint, hours []entity.RestaurantHours) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().
			Where("restaurant_id = ?", restaurantID).
			Delete(&entity.RestaurantHours{}).Error; err != nil {
			return err
		}
		for i := range hours {
			hours[i].RestaurantID = restaurantID
		}
		if len(hours) == 0 {
			return nil
		}
		return tx.Create(&hours).Error
	})
}

func (r *RestaurantRepository) Update(rest *entity.Restaurant) error {
	return r.DB.Save(rest).Error
}
