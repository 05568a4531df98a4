package repository

import (
	"github.com/eddietapia/reservations/entity"

	"gorm.io/gorm"
)

// EaterRepository owns all queries against the eaters table.
type EaterRepository struct {
	DB *gorm.DB
}

func NewEaterRepository(db *gorm.DB) *EaterRepository {
	return &EaterRepository{DB: db}
}

func (r *EaterRepository) FindByEmail(email string) (*entity.Eater, error) {
	var eater entity.Eater
	if err := r.DB.Where("email = ? AND is_active = ?", email, true).First(&eater).Error; err != nil {
		return nil, err
	}
	return &eater, nil
}

func (r *EaterRepository) CountByEmail(email string) (int64, error) {
	var count int64
	if err := r.DB.Model(&entity.Eater{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *EaterRepository) Create(eater *entity.Eater) error {
	return r.DB.Create(eater).Error
}

func (r *EaterRepository) FindByID(id uint) (*entity.Eater, error) {
	var eater entity.Eater
	if err := r.DB.Where("is_active = ?", true).First(&eater, id).Error; err != nil {
		return nil, err
	}
	return &eater, nil
}

// FindActiveByIDs loads active eaters with their dietary restrictions.
// Callers compare len(result) against len(ids) to detect stale references.
func (r *EaterRepository) FindActiveByIDs(ids []uint) ([]entity.Eater, error) {
	var eaters []entity.Eater
	err := r.DB.
		Preload("DietaryRestrictions").
		Where("id IN ? AND is_active = ?", ids, true).
		Find(&eaters).Error
	return eaters, err
}

func (r *EaterRepository) Update(eaterID uint, updates map[string]any) error {
	return r.DB.Model(&entity.Eater{}).Where("id = ?", eaterID).Updates(updates).Error
}
