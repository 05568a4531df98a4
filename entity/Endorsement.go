package entity

import (
	"gorm.io/gorm"
)

type Endorsement struct {
	gorm.Model
	Name string `gorm:"uniqueIndex;not null" json:"name"`

	Restaurants []Restaurant `gorm:"many2many:restaurant_endorsements;" json:"-"`

	// Restrictions this endorsement satisfies (e.g. "Vegan-Friendly" -> "Vegan").
	Restrictions []DietaryRestriction `gorm:"many2many:restriction_endorsement_mappings;" json:"-"`
}
