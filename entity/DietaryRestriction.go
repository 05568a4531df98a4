package entity

import (
	"gorm.io/gorm"
)

type DietaryRestriction struct {
	gorm.Model
	Name string `gorm:"uniqueIndex;not null" json:"name"`

	Eaters []Eater `gorm:"many2many:eater_dietary_restrictions;" json:"-"`

	// Endorsements that satisfy this restriction.
	Endorsements []Endorsement `gorm:"many2many:restriction_endorsement_mappings;" json:"-"`
}
