package services

import (
	"testing"

	"github.com/eddietapia/reservations/entity"

	"github.com/stretchr/testify/assert"
)

func restrictionWithID(id uint) entity.DietaryRestriction {
	r := entity.DietaryRestriction{Name: "restriction"}
	r.ID = id
	return r
}

func endorsementSatisfying(restrictionIDs ...uint) entity.Endorsement {
	var e entity.Endorsement
	for _, id := range restrictionIDs {
		e.Restrictions = append(e.Restrictions, restrictionWithID(id))
	}
	return e
}

func TestAggregateRestrictionsDeduplicates(t *testing.T) {
	vegan := restrictionWithID(1)
	glutenFree := restrictionWithID(2)

	eaters := []entity.Eater{
		{DietaryRestrictions: []entity.DietaryRestriction{vegan}},
		{DietaryRestrictions: []entity.DietaryRestriction{vegan, glutenFree}},
		{},
	}

	required := aggregateRestrictions(eaters)
	assert.Len(t, required, 2)
	assert.True(t, required[1])
	assert.True(t, required[2])
}

func TestCoversRestrictions(t *testing.T) {
	const (
		vegan      = 1
		glutenFree = 2
	)
	both := map[uint]bool{vegan: true, glutenFree: true}

	tests := []struct {
		name         string
		endorsements []entity.Endorsement
		required     map[uint]bool
		want         bool
	}{
		{
			name:         "vegan_only_misses_gluten_free",
			endorsements: []entity.Endorsement{endorsementSatisfying(vegan)},
			required:     both,
			want:         false,
		},
		{
			name: "both_covered_by_separate_endorsements",
			endorsements: []entity.Endorsement{
				endorsementSatisfying(vegan),
				endorsementSatisfying(glutenFree),
			},
			required: both,
			want:     true,
		},
		{
			name:         "one_endorsement_covers_all",
			endorsements: []entity.Endorsement{endorsementSatisfying(vegan, glutenFree)},
			required:     both,
			want:         true,
		},
		{
			name:         "no_restrictions_passes_anywhere",
			endorsements: nil,
			required:     map[uint]bool{},
			want:         true,
		},
		{
			name:         "no_endorsements_fails_any_restriction",
			endorsements: nil,
			required:     map[uint]bool{vegan: true},
			want:         false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, coversRestrictions(tc.endorsements, tc.required))
		})
	}
}
