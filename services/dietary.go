package services

import (
	"github.com/eddietapia/reservations/entity"
)

// aggregateRestrictions collapses the party's dietary restriction IDs into a
// set, duplicates across eaters included once.
func aggregateRestrictions(eaters []entity.Eater) map[uint]bool {
	required := make(map[uint]bool)
	for _, e := range eaters {
		for _, r := range e.DietaryRestrictions {
			required[r.ID] = true
		}
	}
	return required
}

// coversRestrictions reports whether the restaurant's endorsements satisfy
// every required restriction: for each restriction there must be at least one
// endorsement mapped to it. A party with no restrictions passes everywhere.
// There is no partial credit; one unmatched restriction fails the restaurant.
func coversRestrictions(endorsements []entity.Endorsement, required map[uint]bool) bool {
	if len(required) == 0 {
		return true
	}

	satisfied := make(map[uint]bool, len(required))
	for _, e := range endorsements {
		for _, r := range e.Restrictions {
			satisfied[r.ID] = true
		}
	}

	for id := range required {
		if !satisfied[id] {
			return false
		}
	}
	return true
}
