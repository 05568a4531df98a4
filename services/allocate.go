package services

import (
	"github.com/eddietapia/reservations/entity"
)

// pickTable chooses the table for a party, single-table allocation only:
// tables are never combined, so a restaurant with only 4-tops cannot seat six.
// Among active tables with capacity >= partySize and no active reservation
// overlapping the window, it returns the smallest sufficient capacity, ties
// broken by lowest table ID, leaving larger tables free for bigger parties.
//
// anyFits reports whether at least one active table could ever seat the party,
// regardless of current bookings; callers use it to tell "come back later"
// apart from "this restaurant can never seat you".
func pickTable(tables []entity.Table, partySize int, w TimeWindow, existing []entity.Reservation) (table *entity.Table, anyFits bool) {
	busy := make(map[uint]bool)
	for _, r := range existing {
		if !r.IsActive {
			continue
		}
		if (TimeWindow{Start: r.StartsAt, End: r.EndsAt}).Overlaps(w) {
			busy[r.TableID] = true
		}
	}

	var best *entity.Table
	for i := range tables {
		t := &tables[i]
		if !t.IsActive || t.Capacity < partySize {
			continue
		}
		anyFits = true
		if busy[t.ID] {
			continue
		}
		if best == nil || t.Capacity < best.Capacity ||
			(t.Capacity == best.Capacity && t.ID < best.ID) {
			best = t
		}
	}
	return best, anyFits
}
