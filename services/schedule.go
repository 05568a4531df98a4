package services

import (
	"time"

	"github.com/eddietapia/reservations/entity"
)

const minutesPerDay = 24 * 60

// hoursCover reports whether the weekly schedule keeps the restaurant open for
// the entire window. The window is split into one segment per calendar day it
// touches; each segment must sit fully inside that weekday's open/close pair.
// A weekday with no row is closed all day, so any segment on it fails.
func hoursCover(hours []entity.RestaurantHours, w TimeWindow) bool {
	byDay := make(map[int]entity.RestaurantHours, len(hours))
	for _, h := range hours {
		byDay[h.Weekday] = h
	}

	for cur := w.Start; cur.Before(w.End); {
		dayEnd := startOfNextDay(cur)

		h, open := byDay[int(cur.Weekday())]
		if !open {
			return false
		}

		segStart := minutesIntoDay(cur)
		segEnd := minutesPerDay
		if w.End.Before(dayEnd) {
			segEnd = minutesIntoDay(w.End)
			// A partial minute rounds up; an end seconds past close is past close.
			if w.End.Second() > 0 || w.End.Nanosecond() > 0 {
				segEnd++
			}
		}

		if segStart < h.OpensAt || segEnd > h.ClosesAt {
			return false
		}
		cur = dayEnd
	}
	return true
}

func minutesIntoDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

func startOfNextDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d+1, 0, 0, 0, 0, t.Location())
}
