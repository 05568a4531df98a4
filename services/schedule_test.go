package services

import (
	"testing"
	"time"

	"github.com/eddietapia/reservations/entity"

	"github.com/stretchr/testify/assert"
)

func TestHoursCoverSingleDay(t *testing.T) {
	monNineToFive := []entity.RestaurantHours{
		{Weekday: 1, OpensAt: 9 * 60, ClosesAt: 17 * 60},
	}

	tests := []struct {
		name   string
		hours  []entity.RestaurantHours
		window TimeWindow
		want   bool
	}{
		{
			name:   "fully_inside",
			hours:  monNineToFive,
			window: window(mondayAt(12, 0), mondayAt(14, 0)),
			want:   true,
		},
		{
			name:   "exact_full_day_of_service",
			hours:  monNineToFive,
			window: window(mondayAt(9, 0), mondayAt(17, 0)),
			want:   true,
		},
		{
			name:   "extends_past_close",
			hours:  monNineToFive,
			window: window(mondayAt(16, 30), mondayAt(17, 30)),
			want:   false,
		},
		{
			name:   "starts_before_open",
			hours:  monNineToFive,
			window: window(mondayAt(8, 30), mondayAt(10, 0)),
			want:   false,
		},
		{
			name:   "closed_weekday",
			hours:  monNineToFive,
			window: window(mondayAt(12, 0).AddDate(0, 0, 1), mondayAt(14, 0).AddDate(0, 0, 1)),
			want:   false,
		},
		{
			name:   "no_schedule_at_all",
			hours:  nil,
			window: window(mondayAt(12, 0), mondayAt(14, 0)),
			want:   false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, hoursCover(tc.hours, tc.window))
		})
	}
}

func TestHoursCoverRoundsPartialMinutesUp(t *testing.T) {
	monNineToFive := []entity.RestaurantHours{
		{Weekday: 1, OpensAt: 9 * 60, ClosesAt: 17 * 60},
	}

	// Ending seconds past close leaves the restaurant closed for part of the
	// window, however small.
	pastClose := window(mondayAt(16, 0), mondayAt(17, 0).Add(30*time.Second))
	assert.False(t, hoursCover(monNineToFive, pastClose))

	exactClose := window(mondayAt(16, 0), mondayAt(17, 0))
	assert.True(t, hoursCover(monNineToFive, exactClose))
}

func TestHoursCoverTwentyFourHourDay(t *testing.T) {
	always := allWeek(0, 1440)

	assert.True(t, hoursCover(always, window(mondayAt(0, 0), mondayAt(23, 59))))
	assert.True(t, hoursCover(always, window(mondayAt(3, 15), mondayAt(4, 45))))
	// Window ending exactly at midnight of the next day.
	assert.True(t, hoursCover(always, window(mondayAt(22, 0), mondayAt(0, 0).AddDate(0, 0, 1))))
}

func TestHoursCoverMidnightCrossing(t *testing.T) {
	// Open Monday 18:00 through the whole of Tuesday morning via the
	// end-exclusive sentinel on Monday plus an early Tuesday row.
	hours := []entity.RestaurantHours{
		{Weekday: 1, OpensAt: 18 * 60, ClosesAt: 1440},
		{Weekday: 2, OpensAt: 0, ClosesAt: 2 * 60},
	}

	crossing := window(mondayAt(23, 0), mondayAt(1, 0).AddDate(0, 0, 1))
	assert.True(t, hoursCover(hours, crossing))

	tooLate := window(mondayAt(23, 0), mondayAt(3, 0).AddDate(0, 0, 1))
	assert.False(t, hoursCover(hours, tooLate))

	// Tuesday-only segment before open fails even though Monday covers.
	assert.False(t, hoursCover(hours, window(mondayAt(17, 0), mondayAt(19, 0))))
}

func TestHoursCoverMultiDayWindow(t *testing.T) {
	always := allWeek(0, 1440)
	long := window(mondayAt(10, 0), mondayAt(10, 0).Add(30*time.Hour))
	assert.True(t, hoursCover(always, long))

	// Remove Tuesday; the same window now touches a closed day.
	missingTuesday := make([]entity.RestaurantHours, 0, 6)
	for _, h := range always {
		if h.Weekday != 2 {
			missingTuesday = append(missingTuesday, h)
		}
	}
	assert.False(t, hoursCover(missingTuesday, long))
}
