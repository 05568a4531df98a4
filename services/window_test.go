package services

import (
	"testing"
	"time"

	"github.com/eddietapia/reservations/pkg/apperr"

	"github.com/stretchr/testify/assert"
)

func TestTimeWindowOverlaps(t *testing.T) {
	base := mondayAt(18, 0)
	mk := func(startMin, endMin int) TimeWindow {
		return TimeWindow{
			Start: base.Add(time.Duration(startMin) * time.Minute),
			End:   base.Add(time.Duration(endMin) * time.Minute),
		}
	}

	tests := []struct {
		name string
		a, b TimeWindow
		want bool
	}{
		{"identical", mk(0, 90), mk(0, 90), true},
		{"contained", mk(0, 120), mk(30, 60), true},
		{"partial_front", mk(0, 60), mk(30, 90), true},
		{"adjacent_touching_ends", mk(0, 60), mk(60, 120), false},
		{"fully_before", mk(0, 30), mk(60, 90), false},
		{"one_minute_overlap", mk(0, 61), mk(60, 120), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.a.Overlaps(tc.b))
			// Overlap is symmetric.
			assert.Equal(t, tc.want, tc.b.Overlaps(tc.a))
		})
	}
}

func TestTimeWindowOverlapsSelf(t *testing.T) {
	w := window(mondayAt(12, 0), mondayAt(13, 0))
	assert.True(t, w.Overlaps(w))
}

func TestTimeWindowValidate(t *testing.T) {
	start := mondayAt(18, 0)

	assert.NoError(t, window(start, start.Add(time.Hour)).Validate())

	err := window(start, start).Validate()
	assert.True(t, apperr.IsKind(err, apperr.Validation), "zero-length window must be rejected")

	err = window(start, start.Add(-time.Hour)).Validate()
	assert.True(t, apperr.IsKind(err, apperr.Validation))

	err = TimeWindow{End: start}.Validate()
	assert.True(t, apperr.IsKind(err, apperr.Validation))
}

func TestNewTimeWindowNormalizesToUTC(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*3600)
	w := NewTimeWindow(
		time.Date(2026, time.August, 31, 19, 0, 0, 0, loc),
		time.Date(2026, time.August, 31, 21, 0, 0, 0, loc),
	)
	assert.Equal(t, time.UTC, w.Start.Location())
	assert.Equal(t, mondayAt(12, 0), w.Start)
}
