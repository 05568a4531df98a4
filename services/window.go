package services

import (
	"time"

	"github.com/eddietapia/reservations/pkg/apperr"
)

// TimeWindow is a half-open interval [Start, End) in UTC.
type TimeWindow struct {
	Start time.Time
	End   time.Time
}

func NewTimeWindow(start, end time.Time) TimeWindow {
	return TimeWindow{Start: start.UTC(), End: end.UTC()}
}

func (w TimeWindow) Validate() error {
	if w.Start.IsZero() || w.End.IsZero() {
		return apperr.New(apperr.Validation, "start and end are required")
	}
	if !w.End.After(w.Start) {
		return apperr.New(apperr.Validation, "end must be after start")
	}
	return nil
}

// Overlaps reports whether the two half-open intervals share any instant.
func (w TimeWindow) Overlaps(o TimeWindow) bool {
	return w.Start.Before(o.End) && o.Start.Before(w.End)
}

func (w TimeWindow) Duration() time.Duration {
	return w.End.Sub(w.Start)
}
