package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an error so the HTTP layer can map it without string
// matching. Kinds are part of the service contract: a capacity miss must never
// surface as a generic not-found.
type Kind int

const (
	// Validation is malformed or out-of-domain input; the caller must fix the
	// request, retrying as-is will never succeed.
	Validation Kind = iota + 1
	// NotFound is a reference to an entity that does not exist or is inactive.
	NotFound
	// Conflict is a double booking or a table claimed between search and commit.
	Conflict
	// Capacity means no table in the restaurant is large enough for the party
	// at any time, so retrying with another window will never help.
	Capacity
	// Storage is an infrastructure failure from the data store.
	Storage
)

func (k Kind) String() string {
	switch k {
	case Validation:
		return "validation"
	case NotFound:
		return "not_found"
	case Conflict:
		return "conflict"
	case Capacity:
		return "capacity"
	case Storage:
		return "storage"
	default:
		return "unknown"
	}
}

type Error struct {
	Kind Kind
	Msg  string

	// Set on Conflict errors when the offending parties are known.
	EaterID       uint
	ReservationID uint

	Err error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrap keeps the cause reachable via errors.Unwrap.
func Wrap(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// BookingConflict records which eater and existing reservation block a booking.
func BookingConflict(msg string, eaterID, reservationID uint) *Error {
	return &Error{Kind: Conflict, Msg: msg, EaterID: eaterID, ReservationID: reservationID}
}

// KindOf returns the Kind carried anywhere in err's chain, or 0.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
