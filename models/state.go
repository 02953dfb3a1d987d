package models

import "time"

// BookingState is a temporal or status bucket used to filter booking lists.
// It is computed against a reference instant and never stored.
type BookingState int

const (
	StateAll BookingState = iota
	StateCurrent
	StatePast
	StateFuture
	StateWaiting
	StateRejected
)

var stateNames = [...]string{
	StateAll:      "ALL",
	StateCurrent:  "CURRENT",
	StatePast:     "PAST",
	StateFuture:   "FUTURE",
	StateWaiting:  "WAITING",
	StateRejected: "REJECTED",
}

// LookupState maps a keyword to its state. Keywords are case sensitive.
func LookupState(keyword string) (BookingState, bool) {
	for i, name := range stateNames {
		if name == keyword {
			return BookingState(i), true
		}
	}
	return 0, false
}

func (s BookingState) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "UNKNOWN"
	}
	return stateNames[s]
}

// Matches reports whether the booking belongs to the bucket relative to now.
// Time predicates are strict, so a booking starting or ending exactly at now
// is neither current, past nor future.
func (s BookingState) Matches(b Booking, now time.Time) bool {
	switch s {
	case StateAll:
		return true
	case StateCurrent:
		return b.Start.Before(now) && b.End.After(now)
	case StatePast:
		return b.End.Before(now)
	case StateFuture:
		return b.Start.After(now)
	case StateWaiting:
		return b.Status == StatusWaiting
	case StateRejected:
		return b.Status == StatusRejected
	}
	return false
}

// Ascending reports whether the bucket is ordered by start ascending.
// Only CURRENT is; every other bucket lists newest first.
func (s BookingState) Ascending() bool {
	return s == StateCurrent
}
