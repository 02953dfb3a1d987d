package booking

import (
	"time"

	"shareit/models"
)

// Candidate is a booking request before it is persisted.
type Candidate struct {
	Item     models.ItemSnapshot
	BookerID string
	Start    time.Time
	End      time.Time
}

// Validate enforces the creation rules. It does not touch storage; on success
// the caller builds a WAITING booking from the candidate.
func Validate(c Candidate, owns Ownership) error {
	if owns == nil {
		owns = OwnsItem
	}
	if owns(c.Item, c.BookerID) {
		return NewOwnerSelfBooking()
	}
	if !c.Item.Available {
		return NewNotAvailable("item is not available")
	}
	if !c.End.After(c.Start) {
		return NewNotAvailable("end must be after start")
	}
	return nil
}
