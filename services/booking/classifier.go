package booking

import (
	"cmp"
	"slices"
	"time"

	"shareit/models"
)

// ParseState turns a request keyword into a bucket. Unknown keywords are
// rejected instead of falling back to ALL.
func ParseState(keyword string) (models.BookingState, error) {
	state, ok := models.LookupState(keyword)
	if !ok {
		return 0, NewUnknownState(keyword)
	}
	return state, nil
}

// Classify returns the bookings that fall into the bucket relative to now,
// ordered by start descending, or ascending for CURRENT. Bookings with the same
// start are ordered by id. The input slice is not modified.
func Classify(bookings []models.Booking, state models.BookingState, now time.Time) []models.Booking {
	out := make([]models.Booking, 0, len(bookings))
	for _, b := range bookings {
		if state.Matches(b, now) {
			out = append(out, b)
		}
	}

	asc := state.Ascending()
	slices.SortFunc(out, func(a, b models.Booking) int {
		c := a.Start.Compare(b.Start)
		if !asc {
			c = -c
		}
		if c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return out
}
