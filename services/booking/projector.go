package booking

import (
	"time"

	"shareit/models"
)

// Project derives the last and next non-rejected bookings of one item.
// last is the latest booking that started before now, next the earliest one
// starting after now. When starts are equal the lowest id wins.
func Project(bookings []models.Booking, itemID string, now time.Time) models.Projection {
	var p models.Projection
	for i := range bookings {
		if bookings[i].Item.ID != itemID {
			continue
		}
		p = accumulate(p, &bookings[i], now)
	}
	return p
}

// ProjectAll projects every item in itemIDs from one booking list. The list is
// grouped by item in a single pass, so the cost is linear in the number of
// bookings rather than bookings times items. Items without bookings get an
// empty projection.
func ProjectAll(bookings []models.Booking, itemIDs []string, now time.Time) map[string]models.Projection {
	out := make(map[string]models.Projection, len(itemIDs))
	for _, id := range itemIDs {
		out[id] = models.Projection{}
	}
	for i := range bookings {
		id := bookings[i].Item.ID
		p, ok := out[id]
		if !ok {
			continue
		}
		out[id] = accumulate(p, &bookings[i], now)
	}
	return out
}

func accumulate(p models.Projection, b *models.Booking, now time.Time) models.Projection {
	if b.Status == models.StatusRejected {
		return p
	}
	switch {
	case b.Start.Before(now):
		if p.Last == nil || laterStart(b, p.Last) {
			p.Last = b
		}
	case b.Start.After(now):
		if p.Next == nil || earlierStart(b, p.Next) {
			p.Next = b
		}
	}
	return p
}

func laterStart(a, b *models.Booking) bool {
	if a.Start.Equal(b.Start) {
		return a.ID < b.ID
	}
	return a.Start.After(b.Start)
}

func earlierStart(a, b *models.Booking) bool {
	if a.Start.Equal(b.Start) {
		return a.ID < b.ID
	}
	return a.Start.Before(b.Start)
}
