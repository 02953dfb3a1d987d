package models

import "time"

// Item is a thing a user lists for others to borrow.
type Item struct {
	ID          string    `bson:"id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Description string    `bson:"description" json:"description"`
	Available   bool      `bson:"available" json:"available"`
	OwnerID     string    `bson:"owner_id" json:"ownerId"`
	RequestID   string    `bson:"request_id,omitempty" json:"requestId,omitempty"`
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updatedAt"`
}

// ItemSnapshot is the denormalized copy of an item stored with each booking.
type ItemSnapshot struct {
	ID        string `bson:"id" json:"id"`
	Name      string `bson:"name" json:"name"`
	Available bool   `bson:"available" json:"available"`
	OwnerID   string `bson:"owner_id" json:"ownerId"`
}

// ItemShort is the item as shown inside a booking view, as of booking time.
type ItemShort struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Available bool   `json:"available"`
}

// ItemWithBookings is an item annotated with its last and next booking.
// The bookings are only filled in for the item's owner.
type ItemWithBookings struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Available   bool          `json:"available"`
	RequestID   string        `json:"requestId,omitempty"`
	LastBooking *BookingShort `json:"lastBooking"`
	NextBooking *BookingShort `json:"nextBooking"`
}

// Snapshot returns the part of the item that is copied into a booking.
func (i Item) Snapshot() ItemSnapshot {
	return ItemSnapshot{
		ID:        i.ID,
		Name:      i.Name,
		Available: i.Available,
		OwnerID:   i.OwnerID,
	}
}
