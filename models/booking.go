package models

import "time"

// BookingStatus is the lifecycle status of a booking.
type BookingStatus string

const (
	StatusWaiting  BookingStatus = "WAITING"
	StatusApproved BookingStatus = "APPROVED"
	StatusRejected BookingStatus = "REJECTED"
	StatusCanceled BookingStatus = "CANCELED"
)

// IsTerminal reports whether no further status change is allowed.
func (s BookingStatus) IsTerminal() bool {
	return s != StatusWaiting
}

func (s BookingStatus) String() string {
	return string(s)
}

// Booking represents one reservation request against an item.
type Booking struct {
	ID        string        `bson:"id" json:"id"`
	Item      ItemSnapshot  `bson:"item" json:"item"`
	Booker    UserRef       `bson:"booker" json:"booker"`
	Start     time.Time     `bson:"start" json:"start"`
	End       time.Time     `bson:"end" json:"end"`
	Status    BookingStatus `bson:"status" json:"status"`
	CreatedAt time.Time     `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time     `bson:"updated_at" json:"updatedAt"`
}

// BookingRequestInput is the payload accepted when a booking is requested.
// Start and End may be sent without a zone, see UnmarshalJSON.
type BookingRequestInput struct {
	ItemID string    `json:"itemId" binding:"required"`
	Start  time.Time `json:"start" binding:"required,notpast"`
	End    time.Time `json:"end" binding:"required,notpast"`
}

// BookingView is the externally visible booking.
type BookingView struct {
	ID     string        `json:"id"`
	Item   ItemShort     `json:"item"`
	Booker UserRef       `json:"booker"`
	Start  time.Time     `json:"start"`
	End    time.Time     `json:"end"`
	Status BookingStatus `json:"status"`
}

// BookingShort is the compact booking attached to item listings.
type BookingShort struct {
	ID       string        `json:"id"`
	BookerID string        `json:"bookerId"`
	Start    time.Time     `json:"start"`
	End      time.Time     `json:"end"`
	Status   BookingStatus `json:"status"`
}

// Projection holds the last and next non-rejected bookings of an item.
type Projection struct {
	Last *Booking
	Next *Booking
}

// ToView converts a booking into its external representation. The item's
// Available flag is the value captured when the booking was made.
func (b Booking) ToView() BookingView {
	return BookingView{
		ID: b.ID,
		Item: ItemShort{
			ID:        b.Item.ID,
			Name:      b.Item.Name,
			Available: b.Item.Available,
		},
		Booker: b.Booker,
		Start:  b.Start,
		End:    b.End,
		Status: b.Status,
	}
}

// ToShort converts a booking into the compact listing form. A nil booking yields nil.
func (b *Booking) ToShort() *BookingShort {
	if b == nil {
		return nil
	}
	return &BookingShort{
		ID:       b.ID,
		BookerID: b.Booker.ID,
		Start:    b.Start,
		End:      b.End,
		Status:   b.Status,
	}
}
