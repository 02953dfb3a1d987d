package bookingRepo

import (
	"context"
	"errors"
	"time"

	"shareit/models"
)

// ErrStatusConflict is returned by UpdateStatus when the stored status no longer
// matches the expected one, meaning another request decided the booking first.
var ErrStatusConflict = errors.New("booking status changed concurrently")

// BookingRepository defines booking persistence. Lookups return (nil, nil)
// when nothing matches.
type BookingRepository interface {
	// Create inserts a new booking.
	Create(ctx context.Context, booking *models.Booking) error
	// UpdateStatus moves a booking from one status to another, atomically.
	UpdateStatus(ctx context.Context, bookingID string, from, to models.BookingStatus) error
	// GetByID retrieves a booking by its id.
	GetByID(ctx context.Context, bookingID string) (*models.Booking, error)
	// FindByBooker returns the booker's bookings narrowed to the state's predicate.
	FindByBooker(ctx context.Context, bookerID string, state models.BookingState, now time.Time) ([]models.Booking, error)
	// FindByOwner returns bookings of items owned by ownerID narrowed to the state's predicate.
	FindByOwner(ctx context.Context, ownerID string, state models.BookingState, now time.Time) ([]models.Booking, error)
	// FindByItem returns every booking referencing the item.
	FindByItem(ctx context.Context, itemID string) ([]models.Booking, error)
	// FindByItems returns every booking referencing any of the items.
	FindByItems(ctx context.Context, itemIDs []string) ([]models.Booking, error)
}
