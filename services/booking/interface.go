package booking

import (
	"context"
	"time"

	bookingRepo "shareit/database/repository/booking"
	itemRepo "shareit/database/repository/item"
	userRepo "shareit/database/repository/user"
	"shareit/models"

	"go.uber.org/zap"
)

// BookingService is the booking lifecycle exposed to the transport layer.
type BookingService interface {
	CreateBooking(ctx context.Context, req models.BookingRequestInput, bookerID string) (*models.BookingView, error)
	Decide(ctx context.Context, bookingID, actorID string, approve bool) (*models.BookingView, error)
	GetBooking(ctx context.Context, bookingID, actorID string) (*models.BookingView, error)
	ListForBooker(ctx context.Context, bookerID, state string, page models.Page) ([]models.BookingView, error)
	ListForOwner(ctx context.Context, ownerID, state string, page models.Page) ([]models.BookingView, error)
	ProjectAvailability(ctx context.Context, itemIDs []string, now time.Time) (map[string]models.Projection, error)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Repo     bookingRepo.BookingRepository
	ItemRepo itemRepo.ItemRepository
	UserRepo userRepo.UserRepository
	Logger   *zap.Logger

	// Owns defaults to OwnsItem.
	Owns Ownership
	// Clock defaults to time.Now.
	Clock func() time.Time
}

func (s *DefaultBookingService) now() time.Time {
	if s.Clock != nil {
		return s.Clock().UTC()
	}
	return time.Now().UTC()
}

func (s *DefaultBookingService) owns() Ownership {
	if s.Owns != nil {
		return s.Owns
	}
	return OwnsItem
}

func (s *DefaultBookingService) logger() *zap.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return zap.NewNop()
}
