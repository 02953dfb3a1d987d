package item

import (
	"context"
	"time"

	itemRepo "shareit/database/repository/item"
	userRepo "shareit/database/repository/user"
	"shareit/models"
	"shareit/services/booking"
)

// ItemService serves item reads annotated with booking availability.
type ItemService interface {
	// GetItem returns the item; last/next bookings are only filled for the owner.
	GetItem(ctx context.Context, itemID, userID string) (*models.ItemWithBookings, error)
	// ListOwnerItems returns the owner's items ordered by id, each with its projection.
	ListOwnerItems(ctx context.Context, ownerID string, page models.Page) ([]models.ItemWithBookings, error)
}

// DefaultItemService implements ItemService.
type DefaultItemService struct {
	Repo     itemRepo.ItemRepository
	UserRepo userRepo.UserRepository
	Bookings booking.BookingService
	Clock    func() time.Time
}
