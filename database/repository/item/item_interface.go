package itemRepo

import (
	"context"

	"shareit/models"
)

// ItemRepository is the read side of item storage used by bookings, plus Create
// for seeding. Lookups return (nil, nil) when nothing matches.
type ItemRepository interface {
	// GetByID retrieves an item by its id.
	GetByID(ctx context.Context, id string) (*models.Item, error)
	// GetByOwner retrieves all items of an owner ordered by id.
	GetByOwner(ctx context.Context, ownerID string) ([]models.Item, error)
	// Create inserts a new item.
	Create(ctx context.Context, item *models.Item) error
}
