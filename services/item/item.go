package item

import (
	"context"
	"fmt"
	"time"

	"shareit/models"
	"shareit/services/booking"
)

func (s *DefaultItemService) now() time.Time {
	if s.Clock != nil {
		return s.Clock().UTC()
	}
	return time.Now().UTC()
}

func (s *DefaultItemService) GetItem(ctx context.Context, itemID, userID string) (*models.ItemWithBookings, error) {
	it, err := s.Repo.GetByID(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to load item: %w", err)
	}
	if it == nil {
		return nil, booking.NewItemNotFound(itemID)
	}

	out := withBookings(*it, models.Projection{})
	if !booking.OwnsItem(it.Snapshot(), userID) {
		return &out, nil
	}

	projections, err := s.Bookings.ProjectAvailability(ctx, []string{it.ID}, s.now())
	if err != nil {
		return nil, err
	}
	out = withBookings(*it, projections[it.ID])
	return &out, nil
}

func (s *DefaultItemService) ListOwnerItems(ctx context.Context, ownerID string, page models.Page) ([]models.ItemWithBookings, error) {
	exists, err := s.UserRepo.Exists(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to check user: %w", err)
	}
	if !exists {
		return nil, booking.NewUserNotFound(ownerID)
	}

	items, err := s.Repo.GetByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load items: %w", err)
	}
	items = booking.Paginate(items, page)

	ids := make([]string, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ID)
	}
	projections, err := s.Bookings.ProjectAvailability(ctx, ids, s.now())
	if err != nil {
		return nil, err
	}

	out := make([]models.ItemWithBookings, 0, len(items))
	for _, it := range items {
		out = append(out, withBookings(it, projections[it.ID]))
	}
	return out, nil
}

func withBookings(it models.Item, p models.Projection) models.ItemWithBookings {
	return models.ItemWithBookings{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
		Available:   it.Available,
		RequestID:   it.RequestID,
		LastBooking: p.Last.ToShort(),
		NextBooking: p.Next.ToShort(),
	}
}
