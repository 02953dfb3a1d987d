// Package memory holds in-process repositories with the same contracts as the
// Mongo ones, for tests.
package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	bookingRepo "shareit/database/repository/booking"
	"shareit/models"
)

// BookingRepo is an in-memory bookingRepo.BookingRepository.
type BookingRepo struct {
	mu       sync.Mutex
	bookings map[string]models.Booking
}

func NewBookingRepo() *BookingRepo {
	return &BookingRepo{bookings: make(map[string]models.Booking)}
}

func (r *BookingRepo) Create(_ context.Context, b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.bookings[b.ID]; ok {
		return fmt.Errorf("booking %s already exists", b.ID)
	}
	r.bookings[b.ID] = *b
	return nil
}

func (r *BookingRepo) UpdateStatus(_ context.Context, id string, from, to models.BookingStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok || b.Status != from {
		return bookingRepo.ErrStatusConflict
	}
	b.Status = to
	b.UpdatedAt = time.Now().UTC()
	r.bookings[id] = b
	return nil
}

func (r *BookingRepo) GetByID(_ context.Context, id string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return nil, nil
	}
	return &b, nil
}

// FindByBooker ignores the state; the classifier applies it.
func (r *BookingRepo) FindByBooker(_ context.Context, bookerID string, _ models.BookingState, _ time.Time) ([]models.Booking, error) {
	return r.filter(func(b models.Booking) bool { return b.Booker.ID == bookerID }), nil
}

// FindByOwner ignores the state; the classifier applies it.
func (r *BookingRepo) FindByOwner(_ context.Context, ownerID string, _ models.BookingState, _ time.Time) ([]models.Booking, error) {
	return r.filter(func(b models.Booking) bool { return b.Item.OwnerID == ownerID }), nil
}

func (r *BookingRepo) FindByItem(_ context.Context, itemID string) ([]models.Booking, error) {
	return r.filter(func(b models.Booking) bool { return b.Item.ID == itemID }), nil
}

func (r *BookingRepo) FindByItems(_ context.Context, itemIDs []string) ([]models.Booking, error) {
	return r.filter(func(b models.Booking) bool { return slices.Contains(itemIDs, b.Item.ID) }), nil
}

func (r *BookingRepo) filter(keep func(models.Booking) bool) []models.Booking {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.Booking{}
	for _, b := range r.bookings {
		if keep(b) {
			out = append(out, b)
		}
	}
	return out
}

// ItemRepo is an in-memory itemRepo.ItemRepository.
type ItemRepo struct {
	mu    sync.Mutex
	items map[string]models.Item
}

func NewItemRepo(items ...models.Item) *ItemRepo {
	r := &ItemRepo{items: make(map[string]models.Item)}
	for _, it := range items {
		r.items[it.ID] = it
	}
	return r
}

func (r *ItemRepo) GetByID(_ context.Context, id string) (*models.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	it, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return &it, nil
}

func (r *ItemRepo) GetByOwner(_ context.Context, ownerID string) ([]models.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.Item{}
	for _, it := range r.items {
		if it.OwnerID == ownerID {
			out = append(out, it)
		}
	}
	slices.SortFunc(out, func(a, b models.Item) int { return cmp.Compare(a.ID, b.ID) })
	return out, nil
}

func (r *ItemRepo) Create(_ context.Context, it *models.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[it.ID]; ok {
		return fmt.Errorf("item %s already exists", it.ID)
	}
	r.items[it.ID] = *it
	return nil
}

// UserRepo is an in-memory userRepo.UserRepository.
type UserRepo struct {
	mu    sync.Mutex
	users map[string]models.User
}

func NewUserRepo(users ...models.User) *UserRepo {
	r := &UserRepo{users: make(map[string]models.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *UserRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *UserRepo) Exists(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.users[id]
	return ok, nil
}

func (r *UserRepo) Create(_ context.Context, u *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[u.ID]; ok {
		return fmt.Errorf("user %s already exists", u.ID)
	}
	r.users[u.ID] = *u
	return nil
}
