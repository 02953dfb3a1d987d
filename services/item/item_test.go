package item

import (
	"context"
	"testing"
	"time"

	"shareit/database/repository/memory"
	"shareit/models"
	"shareit/services/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2023, 10, 15, 0, 0, 0, 0, time.UTC)

func newService(t *testing.T) *DefaultItemService {
	t.Helper()
	items := memory.NewItemRepo(
		models.Item{ID: "i-2", Name: "Saw", Available: true, OwnerID: "owner"},
		models.Item{ID: "i-1", Name: "Drill", Available: true, OwnerID: "owner"},
		models.Item{ID: "i-3", Name: "Tent", Available: true, OwnerID: "other"},
	)
	users := memory.NewUserRepo(
		models.User{ID: "owner", Name: "Olga"},
		models.User{ID: "booker", Name: "Bob"},
	)
	bookings := memory.NewBookingRepo()
	ctx := context.Background()
	for _, b := range []models.Booking{
		{ID: "b-last", Item: models.ItemSnapshot{ID: "i-1", OwnerID: "owner"}, Booker: models.UserRef{ID: "booker"},
			Start: now.AddDate(0, 0, -14), End: now.AddDate(0, 0, -13), Status: models.StatusApproved},
		{ID: "b-next", Item: models.ItemSnapshot{ID: "i-1", OwnerID: "owner"}, Booker: models.UserRef{ID: "booker"},
			Start: now.AddDate(0, 0, 5), End: now.AddDate(0, 0, 6), Status: models.StatusWaiting},
		{ID: "b-rejected", Item: models.ItemSnapshot{ID: "i-2", OwnerID: "owner"}, Booker: models.UserRef{ID: "booker"},
			Start: now.AddDate(0, 0, 1), End: now.AddDate(0, 0, 2), Status: models.StatusRejected},
	} {
		require.NoError(t, bookings.Create(ctx, &b))
	}

	clock := func() time.Time { return now }
	return &DefaultItemService{
		Repo:     items,
		UserRepo: users,
		Bookings: &booking.DefaultBookingService{Repo: bookings, ItemRepo: items, UserRepo: users, Clock: clock},
		Clock:    clock,
	}
}

func TestGetItem_OwnerSeesProjection(t *testing.T) {
	svc := newService(t)

	got, err := svc.GetItem(context.Background(), "i-1", "owner")
	require.NoError(t, err)
	require.NotNil(t, got.LastBooking)
	require.NotNil(t, got.NextBooking)
	assert.Equal(t, "b-last", got.LastBooking.ID)
	assert.Equal(t, "b-next", got.NextBooking.ID)
}

func TestGetItem_OthersDoNot(t *testing.T) {
	svc := newService(t)

	got, err := svc.GetItem(context.Background(), "i-1", "booker")
	require.NoError(t, err)
	assert.Equal(t, "Drill", got.Name)
	assert.Nil(t, got.LastBooking)
	assert.Nil(t, got.NextBooking)
}

func TestGetItem_NotFound(t *testing.T) {
	svc := newService(t)

	_, err := svc.GetItem(context.Background(), "missing", "owner")
	assert.True(t, booking.IsKind(err, booking.KindNotFound))
}

func TestListOwnerItems(t *testing.T) {
	svc := newService(t)

	items, err := svc.ListOwnerItems(context.Background(), "owner", models.Page{From: 0, Size: 10})
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "i-1", items[0].ID)
	assert.Equal(t, "i-2", items[1].ID)
	assert.Equal(t, "b-next", items[0].NextBooking.ID)
	assert.Nil(t, items[1].NextBooking, "rejected bookings are not projected")

	items, err = svc.ListOwnerItems(context.Background(), "owner", models.Page{From: 1, Size: 1})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "i-2", items[0].ID)

	_, err = svc.ListOwnerItems(context.Background(), "ghost", models.Page{From: 0, Size: 10})
	assert.True(t, booking.IsKind(err, booking.KindNotFound))
}
