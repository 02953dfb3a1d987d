package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	bookingRepo "shareit/database/repository/booking"
	"shareit/database/repository/memory"
	"shareit/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type fixture struct {
	svc      *DefaultBookingService
	bookings *memory.BookingRepo
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	bookings := memory.NewBookingRepo()
	svc := &DefaultBookingService{
		Repo: bookings,
		ItemRepo: memory.NewItemRepo(
			models.Item{ID: "item-1", Name: "Drill", Available: true, OwnerID: "owner"},
			models.Item{ID: "item-2", Name: "Ladder", Available: false, OwnerID: "owner"},
		),
		UserRepo: memory.NewUserRepo(
			models.User{ID: "owner", Name: "Olga"},
			models.User{ID: "booker", Name: "Bob"},
			models.User{ID: "stranger", Name: "Sam"},
		),
		Logger: zaptest.NewLogger(t),
		Clock:  func() time.Time { return t0 },
	}
	return fixture{svc: svc, bookings: bookings}
}

func request(itemID string) models.BookingRequestInput {
	return models.BookingRequestInput{
		ItemID: itemID,
		Start:  t0.Add(time.Hour),
		End:    t0.Add(2 * time.Hour),
	}
}

var firstPage = models.Page{From: 0, Size: 10}

func TestService_Lifecycle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.svc.CreateBooking(ctx, request("item-1"), "booker")
	require.NoError(t, err)
	assert.Equal(t, models.StatusWaiting, created.Status)
	assert.Equal(t, "item-1", created.Item.ID)
	assert.Equal(t, "Bob", created.Booker.Name)

	waiting, err := f.svc.ListForOwner(ctx, "owner", "WAITING", firstPage)
	require.NoError(t, err)
	require.Len(t, waiting, 1)

	approved, err := f.svc.Decide(ctx, created.ID, "owner", true)
	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, approved.Status)

	_, err = f.svc.Decide(ctx, created.ID, "owner", false)
	assert.True(t, IsKind(err, KindInvalidState))

	waiting, err = f.svc.ListForOwner(ctx, "owner", "WAITING", firstPage)
	require.NoError(t, err)
	assert.Empty(t, waiting)

	all, err := f.svc.ListForBooker(ctx, "booker", "ALL", firstPage)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, models.StatusApproved, all[0].Status)

	future, err := f.svc.ListForBooker(ctx, "booker", "FUTURE", firstPage)
	require.NoError(t, err)
	assert.Len(t, future, 1)
}

func TestService_CreateRejections(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.CreateBooking(ctx, request("item-1"), "ghost")
	assert.True(t, IsKind(err, KindNotFound))

	_, err = f.svc.CreateBooking(ctx, request("missing"), "booker")
	assert.True(t, IsKind(err, KindNotFound))

	_, err = f.svc.CreateBooking(ctx, request("item-1"), "owner")
	assert.True(t, IsKind(err, KindForbidden))

	_, err = f.svc.CreateBooking(ctx, request("item-2"), "booker")
	assert.True(t, IsKind(err, KindNotAvailable))

	bad := request("item-1")
	bad.End = bad.Start
	_, err = f.svc.CreateBooking(ctx, bad, "booker")
	assert.True(t, IsKind(err, KindNotAvailable))

	stored, _ := f.bookings.FindByItem(ctx, "item-1")
	assert.Empty(t, stored, "rejected requests are not stored")
}

func TestService_DecideRejections(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.Decide(ctx, "nope", "owner", true)
	assert.True(t, IsKind(err, KindNotFound))

	created, err := f.svc.CreateBooking(ctx, request("item-1"), "booker")
	require.NoError(t, err)

	_, err = f.svc.Decide(ctx, created.ID, "booker", true)
	assert.True(t, IsKind(err, KindForbidden))

	rejected, err := f.svc.Decide(ctx, created.ID, "owner", false)
	require.NoError(t, err)
	assert.Equal(t, models.StatusRejected, rejected.Status)

	list, err := f.svc.ListForBooker(ctx, "booker", "REJECTED", firstPage)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

// conflictRepo simulates another request deciding the booking between the
// read and the conditional write.
type conflictRepo struct {
	*memory.BookingRepo
}

func (conflictRepo) UpdateStatus(context.Context, string, models.BookingStatus, models.BookingStatus) error {
	return bookingRepo.ErrStatusConflict
}

func TestService_DecideConcurrentConflict(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.svc.CreateBooking(ctx, request("item-1"), "booker")
	require.NoError(t, err)

	f.svc.Repo = conflictRepo{f.bookings}
	_, err = f.svc.Decide(ctx, created.ID, "owner", true)
	assert.True(t, IsKind(err, KindInvalidState))
}

type failingRepo struct {
	*memory.BookingRepo
}

func (failingRepo) FindByBooker(context.Context, string, models.BookingState, time.Time) ([]models.Booking, error) {
	return nil, errors.New("connection reset")
}

func TestService_StorageErrorIsNotDomainError(t *testing.T) {
	f := newFixture(t)
	f.svc.Repo = failingRepo{f.bookings}

	_, err := f.svc.ListForBooker(context.Background(), "booker", "ALL", firstPage)
	require.Error(t, err)
	assert.Equal(t, ErrorKind(""), KindOf(err))
	assert.Contains(t, err.Error(), "connection reset")
}

func TestService_GetBookingVisibility(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.svc.CreateBooking(ctx, request("item-1"), "booker")
	require.NoError(t, err)

	for _, who := range []string{"booker", "owner"} {
		got, err := f.svc.GetBooking(ctx, created.ID, who)
		require.NoError(t, err, who)
		assert.Equal(t, created.ID, got.ID)
	}

	_, err = f.svc.GetBooking(ctx, created.ID, "stranger")
	assert.True(t, IsKind(err, KindForbidden))

	_, err = f.svc.GetBooking(ctx, "missing", "booker")
	assert.True(t, IsKind(err, KindNotFound))
}

func TestService_ListValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.ListForBooker(ctx, "booker", "UNSUPPORTED_STATUS", firstPage)
	require.Error(t, err)
	assert.True(t, IsKind(err, KindInvalidState))
	assert.Contains(t, err.Error(), "Unknown state: UNSUPPORTED_STATUS")

	_, err = f.svc.ListForOwner(ctx, "ghost", "ALL", firstPage)
	assert.True(t, IsKind(err, KindNotFound))
}

func TestService_ListPagination(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		req := request("item-1")
		req.Start = req.Start.Add(time.Duration(i) * 24 * time.Hour)
		req.End = req.End.Add(time.Duration(i) * 24 * time.Hour)
		_, err := f.svc.CreateBooking(ctx, req, "booker")
		require.NoError(t, err)
	}

	page, err := f.svc.ListForBooker(ctx, "booker", "ALL", models.Page{From: 2, Size: 2})
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.True(t, page[0].Start.After(page[1].Start))
	assert.Equal(t, t0.Add(time.Hour+2*24*time.Hour), page[0].Start)
}

func TestService_ProjectAvailability(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	past := &models.Booking{
		ID: "past", Item: models.ItemSnapshot{ID: "item-1", OwnerID: "owner"},
		Start: day(1), End: day(2), Status: models.StatusApproved,
	}
	next := &models.Booking{
		ID: "next", Item: models.ItemSnapshot{ID: "item-1", OwnerID: "owner"},
		Start: day(20), End: day(21), Status: models.StatusWaiting,
	}
	require.NoError(t, f.bookings.Create(ctx, past))
	require.NoError(t, f.bookings.Create(ctx, next))

	single, err := f.svc.ProjectAvailability(ctx, []string{"item-1"}, day(15))
	require.NoError(t, err)
	assert.Equal(t, "past", single["item-1"].Last.ID)
	assert.Equal(t, "next", single["item-1"].Next.ID)

	many, err := f.svc.ProjectAvailability(ctx, []string{"item-1", "item-2"}, day(15))
	require.NoError(t, err)
	assert.Equal(t, "past", many["item-1"].Last.ID)
	assert.Nil(t, many["item-2"].Last)

	none, err := f.svc.ProjectAvailability(ctx, nil, day(15))
	require.NoError(t, err)
	assert.Empty(t, none)
}
