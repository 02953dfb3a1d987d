package bookingRepo

import (
	"context"
	"testing"
	"time"

	"shareit/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

const ns = "shareit.bookings"

func bookingDoc(id string, start time.Time, status models.BookingStatus) bson.D {
	return bson.D{
		{Key: "id", Value: id},
		{Key: "item", Value: bson.D{{Key: "id", Value: "item-1"}, {Key: "owner_id", Value: "owner"}, {Key: "available", Value: true}}},
		{Key: "booker", Value: bson.D{{Key: "id", Value: "booker"}}},
		{Key: "start", Value: start},
		{Key: "end", Value: start.Add(time.Hour)},
		{Key: "status", Value: string(status)},
	}
}

func TestMongoBookingRepo(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	start := time.Date(2023, 10, 20, 10, 0, 0, 0, time.UTC)

	mt.Run("update status matched", func(mt *mtest.T) {
		repo := NewMongoBookingRepoWithCollection(mt.Coll)
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		))
		err := repo.UpdateStatus(context.Background(), "b-1", models.StatusWaiting, models.StatusApproved)
		assert.NoError(mt, err)
	})

	mt.Run("update status already decided", func(mt *mtest.T) {
		repo := NewMongoBookingRepoWithCollection(mt.Coll)
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 0},
			bson.E{Key: "nModified", Value: 0},
		))
		err := repo.UpdateStatus(context.Background(), "b-1", models.StatusWaiting, models.StatusRejected)
		assert.ErrorIs(mt, err, ErrStatusConflict)
	})

	mt.Run("update status write error", func(mt *mtest.T) {
		repo := NewMongoBookingRepoWithCollection(mt.Coll)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code: 11000, Message: "boom", Name: "Boom",
		}))
		err := repo.UpdateStatus(context.Background(), "b-1", models.StatusWaiting, models.StatusRejected)
		require.Error(mt, err)
		assert.NotErrorIs(mt, err, ErrStatusConflict)
	})

	mt.Run("get by id", func(mt *mtest.T) {
		repo := NewMongoBookingRepoWithCollection(mt.Coll)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bookingDoc("b-1", start, models.StatusWaiting)))

		b, err := repo.GetByID(context.Background(), "b-1")
		require.NoError(mt, err)
		require.NotNil(mt, b)
		assert.Equal(mt, "b-1", b.ID)
		assert.Equal(mt, "owner", b.Item.OwnerID)
		assert.Equal(mt, models.StatusWaiting, b.Status)
		assert.True(mt, start.Equal(b.Start))
	})

	mt.Run("get by id missing", func(mt *mtest.T) {
		repo := NewMongoBookingRepoWithCollection(mt.Coll)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		b, err := repo.GetByID(context.Background(), "nope")
		assert.NoError(mt, err)
		assert.Nil(mt, b)
	})

	mt.Run("find by owner", func(mt *mtest.T) {
		repo := NewMongoBookingRepoWithCollection(mt.Coll)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bookingDoc("b-2", start.Add(24*time.Hour), models.StatusWaiting),
			bookingDoc("b-1", start, models.StatusWaiting),
		))

		got, err := repo.FindByOwner(context.Background(), "owner", models.StateWaiting, start)
		require.NoError(mt, err)
		require.Len(mt, got, 2)
		assert.Equal(mt, "b-2", got[0].ID)
	})

	mt.Run("find by items empty input", func(mt *mtest.T) {
		repo := NewMongoBookingRepoWithCollection(mt.Coll)
		got, err := repo.FindByItems(context.Background(), nil)
		require.NoError(mt, err)
		assert.Empty(mt, got)
	})

	mt.Run("create", func(mt *mtest.T) {
		repo := NewMongoBookingRepoWithCollection(mt.Coll)
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		err := repo.Create(context.Background(), &models.Booking{ID: "b-3", Start: start, End: start.Add(time.Hour)})
		assert.NoError(mt, err)
	})
}
