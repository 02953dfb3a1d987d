package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"shareit/database"
	"shareit/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a repository on the application database.
func NewMongoBookingRepo() BookingRepository {
	repo := NewMongoBookingRepoWithCollection(database.DB().Collection("bookings"))
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create booking indexes: %v\n", err)
	}
	return repo
}

// NewMongoBookingRepoWithCollection builds a repository on an explicit collection.
func NewMongoBookingRepoWithCollection(coll *mongo.Collection) *MongoBookingRepo {
	return &MongoBookingRepo{coll: coll}
}

// Create inserts a new booking document.
func (repo *MongoBookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctx, booking); err != nil {
		return fmt.Errorf("error creating booking: %w", err)
	}
	return nil
}

// UpdateStatus sets the status only if the document still holds the expected
// one. The status filter makes the read-modify-write a single atomic update, so
// two concurrent decisions cannot both succeed.
func (repo *MongoBookingRepo) UpdateStatus(ctx context.Context, bookingID string, from, to models.BookingStatus) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": bookingID, "status": from}
	update := bson.M{"$set": bson.M{"status": to, "updated_at": time.Now().UTC()}}
	res, err := repo.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("error updating booking %s: %w", bookingID, err)
	}
	if res.MatchedCount == 0 {
		return ErrStatusConflict
	}
	return nil
}

// GetByID retrieves a booking document by id.
func (repo *MongoBookingRepo) GetByID(ctx context.Context, bookingID string) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var booking models.Booking
	if err := repo.coll.FindOne(ctx, bson.M{"id": bookingID}).Decode(&booking); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching booking with id %s: %w", bookingID, err)
	}
	return &booking, nil
}

// FindByBooker returns bookings made by the user.
func (repo *MongoBookingRepo) FindByBooker(ctx context.Context, bookerID string, state models.BookingState, now time.Time) ([]models.Booking, error) {
	filter := stateFilter(bson.M{"booker.id": bookerID}, state, now)
	return repo.find(ctx, filter, sortFor(state))
}

// FindByOwner returns bookings of the items owned by the user.
func (repo *MongoBookingRepo) FindByOwner(ctx context.Context, ownerID string, state models.BookingState, now time.Time) ([]models.Booking, error) {
	filter := stateFilter(bson.M{"item.owner_id": ownerID}, state, now)
	return repo.find(ctx, filter, sortFor(state))
}

// FindByItem returns all bookings of one item.
func (repo *MongoBookingRepo) FindByItem(ctx context.Context, itemID string) ([]models.Booking, error) {
	return repo.find(ctx, bson.M{"item.id": itemID}, nil)
}

// FindByItems returns all bookings of the given items.
func (repo *MongoBookingRepo) FindByItems(ctx context.Context, itemIDs []string) ([]models.Booking, error) {
	if len(itemIDs) == 0 {
		return []models.Booking{}, nil
	}
	return repo.find(ctx, bson.M{"item.id": bson.M{"$in": itemIDs}}, nil)
}

func (repo *MongoBookingRepo) find(ctx context.Context, filter bson.M, sort bson.D) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find()
	if sort != nil {
		opts.SetSort(sort)
	}
	cursor, err := repo.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error finding bookings: %w", err)
	}
	defer cursor.Close(ctx)

	bookings := []models.Booking{}
	for cursor.Next(ctx) {
		var b models.Booking
		if err := cursor.Decode(&b); err != nil {
			return nil, fmt.Errorf("error decoding booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return bookings, nil
}
