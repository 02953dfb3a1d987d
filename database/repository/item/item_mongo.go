package itemRepo

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

// MongoItemRepo implements ItemRepository using MongoDB.
type MongoItemRepo struct {
	coll *mongo.Collection
}

// NewMongoItemRepo creates a new instance of ItemRepository using MongoDB.
func NewMongoItemRepo() ItemRepository {
	repo := &MongoItemRepo{coll: database.DB().Collection("items")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create item indexes: %v\n", err)
	}
	return repo
}

func (r *MongoItemRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "owner_id", Value: 1}, {Key: "id", Value: 1}}},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves an item by id.
func (r *MongoItemRepo) GetByID(ctx context.Context, id string) (*models.Item, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var item models.Item
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&item); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch item with id %s: %w", id, err)
	}
	return &item, nil
}

// GetByOwner retrieves every item of an owner.
func (r *MongoItemRepo) GetByOwner(ctx context.Context, ownerID string) ([]models.Item, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "id", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"owner_id": ownerID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve items of owner %s: %w", ownerID, err)
	}
	defer cursor.Close(ctx)

	items := []models.Item{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("failed to decode items: %w", err)
	}
	return items, nil
}

// Create inserts a new item document.
func (r *MongoItemRepo) Create(ctx context.Context, item *models.Item) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now().UTC()
	item.CreatedAt = now
	item.UpdatedAt = now
	if _, err := r.coll.InsertOne(ctx, item); err != nil {
		return fmt.Errorf("failed to create item: %w", err)
	}
	return nil
}
