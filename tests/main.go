// Seeds a local database with demo users and items.
package main

import (
	"context"
	"log"
	"time"

	"shareit/config"
	"shareit/database"
	itemRepoPkg "shareit/database/repository/item"
	userRepoPkg "shareit/database/repository/user"
	"shareit/models"

	"go.mongodb.org/mongo-driver/bson"
)

func main() {
	config.LoadConfig()
	database.InitDB()
	db := database.DB()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	// Clear existing data.
	for _, name := range []string{"users", "items", "bookings"} {
		if _, err := db.Collection(name).DeleteMany(ctx, bson.M{}); err != nil {
			log.Fatalf("Failed to clear %s collection: %v", name, err)
		}
	}

	userRepo := userRepoPkg.NewMongoUserRepo()
	itemRepo := itemRepoPkg.NewMongoItemRepo()

	users := []models.User{
		{ID: "1", Name: "Owner", Email: "owner@example.com"},
		{ID: "2", Name: "Booker", Email: "booker@example.com"},
		{ID: "3", Name: "Bystander", Email: "bystander@example.com"},
	}
	for i := range users {
		if err := userRepo.Create(ctx, &users[i]); err != nil {
			log.Fatalf("Failed to create user %s: %v", users[i].ID, err)
		}
	}

	items := []models.Item{
		{ID: "1", Name: "Drill", Description: "Cordless drill", Available: true, OwnerID: "1"},
		{ID: "2", Name: "Ladder", Description: "Three metre ladder", Available: true, OwnerID: "1"},
		{ID: "3", Name: "Tent", Description: "Two person tent", Available: false, OwnerID: "1"},
	}
	for i := range items {
		if err := itemRepo.Create(ctx, &items[i]); err != nil {
			log.Fatalf("Failed to create item %s: %v", items[i].ID, err)
		}
	}

	log.Printf("Seeded %d users and %d items", len(users), len(items))
}
