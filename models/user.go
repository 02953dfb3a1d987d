// models/user.go
package models

import "time"

// User represents a platform user.
type User struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// UserRef is the minimal user reference embedded in bookings.
type UserRef struct {
	ID   string `bson:"id" json:"id"`
	Name string `bson:"name,omitempty" json:"name,omitempty"`
}

// Ref returns the embeddable reference to the user.
func (u User) Ref() UserRef {
	return UserRef{ID: u.ID, Name: u.Name}
}
