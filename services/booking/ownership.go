package booking

import "shareit/models"

// Ownership decides whether a user owns an item. Validate and Decide both take one.
type Ownership func(item models.ItemSnapshot, userID string) bool

// OwnsItem is the default ownership rule: the item's owner id equals the user id.
func OwnsItem(item models.ItemSnapshot, userID string) bool {
	return userID != "" && item.OwnerID == userID
}
