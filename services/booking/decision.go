package booking

import "shareit/models"

// Decide applies the owner's decision to a waiting booking and returns the
// resulting booking. The input is left untouched and only the status differs
// between input and output. Persisting the result and guarding against a
// concurrent decision is the storage layer's job.
func Decide(current models.Booking, actorID string, approve bool, owns Ownership) (models.Booking, error) {
	if owns == nil {
		owns = OwnsItem
	}
	if !owns(current.Item, actorID) {
		return current, NewNotOwner()
	}
	if current.Status != models.StatusWaiting {
		return current, NewAlreadyDecided(current.ID)
	}

	next := current
	if approve {
		next.Status = models.StatusApproved
	} else {
		next.Status = models.StatusRejected
	}
	return next, nil
}
