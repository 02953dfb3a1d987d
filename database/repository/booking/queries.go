package bookingRepo

import (
	"time"

	"shareit/models"

	"go.mongodb.org/mongo-driver/bson"
)

// stateFilter narrows base to the state's predicate. The bounds are strict,
// matching the in-memory classifier.
func stateFilter(base bson.M, state models.BookingState, now time.Time) bson.M {
	filter := bson.M{}
	for k, v := range base {
		filter[k] = v
	}
	switch state {
	case models.StateCurrent:
		filter["start"] = bson.M{"$lt": now}
		filter["end"] = bson.M{"$gt": now}
	case models.StatePast:
		filter["end"] = bson.M{"$lt": now}
	case models.StateFuture:
		filter["start"] = bson.M{"$gt": now}
	case models.StateWaiting:
		filter["status"] = models.StatusWaiting
	case models.StateRejected:
		filter["status"] = models.StatusRejected
	}
	return filter
}

func sortFor(state models.BookingState) bson.D {
	dir := -1
	if state.Ascending() {
		dir = 1
	}
	return bson.D{{Key: "start", Value: dir}, {Key: "id", Value: 1}}
}
