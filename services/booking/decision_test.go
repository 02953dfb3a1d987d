package booking

import (
	"testing"
	"time"

	"shareit/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitingBooking() models.Booking {
	return models.Booking{
		ID:     "b-1",
		Item:   testItem(),
		Booker: models.UserRef{ID: "booker", Name: "Bob"},
		Start:  t0.Add(time.Hour),
		End:    t0.Add(2 * time.Hour),
		Status: models.StatusWaiting,
	}
}

func TestDecide_Approve(t *testing.T) {
	current := waitingBooking()

	next, err := Decide(current, "owner", true, OwnsItem)
	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, next.Status)
	assert.Equal(t, models.StatusWaiting, current.Status, "input must not change")

	next.Status = current.Status
	assert.Equal(t, current, next, "only the status differs")
}

func TestDecide_Reject(t *testing.T) {
	next, err := Decide(waitingBooking(), "owner", false, OwnsItem)
	require.NoError(t, err)
	assert.Equal(t, models.StatusRejected, next.Status)
}

func TestDecide_NotOwner(t *testing.T) {
	_, err := Decide(waitingBooking(), "booker", true, OwnsItem)
	assert.True(t, IsKind(err, KindForbidden))
}

func TestDecide_NotOwnerCheckedBeforeStatus(t *testing.T) {
	b := waitingBooking()
	b.Status = models.StatusApproved
	_, err := Decide(b, "stranger", true, OwnsItem)
	assert.True(t, IsKind(err, KindForbidden))
}

func TestDecide_AtMostOnce(t *testing.T) {
	for _, first := range []bool{true, false} {
		decided, err := Decide(waitingBooking(), "owner", first, OwnsItem)
		require.NoError(t, err)

		for _, second := range []bool{true, false} {
			again, err := Decide(decided, "owner", second, OwnsItem)
			require.Error(t, err)
			assert.True(t, IsKind(err, KindInvalidState))
			assert.Equal(t, decided.Status, again.Status)
		}
	}
}

func TestDecide_CanceledIsTerminal(t *testing.T) {
	b := waitingBooking()
	b.Status = models.StatusCanceled
	_, err := Decide(b, "owner", true, OwnsItem)
	assert.True(t, IsKind(err, KindInvalidState))
	assert.True(t, models.StatusCanceled.IsTerminal())
	assert.False(t, models.StatusWaiting.IsTerminal())
}

func TestDecide_CustomOwnership(t *testing.T) {
	everyone := func(models.ItemSnapshot, string) bool { return true }
	next, err := Decide(waitingBooking(), "anyone", true, everyone)
	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, next.Status)
}
