package booking

import (
	"testing"
	"time"

	"shareit/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2023, 10, 15, 12, 0, 0, 0, time.UTC)

func testItem() models.ItemSnapshot {
	return models.ItemSnapshot{ID: "item-1", Name: "Drill", Available: true, OwnerID: "owner"}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		cand Candidate
		kind ErrorKind
	}{
		{
			name: "valid",
			cand: Candidate{Item: testItem(), BookerID: "booker", Start: t0, End: t0.Add(time.Hour)},
		},
		{
			name: "owner books own item",
			cand: Candidate{Item: testItem(), BookerID: "owner", Start: t0, End: t0.Add(time.Hour)},
			kind: KindForbidden,
		},
		{
			name: "item unavailable",
			cand: Candidate{
				Item:     models.ItemSnapshot{ID: "item-1", OwnerID: "owner"},
				BookerID: "booker", Start: t0, End: t0.Add(time.Hour),
			},
			kind: KindNotAvailable,
		},
		{
			name: "end equals start",
			cand: Candidate{Item: testItem(), BookerID: "booker", Start: t0, End: t0},
			kind: KindNotAvailable,
		},
		{
			name: "end before start",
			cand: Candidate{Item: testItem(), BookerID: "booker", Start: t0, End: t0.Add(-time.Minute)},
			kind: KindNotAvailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.cand, OwnsItem)
			if tt.kind == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.kind, KindOf(err))
		})
	}
}

func TestValidate_SelfBookingWinsOverUnavailable(t *testing.T) {
	item := models.ItemSnapshot{ID: "item-1", OwnerID: "owner"}
	err := Validate(Candidate{Item: item, BookerID: "owner", Start: t0, End: t0.Add(time.Hour)}, nil)
	assert.True(t, IsKind(err, KindForbidden))
}

func TestOwnsItem(t *testing.T) {
	assert.True(t, OwnsItem(testItem(), "owner"))
	assert.False(t, OwnsItem(testItem(), "booker"))
	assert.False(t, OwnsItem(models.ItemSnapshot{}, ""))
}
