package occupancy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func booking(id, placeID int64, d time.Time, slot types.TimeString) *domain.Booking {
	return &domain.Booking{
		ID:        id,
		SalonID:   1,
		BranchID:  10,
		PlaceID:   placeID,
		Date:      d,
		StartTime: slot,
	}
}

func TestIndex_CountAt(t *testing.T) {
	monday := date(2025, 6, 2)
	tuesday := date(2025, 6, 3)

	idx := NewIndex([]*domain.Booking{
		booking(1, 100, monday, "09:00"),
		booking(2, 101, monday, "09:00"),
		booking(3, 100, monday, "09:30"),
		booking(4, 100, tuesday, "09:00"),
	})

	assert.Equal(t, 2, idx.CountAt(monday, "09:00"))
	assert.Equal(t, 1, idx.CountAt(monday, "09:30"))
	assert.Equal(t, 1, idx.CountAt(tuesday, "09:00"))
	assert.Equal(t, 0, idx.CountAt(monday, "10:00"))
	assert.Equal(t, 0, idx.CountAt(tuesday, "09:30"))
}

func TestIndex_AtPlace(t *testing.T) {
	monday := date(2025, 6, 2)

	idx := NewIndex([]*domain.Booking{
		booking(1, 100, monday, "09:00"),
		booking(2, 101, monday, "09:00"),
		booking(3, 100, monday, "09:00"),
	})

	atPlace := idx.AtPlace(monday, "09:00", 100)
	assert.Len(t, atPlace, 2)
	for _, b := range atPlace {
		assert.Equal(t, int64(100), b.PlaceID)
	}

	assert.Empty(t, idx.AtPlace(monday, "09:00", 999))
	assert.Empty(t, idx.AtPlace(monday, "10:00", 100))
}

func TestBucket(t *testing.T) {
	tests := []struct {
		name     string
		count    int
		capacity int
		expected domain.DensityBucket
	}{
		{name: "no bookings is free", count: 0, capacity: 4, expected: domain.BucketFree},
		{name: "no bookings and no capacity is free", count: 0, capacity: 0, expected: domain.BucketFree},
		{name: "bookings with zero capacity is unknown", count: 2, capacity: 0, expected: domain.BucketUnknown},
		{name: "below half is low", count: 1, capacity: 4, expected: domain.BucketLow},
		{name: "exactly half is low", count: 2, capacity: 4, expected: domain.BucketLow},
		{name: "above half is high", count: 3, capacity: 4, expected: domain.BucketHigh},
		{name: "full is high", count: 4, capacity: 4, expected: domain.BucketHigh},
		{name: "overbooked is high", count: 6, capacity: 4, expected: domain.BucketHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Bucket(tt.count, tt.capacity))
		})
	}
}

func TestIsPast(t *testing.T) {
	now := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		date     time.Time
		slot     types.TimeString
		expected bool
	}{
		{name: "earlier slot today", date: date(2025, 6, 2), slot: "11:50", expected: true},
		{name: "current minute is not past", date: date(2025, 6, 2), slot: "12:00", expected: false},
		{name: "later slot today", date: date(2025, 6, 2), slot: "12:10", expected: false},
		{name: "yesterday", date: date(2025, 6, 1), slot: "23:50", expected: true},
		{name: "tomorrow", date: date(2025, 6, 3), slot: "00:00", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsPast(tt.date, tt.slot, now))
		})
	}
}
