package slotgrid

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/schedule/hours"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestSlots(t *testing.T) {
	tests := []struct {
		name        string
		open        types.TimeString
		close       types.TimeString
		granularity int
		expected    []types.TimeString
	}{
		{
			name:        "half hour grid excludes close label",
			open:        "09:00",
			close:       "11:00",
			granularity: 30,
			expected:    []types.TimeString{"09:00", "09:30", "10:00", "10:30"},
		},
		{
			name:        "ten minute grid",
			open:        "09:00",
			close:       "09:40",
			granularity: 10,
			expected:    []types.TimeString{"09:00", "09:10", "09:20", "09:30"},
		},
		{
			name:        "window not divisible by step keeps partial slot",
			open:        "09:00",
			close:       "09:45",
			granularity: 30,
			expected:    []types.TimeString{"09:00", "09:30"},
		},
		{
			name:        "single slot window",
			open:        "09:00",
			close:       "09:10",
			granularity: 30,
			expected:    []types.TimeString{"09:00"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots, err := Slots(tt.open, tt.close, tt.granularity)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, slots)
		})
	}
}

func TestSlots_Errors(t *testing.T) {
	t.Run("open after close", func(t *testing.T) {
		_, err := Slots("18:00", "09:00", 30)
		assert.ErrorIs(t, err, ErrInvalidWindow)
	})

	t.Run("open equals close", func(t *testing.T) {
		_, err := Slots("09:00", "09:00", 30)
		assert.ErrorIs(t, err, ErrInvalidWindow)
	})

	t.Run("zero granularity", func(t *testing.T) {
		_, err := Slots("09:00", "18:00", 0)
		assert.ErrorIs(t, err, ErrInvalidGranularity)
	})

	t.Run("negative granularity", func(t *testing.T) {
		_, err := Slots("09:00", "18:00", -10)
		assert.ErrorIs(t, err, ErrInvalidGranularity)
	})
}

func TestUnionWindow(t *testing.T) {
	windows := map[string]*hours.Window{
		"2025-06-02": {Open: "09:00", Close: "12:00"}, // понедельник
		"2025-06-06": {Open: "15:00", Close: "18:00"}, // пятница
	}
	resolve := func(d time.Time) (*hours.Window, error) {
		return windows[d.Format(domain.DateFormat)], nil
	}

	dates := []time.Time{
		date(2025, 6, 2),
		date(2025, 6, 3),
		date(2025, 6, 6),
	}

	result, err := UnionWindow(dates, resolve)
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("09:00"), result.Open)
	assert.Equal(t, types.TimeString("18:00"), result.Close)
	assert.False(t, result.UsedFallback)
}

func TestUnionWindow_Fallback(t *testing.T) {
	resolve := func(d time.Time) (*hours.Window, error) {
		return nil, nil // все дни нерабочие
	}

	result, err := UnionWindow([]time.Time{date(2025, 6, 2), date(2025, 6, 3)}, resolve)
	require.NoError(t, err)
	assert.Equal(t, types.TimeString(domain.FallbackOpenTime), result.Open)
	assert.Equal(t, types.TimeString(domain.FallbackCloseTime), result.Close)
	assert.True(t, result.UsedFallback)
}

func TestUnionWindow_PropagatesResolveError(t *testing.T) {
	resolve := func(d time.Time) (*hours.Window, error) {
		return nil, hours.ErrMalformedSchedule
	}

	_, err := UnionWindow([]time.Time{date(2025, 6, 2)}, resolve)
	assert.ErrorIs(t, err, hours.ErrMalformedSchedule)
}
