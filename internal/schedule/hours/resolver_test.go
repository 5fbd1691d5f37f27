package hours

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestResolve_WorkingDay(t *testing.T) {
	weekly := &domain.WeeklyHours{
		Monday: domain.DayHours{Enabled: true, Open: "09:00", Close: "18:00"},
	}

	// 2025-06-02 - понедельник
	window, err := Resolve(weekly, date(2025, 6, 2))
	require.NoError(t, err)
	require.NotNil(t, window)
	assert.Equal(t, types.TimeString("09:00"), window.Open)
	assert.Equal(t, types.TimeString("18:00"), window.Close)
}

func TestResolve_NonWorkingDay(t *testing.T) {
	weekly := &domain.WeeklyHours{
		Monday: domain.DayHours{Enabled: true, Open: "09:00", Close: "18:00"},
		Sunday: domain.DayHours{Enabled: false, Open: "10:00", Close: "16:00"},
	}

	// 2025-06-08 - воскресенье, день выключен: окна нет, ошибки тоже нет
	window, err := Resolve(weekly, date(2025, 6, 8))
	require.NoError(t, err)
	assert.Nil(t, window)
}

func TestResolve_NilSchedule(t *testing.T) {
	window, err := Resolve(nil, date(2025, 6, 2))
	require.NoError(t, err)
	assert.Nil(t, window)
}

func TestResolve_MalformedSchedule(t *testing.T) {
	tests := []struct {
		name string
		day  domain.DayHours
	}{
		{
			name: "invalid open time",
			day:  domain.DayHours{Enabled: true, Open: "25:00", Close: "18:00"},
		},
		{
			name: "invalid close time",
			day:  domain.DayHours{Enabled: true, Open: "09:00", Close: "18:60"},
		},
		{
			name: "open equals close",
			day:  domain.DayHours{Enabled: true, Open: "09:00", Close: "09:00"},
		},
		{
			name: "overnight window rejected",
			day:  domain.DayHours{Enabled: true, Open: "22:00", Close: "02:00"},
		},
		{
			name: "empty times on enabled day",
			day:  domain.DayHours{Enabled: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			weekly := &domain.WeeklyHours{Monday: tt.day}

			window, err := Resolve(weekly, date(2025, 6, 2))
			assert.ErrorIs(t, err, ErrMalformedSchedule)
			assert.Nil(t, window)
		})
	}
}

func TestResolve_PicksCorrectWeekday(t *testing.T) {
	weekly := &domain.WeeklyHours{
		Monday:   domain.DayHours{Enabled: true, Open: "09:00", Close: "12:00"},
		Friday:   domain.DayHours{Enabled: true, Open: "15:00", Close: "18:00"},
		Saturday: domain.DayHours{Enabled: false},
	}

	// 2025-06-06 - пятница
	window, err := Resolve(weekly, date(2025, 6, 6))
	require.NoError(t, err)
	require.NotNil(t, window)
	assert.Equal(t, types.TimeString("15:00"), window.Open)
	assert.Equal(t, types.TimeString("18:00"), window.Close)
}
