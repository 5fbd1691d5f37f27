package get_day_management

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/integrations/salonservice"
	"github.com/m04kA/SMC-ScheduleService/pkg/ptr"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

type fakeBookingRepo struct {
	bookings []*domain.Booking
}

func (f *fakeBookingRepo) GetBySalonWithFilter(_ context.Context, _ domain.SalonBookingsFilter) ([]*domain.Booking, error) {
	return f.bookings, nil
}

type fakeAssignmentRepo struct {
	assignments []*domain.Assignment
}

func (f *fakeAssignmentRepo) GetByDate(_ context.Context, salonID int64, date time.Time) ([]*domain.Assignment, error) {
	result := make([]*domain.Assignment, 0, len(f.assignments))
	for _, a := range f.assignments {
		if a.SalonID == salonID && a.Date.Equal(date) {
			result = append(result, a)
		}
	}
	return result, nil
}

type fakeSalonClient struct {
	salon *salonservice.Salon
	err   error
}

func (f *fakeSalonClient) GetSalon(_ context.Context, _ int64) (*salonservice.Salon, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.salon, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func testSalon() *salonservice.Salon {
	hours := &salonservice.WeeklyHours{
		Monday: salonservice.DayHours{Enabled: true, Open: "09:00", Close: "11:00"},
	}
	return &salonservice.Salon{
		ID: 1,
		Branches: []salonservice.Branch{
			{ID: 10, Name: "Центральный", Hours: hours},
		},
		Places: []salonservice.Place{
			{ID: 100, BranchID: 10, Name: "Кресло 1", Capacity: 1},
			{ID: 101, BranchID: 10, Name: "Кресло 2", Capacity: 1},
		},
		Masters: []salonservice.Master{
			{ID: 500, Name: "Анна"},
			{ID: 501, Name: "Борис"},
			{ID: 502, Name: "Вера"},
		},
	}
}

func newTestUseCase(bookings *fakeBookingRepo, assignments *fakeAssignmentRepo, client *fakeSalonClient) *UseCase {
	return NewUseCase(bookings, assignments, client, nopLogger{})
}

func TestExecute_BuildsDayGrid(t *testing.T) {
	monday := date(2025, 6, 2)

	bookings := &fakeBookingRepo{bookings: []*domain.Booking{
		{
			ID: 1, SalonID: 1, BranchID: 10, PlaceID: 100,
			MasterID: ptr.Ptr(int64(500)), Date: monday, StartTime: "09:00",
			ClientName: "Иван", ServiceName: "Стрижка",
		},
		{
			ID: 2, SalonID: 1, BranchID: 10, PlaceID: 100,
			Date: monday, StartTime: "10:30",
			ClientName: "Петр", ServiceName: "Бритье",
		},
	}}
	assignments := &fakeAssignmentRepo{assignments: []*domain.Assignment{
		{ID: 1, SalonID: 1, PlaceID: 100, MasterID: 500, Date: monday},
	}}
	uc := newTestUseCase(bookings, assignments, &fakeSalonClient{salon: testSalon()})

	resp, err := uc.Execute(context.Background(), &Request{SalonID: 1, Date: monday})
	require.NoError(t, err)

	assert.True(t, resp.IsWorking)
	require.NotNil(t, resp.Open)
	assert.Equal(t, types.TimeString("09:00"), *resp.Open)
	require.NotNil(t, resp.Close)
	assert.Equal(t, types.TimeString("11:00"), *resp.Close)

	// 30-минутная сетка окна 09:00-11:00: четыре метки без "11:00"
	assert.Equal(t, []types.TimeString{"09:00", "09:30", "10:00", "10:30"}, resp.Slots)

	require.Len(t, resp.Places, 2)

	first := resp.Places[0]
	assert.Equal(t, int64(100), first.PlaceID)
	require.NotNil(t, first.AssignedMaster)
	assert.Equal(t, int64(500), first.AssignedMaster.ID)
	assert.Equal(t, "Анна", first.AssignedMaster.Name)

	// Только слоты с записями попадают в BookedSlots
	require.Len(t, first.BookedSlots, 2)
	assert.Equal(t, types.TimeString("09:00"), first.BookedSlots[0].Time)
	assert.Equal(t, "Иван", first.BookedSlots[0].Bookings[0].ClientName)
	assert.Equal(t, types.TimeString("10:30"), first.BookedSlots[1].Time)

	second := resp.Places[1]
	assert.Nil(t, second.AssignedMaster)
	assert.Empty(t, second.BookedSlots)

	// Анна закреплена за местом 100: для места 101 доступны Борис и Вера
	ids := make([]int64, len(second.AvailableMasters))
	for i, m := range second.AvailableMasters {
		ids[i] = m.ID
	}
	assert.ElementsMatch(t, []int64{501, 502}, ids)

	// Для места 100 Анна остается в списке вместе со свободными мастерами
	ids = ids[:0]
	for _, m := range first.AvailableMasters {
		ids = append(ids, m.ID)
	}
	assert.ElementsMatch(t, []int64{500, 501, 502}, ids)
}

func TestExecute_ClosedDay(t *testing.T) {
	// 2025-06-03 - вторник, в расписании только понедельник
	tuesday := date(2025, 6, 3)
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeAssignmentRepo{}, &fakeSalonClient{salon: testSalon()})

	resp, err := uc.Execute(context.Background(), &Request{SalonID: 1, Date: tuesday})
	require.NoError(t, err)

	// Нерабочий день - явный ответ с IsWorking=false, а не пустая сетка
	assert.False(t, resp.IsWorking)
	assert.Nil(t, resp.Open)
	assert.Nil(t, resp.Close)
	assert.Empty(t, resp.Slots)
	assert.Empty(t, resp.Places)
	assert.Empty(t, resp.MastersNeedingAssignment)
}

func TestExecute_MastersNeedingAssignment(t *testing.T) {
	monday := date(2025, 6, 2)

	bookings := &fakeBookingRepo{bookings: []*domain.Booking{
		// Две записи Бориса без закрепления - в сигнале он один раз
		{ID: 1, SalonID: 1, BranchID: 10, PlaceID: 100, MasterID: ptr.Ptr(int64(501)), Date: monday, StartTime: "09:00"},
		{ID: 2, SalonID: 1, BranchID: 10, PlaceID: 100, MasterID: ptr.Ptr(int64(501)), Date: monday, StartTime: "09:30"},
		// Анна закреплена - в сигнал не попадает
		{ID: 3, SalonID: 1, BranchID: 10, PlaceID: 101, MasterID: ptr.Ptr(int64(500)), Date: monday, StartTime: "09:00"},
		// Запись без мастера сигнал не порождает
		{ID: 4, SalonID: 1, BranchID: 10, PlaceID: 101, Date: monday, StartTime: "10:00"},
	}}
	assignments := &fakeAssignmentRepo{assignments: []*domain.Assignment{
		{ID: 1, SalonID: 1, PlaceID: 101, MasterID: 500, Date: monday},
	}}
	uc := newTestUseCase(bookings, assignments, &fakeSalonClient{salon: testSalon()})

	resp, err := uc.Execute(context.Background(), &Request{SalonID: 1, Date: monday})
	require.NoError(t, err)

	require.Len(t, resp.MastersNeedingAssignment, 1)
	assert.Equal(t, int64(501), resp.MastersNeedingAssignment[0].ID)
	assert.Equal(t, "Борис", resp.MastersNeedingAssignment[0].Name)
}

func TestExecute_Errors(t *testing.T) {
	monday := date(2025, 6, 2)

	t.Run("invalid salon id", func(t *testing.T) {
		uc := newTestUseCase(&fakeBookingRepo{}, &fakeAssignmentRepo{}, &fakeSalonClient{salon: testSalon()})

		_, err := uc.Execute(context.Background(), &Request{SalonID: 0, Date: monday})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("zero date", func(t *testing.T) {
		uc := newTestUseCase(&fakeBookingRepo{}, &fakeAssignmentRepo{}, &fakeSalonClient{salon: testSalon()})

		_, err := uc.Execute(context.Background(), &Request{SalonID: 1})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("salon not found", func(t *testing.T) {
		uc := newTestUseCase(&fakeBookingRepo{}, &fakeAssignmentRepo{}, &fakeSalonClient{err: salonservice.ErrSalonNotFound})

		_, err := uc.Execute(context.Background(), &Request{SalonID: 99, Date: monday})
		assert.ErrorIs(t, err, ErrSalonNotFound)
	})

	t.Run("branch not found", func(t *testing.T) {
		uc := newTestUseCase(&fakeBookingRepo{}, &fakeAssignmentRepo{}, &fakeSalonClient{salon: testSalon()})

		_, err := uc.Execute(context.Background(), &Request{SalonID: 1, Date: monday, BranchID: ptr.Ptr(int64(999))})
		assert.ErrorIs(t, err, ErrBranchNotFound)
	})
}
