package assign_master

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/integrations/salonservice"
	"github.com/m04kA/SMC-ScheduleService/pkg/ptr"
)

type fakeAssignmentRepo struct {
	assignments []*domain.Assignment
	upserted    *domain.Assignment
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

func (f *fakeAssignmentRepo) Upsert(_ context.Context, a *domain.Assignment) (*domain.Assignment, error) {
	created := *a
	created.ID = 1000
	created.CreatedAt = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	created.UpdatedAt = created.CreatedAt
	f.upserted = &created
	return &created, nil
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

// fakeTxManager исполняет функцию без настоящей транзакции
type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testSalon() *salonservice.Salon {
	return &salonservice.Salon{
		ID:   1,
		Name: "Тестовый салон",
		Branches: []salonservice.Branch{
			{ID: 10, Name: "Центральный"},
		},
		Places: []salonservice.Place{
			{ID: 100, BranchID: 10, Name: "Кресло 1", Capacity: 1},
			{ID: 101, BranchID: 10, Name: "Кресло 2", Capacity: 1},
			{ID: 102, BranchID: 0, Name: "Склад"}, // не участвует в планировании
		},
		Masters: []salonservice.Master{
			{ID: 500, BranchID: ptr.Ptr(int64(10)), Name: "Анна"},
			{ID: 501, Name: "Борис"},
		},
	}
}

func newTestUseCase(repo *fakeAssignmentRepo, client *fakeSalonClient) (*UseCase, *fakeTxManager) {
	txMgr := &fakeTxManager{}
	return NewUseCase(repo, client, txMgr, nopLogger{}), txMgr
}

func TestExecute_NewAssignment(t *testing.T) {
	repo := &fakeAssignmentRepo{}
	uc, txMgr := newTestUseCase(repo, &fakeSalonClient{salon: testSalon()})

	date := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	resp, err := uc.Execute(context.Background(), &Request{
		UserID:   7,
		SalonID:  1,
		PlaceID:  100,
		MasterID: 500,
		Date:     date,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1000), resp.ID)
	assert.Equal(t, int64(100), resp.PlaceID)
	assert.Equal(t, int64(500), resp.MasterID)
	assert.Equal(t, 1, txMgr.calls)
	require.NotNil(t, repo.upserted)
	assert.Equal(t, int64(500), repo.upserted.MasterID)
}

func TestExecute_IdempotentNoOp(t *testing.T) {
	date := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	existing := &domain.Assignment{
		ID:       42,
		SalonID:  1,
		PlaceID:  100,
		MasterID: 500,
		Date:     date,
	}
	repo := &fakeAssignmentRepo{assignments: []*domain.Assignment{existing}}
	uc, _ := newTestUseCase(repo, &fakeSalonClient{salon: testSalon()})

	// Повтор того же закрепления возвращает существующую запись без upsert
	resp, err := uc.Execute(context.Background(), &Request{
		SalonID:  1,
		PlaceID:  100,
		MasterID: 500,
		Date:     date,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
	assert.Nil(t, repo.upserted)
}

func TestExecute_MasterHoldsAnotherPlace(t *testing.T) {
	date := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	repo := &fakeAssignmentRepo{assignments: []*domain.Assignment{
		{ID: 42, SalonID: 1, PlaceID: 101, MasterID: 500, Date: date},
	}}
	uc, _ := newTestUseCase(repo, &fakeSalonClient{salon: testSalon()})

	// Мастер 500 держит место 101: закрепление за местом 100 отклоняется,
	// место 101 не освобождается
	_, err := uc.Execute(context.Background(), &Request{
		SalonID:  1,
		PlaceID:  100,
		MasterID: 500,
		Date:     date,
	})

	assert.ErrorIs(t, err, ErrMasterAlreadyAssigned)
	assert.Nil(t, repo.upserted)
}

func TestExecute_OverwritesPlaceMaster(t *testing.T) {
	date := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	repo := &fakeAssignmentRepo{assignments: []*domain.Assignment{
		{ID: 42, SalonID: 1, PlaceID: 100, MasterID: 500, Date: date},
	}}
	uc, _ := newTestUseCase(repo, &fakeSalonClient{salon: testSalon()})

	// Место 100 занято мастером 500; свободный мастер 501 перезаписывает
	// мастера места напрямую, без промежуточного снятия
	resp, err := uc.Execute(context.Background(), &Request{
		SalonID:  1,
		PlaceID:  100,
		MasterID: 501,
		Date:     date,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(501), resp.MasterID)
	require.NotNil(t, repo.upserted)
	assert.Equal(t, int64(501), repo.upserted.MasterID)
}

func TestExecute_SameMasterDifferentDates(t *testing.T) {
	monday := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	tuesday := time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)
	repo := &fakeAssignmentRepo{assignments: []*domain.Assignment{
		{ID: 42, SalonID: 1, PlaceID: 101, MasterID: 500, Date: monday},
	}}
	uc, _ := newTestUseCase(repo, &fakeSalonClient{salon: testSalon()})

	// Эксклюзивность действует в пределах даты: вторник не конфликтует
	// с закреплением понедельника
	resp, err := uc.Execute(context.Background(), &Request{
		SalonID:  1,
		PlaceID:  100,
		MasterID: 500,
		Date:     tuesday,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(500), resp.MasterID)
}

func TestExecute_ValidationErrors(t *testing.T) {
	date := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		req  *Request
	}{
		{name: "zero salon", req: &Request{PlaceID: 100, MasterID: 500, Date: date}},
		{name: "zero place", req: &Request{SalonID: 1, MasterID: 500, Date: date}},
		{name: "zero master", req: &Request{SalonID: 1, PlaceID: 100, Date: date}},
		{name: "zero date", req: &Request{SalonID: 1, PlaceID: 100, MasterID: 500}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, _ := newTestUseCase(&fakeAssignmentRepo{}, &fakeSalonClient{salon: testSalon()})

			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_SalonNotFound(t *testing.T) {
	uc, _ := newTestUseCase(&fakeAssignmentRepo{}, &fakeSalonClient{err: salonservice.ErrSalonNotFound})

	_, err := uc.Execute(context.Background(), &Request{
		SalonID:  99,
		PlaceID:  100,
		MasterID: 500,
		Date:     time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
	})

	assert.ErrorIs(t, err, ErrSalonNotFound)
}

func TestExecute_UnknownEntities(t *testing.T) {
	date := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		placeID  int64
		masterID int64
		expected error
	}{
		{name: "unknown place", placeID: 999, masterID: 500, expected: ErrPlaceNotFound},
		{name: "place without branch", placeID: 102, masterID: 500, expected: ErrPlaceNotSchedulable},
		{name: "unknown master", placeID: 100, masterID: 999, expected: ErrMasterNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, _ := newTestUseCase(&fakeAssignmentRepo{}, &fakeSalonClient{salon: testSalon()})

			_, err := uc.Execute(context.Background(), &Request{
				SalonID:  1,
				PlaceID:  tt.placeID,
				MasterID: tt.masterID,
				Date:     date,
			})

			assert.ErrorIs(t, err, tt.expected)
		})
	}
}
