package get_week_overview

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	salonClient "github.com/m04kA/SMC-ScheduleService/internal/integrations/salonservice"
	"github.com/m04kA/SMC-ScheduleService/internal/schedule/hours"
	"github.com/m04kA/SMC-ScheduleService/internal/schedule/occupancy"
	"github.com/m04kA/SMC-ScheduleService/internal/schedule/slotgrid"
	"github.com/m04kA/SMC-ScheduleService/pkg/ptr"
)

// UseCase use case недельного обзора плотности записей
//
// Read-only составной запрос: рабочие окна -> сетка слотов -> индекс
// записей -> ячейки с плотностью. Закрепления мастеров в обзоре
// не участвуют - они нужны только режиму управления днем
type UseCase struct {
	bookingRepo  BookingRepository
	salonClient  SalonServiceClient
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	salonClient SalonServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		salonClient:  salonClient,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case недельного обзора
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetWeekOverview: user=%d, salon=%d, branch=%v, weekOffset=%d",
		req.UserID, req.SalonID, req.BranchID, req.WeekOffset)

	// 1. Валидация входных данных
	if req.SalonID <= 0 {
		uc.logger.Warn("GetWeekOverview: validation failed: salonID must be positive")
		return nil, fmt.Errorf("%w: salonID must be positive", ErrInvalidInput)
	}

	// 2. Захватываем текущее время один раз на весь запрос
	// Вся сетка считается против одного момента, иначе граница
	// прошлое/будущее поплывет между ячейками
	now := uc.timeProvider.Now()

	// 3. Получаем конфигурацию салона
	salon, err := uc.salonClient.GetSalon(ctx, req.SalonID)
	if err != nil {
		if errors.Is(err, salonClient.ErrSalonNotFound) {
			uc.logger.Warn("GetWeekOverview: salon id=%d not found", req.SalonID)
			return nil, ErrSalonNotFound
		}
		uc.logger.Error("GetWeekOverview: failed to get salon id=%d: %v", req.SalonID, err)
		return nil, fmt.Errorf("%w: failed to get salon: %v", ErrInternal, err)
	}

	branches, err := branchScope(salon, req.BranchID)
	if err != nil {
		uc.logger.Warn("GetWeekOverview: branch id=%v not found in salon id=%d", req.BranchID, req.SalonID)
		return nil, err
	}

	// 4. Даты недели: понедельник + 6 дней
	monday := weekStart(now, req.WeekOffset)
	dates := weekDates(monday)

	// 5. Разрешаем окна дат и строим объединенное окно недели
	union, err := slotgrid.UnionWindow(dates, func(date time.Time) (*hours.Window, error) {
		return resolveDateWindow(branches, date)
	})
	if err != nil {
		uc.logger.Error("GetWeekOverview: failed to resolve union window: %v", err)
		return nil, err
	}

	// 6. Генерируем 10-минутную сетку по объединенному окну
	slots, err := slotgrid.Slots(union.Open, union.Close, domain.OverviewSlotMinutes)
	if err != nil {
		uc.logger.Error("GetWeekOverview: failed to generate slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
	}

	// 7. Получаем записи недели и строим индекс (дата, слот)
	filter := domain.SalonBookingsFilter{
		SalonID:   req.SalonID,
		BranchID:  req.BranchID,
		StartDate: ptr.Ptr(dates[0]),
		EndDate:   ptr.Ptr(dates[len(dates)-1]),
	}

	bookings, err := uc.bookingRepo.GetBySalonWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetWeekOverview: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	index := occupancy.NewIndex(bookings)
	capacity := totalCapacity(salon, branches)

	// 8. Собираем ячейки по каждому дню
	days := make([]DayOverview, 0, len(dates))
	for _, date := range dates {
		window, err := resolveDateWindow(branches, date)
		if err != nil {
			uc.logger.Error("GetWeekOverview: failed to resolve window for %s: %v",
				date.Format(domain.DateFormat), err)
			return nil, err
		}

		day := DayOverview{
			Date:      date,
			IsWorking: window != nil,
			Cells:     make([]SlotCell, 0, len(slots)),
		}
		if window != nil {
			day.Open = ptr.Ptr(window.Open)
			day.Close = ptr.Ptr(window.Close)
		}

		for _, slot := range slots {
			working := window != nil &&
				!slot.IsBefore(window.Open) && slot.IsBefore(window.Close)

			count := index.CountAt(date, slot)

			day.Cells = append(day.Cells, SlotCell{
				Time:         slot,
				IsWorking:    working,
				BookingCount: count,
				Bucket:       occupancy.Bucket(count, capacity),
				IsPast:       occupancy.IsPast(date, slot, now),
			})
		}

		days = append(days, day)
	}

	uc.logger.Info("GetWeekOverview: built %d slots x %d days for salon=%d, week of %s",
		len(slots), len(days), req.SalonID, monday.Format(domain.DateFormat))

	return &Response{
		SalonID:      req.SalonID,
		WeekStart:    monday,
		Open:         union.Open,
		Close:        union.Close,
		UsedFallback: union.UsedFallback,
		Slots:        slots,
		Days:         days,
	}, nil
}
