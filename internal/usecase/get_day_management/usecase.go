package get_day_management

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	salonClient "github.com/m04kA/SMC-ScheduleService/internal/integrations/salonservice"
	"github.com/m04kA/SMC-ScheduleService/internal/schedule/occupancy"
	"github.com/m04kA/SMC-ScheduleService/internal/schedule/slotgrid"
	"github.com/m04kA/SMC-ScheduleService/pkg/ptr"
)

// UseCase use case дневной сетки управления местами
//
// Единственный составной запрос, которому нужны закрепления: по каждому
// месту он отдает закрепленного мастера, список доступных мастеров
// и занятые слоты, плюс общий сигнал "мастера с записями без закрепления"
type UseCase struct {
	bookingRepo    BookingRepository
	assignmentRepo AssignmentRepository
	salonClient    SalonServiceClient
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	assignmentRepo AssignmentRepository,
	salonClient SalonServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:    bookingRepo,
		assignmentRepo: assignmentRepo,
		salonClient:    salonClient,
		logger:         logger,
	}
}

// Execute выполняет use case дневной сетки
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetDayManagement: user=%d, salon=%d, branch=%v, date=%s",
		req.UserID, req.SalonID, req.BranchID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if req.SalonID <= 0 {
		uc.logger.Warn("GetDayManagement: validation failed: salonID must be positive")
		return nil, fmt.Errorf("%w: salonID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		uc.logger.Warn("GetDayManagement: validation failed: date is required")
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// 2. Получаем конфигурацию салона
	salon, err := uc.salonClient.GetSalon(ctx, req.SalonID)
	if err != nil {
		if errors.Is(err, salonClient.ErrSalonNotFound) {
			uc.logger.Warn("GetDayManagement: salon id=%d not found", req.SalonID)
			return nil, ErrSalonNotFound
		}
		uc.logger.Error("GetDayManagement: failed to get salon id=%d: %v", req.SalonID, err)
		return nil, fmt.Errorf("%w: failed to get salon: %v", ErrInternal, err)
	}

	branches, err := branchScope(salon, req.BranchID)
	if err != nil {
		uc.logger.Warn("GetDayManagement: branch id=%v not found in salon id=%d", req.BranchID, req.SalonID)
		return nil, err
	}

	// 3. Разрешаем окно даты
	window, err := resolveDateWindow(branches, req.Date)
	if err != nil {
		uc.logger.Error("GetDayManagement: failed to resolve window for %s: %v",
			req.Date.Format(domain.DateFormat), err)
		return nil, err
	}

	// Нерабочий день - явный результат, а не пустая сетка
	if window == nil {
		uc.logger.Info("GetDayManagement: salon=%d is closed on %s",
			req.SalonID, req.Date.Format(domain.DateFormat))
		return &Response{
			SalonID:                  req.SalonID,
			Date:                     req.Date,
			IsWorking:                false,
			Places:                   []PlaceSchedule{},
			MastersNeedingAssignment: []MasterRef{},
		}, nil
	}

	// 4. Генерируем 30-минутную сетку
	slots, err := slotgrid.Slots(window.Open, window.Close, domain.ManagementSlotMinutes)
	if err != nil {
		uc.logger.Error("GetDayManagement: failed to generate slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
	}

	// 5. Получаем записи даты и строим индекс
	filter := domain.SalonBookingsFilter{
		SalonID:   req.SalonID,
		BranchID:  req.BranchID,
		StartDate: ptr.Ptr(req.Date),
		EndDate:   ptr.Ptr(req.Date),
	}

	bookings, err := uc.bookingRepo.GetBySalonWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetDayManagement: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	index := occupancy.NewIndex(bookings)

	// 6. Получаем закрепления даты
	dayAssignments, err := uc.assignmentRepo.GetByDate(ctx, req.SalonID, req.Date)
	if err != nil {
		uc.logger.Error("GetDayManagement: failed to get assignments: %v", err)
		return nil, fmt.Errorf("%w: failed to get assignments: %v", ErrInternal, err)
	}

	assignedPlaceByMaster := make(map[int64]int64, len(dayAssignments))
	assignedMasterByPlace := make(map[int64]int64, len(dayAssignments))
	for _, a := range dayAssignments {
		assignedPlaceByMaster[a.MasterID] = a.PlaceID
		assignedMasterByPlace[a.PlaceID] = a.MasterID
	}

	masters := salon.DomainMasters()
	masterByID := make(map[int64]*domain.Master, len(masters))
	for _, master := range masters {
		masterByID[master.ID] = master
	}

	// 7. Собираем сетку каждого места
	places := placesInScope(salon, branches)
	placeSchedules := make([]PlaceSchedule, 0, len(places))
	for _, place := range places {
		schedule := PlaceSchedule{
			PlaceID:          place.ID,
			Name:             place.Name,
			BranchID:         place.BranchID,
			Capacity:         place.Capacity,
			AvailableMasters: availableMastersFor(masters, assignedPlaceByMaster, place.ID),
			BookedSlots:      make([]BookedSlot, 0),
		}

		if masterID, ok := assignedMasterByPlace[place.ID]; ok {
			if master, found := masterByID[masterID]; found {
				schedule.AssignedMaster = &MasterRef{ID: master.ID, Name: master.Name}
			} else {
				// Закрепление ссылается на мастера, которого больше нет
				// в конфигурации - показываем факт закрепления без имени
				schedule.AssignedMaster = &MasterRef{ID: masterID}
			}
		}

		for _, slot := range slots {
			slotBookings := index.AtPlace(req.Date, slot, place.ID)
			if len(slotBookings) == 0 {
				continue
			}

			infos := make([]BookingInfo, 0, len(slotBookings))
			for _, b := range slotBookings {
				infos = append(infos, BookingInfo{
					ID:          b.ID,
					ClientName:  b.ClientName,
					ServiceName: b.ServiceName,
					MasterID:    b.MasterID,
				})
			}

			schedule.BookedSlots = append(schedule.BookedSlots, BookedSlot{
				Time:     slot,
				Bookings: infos,
			})
		}

		placeSchedules = append(placeSchedules, schedule)
	}

	// 8. Мастера с записями на дату, но без закрепления
	needing := mastersNeedingAssignment(bookings, assignedPlaceByMaster, masterByID)

	uc.logger.Info("GetDayManagement: built %d slots x %d places for salon=%d on %s, %d masters need assignment",
		len(slots), len(placeSchedules), req.SalonID, req.Date.Format(domain.DateFormat), len(needing))

	return &Response{
		SalonID:                  req.SalonID,
		Date:                     req.Date,
		IsWorking:                true,
		Open:                     ptr.Ptr(window.Open),
		Close:                    ptr.Ptr(window.Close),
		Slots:                    slots,
		Places:                   placeSchedules,
		MastersNeedingAssignment: needing,
	}, nil
}

// mastersNeedingAssignment возвращает мастеров, у которых есть хотя бы одна
// запись на дату, но нет закрепления за местом
func mastersNeedingAssignment(
	bookings []*domain.Booking,
	assignedPlaceByMaster map[int64]int64,
	masterByID map[int64]*domain.Master,
) []MasterRef {
	seen := make(map[int64]struct{})
	needing := make([]MasterRef, 0)

	for _, booking := range bookings {
		if booking.MasterID == nil {
			continue
		}
		masterID := *booking.MasterID

		if _, assigned := assignedPlaceByMaster[masterID]; assigned {
			continue
		}
		if _, already := seen[masterID]; already {
			continue
		}
		seen[masterID] = struct{}{}

		ref := MasterRef{ID: masterID}
		if master, ok := masterByID[masterID]; ok {
			ref.Name = master.Name
		}
		needing = append(needing, ref)
	}

	return needing
}
