package assignments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	salonClient "github.com/m04kA/SMC-ScheduleService/internal/integrations/salonservice"
	"github.com/m04kA/SMC-ScheduleService/internal/service/assignments/models"
)

// Service сервис для работы с закреплениями мастеров
//
// Команда assign вынесена в отдельный usecase с сериализуемой транзакцией:
// только она требует атомарной проверки эксклюзивности. Снятие закрепления
// и запросы доступности обходятся без блокировок
type Service struct {
	assignmentRepo AssignmentRepository
	salonClient    SalonServiceClient
	logger         Logger
}

// NewService создает новый экземпляр сервиса закреплений
func NewService(
	assignmentRepo AssignmentRepository,
	salonClient SalonServiceClient,
	logger Logger,
) *Service {
	return &Service{
		assignmentRepo: assignmentRepo,
		salonClient:    salonClient,
		logger:         logger,
	}
}

// Unassign снимает закрепление мастера с места на дату
// Снятие с пустой ячейки - no-op, а не ошибка: операция идемпотентна
func (s *Service) Unassign(ctx context.Context, req *models.UnassignRequest) error {
	s.logger.Info("Unassign: salon=%d, place=%d, date=%s, user=%d",
		req.SalonID, req.PlaceID, req.Date.Format(domain.DateFormat), req.UserID)

	if req.SalonID <= 0 || req.PlaceID <= 0 || req.Date.IsZero() {
		s.logger.Warn("Unassign: invalid input: salon=%d, place=%d", req.SalonID, req.PlaceID)
		return fmt.Errorf("%w: salonID, placeID and date are required", ErrInvalidInput)
	}

	if err := s.assignmentRepo.Delete(ctx, req.SalonID, req.PlaceID, req.Date); err != nil {
		s.logger.Error("Unassign: repository error: salon=%d, place=%d: %v", req.SalonID, req.PlaceID, err)
		return fmt.Errorf("%w: Unassign - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Unassign: place=%d is now unassigned on %s", req.PlaceID, req.Date.Format(domain.DateFormat))
	return nil
}

// AvailableMasters возвращает мастеров, доступных для закрепления за местом
// на дату: всех, кто не закреплен за ДРУГИМ местом в этот день
//
// Мастер, закрепленный за самим запрошенным местом, всегда входит в список -
// текущий выбор не должен молча пропадать из-за фильтра эксклюзивности
func (s *Service) AvailableMasters(ctx context.Context, req *models.AvailableMastersRequest) (*models.AvailableMastersResponse, error) {
	s.logger.Info("AvailableMasters: salon=%d, place=%d, date=%s",
		req.SalonID, req.PlaceID, req.Date.Format(domain.DateFormat))

	if req.SalonID <= 0 || req.PlaceID <= 0 || req.Date.IsZero() {
		s.logger.Warn("AvailableMasters: invalid input: salon=%d, place=%d", req.SalonID, req.PlaceID)
		return nil, fmt.Errorf("%w: salonID, placeID and date are required", ErrInvalidInput)
	}

	// Получаем конфигурацию салона
	salon, err := s.salonClient.GetSalon(ctx, req.SalonID)
	if err != nil {
		if errors.Is(err, salonClient.ErrSalonNotFound) {
			s.logger.Warn("AvailableMasters: salon id=%d not found", req.SalonID)
			return nil, ErrSalonNotFound
		}
		s.logger.Error("AvailableMasters: failed to get salon id=%d: %v", req.SalonID, err)
		return nil, fmt.Errorf("%w: failed to get salon: %v", ErrInternal, err)
	}

	if salon.FindPlace(req.PlaceID) == nil {
		s.logger.Warn("AvailableMasters: place id=%d not found in salon id=%d", req.PlaceID, req.SalonID)
		return nil, ErrPlaceNotFound
	}

	// Читаем закрепления на дату
	dayAssignments, err := s.assignmentRepo.GetByDate(ctx, req.SalonID, req.Date)
	if err != nil {
		s.logger.Error("AvailableMasters: repository error: salon=%d: %v", req.SalonID, err)
		return nil, fmt.Errorf("%w: AvailableMasters - repository error: %v", ErrInternal, err)
	}

	assignedPlaceByMaster := make(map[int64]int64, len(dayAssignments))
	var currentMasterID *int64
	for _, a := range dayAssignments {
		assignedPlaceByMaster[a.MasterID] = a.PlaceID
		if a.PlaceID == req.PlaceID {
			masterID := a.MasterID
			currentMasterID = &masterID
		}
	}

	// Фильтруем мастеров: исключаем закрепленных за другими местами
	available := make([]models.MasterResponse, 0, len(salon.Masters))
	for _, master := range salon.DomainMasters() {
		if placeID, assigned := assignedPlaceByMaster[master.ID]; assigned && placeID != req.PlaceID {
			continue
		}
		available = append(available, models.MasterResponse{
			ID:       master.ID,
			Name:     master.Name,
			BranchID: master.BranchID,
		})
	}

	s.logger.Info("AvailableMasters: %d of %d masters available for place=%d on %s",
		len(available), len(salon.Masters), req.PlaceID, req.Date.Format(domain.DateFormat))

	return &models.AvailableMastersResponse{
		Masters:         available,
		CurrentMasterID: currentMasterID,
	}, nil
}

// AssignedMasterIDs возвращает множество мастеров, закрепленных за любым
// местом салона на дату
// Используется для подсчета предупреждения "требуется закрепление":
// мастер с записями на дату, отсутствующий в этом множестве
func (s *Service) AssignedMasterIDs(ctx context.Context, salonID int64, date time.Time) (map[int64]struct{}, error) {
	dayAssignments, err := s.assignmentRepo.GetByDate(ctx, salonID, date)
	if err != nil {
		return nil, fmt.Errorf("%w: AssignedMasterIDs - repository error: %v", ErrInternal, err)
	}

	ids := make(map[int64]struct{}, len(dayAssignments))
	for _, a := range dayAssignments {
		ids[a.MasterID] = struct{}{}
	}

	return ids, nil
}
