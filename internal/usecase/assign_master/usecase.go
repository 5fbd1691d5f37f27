package assign_master

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	assignmentRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/assignment"
	salonClient "github.com/m04kA/SMC-ScheduleService/internal/integrations/salonservice"
)

// UseCase use case закрепления мастера за местом на дату
//
// Единственная операция сервиса вида "проверить, затем записать": проверка
// эксклюзивности и запись выполняются в одной сериализуемой транзакции
// с блокировкой закреплений даты, иначе два параллельных запроса могли бы
// оба пройти проверку "мастер свободен" до того, как один из них закоммитится
type UseCase struct {
	assignmentRepo AssignmentRepository
	salonClient    SalonServiceClient
	txManager      TransactionManager
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	assignmentRepo AssignmentRepository,
	salonClient SalonServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		assignmentRepo: assignmentRepo,
		salonClient:    salonClient,
		txManager:      txManager,
		logger:         logger,
	}
}

// Execute выполняет use case закрепления мастера
//
// Переходы для ячейки (место, дата):
//   - Unassigned -> Assigned(master): новое закрепление
//   - Assigned(A) -> Assigned(B): прямая перезапись мастера места
//   - Assigned(master) -> Assigned(master): идемпотентный no-op
//
// Отклоняется с ErrMasterAlreadyAssigned, если мастер держит другое место
// на эту дату - конфликт никогда не разрешается автоматическим снятием
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("AssignMaster: user=%d, salon=%d, place=%d, master=%d, date=%s",
		req.UserID, req.SalonID, req.PlaceID, req.MasterID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("AssignMaster: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем конфигурацию салона
	salon, err := uc.salonClient.GetSalon(ctx, req.SalonID)
	if err != nil {
		if errors.Is(err, salonClient.ErrSalonNotFound) {
			uc.logger.Warn("AssignMaster: salon id=%d not found", req.SalonID)
			return nil, ErrSalonNotFound
		}
		uc.logger.Error("AssignMaster: failed to get salon id=%d: %v", req.SalonID, err)
		return nil, fmt.Errorf("%w: failed to get salon: %v", ErrInternal, err)
	}

	// 3. Проверяем место и мастера
	if err := validatePlace(salon, req.PlaceID); err != nil {
		uc.logger.Warn("AssignMaster: place id=%d rejected in salon id=%d: %v", req.PlaceID, req.SalonID, err)
		return nil, err
	}

	if err := validateMaster(salon, req.MasterID); err != nil {
		uc.logger.Warn("AssignMaster: master id=%d not found in salon id=%d", req.MasterID, req.SalonID)
		return nil, err
	}

	// Переменная для хранения результата
	var result *domain.Assignment

	// 4. Проверка эксклюзивности и запись в одной сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Читаем закрепления даты с блокировкой (FOR UPDATE)
		dayAssignments, err := uc.assignmentRepo.GetByDate(txCtx, req.SalonID, req.Date)
		if err != nil {
			uc.logger.Error("AssignMaster: failed to get assignments: %v", err)
			return fmt.Errorf("%w: failed to get assignments: %v", ErrInternal, err)
		}

		// 4.2. Проверяем инвариант: мастер не закреплен за другим местом
		for _, a := range dayAssignments {
			if a.MasterID != req.MasterID {
				continue
			}

			if a.PlaceID == req.PlaceID {
				// Мастер уже закреплен за этим же местом - идемпотентный no-op
				uc.logger.Info("AssignMaster: master=%d already assigned to place=%d on %s, no-op",
					req.MasterID, req.PlaceID, req.Date.Format(domain.DateFormat))
				result = a
				return nil
			}

			uc.logger.Warn("AssignMaster: master=%d already assigned to place=%d on %s, rejecting",
				req.MasterID, a.PlaceID, req.Date.Format(domain.DateFormat))
			return ErrMasterAlreadyAssigned
		}

		// 4.3. Создаем или перезаписываем закрепление места
		created, err := uc.assignmentRepo.Upsert(txCtx, &domain.Assignment{
			SalonID:  req.SalonID,
			PlaceID:  req.PlaceID,
			MasterID: req.MasterID,
			Date:     req.Date,
		})
		if err != nil {
			// Уникальный индекс схемы - страховка на случай, если конфликт
			// просочился мимо проверки выше
			if errors.Is(err, assignmentRepo.ErrExclusivityViolation) {
				uc.logger.Warn("AssignMaster: exclusivity index rejected master=%d on %s",
					req.MasterID, req.Date.Format(domain.DateFormat))
				return ErrMasterAlreadyAssigned
			}
			uc.logger.Error("AssignMaster: failed to upsert assignment: %v", err)
			return fmt.Errorf("%w: failed to upsert assignment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("AssignMaster: master=%d assigned to place=%d on %s (assignment id=%d)",
		result.MasterID, result.PlaceID, req.Date.Format(domain.DateFormat), result.ID)

	return &Response{
		ID:        result.ID,
		SalonID:   result.SalonID,
		PlaceID:   result.PlaceID,
		MasterID:  result.MasterID,
		Date:      result.Date,
		CreatedAt: result.CreatedAt,
		UpdatedAt: result.UpdatedAt,
	}, nil
}
