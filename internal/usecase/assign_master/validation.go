package assign_master

import (
	"fmt"

	"github.com/m04kA/SMC-ScheduleService/internal/integrations/salonservice"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.SalonID <= 0 {
		return fmt.Errorf("%w: salonID must be positive", ErrInvalidInput)
	}

	if req.PlaceID <= 0 {
		return fmt.Errorf("%w: placeID must be positive", ErrInvalidInput)
	}

	if req.MasterID <= 0 {
		return fmt.Errorf("%w: masterID must be positive", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}

// validatePlace проверяет, что место существует и участвует в планировании
func validatePlace(salon *salonservice.Salon, placeID int64) error {
	place := salon.FindPlace(placeID)
	if place == nil {
		return ErrPlaceNotFound
	}
	if place.BranchID <= 0 {
		return ErrPlaceNotSchedulable
	}
	return nil
}

// validateMaster проверяет, что мастер существует в салоне
func validateMaster(salon *salonservice.Salon, masterID int64) error {
	if salon.FindMaster(masterID) == nil {
		return ErrMasterNotFound
	}
	return nil
}
