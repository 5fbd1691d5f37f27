package assignments

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/integrations/salonservice"
)

// AssignmentRepository интерфейс репозитория закреплений
type AssignmentRepository interface {
	GetByDate(ctx context.Context, salonID int64, date time.Time) ([]*domain.Assignment, error)
	GetByPlaceAndDate(ctx context.Context, salonID, placeID int64, date time.Time) (*domain.Assignment, error)
	Delete(ctx context.Context, salonID, placeID int64, date time.Time) error
}

// SalonServiceClient интерфейс клиента для SalonService
type SalonServiceClient interface {
	GetSalon(ctx context.Context, salonID int64) (*salonservice.Salon, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
