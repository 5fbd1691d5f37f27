package get_day_management

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/integrations/salonservice"
)

// BookingRepository интерфейс репозитория записей
type BookingRepository interface {
	// GetBySalonWithFilter получает записи салона на конкретную дату
	GetBySalonWithFilter(ctx context.Context, filter domain.SalonBookingsFilter) ([]*domain.Booking, error)
}

// AssignmentRepository интерфейс репозитория закреплений
type AssignmentRepository interface {
	GetByDate(ctx context.Context, salonID int64, date time.Time) ([]*domain.Assignment, error)
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
