package assign_master

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/integrations/salonservice"
)

// AssignmentRepository интерфейс репозитория закреплений
type AssignmentRepository interface {
	// GetByDate читает закрепления даты; внутри транзакции - с блокировкой строк
	GetByDate(ctx context.Context, salonID int64, date time.Time) ([]*domain.Assignment, error)
	Upsert(ctx context.Context, a *domain.Assignment) (*domain.Assignment, error)
}

// SalonServiceClient интерфейс клиента для SalonService
type SalonServiceClient interface {
	GetSalon(ctx context.Context, salonID int64) (*salonservice.Salon, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
