package get_available_masters

import (
	"context"

	"github.com/m04kA/SMC-ScheduleService/internal/service/assignments/models"
)

type AssignmentsService interface {
	AvailableMasters(ctx context.Context, req *models.AvailableMastersRequest) (*models.AvailableMastersResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
