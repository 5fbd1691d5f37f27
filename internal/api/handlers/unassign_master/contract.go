package unassign_master

import (
	"context"

	"github.com/m04kA/SMC-ScheduleService/internal/service/assignments/models"
)

type AssignmentsService interface {
	Unassign(ctx context.Context, req *models.UnassignRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
