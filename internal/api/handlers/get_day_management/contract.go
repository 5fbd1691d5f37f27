package get_day_management

import (
	"context"

	getDayManagement "github.com/m04kA/SMC-ScheduleService/internal/usecase/get_day_management"
)

type GetDayManagementUseCase interface {
	Execute(ctx context.Context, req *getDayManagement.Request) (*getDayManagement.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
