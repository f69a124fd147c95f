package save_schedule

import (
	"context"

	saveSchedule "github.com/m04kA/SMC-TimetableService/internal/usecase/save_schedule"
)

type SaveScheduleUseCase interface {
	Execute(ctx context.Context, req *saveSchedule.Request) (*saveSchedule.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
