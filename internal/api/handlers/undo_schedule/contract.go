package undo_schedule

import (
	"context"

	undoSchedule "github.com/m04kA/SMC-TimetableService/internal/usecase/undo_schedule"
)

type UndoScheduleUseCase interface {
	Execute(ctx context.Context, req *undoSchedule.Request) (*undoSchedule.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
