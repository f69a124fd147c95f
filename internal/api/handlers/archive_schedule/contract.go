package archive_schedule

import (
	"context"

	archiveSchedule "github.com/m04kA/SMC-TimetableService/internal/usecase/archive_schedule"
)

type ArchiveScheduleUseCase interface {
	Execute(ctx context.Context, req *archiveSchedule.Request) (*archiveSchedule.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
