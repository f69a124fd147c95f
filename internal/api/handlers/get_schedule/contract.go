package get_schedule

import (
	"context"

	"github.com/m04kA/SMC-TimetableService/internal/service/schedules/models"
)

type SchedulesService interface {
	GetByID(ctx context.Context, id string) (*models.ScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
