package delete_schedule

import (
	"context"

	"github.com/m04kA/SMC-TimetableService/internal/domain"
)

type SchedulesService interface {
	DeleteDraft(ctx context.Context, id string, userID string, role domain.Role, departmentID string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
