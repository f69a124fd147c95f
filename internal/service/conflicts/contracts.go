package conflicts

import (
	"context"

	"github.com/m04kA/SMC-TimetableService/internal/domain"
)

// PeriodExpander интерфейс раскрытия диапазона пар
type PeriodExpander interface {
	Expand(ctx context.Context, startID, endID string) ([]string, error)
}

// ScheduleRepository интерфейс выборки опубликованных расписаний по занятым парам
type ScheduleRepository interface {
	FindPublishedOverlapping(ctx context.Context, filter domain.OverlapFilter) ([]*domain.Schedule, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
