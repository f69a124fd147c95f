package periods

import (
	"context"

	"github.com/m04kA/SMC-TimetableService/internal/domain"
)

// PeriodRepository интерфейс репозитория сетки пар
type PeriodRepository interface {
	ListOrdered(ctx context.Context) ([]*domain.Period, error)
	GetByID(ctx context.Context, id string) (*domain.Period, error)
	Replace(ctx context.Context, periods []*domain.Period) error
}

// ScheduleCounter интерфейс подсчета существующих расписаний
type ScheduleCounter interface {
	CountAll(ctx context.Context) (int64, error)
}

// AuditDispatcher интерфейс асинхронной записи аудита
type AuditDispatcher interface {
	RecordAudit(entry *domain.AuditEntry)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
