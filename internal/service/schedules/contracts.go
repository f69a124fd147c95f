package schedules

import (
	"context"

	"github.com/m04kA/SMC-TimetableService/internal/domain"
)

// ScheduleRepository интерфейс репозитория расписаний
type ScheduleRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Schedule, error)
	ListWithFilter(ctx context.Context, filter domain.ScheduleFilter) ([]*domain.Schedule, error)
	Delete(ctx context.Context, id string) error
}

// TermGuard интерфейс проверки изменяемости семестра
type TermGuard interface {
	AssertMutable(ctx context.Context, termID string, role domain.Role) (*domain.AcademicTerm, error)
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
