package archive_schedule

import (
	"context"

	"github.com/m04kA/SMC-TimetableService/internal/domain"
)

// ScheduleRepository интерфейс репозитория расписаний
type ScheduleRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Schedule, error)
	UpdateStatus(ctx context.Context, id string, status domain.ScheduleStatus) error
}

// VersionRepository интерфейс истории версий расписаний
type VersionRepository interface {
	LatestVersion(ctx context.Context, scheduleID string) (int64, error)
	Append(ctx context.Context, snapshot *domain.Schedule) (int64, error)
}

// TermGuard интерфейс проверки изменяемости семестра
type TermGuard interface {
	AssertMutable(ctx context.Context, termID string, role domain.Role) (*domain.AcademicTerm, error)
}

// Dispatcher интерфейс асинхронных побочных эффектов
type Dispatcher interface {
	RecordAudit(entry *domain.AuditEntry)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
