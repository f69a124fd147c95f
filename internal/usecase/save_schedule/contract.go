package save_schedule

import (
	"context"

	"github.com/m04kA/SMC-TimetableService/internal/domain"
	conflictModels "github.com/m04kA/SMC-TimetableService/internal/service/conflicts/models"
)

// ScheduleRepository интерфейс репозитория расписаний
type ScheduleRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Schedule, error)
	Upsert(ctx context.Context, s *domain.Schedule) (*domain.Schedule, error)
	ReplacePeriods(ctx context.Context, scheduleID string, periodIDs []string) error
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

// ResourceValidator интерфейс проверки ресурсов кандидата
type ResourceValidator interface {
	Validate(ctx context.Context, candidate *domain.Schedule, callerDepartmentID string) error
}

// ConflictDetector интерфейс поиска конфликтов с опубликованными расписаниями
type ConflictDetector interface {
	FindConflicts(ctx context.Context, candidate *domain.Schedule) ([]conflictModels.Conflict, error)
}

// PeriodExpander интерфейс раскрытия диапазона пар
type PeriodExpander interface {
	Expand(ctx context.Context, startID, endID string) ([]string, error)
}

// Dispatcher интерфейс асинхронных побочных эффектов
type Dispatcher interface {
	RecordAudit(entry *domain.AuditEntry)
	NotifyFacultyPublished(facultyID string, schedule *domain.Schedule)
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
