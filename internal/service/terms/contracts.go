package terms

import (
	"context"

	"github.com/m04kA/SMC-TimetableService/internal/domain"
)

// TermRepository интерфейс репозитория учебных семестров
type TermRepository interface {
	GetByID(ctx context.Context, id string) (*domain.AcademicTerm, error)
	List(ctx context.Context) ([]*domain.AcademicTerm, error)
	ExistsByYearSemester(ctx context.Context, academicYear string, semester int) (bool, error)
	Create(ctx context.Context, academicYear string, semester int) (*domain.AcademicTerm, error)
	SetActiveExclusive(ctx context.Context, id string) error
	SetLocked(ctx context.Context, id string, locked bool) error
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
