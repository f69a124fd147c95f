package validation

import (
	"context"

	"github.com/m04kA/SMC-TimetableService/internal/domain"
)

// TermRepository интерфейс чтения учебных семестров
type TermRepository interface {
	GetByID(ctx context.Context, id string) (*domain.AcademicTerm, error)
}

// CatalogRepository интерфейс чтения справочников отделения
type CatalogRepository interface {
	GetSubject(ctx context.Context, id string) (*domain.Subject, error)
	GetDepartment(ctx context.Context, id string) (*domain.Department, error)
	GetFaculty(ctx context.Context, id string) (*domain.Faculty, error)
	GetRoom(ctx context.Context, id string) (*domain.Room, error)
	GetClass(ctx context.Context, id string) (*domain.Class, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
