package list_terms

import (
	"context"

	"github.com/m04kA/SMC-TimetableService/internal/domain"
)

type TermsService interface {
	List(ctx context.Context) ([]*domain.AcademicTerm, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
