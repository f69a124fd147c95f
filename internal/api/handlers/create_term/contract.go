package create_term

import (
	"context"

	"github.com/m04kA/SMC-TimetableService/internal/domain"
)

type TermsService interface {
	Create(ctx context.Context, academicYear string, semester int, userID string) (*domain.AcademicTerm, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
