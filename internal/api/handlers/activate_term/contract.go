package activate_term

import (
	"context"

	"github.com/m04kA/SMC-TimetableService/internal/domain"
)

type TermsService interface {
	Activate(ctx context.Context, id string, userID string) (*domain.AcademicTerm, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
