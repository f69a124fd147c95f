package toggle_term_lock

import (
	"context"

	"github.com/m04kA/SMC-TimetableService/internal/domain"
)

type TermsService interface {
	ToggleLock(ctx context.Context, id string, locked bool, userID string) (*domain.AcademicTerm, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
