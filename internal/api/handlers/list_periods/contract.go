package list_periods

import (
	"context"

	"github.com/m04kA/SMC-TimetableService/internal/domain"
)

type PeriodsService interface {
	ListOrdered(ctx context.Context) ([]*domain.Period, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
