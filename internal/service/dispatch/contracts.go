package dispatch

import (
	"context"

	"github.com/m04kA/SMC-TimetableService/internal/domain"
)

// AuditRepository интерфейс записи журнала аудита
type AuditRepository interface {
	Create(ctx context.Context, entry *domain.AuditEntry) (*domain.AuditEntry, error)
}

// NotificationRepository интерфейс записи уведомлений
type NotificationRepository interface {
	Create(ctx context.Context, n *domain.Notification) error
}

// CatalogRepository интерфейс чтения справочника преподавателей
type CatalogRepository interface {
	GetFaculty(ctx context.Context, id string) (*domain.Faculty, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
