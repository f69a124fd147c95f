package notification

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-TimetableService/internal/domain"
	"github.com/m04kA/SMC-TimetableService/pkg/dbmetrics"
	"github.com/m04kA/SMC-TimetableService/pkg/psqlbuilder"
)

// Repository репозиторий уведомлений. Доставка (почта, push) выполняется
// отдельным потребителем таблицы; здесь только запись.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория уведомлений
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create добавляет уведомление
func (r *Repository) Create(ctx context.Context, n *domain.Notification) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if n.ID == "" {
		n.ID = uuid.NewString()
	}

	query, args, err := psqlbuilder.Insert("notifications").
		Columns("id", "user_id", "type", "title", "message", "entity_type", "entity_id").
		Values(n.ID, n.UserID, n.Type, n.Title, n.Message, n.EntityType, n.EntityID).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}
