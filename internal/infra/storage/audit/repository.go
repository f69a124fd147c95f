package audit

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-TimetableService/internal/domain"
	"github.com/m04kA/SMC-TimetableService/pkg/dbmetrics"
	"github.com/m04kA/SMC-TimetableService/pkg/psqlbuilder"
)

// Repository репозиторий журнала аудита (append-only)
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория аудита
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create добавляет запись аудита
func (r *Repository) Create(ctx context.Context, entry *domain.AuditEntry) (*domain.AuditEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}

	query, args, err := psqlbuilder.Insert("audit_logs").
		Columns(
			"id",
			"user_id",
			"action",
			"entity_type",
			"entity_id",
			"old_version",
			"new_version",
			"details",
		).
		Values(
			entry.ID,
			entry.UserID,
			entry.Action,
			entry.EntityType,
			entry.EntityID,
			entry.OldVersion,
			entry.NewVersion,
			entry.Details,
		).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	entry.CreatedAt = createdAt.Time
	return entry, nil
}

// GetByID получает запись аудита по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.AuditEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"user_id",
		"action",
		"entity_type",
		"entity_id",
		"old_version",
		"new_version",
		"details",
		"created_at",
	).
		From("audit_logs").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var entry domain.AuditEntry
	var oldVersion, newVersion sql.NullInt64
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&entry.ID,
		&entry.UserID,
		&entry.Action,
		&entry.EntityType,
		&entry.EntityID,
		&oldVersion,
		&newVersion,
		&entry.Details,
		&createdAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrEntryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan entry: %v", ErrScanRow, err)
	}

	if oldVersion.Valid {
		entry.OldVersion = &oldVersion.Int64
	}
	if newVersion.Valid {
		entry.NewVersion = &newVersion.Int64
	}
	entry.CreatedAt = createdAt.Time

	return &entry, nil
}
