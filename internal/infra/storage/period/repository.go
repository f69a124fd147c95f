package period

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

// Репозиторий каталога периодов. Каталог общий для всего учреждения,
// упорядочен по slot_index и меняется только административной генерацией.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория периодов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListOrdered возвращает все периоды, упорядоченные по slot_index
func (r *Repository) ListOrdered(ctx context.Context) ([]*domain.Period, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"start_time",
		"end_time",
		"slot_index",
	).
		From("periods").
		OrderBy("slot_index ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListOrdered - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListOrdered - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	periods := make([]*domain.Period, 0)
	for rows.Next() {
		var p domain.Period
		if err := rows.Scan(&p.ID, &p.StartTime, &p.EndTime, &p.SlotIndex); err != nil {
			return nil, fmt.Errorf("%w: ListOrdered - scan row: %v", ErrScanRow, err)
		}
		periods = append(periods, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListOrdered - rows error: %v", ErrScanRow, err)
	}

	return periods, nil
}

// Replace полностью заменяет каталог периодов: удаляет все старые
// и вставляет новые. Вызывающая сторона обязана убедиться, что
// расписаний, ссылающихся на периоды, не существует.
func (r *Repository) Replace(ctx context.Context, periods []*domain.Period) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	deleteQuery, deleteArgs, err := psqlbuilder.Delete("periods").ToSql()
	if err != nil {
		return fmt.Errorf("%w: Replace - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("%w: Replace - delete old periods: %v", ErrExecQuery, err)
	}

	if len(periods) == 0 {
		return nil
	}

	insertBuilder := psqlbuilder.Insert("periods").
		Columns("id", "start_time", "end_time", "slot_index")
	for _, p := range periods {
		if p.ID == "" {
			p.ID = uuid.NewString()
		}
		insertBuilder = insertBuilder.Values(p.ID, p.StartTime, p.EndTime, p.SlotIndex)
	}

	insertQuery, insertArgs, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: Replace - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
		return fmt.Errorf("%w: Replace - insert new periods: %v", ErrExecQuery, err)
	}

	return nil
}

// GetByID получает период по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Period, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"start_time",
		"end_time",
		"slot_index",
	).
		From("periods").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var p domain.Period
	err = executor.QueryRowContext(ctx, query, args...).Scan(&p.ID, &p.StartTime, &p.EndTime, &p.SlotIndex)
	if err == sql.ErrNoRows {
		return nil, ErrPeriodNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan period: %v", ErrScanRow, err)
	}

	return &p, nil
}
