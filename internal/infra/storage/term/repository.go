package term

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

var termColumns = []string{
	"id",
	"academic_year",
	"semester",
	"is_active",
	"is_locked",
}

// Repository репозиторий для работы с учебными семестрами
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория семестров
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает семестр по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.AcademicTerm, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(termColumns...).
		From("academic_terms").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var t domain.AcademicTerm
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&t.ID, &t.AcademicYear, &t.Semester, &t.IsActive, &t.IsLocked,
	)
	if err == sql.ErrNoRows {
		return nil, ErrTermNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan term: %v", ErrScanRow, err)
	}

	return &t, nil
}

// List возвращает все семестры, новые первыми
func (r *Repository) List(ctx context.Context) ([]*domain.AcademicTerm, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(termColumns...).
		From("academic_terms").
		OrderBy("academic_year DESC, semester DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	terms := make([]*domain.AcademicTerm, 0)
	for rows.Next() {
		var t domain.AcademicTerm
		if err := rows.Scan(&t.ID, &t.AcademicYear, &t.Semester, &t.IsActive, &t.IsLocked); err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		terms = append(terms, &t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return terms, nil
}

// ExistsByYearSemester проверяет существование семестра с указанными годом и номером
func (r *Repository) ExistsByYearSemester(ctx context.Context, academicYear string, semester int) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("academic_terms").
		Where(squirrel.Eq{"academic_year": academicYear}).
		Where(squirrel.Eq{"semester": semester}).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: ExistsByYearSemester - build count query: %v", ErrBuildQuery, err)
	}

	var count int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, fmt.Errorf("%w: ExistsByYearSemester - scan count: %v", ErrScanRow, err)
	}

	return count > 0, nil
}

// Create создает новый семестр (неактивный и незаблокированный)
func (r *Repository) Create(ctx context.Context, academicYear string, semester int) (*domain.AcademicTerm, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	t := &domain.AcademicTerm{
		ID:           uuid.NewString(),
		AcademicYear: academicYear,
		Semester:     semester,
	}

	query, args, err := psqlbuilder.Insert("academic_terms").
		Columns("id", "academic_year", "semester", "is_active", "is_locked").
		Values(t.ID, t.AcademicYear, t.Semester, false, false).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return t, nil
}

// SetActiveExclusive активирует указанный семестр и деактивирует все остальные.
// Блокировка при активации всегда снимается.
func (r *Repository) SetActiveExclusive(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	deactivateQuery, deactivateArgs, err := psqlbuilder.Update("academic_terms").
		Set("is_active", false).
		Where(squirrel.NotEq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: SetActiveExclusive - build deactivate query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, deactivateQuery, deactivateArgs...); err != nil {
		return fmt.Errorf("%w: SetActiveExclusive - deactivate others: %v", ErrExecQuery, err)
	}

	activateQuery, activateArgs, err := psqlbuilder.Update("academic_terms").
		Set("is_active", true).
		Set("is_locked", false).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: SetActiveExclusive - build activate query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, activateQuery, activateArgs...)
	if err != nil {
		return fmt.Errorf("%w: SetActiveExclusive - activate target: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetActiveExclusive - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrTermNotFound
	}

	return nil
}

// SetLocked устанавливает флаг блокировки семестра
func (r *Repository) SetLocked(ctx context.Context, id string, locked bool) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("academic_terms").
		Set("is_locked", locked).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetLocked - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetLocked - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetLocked - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrTermNotFound
	}

	return nil
}
