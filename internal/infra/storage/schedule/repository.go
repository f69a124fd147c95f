package schedule

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

// scheduleColumns колонки таблицы schedules в порядке сканирования
var scheduleColumns = []string{
	"id",
	"academic_term_id",
	"department_id",
	"class_id",
	"subject_id",
	"faculty_id",
	"room_id",
	"day",
	"start_period_id",
	"end_period_id",
	"mode",
	"status",
	"created_by",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с расписаниями и их разверткой по периодам
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписаний
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Upsert сохраняет расписание. Для нового расписания (пустой ID) генерирует
// UUID; для существующего обновляет все изменяемые поля.
// Если в контексте передана активная транзакция, использует ее.
func (r *Repository) Upsert(ctx context.Context, s *domain.Schedule) (*domain.Schedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if s.ID == "" {
		s.ID = uuid.NewString()
	}

	query, args, err := psqlbuilder.Insert("schedules").
		Columns(
			"id",
			"academic_term_id",
			"department_id",
			"class_id",
			"subject_id",
			"faculty_id",
			"room_id",
			"day",
			"start_period_id",
			"end_period_id",
			"mode",
			"status",
			"created_by",
		).
		Values(
			s.ID,
			s.AcademicTermID,
			s.DepartmentID,
			s.ClassID,
			s.SubjectID,
			s.FacultyID,
			s.RoomID,
			s.Day,
			s.StartPeriodID,
			s.EndPeriodID,
			s.Mode,
			s.Status,
			s.CreatedBy,
		).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			academic_term_id = EXCLUDED.academic_term_id,
			department_id = EXCLUDED.department_id,
			class_id = EXCLUDED.class_id,
			subject_id = EXCLUDED.subject_id,
			faculty_id = EXCLUDED.faculty_id,
			room_id = EXCLUDED.room_id,
			day = EXCLUDED.day,
			start_period_id = EXCLUDED.start_period_id,
			end_period_id = EXCLUDED.end_period_id,
			mode = EXCLUDED.mode,
			status = EXCLUDED.status,
			updated_at = NOW()
		RETURNING created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build upsert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute upsert: %v", ErrExecQuery, err)
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return s, nil
}

// GetByID получает расписание по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Schedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(scheduleColumns...).
		From("schedules").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	s, err := scanSchedule(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrScheduleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan schedule: %v", ErrScanRow, err)
	}

	return s, nil
}

// ListWithFilter получает расписания семестра и отделения с фильтрацией
// по дню недели и статусу. Архивные записи исключаются, если не указан
// явный статус и не установлен IncludeArchived.
func (r *Repository) ListWithFilter(ctx context.Context, filter domain.ScheduleFilter) ([]*domain.Schedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(scheduleColumns...).
		From("schedules").
		Where(squirrel.Eq{"academic_term_id": filter.AcademicTermID}).
		Where(squirrel.Eq{"department_id": filter.DepartmentID})

	if filter.Day != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"day": *filter.Day})
	}

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	} else if !filter.IncludeArchived {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": domain.StatusArchived})
	}

	selectBuilder = selectBuilder.OrderBy("day ASC, created_at ASC")

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanSchedules(rows)
}

// FindPublishedOverlapping находит опубликованные расписания того же семестра,
// отделения и дня недели, занимающие хотя бы один из указанных периодов.
// Одно расписание может занимать несколько периодов из списка - строки
// дедуплицируются на уровне детектора конфликтов.
// Внутри транзакции добавляет FOR UPDATE OF s для блокировки строк.
func (r *Repository) FindPublishedOverlapping(ctx context.Context, filter domain.OverlapFilter) ([]*domain.Schedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if len(filter.PeriodIDs) == 0 {
		return []*domain.Schedule{}, nil
	}

	columns := make([]string, len(scheduleColumns))
	for i, c := range scheduleColumns {
		columns[i] = "s." + c
	}

	selectBuilder := psqlbuilder.Select(columns...).
		From("schedule_periods sp").
		Join("schedules s ON s.id = sp.schedule_id").
		Where(squirrel.Eq{"sp.period_id": filter.PeriodIDs}).
		Where(squirrel.Eq{"s.academic_term_id": filter.AcademicTermID}).
		Where(squirrel.Eq{"s.department_id": filter.DepartmentID}).
		Where(squirrel.Eq{"s.status": domain.StatusPublished}).
		Where(squirrel.Eq{"s.day": filter.Day})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE OF s")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindPublishedOverlapping - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: FindPublishedOverlapping - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanSchedules(rows)
}

// ReplacePeriods перестраивает развертку расписания по периодам:
// удаляет старые строки и вставляет новые одним запросом.
// Вызывается только внутри транзакции сохранения расписания.
func (r *Repository) ReplacePeriods(ctx context.Context, scheduleID string, periodIDs []string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	deleteQuery, deleteArgs, err := psqlbuilder.Delete("schedule_periods").
		Where(squirrel.Eq{"schedule_id": scheduleID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplacePeriods - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("%w: ReplacePeriods - delete old rows: %v", ErrExecQuery, err)
	}

	if len(periodIDs) == 0 {
		return nil
	}

	insertBuilder := psqlbuilder.Insert("schedule_periods").
		Columns("schedule_id", "period_id")
	for _, periodID := range periodIDs {
		insertBuilder = insertBuilder.Values(scheduleID, periodID)
	}

	insertQuery, insertArgs, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplacePeriods - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
		return fmt.Errorf("%w: ReplacePeriods - insert new rows: %v", ErrExecQuery, err)
	}

	return nil
}

// UpdateStatus обновляет статус расписания
func (r *Repository) UpdateStatus(ctx context.Context, id string, status domain.ScheduleStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("schedules").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrScheduleNotFound
	}

	return nil
}

// Delete удаляет расписание вместе с разверткой по периодам.
// Используется только для черновиков; опубликованные расписания
// никогда не удаляются физически.
func (r *Repository) Delete(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	periodsQuery, periodsArgs, err := psqlbuilder.Delete("schedule_periods").
		Where(squirrel.Eq{"schedule_id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build periods delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, periodsQuery, periodsArgs...); err != nil {
		return fmt.Errorf("%w: Delete - delete periods: %v", ErrExecQuery, err)
	}

	query, args, err := psqlbuilder.Delete("schedules").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrScheduleNotFound
	}

	return nil
}

// CountAll возвращает общее число расписаний.
// Используется как защита от перегенерации каталога периодов.
func (r *Repository) CountAll(ctx context.Context) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("schedules").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountAll - build count query: %v", ErrBuildQuery, err)
	}

	var count int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountAll - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// scanSchedule сканирует одну строку расписания
func scanSchedule(scan func(dest ...interface{}) error) (*domain.Schedule, error) {
	var s domain.Schedule
	var classID sql.NullString
	var createdAt, updatedAt sql.NullTime

	err := scan(
		&s.ID,
		&s.AcademicTermID,
		&s.DepartmentID,
		&classID,
		&s.SubjectID,
		&s.FacultyID,
		&s.RoomID,
		&s.Day,
		&s.StartPeriodID,
		&s.EndPeriodID,
		&s.Mode,
		&s.Status,
		&s.CreatedBy,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if classID.Valid {
		s.ClassID = &classID.String
	}
	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return &s, nil
}

// scanSchedules сканирует результаты запроса в слайс расписаний
func scanSchedules(rows *sql.Rows) ([]*domain.Schedule, error) {
	schedules := make([]*domain.Schedule, 0)

	for rows.Next() {
		s, err := scanSchedule(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: scanSchedules - scan row: %v", ErrScanRow, err)
		}
		schedules = append(schedules, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanSchedules - rows error: %v", ErrScanRow, err)
	}

	return schedules, nil
}
