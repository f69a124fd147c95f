package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-TimetableService/internal/domain"
	"github.com/m04kA/SMC-TimetableService/pkg/dbmetrics"
	"github.com/m04kA/SMC-TimetableService/pkg/psqlbuilder"
)

// Repository репозиторий справочных данных: дисциплины, отделения,
// преподаватели, аудитории и учебные группы. Записи ведутся отдельными
// CRUD-потоками вне ядра сервиса; здесь только чтение.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория справочников
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetSubject получает дисциплину по ID
func (r *Repository) GetSubject(ctx context.Context, id string) (*domain.Subject, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "subject_type", "semester", "is_locked").
		From("subjects").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetSubject - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.Subject
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID, &s.Name, &s.SubjectType, &s.Semester, &s.IsLocked,
	)
	if err == sql.ErrNoRows {
		return nil, ErrSubjectNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetSubject - scan subject: %v", ErrScanRow, err)
	}

	return &s, nil
}

// GetDepartment получает отделение по ID
func (r *Repository) GetDepartment(ctx context.Context, id string) (*domain.Department, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "department_type").
		From("departments").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetDepartment - build select query: %v", ErrBuildQuery, err)
	}

	var d domain.Department
	err = executor.QueryRowContext(ctx, query, args...).Scan(&d.ID, &d.Name, &d.DepartmentType)
	if err == sql.ErrNoRows {
		return nil, ErrDepartmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetDepartment - scan department: %v", ErrScanRow, err)
	}

	return &d, nil
}

// GetFaculty получает преподавателя по ID
func (r *Repository) GetFaculty(ctx context.Context, id string) (*domain.Faculty, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "department_id", "user_id", "is_active").
		From("faculty").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetFaculty - build select query: %v", ErrBuildQuery, err)
	}

	var f domain.Faculty
	var userID sql.NullString
	err = executor.QueryRowContext(ctx, query, args...).Scan(&f.ID, &f.DepartmentID, &userID, &f.IsActive)
	if err == sql.ErrNoRows {
		return nil, ErrFacultyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetFaculty - scan faculty: %v", ErrScanRow, err)
	}

	if userID.Valid {
		f.UserID = &userID.String
	}

	return &f, nil
}

// GetRoom получает аудиторию по ID
func (r *Repository) GetRoom(ctx context.Context, id string) (*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "room_type", "is_active").
		From("rooms").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetRoom - build select query: %v", ErrBuildQuery, err)
	}

	var room domain.Room
	err = executor.QueryRowContext(ctx, query, args...).Scan(&room.ID, &room.Name, &room.RoomType, &room.IsActive)
	if err == sql.ErrNoRows {
		return nil, ErrRoomNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetRoom - scan room: %v", ErrScanRow, err)
	}

	return &room, nil
}

// GetClass получает учебную группу по ID
func (r *Repository) GetClass(ctx context.Context, id string) (*domain.Class, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "department_id").
		From("classes").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetClass - build select query: %v", ErrBuildQuery, err)
	}

	var c domain.Class
	err = executor.QueryRowContext(ctx, query, args...).Scan(&c.ID, &c.Name, &c.DepartmentID)
	if err == sql.ErrNoRows {
		return nil, ErrClassNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetClass - scan class: %v", ErrScanRow, err)
	}

	return &c, nil
}
