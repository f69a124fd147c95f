package version

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-TimetableService/internal/domain"
	"github.com/m04kA/SMC-TimetableService/pkg/dbmetrics"
	"github.com/m04kA/SMC-TimetableService/pkg/psqlbuilder"
)

// Repository репозиторий истории версий расписаний.
// Каждое успешное сохранение/архивация/восстановление добавляет снапшот
// нового состояния с номером версии prior+1; записи аудита ссылаются
// на эти номера, а undo восстанавливает расписание из снапшота.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория версий
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// LatestVersion возвращает номер последней версии расписания (0, если версий нет)
func (r *Repository) LatestVersion(ctx context.Context, scheduleID string) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COALESCE(MAX(version), 0)").
		From("schedule_versions").
		Where(squirrel.Eq{"schedule_id": scheduleID}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: LatestVersion - build select query: %v", ErrBuildQuery, err)
	}

	var version int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&version); err != nil {
		return 0, fmt.Errorf("%w: LatestVersion - scan version: %v", ErrScanRow, err)
	}

	return version, nil
}

// Append добавляет снапшот состояния расписания как следующую версию
// и возвращает присвоенный номер. Должен вызываться внутри транзакции
// сохранения, чтобы номер версии не разошелся с состоянием расписания.
func (r *Repository) Append(ctx context.Context, snapshot *domain.Schedule) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	payload, err := json.Marshal(snapshot)
	if err != nil {
		return 0, fmt.Errorf("%w: Append - marshal snapshot: %v", ErrEncodeSnapshot, err)
	}

	query, args, err := psqlbuilder.Insert("schedule_versions").
		Columns("schedule_id", "version", "snapshot").
		Values(
			snapshot.ID,
			squirrel.Expr(
				"(SELECT COALESCE(MAX(version), 0) + 1 FROM schedule_versions WHERE schedule_id = ?)",
				snapshot.ID,
			),
			payload,
		).
		Suffix("RETURNING version").
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: Append - build insert query: %v", ErrBuildQuery, err)
	}

	var version int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&version); err != nil {
		return 0, fmt.Errorf("%w: Append - execute insert: %v", ErrExecQuery, err)
	}

	return version, nil
}

// GetSnapshot возвращает снапшот расписания указанной версии
func (r *Repository) GetSnapshot(ctx context.Context, scheduleID string, version int64) (*domain.Schedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("snapshot").
		From("schedule_versions").
		Where(squirrel.Eq{"schedule_id": scheduleID}).
		Where(squirrel.Eq{"version": version}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetSnapshot - build select query: %v", ErrBuildQuery, err)
	}

	var payload []byte
	err = executor.QueryRowContext(ctx, query, args...).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, ErrVersionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetSnapshot - scan snapshot: %v", ErrScanRow, err)
	}

	var snapshot domain.Schedule
	if err := json.Unmarshal(payload, &snapshot); err != nil {
		return nil, fmt.Errorf("%w: GetSnapshot - unmarshal snapshot: %v", ErrDecodeSnapshot, err)
	}

	return &snapshot, nil
}
