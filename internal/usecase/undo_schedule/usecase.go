package undo_schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TimetableService/internal/domain"
	auditRepo "github.com/m04kA/SMC-TimetableService/internal/infra/storage/audit"
	scheduleRepo "github.com/m04kA/SMC-TimetableService/internal/infra/storage/schedule"
	versionRepo "github.com/m04kA/SMC-TimetableService/internal/infra/storage/version"
	periodsSvc "github.com/m04kA/SMC-TimetableService/internal/service/periods"
	scheduleModels "github.com/m04kA/SMC-TimetableService/internal/service/schedules/models"
	"github.com/m04kA/SMC-TimetableService/internal/service/terms"
)

// UseCase use case отката расписания: восстановление архивного расписания
// к состоянию, зафиксированному в истории версий
type UseCase struct {
	auditRepo    AuditRepository
	versionRepo  VersionRepository
	scheduleRepo ScheduleRepository
	termGuard    TermGuard
	validator    ResourceValidator
	conflicts    ConflictDetector
	periods      PeriodExpander
	dispatch     Dispatcher
	txManager    TransactionManager
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	auditRepo AuditRepository,
	versionRepo VersionRepository,
	scheduleRepo ScheduleRepository,
	termGuard TermGuard,
	validator ResourceValidator,
	conflicts ConflictDetector,
	periods PeriodExpander,
	dispatch Dispatcher,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		auditRepo:    auditRepo,
		versionRepo:  versionRepo,
		scheduleRepo: scheduleRepo,
		termGuard:    termGuard,
		validator:    validator,
		conflicts:    conflicts,
		periods:      periods,
		dispatch:     dispatch,
		txManager:    txManager,
		logger:       logger,
	}
}

// Execute восстанавливает архивное расписание по записи аудита.
// Откат проходит все проверки заново, как свежая публикация: ресурсы,
// жизненный цикл и конфликты. Любой конфликт - ошибка, расписание
// остается в архиве.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UndoSchedule: audit_log=%s user=%s dept=%s", req.AuditLogID, req.UserID, req.DepartmentID)

	// 1. Валидация входных данных
	if req.AuditLogID == "" {
		uc.logger.Warn("UndoSchedule: missing audit log id")
		return nil, fmt.Errorf("%w: auditLogID is required", ErrInvalidInput)
	}
	if req.UserID == "" || !req.Role.IsValid() {
		uc.logger.Warn("UndoSchedule: invalid caller identity user=%s role=%s", req.UserID, req.Role)
		return nil, fmt.Errorf("%w: caller identity is required", ErrInvalidInput)
	}

	// 2. Запись аудита должна относиться к расписанию и содержать предыдущую версию
	entry, err := uc.auditRepo.GetByID(ctx, req.AuditLogID)
	if err != nil {
		if errors.Is(err, auditRepo.ErrEntryNotFound) {
			uc.logger.Warn("UndoSchedule: audit entry id=%s not found", req.AuditLogID)
			return nil, ErrInvalidUndoTarget
		}
		uc.logger.Error("UndoSchedule: audit repository error for id=%s: %v", req.AuditLogID, err)
		return nil, fmt.Errorf("%w: failed to load audit entry: %v", ErrInternal, err)
	}
	if entry.EntityType != domain.EntitySchedule || entry.OldVersion == nil {
		uc.logger.Warn("UndoSchedule: audit entry id=%s is not a schedule undo target", req.AuditLogID)
		return nil, ErrInvalidUndoTarget
	}

	// 3. Разрешаем снапшот через историю версий
	snapshot, err := uc.versionRepo.GetSnapshot(ctx, entry.EntityID, *entry.OldVersion)
	if err != nil {
		if errors.Is(err, versionRepo.ErrVersionNotFound) {
			uc.logger.Warn("UndoSchedule: version %d of schedule id=%s not found",
				*entry.OldVersion, entry.EntityID)
			return nil, ErrInvalidUndoTarget
		}
		uc.logger.Error("UndoSchedule: version repository error: %v", err)
		return nil, fmt.Errorf("%w: failed to load snapshot: %v", ErrInternal, err)
	}

	// 4. Изоляция отделений
	if req.Role != domain.RoleAdmin && snapshot.DepartmentID != req.DepartmentID {
		uc.logger.Warn("UndoSchedule: access denied for dept=%s to schedule id=%s",
			req.DepartmentID, snapshot.ID)
		return nil, ErrAccessDenied
	}

	// 5. Семестр должен допускать изменения
	if _, err := uc.termGuard.AssertMutable(ctx, snapshot.AcademicTermID, req.Role); err != nil {
		return nil, uc.mapTermError(err)
	}

	// 6. Откатывать можно только архивное расписание
	current, err := uc.scheduleRepo.GetByID(ctx, snapshot.ID)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			uc.logger.Warn("UndoSchedule: schedule id=%s no longer exists", snapshot.ID)
			return nil, ErrNotArchived
		}
		uc.logger.Error("UndoSchedule: repository error for schedule id=%s: %v", snapshot.ID, err)
		return nil, fmt.Errorf("%w: failed to load schedule: %v", ErrInternal, err)
	}
	if !current.IsArchived() {
		uc.logger.Warn("UndoSchedule: schedule id=%s has status=%s", current.ID, current.Status)
		return nil, ErrNotArchived
	}

	// 7. Восстановление должно быть допустимой сменой статуса
	if err := domain.ValidateTransition(current.Status, snapshot.Status); err != nil {
		uc.logger.Warn("UndoSchedule: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrIllegalTransition, err)
	}

	// 8. Полная проверка ресурсов, как при свежем сохранении
	if err := uc.validator.Validate(ctx, snapshot, req.DepartmentID); err != nil {
		uc.logger.Warn("UndoSchedule: resource validation failed: %v", err)
		return nil, err
	}

	var (
		restored   *domain.Schedule
		oldVersion *int64
		newVersion int64
	)

	// 9. Проверка конфликтов и восстановление в одной сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		found, err := uc.conflicts.FindConflicts(txCtx, snapshot)
		if err != nil {
			return fmt.Errorf("%w: conflict detection failed: %v", ErrInternal, err)
		}
		if len(found) > 0 {
			uc.logger.Warn("UndoSchedule: restore of schedule id=%s conflicts with %d schedules",
				snapshot.ID, len(found))
			return ErrUndoConflict
		}

		latest, err := uc.versionRepo.LatestVersion(txCtx, snapshot.ID)
		if err != nil {
			return fmt.Errorf("%w: failed to read version history: %v", ErrInternal, err)
		}
		if latest > 0 {
			oldVersion = &latest
		}

		restored, err = uc.scheduleRepo.Upsert(txCtx, snapshot)
		if err != nil {
			return fmt.Errorf("%w: failed to restore schedule: %v", ErrInternal, err)
		}

		periodIDs, err := uc.periods.Expand(txCtx, restored.StartPeriodID, restored.EndPeriodID)
		if err != nil {
			if errors.Is(err, periodsSvc.ErrInvalidRange) {
				return fmt.Errorf("%w: snapshot period range is no longer valid", ErrInvalidUndoTarget)
			}
			return fmt.Errorf("%w: period expansion failed: %v", ErrInternal, err)
		}
		if err := uc.scheduleRepo.ReplacePeriods(txCtx, restored.ID, periodIDs); err != nil {
			return fmt.Errorf("%w: failed to rebuild schedule periods: %v", ErrInternal, err)
		}

		newVersion, err = uc.versionRepo.Append(txCtx, restored)
		if err != nil {
			return fmt.Errorf("%w: failed to append version: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	// 10. Аудит выполняется асинхронно
	uc.dispatch.RecordAudit(&domain.AuditEntry{
		UserID:     req.UserID,
		Action:     domain.ActionUpdate,
		EntityType: domain.EntitySchedule,
		EntityID:   restored.ID,
		OldVersion: oldVersion,
		NewVersion: &newVersion,
		Details:    fmt.Sprintf("Restored schedule from version %d", *entry.OldVersion),
	})

	uc.logger.Info("UndoSchedule: successfully restored schedule id=%s to status=%s version=%d",
		restored.ID, restored.Status, newVersion)
	return &Response{Schedule: scheduleModels.FromDomainSchedule(restored)}, nil
}

// mapTermError транслирует ошибки проверки семестра в ошибки usecase
func (uc *UseCase) mapTermError(err error) error {
	switch {
	case errors.Is(err, terms.ErrTermNotFound):
		return ErrTermNotFound
	case errors.Is(err, terms.ErrTermInactive):
		return ErrTermInactive
	case errors.Is(err, terms.ErrTermLocked):
		return ErrTermLocked
	default:
		uc.logger.Error("UndoSchedule: term guard error: %v", err)
		return fmt.Errorf("%w: term guard error: %v", ErrInternal, err)
	}
}
