package archive_schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TimetableService/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-TimetableService/internal/infra/storage/schedule"
	scheduleModels "github.com/m04kA/SMC-TimetableService/internal/service/schedules/models"
	"github.com/m04kA/SMC-TimetableService/internal/service/terms"
)

// UseCase use case архивации опубликованного расписания
type UseCase struct {
	scheduleRepo ScheduleRepository
	versionRepo  VersionRepository
	termGuard    TermGuard
	dispatch     Dispatcher
	txManager    TransactionManager
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	scheduleRepo ScheduleRepository,
	versionRepo VersionRepository,
	termGuard TermGuard,
	dispatch Dispatcher,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		scheduleRepo: scheduleRepo,
		versionRepo:  versionRepo,
		termGuard:    termGuard,
		dispatch:     dispatch,
		txManager:    txManager,
		logger:       logger,
	}
}

// Execute архивирует опубликованное расписание.
// Архивация не удаляет данные: снапшот уходит в историю версий,
// и расписание можно восстановить откатом.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ArchiveSchedule: schedule=%s user=%s dept=%s", req.ScheduleID, req.UserID, req.DepartmentID)

	// 1. Валидация входных данных
	if req.ScheduleID == "" {
		uc.logger.Warn("ArchiveSchedule: missing schedule id")
		return nil, fmt.Errorf("%w: scheduleID is required", ErrInvalidInput)
	}
	if req.UserID == "" || !req.Role.IsValid() {
		uc.logger.Warn("ArchiveSchedule: invalid caller identity user=%s role=%s", req.UserID, req.Role)
		return nil, fmt.Errorf("%w: caller identity is required", ErrInvalidInput)
	}

	// 2. Загружаем расписание и проверяем владение
	schedule, err := uc.scheduleRepo.GetByID(ctx, req.ScheduleID)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			uc.logger.Warn("ArchiveSchedule: schedule id=%s not found", req.ScheduleID)
			return nil, ErrScheduleNotFound
		}
		uc.logger.Error("ArchiveSchedule: repository error for schedule id=%s: %v", req.ScheduleID, err)
		return nil, fmt.Errorf("%w: failed to load schedule: %v", ErrInternal, err)
	}

	if req.Role != domain.RoleAdmin && schedule.DepartmentID != req.DepartmentID {
		uc.logger.Warn("ArchiveSchedule: access denied for dept=%s to schedule id=%s",
			req.DepartmentID, req.ScheduleID)
		return nil, ErrAccessDenied
	}

	// 3. Семестр должен допускать изменения
	if _, err := uc.termGuard.AssertMutable(ctx, schedule.AcademicTermID, req.Role); err != nil {
		return nil, uc.mapTermError(err)
	}

	// 4. Архивировать можно только опубликованное расписание
	if err := domain.ValidateTransition(schedule.Status, domain.StatusArchived); err != nil {
		uc.logger.Warn("ArchiveSchedule: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrIllegalTransition, err)
	}

	var (
		oldVersion *int64
		newVersion int64
	)

	// 5. Смена статуса и снапшот в одной транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		latest, err := uc.versionRepo.LatestVersion(txCtx, schedule.ID)
		if err != nil {
			return fmt.Errorf("%w: failed to read version history: %v", ErrInternal, err)
		}
		if latest > 0 {
			oldVersion = &latest
		}

		if err := uc.scheduleRepo.UpdateStatus(txCtx, schedule.ID, domain.StatusArchived); err != nil {
			return fmt.Errorf("%w: failed to archive schedule: %v", ErrInternal, err)
		}
		schedule.Status = domain.StatusArchived

		newVersion, err = uc.versionRepo.Append(txCtx, schedule)
		if err != nil {
			return fmt.Errorf("%w: failed to append version: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	// 6. Аудит выполняется асинхронно
	uc.dispatch.RecordAudit(&domain.AuditEntry{
		UserID:     req.UserID,
		Action:     domain.ActionArchive,
		EntityType: domain.EntitySchedule,
		EntityID:   schedule.ID,
		OldVersion: oldVersion,
		NewVersion: &newVersion,
		Details:    "Archived schedule",
	})

	uc.logger.Info("ArchiveSchedule: successfully archived schedule id=%s version=%d", schedule.ID, newVersion)
	return &Response{Schedule: scheduleModels.FromDomainSchedule(schedule)}, nil
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
		uc.logger.Error("ArchiveSchedule: term guard error: %v", err)
		return fmt.Errorf("%w: term guard error: %v", ErrInternal, err)
	}
}
