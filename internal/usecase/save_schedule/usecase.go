package save_schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TimetableService/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-TimetableService/internal/infra/storage/schedule"
	conflictModels "github.com/m04kA/SMC-TimetableService/internal/service/conflicts/models"
	periodsSvc "github.com/m04kA/SMC-TimetableService/internal/service/periods"
	scheduleModels "github.com/m04kA/SMC-TimetableService/internal/service/schedules/models"
	"github.com/m04kA/SMC-TimetableService/internal/service/terms"
)

// errConflictsFound прерывает транзакцию сохранения при обнаружении конфликтов
var errConflictsFound = errors.New("save_schedule: conflicts found")

// UseCase use case сохранения расписания: создание, обновление и публикация
type UseCase struct {
	scheduleRepo ScheduleRepository
	versionRepo  VersionRepository
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
	scheduleRepo ScheduleRepository,
	versionRepo VersionRepository,
	termGuard TermGuard,
	validator ResourceValidator,
	conflicts ConflictDetector,
	periods PeriodExpander,
	dispatch Dispatcher,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		scheduleRepo: scheduleRepo,
		versionRepo:  versionRepo,
		termGuard:    termGuard,
		validator:    validator,
		conflicts:    conflicts,
		periods:      periods,
		dispatch:     dispatch,
		txManager:    txManager,
		logger:       logger,
	}
}

// Execute выполняет сохранение расписания.
// Публикация проходит через детектор конфликтов; найденные конфликты
// возвращаются как структурированный результат, и запись не выполняется.
// Запись и проверка конфликтов идут в одной сериализуемой транзакции.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SaveSchedule: user=%s dept=%s term=%s subject=%s target=%s simulation=%t",
		req.UserID, req.DepartmentID, req.AcademicTermID, req.SubjectID, req.Status, req.IsSimulation)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SaveSchedule: validation failed: %v", err)
		return nil, err
	}

	// 2. Семестр должен допускать изменения - проверяется до всего остального
	if _, err := uc.termGuard.AssertMutable(ctx, req.AcademicTermID, req.Role); err != nil {
		return nil, uc.mapTermError(err)
	}

	candidate := req.toDomain()

	// 3. При обновлении загружаем текущее состояние и проверяем владение
	var prior *domain.Schedule
	if req.ScheduleID != "" {
		var err error
		prior, err = uc.scheduleRepo.GetByID(ctx, req.ScheduleID)
		if err != nil {
			if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
				uc.logger.Warn("SaveSchedule: schedule id=%s not found", req.ScheduleID)
				return nil, ErrScheduleNotFound
			}
			uc.logger.Error("SaveSchedule: repository error for schedule id=%s: %v", req.ScheduleID, err)
			return nil, fmt.Errorf("%w: failed to load schedule: %v", ErrInternal, err)
		}

		if req.Role != domain.RoleAdmin && prior.DepartmentID != req.DepartmentID {
			uc.logger.Warn("SaveSchedule: access denied for dept=%s to schedule id=%s",
				req.DepartmentID, req.ScheduleID)
			return nil, ErrAccessDenied
		}
	}

	// 4. Проверяем допустимость смены статуса
	priorStatus := domain.StatusNone
	if prior != nil {
		priorStatus = prior.Status
	}
	if err := domain.ValidateTransition(priorStatus, candidate.Status); err != nil {
		uc.logger.Warn("SaveSchedule: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrIllegalTransition, err)
	}

	// 5. Проверяем ресурсы против справочников
	if err := uc.validator.Validate(ctx, candidate, req.DepartmentID); err != nil {
		uc.logger.Warn("SaveSchedule: resource validation failed: %v", err)
		return nil, err
	}

	var (
		saved      *domain.Schedule
		conflicts  []conflictModels.Conflict
		oldVersion *int64
		newVersion int64
	)

	// 6. Проверка конфликтов и запись в одной сериализуемой транзакции:
	// конкурирующая публикация не может проскочить между проверкой и записью
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Публикация проходит через детектор конфликтов
		if candidate.Status == domain.StatusPublished {
			found, err := uc.conflicts.FindConflicts(txCtx, candidate)
			if err != nil {
				uc.logger.Error("SaveSchedule: conflict detection failed: %v", err)
				return fmt.Errorf("%w: conflict detection failed: %v", ErrInternal, err)
			}
			if len(found) > 0 {
				conflicts = found
				return errConflictsFound
			}
		}

		// 6.2. Фиксируем номер версии до записи
		if prior != nil {
			latest, err := uc.versionRepo.LatestVersion(txCtx, prior.ID)
			if err != nil {
				return fmt.Errorf("%w: failed to read version history: %v", ErrInternal, err)
			}
			if latest > 0 {
				oldVersion = &latest
			}
		}

		// 6.3. Сохраняем расписание
		var err error
		saved, err = uc.scheduleRepo.Upsert(txCtx, candidate)
		if err != nil {
			return fmt.Errorf("%w: failed to save schedule: %v", ErrInternal, err)
		}

		// 6.4. Перестраиваем занятые пары по диапазону
		periodIDs, err := uc.periods.Expand(txCtx, saved.StartPeriodID, saved.EndPeriodID)
		if err != nil {
			if errors.Is(err, periodsSvc.ErrInvalidRange) {
				return ErrInvalidRange
			}
			return fmt.Errorf("%w: period expansion failed: %v", ErrInternal, err)
		}
		if err := uc.scheduleRepo.ReplacePeriods(txCtx, saved.ID, periodIDs); err != nil {
			return fmt.Errorf("%w: failed to rebuild schedule periods: %v", ErrInternal, err)
		}

		// 6.5. Добавляем снапшот в историю версий
		newVersion, err = uc.versionRepo.Append(txCtx, saved)
		if err != nil {
			return fmt.Errorf("%w: failed to append version: %v", ErrInternal, err)
		}

		return nil
	})
	if errors.Is(err, errConflictsFound) {
		uc.logger.Info("SaveSchedule: %d conflicts found, nothing saved", len(conflicts))
		return &Response{Success: false, Conflicts: conflicts}, nil
	}
	if err != nil {
		return nil, err
	}

	// 7. Побочные эффекты выполняются асинхронно и не влияют на результат
	uc.dispatch.RecordAudit(&domain.AuditEntry{
		UserID:     req.UserID,
		Action:     uc.auditAction(prior, req),
		EntityType: domain.EntitySchedule,
		EntityID:   saved.ID,
		OldVersion: oldVersion,
		NewVersion: &newVersion,
		Details:    fmt.Sprintf("Saved schedule with status %s", saved.Status),
	})

	if saved.Status == domain.StatusPublished && !req.IsSimulation {
		uc.dispatch.NotifyFacultyPublished(saved.FacultyID, saved)
	}

	uc.logger.Info("SaveSchedule: successfully saved schedule id=%s status=%s version=%d",
		saved.ID, saved.Status, newVersion)
	return &Response{Success: true, Schedule: scheduleModels.FromDomainSchedule(saved)}, nil
}

// auditAction выбирает действие аудита для сохранения
func (uc *UseCase) auditAction(prior *domain.Schedule, req *Request) domain.AuditAction {
	switch {
	case prior == nil:
		return domain.ActionCreate
	case req.IsSimulation:
		return domain.ActionSimulate
	case domain.ScheduleStatus(req.Status) == domain.StatusPublished:
		return domain.ActionPublish
	default:
		return domain.ActionUpdate
	}
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
		uc.logger.Error("SaveSchedule: term guard error: %v", err)
		return fmt.Errorf("%w: term guard error: %v", ErrInternal, err)
	}
}
