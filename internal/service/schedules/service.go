package schedules

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TimetableService/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-TimetableService/internal/infra/storage/schedule"
	"github.com/m04kA/SMC-TimetableService/internal/service/schedules/models"
	"github.com/m04kA/SMC-TimetableService/internal/service/terms"
)

// Service сервис чтения и удаления расписаний.
// Создание и смена статуса идут через сценарии сохранения, архивации и отката.
type Service struct {
	scheduleRepo ScheduleRepository
	termGuard    TermGuard
	dispatch     AuditDispatcher
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписаний
func NewService(
	scheduleRepo ScheduleRepository,
	termGuard TermGuard,
	dispatch AuditDispatcher,
	logger Logger,
) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		termGuard:    termGuard,
		dispatch:     dispatch,
		logger:       logger,
	}
}

// GetByID получает расписание по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.ScheduleResponse, error) {
	schedule, err := s.scheduleRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			s.logger.Warn("GetByID: schedule id=%s not found", id)
			return nil, ErrScheduleNotFound
		}
		s.logger.Error("GetByID: repository error for schedule id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainSchedule(schedule), nil
}

// List получает расписания отделения с фильтрацией по дню и статусу.
// Архивные расписания по умолчанию исключаются.
func (s *Service) List(ctx context.Context, req *models.ListSchedulesRequest) (*models.ScheduleListResponse, error) {
	if req.AcademicTermID == "" || req.DepartmentID == "" {
		s.logger.Warn("List: missing term or department filter")
		return nil, fmt.Errorf("%w: academicTermId and departmentId are required", ErrInvalidInput)
	}
	if req.Day != nil && !domain.Weekday(*req.Day).IsValid() {
		s.logger.Warn("List: invalid day=%s", *req.Day)
		return nil, fmt.Errorf("%w: invalid day of week", ErrInvalidInput)
	}

	result, err := s.scheduleRepo.ListWithFilter(ctx, req.ToDomainFilter())
	if err != nil {
		s.logger.Error("List: repository error for term=%s dept=%s: %v",
			req.AcademicTermID, req.DepartmentID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainScheduleList(result), nil
}

// DeleteDraft удаляет черновик расписания вместе с его занятыми парами.
// Удалять может только отделение-владелец (или администратор), только
// черновики и только при изменяемом семестре.
func (s *Service) DeleteDraft(ctx context.Context, id string, userID string, role domain.Role, departmentID string) error {
	s.logger.Info("DeleteDraft: deleting schedule id=%s by user=%s", id, userID)

	schedule, err := s.scheduleRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			s.logger.Warn("DeleteDraft: schedule id=%s not found", id)
			return ErrScheduleNotFound
		}
		s.logger.Error("DeleteDraft: repository error for schedule id=%s: %v", id, err)
		return fmt.Errorf("%w: DeleteDraft - repository error: %v", ErrInternal, err)
	}

	if role != domain.RoleAdmin && schedule.DepartmentID != departmentID {
		s.logger.Warn("DeleteDraft: access denied for dept=%s to schedule id=%s", departmentID, id)
		return ErrAccessDenied
	}

	if _, err := s.termGuard.AssertMutable(ctx, schedule.AcademicTermID, role); err != nil {
		return s.mapTermError(err)
	}

	if !schedule.IsDraft() {
		s.logger.Warn("DeleteDraft: schedule id=%s has status=%s", id, schedule.Status)
		return ErrNotDraft
	}

	if err := s.scheduleRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			return ErrScheduleNotFound
		}
		s.logger.Error("DeleteDraft: repository error for schedule id=%s: %v", id, err)
		return fmt.Errorf("%w: DeleteDraft - repository error: %v", ErrInternal, err)
	}

	s.dispatch.RecordAudit(&domain.AuditEntry{
		UserID:     userID,
		Action:     domain.ActionDelete,
		EntityType: domain.EntitySchedule,
		EntityID:   id,
		Details:    fmt.Sprintf("Deleted draft schedule for subject %s", schedule.SubjectID),
	})

	s.logger.Info("DeleteDraft: successfully deleted schedule id=%s", id)
	return nil
}

// mapTermError транслирует ошибки проверки семестра в ошибки сервиса
func (s *Service) mapTermError(err error) error {
	switch {
	case errors.Is(err, terms.ErrTermNotFound):
		return ErrTermNotFound
	case errors.Is(err, terms.ErrTermInactive):
		return ErrTermInactive
	case errors.Is(err, terms.ErrTermLocked):
		return ErrTermLocked
	default:
		return fmt.Errorf("%w: term guard error: %v", ErrInternal, err)
	}
}
