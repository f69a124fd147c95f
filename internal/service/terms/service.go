package terms

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TimetableService/internal/domain"
	termRepo "github.com/m04kA/SMC-TimetableService/internal/infra/storage/term"
)

// Service сервис для работы с учебными семестрами
type Service struct {
	termRepo TermRepository
	dispatch AuditDispatcher
	logger   Logger
}

// NewService создает новый экземпляр сервиса семестров
func NewService(termRepo TermRepository, dispatch AuditDispatcher, logger Logger) *Service {
	return &Service{
		termRepo: termRepo,
		dispatch: dispatch,
		logger:   logger,
	}
}

// AssertMutable проверяет, что семестр допускает изменения расписаний.
// Заблокированный семестр закрыт для всех, неактивный - для всех, кроме администратора.
// Выполняется до любой другой валидации в мутирующих операциях.
func (s *Service) AssertMutable(ctx context.Context, termID string, role domain.Role) (*domain.AcademicTerm, error) {
	term, err := s.termRepo.GetByID(ctx, termID)
	if err != nil {
		if errors.Is(err, termRepo.ErrTermNotFound) {
			s.logger.Warn("AssertMutable: term id=%s not found", termID)
			return nil, ErrTermNotFound
		}
		s.logger.Error("AssertMutable: repository error for term id=%s: %v", termID, err)
		return nil, fmt.Errorf("%w: AssertMutable - repository error: %v", ErrInternal, err)
	}

	if term.IsLocked {
		s.logger.Warn("AssertMutable: term id=%s is locked", termID)
		return nil, ErrTermLocked
	}

	if !term.IsActive && role != domain.RoleAdmin {
		s.logger.Warn("AssertMutable: term id=%s is inactive, role=%s denied", termID, role)
		return nil, ErrTermInactive
	}

	return term, nil
}

// List возвращает все учебные семестры
func (s *Service) List(ctx context.Context) ([]*domain.AcademicTerm, error) {
	result, err := s.termRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return result, nil
}

// Create создает новый учебный семестр в неактивном состоянии
func (s *Service) Create(ctx context.Context, academicYear string, semester int, userID string) (*domain.AcademicTerm, error) {
	s.logger.Info("Create: creating term year=%s semester=%d by user=%s", academicYear, semester, userID)

	if academicYear == "" || semester < 1 || semester > 2 {
		s.logger.Warn("Create: invalid input year=%s semester=%d", academicYear, semester)
		return nil, fmt.Errorf("%w: academic year and semester are required", ErrInvalidInput)
	}

	exists, err := s.termRepo.ExistsByYearSemester(ctx, academicYear, semester)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}
	if exists {
		s.logger.Warn("Create: term year=%s semester=%d already exists", academicYear, semester)
		return nil, ErrTermExists
	}

	term, err := s.termRepo.Create(ctx, academicYear, semester)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.dispatch.RecordAudit(&domain.AuditEntry{
		UserID:     userID,
		Action:     domain.ActionCreate,
		EntityType: domain.EntityAcademicTerm,
		EntityID:   term.ID,
		Details:    fmt.Sprintf("Created academic term %s, semester %d", academicYear, semester),
	})

	s.logger.Info("Create: successfully created term id=%s", term.ID)
	return term, nil
}

// Activate делает семестр активным.
// Все остальные семестры деактивируются, блокировка активируемого семестра снимается.
func (s *Service) Activate(ctx context.Context, id string, userID string) (*domain.AcademicTerm, error) {
	s.logger.Info("Activate: activating term id=%s by user=%s", id, userID)

	if err := s.termRepo.SetActiveExclusive(ctx, id); err != nil {
		if errors.Is(err, termRepo.ErrTermNotFound) {
			s.logger.Warn("Activate: term id=%s not found", id)
			return nil, ErrTermNotFound
		}
		s.logger.Error("Activate: repository error for term id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Activate - repository error: %v", ErrInternal, err)
	}

	term, err := s.termRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("Activate: repository error for term id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Activate - repository error: %v", ErrInternal, err)
	}

	s.dispatch.RecordAudit(&domain.AuditEntry{
		UserID:     userID,
		Action:     domain.ActionUpdate,
		EntityType: domain.EntityAcademicTerm,
		EntityID:   id,
		Details:    fmt.Sprintf("Activated academic term %s, semester %d", term.AcademicYear, term.Semester),
	})

	s.logger.Info("Activate: successfully activated term id=%s", id)
	return term, nil
}

// ToggleLock включает или снимает блокировку семестра.
// Блокировать можно только активный семестр.
func (s *Service) ToggleLock(ctx context.Context, id string, locked bool, userID string) (*domain.AcademicTerm, error) {
	s.logger.Info("ToggleLock: setting lock=%t for term id=%s by user=%s", locked, id, userID)

	term, err := s.termRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, termRepo.ErrTermNotFound) {
			s.logger.Warn("ToggleLock: term id=%s not found", id)
			return nil, ErrTermNotFound
		}
		s.logger.Error("ToggleLock: repository error for term id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: ToggleLock - repository error: %v", ErrInternal, err)
	}

	if !term.IsActive {
		s.logger.Warn("ToggleLock: term id=%s is not active", id)
		return nil, ErrTermNotActive
	}

	if err := s.termRepo.SetLocked(ctx, id, locked); err != nil {
		s.logger.Error("ToggleLock: repository error for term id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: ToggleLock - repository error: %v", ErrInternal, err)
	}
	term.IsLocked = locked

	action := "Locked"
	if !locked {
		action = "Unlocked"
	}
	s.dispatch.RecordAudit(&domain.AuditEntry{
		UserID:     userID,
		Action:     domain.ActionUpdate,
		EntityType: domain.EntityAcademicTerm,
		EntityID:   id,
		Details:    fmt.Sprintf("%s academic term %s, semester %d", action, term.AcademicYear, term.Semester),
	})

	s.logger.Info("ToggleLock: successfully set lock=%t for term id=%s", locked, id)
	return term, nil
}
