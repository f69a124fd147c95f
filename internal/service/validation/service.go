package validation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TimetableService/internal/domain"
	catalogRepo "github.com/m04kA/SMC-TimetableService/internal/infra/storage/catalog"
	termRepo "github.com/m04kA/SMC-TimetableService/internal/infra/storage/term"
)

// Service валидатор ресурсов расписания. Проверки идут в фиксированном
// порядке, результатом становится первая нарушенная.
type Service struct {
	termRepo    TermRepository
	catalogRepo CatalogRepository
	logger      Logger
}

// NewService создает новый экземпляр валидатора ресурсов
func NewService(termRepo TermRepository, catalogRepo CatalogRepository, logger Logger) *Service {
	return &Service{
		termRepo:    termRepo,
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

// Validate проверяет все ресурсы кандидата против справочников.
// callerDepartmentID - отделение вызывающего, записи в чужое отделение запрещены.
func (s *Service) Validate(ctx context.Context, candidate *domain.Schedule, callerDepartmentID string) error {
	// 1. Диапазон пар: вырожденный диапазон из одной границы недопустим
	if candidate.StartPeriodID == candidate.EndPeriodID {
		s.logger.Warn("Validate: degenerate period range period=%s", candidate.StartPeriodID)
		return ErrInvalidRange
	}

	// 2. Учебный семестр существует, активен и не заблокирован
	term, err := s.termRepo.GetByID(ctx, candidate.AcademicTermID)
	if err != nil {
		if errors.Is(err, termRepo.ErrTermNotFound) {
			s.logger.Warn("Validate: term id=%s not found", candidate.AcademicTermID)
			return ErrTermInvalid
		}
		s.logger.Error("Validate: term repository error: %v", err)
		return fmt.Errorf("%w: Validate - term repository error: %v", ErrInternal, err)
	}
	if !term.IsActive || term.IsLocked {
		s.logger.Warn("Validate: term id=%s is inactive or locked", term.ID)
		return ErrTermInvalid
	}

	// 3. Дисциплина существует, не заблокирована, семестры совпадают
	subject, err := s.catalogRepo.GetSubject(ctx, candidate.SubjectID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrSubjectNotFound) {
			s.logger.Warn("Validate: subject id=%s not found", candidate.SubjectID)
			return ErrSubjectInvalid
		}
		s.logger.Error("Validate: catalog repository error: %v", err)
		return fmt.Errorf("%w: Validate - catalog repository error: %v", ErrInternal, err)
	}
	if subject.IsLocked {
		s.logger.Warn("Validate: subject id=%s is locked", subject.ID)
		return ErrSubjectInvalid
	}
	if subject.Semester != term.Semester {
		s.logger.Warn("Validate: subject id=%s semester=%d does not match term semester=%d",
			subject.ID, subject.Semester, term.Semester)
		return ErrSemesterMismatch
	}

	// 4. Отделение существует и совпадает с отделением вызывающего
	dept, err := s.catalogRepo.GetDepartment(ctx, candidate.DepartmentID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrDepartmentNotFound) {
			s.logger.Warn("Validate: department id=%s not found", candidate.DepartmentID)
			return ErrCrossDepartmentDenied
		}
		s.logger.Error("Validate: catalog repository error: %v", err)
		return fmt.Errorf("%w: Validate - catalog repository error: %v", ErrInternal, err)
	}
	if candidate.DepartmentID != callerDepartmentID {
		s.logger.Warn("Validate: cross-department write dept=%s caller=%s",
			candidate.DepartmentID, callerDepartmentID)
		return ErrCrossDepartmentDenied
	}

	// 5. Тип дисциплины соответствует типу отделения
	if !subjectTypeAllowed(dept.DepartmentType, subject.SubjectType) {
		s.logger.Warn("Validate: subject type=%s does not match department type=%s",
			subject.SubjectType, dept.DepartmentType)
		return ErrTypeMismatch
	}

	// 6. Учебная группа, если указана: существует и принадлежит отделению
	// (принадлежность проверяется только для обычных отделений)
	if candidate.ClassID != nil {
		class, err := s.catalogRepo.GetClass(ctx, *candidate.ClassID)
		if err != nil {
			if errors.Is(err, catalogRepo.ErrClassNotFound) {
				s.logger.Warn("Validate: class id=%s not found", *candidate.ClassID)
				return ErrInvalidClass
			}
			s.logger.Error("Validate: catalog repository error: %v", err)
			return fmt.Errorf("%w: Validate - catalog repository error: %v", ErrInternal, err)
		}
		if dept.DepartmentType == domain.DepartmentRegular && class.DepartmentID != callerDepartmentID {
			s.logger.Warn("Validate: class id=%s belongs to dept=%s, caller=%s",
				class.ID, class.DepartmentID, callerDepartmentID)
			return ErrClassDepartmentMismatch
		}
	}

	// 7. Преподаватель существует, активен и принадлежит отделению
	// (принадлежность проверяется только для обычных отделений)
	faculty, err := s.catalogRepo.GetFaculty(ctx, candidate.FacultyID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrFacultyNotFound) {
			s.logger.Warn("Validate: faculty id=%s not found", candidate.FacultyID)
			return ErrInvalidFaculty
		}
		s.logger.Error("Validate: catalog repository error: %v", err)
		return fmt.Errorf("%w: Validate - catalog repository error: %v", ErrInternal, err)
	}
	if !faculty.IsActive {
		s.logger.Warn("Validate: faculty id=%s is inactive", faculty.ID)
		return ErrInvalidFaculty
	}
	if dept.DepartmentType == domain.DepartmentRegular && faculty.DepartmentID != callerDepartmentID {
		s.logger.Warn("Validate: faculty id=%s belongs to dept=%s, caller=%s",
			faculty.ID, faculty.DepartmentID, callerDepartmentID)
		return ErrInvalidFaculty
	}

	// 8. Аудитория существует, активна, тип соответствует формату занятия
	room, err := s.catalogRepo.GetRoom(ctx, candidate.RoomID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrRoomNotFound) {
			s.logger.Warn("Validate: room id=%s not found", candidate.RoomID)
			return ErrInvalidRoom
		}
		s.logger.Error("Validate: catalog repository error: %v", err)
		return fmt.Errorf("%w: Validate - catalog repository error: %v", ErrInternal, err)
	}
	if !room.IsActive {
		s.logger.Warn("Validate: room id=%s is inactive", room.ID)
		return ErrInvalidRoom
	}
	if candidate.Mode == domain.ModeOnline && room.RoomType != domain.RoomOnline {
		s.logger.Warn("Validate: online mode requires online room, got type=%s", room.RoomType)
		return ErrModeRoomMismatch
	}
	if candidate.Mode == domain.ModeInPerson && room.RoomType == domain.RoomOnline {
		s.logger.Warn("Validate: in-person mode cannot use online room id=%s", room.ID)
		return ErrModeRoomMismatch
	}

	return nil
}

// subjectTypeAllowed сопоставляет тип отделения допустимому типу дисциплины
func subjectTypeAllowed(dept domain.DepartmentType, subject domain.SubjectType) bool {
	switch dept {
	case domain.DepartmentRegular:
		return subject == domain.SubjectMajor
	case domain.DepartmentGenEd:
		return subject == domain.SubjectGenEd
	case domain.DepartmentPENSTP:
		return subject == domain.SubjectPENSTP
	default:
		return false
	}
}
