package save_schedule

import (
	"fmt"

	"github.com/m04kA/SMC-TimetableService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID == "" {
		return fmt.Errorf("%w: userID is required", ErrInvalidInput)
	}
	if !req.Role.IsValid() {
		return fmt.Errorf("%w: unknown role %q", ErrInvalidInput, req.Role)
	}
	if req.DepartmentID == "" {
		return fmt.Errorf("%w: departmentID is required", ErrInvalidInput)
	}
	if req.AcademicTermID == "" {
		return fmt.Errorf("%w: academicTermID is required", ErrInvalidInput)
	}
	if req.SubjectID == "" {
		return fmt.Errorf("%w: subjectID is required", ErrInvalidInput)
	}
	if req.FacultyID == "" {
		return fmt.Errorf("%w: facultyID is required", ErrInvalidInput)
	}
	if req.RoomID == "" {
		return fmt.Errorf("%w: roomID is required", ErrInvalidInput)
	}
	if req.ClassID != nil && *req.ClassID == "" {
		return fmt.Errorf("%w: classID must be absent or non-empty", ErrInvalidInput)
	}
	if !domain.Weekday(req.Day).IsValid() {
		return fmt.Errorf("%w: unknown day of week %q", ErrInvalidInput, req.Day)
	}
	if req.StartPeriodID == "" || req.EndPeriodID == "" {
		return fmt.Errorf("%w: start and end periods are required", ErrInvalidInput)
	}
	if !domain.ScheduleMode(req.Mode).IsValid() {
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidInput, req.Mode)
	}

	// Сохранить можно только черновик или публикацию, архивация идет отдельной операцией
	status := domain.ScheduleStatus(req.Status)
	if status != domain.StatusDraft && status != domain.StatusPublished {
		return fmt.Errorf("%w: target status must be DRAFT or PUBLISHED", ErrInvalidInput)
	}

	return nil
}
