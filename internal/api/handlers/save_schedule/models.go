package save_schedule

import (
	"github.com/m04kA/SMC-TimetableService/internal/api/middleware"
	saveSchedule "github.com/m04kA/SMC-TimetableService/internal/usecase/save_schedule"
)

// SaveScheduleRequest HTTP request model
type SaveScheduleRequest struct {
	ID             string  `json:"id,omitempty"` // Пустой при создании
	AcademicTermID string  `json:"academicTermId"`
	SubjectID      string  `json:"subjectId"`
	FacultyID      string  `json:"facultyId"`
	RoomID         string  `json:"roomId"`
	ClassID        *string `json:"classId,omitempty"`
	Day            string  `json:"day"`
	StartPeriodID  string  `json:"startPeriodId"`
	EndPeriodID    string  `json:"endPeriodId"`
	Mode           string  `json:"mode"`
	Status         string  `json:"status"`
	IsSimulation   bool    `json:"isSimulation,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *SaveScheduleRequest) ToUseCaseRequest(identity middleware.Identity) *saveSchedule.Request {
	return &saveSchedule.Request{
		UserID:         identity.UserID,
		Role:           identity.Role,
		DepartmentID:   identity.DepartmentID,
		ScheduleID:     r.ID,
		AcademicTermID: r.AcademicTermID,
		SubjectID:      r.SubjectID,
		FacultyID:      r.FacultyID,
		RoomID:         r.RoomID,
		ClassID:        r.ClassID,
		Day:            r.Day,
		StartPeriodID:  r.StartPeriodID,
		EndPeriodID:    r.EndPeriodID,
		Mode:           r.Mode,
		Status:         r.Status,
		IsSimulation:   r.IsSimulation,
	}
}
