package save_schedule

import (
	"github.com/m04kA/SMC-TimetableService/internal/domain"
	conflictModels "github.com/m04kA/SMC-TimetableService/internal/service/conflicts/models"
	scheduleModels "github.com/m04kA/SMC-TimetableService/internal/service/schedules/models"
)

// Request модель запроса на сохранение расписания
type Request struct {
	// Идентификация вызывающего
	UserID       string      // ID пользователя
	Role         domain.Role // Роль (ADMIN или DEAN)
	DepartmentID string      // Отделение вызывающего

	// Данные расписания
	ScheduleID     string  // Пустой при создании
	AcademicTermID string  // Учебный семестр
	SubjectID      string  // Дисциплина
	FacultyID      string  // Преподаватель
	RoomID         string  // Аудитория
	ClassID        *string // Учебная группа (опционально)
	Day            string  // День недели (MON..SUN)
	StartPeriodID  string  // Первая пара диапазона
	EndPeriodID    string  // Последняя пара диапазона
	Mode           string  // Формат занятия (IN_PERSON, ONLINE, ASYNC)
	Status         string  // Целевой статус (DRAFT или PUBLISHED)
	IsSimulation   bool    // Пробное сохранение: аудит SIMULATE, без уведомлений
}

// Response модель ответа на сохранение расписания.
// При конфликтах Success = false, расписание не сохраняется.
type Response struct {
	Success   bool                             `json:"success"`
	Schedule  *scheduleModels.ScheduleResponse `json:"schedule,omitempty"`
	Conflicts []conflictModels.Conflict        `json:"conflicts,omitempty"`
}

// toDomain собирает domain модель кандидата из запроса
func (r *Request) toDomain() *domain.Schedule {
	return &domain.Schedule{
		ID:             r.ScheduleID,
		AcademicTermID: r.AcademicTermID,
		DepartmentID:   r.DepartmentID,
		SubjectID:      r.SubjectID,
		FacultyID:      r.FacultyID,
		RoomID:         r.RoomID,
		ClassID:        r.ClassID,
		Day:            domain.Weekday(r.Day),
		StartPeriodID:  r.StartPeriodID,
		EndPeriodID:    r.EndPeriodID,
		Mode:           domain.ScheduleMode(r.Mode),
		Status:         domain.ScheduleStatus(r.Status),
		CreatedBy:      r.UserID,
	}
}
