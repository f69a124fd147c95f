package models

import (
	"time"

	"github.com/m04kA/SMC-TimetableService/internal/domain"
)

// Request модели

// ListSchedulesRequest запрос на выборку расписаний отделения
type ListSchedulesRequest struct {
	AcademicTermID  string  `json:"academicTermId"`
	DepartmentID    string  `json:"departmentId"`
	Day             *string `json:"day,omitempty"`             // Фильтр по дню недели (опционально)
	Status          *string `json:"status,omitempty"`          // Фильтр по статусу (опционально)
	IncludeArchived bool    `json:"includeArchived,omitempty"` // Включить архивные расписания
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListSchedulesRequest) ToDomainFilter() domain.ScheduleFilter {
	filter := domain.ScheduleFilter{
		AcademicTermID:  r.AcademicTermID,
		DepartmentID:    r.DepartmentID,
		IncludeArchived: r.IncludeArchived,
	}
	if r.Day != nil {
		day := domain.Weekday(*r.Day)
		filter.Day = &day
	}
	if r.Status != nil {
		status := domain.ScheduleStatus(*r.Status)
		filter.Status = &status
	}
	return filter
}

// Response модели

// ScheduleResponse представление расписания в ответах API
type ScheduleResponse struct {
	ID             string    `json:"id"`
	AcademicTermID string    `json:"academicTermId"`
	DepartmentID   string    `json:"departmentId"`
	SubjectID      string    `json:"subjectId"`
	FacultyID      string    `json:"facultyId"`
	RoomID         string    `json:"roomId"`
	ClassID        *string   `json:"classId,omitempty"`
	Day            string    `json:"day"`
	StartPeriodID  string    `json:"startPeriodId"`
	EndPeriodID    string    `json:"endPeriodId"`
	Mode           string    `json:"mode"`
	Status         string    `json:"status"`
	CreatedBy      string    `json:"createdBy"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// ScheduleListResponse список расписаний
type ScheduleListResponse struct {
	Schedules []*ScheduleResponse `json:"schedules"`
	Total     int                 `json:"total"`
}

// FromDomainSchedule конвертирует domain модель в response
func FromDomainSchedule(s *domain.Schedule) *ScheduleResponse {
	return &ScheduleResponse{
		ID:             s.ID,
		AcademicTermID: s.AcademicTermID,
		DepartmentID:   s.DepartmentID,
		SubjectID:      s.SubjectID,
		FacultyID:      s.FacultyID,
		RoomID:         s.RoomID,
		ClassID:        s.ClassID,
		Day:            string(s.Day),
		StartPeriodID:  s.StartPeriodID,
		EndPeriodID:    s.EndPeriodID,
		Mode:           string(s.Mode),
		Status:         string(s.Status),
		CreatedBy:      s.CreatedBy,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}

// FromDomainScheduleList конвертирует список domain моделей в response
func FromDomainScheduleList(schedules []*domain.Schedule) *ScheduleListResponse {
	result := make([]*ScheduleResponse, 0, len(schedules))
	for _, s := range schedules {
		result = append(result, FromDomainSchedule(s))
	}
	return &ScheduleListResponse{
		Schedules: result,
		Total:     len(result),
	}
}
