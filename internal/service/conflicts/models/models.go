package models

import "github.com/m04kA/SMC-TimetableService/internal/domain"

// Conflict описывает столкновение кандидата с опубликованным расписанием
type Conflict struct {
	ScheduleID    string         `json:"scheduleId"`
	SubjectID     string         `json:"subjectId"`
	FacultyID     string         `json:"facultyId"`
	RoomID        string         `json:"roomId"`
	ClassID       *string        `json:"classId,omitempty"`
	Day           domain.Weekday `json:"day"`
	StartPeriodID string         `json:"startPeriodId"`
	EndPeriodID   string         `json:"endPeriodId"`
	FacultyClash  bool           `json:"facultyClash"`
	RoomClash     bool           `json:"roomClash"`
	ClassClash    bool           `json:"classClash"`
}

// FromDomainSchedule строит описание конфликта между кандидатом и существующим расписанием
func FromDomainSchedule(candidate, existing *domain.Schedule) Conflict {
	return Conflict{
		ScheduleID:    existing.ID,
		SubjectID:     existing.SubjectID,
		FacultyID:     existing.FacultyID,
		RoomID:        existing.RoomID,
		ClassID:       existing.ClassID,
		Day:           existing.Day,
		StartPeriodID: existing.StartPeriodID,
		EndPeriodID:   existing.EndPeriodID,
		FacultyClash:  existing.FacultyID == candidate.FacultyID,
		RoomClash:     existing.RoomID == candidate.RoomID,
		ClassClash: existing.ClassID != nil && candidate.ClassID != nil &&
			*existing.ClassID == *candidate.ClassID,
	}
}
