package domain

import "time"

// ScheduleStatus represents the lifecycle status of a schedule
type ScheduleStatus string

const (
	// StatusNone отсутствие статуса (расписание еще не существует)
	StatusNone      ScheduleStatus = ""
	StatusDraft     ScheduleStatus = "DRAFT"
	StatusPublished ScheduleStatus = "PUBLISHED"
	StatusArchived  ScheduleStatus = "ARCHIVED"
)

// ScheduleMode represents the delivery mode of a scheduled class
type ScheduleMode string

const (
	ModeInPerson ScheduleMode = "IN_PERSON"
	ModeOnline   ScheduleMode = "ONLINE"
	ModeAsync    ScheduleMode = "ASYNC"
)

// Weekday represents a day-of-week code
type Weekday string

const (
	Monday    Weekday = "MON"
	Tuesday   Weekday = "TUE"
	Wednesday Weekday = "WED"
	Thursday  Weekday = "THU"
	Friday    Weekday = "FRI"
	Saturday  Weekday = "SAT"
	Sunday    Weekday = "SUN"
)

// Schedule represents a class schedule entry within an academic term
type Schedule struct {
	ID             string
	AcademicTermID string
	DepartmentID   string
	ClassID        *string // nil для асинхронных и общефакультетских занятий
	SubjectID      string
	FacultyID      string
	RoomID         string
	Day            Weekday
	StartPeriodID  string
	EndPeriodID    string
	Mode           ScheduleMode
	Status         ScheduleStatus
	CreatedBy      string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsDraft returns true if the schedule is a draft
func (s *Schedule) IsDraft() bool {
	return s.Status == StatusDraft
}

// IsPublished returns true if the schedule is published
func (s *Schedule) IsPublished() bool {
	return s.Status == StatusPublished
}

// IsArchived returns true if the schedule has been archived
func (s *Schedule) IsArchived() bool {
	return s.Status == StatusArchived
}

// SharesResources сообщает, делят ли два расписания преподавателя, аудиторию
// или учебную группу. Расписание без группы (ClassID = nil) по измерению
// группы не пересекается ни с чем.
func (s *Schedule) SharesResources(other *Schedule) bool {
	if s.FacultyID == other.FacultyID {
		return true
	}
	if s.RoomID == other.RoomID {
		return true
	}
	if s.ClassID != nil && other.ClassID != nil && *s.ClassID == *other.ClassID {
		return true
	}
	return false
}

// ScheduleFilter фильтр для выборки расписаний отделения
type ScheduleFilter struct {
	AcademicTermID  string          // Обязательный параметр
	DepartmentID    string          // Обязательный параметр
	Day             *Weekday        // Фильтр по дню недели (опционально)
	Status          *ScheduleStatus // Фильтр по статусу (опционально)
	IncludeArchived bool            // Включать ли архивные расписания
}

// OverlapFilter фильтр для поиска опубликованных расписаний,
// занимающих хотя бы один из указанных периодов
type OverlapFilter struct {
	AcademicTermID string
	DepartmentID   string
	Day            Weekday
	PeriodIDs      []string
}

// Weekdays список всех кодов дней недели
var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// IsValid returns true if the weekday code is one of the seven known codes
func (d Weekday) IsValid() bool {
	for _, day := range Weekdays {
		if d == day {
			return true
		}
	}
	return false
}

// IsValid returns true if the mode is one of the known delivery modes
func (m ScheduleMode) IsValid() bool {
	return m == ModeInPerson || m == ModeOnline || m == ModeAsync
}

// IsValid returns true if the status is one of the known lifecycle statuses
func (s ScheduleStatus) IsValid() bool {
	return s == StatusDraft || s == StatusPublished || s == StatusArchived
}
