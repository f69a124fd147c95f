package domain

// SubjectType represents the curriculum category of a subject
type SubjectType string

const (
	SubjectMajor  SubjectType = "MAJOR"
	SubjectGenEd  SubjectType = "GENED"
	SubjectPENSTP SubjectType = "PE_NSTP"
)

// DepartmentType represents the category of a department
type DepartmentType string

const (
	DepartmentRegular DepartmentType = "REGULAR"
	DepartmentGenEd   DepartmentType = "GENED"
	DepartmentPENSTP  DepartmentType = "PE_NSTP"
)

// RoomType represents the kind of a room
// Для расписаний значим только тип ONLINE: режим ONLINE требует ONLINE-аудиторию,
// режим IN_PERSON ее запрещает
type RoomType string

const (
	RoomOnline  RoomType = "ONLINE"
	RoomLecture RoomType = "LECTURE"
	RoomLab     RoomType = "LAB"
)

// Role represents the caller's role
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleDean  Role = "DEAN"
)

// IsValid returns true if the role is one of the known roles
func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleDean
}

// Subject учебная дисциплина
type Subject struct {
	ID          string
	Name        string
	SubjectType SubjectType
	Semester    int
	IsLocked    bool
}

// Department отделение (факультет)
type Department struct {
	ID             string
	Name           string
	DepartmentType DepartmentType
}

// Faculty преподаватель
type Faculty struct {
	ID           string
	DepartmentID string
	UserID       *string // учетная запись для уведомлений (может отсутствовать)
	IsActive     bool
}

// Room аудитория
type Room struct {
	ID       string
	Name     string
	RoomType RoomType
	IsActive bool
}

// Class учебная группа
type Class struct {
	ID           string
	Name         string
	DepartmentID string
}
