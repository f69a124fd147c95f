package domain

import "time"

// AuditAction вид операции в журнале аудита
type AuditAction string

const (
	ActionCreate   AuditAction = "CREATE"
	ActionUpdate   AuditAction = "UPDATE"
	ActionDelete   AuditAction = "DELETE"
	ActionPublish  AuditAction = "PUBLISH"
	ActionArchive  AuditAction = "ARCHIVE"
	ActionSimulate AuditAction = "SIMULATE"
)

// Типы сущностей в журнале аудита
const (
	EntitySchedule     = "SCHEDULE"
	EntityPeriod       = "PERIOD"
	EntityAcademicTerm = "ACADEMIC_TERM"
)

// AuditEntry запись аудита. Append-only; для расписаний ссылается на номера
// версий в schedule_versions вместо встраивания снапшотов: undo разрешает
// снапшот через таблицу версий
type AuditEntry struct {
	ID         string
	UserID     string
	Action     AuditAction
	EntityType string
	EntityID   string
	OldVersion *int64 // версия состояния до операции (nil при создании)
	NewVersion *int64 // версия состояния после операции (nil при удалении)
	Details    string
	CreatedAt  time.Time
}

// Notification уведомление пользователю
type Notification struct {
	ID         string
	UserID     string
	Type       string
	Title      string
	Message    string
	EntityType string
	EntityID   string
	CreatedAt  time.Time
}
