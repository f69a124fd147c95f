package undo_schedule

import (
	"github.com/m04kA/SMC-TimetableService/internal/domain"
	scheduleModels "github.com/m04kA/SMC-TimetableService/internal/service/schedules/models"
)

// Request модель запроса на откат расписания к предыдущей версии
type Request struct {
	UserID       string      // ID пользователя
	Role         domain.Role // Роль (ADMIN или DEAN)
	DepartmentID string      // Отделение вызывающего
	AuditLogID   string      // Запись аудита, по которой выполняется откат
}

// Response модель ответа с восстановленным расписанием
type Response struct {
	Schedule *scheduleModels.ScheduleResponse `json:"schedule"`
}
