package archive_schedule

import (
	"github.com/m04kA/SMC-TimetableService/internal/domain"
	scheduleModels "github.com/m04kA/SMC-TimetableService/internal/service/schedules/models"
)

// Request модель запроса на архивацию расписания
type Request struct {
	UserID       string      // ID пользователя
	Role         domain.Role // Роль (ADMIN или DEAN)
	DepartmentID string      // Отделение вызывающего
	ScheduleID   string      // Архивируемое расписание
}

// Response модель ответа с заархивированным расписанием
type Response struct {
	Schedule *scheduleModels.ScheduleResponse `json:"schedule"`
}
