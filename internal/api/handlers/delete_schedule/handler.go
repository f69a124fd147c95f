package delete_schedule

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TimetableService/internal/api/handlers"
	"github.com/m04kA/SMC-TimetableService/internal/api/middleware"
	"github.com/m04kA/SMC-TimetableService/internal/service/schedules"
)

const (
	msgScheduleNotFound = "расписание не найдено"
	msgAccessDenied     = "доступ запрещен"
	msgNotDraft         = "удалить можно только черновик расписания"
	msgTermNotFound     = "учебный семестр не найден"
	msgTermInactive     = "учебный семестр неактивен"
	msgTermLocked       = "учебный семестр заблокирован"
)

type Handler struct {
	service SchedulesService
	logger  Logger
}

func NewHandler(service SchedulesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/schedules/{scheduleId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgAccessDenied)
		return
	}

	scheduleID := mux.Vars(r)["scheduleId"]

	err := h.service.DeleteDraft(r.Context(), scheduleID, identity.UserID, identity.Role, identity.DepartmentID)
	if err != nil {
		switch {
		case errors.Is(err, schedules.ErrScheduleNotFound):
			h.logger.Warn("DELETE /schedules/{id} - Schedule not found: schedule_id=%s", scheduleID)
			handlers.RespondNotFound(w, msgScheduleNotFound)

		case errors.Is(err, schedules.ErrAccessDenied):
			h.logger.Warn("DELETE /schedules/{id} - Access denied: schedule_id=%s, user_id=%s",
				scheduleID, identity.UserID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, schedules.ErrNotDraft):
			h.logger.Warn("DELETE /schedules/{id} - Not a draft: schedule_id=%s", scheduleID)
			handlers.RespondBadRequest(w, msgNotDraft)

		case errors.Is(err, schedules.ErrTermNotFound):
			handlers.RespondNotFound(w, msgTermNotFound)

		case errors.Is(err, schedules.ErrTermInactive):
			handlers.RespondForbidden(w, msgTermInactive)

		case errors.Is(err, schedules.ErrTermLocked):
			handlers.RespondForbidden(w, msgTermLocked)

		default:
			h.logger.Error("DELETE /schedules/{id} - Failed to delete: schedule_id=%s, error=%v",
				scheduleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /schedules/{id} - Draft deleted: schedule_id=%s, user_id=%s",
		scheduleID, identity.UserID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
