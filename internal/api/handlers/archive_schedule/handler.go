package archive_schedule

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TimetableService/internal/api/handlers"
	"github.com/m04kA/SMC-TimetableService/internal/api/middleware"
	archiveSchedule "github.com/m04kA/SMC-TimetableService/internal/usecase/archive_schedule"
)

const (
	msgScheduleNotFound  = "расписание не найдено"
	msgAccessDenied      = "доступ запрещен"
	msgTermNotFound      = "учебный семестр не найден"
	msgTermInactive      = "учебный семестр неактивен"
	msgTermLocked        = "учебный семестр заблокирован"
	msgIllegalTransition = "архивировать можно только опубликованное расписание"
	msgInvalidRequest    = "некорректный запрос"
)

type Handler struct {
	useCase ArchiveScheduleUseCase
	logger  Logger
}

func NewHandler(useCase ArchiveScheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/schedules/{scheduleId}/archive
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgAccessDenied)
		return
	}

	scheduleID := mux.Vars(r)["scheduleId"]

	result, err := h.useCase.Execute(r.Context(), &archiveSchedule.Request{
		UserID:       identity.UserID,
		Role:         identity.Role,
		DepartmentID: identity.DepartmentID,
		ScheduleID:   scheduleID,
	})
	if err != nil {
		switch {
		case errors.Is(err, archiveSchedule.ErrInvalidInput):
			h.logger.Warn("POST /schedules/{id}/archive - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		case errors.Is(err, archiveSchedule.ErrScheduleNotFound):
			h.logger.Warn("POST /schedules/{id}/archive - Schedule not found: schedule_id=%s", scheduleID)
			handlers.RespondNotFound(w, msgScheduleNotFound)

		case errors.Is(err, archiveSchedule.ErrAccessDenied):
			h.logger.Warn("POST /schedules/{id}/archive - Access denied: schedule_id=%s, user_id=%s",
				scheduleID, identity.UserID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, archiveSchedule.ErrTermNotFound):
			handlers.RespondNotFound(w, msgTermNotFound)

		case errors.Is(err, archiveSchedule.ErrTermInactive):
			handlers.RespondForbidden(w, msgTermInactive)

		case errors.Is(err, archiveSchedule.ErrTermLocked):
			handlers.RespondForbidden(w, msgTermLocked)

		case errors.Is(err, archiveSchedule.ErrIllegalTransition):
			h.logger.Warn("POST /schedules/{id}/archive - Illegal transition: schedule_id=%s, %v", scheduleID, err)
			handlers.RespondBadRequest(w, msgIllegalTransition)

		default:
			h.logger.Error("POST /schedules/{id}/archive - Failed to archive: schedule_id=%s, error=%v",
				scheduleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /schedules/{id}/archive - Schedule archived: schedule_id=%s, user_id=%s",
		scheduleID, identity.UserID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
