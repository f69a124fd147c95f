package save_schedule

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TimetableService/internal/api/handlers"
	"github.com/m04kA/SMC-TimetableService/internal/api/middleware"
	"github.com/m04kA/SMC-TimetableService/internal/service/validation"
	saveSchedule "github.com/m04kA/SMC-TimetableService/internal/usecase/save_schedule"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgScheduleNotFound   = "расписание не найдено"
	msgAccessDenied       = "доступ запрещен"
	msgTermNotFound       = "учебный семестр не найден"
	msgTermInactive       = "учебный семестр неактивен"
	msgTermLocked         = "учебный семестр заблокирован"
	msgTermInvalid        = "учебный семестр недоступен для записи"
	msgIllegalTransition  = "недопустимая смена статуса расписания"
	msgInvalidRange       = "некорректный диапазон пар"
	msgSubjectInvalid     = "дисциплина не существует или заблокирована"
	msgSemesterMismatch   = "семестр дисциплины не совпадает с учебным семестром"
	msgCrossDepartment    = "запись в чужое отделение запрещена"
	msgTypeMismatch       = "тип дисциплины не соответствует типу отделения"
	msgInvalidClass       = "учебная группа не существует"
	msgClassMismatch      = "учебная группа не принадлежит отделению"
	msgInvalidFaculty     = "преподаватель не существует или неактивен"
	msgInvalidRoom        = "аудитория не существует или неактивна"
	msgModeRoomMismatch   = "тип аудитории не соответствует формату занятия"
)

type Handler struct {
	useCase SaveScheduleUseCase
	logger  Logger
}

func NewHandler(useCase SaveScheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/schedules
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgAccessDenied)
		return
	}

	var req SaveScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /schedules - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(identity))
	if err != nil {
		h.respondError(w, req, err)
		return
	}

	// Найденные конфликты возвращаются структурированным списком, запись не выполнена
	if !result.Success {
		h.logger.Info("POST /schedules - Conflicts reported: user_id=%s, count=%d",
			identity.UserID, len(result.Conflicts))
		handlers.RespondJSON(w, http.StatusConflict, result)
		return
	}

	h.logger.Info("POST /schedules - Schedule saved: schedule_id=%s, user_id=%s, status=%s",
		result.Schedule.ID, identity.UserID, result.Schedule.Status)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// respondError транслирует ошибки use case в HTTP ответы
func (h *Handler) respondError(w http.ResponseWriter, req SaveScheduleRequest, err error) {
	switch {
	case errors.Is(err, saveSchedule.ErrInvalidInput):
		h.logger.Warn("POST /schedules - Invalid input: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)

	case errors.Is(err, saveSchedule.ErrScheduleNotFound):
		h.logger.Warn("POST /schedules - Schedule not found: schedule_id=%s", req.ID)
		handlers.RespondNotFound(w, msgScheduleNotFound)

	case errors.Is(err, saveSchedule.ErrAccessDenied):
		h.logger.Warn("POST /schedules - Access denied: schedule_id=%s", req.ID)
		handlers.RespondForbidden(w, msgAccessDenied)

	case errors.Is(err, saveSchedule.ErrTermNotFound):
		handlers.RespondNotFound(w, msgTermNotFound)

	case errors.Is(err, saveSchedule.ErrTermInactive):
		handlers.RespondForbidden(w, msgTermInactive)

	case errors.Is(err, saveSchedule.ErrTermLocked):
		handlers.RespondForbidden(w, msgTermLocked)

	case errors.Is(err, saveSchedule.ErrIllegalTransition):
		h.logger.Warn("POST /schedules - Illegal transition: %v", err)
		handlers.RespondBadRequest(w, msgIllegalTransition)

	case errors.Is(err, saveSchedule.ErrInvalidRange), errors.Is(err, validation.ErrInvalidRange):
		handlers.RespondBadRequest(w, msgInvalidRange)

	case errors.Is(err, validation.ErrTermInvalid):
		handlers.RespondForbidden(w, msgTermInvalid)

	case errors.Is(err, validation.ErrSubjectInvalid):
		handlers.RespondBadRequest(w, msgSubjectInvalid)

	case errors.Is(err, validation.ErrSemesterMismatch):
		handlers.RespondBadRequest(w, msgSemesterMismatch)

	case errors.Is(err, validation.ErrCrossDepartmentDenied):
		handlers.RespondForbidden(w, msgCrossDepartment)

	case errors.Is(err, validation.ErrTypeMismatch):
		handlers.RespondBadRequest(w, msgTypeMismatch)

	case errors.Is(err, validation.ErrInvalidClass):
		handlers.RespondBadRequest(w, msgInvalidClass)

	case errors.Is(err, validation.ErrClassDepartmentMismatch):
		handlers.RespondForbidden(w, msgClassMismatch)

	case errors.Is(err, validation.ErrInvalidFaculty):
		handlers.RespondBadRequest(w, msgInvalidFaculty)

	case errors.Is(err, validation.ErrInvalidRoom):
		handlers.RespondBadRequest(w, msgInvalidRoom)

	case errors.Is(err, validation.ErrModeRoomMismatch):
		handlers.RespondBadRequest(w, msgModeRoomMismatch)

	default:
		h.logger.Error("POST /schedules - Failed to save schedule: error=%v", err)
		handlers.RespondInternalError(w)
	}
}
