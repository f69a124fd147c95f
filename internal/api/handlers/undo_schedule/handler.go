package undo_schedule

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TimetableService/internal/api/handlers"
	"github.com/m04kA/SMC-TimetableService/internal/api/middleware"
	"github.com/m04kA/SMC-TimetableService/internal/service/validation"
	undoSchedule "github.com/m04kA/SMC-TimetableService/internal/usecase/undo_schedule"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidUndoTarget  = "запись аудита не подходит для отката"
	msgNotArchived        = "откатить можно только архивное расписание"
	msgAccessDenied       = "доступ запрещен"
	msgTermNotFound       = "учебный семестр не найден"
	msgTermInactive       = "учебный семестр неактивен"
	msgTermLocked         = "учебный семестр заблокирован"
	msgIllegalTransition  = "недопустимая смена статуса расписания"
	msgUndoConflict       = "откат создает конфликт с опубликованными расписаниями"
	msgValidationFailed   = "ресурсы восстанавливаемого расписания больше недействительны"
)

// UndoRequest HTTP request model
type UndoRequest struct {
	AuditLogID string `json:"auditLogId"`
}

type Handler struct {
	useCase UndoScheduleUseCase
	logger  Logger
}

func NewHandler(useCase UndoScheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/schedules/undo
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgAccessDenied)
		return
	}

	var req UndoRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /schedules/undo - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &undoSchedule.Request{
		UserID:       identity.UserID,
		Role:         identity.Role,
		DepartmentID: identity.DepartmentID,
		AuditLogID:   req.AuditLogID,
	})
	if err != nil {
		switch {
		case errors.Is(err, undoSchedule.ErrInvalidInput):
			h.logger.Warn("POST /schedules/undo - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, undoSchedule.ErrInvalidUndoTarget):
			h.logger.Warn("POST /schedules/undo - Invalid undo target: audit_log=%s", req.AuditLogID)
			handlers.RespondBadRequest(w, msgInvalidUndoTarget)

		case errors.Is(err, undoSchedule.ErrNotArchived):
			h.logger.Warn("POST /schedules/undo - Not archived: audit_log=%s", req.AuditLogID)
			handlers.RespondBadRequest(w, msgNotArchived)

		case errors.Is(err, undoSchedule.ErrAccessDenied):
			h.logger.Warn("POST /schedules/undo - Access denied: audit_log=%s, user_id=%s",
				req.AuditLogID, identity.UserID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, undoSchedule.ErrTermNotFound):
			handlers.RespondNotFound(w, msgTermNotFound)

		case errors.Is(err, undoSchedule.ErrTermInactive):
			handlers.RespondForbidden(w, msgTermInactive)

		case errors.Is(err, undoSchedule.ErrTermLocked):
			handlers.RespondForbidden(w, msgTermLocked)

		case errors.Is(err, undoSchedule.ErrIllegalTransition):
			h.logger.Warn("POST /schedules/undo - Illegal transition: %v", err)
			handlers.RespondBadRequest(w, msgIllegalTransition)

		case errors.Is(err, undoSchedule.ErrUndoConflict):
			h.logger.Warn("POST /schedules/undo - Undo conflict: audit_log=%s", req.AuditLogID)
			handlers.RespondConflict(w, msgUndoConflict)

		case isValidationError(err):
			h.logger.Warn("POST /schedules/undo - Validation failed: audit_log=%s, %v", req.AuditLogID, err)
			handlers.RespondBadRequest(w, msgValidationFailed)

		default:
			h.logger.Error("POST /schedules/undo - Failed to undo: audit_log=%s, error=%v",
				req.AuditLogID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /schedules/undo - Schedule restored: schedule_id=%s, user_id=%s",
		result.Schedule.ID, identity.UserID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// isValidationError объединяет все нарушения проверок ресурсов:
// при откате любое из них означает, что снапшот больше не проходит валидацию
func isValidationError(err error) bool {
	for _, sentinel := range []error{
		validation.ErrInvalidRange,
		validation.ErrTermInvalid,
		validation.ErrSubjectInvalid,
		validation.ErrSemesterMismatch,
		validation.ErrCrossDepartmentDenied,
		validation.ErrTypeMismatch,
		validation.ErrInvalidClass,
		validation.ErrClassDepartmentMismatch,
		validation.ErrInvalidFaculty,
		validation.ErrInvalidRoom,
		validation.ErrModeRoomMismatch,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}
