package toggle_term_lock

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TimetableService/internal/api/handlers"
	"github.com/m04kA/SMC-TimetableService/internal/api/middleware"
	"github.com/m04kA/SMC-TimetableService/internal/service/terms"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgTermNotFound       = "учебный семестр не найден"
	msgTermNotActive      = "заблокировать можно только активный семестр"
	msgAccessDenied       = "доступ запрещен"
)

// ToggleLockRequest HTTP request model
type ToggleLockRequest struct {
	Locked bool `json:"locked"`
}

// TermResponse HTTP response model
type TermResponse struct {
	ID           string `json:"id"`
	AcademicYear string `json:"academicYear"`
	Semester     int    `json:"semester"`
	IsActive     bool   `json:"isActive"`
	IsLocked     bool   `json:"isLocked"`
}

type Handler struct {
	service TermsService
	logger  Logger
}

func NewHandler(service TermsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/terms/{termId}/lock
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgAccessDenied)
		return
	}

	termID := mux.Vars(r)["termId"]

	var req ToggleLockRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/terms/{id}/lock - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	term, err := h.service.ToggleLock(r.Context(), termID, req.Locked, identity.UserID)
	if err != nil {
		switch {
		case errors.Is(err, terms.ErrTermNotFound):
			h.logger.Warn("POST /admin/terms/{id}/lock - Term not found: term_id=%s", termID)
			handlers.RespondNotFound(w, msgTermNotFound)

		case errors.Is(err, terms.ErrTermNotActive):
			h.logger.Warn("POST /admin/terms/{id}/lock - Term not active: term_id=%s", termID)
			handlers.RespondBadRequest(w, msgTermNotActive)

		default:
			h.logger.Error("POST /admin/terms/{id}/lock - Failed to toggle lock: term_id=%s, error=%v",
				termID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/terms/{id}/lock - Term lock set to %t: term_id=%s by user=%s",
		term.IsLocked, termID, identity.UserID)
	handlers.RespondJSON(w, http.StatusOK, &TermResponse{
		ID:           term.ID,
		AcademicYear: term.AcademicYear,
		Semester:     term.Semester,
		IsActive:     term.IsActive,
		IsLocked:     term.IsLocked,
	})
}
