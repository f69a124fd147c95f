package create_term

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TimetableService/internal/api/handlers"
	"github.com/m04kA/SMC-TimetableService/internal/api/middleware"
	"github.com/m04kA/SMC-TimetableService/internal/service/terms"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgTermExists         = "учебный семестр уже существует"
	msgAccessDenied       = "доступ запрещен"
)

// CreateTermRequest HTTP request model
type CreateTermRequest struct {
	AcademicYear string `json:"academicYear"` // "2026-2027"
	Semester     int    `json:"semester"`     // 1 или 2
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

// Handle POST /api/v1/admin/terms
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgAccessDenied)
		return
	}

	var req CreateTermRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/terms - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	term, err := h.service.Create(r.Context(), req.AcademicYear, req.Semester, identity.UserID)
	if err != nil {
		switch {
		case errors.Is(err, terms.ErrInvalidInput):
			h.logger.Warn("POST /admin/terms - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, terms.ErrTermExists):
			h.logger.Warn("POST /admin/terms - Term exists: year=%s semester=%d",
				req.AcademicYear, req.Semester)
			handlers.RespondConflict(w, msgTermExists)

		default:
			h.logger.Error("POST /admin/terms - Failed to create: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/terms - Term created: term_id=%s by user=%s", term.ID, identity.UserID)
	handlers.RespondJSON(w, http.StatusCreated, &TermResponse{
		ID:           term.ID,
		AcademicYear: term.AcademicYear,
		Semester:     term.Semester,
		IsActive:     term.IsActive,
		IsLocked:     term.IsLocked,
	})
}
