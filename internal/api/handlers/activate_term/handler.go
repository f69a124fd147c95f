package activate_term

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TimetableService/internal/api/handlers"
	"github.com/m04kA/SMC-TimetableService/internal/api/middleware"
	"github.com/m04kA/SMC-TimetableService/internal/service/terms"
)

const (
	msgTermNotFound = "учебный семестр не найден"
	msgAccessDenied = "доступ запрещен"
)

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

// Handle POST /api/v1/admin/terms/{termId}/activate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgAccessDenied)
		return
	}

	termID := mux.Vars(r)["termId"]

	term, err := h.service.Activate(r.Context(), termID, identity.UserID)
	if err != nil {
		switch {
		case errors.Is(err, terms.ErrTermNotFound):
			h.logger.Warn("POST /admin/terms/{id}/activate - Term not found: term_id=%s", termID)
			handlers.RespondNotFound(w, msgTermNotFound)

		default:
			h.logger.Error("POST /admin/terms/{id}/activate - Failed to activate: term_id=%s, error=%v",
				termID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/terms/{id}/activate - Term activated: term_id=%s by user=%s",
		termID, identity.UserID)
	handlers.RespondJSON(w, http.StatusOK, &TermResponse{
		ID:           term.ID,
		AcademicYear: term.AcademicYear,
		Semester:     term.Semester,
		IsActive:     term.IsActive,
		IsLocked:     term.IsLocked,
	})
}
