package list_terms

import (
	"net/http"

	"github.com/m04kA/SMC-TimetableService/internal/api/handlers"
	"github.com/m04kA/SMC-TimetableService/internal/domain"
)

// TermResponse HTTP response model
type TermResponse struct {
	ID           string `json:"id"`
	AcademicYear string `json:"academicYear"`
	Semester     int    `json:"semester"`
	IsActive     bool   `json:"isActive"`
	IsLocked     bool   `json:"isLocked"`
}

// TermListResponse список учебных семестров
type TermListResponse struct {
	Terms []*TermResponse `json:"terms"`
	Total int             `json:"total"`
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

// Handle GET /api/v1/terms
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /terms - Failed to list: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	response := &TermListResponse{Terms: make([]*TermResponse, 0, len(result)), Total: len(result)}
	for _, t := range result {
		response.Terms = append(response.Terms, fromDomainTerm(t))
	}

	handlers.RespondJSON(w, http.StatusOK, response)
}

// fromDomainTerm конвертирует domain модель в response
func fromDomainTerm(t *domain.AcademicTerm) *TermResponse {
	return &TermResponse{
		ID:           t.ID,
		AcademicYear: t.AcademicYear,
		Semester:     t.Semester,
		IsActive:     t.IsActive,
		IsLocked:     t.IsLocked,
	}
}
