package list_schedules

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-TimetableService/internal/api/handlers"
	"github.com/m04kA/SMC-TimetableService/internal/service/schedules"
	"github.com/m04kA/SMC-TimetableService/internal/service/schedules/models"
)

const (
	msgInvalidFilter = "некорректные параметры фильтрации"
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

// Handle GET /api/v1/schedules
// Query параметры: academicTermId, departmentId (обязательные),
// day, status, includeArchived (опциональные)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := &models.ListSchedulesRequest{
		AcademicTermID: query.Get("academicTermId"),
		DepartmentID:   query.Get("departmentId"),
	}
	if day := query.Get("day"); day != "" {
		req.Day = &day
	}
	if status := query.Get("status"); status != "" {
		req.Status = &status
	}
	if raw := query.Get("includeArchived"); raw != "" {
		includeArchived, err := strconv.ParseBool(raw)
		if err != nil {
			h.logger.Warn("GET /schedules - Invalid includeArchived=%s", raw)
			handlers.RespondBadRequest(w, msgInvalidFilter)
			return
		}
		req.IncludeArchived = includeArchived
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, schedules.ErrInvalidInput):
			h.logger.Warn("GET /schedules - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /schedules - Failed to list: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
