package generate_periods

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TimetableService/internal/api/handlers"
	"github.com/m04kA/SMC-TimetableService/internal/api/middleware"
	"github.com/m04kA/SMC-TimetableService/internal/service/periods"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgPeriodsInUse       = "сетку пар нельзя менять, пока существуют расписания"
	msgNoPeriods          = "заданное окно не дает ни одной пары"
	msgAccessDenied       = "доступ запрещен"
)

// GeneratePeriodsRequest HTTP request model
type GeneratePeriodsRequest struct {
	StartTime       string `json:"startTime"` // "07:00"
	EndTime         string `json:"endTime"`   // "19:00"
	IntervalMinutes int    `json:"intervalMinutes"`
}

// PeriodResponse HTTP response model
type PeriodResponse struct {
	ID        string `json:"id"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	SlotIndex int    `json:"slotIndex"`
}

// GeneratePeriodsResponse результат генерации сетки
type GeneratePeriodsResponse struct {
	Periods []*PeriodResponse `json:"periods"`
	Total   int               `json:"total"`
}

type Handler struct {
	service PeriodsService
	logger  Logger
}

func NewHandler(service PeriodsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/periods/generate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgAccessDenied)
		return
	}

	var req GeneratePeriodsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/periods/generate - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	generated, err := h.service.Generate(r.Context(), req.StartTime, req.EndTime, req.IntervalMinutes, identity.UserID)
	if err != nil {
		switch {
		case errors.Is(err, periods.ErrInvalidInput):
			h.logger.Warn("POST /admin/periods/generate - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, periods.ErrPeriodsInUse):
			h.logger.Warn("POST /admin/periods/generate - Periods in use")
			handlers.RespondConflict(w, msgPeriodsInUse)

		case errors.Is(err, periods.ErrNoPeriodsGenerated):
			h.logger.Warn("POST /admin/periods/generate - Window yields no periods")
			handlers.RespondBadRequest(w, msgNoPeriods)

		default:
			h.logger.Error("POST /admin/periods/generate - Failed to generate: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := &GeneratePeriodsResponse{Total: len(generated)}
	for _, p := range generated {
		response.Periods = append(response.Periods, &PeriodResponse{
			ID:        p.ID,
			StartTime: p.StartTime,
			EndTime:   p.EndTime,
			SlotIndex: p.SlotIndex,
		})
	}

	h.logger.Info("POST /admin/periods/generate - Generated %d periods by user=%s",
		len(generated), identity.UserID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
