package list_periods

import (
	"net/http"

	"github.com/m04kA/SMC-TimetableService/internal/api/handlers"
)

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

// Handle GET /api/v1/periods
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	periods, err := h.service.ListOrdered(r.Context())
	if err != nil {
		h.logger.Error("GET /periods - Failed to list: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainPeriodList(periods))
}
