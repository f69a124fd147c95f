package list_periods

import "github.com/m04kA/SMC-TimetableService/internal/domain"

// PeriodResponse HTTP response model
type PeriodResponse struct {
	ID        string `json:"id"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	SlotIndex int    `json:"slotIndex"`
}

// PeriodListResponse список пар в порядке следования
type PeriodListResponse struct {
	Periods []*PeriodResponse `json:"periods"`
	Total   int               `json:"total"`
}

// FromDomainPeriodList конвертирует список domain моделей в response
func FromDomainPeriodList(periods []*domain.Period) *PeriodListResponse {
	result := make([]*PeriodResponse, 0, len(periods))
	for _, p := range periods {
		result = append(result, &PeriodResponse{
			ID:        p.ID,
			StartTime: p.StartTime,
			EndTime:   p.EndTime,
			SlotIndex: p.SlotIndex,
		})
	}
	return &PeriodListResponse{Periods: result, Total: len(result)}
}
