package periods

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-TimetableService/internal/domain"
)

const timeLayout = "15:04:05"

// Service сервис сетки пар: раскрытие диапазона в упорядоченный список
// и административная генерация сетки
type Service struct {
	periodRepo   PeriodRepository
	scheduleRepo ScheduleCounter
	dispatch     AuditDispatcher
	logger       Logger
}

// NewService создает новый экземпляр сервиса сетки пар
func NewService(
	periodRepo PeriodRepository,
	scheduleRepo ScheduleCounter,
	dispatch AuditDispatcher,
	logger Logger,
) *Service {
	return &Service{
		periodRepo:   periodRepo,
		scheduleRepo: scheduleRepo,
		dispatch:     dispatch,
		logger:       logger,
	}
}

// ListOrdered возвращает все пары в порядке следования
func (s *Service) ListOrdered(ctx context.Context) ([]*domain.Period, error) {
	result, err := s.periodRepo.ListOrdered(ctx)
	if err != nil {
		s.logger.Error("ListOrdered: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListOrdered - repository error: %v", ErrInternal, err)
	}
	return result, nil
}

// Expand раскрывает диапазон [startID, endID] в непрерывный список ID пар
// в порядке следования. Обе границы включительны.
func (s *Service) Expand(ctx context.Context, startID, endID string) ([]string, error) {
	ordered, err := s.periodRepo.ListOrdered(ctx)
	if err != nil {
		s.logger.Error("Expand: repository error: %v", err)
		return nil, fmt.Errorf("%w: Expand - repository error: %v", ErrInternal, err)
	}

	startIdx, endIdx := -1, -1
	for i, p := range ordered {
		if p.ID == startID {
			startIdx = i
		}
		if p.ID == endID {
			endIdx = i
		}
	}

	if startIdx == -1 || endIdx == -1 {
		s.logger.Warn("Expand: unknown period in range start=%s end=%s", startID, endID)
		return nil, fmt.Errorf("%w: unknown period id", ErrInvalidRange)
	}
	if startIdx > endIdx {
		s.logger.Warn("Expand: start period %s is after end period %s", startID, endID)
		return nil, fmt.Errorf("%w: start period is after end period", ErrInvalidRange)
	}

	ids := make([]string, 0, endIdx-startIdx+1)
	for _, p := range ordered[startIdx : endIdx+1] {
		ids = append(ids, p.ID)
	}
	return ids, nil
}

// Generate создает сетку пар заданной длительности в окне [startTime, endTime].
// Доступно только пока не создано ни одного расписания: существующие
// расписания ссылаются на пары, и смена сетки сделала бы их непроверяемыми.
func (s *Service) Generate(ctx context.Context, startTime, endTime string, intervalMinutes int, userID string) ([]*domain.Period, error) {
	s.logger.Info("Generate: generating periods window=%s-%s interval=%dmin by user=%s",
		startTime, endTime, intervalMinutes, userID)

	if intervalMinutes <= 0 {
		s.logger.Warn("Generate: invalid interval=%d", intervalMinutes)
		return nil, fmt.Errorf("%w: interval must be positive", ErrInvalidInput)
	}

	start, err := parseTime(startTime)
	if err != nil {
		s.logger.Warn("Generate: invalid start time=%s", startTime)
		return nil, fmt.Errorf("%w: invalid start time", ErrInvalidInput)
	}
	end, err := parseTime(endTime)
	if err != nil {
		s.logger.Warn("Generate: invalid end time=%s", endTime)
		return nil, fmt.Errorf("%w: invalid end time", ErrInvalidInput)
	}
	if !start.Before(end) {
		s.logger.Warn("Generate: start=%s is not before end=%s", startTime, endTime)
		return nil, fmt.Errorf("%w: start time must be before end time", ErrInvalidInput)
	}

	count, err := s.scheduleRepo.CountAll(ctx)
	if err != nil {
		s.logger.Error("Generate: repository error: %v", err)
		return nil, fmt.Errorf("%w: Generate - repository error: %v", ErrInternal, err)
	}
	if count > 0 {
		s.logger.Warn("Generate: refused, %d schedules already exist", count)
		return nil, ErrPeriodsInUse
	}

	interval := time.Duration(intervalMinutes) * time.Minute
	var generated []*domain.Period
	for slot, cur := 0, start; !cur.Add(interval).After(end); slot, cur = slot+1, cur.Add(interval) {
		generated = append(generated, &domain.Period{
			StartTime: cur.Format(timeLayout),
			EndTime:   cur.Add(interval).Format(timeLayout),
			SlotIndex: slot + 1,
		})
	}

	if len(generated) == 0 {
		s.logger.Warn("Generate: window %s-%s yields no periods", startTime, endTime)
		return nil, ErrNoPeriodsGenerated
	}

	if err := s.periodRepo.Replace(ctx, generated); err != nil {
		s.logger.Error("Generate: repository error: %v", err)
		return nil, fmt.Errorf("%w: Generate - repository error: %v", ErrInternal, err)
	}

	s.dispatch.RecordAudit(&domain.AuditEntry{
		UserID:     userID,
		Action:     domain.ActionCreate,
		EntityType: domain.EntityPeriod,
		EntityID:   generated[0].ID,
		Details:    fmt.Sprintf("Generated %d periods from %s to %s", len(generated), startTime, endTime),
	})

	s.logger.Info("Generate: successfully generated %d periods", len(generated))
	return generated, nil
}

// parseTime принимает время в формате HH:MM или HH:MM:SS
func parseTime(value string) (time.Time, error) {
	if t, err := time.Parse("15:04:05", value); err == nil {
		return t, nil
	}
	return time.Parse("15:04", value)
}
