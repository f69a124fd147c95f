package conflicts

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TimetableService/internal/domain"
	"github.com/m04kA/SMC-TimetableService/internal/service/conflicts/models"
	periodsSvc "github.com/m04kA/SMC-TimetableService/internal/service/periods"
)

// Service детектор конфликтов: ищет опубликованные расписания того же
// отделения и семестра, которые в тот же день делят хотя бы одну пару
// и хотя бы один ресурс с кандидатом
type Service struct {
	periods      PeriodExpander
	scheduleRepo ScheduleRepository
	logger       Logger
}

// NewService создает новый экземпляр детектора конфликтов
func NewService(periods PeriodExpander, scheduleRepo ScheduleRepository, logger Logger) *Service {
	return &Service{
		periods:      periods,
		scheduleRepo: scheduleRepo,
		logger:       logger,
	}
}

// FindConflicts возвращает список конфликтов кандидата с опубликованными
// расписаниями. Пустой список означает отсутствие конфликтов.
// Кандидат с непустым ID исключается из результата (случай обновления).
func (s *Service) FindConflicts(ctx context.Context, candidate *domain.Schedule) ([]models.Conflict, error) {
	// 1. Раскрываем диапазон пар кандидата
	periodIDs, err := s.periods.Expand(ctx, candidate.StartPeriodID, candidate.EndPeriodID)
	if err != nil {
		if errors.Is(err, periodsSvc.ErrInvalidRange) {
			s.logger.Warn("FindConflicts: invalid period range start=%s end=%s",
				candidate.StartPeriodID, candidate.EndPeriodID)
			return nil, ErrInvalidRange
		}
		s.logger.Error("FindConflicts: period expansion error: %v", err)
		return nil, fmt.Errorf("%w: FindConflicts - period expansion: %v", ErrInternal, err)
	}

	// 2. Выбираем опубликованные расписания, занимающие те же пары
	overlapping, err := s.scheduleRepo.FindPublishedOverlapping(ctx, domain.OverlapFilter{
		AcademicTermID: candidate.AcademicTermID,
		DepartmentID:   candidate.DepartmentID,
		Day:            candidate.Day,
		PeriodIDs:      periodIDs,
	})
	if err != nil {
		s.logger.Error("FindConflicts: repository error: %v", err)
		return nil, fmt.Errorf("%w: FindConflicts - repository error: %v", ErrInternal, err)
	}

	// 3. Исключаем самого кандидата, дедуплицируем и оставляем
	// только расписания, делящие ресурсы
	seen := make(map[string]struct{}, len(overlapping))
	result := make([]models.Conflict, 0)
	for _, existing := range overlapping {
		if candidate.ID != "" && existing.ID == candidate.ID {
			continue
		}
		if _, ok := seen[existing.ID]; ok {
			continue
		}
		seen[existing.ID] = struct{}{}

		if candidate.SharesResources(existing) {
			result = append(result, models.FromDomainSchedule(candidate, existing))
		}
	}

	if len(result) > 0 {
		s.logger.Info("FindConflicts: found %d conflicts for term=%s dept=%s day=%s",
			len(result), candidate.AcademicTermID, candidate.DepartmentID, candidate.Day)
	}
	return result, nil
}
