package dispatch

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/m04kA/SMC-TimetableService/internal/domain"
)

const (
	defaultQueueSize = 256
	taskTimeout      = 5 * time.Second
)

// Dispatcher асинхронно пишет аудит и уведомления.
// Задачи ставятся в буферизованную очередь и выполняются фоновым воркером:
// основная операция не ждет побочных эффектов и не падает из-за них.
// При переполнении очереди задача отбрасывается с предупреждением в логе.
type Dispatcher struct {
	auditRepo        AuditRepository
	notificationRepo NotificationRepository
	catalogRepo      CatalogRepository
	logger           Logger

	queue chan func(ctx context.Context)
	wg    sync.WaitGroup

	closeOnce sync.Once
}

// NewDispatcher создает диспетчер и запускает фоновый воркер
func NewDispatcher(
	auditRepo AuditRepository,
	notificationRepo NotificationRepository,
	catalogRepo CatalogRepository,
	logger Logger,
) *Dispatcher {
	d := &Dispatcher{
		auditRepo:        auditRepo,
		notificationRepo: notificationRepo,
		catalogRepo:      catalogRepo,
		logger:           logger,
		queue:            make(chan func(ctx context.Context), defaultQueueSize),
	}

	d.wg.Add(1)
	go d.worker()

	return d
}

// RecordAudit ставит запись аудита в очередь. Никогда не блокируется.
func (d *Dispatcher) RecordAudit(entry *domain.AuditEntry) {
	d.enqueue(func(ctx context.Context) {
		if _, err := d.auditRepo.Create(ctx, entry); err != nil {
			d.logger.Error("dispatch: failed to write audit entry action=%s entity=%s id=%s: %v",
				entry.Action, entry.EntityType, entry.EntityID, err)
		}
	})
}

// NotifyFacultyPublished ставит в очередь уведомление преподавателю о
// публикации расписания. Преподаватели без учетной записи пропускаются.
func (d *Dispatcher) NotifyFacultyPublished(facultyID string, schedule *domain.Schedule) {
	scheduleID := schedule.ID
	day := schedule.Day
	d.enqueue(func(ctx context.Context) {
		faculty, err := d.catalogRepo.GetFaculty(ctx, facultyID)
		if err != nil {
			d.logger.Error("dispatch: failed to resolve faculty id=%s for notification: %v", facultyID, err)
			return
		}
		if faculty.UserID == nil {
			d.logger.Info("dispatch: faculty id=%s has no user account, skipping notification", facultyID)
			return
		}

		n := &domain.Notification{
			UserID:     *faculty.UserID,
			Type:       "SCHEDULE_PUBLISHED",
			Title:      "Schedule published",
			Message:    fmt.Sprintf("A schedule assigned to you on %s has been published", day),
			EntityType: domain.EntitySchedule,
			EntityID:   scheduleID,
		}
		if err := d.notificationRepo.Create(ctx, n); err != nil {
			d.logger.Error("dispatch: failed to write notification for user=%s: %v", *faculty.UserID, err)
		}
	})
}

// Close останавливает воркер, дождавшись обработки уже поставленных задач
func (d *Dispatcher) Close() {
	d.closeOnce.Do(func() {
		close(d.queue)
	})
	d.wg.Wait()
}

// enqueue ставит задачу в очередь без блокировки
func (d *Dispatcher) enqueue(task func(ctx context.Context)) {
	select {
	case d.queue <- task:
	default:
		d.logger.Warn("dispatch: queue is full, dropping task")
	}
}

// worker последовательно выполняет задачи из очереди
func (d *Dispatcher) worker() {
	defer d.wg.Done()

	for task := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), taskTimeout)
		task(ctx)
		cancel()
	}
}
