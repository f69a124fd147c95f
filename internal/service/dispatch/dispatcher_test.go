package dispatch

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TimetableService/internal/domain"
	catalogRepo "github.com/m04kA/SMC-TimetableService/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-TimetableService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeAuditRepo struct {
	mu      sync.Mutex
	failFor domain.AuditAction
	entries []*domain.AuditEntry
}

func (f *fakeAuditRepo) Create(_ context.Context, entry *domain.AuditEntry) (*domain.AuditEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failFor != "" && entry.Action == f.failFor {
		return nil, errors.New("write failed")
	}
	f.entries = append(f.entries, entry)
	return entry, nil
}

type fakeNotificationRepo struct {
	mu            sync.Mutex
	notifications []*domain.Notification
}

func (f *fakeNotificationRepo) Create(_ context.Context, n *domain.Notification) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.notifications = append(f.notifications, n)
	return nil
}

type fakeCatalogRepo struct {
	faculty map[string]*domain.Faculty
}

func (f *fakeCatalogRepo) GetFaculty(_ context.Context, id string) (*domain.Faculty, error) {
	if fac, ok := f.faculty[id]; ok {
		return fac, nil
	}
	return nil, catalogRepo.ErrFacultyNotFound
}

func TestDispatcher_RecordAudit(t *testing.T) {
	auditRepo := &fakeAuditRepo{}
	d := NewDispatcher(auditRepo, &fakeNotificationRepo{}, &fakeCatalogRepo{}, nopLogger{})

	d.RecordAudit(&domain.AuditEntry{
		UserID:     "user-1",
		Action:     domain.ActionPublish,
		EntityType: domain.EntitySchedule,
		EntityID:   "sched-1",
	})
	d.Close()

	require.Len(t, auditRepo.entries, 1)
	assert.Equal(t, domain.ActionPublish, auditRepo.entries[0].Action)
	assert.Equal(t, "sched-1", auditRepo.entries[0].EntityID)
}

func TestDispatcher_NotifyFacultyPublished(t *testing.T) {
	t.Run("writes notification for faculty with account", func(t *testing.T) {
		notificationRepo := &fakeNotificationRepo{}
		catalog := &fakeCatalogRepo{faculty: map[string]*domain.Faculty{
			"faculty-1": {ID: "faculty-1", UserID: ptr.Ptr("user-9"), IsActive: true},
		}}
		d := NewDispatcher(&fakeAuditRepo{}, notificationRepo, catalog, nopLogger{})

		d.NotifyFacultyPublished("faculty-1", &domain.Schedule{ID: "sched-1", Day: domain.Monday})
		d.Close()

		require.Len(t, notificationRepo.notifications, 1)
		n := notificationRepo.notifications[0]
		assert.Equal(t, "user-9", n.UserID)
		assert.Equal(t, "SCHEDULE_PUBLISHED", n.Type)
		assert.Equal(t, domain.EntitySchedule, n.EntityType)
		assert.Equal(t, "sched-1", n.EntityID)
	})

	t.Run("skips faculty without account", func(t *testing.T) {
		notificationRepo := &fakeNotificationRepo{}
		catalog := &fakeCatalogRepo{faculty: map[string]*domain.Faculty{
			"faculty-1": {ID: "faculty-1", UserID: nil, IsActive: true},
		}}
		d := NewDispatcher(&fakeAuditRepo{}, notificationRepo, catalog, nopLogger{})

		d.NotifyFacultyPublished("faculty-1", &domain.Schedule{ID: "sched-1", Day: domain.Monday})
		d.Close()

		assert.Empty(t, notificationRepo.notifications)
	})

	t.Run("unknown faculty does not write", func(t *testing.T) {
		notificationRepo := &fakeNotificationRepo{}
		d := NewDispatcher(&fakeAuditRepo{}, notificationRepo, &fakeCatalogRepo{}, nopLogger{})

		d.NotifyFacultyPublished("missing", &domain.Schedule{ID: "sched-1", Day: domain.Monday})
		d.Close()

		assert.Empty(t, notificationRepo.notifications)
	})
}

func TestDispatcher_SinkFailureDoesNotStopWorker(t *testing.T) {
	auditRepo := &fakeAuditRepo{failFor: domain.ActionCreate}
	d := NewDispatcher(auditRepo, &fakeNotificationRepo{}, &fakeCatalogRepo{}, nopLogger{})

	d.RecordAudit(&domain.AuditEntry{Action: domain.ActionCreate, EntityType: domain.EntitySchedule, EntityID: "sched-1"})
	d.RecordAudit(&domain.AuditEntry{Action: domain.ActionUpdate, EntityType: domain.EntitySchedule, EntityID: "sched-2"})
	d.Close()

	require.Len(t, auditRepo.entries, 1)
	assert.Equal(t, "sched-2", auditRepo.entries[0].EntityID)
}

func TestDispatcher_CloseDrainsQueue(t *testing.T) {
	auditRepo := &fakeAuditRepo{}
	d := NewDispatcher(auditRepo, &fakeNotificationRepo{}, &fakeCatalogRepo{}, nopLogger{})

	for i := 0; i < 50; i++ {
		d.RecordAudit(&domain.AuditEntry{Action: domain.ActionUpdate, EntityType: domain.EntitySchedule})
	}
	d.Close()

	assert.Len(t, auditRepo.entries, 50)
}

func TestDispatcher_CloseIsIdempotent(t *testing.T) {
	d := NewDispatcher(&fakeAuditRepo{}, &fakeNotificationRepo{}, &fakeCatalogRepo{}, nopLogger{})

	d.Close()
	assert.NotPanics(t, func() { d.Close() })
}
