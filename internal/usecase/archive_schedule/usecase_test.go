package archive_schedule

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TimetableService/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-TimetableService/internal/infra/storage/schedule"
	"github.com/m04kA/SMC-TimetableService/internal/service/terms"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeScheduleRepo struct {
	schedules map[string]*domain.Schedule
	updated   map[string]domain.ScheduleStatus
}

func newFakeScheduleRepo(schedules ...*domain.Schedule) *fakeScheduleRepo {
	repo := &fakeScheduleRepo{
		schedules: make(map[string]*domain.Schedule),
		updated:   make(map[string]domain.ScheduleStatus),
	}
	for _, s := range schedules {
		repo.schedules[s.ID] = s
	}
	return repo
}

func (f *fakeScheduleRepo) GetByID(_ context.Context, id string) (*domain.Schedule, error) {
	if s, ok := f.schedules[id]; ok {
		return s, nil
	}
	return nil, scheduleRepo.ErrScheduleNotFound
}

func (f *fakeScheduleRepo) UpdateStatus(_ context.Context, id string, status domain.ScheduleStatus) error {
	f.updated[id] = status
	return nil
}

type fakeVersionRepo struct {
	latest   int64
	appended []*domain.Schedule
}

func (f *fakeVersionRepo) LatestVersion(_ context.Context, _ string) (int64, error) {
	return f.latest, nil
}

func (f *fakeVersionRepo) Append(_ context.Context, snapshot *domain.Schedule) (int64, error) {
	f.appended = append(f.appended, snapshot)
	f.latest++
	return f.latest, nil
}

type fakeTermGuard struct {
	err error
}

func (f *fakeTermGuard) AssertMutable(_ context.Context, termID string, _ domain.Role) (*domain.AcademicTerm, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &domain.AcademicTerm{ID: termID, IsActive: true}, nil
}

type fakeDispatcher struct {
	audited []*domain.AuditEntry
}

func (f *fakeDispatcher) RecordAudit(entry *domain.AuditEntry) {
	f.audited = append(f.audited, entry)
}

type passthroughTxManager struct{}

func (passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func publishedSchedule() *domain.Schedule {
	return &domain.Schedule{
		ID:             "sched-1",
		AcademicTermID: "term-1",
		DepartmentID:   "dept-1",
		SubjectID:      "subj-1",
		FacultyID:      "faculty-1",
		RoomID:         "room-1",
		Day:            domain.Monday,
		Status:         domain.StatusPublished,
	}
}

func validRequest() *Request {
	return &Request{
		UserID:       "user-1",
		Role:         domain.RoleDean,
		DepartmentID: "dept-1",
		ScheduleID:   "sched-1",
	}
}

func TestExecute_ArchivesPublished(t *testing.T) {
	repo := newFakeScheduleRepo(publishedSchedule())
	versions := &fakeVersionRepo{latest: 2}
	dispatcher := &fakeDispatcher{}
	uc := NewUseCase(repo, versions, &fakeTermGuard{}, dispatcher, passthroughTxManager{}, nopLogger{})

	result, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, "ARCHIVED", result.Schedule.Status)
	assert.Equal(t, domain.StatusArchived, repo.updated["sched-1"])

	// Снапшот архивного состояния добавлен в историю
	require.Len(t, versions.appended, 1)
	assert.Equal(t, domain.StatusArchived, versions.appended[0].Status)

	require.Len(t, dispatcher.audited, 1)
	entry := dispatcher.audited[0]
	assert.Equal(t, domain.ActionArchive, entry.Action)
	require.NotNil(t, entry.OldVersion)
	assert.Equal(t, int64(2), *entry.OldVersion)
	require.NotNil(t, entry.NewVersion)
	assert.Equal(t, int64(3), *entry.NewVersion)
}

func TestExecute_OnlyPublishedCanBeArchived(t *testing.T) {
	for _, status := range []domain.ScheduleStatus{domain.StatusDraft, domain.StatusArchived} {
		t.Run(string(status), func(t *testing.T) {
			s := publishedSchedule()
			s.Status = status
			uc := NewUseCase(newFakeScheduleRepo(s), &fakeVersionRepo{}, &fakeTermGuard{},
				&fakeDispatcher{}, passthroughTxManager{}, nopLogger{})

			_, err := uc.Execute(context.Background(), validRequest())
			assert.ErrorIs(t, err, ErrIllegalTransition)
		})
	}
}

func TestExecute_OwnershipAndGuards(t *testing.T) {
	t.Run("foreign department denied", func(t *testing.T) {
		s := publishedSchedule()
		s.DepartmentID = "dept-2"
		uc := NewUseCase(newFakeScheduleRepo(s), &fakeVersionRepo{}, &fakeTermGuard{},
			&fakeDispatcher{}, passthroughTxManager{}, nopLogger{})

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("admin may archive foreign schedule", func(t *testing.T) {
		s := publishedSchedule()
		s.DepartmentID = "dept-2"
		uc := NewUseCase(newFakeScheduleRepo(s), &fakeVersionRepo{}, &fakeTermGuard{},
			&fakeDispatcher{}, passthroughTxManager{}, nopLogger{})

		req := validRequest()
		req.Role = domain.RoleAdmin

		_, err := uc.Execute(context.Background(), req)
		assert.NoError(t, err)
	})

	t.Run("locked term blocks archive", func(t *testing.T) {
		uc := NewUseCase(newFakeScheduleRepo(publishedSchedule()), &fakeVersionRepo{},
			&fakeTermGuard{err: terms.ErrTermLocked}, &fakeDispatcher{}, passthroughTxManager{}, nopLogger{})

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrTermLocked)
	})

	t.Run("schedule not found", func(t *testing.T) {
		uc := NewUseCase(newFakeScheduleRepo(), &fakeVersionRepo{}, &fakeTermGuard{},
			&fakeDispatcher{}, passthroughTxManager{}, nopLogger{})

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrScheduleNotFound)
	})

	t.Run("missing schedule id", func(t *testing.T) {
		uc := NewUseCase(newFakeScheduleRepo(), &fakeVersionRepo{}, &fakeTermGuard{},
			&fakeDispatcher{}, passthroughTxManager{}, nopLogger{})

		req := validRequest()
		req.ScheduleID = ""

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
