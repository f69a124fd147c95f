package save_schedule

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TimetableService/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-TimetableService/internal/infra/storage/schedule"
	conflictModels "github.com/m04kA/SMC-TimetableService/internal/service/conflicts/models"
	"github.com/m04kA/SMC-TimetableService/internal/service/terms"
	"github.com/m04kA/SMC-TimetableService/internal/service/validation"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeScheduleRepo struct {
	schedules map[string]*domain.Schedule
	upserted  *domain.Schedule
	periods   map[string][]string
}

func newFakeScheduleRepo(schedules ...*domain.Schedule) *fakeScheduleRepo {
	repo := &fakeScheduleRepo{
		schedules: make(map[string]*domain.Schedule),
		periods:   make(map[string][]string),
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

func (f *fakeScheduleRepo) Upsert(_ context.Context, s *domain.Schedule) (*domain.Schedule, error) {
	saved := *s
	if saved.ID == "" {
		saved.ID = "sched-new"
	}
	f.schedules[saved.ID] = &saved
	f.upserted = &saved
	return &saved, nil
}

func (f *fakeScheduleRepo) ReplacePeriods(_ context.Context, scheduleID string, periodIDs []string) error {
	f.periods[scheduleID] = periodIDs
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

type fakeValidator struct {
	err error
}

func (f *fakeValidator) Validate(_ context.Context, _ *domain.Schedule, _ string) error {
	return f.err
}

type fakeConflictDetector struct {
	conflicts []conflictModels.Conflict
	calls     int
}

func (f *fakeConflictDetector) FindConflicts(_ context.Context, _ *domain.Schedule) ([]conflictModels.Conflict, error) {
	f.calls++
	return f.conflicts, nil
}

type fakeExpander struct{}

func (fakeExpander) Expand(_ context.Context, startID, endID string) ([]string, error) {
	return []string{startID, "p-mid", endID}, nil
}

type fakeDispatcher struct {
	audited  []*domain.AuditEntry
	notified []string
}

func (f *fakeDispatcher) RecordAudit(entry *domain.AuditEntry) {
	f.audited = append(f.audited, entry)
}

func (f *fakeDispatcher) NotifyFacultyPublished(facultyID string, _ *domain.Schedule) {
	f.notified = append(f.notified, facultyID)
}

type passthroughTxManager struct{}

func (passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixture struct {
	scheduleRepo *fakeScheduleRepo
	versionRepo  *fakeVersionRepo
	termGuard    *fakeTermGuard
	validator    *fakeValidator
	conflicts    *fakeConflictDetector
	dispatcher   *fakeDispatcher
	useCase      *UseCase
}

func newFixture(schedules ...*domain.Schedule) *fixture {
	f := &fixture{
		scheduleRepo: newFakeScheduleRepo(schedules...),
		versionRepo:  &fakeVersionRepo{},
		termGuard:    &fakeTermGuard{},
		validator:    &fakeValidator{},
		conflicts:    &fakeConflictDetector{},
		dispatcher:   &fakeDispatcher{},
	}
	f.useCase = NewUseCase(
		f.scheduleRepo,
		f.versionRepo,
		f.termGuard,
		f.validator,
		f.conflicts,
		fakeExpander{},
		f.dispatcher,
		passthroughTxManager{},
		nopLogger{},
	)
	return f
}

func validRequest() *Request {
	return &Request{
		UserID:         "user-1",
		Role:           domain.RoleDean,
		DepartmentID:   "dept-1",
		AcademicTermID: "term-1",
		SubjectID:      "subj-1",
		FacultyID:      "faculty-1",
		RoomID:         "room-1",
		Day:            "MON",
		StartPeriodID:  "p1",
		EndPeriodID:    "p3",
		Mode:           "IN_PERSON",
		Status:         "DRAFT",
	}
}

func existingDraft() *domain.Schedule {
	return &domain.Schedule{
		ID:             "sched-1",
		AcademicTermID: "term-1",
		DepartmentID:   "dept-1",
		SubjectID:      "subj-1",
		FacultyID:      "faculty-1",
		RoomID:         "room-1",
		Day:            domain.Monday,
		StartPeriodID:  "p1",
		EndPeriodID:    "p3",
		Mode:           domain.ModeInPerson,
		Status:         domain.StatusDraft,
	}
}

func TestExecute_CreateDraft(t *testing.T) {
	f := newFixture()

	result, err := f.useCase.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	require.True(t, result.Success)
	assert.Equal(t, "DRAFT", result.Schedule.Status)

	// Развертка по парам перестроена, снапшот добавлен в историю
	assert.Equal(t, []string{"p1", "p-mid", "p3"}, f.scheduleRepo.periods[result.Schedule.ID])
	require.Len(t, f.versionRepo.appended, 1)

	// Аудит: создание, без предыдущей версии
	require.Len(t, f.dispatcher.audited, 1)
	entry := f.dispatcher.audited[0]
	assert.Equal(t, domain.ActionCreate, entry.Action)
	assert.Nil(t, entry.OldVersion)
	require.NotNil(t, entry.NewVersion)
	assert.Equal(t, int64(1), *entry.NewVersion)

	// Черновик не уведомляет преподавателя и не проверяет конфликты
	assert.Empty(t, f.dispatcher.notified)
	assert.Zero(t, f.conflicts.calls)
}

func TestExecute_PublishDraft(t *testing.T) {
	f := newFixture(existingDraft())

	req := validRequest()
	req.ScheduleID = "sched-1"
	req.Status = "PUBLISHED"

	result, err := f.useCase.Execute(context.Background(), req)
	require.NoError(t, err)
	require.True(t, result.Success)
	assert.Equal(t, "PUBLISHED", result.Schedule.Status)

	assert.Equal(t, 1, f.conflicts.calls)
	assert.Equal(t, []string{"faculty-1"}, f.dispatcher.notified)

	require.Len(t, f.dispatcher.audited, 1)
	assert.Equal(t, domain.ActionPublish, f.dispatcher.audited[0].Action)
}

func TestExecute_PublishWithConflicts(t *testing.T) {
	f := newFixture()
	f.conflicts.conflicts = []conflictModels.Conflict{
		{ScheduleID: "sched-2", RoomClash: true},
	}

	req := validRequest()
	req.Status = "PUBLISHED"

	result, err := f.useCase.Execute(context.Background(), req)
	require.NoError(t, err)

	// Конфликты - мягкий результат: ничего не сохранено, список возвращен
	assert.False(t, result.Success)
	require.Len(t, result.Conflicts, 1)
	assert.Equal(t, "sched-2", result.Conflicts[0].ScheduleID)

	assert.Nil(t, f.scheduleRepo.upserted)
	assert.Empty(t, f.versionRepo.appended)
	assert.Empty(t, f.dispatcher.audited)
	assert.Empty(t, f.dispatcher.notified)
}

func TestExecute_SimulationPublish(t *testing.T) {
	f := newFixture(existingDraft())

	req := validRequest()
	req.ScheduleID = "sched-1"
	req.Status = "PUBLISHED"
	req.IsSimulation = true

	result, err := f.useCase.Execute(context.Background(), req)
	require.NoError(t, err)
	require.True(t, result.Success)

	// Симуляция пишет SIMULATE в аудит и не уведомляет преподавателя
	require.Len(t, f.dispatcher.audited, 1)
	assert.Equal(t, domain.ActionSimulate, f.dispatcher.audited[0].Action)
	assert.Empty(t, f.dispatcher.notified)
}

func TestExecute_IllegalTransitions(t *testing.T) {
	t.Run("resave draft as draft", func(t *testing.T) {
		f := newFixture(existingDraft())

		req := validRequest()
		req.ScheduleID = "sched-1"

		_, err := f.useCase.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrIllegalTransition)
	})

	t.Run("unpublish", func(t *testing.T) {
		published := existingDraft()
		published.Status = domain.StatusPublished
		f := newFixture(published)

		req := validRequest()
		req.ScheduleID = "sched-1"
		req.Status = "DRAFT"

		_, err := f.useCase.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrIllegalTransition)
	})
}

func TestExecute_OwnershipAndGuards(t *testing.T) {
	t.Run("foreign department denied", func(t *testing.T) {
		foreign := existingDraft()
		foreign.DepartmentID = "dept-2"
		f := newFixture(foreign)

		req := validRequest()
		req.ScheduleID = "sched-1"
		req.Status = "PUBLISHED"

		_, err := f.useCase.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("admin may update foreign schedule", func(t *testing.T) {
		foreign := existingDraft()
		foreign.DepartmentID = "dept-2"
		f := newFixture(foreign)

		req := validRequest()
		req.ScheduleID = "sched-1"
		req.Status = "PUBLISHED"
		req.Role = domain.RoleAdmin
		req.DepartmentID = "dept-2"

		result, err := f.useCase.Execute(context.Background(), req)
		require.NoError(t, err)
		assert.True(t, result.Success)
	})

	t.Run("schedule not found", func(t *testing.T) {
		f := newFixture()

		req := validRequest()
		req.ScheduleID = "missing"
		req.Status = "PUBLISHED"

		_, err := f.useCase.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrScheduleNotFound)
	})

	t.Run("locked term rejected before anything else", func(t *testing.T) {
		f := newFixture()
		f.termGuard.err = terms.ErrTermLocked

		_, err := f.useCase.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrTermLocked)
		assert.Nil(t, f.scheduleRepo.upserted)
	})

	t.Run("inactive term rejected for dean", func(t *testing.T) {
		f := newFixture()
		f.termGuard.err = terms.ErrTermInactive

		_, err := f.useCase.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrTermInactive)
	})
}

func TestExecute_ValidationErrorsPassThrough(t *testing.T) {
	f := newFixture()
	f.validator.err = validation.ErrModeRoomMismatch

	_, err := f.useCase.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, validation.ErrModeRoomMismatch)
	assert.Nil(t, f.scheduleRepo.upserted)
}

func TestExecute_InvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *Request)
	}{
		{"missing user", func(r *Request) { r.UserID = "" }},
		{"unknown role", func(r *Request) { r.Role = "STUDENT" }},
		{"missing department", func(r *Request) { r.DepartmentID = "" }},
		{"missing term", func(r *Request) { r.AcademicTermID = "" }},
		{"missing subject", func(r *Request) { r.SubjectID = "" }},
		{"missing faculty", func(r *Request) { r.FacultyID = "" }},
		{"missing room", func(r *Request) { r.RoomID = "" }},
		{"empty class pointer", func(r *Request) { empty := ""; r.ClassID = &empty }},
		{"unknown day", func(r *Request) { r.Day = "SOMEDAY" }},
		{"missing period bounds", func(r *Request) { r.StartPeriodID = "" }},
		{"unknown mode", func(r *Request) { r.Mode = "HYBRID" }},
		{"archived as target status", func(r *Request) { r.Status = "ARCHIVED" }},
		{"empty status", func(r *Request) { r.Status = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			req := validRequest()
			tt.mutate(req)

			_, err := f.useCase.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_UpdateTracksVersions(t *testing.T) {
	f := newFixture(existingDraft())
	f.versionRepo.latest = 3

	req := validRequest()
	req.ScheduleID = "sched-1"
	req.Status = "PUBLISHED"

	_, err := f.useCase.Execute(context.Background(), req)
	require.NoError(t, err)

	require.Len(t, f.dispatcher.audited, 1)
	entry := f.dispatcher.audited[0]
	require.NotNil(t, entry.OldVersion)
	assert.Equal(t, int64(3), *entry.OldVersion)
	require.NotNil(t, entry.NewVersion)
	assert.Equal(t, int64(4), *entry.NewVersion)
}
