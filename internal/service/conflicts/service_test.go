package conflicts

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TimetableService/internal/domain"
	periodsSvc "github.com/m04kA/SMC-TimetableService/internal/service/periods"
	"github.com/m04kA/SMC-TimetableService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeExpander struct {
	ids []string
	err error
}

func (f *fakeExpander) Expand(_ context.Context, startID, endID string) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.ids, nil
}

type fakeScheduleRepo struct {
	overlapping []*domain.Schedule
	gotFilter   domain.OverlapFilter
}

func (f *fakeScheduleRepo) FindPublishedOverlapping(_ context.Context, filter domain.OverlapFilter) ([]*domain.Schedule, error) {
	f.gotFilter = filter
	return f.overlapping, nil
}


func candidateSchedule() *domain.Schedule {
	return &domain.Schedule{
		AcademicTermID: "term-1",
		DepartmentID:   "dept-1",
		SubjectID:      "subj-1",
		FacultyID:      "faculty-1",
		RoomID:         "room-1",
		ClassID:        ptr.Ptr("class-1"),
		Day:            domain.Monday,
		StartPeriodID:  "p1",
		EndPeriodID:    "p3",
		Status:         domain.StatusPublished,
	}
}

func TestFindConflicts(t *testing.T) {
	t.Run("no overlapping schedules", func(t *testing.T) {
		repo := &fakeScheduleRepo{}
		svc := NewService(&fakeExpander{ids: []string{"p1", "p2", "p3"}}, repo, nopLogger{})

		found, err := svc.FindConflicts(context.Background(), candidateSchedule())
		require.NoError(t, err)
		assert.Empty(t, found)

		// Фильтр собирается из кандидата и раскрытого диапазона
		assert.Equal(t, "term-1", repo.gotFilter.AcademicTermID)
		assert.Equal(t, "dept-1", repo.gotFilter.DepartmentID)
		assert.Equal(t, domain.Monday, repo.gotFilter.Day)
		assert.Equal(t, []string{"p1", "p2", "p3"}, repo.gotFilter.PeriodIDs)
	})

	t.Run("room clash with different faculty and class", func(t *testing.T) {
		repo := &fakeScheduleRepo{overlapping: []*domain.Schedule{
			{
				ID:        "sched-2",
				FacultyID: "faculty-2",
				RoomID:    "room-1",
				ClassID:   ptr.Ptr("class-2"),
			},
		}}
		svc := NewService(&fakeExpander{ids: []string{"p1", "p2", "p3"}}, repo, nopLogger{})

		found, err := svc.FindConflicts(context.Background(), candidateSchedule())
		require.NoError(t, err)
		require.Len(t, found, 1)

		assert.Equal(t, "sched-2", found[0].ScheduleID)
		assert.True(t, found[0].RoomClash)
		assert.False(t, found[0].FacultyClash)
		assert.False(t, found[0].ClassClash)
	})

	t.Run("overlap without shared resources is not a conflict", func(t *testing.T) {
		repo := &fakeScheduleRepo{overlapping: []*domain.Schedule{
			{
				ID:        "sched-2",
				FacultyID: "faculty-2",
				RoomID:    "room-2",
				ClassID:   ptr.Ptr("class-2"),
			},
		}}
		svc := NewService(&fakeExpander{ids: []string{"p1", "p2", "p3"}}, repo, nopLogger{})

		found, err := svc.FindConflicts(context.Background(), candidateSchedule())
		require.NoError(t, err)
		assert.Empty(t, found)
	})

	t.Run("candidate excluded on update", func(t *testing.T) {
		candidate := candidateSchedule()
		candidate.ID = "sched-1"

		repo := &fakeScheduleRepo{overlapping: []*domain.Schedule{
			{
				ID:        "sched-1",
				FacultyID: "faculty-1",
				RoomID:    "room-1",
				ClassID:   ptr.Ptr("class-1"),
			},
		}}
		svc := NewService(&fakeExpander{ids: []string{"p1", "p2", "p3"}}, repo, nopLogger{})

		found, err := svc.FindConflicts(context.Background(), candidate)
		require.NoError(t, err)
		assert.Empty(t, found)
	})

	t.Run("schedule spanning several periods reported once", func(t *testing.T) {
		conflicting := &domain.Schedule{
			ID:        "sched-2",
			FacultyID: "faculty-1",
			RoomID:    "room-2",
			ClassID:   nil,
		}
		// Репозиторий может вернуть одно расписание по разу на каждую занятую пару
		repo := &fakeScheduleRepo{overlapping: []*domain.Schedule{conflicting, conflicting, conflicting}}
		svc := NewService(&fakeExpander{ids: []string{"p1", "p2", "p3"}}, repo, nopLogger{})

		found, err := svc.FindConflicts(context.Background(), candidateSchedule())
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.True(t, found[0].FacultyClash)
	})

	t.Run("nil class never clashes on class dimension", func(t *testing.T) {
		candidate := candidateSchedule()
		candidate.ClassID = nil

		repo := &fakeScheduleRepo{overlapping: []*domain.Schedule{
			{
				ID:        "sched-2",
				FacultyID: "faculty-2",
				RoomID:    "room-2",
				ClassID:   ptr.Ptr("class-1"),
			},
		}}
		svc := NewService(&fakeExpander{ids: []string{"p1", "p2", "p3"}}, repo, nopLogger{})

		found, err := svc.FindConflicts(context.Background(), candidate)
		require.NoError(t, err)
		assert.Empty(t, found)
	})

	t.Run("invalid candidate range", func(t *testing.T) {
		svc := NewService(&fakeExpander{err: periodsSvc.ErrInvalidRange}, &fakeScheduleRepo{}, nopLogger{})

		_, err := svc.FindConflicts(context.Background(), candidateSchedule())
		assert.ErrorIs(t, err, ErrInvalidRange)
	})
}
