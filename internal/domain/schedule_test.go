package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-TimetableService/pkg/ptr"
)


func TestSchedule_SharesResources(t *testing.T) {
	base := &Schedule{
		FacultyID: "faculty-1",
		RoomID:    "room-1",
		ClassID:   ptr.Ptr("class-1"),
	}

	tests := []struct {
		name   string
		other  *Schedule
		shared bool
	}{
		{
			name:   "same faculty",
			other:  &Schedule{FacultyID: "faculty-1", RoomID: "room-2", ClassID: ptr.Ptr("class-2")},
			shared: true,
		},
		{
			name:   "same room",
			other:  &Schedule{FacultyID: "faculty-2", RoomID: "room-1", ClassID: ptr.Ptr("class-2")},
			shared: true,
		},
		{
			name:   "same class",
			other:  &Schedule{FacultyID: "faculty-2", RoomID: "room-2", ClassID: ptr.Ptr("class-1")},
			shared: true,
		},
		{
			name:   "nothing shared",
			other:  &Schedule{FacultyID: "faculty-2", RoomID: "room-2", ClassID: ptr.Ptr("class-2")},
			shared: false,
		},
		{
			name:   "other has no class",
			other:  &Schedule{FacultyID: "faculty-2", RoomID: "room-2", ClassID: nil},
			shared: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.shared, base.SharesResources(tt.other))
		})
	}
}

func TestSchedule_SharesResources_NilClasses(t *testing.T) {
	// Два расписания без групп не пересекаются по измерению группы
	a := &Schedule{FacultyID: "faculty-1", RoomID: "room-1", ClassID: nil}
	b := &Schedule{FacultyID: "faculty-2", RoomID: "room-2", ClassID: nil}

	assert.False(t, a.SharesResources(b))
}

func TestWeekday_IsValid(t *testing.T) {
	for _, day := range Weekdays {
		assert.True(t, day.IsValid(), "day %s", day)
	}
	assert.False(t, Weekday("FRIDAY").IsValid())
	assert.False(t, Weekday("").IsValid())
}

func TestScheduleMode_IsValid(t *testing.T) {
	assert.True(t, ModeInPerson.IsValid())
	assert.True(t, ModeOnline.IsValid())
	assert.True(t, ModeAsync.IsValid())
	assert.False(t, ScheduleMode("HYBRID").IsValid())
}

func TestScheduleStatus_IsValid(t *testing.T) {
	assert.True(t, StatusDraft.IsValid())
	assert.True(t, StatusPublished.IsValid())
	assert.True(t, StatusArchived.IsValid())
	assert.False(t, StatusNone.IsValid())
	assert.False(t, ScheduleStatus("DELETED").IsValid())
}

func TestRole_IsValid(t *testing.T) {
	assert.True(t, RoleAdmin.IsValid())
	assert.True(t, RoleDean.IsValid())
	assert.False(t, Role("STUDENT").IsValid())
	assert.False(t, Role("").IsValid())
}
