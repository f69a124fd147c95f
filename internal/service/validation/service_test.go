package validation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-TimetableService/internal/domain"
	catalogRepo "github.com/m04kA/SMC-TimetableService/internal/infra/storage/catalog"
	termRepo "github.com/m04kA/SMC-TimetableService/internal/infra/storage/term"
	"github.com/m04kA/SMC-TimetableService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeTermRepo struct {
	terms map[string]*domain.AcademicTerm
}

func (f *fakeTermRepo) GetByID(_ context.Context, id string) (*domain.AcademicTerm, error) {
	if term, ok := f.terms[id]; ok {
		return term, nil
	}
	return nil, termRepo.ErrTermNotFound
}

type fakeCatalogRepo struct {
	subjects    map[string]*domain.Subject
	departments map[string]*domain.Department
	faculty     map[string]*domain.Faculty
	rooms       map[string]*domain.Room
	classes     map[string]*domain.Class
}

func (f *fakeCatalogRepo) GetSubject(_ context.Context, id string) (*domain.Subject, error) {
	if s, ok := f.subjects[id]; ok {
		return s, nil
	}
	return nil, catalogRepo.ErrSubjectNotFound
}

func (f *fakeCatalogRepo) GetDepartment(_ context.Context, id string) (*domain.Department, error) {
	if d, ok := f.departments[id]; ok {
		return d, nil
	}
	return nil, catalogRepo.ErrDepartmentNotFound
}

func (f *fakeCatalogRepo) GetFaculty(_ context.Context, id string) (*domain.Faculty, error) {
	if fac, ok := f.faculty[id]; ok {
		return fac, nil
	}
	return nil, catalogRepo.ErrFacultyNotFound
}

func (f *fakeCatalogRepo) GetRoom(_ context.Context, id string) (*domain.Room, error) {
	if r, ok := f.rooms[id]; ok {
		return r, nil
	}
	return nil, catalogRepo.ErrRoomNotFound
}

func (f *fakeCatalogRepo) GetClass(_ context.Context, id string) (*domain.Class, error) {
	if c, ok := f.classes[id]; ok {
		return c, nil
	}
	return nil, catalogRepo.ErrClassNotFound
}


// validFixture собирает кандидата и справочники, проходящие все проверки
func validFixture() (*domain.Schedule, *fakeTermRepo, *fakeCatalogRepo) {
	candidate := &domain.Schedule{
		AcademicTermID: "term-1",
		DepartmentID:   "dept-1",
		SubjectID:      "subj-1",
		FacultyID:      "faculty-1",
		RoomID:         "room-1",
		ClassID:        ptr.Ptr("class-1"),
		Day:            domain.Monday,
		StartPeriodID:  "p1",
		EndPeriodID:    "p3",
		Mode:           domain.ModeInPerson,
		Status:         domain.StatusDraft,
	}

	terms := &fakeTermRepo{terms: map[string]*domain.AcademicTerm{
		"term-1": {ID: "term-1", AcademicYear: "2025-2026", Semester: 1, IsActive: true},
	}}

	catalog := &fakeCatalogRepo{
		subjects: map[string]*domain.Subject{
			"subj-1": {ID: "subj-1", SubjectType: domain.SubjectMajor, Semester: 1},
		},
		departments: map[string]*domain.Department{
			"dept-1": {ID: "dept-1", DepartmentType: domain.DepartmentRegular},
		},
		faculty: map[string]*domain.Faculty{
			"faculty-1": {ID: "faculty-1", DepartmentID: "dept-1", IsActive: true},
		},
		rooms: map[string]*domain.Room{
			"room-1": {ID: "room-1", RoomType: domain.RoomLecture, IsActive: true},
		},
		classes: map[string]*domain.Class{
			"class-1": {ID: "class-1", DepartmentID: "dept-1"},
		},
	}

	return candidate, terms, catalog
}

func TestValidate_Passes(t *testing.T) {
	candidate, terms, catalog := validFixture()
	svc := NewService(terms, catalog, nopLogger{})

	assert.NoError(t, svc.Validate(context.Background(), candidate, "dept-1"))
}

func TestValidate_DegenerateRange(t *testing.T) {
	candidate, terms, catalog := validFixture()
	candidate.EndPeriodID = candidate.StartPeriodID
	svc := NewService(terms, catalog, nopLogger{})

	assert.ErrorIs(t, svc.Validate(context.Background(), candidate, "dept-1"), ErrInvalidRange)
}

func TestValidate_Term(t *testing.T) {
	t.Run("term not found", func(t *testing.T) {
		candidate, terms, catalog := validFixture()
		candidate.AcademicTermID = "missing"
		svc := NewService(terms, catalog, nopLogger{})

		assert.ErrorIs(t, svc.Validate(context.Background(), candidate, "dept-1"), ErrTermInvalid)
	})

	t.Run("term inactive", func(t *testing.T) {
		candidate, terms, catalog := validFixture()
		terms.terms["term-1"].IsActive = false
		svc := NewService(terms, catalog, nopLogger{})

		assert.ErrorIs(t, svc.Validate(context.Background(), candidate, "dept-1"), ErrTermInvalid)
	})

	t.Run("term locked", func(t *testing.T) {
		candidate, terms, catalog := validFixture()
		terms.terms["term-1"].IsLocked = true
		svc := NewService(terms, catalog, nopLogger{})

		assert.ErrorIs(t, svc.Validate(context.Background(), candidate, "dept-1"), ErrTermInvalid)
	})
}

func TestValidate_Subject(t *testing.T) {
	t.Run("subject not found", func(t *testing.T) {
		candidate, terms, catalog := validFixture()
		candidate.SubjectID = "missing"
		svc := NewService(terms, catalog, nopLogger{})

		assert.ErrorIs(t, svc.Validate(context.Background(), candidate, "dept-1"), ErrSubjectInvalid)
	})

	t.Run("subject locked", func(t *testing.T) {
		candidate, terms, catalog := validFixture()
		catalog.subjects["subj-1"].IsLocked = true
		svc := NewService(terms, catalog, nopLogger{})

		assert.ErrorIs(t, svc.Validate(context.Background(), candidate, "dept-1"), ErrSubjectInvalid)
	})

	t.Run("semester mismatch", func(t *testing.T) {
		candidate, terms, catalog := validFixture()
		catalog.subjects["subj-1"].Semester = 2
		svc := NewService(terms, catalog, nopLogger{})

		assert.ErrorIs(t, svc.Validate(context.Background(), candidate, "dept-1"), ErrSemesterMismatch)
	})
}

func TestValidate_Department(t *testing.T) {
	t.Run("cross-department write denied", func(t *testing.T) {
		candidate, terms, catalog := validFixture()
		svc := NewService(terms, catalog, nopLogger{})

		assert.ErrorIs(t, svc.Validate(context.Background(), candidate, "dept-2"), ErrCrossDepartmentDenied)
	})

	t.Run("subject type does not match department type", func(t *testing.T) {
		candidate, terms, catalog := validFixture()
		catalog.subjects["subj-1"].SubjectType = domain.SubjectGenEd
		svc := NewService(terms, catalog, nopLogger{})

		assert.ErrorIs(t, svc.Validate(context.Background(), candidate, "dept-1"), ErrTypeMismatch)
	})

	t.Run("gened department takes gened subjects", func(t *testing.T) {
		candidate, terms, catalog := validFixture()
		catalog.departments["dept-1"].DepartmentType = domain.DepartmentGenEd
		catalog.subjects["subj-1"].SubjectType = domain.SubjectGenEd
		svc := NewService(terms, catalog, nopLogger{})

		assert.NoError(t, svc.Validate(context.Background(), candidate, "dept-1"))
	})
}

func TestValidate_Class(t *testing.T) {
	t.Run("class not found", func(t *testing.T) {
		candidate, terms, catalog := validFixture()
		candidate.ClassID = ptr.Ptr("missing")
		svc := NewService(terms, catalog, nopLogger{})

		assert.ErrorIs(t, svc.Validate(context.Background(), candidate, "dept-1"), ErrInvalidClass)
	})

	t.Run("class from another department", func(t *testing.T) {
		candidate, terms, catalog := validFixture()
		catalog.classes["class-1"].DepartmentID = "dept-2"
		svc := NewService(terms, catalog, nopLogger{})

		assert.ErrorIs(t, svc.Validate(context.Background(), candidate, "dept-1"), ErrClassDepartmentMismatch)
	})

	t.Run("gened department may use foreign classes", func(t *testing.T) {
		candidate, terms, catalog := validFixture()
		catalog.departments["dept-1"].DepartmentType = domain.DepartmentGenEd
		catalog.subjects["subj-1"].SubjectType = domain.SubjectGenEd
		catalog.classes["class-1"].DepartmentID = "dept-2"
		catalog.faculty["faculty-1"].DepartmentID = "dept-2"
		svc := NewService(terms, catalog, nopLogger{})

		assert.NoError(t, svc.Validate(context.Background(), candidate, "dept-1"))
	})

	t.Run("no class is allowed", func(t *testing.T) {
		candidate, terms, catalog := validFixture()
		candidate.ClassID = nil
		svc := NewService(terms, catalog, nopLogger{})

		assert.NoError(t, svc.Validate(context.Background(), candidate, "dept-1"))
	})
}

func TestValidate_Faculty(t *testing.T) {
	t.Run("faculty not found", func(t *testing.T) {
		candidate, terms, catalog := validFixture()
		candidate.FacultyID = "missing"
		svc := NewService(terms, catalog, nopLogger{})

		assert.ErrorIs(t, svc.Validate(context.Background(), candidate, "dept-1"), ErrInvalidFaculty)
	})

	t.Run("faculty inactive", func(t *testing.T) {
		candidate, terms, catalog := validFixture()
		catalog.faculty["faculty-1"].IsActive = false
		svc := NewService(terms, catalog, nopLogger{})

		assert.ErrorIs(t, svc.Validate(context.Background(), candidate, "dept-1"), ErrInvalidFaculty)
	})

	t.Run("faculty from another department", func(t *testing.T) {
		candidate, terms, catalog := validFixture()
		catalog.faculty["faculty-1"].DepartmentID = "dept-2"
		svc := NewService(terms, catalog, nopLogger{})

		assert.ErrorIs(t, svc.Validate(context.Background(), candidate, "dept-1"), ErrInvalidFaculty)
	})
}

func TestValidate_Room(t *testing.T) {
	t.Run("room not found", func(t *testing.T) {
		candidate, terms, catalog := validFixture()
		candidate.RoomID = "missing"
		svc := NewService(terms, catalog, nopLogger{})

		assert.ErrorIs(t, svc.Validate(context.Background(), candidate, "dept-1"), ErrInvalidRoom)
	})

	t.Run("room inactive", func(t *testing.T) {
		candidate, terms, catalog := validFixture()
		catalog.rooms["room-1"].IsActive = false
		svc := NewService(terms, catalog, nopLogger{})

		assert.ErrorIs(t, svc.Validate(context.Background(), candidate, "dept-1"), ErrInvalidRoom)
	})

	t.Run("online mode requires online room", func(t *testing.T) {
		candidate, terms, catalog := validFixture()
		candidate.Mode = domain.ModeOnline
		svc := NewService(terms, catalog, nopLogger{})

		assert.ErrorIs(t, svc.Validate(context.Background(), candidate, "dept-1"), ErrModeRoomMismatch)
	})

	t.Run("in-person mode cannot use online room", func(t *testing.T) {
		candidate, terms, catalog := validFixture()
		catalog.rooms["room-1"].RoomType = domain.RoomOnline
		svc := NewService(terms, catalog, nopLogger{})

		assert.ErrorIs(t, svc.Validate(context.Background(), candidate, "dept-1"), ErrModeRoomMismatch)
	})

	t.Run("async mode takes any room", func(t *testing.T) {
		candidate, terms, catalog := validFixture()
		candidate.Mode = domain.ModeAsync
		catalog.rooms["room-1"].RoomType = domain.RoomOnline
		svc := NewService(terms, catalog, nopLogger{})

		assert.NoError(t, svc.Validate(context.Background(), candidate, "dept-1"))
	})
}
