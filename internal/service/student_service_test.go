package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opencampus/ccrm-api/internal/models"
	"github.com/opencampus/ccrm-api/internal/repository"
	appErrors "github.com/opencampus/ccrm-api/pkg/errors"
)

func newStudentService(t *testing.T) (*StudentService, *repository.StudentRepository) {
	t.Helper()
	repo := repository.NewStudentRepository()
	return NewStudentService(repo, nil, nil), repo
}

func createStudent(t *testing.T, svc *StudentService, id, regNo, first, last, email string) *models.Student {
	t.Helper()
	student, err := svc.Create(context.Background(), CreateStudentRequest{
		ID: id, RegNo: regNo, FirstName: first, LastName: last, Email: email,
	})
	require.NoError(t, err)
	return student
}

func TestStudentServiceCreateAndGet(t *testing.T) {
	svc, _ := newStudentService(t)

	created := createStudent(t, svc, "S1", "2024CS001", "Asha", "Rao", "asha@campus.edu")
	assert.True(t, created.Active)
	assert.Equal(t, "Asha Rao", created.Name.FullName())

	fetched, err := svc.Get(context.Background(), "S1")
	require.NoError(t, err)
	assert.Equal(t, "2024CS001", fetched.RegNo)
}

func TestStudentServiceCreateValidation(t *testing.T) {
	svc, _ := newStudentService(t)

	_, err := svc.Create(context.Background(), CreateStudentRequest{
		ID: "S1", RegNo: "2024CS001", FirstName: "Asha", LastName: "Rao", Email: "not-an-email",
	})
	require.Error(t, err)

	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
}

func TestStudentServiceCreateOverwritesExistingID(t *testing.T) {
	svc, _ := newStudentService(t)

	createStudent(t, svc, "S1", "2024CS001", "Asha", "Rao", "asha@campus.edu")
	createStudent(t, svc, "S1", "2024CS099", "Asha", "Rao", "asha.rao@campus.edu")

	fetched, err := svc.Get(context.Background(), "S1")
	require.NoError(t, err)
	assert.Equal(t, "2024CS099", fetched.RegNo)
	assert.Equal(t, "asha.rao@campus.edu", fetched.Email)
}

func TestStudentServiceGetMissing(t *testing.T) {
	svc, _ := newStudentService(t)

	_, err := svc.Get(context.Background(), "S404")
	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
}

func TestStudentServiceUpdateEmail(t *testing.T) {
	svc, _ := newStudentService(t)
	createStudent(t, svc, "S1", "2024CS001", "Asha", "Rao", "asha@campus.edu")

	updated, err := svc.Update(context.Background(), "S1", UpdateStudentRequest{Email: "new@campus.edu"})
	require.NoError(t, err)
	assert.Equal(t, "new@campus.edu", updated.Email)

	_, err = svc.Update(context.Background(), "S404", UpdateStudentRequest{Email: "new@campus.edu"})
	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
}

func TestStudentServiceDeleteDeactivates(t *testing.T) {
	svc, _ := newStudentService(t)
	createStudent(t, svc, "S1", "2024CS001", "Asha", "Rao", "asha@campus.edu")

	svc.Delete(context.Background(), "S1")

	fetched, err := svc.Get(context.Background(), "S1")
	require.NoError(t, err, "deactivated student stays readable")
	assert.False(t, fetched.Active)

	svc.Delete(context.Background(), "S404")
}

func TestStudentServiceListWithFilter(t *testing.T) {
	svc, _ := newStudentService(t)
	createStudent(t, svc, "S1", "2024CS001", "Asha", "Rao", "asha@campus.edu")
	createStudent(t, svc, "S2", "2024CS002", "Bram", "Okafor", "bram@campus.edu")

	assert.Len(t, svc.List(context.Background(), "", ""), 2)

	matched := svc.List(context.Background(), "name", "okafor")
	require.Len(t, matched, 1)
	assert.Equal(t, "S2", matched[0].ID)

	assert.Empty(t, svc.List(context.Background(), "bogus", "x"))
}

func TestStudentServiceAssignGrade(t *testing.T) {
	svc, _ := newStudentService(t)
	createStudent(t, svc, "S1", "2024CS001", "Asha", "Rao", "asha@campus.edu")
	svc.Enroll(context.Background(), "S1", "CS101")

	grade, err := svc.AssignGrade(context.Background(), AssignGradeRequest{
		StudentID: "S1", CourseCode: "CS101", Marks: 87,
	})
	require.NoError(t, err)
	assert.Equal(t, models.GradeA, grade)

	fetched, err := svc.Get(context.Background(), "S1")
	require.NoError(t, err)
	assert.InDelta(t, 9.0, fetched.GPA(), 1e-9)
}

func TestStudentServiceAssignGradeMarksOutOfRange(t *testing.T) {
	svc, _ := newStudentService(t)
	createStudent(t, svc, "S1", "2024CS001", "Asha", "Rao", "asha@campus.edu")
	svc.Enroll(context.Background(), "S1", "CS101")

	for _, marks := range []float64{-0.5, 100.5} {
		_, err := svc.AssignGrade(context.Background(), AssignGradeRequest{
			StudentID: "S1", CourseCode: "CS101", Marks: marks,
		})
		var appErr *appErrors.Error
		require.True(t, errors.As(err, &appErr), "marks=%v", marks)
		assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
	}
}

func TestStudentServiceAssignGradeUnenrolledIsNoop(t *testing.T) {
	svc, _ := newStudentService(t)
	createStudent(t, svc, "S1", "2024CS001", "Asha", "Rao", "asha@campus.edu")

	grade, err := svc.AssignGrade(context.Background(), AssignGradeRequest{
		StudentID: "S1", CourseCode: "CS101", Marks: 95,
	})
	require.NoError(t, err)
	assert.Equal(t, models.GradeS, grade)

	fetched, err := svc.Get(context.Background(), "S1")
	require.NoError(t, err)
	assert.Empty(t, fetched.CourseGrades)
	assert.Zero(t, fetched.GPA())
}

func TestStudentServiceUnenrollClearsGrade(t *testing.T) {
	svc, _ := newStudentService(t)
	createStudent(t, svc, "S1", "2024CS001", "Asha", "Rao", "asha@campus.edu")
	svc.Enroll(context.Background(), "S1", "CS101")

	_, err := svc.AssignGrade(context.Background(), AssignGradeRequest{
		StudentID: "S1", CourseCode: "CS101", Marks: 75,
	})
	require.NoError(t, err)

	svc.Unenroll(context.Background(), "S1", "CS101")

	fetched, err := svc.Get(context.Background(), "S1")
	require.NoError(t, err)
	assert.Empty(t, fetched.EnrolledCourses)
	assert.Empty(t, fetched.CourseGrades)
}

func TestStudentServiceTopStudents(t *testing.T) {
	svc, _ := newStudentService(t)
	ctx := context.Background()

	// S1 GPA 9, S2 GPA 10, S3 GPA 9, S4 ungraded GPA 0.
	rigged := []struct {
		id    string
		marks float64
	}{
		{"S1", 85},
		{"S2", 95},
		{"S3", 85},
	}
	for _, r := range rigged {
		createStudent(t, svc, r.id, "REG"+r.id, "First", r.id, r.id+"@campus.edu")
		svc.Enroll(ctx, r.id, "CS101")
		_, err := svc.AssignGrade(ctx, AssignGradeRequest{StudentID: r.id, CourseCode: "CS101", Marks: r.marks})
		require.NoError(t, err)
	}
	createStudent(t, svc, "S4", "REGS4", "First", "S4", "s4@campus.edu")

	top := svc.TopStudents(ctx, 3)
	require.Len(t, top, 3)
	assert.Equal(t, "S2", top[0].ID)
	assert.Equal(t, "S1", top[1].ID, "equal GPAs break ties by ID")
	assert.Equal(t, "S3", top[2].ID)

	assert.Empty(t, svc.TopStudents(ctx, 0))
	assert.Empty(t, svc.TopStudents(ctx, -4))
	assert.Len(t, svc.TopStudents(ctx, 100), 4, "n larger than population returns everyone")
}
