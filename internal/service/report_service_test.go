package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opencampus/ccrm-api/internal/dto"
	"github.com/opencampus/ccrm-api/internal/models"
	"github.com/opencampus/ccrm-api/internal/repository"
	appErrors "github.com/opencampus/ccrm-api/pkg/errors"
)

type reportFixture struct {
	svc      *ReportService
	students *repository.StudentRepository
	courses  *repository.CourseRepository
}

func newReportFixture(t *testing.T) *reportFixture {
	t.Helper()
	students := repository.NewStudentRepository()
	courses := repository.NewCourseRepository()
	ranker := NewStudentService(students, nil, nil)
	return &reportFixture{
		svc:      NewReportService(students, courses, ranker, nil),
		students: students,
		courses:  courses,
	}
}

func (f *reportFixture) addGradedStudent(t *testing.T, id string, grades map[string]models.Grade) {
	t.Helper()
	require.NoError(t, f.students.Save(models.NewStudent(id, "REG"+id, models.Name{First: "Test", Last: id}, id+"@campus.edu")))
	for code, grade := range grades {
		f.students.Enroll(id, code)
		require.True(t, f.students.AssignGrade(id, code, grade))
	}
}

func TestReportServiceTopStudents(t *testing.T) {
	f := newReportFixture(t)
	f.addGradedStudent(t, "S1", map[string]models.Grade{"CS101": models.GradeB})
	f.addGradedStudent(t, "S2", map[string]models.Grade{"CS101": models.GradeS})

	rows := f.svc.TopStudents(context.Background(), 2)
	require.Len(t, rows, 2)
	assert.Equal(t, dto.TopStudentRow{Rank: 1, ID: "S2", RegNo: "REGS2", FullName: "Test S2", GPA: 10}, rows[0])
	assert.Equal(t, 2, rows[1].Rank)
	assert.Equal(t, "S1", rows[1].ID)
}

func TestReportServiceCoursesByDepartment(t *testing.T) {
	f := newReportFixture(t)
	for _, cfg := range []models.CourseConfig{
		{Code: "EE101", Title: "Circuits", Department: "Electrical Engineering"},
		{Code: "CS101", Title: "Intro", Department: "Computer Science"},
		{Code: "CS201", Title: "Data Structures", Department: "Computer Science"},
	} {
		course, err := models.NewCourse(cfg)
		require.NoError(t, err)
		require.NoError(t, f.courses.Save(course))
	}

	rows := f.svc.CoursesByDepartment(context.Background())
	require.Len(t, rows, 2)
	assert.Equal(t, dto.DepartmentCount{Department: "Computer Science", Count: 2}, rows[0])
	assert.Equal(t, dto.DepartmentCount{Department: "Electrical Engineering", Count: 1}, rows[1])
}

func TestReportServiceGPADistribution(t *testing.T) {
	f := newReportFixture(t)
	f.addGradedStudent(t, "S1", map[string]models.Grade{"CS101": models.GradeS}) // 10, excellent
	f.addGradedStudent(t, "S2", map[string]models.Grade{"CS101": models.GradeA}) // 9, excellent
	f.addGradedStudent(t, "S3", map[string]models.Grade{"CS101": models.GradeB}) // 8, good
	f.addGradedStudent(t, "S4", map[string]models.Grade{"CS101": models.GradeE}) // 5, average
	f.addGradedStudent(t, "S5", map[string]models.Grade{"CS101": models.GradeF}) // 0, poor
	f.addGradedStudent(t, "S6", nil)                                             // ungraded, poor

	dist := f.svc.GPADistribution(context.Background())
	assert.Equal(t, 2, dist.Excellent)
	assert.Equal(t, 1, dist.Good)
	assert.Equal(t, 1, dist.Average)
	assert.Equal(t, 2, dist.Poor)
}

func TestReportServiceTranscript(t *testing.T) {
	f := newReportFixture(t)
	course, err := models.NewCourse(models.CourseConfig{Code: "CS101", Title: "Intro to Programming", Credits: 3})
	require.NoError(t, err)
	require.NoError(t, f.courses.Save(course))
	f.addGradedStudent(t, "S1", map[string]models.Grade{
		"CS101": models.GradeA,
		"XX999": models.GradeC,
	})

	transcript, err := f.svc.Transcript(context.Background(), "S1")
	require.NoError(t, err)
	assert.Equal(t, "S1", transcript.StudentID)
	assert.InDelta(t, 8.0, transcript.GPA, 1e-9)
	require.Len(t, transcript.Lines, 2)

	assert.Equal(t, dto.TranscriptLine{
		CourseCode: "CS101", Title: "Intro to Programming", Credits: 3, Grade: "A", GradePoints: 9,
	}, transcript.Lines[0])

	// An orphaned grade keeps its line with the bare code.
	assert.Equal(t, dto.TranscriptLine{
		CourseCode: "XX999", Grade: "C", GradePoints: 7,
	}, transcript.Lines[1])
}

func TestReportServiceTranscriptMissingStudent(t *testing.T) {
	f := newReportFixture(t)

	_, err := f.svc.Transcript(context.Background(), "S404")
	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
}
