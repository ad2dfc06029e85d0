package service

import (
	"context"
	"sort"

	"go.uber.org/zap"

	"github.com/opencampus/ccrm-api/internal/dto"
	"github.com/opencampus/ccrm-api/internal/models"
	appErrors "github.com/opencampus/ccrm-api/pkg/errors"
)

type studentRanker interface {
	TopStudents(ctx context.Context, n int) []*models.Student
}

type reportStudentStore interface {
	FindByID(id string) (*models.Student, bool)
	FindAll() []*models.Student
}

type reportCourseStore interface {
	FindByID(code string) (*models.Course, bool)
	CountByDepartment() map[string]int
}

// ReportService derives read-only reports from store snapshots.
type ReportService struct {
	students reportStudentStore
	courses  reportCourseStore
	ranker   studentRanker
	logger   *zap.Logger
}

// NewReportService constructs the report service.
func NewReportService(students reportStudentStore, courses reportCourseStore, ranker studentRanker, logger *zap.Logger) *ReportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportService{students: students, courses: courses, ranker: ranker, logger: logger}
}

// TopStudents ranks up to n students by descending GPA.
func (s *ReportService) TopStudents(ctx context.Context, n int) []dto.TopStudentRow {
	students := s.ranker.TopStudents(ctx, n)
	rows := make([]dto.TopStudentRow, 0, len(students))
	for i, student := range students {
		rows = append(rows, dto.TopStudentRow{
			Rank:     i + 1,
			ID:       student.ID,
			RegNo:    student.RegNo,
			FullName: student.Name.FullName(),
			GPA:      student.GPA(),
		})
	}
	return rows
}

// CoursesByDepartment counts courses per department, sorted by department
// name for stable output.
func (s *ReportService) CoursesByDepartment(ctx context.Context) []dto.DepartmentCount {
	counts := s.courses.CountByDepartment()
	rows := make([]dto.DepartmentCount, 0, len(counts))
	for department, count := range counts {
		rows = append(rows, dto.DepartmentCount{Department: department, Count: count})
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Department < rows[j].Department
	})
	return rows
}

// GPADistribution buckets all students into the reporting GPA bands.
func (s *ReportService) GPADistribution(ctx context.Context) dto.GPADistribution {
	var dist dto.GPADistribution
	for _, student := range s.students.FindAll() {
		switch gpa := student.GPA(); {
		case gpa >= 9.0:
			dist.Excellent++
		case gpa >= 7.0:
			dist.Good++
		case gpa >= 5.0:
			dist.Average++
		default:
			dist.Poor++
		}
	}
	return dist
}

// Transcript assembles the official transcript for a student. Grades whose
// course record no longer resolves keep their line with the bare code.
func (s *ReportService) Transcript(ctx context.Context, studentID string) (*dto.Transcript, error) {
	student, ok := s.students.FindByID(studentID)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
	}

	codes := make([]string, 0, len(student.CourseGrades))
	for code := range student.CourseGrades {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	lines := make([]dto.TranscriptLine, 0, len(codes))
	for _, code := range codes {
		grade := student.CourseGrades[code]
		line := dto.TranscriptLine{
			CourseCode:  code,
			Grade:       string(grade),
			GradePoints: grade.Points(),
		}
		if course, found := s.courses.FindByID(code); found {
			line.Title = course.Title
			line.Credits = course.Credits
		}
		lines = append(lines, line)
	}

	return &dto.Transcript{
		StudentID: student.ID,
		RegNo:     student.RegNo,
		FullName:  student.Name.FullName(),
		Email:     student.Email,
		Lines:     lines,
		GPA:       student.GPA(),
	}, nil
}
