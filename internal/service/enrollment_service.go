package service

import (
	"context"
	"sort"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/opencampus/ccrm-api/internal/models"
	appErrors "github.com/opencampus/ccrm-api/pkg/errors"
)

// creditsPerEnrolledCourse is the flat per-course credit weight used when
// summing a student's current load. Already-enrolled courses count 3 credits
// each regardless of their real credit value; only the incoming course uses
// its actual credits.
const creditsPerEnrolledCourse = 3

type enrollmentStudentStore interface {
	FindByID(id string) (*models.Student, bool)
	Enroll(studentID, courseCode string)
	Unenroll(studentID, courseCode string)
}

type enrollmentCourseStore interface {
	FindByID(code string) (*models.Course, bool)
}

// EnrollRequest registers a student in a course.
type EnrollRequest struct {
	StudentID  string `json:"student_id" validate:"required"`
	CourseCode string `json:"course_code" validate:"required"`
}

// EnrollmentService runs the caller-facing enrollment flow: existence checks
// and the credit-limit rule sit here, above the permissive store mutators.
type EnrollmentService struct {
	students   enrollmentStudentStore
	courses    enrollmentCourseStore
	maxCredits int
	validator  *validator.Validate
	logger     *zap.Logger
}

// NewEnrollmentService constructs the enrollment service.
func NewEnrollmentService(students enrollmentStudentStore, courses enrollmentCourseStore, maxCredits int, validate *validator.Validate, logger *zap.Logger) *EnrollmentService {
	if maxCredits <= 0 {
		maxCredits = 20
	}
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EnrollmentService{students: students, courses: courses, maxCredits: maxCredits, validator: validate, logger: logger}
}

// Enroll validates that both student and course exist, applies the
// credit-limit rule and then records the enrollment. A rejected enrollment
// leaves the student's enrolled set unchanged.
func (s *EnrollmentService) Enroll(ctx context.Context, req EnrollRequest) (*models.Enrollment, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid enrollment payload")
	}
	student, ok := s.students.FindByID(req.StudentID)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
	}
	course, ok := s.courses.FindByID(req.CourseCode)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "course not found")
	}

	attempted := len(student.EnrolledCourses)*creditsPerEnrolledCourse + course.Credits
	if attempted > s.maxCredits {
		s.logger.Info("enrollment rejected",
			zap.String("student_id", req.StudentID),
			zap.String("course_code", req.CourseCode),
			zap.Int("attempted_credits", attempted),
			zap.Int("max_credits", s.maxCredits),
		)
		return nil, &appErrors.CreditLimitError{Attempted: attempted, Max: s.maxCredits}
	}

	s.students.Enroll(req.StudentID, req.CourseCode)
	return &models.Enrollment{
		StudentID:  req.StudentID,
		CourseCode: req.CourseCode,
		EnrolledAt: student.EnrolledAt,
		Active:     true,
	}, nil
}

// Unenroll removes the enrollment and any grade for it. Missing student or
// enrollment is a silent no-op.
func (s *EnrollmentService) Unenroll(ctx context.Context, studentID, courseCode string) {
	s.students.Unenroll(studentID, courseCode)
}

// ListForStudent assembles enrollment views from the student's live state,
// sorted by course code.
func (s *EnrollmentService) ListForStudent(ctx context.Context, studentID string) ([]models.Enrollment, error) {
	student, ok := s.students.FindByID(studentID)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
	}
	enrollments := make([]models.Enrollment, 0, len(student.EnrolledCourses))
	for code := range student.EnrolledCourses {
		e := models.Enrollment{
			StudentID:  studentID,
			CourseCode: code,
			EnrolledAt: student.EnrolledAt,
			Active:     student.Active,
		}
		if grade, graded := student.CourseGrades[code]; graded {
			g := grade
			e.Grade = &g
		}
		enrollments = append(enrollments, e)
	}
	sort.Slice(enrollments, func(i, j int) bool {
		return enrollments[i].CourseCode < enrollments[j].CourseCode
	})
	return enrollments, nil
}
