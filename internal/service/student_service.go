package service

import (
	"context"
	"sort"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/opencampus/ccrm-api/internal/models"
	appErrors "github.com/opencampus/ccrm-api/pkg/errors"
)

type studentRepository interface {
	Save(student *models.Student) error
	FindByID(id string) (*models.Student, bool)
	FindAll() []*models.Student
	Delete(id string)
	Search(pred func(*models.Student) bool) []*models.Student
	FilterBy(field, value string) []*models.Student
	Enroll(studentID, courseCode string)
	Unenroll(studentID, courseCode string)
	AssignGrade(studentID, courseCode string, grade models.Grade) bool
	UpdateEmail(studentID, email string) bool
}

// CreateStudentRequest holds payload for creating students. Saving under an
// existing ID overwrites the record (keyed upsert).
type CreateStudentRequest struct {
	ID        string `json:"id" validate:"required"`
	RegNo     string `json:"reg_no" validate:"required"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
}

// UpdateStudentRequest holds payload for updating a student's contact email.
type UpdateStudentRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// AssignGradeRequest grades an enrolled course from a raw mark.
type AssignGradeRequest struct {
	StudentID  string  `json:"student_id" validate:"required"`
	CourseCode string  `json:"course_code" validate:"required"`
	Marks      float64 `json:"marks"`
}

// StudentService owns the student store and its use-cases.
type StudentService struct {
	repo      studentRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewStudentService constructs the student service.
func NewStudentService(repo studentRepository, validate *validator.Validate, logger *zap.Logger) *StudentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StudentService{repo: repo, validator: validate, logger: logger}
}

// Create registers a student. An existing ID is overwritten in place.
func (s *StudentService) Create(ctx context.Context, req CreateStudentRequest) (*models.Student, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid student payload")
	}
	student := models.NewStudent(req.ID, req.RegNo, models.Name{First: req.FirstName, Last: req.LastName}, req.Email)
	if err := s.repo.Save(student); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid student record")
	}
	return student, nil
}

// Get returns the student or a not-found error.
func (s *StudentService) Get(ctx context.Context, id string) (*models.Student, error) {
	student, ok := s.repo.FindByID(id)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
	}
	return student, nil
}

// List returns all students, or the subset matching a field filter when one
// is supplied. Unknown filter fields yield an empty result.
func (s *StudentService) List(ctx context.Context, field, value string) []*models.Student {
	if field != "" {
		return s.repo.FilterBy(field, value)
	}
	return s.repo.FindAll()
}

// Search filters students by a caller-supplied predicate.
func (s *StudentService) Search(ctx context.Context, pred func(*models.Student) bool) []*models.Student {
	return s.repo.Search(pred)
}

// Update rewrites the student's email.
func (s *StudentService) Update(ctx context.Context, id string, req UpdateStudentRequest) (*models.Student, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid student payload")
	}
	if !s.repo.UpdateEmail(id, req.Email) {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
	}
	return s.Get(ctx, id)
}

// Delete deactivates the student. A missing ID is a silent no-op.
func (s *StudentService) Delete(ctx context.Context, id string) {
	s.repo.Delete(id)
}

// Enroll adds the course to the student's enrolled set. A missing student is
// a no-op and re-enrolling is idempotent. The credit-limit rule lives in
// EnrollmentService, which calls this after its checks pass.
func (s *StudentService) Enroll(ctx context.Context, studentID, courseCode string) {
	s.repo.Enroll(studentID, courseCode)
}

// Unenroll removes the course and any grade recorded for it. Missing student
// or enrollment is a no-op.
func (s *StudentService) Unenroll(ctx context.Context, studentID, courseCode string) {
	s.repo.Unenroll(studentID, courseCode)
}

// AssignGrade converts marks into a letter grade and records it. Marks
// outside [0,100] fail validation. Grading a course the student is not
// enrolled in is a silent no-op.
func (s *StudentService) AssignGrade(ctx context.Context, req AssignGradeRequest) (models.Grade, error) {
	if err := s.validator.Struct(req); err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid grade payload")
	}
	grade, err := models.GradeFromMarks(req.Marks)
	if err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, err.Error())
	}
	if !s.repo.AssignGrade(req.StudentID, req.CourseCode, grade) {
		return "", appErrors.Clone(appErrors.ErrNotFound, "student not found")
	}
	return grade, nil
}

// TopStudents returns up to n students by descending GPA, ties broken by
// student ID for determinism. n <= 0 yields an empty list.
func (s *StudentService) TopStudents(ctx context.Context, n int) []*models.Student {
	if n <= 0 {
		return []*models.Student{}
	}
	students := s.repo.FindAll()
	sort.SliceStable(students, func(i, j int) bool {
		gi, gj := students[i].GPA(), students[j].GPA()
		if gi != gj {
			return gi > gj
		}
		return students[i].ID < students[j].ID
	})
	if n < len(students) {
		students = students[:n]
	}
	return students
}
