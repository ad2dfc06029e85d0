package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/opencampus/ccrm-api/internal/models"
	appErrors "github.com/opencampus/ccrm-api/pkg/errors"
)

type courseRepository interface {
	Save(course *models.Course) error
	FindByID(code string) (*models.Course, bool)
	FindAll() []*models.Course
	Delete(code string)
	Search(pred func(*models.Course) bool) []*models.Course
	FilterBy(field, value string) []*models.Course
	Update(code string, fn func(*models.Course)) bool
	CountByDepartment() map[string]int
}

// CreateCourseRequest holds payload for creating courses. Code and title are
// required; other fields keep type defaults when unset.
type CreateCourseRequest struct {
	Code         string `json:"code" validate:"required"`
	Title        string `json:"title" validate:"required"`
	Credits      int    `json:"credits" validate:"gte=0"`
	Department   string `json:"department"`
	Semester     string `json:"semester"`
	InstructorID string `json:"instructor_id"`
}

// UpdateCourseRequest patches mutable course fields; nil fields are left
// untouched.
type UpdateCourseRequest struct {
	Title        *string `json:"title"`
	Credits      *int    `json:"credits"`
	Department   *string `json:"department"`
	Semester     *string `json:"semester"`
	InstructorID *string `json:"instructor_id"`
	Active       *bool   `json:"active"`
}

// CourseService owns the course store and its use-cases.
type CourseService struct {
	repo      courseRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewCourseService constructs the course service.
func NewCourseService(repo courseRepository, validate *validator.Validate, logger *zap.Logger) *CourseService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CourseService{repo: repo, validator: validate, logger: logger}
}

// Create registers a course. An existing code is overwritten in place.
func (s *CourseService) Create(ctx context.Context, req CreateCourseRequest) (*models.Course, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid course payload")
	}
	var semester models.Semester
	if req.Semester != "" {
		parsed, err := models.ParseSemester(req.Semester)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, err.Error())
		}
		semester = parsed
	}
	course, err := models.NewCourse(models.CourseConfig{
		Code:         req.Code,
		Title:        req.Title,
		Credits:      req.Credits,
		Department:   req.Department,
		Semester:     semester,
		InstructorID: req.InstructorID,
	})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, err.Error())
	}
	if err := s.repo.Save(course); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid course record")
	}
	return course, nil
}

// Get returns the course or a not-found error.
func (s *CourseService) Get(ctx context.Context, code string) (*models.Course, error) {
	course, ok := s.repo.FindByID(code)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "course not found")
	}
	return course, nil
}

// List returns all courses, or the subset matching a field filter when one
// is supplied. Unknown filter fields yield an empty result.
func (s *CourseService) List(ctx context.Context, field, value string) []*models.Course {
	if field != "" {
		return s.repo.FilterBy(field, value)
	}
	return s.repo.FindAll()
}

// Update patches the mutable fields of an existing course.
func (s *CourseService) Update(ctx context.Context, code string, req UpdateCourseRequest) (*models.Course, error) {
	var semester *models.Semester
	if req.Semester != nil {
		parsed, err := models.ParseSemester(*req.Semester)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, err.Error())
		}
		semester = &parsed
	}
	ok := s.repo.Update(code, func(c *models.Course) {
		if req.Title != nil {
			c.Title = *req.Title
		}
		if req.Credits != nil {
			c.Credits = *req.Credits
		}
		if req.Department != nil {
			c.Department = *req.Department
		}
		if semester != nil {
			c.Semester = *semester
		}
		if req.InstructorID != nil {
			c.InstructorID = *req.InstructorID
		}
		if req.Active != nil {
			c.Active = *req.Active
		}
	})
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "course not found")
	}
	return s.Get(ctx, code)
}

// Delete deactivates the course. A missing code is a silent no-op. Students
// enrolled in the course keep their enrollment and grades.
func (s *CourseService) Delete(ctx context.Context, code string) {
	s.repo.Delete(code)
}

// ByDepartment counts courses, active and inactive, per department.
func (s *CourseService) ByDepartment(ctx context.Context) map[string]int {
	return s.repo.CountByDepartment()
}
