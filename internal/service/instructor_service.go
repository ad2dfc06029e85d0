package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/opencampus/ccrm-api/internal/models"
	appErrors "github.com/opencampus/ccrm-api/pkg/errors"
)

type instructorRepository interface {
	Save(instructor *models.Instructor) error
	FindByID(id string) (*models.Instructor, bool)
	FindAll() []*models.Instructor
	Delete(id string)
	FilterBy(field, value string) []*models.Instructor
	AssignCourse(instructorID, courseCode string)
	UnassignCourse(instructorID, courseCode string)
}

// CreateInstructorRequest holds payload for creating instructors.
type CreateInstructorRequest struct {
	ID         string `json:"id" validate:"required"`
	FirstName  string `json:"first_name" validate:"required"`
	LastName   string `json:"last_name" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Department string `json:"department" validate:"required"`
}

// InstructorService owns the instructor store and its use-cases.
type InstructorService struct {
	repo      instructorRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewInstructorService constructs the instructor service.
func NewInstructorService(repo instructorRepository, validate *validator.Validate, logger *zap.Logger) *InstructorService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InstructorService{repo: repo, validator: validate, logger: logger}
}

// Create registers an instructor. An existing ID is overwritten in place.
func (s *InstructorService) Create(ctx context.Context, req CreateInstructorRequest) (*models.Instructor, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid instructor payload")
	}
	instructor := models.NewInstructor(req.ID, models.Name{First: req.FirstName, Last: req.LastName}, req.Email, req.Department)
	if err := s.repo.Save(instructor); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid instructor record")
	}
	return instructor, nil
}

// Get returns the instructor or a not-found error.
func (s *InstructorService) Get(ctx context.Context, id string) (*models.Instructor, error) {
	instructor, ok := s.repo.FindByID(id)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "instructor not found")
	}
	return instructor, nil
}

// List returns all instructors, or the subset matching a field filter.
func (s *InstructorService) List(ctx context.Context, field, value string) []*models.Instructor {
	if field != "" {
		return s.repo.FilterBy(field, value)
	}
	return s.repo.FindAll()
}

// Delete deactivates the instructor. A missing ID is a silent no-op.
func (s *InstructorService) Delete(ctx context.Context, id string) {
	s.repo.Delete(id)
}

// AssignCourse adds a course code to the instructor's teaching load. The
// course code is a key-only reference and is not validated for existence.
func (s *InstructorService) AssignCourse(ctx context.Context, instructorID, courseCode string) error {
	if _, ok := s.repo.FindByID(instructorID); !ok {
		return appErrors.Clone(appErrors.ErrNotFound, "instructor not found")
	}
	s.repo.AssignCourse(instructorID, courseCode)
	return nil
}

// UnassignCourse removes a course code from the instructor's teaching load.
func (s *InstructorService) UnassignCourse(ctx context.Context, instructorID, courseCode string) error {
	if _, ok := s.repo.FindByID(instructorID); !ok {
		return appErrors.Clone(appErrors.ErrNotFound, "instructor not found")
	}
	s.repo.UnassignCourse(instructorID, courseCode)
	return nil
}
