package repository

import (
	"strings"

	"github.com/opencampus/ccrm-api/internal/models"
)

// StudentRepository owns the in-memory student store.
type StudentRepository struct {
	store *Store[models.Student]
}

// NewStudentRepository constructs a StudentRepository.
func NewStudentRepository() *StudentRepository {
	return &StudentRepository{
		store: NewStore(
			func(s *models.Student) string { return s.ID },
			func(s *models.Student) *models.Student { return s.Clone() },
			func(s *models.Student) { s.Active = false },
		),
	}
}

// Save upserts the student keyed by ID.
func (r *StudentRepository) Save(student *models.Student) error {
	return r.store.Save(student)
}

// FindByID returns the student or false when absent.
func (r *StudentRepository) FindByID(id string) (*models.Student, bool) {
	return r.store.FindByID(id)
}

// FindAll returns every student, inactive ones included.
func (r *StudentRepository) FindAll() []*models.Student {
	return r.store.FindAll()
}

// Delete deactivates the student. Missing ID is a no-op.
func (r *StudentRepository) Delete(id string) {
	r.store.Delete(id)
}

// Search filters students by an arbitrary predicate.
func (r *StudentRepository) Search(pred func(*models.Student) bool) []*models.Student {
	return r.store.Search(pred)
}

// FilterBy matches a closed set of field names onto predicates. Unknown
// fields yield an empty result.
func (r *StudentRepository) FilterBy(field, value string) []*models.Student {
	needle := strings.ToLower(value)
	switch strings.ToLower(field) {
	case "name":
		return r.store.Search(func(s *models.Student) bool {
			return strings.Contains(strings.ToLower(s.Name.FullName()), needle)
		})
	case "email":
		return r.store.Search(func(s *models.Student) bool {
			return strings.Contains(strings.ToLower(s.Email), needle)
		})
	default:
		return nil
	}
}

// Enroll adds the course to the student's enrolled set. Missing student is a
// no-op, re-enrolling is idempotent.
func (r *StudentRepository) Enroll(studentID, courseCode string) {
	r.store.Update(studentID, func(s *models.Student) {
		s.Enroll(courseCode)
	})
}

// Unenroll removes the course and its grade. Missing student or enrollment
// is a no-op.
func (r *StudentRepository) Unenroll(studentID, courseCode string) {
	r.store.Update(studentID, func(s *models.Student) {
		s.Unenroll(courseCode)
	})
}

// AssignGrade records a grade for an enrolled course and reports whether the
// student exists. Grading an unenrolled course leaves the student untouched.
func (r *StudentRepository) AssignGrade(studentID, courseCode string, grade models.Grade) bool {
	return r.store.Update(studentID, func(s *models.Student) {
		s.AssignGrade(courseCode, grade)
	})
}

// UpdateEmail rewrites the student's email and reports existence.
func (r *StudentRepository) UpdateEmail(studentID, email string) bool {
	return r.store.Update(studentID, func(s *models.Student) {
		s.Email = email
	})
}
