package repository

import (
	"strings"

	"github.com/opencampus/ccrm-api/internal/models"
)

// InstructorRepository owns the in-memory instructor store.
type InstructorRepository struct {
	store *Store[models.Instructor]
}

// NewInstructorRepository constructs an InstructorRepository.
func NewInstructorRepository() *InstructorRepository {
	return &InstructorRepository{
		store: NewStore(
			func(i *models.Instructor) string { return i.ID },
			func(i *models.Instructor) *models.Instructor { return i.Clone() },
			func(i *models.Instructor) { i.Active = false },
		),
	}
}

// Save upserts the instructor keyed by ID.
func (r *InstructorRepository) Save(instructor *models.Instructor) error {
	return r.store.Save(instructor)
}

// FindByID returns the instructor or false when absent.
func (r *InstructorRepository) FindByID(id string) (*models.Instructor, bool) {
	return r.store.FindByID(id)
}

// FindAll returns every instructor, inactive ones included.
func (r *InstructorRepository) FindAll() []*models.Instructor {
	return r.store.FindAll()
}

// Delete deactivates the instructor. Missing ID is a no-op.
func (r *InstructorRepository) Delete(id string) {
	r.store.Delete(id)
}

// Search filters instructors by an arbitrary predicate.
func (r *InstructorRepository) Search(pred func(*models.Instructor) bool) []*models.Instructor {
	return r.store.Search(pred)
}

// FilterBy supports department substring filtering. Unknown fields yield an
// empty result.
func (r *InstructorRepository) FilterBy(field, value string) []*models.Instructor {
	switch strings.ToLower(field) {
	case "department":
		needle := strings.ToLower(value)
		return r.store.Search(func(i *models.Instructor) bool {
			return strings.Contains(strings.ToLower(i.Department), needle)
		})
	default:
		return nil
	}
}

// AssignCourse adds a course code to the instructor's load. Missing ID is a
// no-op.
func (r *InstructorRepository) AssignCourse(instructorID, courseCode string) {
	r.store.Update(instructorID, func(i *models.Instructor) {
		i.AssignCourse(courseCode)
	})
}

// UnassignCourse removes a course code from the instructor's load.
func (r *InstructorRepository) UnassignCourse(instructorID, courseCode string) {
	r.store.Update(instructorID, func(i *models.Instructor) {
		i.UnassignCourse(courseCode)
	})
}
