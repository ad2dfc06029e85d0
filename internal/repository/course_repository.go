package repository

import (
	"strings"

	"github.com/opencampus/ccrm-api/internal/models"
)

// CourseRepository owns the in-memory course store.
type CourseRepository struct {
	store *Store[models.Course]
}

// NewCourseRepository constructs a CourseRepository.
func NewCourseRepository() *CourseRepository {
	return &CourseRepository{
		store: NewStore(
			func(c *models.Course) string { return c.Code },
			func(c *models.Course) *models.Course { return c.Clone() },
			func(c *models.Course) { c.Active = false },
		),
	}
}

// Save upserts the course keyed by code.
func (r *CourseRepository) Save(course *models.Course) error {
	return r.store.Save(course)
}

// FindByID returns the course or false when absent.
func (r *CourseRepository) FindByID(code string) (*models.Course, bool) {
	return r.store.FindByID(code)
}

// FindAll returns every course, inactive ones included.
func (r *CourseRepository) FindAll() []*models.Course {
	return r.store.FindAll()
}

// Delete deactivates the course. Missing code is a no-op.
func (r *CourseRepository) Delete(code string) {
	r.store.Delete(code)
}

// Search filters courses by an arbitrary predicate.
func (r *CourseRepository) Search(pred func(*models.Course) bool) []*models.Course {
	return r.store.Search(pred)
}

// FilterBy matches a closed set of field names onto predicates. Unknown
// fields yield an empty result.
func (r *CourseRepository) FilterBy(field, value string) []*models.Course {
	switch strings.ToLower(field) {
	case "department":
		needle := strings.ToLower(value)
		return r.store.Search(func(c *models.Course) bool {
			return strings.Contains(strings.ToLower(c.Department), needle)
		})
	case "instructor":
		return r.store.Search(func(c *models.Course) bool {
			return c.InstructorID == value
		})
	case "semester":
		return r.store.Search(func(c *models.Course) bool {
			return strings.EqualFold(string(c.Semester), value)
		})
	default:
		return nil
	}
}

// Update applies fn to the stored course and reports existence.
func (r *CourseRepository) Update(code string, fn func(*models.Course)) bool {
	return r.store.Update(code, fn)
}

// CountByDepartment groups courses, active and inactive, by department.
func (r *CourseRepository) CountByDepartment() map[string]int {
	counts := make(map[string]int)
	for _, course := range r.store.FindAll() {
		counts[course.Department]++
	}
	return counts
}
