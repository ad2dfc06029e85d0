package dto

import (
	"sort"
	"time"

	"github.com/opencampus/ccrm-api/internal/models"
)

// StudentResponse is the API shape for a student, with enrollment state
// flattened into sorted slices.
type StudentResponse struct {
	ID              string                  `json:"id"`
	RegNo           string                  `json:"reg_no"`
	FullName        string                  `json:"full_name"`
	Email           string                  `json:"email"`
	Active          bool                    `json:"active"`
	EnrolledCourses []string                `json:"enrolled_courses"`
	Grades          map[string]models.Grade `json:"grades"`
	GPA             float64                 `json:"gpa"`
	EnrolledAt      time.Time               `json:"enrolled_at"`
	CreatedAt       time.Time               `json:"created_at"`
}

// NewStudentResponse flattens a student entity.
func NewStudentResponse(s *models.Student) StudentResponse {
	grades := make(map[string]models.Grade, len(s.CourseGrades))
	for code, grade := range s.CourseGrades {
		grades[code] = grade
	}
	return StudentResponse{
		ID:              s.ID,
		RegNo:           s.RegNo,
		FullName:        s.Name.FullName(),
		Email:           s.Email,
		Active:          s.Active,
		EnrolledCourses: s.CourseCodes(),
		Grades:          grades,
		GPA:             s.GPA(),
		EnrolledAt:      s.EnrolledAt,
		CreatedAt:       s.CreatedAt,
	}
}

// NewStudentResponses flattens a student snapshot.
func NewStudentResponses(students []*models.Student) []StudentResponse {
	out := make([]StudentResponse, 0, len(students))
	for _, s := range students {
		out = append(out, NewStudentResponse(s))
	}
	return out
}

// InstructorResponse is the API shape for an instructor.
type InstructorResponse struct {
	ID              string    `json:"id"`
	FullName        string    `json:"full_name"`
	Email           string    `json:"email"`
	Department      string    `json:"department"`
	Active          bool      `json:"active"`
	AssignedCourses []string  `json:"assigned_courses"`
	CreatedAt       time.Time `json:"created_at"`
}

// NewInstructorResponse flattens an instructor entity.
func NewInstructorResponse(i *models.Instructor) InstructorResponse {
	codes := make([]string, 0, len(i.AssignedCourses))
	for code := range i.AssignedCourses {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return InstructorResponse{
		ID:              i.ID,
		FullName:        i.Name.FullName(),
		Email:           i.Email,
		Department:      i.Department,
		Active:          i.Active,
		AssignedCourses: codes,
		CreatedAt:       i.CreatedAt,
	}
}

// NewInstructorResponses flattens an instructor snapshot.
func NewInstructorResponses(instructors []*models.Instructor) []InstructorResponse {
	out := make([]InstructorResponse, 0, len(instructors))
	for _, i := range instructors {
		out = append(out, NewInstructorResponse(i))
	}
	return out
}
