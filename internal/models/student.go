package models

import (
	"fmt"
	"sort"
	"time"
)

// Student is a learner identified by a caller-assigned ID and a registration
// number. Enrollment state lives on the student itself: the set of enrolled
// course codes plus a course code -> grade map.
type Student struct {
	Person
	RegNo           string              `json:"reg_no"`
	EnrolledCourses map[string]struct{} `json:"-"`
	CourseGrades    map[string]Grade    `json:"-"`
	EnrolledAt      time.Time           `json:"enrolled_at"`
}

// NewStudent constructs an active student with empty enrollment state.
func NewStudent(id, regNo string, name Name, email string) *Student {
	now := time.Now().UTC()
	return &Student{
		Person: Person{
			ID:        id,
			Name:      name,
			Email:     email,
			Active:    true,
			CreatedAt: now,
		},
		RegNo:           regNo,
		EnrolledCourses: make(map[string]struct{}),
		CourseGrades:    make(map[string]Grade),
		EnrolledAt:      now,
	}
}

// Role returns the student role label.
func (s *Student) Role() Role {
	return RoleStudent
}

// Enroll adds a course code to the enrolled set. Re-enrolling is a no-op.
func (s *Student) Enroll(code string) {
	if s.EnrolledCourses == nil {
		s.EnrolledCourses = make(map[string]struct{})
	}
	s.EnrolledCourses[code] = struct{}{}
}

// Unenroll removes the course and any grade recorded for it.
func (s *Student) Unenroll(code string) {
	delete(s.EnrolledCourses, code)
	delete(s.CourseGrades, code)
}

// AssignGrade records a grade for an enrolled course. Grading a course the
// student is not enrolled in is a silent no-op.
func (s *Student) AssignGrade(code string, grade Grade) {
	if _, ok := s.EnrolledCourses[code]; !ok {
		return
	}
	if s.CourseGrades == nil {
		s.CourseGrades = make(map[string]Grade)
	}
	s.CourseGrades[code] = grade
}

// GPA is the arithmetic mean of grade points over all graded courses.
// A student with no graded courses has a GPA of exactly 0.
func (s *Student) GPA() float64 {
	if len(s.CourseGrades) == 0 {
		return 0.0
	}
	var total float64
	for _, grade := range s.CourseGrades {
		total += grade.Points()
	}
	return total / float64(len(s.CourseGrades))
}

// CourseCodes returns the enrolled course codes in sorted order.
func (s *Student) CourseCodes() []string {
	codes := make([]string, 0, len(s.EnrolledCourses))
	for code := range s.EnrolledCourses {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Profile renders the student profile as display lines.
func (s *Student) Profile() string {
	return fmt.Sprintf("Student %s\nRegistration No: %s\nName: %s\nEmail: %s\nEnrolled Courses: %d\nGPA: %.2f",
		s.ID, s.RegNo, s.Name.FullName(), s.Email, len(s.EnrolledCourses), s.GPA())
}

// Clone returns a deep copy of the student.
func (s *Student) Clone() *Student {
	clone := *s
	clone.EnrolledCourses = make(map[string]struct{}, len(s.EnrolledCourses))
	for code := range s.EnrolledCourses {
		clone.EnrolledCourses[code] = struct{}{}
	}
	clone.CourseGrades = make(map[string]Grade, len(s.CourseGrades))
	for code, grade := range s.CourseGrades {
		clone.CourseGrades[code] = grade
	}
	return &clone
}
