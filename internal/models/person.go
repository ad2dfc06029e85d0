package models

import (
	"fmt"
	"time"
)

// Name is an immutable first/last name pair.
type Name struct {
	First string `json:"first"`
	Last  string `json:"last"`
}

// FullName joins first and last name with a single space.
func (n Name) FullName() string {
	return n.First + " " + n.Last
}

// Role identifies the person variant.
type Role string

// Supported person roles.
const (
	RoleStudent    Role = "STUDENT"
	RoleInstructor Role = "INSTRUCTOR"
)

// Person holds the fields shared by every person variant.
type Person struct {
	ID        string    `json:"id"`
	Name      Name      `json:"name"`
	Email     string    `json:"email"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

// Instructor teaches courses for a department.
type Instructor struct {
	Person
	Department      string              `json:"department"`
	AssignedCourses map[string]struct{} `json:"-"`
}

// NewInstructor constructs an active instructor.
func NewInstructor(id string, name Name, email, department string) *Instructor {
	return &Instructor{
		Person: Person{
			ID:        id,
			Name:      name,
			Email:     email,
			Active:    true,
			CreatedAt: time.Now().UTC(),
		},
		Department:      department,
		AssignedCourses: make(map[string]struct{}),
	}
}

// Role returns the instructor role label.
func (i *Instructor) Role() Role {
	return RoleInstructor
}

// AssignCourse adds a course code to the instructor's teaching load.
// Assigning the same code twice is a no-op.
func (i *Instructor) AssignCourse(code string) {
	if i.AssignedCourses == nil {
		i.AssignedCourses = make(map[string]struct{})
	}
	i.AssignedCourses[code] = struct{}{}
}

// UnassignCourse removes a course code from the teaching load.
func (i *Instructor) UnassignCourse(code string) {
	delete(i.AssignedCourses, code)
}

// Profile renders the instructor profile as display lines.
func (i *Instructor) Profile() string {
	return fmt.Sprintf("Instructor %s\nName: %s\nEmail: %s\nDepartment: %s\nAssigned Courses: %d",
		i.ID, i.Name.FullName(), i.Email, i.Department, len(i.AssignedCourses))
}

// Clone returns a deep copy of the instructor.
func (i *Instructor) Clone() *Instructor {
	clone := *i
	clone.AssignedCourses = make(map[string]struct{}, len(i.AssignedCourses))
	for code := range i.AssignedCourses {
		clone.AssignedCourses[code] = struct{}{}
	}
	return &clone
}
