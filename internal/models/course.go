package models

import (
	"fmt"
	"time"
)

// Course is a unit of teaching keyed by its caller-assigned code. Title,
// credits, instructor, semester, department and the active flag stay mutable
// after construction.
type Course struct {
	Code         string    `json:"code"`
	Title        string    `json:"title"`
	Credits      int       `json:"credits"`
	InstructorID string    `json:"instructor_id"`
	Semester     Semester  `json:"semester"`
	Department   string    `json:"department"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
}

// CourseConfig collects construction inputs for a course. Code and Title are
// required; every other field keeps its zero value when unset.
type CourseConfig struct {
	Code         string
	Title        string
	Credits      int
	InstructorID string
	Semester     Semester
	Department   string
}

// NewCourse builds an active course from the config.
func NewCourse(cfg CourseConfig) (*Course, error) {
	if cfg.Code == "" {
		return nil, fmt.Errorf("course code is required")
	}
	if cfg.Title == "" {
		return nil, fmt.Errorf("course title is required")
	}
	return &Course{
		Code:         cfg.Code,
		Title:        cfg.Title,
		Credits:      cfg.Credits,
		InstructorID: cfg.InstructorID,
		Semester:     cfg.Semester,
		Department:   cfg.Department,
		Active:       true,
		CreatedAt:    time.Now().UTC(),
	}, nil
}

// Clone returns a copy of the course.
func (c *Course) Clone() *Course {
	clone := *c
	return &clone
}

// String renders the course summary line.
func (c *Course) String() string {
	return fmt.Sprintf("Course[%s]: %s (%d credits, %s, %s)",
		c.Code, c.Title, c.Credits, c.Semester.DisplayName(), c.Department)
}
