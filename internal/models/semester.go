package models

import (
	"fmt"
	"strings"
)

// Semester is the academic term a course runs in.
type Semester string

// Known semesters.
const (
	SemesterSpring Semester = "SPRING"
	SemesterSummer Semester = "SUMMER"
	SemesterFall   Semester = "FALL"
)

// DisplayName returns the human readable semester label.
func (s Semester) DisplayName() string {
	switch s {
	case SemesterSpring:
		return "Spring"
	case SemesterSummer:
		return "Summer"
	case SemesterFall:
		return "Fall"
	default:
		return string(s)
	}
}

// ParseSemester resolves a case-insensitive semester name.
func ParseSemester(raw string) (Semester, error) {
	switch Semester(strings.ToUpper(strings.TrimSpace(raw))) {
	case SemesterSpring:
		return SemesterSpring, nil
	case SemesterSummer:
		return SemesterSummer, nil
	case SemesterFall:
		return SemesterFall, nil
	default:
		return "", fmt.Errorf("unknown semester %q", raw)
	}
}
