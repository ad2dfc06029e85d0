package models

import "fmt"

// Grade is a letter grade on a ten point scale.
type Grade string

// Letter grades from best to worst.
const (
	GradeS Grade = "S"
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
	GradeE Grade = "E"
	GradeF Grade = "F"
)

// Points returns the grade point value for the letter grade.
func (g Grade) Points() float64 {
	switch g {
	case GradeS:
		return 10
	case GradeA:
		return 9
	case GradeB:
		return 8
	case GradeC:
		return 7
	case GradeD:
		return 6
	case GradeE:
		return 5
	default:
		return 0
	}
}

// gradeThresholds maps inclusive lower mark bounds to letter grades, checked
// from highest to lowest. The table is contiguous over [0,100].
var gradeThresholds = []struct {
	min   float64
	grade Grade
}{
	{90, GradeS},
	{80, GradeA},
	{70, GradeB},
	{60, GradeC},
	{50, GradeD},
	{40, GradeE},
	{0, GradeF},
}

// GradeFromMarks converts a raw mark into a letter grade. Marks outside
// [0,100] are an error rather than being clamped.
func GradeFromMarks(marks float64) (Grade, error) {
	if marks < 0 || marks > 100 {
		return "", fmt.Errorf("marks %v outside the range [0,100]", marks)
	}
	for _, t := range gradeThresholds {
		if marks >= t.min {
			return t.grade, nil
		}
	}
	return GradeF, nil
}
