package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCourseDefaults(t *testing.T) {
	course, err := NewCourse(CourseConfig{Code: "CS101", Title: "Introduction to Programming"})
	require.NoError(t, err)
	assert.True(t, course.Active)
	assert.Equal(t, 0, course.Credits)
	assert.Empty(t, course.Department)
	assert.Empty(t, course.InstructorID)
	assert.False(t, course.CreatedAt.IsZero())
}

func TestNewCourseRequiresCodeAndTitle(t *testing.T) {
	_, err := NewCourse(CourseConfig{Title: "No Code"})
	require.Error(t, err)
	_, err = NewCourse(CourseConfig{Code: "CS101"})
	require.Error(t, err)
}

func TestParseSemester(t *testing.T) {
	for _, raw := range []string{"fall", "FALL", " Fall "} {
		sem, err := ParseSemester(raw)
		require.NoError(t, err)
		assert.Equal(t, SemesterFall, sem)
	}
	_, err := ParseSemester("winter")
	require.Error(t, err)
}

func TestSemesterDisplayName(t *testing.T) {
	assert.Equal(t, "Spring", SemesterSpring.DisplayName())
	assert.Equal(t, "Fall", SemesterFall.DisplayName())
}
