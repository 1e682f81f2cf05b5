package agenda

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmilner/schoology-mcp/internal/domain"
)

func TestRenderAssignments(t *testing.T) {
	now := time.Date(2026, 1, 5, 11, 0, 0, 0, time.UTC)
	dueToday := time.Date(2026, 1, 5, 23, 59, 0, 0, time.UTC)
	dueNextWeek := time.Date(2026, 1, 12, 8, 0, 0, 0, time.UTC)

	output, err := RenderAssignments([]domain.Assignment{
		{Title: "Essay Draft", Due: &dueToday, Course: "English 101"},
		{Title: "Problem Set 4", Due: &dueNextWeek, Course: "Math 201"},
		{Title: "Reading", Due: nil, Course: "Philosophy 101"},
	}, RenderOptions{Now: now})

	require.NoError(t, err)
	assert.Contains(t, output, "Upcoming Assignments")
	assert.Contains(t, output, "assignments: 3")
	assert.Contains(t, output, "Essay Draft")
	assert.Contains(t, output, "(English 101)")
	assert.Contains(t, output, "due: Mon, Jan 5 at 11:59 pm (due in 13 hours)")
	assert.Contains(t, output, "due: Mon, Jan 12 at 8:00 am (due in 7 days)")
	assert.Contains(t, output, "due: not set")
}

func TestRenderAssignmentsMarksPastDue(t *testing.T) {
	now := time.Date(2026, 1, 5, 11, 0, 0, 0, time.UTC)
	due := time.Date(2026, 1, 4, 23, 59, 0, 0, time.UTC)

	output, err := RenderAssignments([]domain.Assignment{
		{Title: "Late Lab", Due: &due, Course: "Physics 202"},
	}, RenderOptions{Now: now})

	require.NoError(t, err)
	assert.Contains(t, output, "past due")
}

func TestRenderAssignmentsOmitsRelativeWithoutNow(t *testing.T) {
	due := time.Date(2026, 1, 5, 23, 59, 0, 0, time.UTC)

	output, err := RenderAssignments([]domain.Assignment{
		{Title: "Essay Draft", Due: &due, Course: "English 101"},
	}, RenderOptions{})

	require.NoError(t, err)
	assert.Contains(t, output, "due: Mon, Jan 5 at 11:59 pm")
	assert.NotContains(t, output, "due in")
}

func TestRenderAssignmentsEmpty(t *testing.T) {
	output, err := RenderAssignments(nil, RenderOptions{})

	require.NoError(t, err)
	assert.Contains(t, output, "assignments: 0")
	assert.Contains(t, output, "Nothing due")
}

func TestRenderCourses(t *testing.T) {
	output, err := RenderCourses([]domain.Course{
		{CourseTitle: "English 101", SectionTitle: "Period 2"},
		{CourseTitle: "Math 201", SectionTitle: "Period 5"},
	})

	require.NoError(t, err)
	assert.Contains(t, output, "Enrolled Courses")
	assert.Contains(t, output, "courses: 2")
	assert.Contains(t, output, "English 101")
	assert.Contains(t, output, "Period 2")
	assert.Contains(t, output, "Math 201")
}

func TestRenderCoursesEmpty(t *testing.T) {
	output, err := RenderCourses(nil)

	require.NoError(t, err)
	assert.Contains(t, output, "courses: 0")
	assert.Contains(t, output, "No enrolled courses found.")
}

func TestRenderCoursesUntitledFallback(t *testing.T) {
	output, err := RenderCourses([]domain.Course{
		{CourseTitle: "  ", SectionTitle: "Period 1"},
	})

	require.NoError(t, err)
	assert.Contains(t, output, "(untitled course)")
}
