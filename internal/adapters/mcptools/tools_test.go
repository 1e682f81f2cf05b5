package mcptools

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmilner/schoology-mcp/internal/application"
	"github.com/kmilner/schoology-mcp/internal/domain"
)

type fakePortal struct {
	assignments []domain.Assignment
	courses     []domain.Course
	err         error
}

func (f *fakePortal) UpcomingAssignments(context.Context) ([]domain.Assignment, error) {
	return f.assignments, f.err
}

func (f *fakePortal) EnrolledCourses(context.Context) ([]domain.Course, error) {
	return f.courses, f.err
}

type fixedClock struct {
	now time.Time
}

func (f fixedClock) Now() time.Time {
	return f.now
}

func textContent(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()

	require.Len(t, result.Content, 1)
	content, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok)

	return content.Text
}

func TestAssignmentsToolHandler(t *testing.T) {
	due := time.Date(2026, time.January, 5, 23, 59, 0, 0, time.UTC)
	portal := &fakePortal{assignments: []domain.Assignment{
		{Title: "Essay Draft", Due: &due, Course: "English 101"},
		{Title: "Reading", Due: nil, Course: "Philosophy 101"},
	}}
	tool := NewAssignmentsTool(application.NewService(portal, nil, nil))

	result, err := tool.Handler(context.Background(), mcp.CallToolRequest{})
	require.NoError(t, err)
	require.False(t, result.IsError)

	var got []domain.Assignment
	require.NoError(t, json.Unmarshal([]byte(textContent(t, result)), &got))
	assert.Equal(t, portal.assignments, got)
}

func TestAssignmentsToolReportsExpiredSession(t *testing.T) {
	portal := &fakePortal{err: domain.ErrSessionExpired}
	tool := NewAssignmentsTool(application.NewService(portal, nil, nil))

	result, err := tool.Handler(context.Background(), mcp.CallToolRequest{})
	require.NoError(t, err)
	require.True(t, result.IsError)
	assert.Contains(t, textContent(t, result), "session expired")
}

func TestAssignmentsToolPropagatesOtherErrors(t *testing.T) {
	wantErr := errors.New("portal exploded")
	portal := &fakePortal{err: wantErr}
	tool := NewAssignmentsTool(application.NewService(portal, nil, nil))

	result, err := tool.Handler(context.Background(), mcp.CallToolRequest{})
	require.ErrorIs(t, err, wantErr)
	assert.Nil(t, result)
}

func TestCoursesToolHandler(t *testing.T) {
	portal := &fakePortal{courses: []domain.Course{
		{CourseTitle: "English 101", SectionTitle: "Period 2"},
	}}
	tool := NewCoursesTool(application.NewService(portal, nil, nil))

	result, err := tool.Handler(context.Background(), mcp.CallToolRequest{})
	require.NoError(t, err)
	require.False(t, result.IsError)

	var got []domain.Course
	require.NoError(t, json.Unmarshal([]byte(textContent(t, result)), &got))
	assert.Equal(t, portal.courses, got)
}

func TestCoursesToolReportsMissingCookies(t *testing.T) {
	portal := &fakePortal{err: domain.ErrNoCookies}
	tool := NewCoursesTool(application.NewService(portal, nil, nil))

	result, err := tool.Handler(context.Background(), mcp.CallToolRequest{})
	require.NoError(t, err)
	require.True(t, result.IsError)
	assert.Contains(t, textContent(t, result), "no cookies")
}

func TestCurrentDateToolHandler(t *testing.T) {
	clock := fixedClock{now: time.Date(2026, time.January, 5, 14, 30, 9, 0, time.UTC)}
	tool := NewCurrentDateTool(application.NewService(&fakePortal{}, clock, nil))

	result, err := tool.Handler(context.Background(), mcp.CallToolRequest{})
	require.NoError(t, err)
	assert.Equal(t, "2026-01-05 14:30:09", textContent(t, result))
}

func TestToolNames(t *testing.T) {
	service := application.NewService(&fakePortal{}, nil, nil)

	assert.Equal(t, "get_upcoming_assignments", NewAssignmentsTool(service).Handle().Name)
	assert.Equal(t, "get_enrolled_courses", NewCoursesTool(service).Handle().Name)
	assert.Equal(t, "get_current_date", NewCurrentDateTool(service).Handle().Name)
}
