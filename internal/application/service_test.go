package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

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

func TestServiceUpcomingAssignments(t *testing.T) {
	due := time.Date(2026, time.January, 5, 23, 59, 0, 0, time.UTC)
	portal := &fakePortal{assignments: []domain.Assignment{
		{Title: "Essay Draft", Due: &due, Course: "English 101"},
	}}
	service := NewService(portal, nil, nil)

	assignments, err := service.UpcomingAssignments(context.Background())
	require.NoError(t, err)
	assert.Equal(t, portal.assignments, assignments)
}

func TestServiceUpcomingAssignmentsPropagatesError(t *testing.T) {
	portal := &fakePortal{err: domain.ErrSessionExpired}
	service := NewService(portal, nil, nil)

	_, err := service.UpcomingAssignments(context.Background())
	require.ErrorIs(t, err, domain.ErrSessionExpired)
}

func TestServiceEnrolledCourses(t *testing.T) {
	portal := &fakePortal{courses: []domain.Course{
		{CourseTitle: "English 101", SectionTitle: "Period 2"},
	}}
	service := NewService(portal, nil, nil)

	courses, err := service.EnrolledCourses(context.Background())
	require.NoError(t, err)
	assert.Equal(t, portal.courses, courses)
}

func TestServiceEnrolledCoursesPropagatesError(t *testing.T) {
	wantErr := errors.New("portal exploded")
	portal := &fakePortal{err: wantErr}
	service := NewService(portal, nil, nil)

	_, err := service.EnrolledCourses(context.Background())
	require.ErrorIs(t, err, wantErr)
}

func TestServiceCurrentDate(t *testing.T) {
	clock := fixedClock{now: time.Date(2026, time.January, 5, 14, 30, 9, 0, time.UTC)}
	service := NewService(&fakePortal{}, clock, nil)

	assert.Equal(t, "2026-01-05 14:30:09", service.CurrentDate())
}

func TestServiceDefaultsToSystemClock(t *testing.T) {
	service := NewService(&fakePortal{}, nil, nil)

	assert.NotEmpty(t, service.CurrentDate())
}
