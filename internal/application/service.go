package application

import (
	"context"
	"log/slog"

	"github.com/kmilner/schoology-mcp/internal/domain"
	"github.com/kmilner/schoology-mcp/internal/ports"
)

// DateTimeLayout is the wall-clock format handed to the calling agent.
const DateTimeLayout = "2006-01-02 15:04:05"

type Service struct {
	portal ports.Portal
	clock  ports.Clock
	log    *slog.Logger
}

func NewService(portal ports.Portal, clock ports.Clock, log *slog.Logger) *Service {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	return &Service{
		portal: portal,
		clock:  clock,
		log:    log,
	}
}

// UpcomingAssignments returns the student's upcoming assignments sorted by
// due date, undated records last.
func (s *Service) UpcomingAssignments(ctx context.Context) ([]domain.Assignment, error) {
	assignments, err := s.portal.UpcomingAssignments(ctx)
	if err != nil {
		s.log.ErrorContext(ctx, "fetch upcoming assignments failed", "error", err)
		return nil, err
	}

	s.log.InfoContext(ctx, "fetched upcoming assignments", "count", len(assignments))

	return assignments, nil
}

// EnrolledCourses returns the courses the student is enrolled in.
func (s *Service) EnrolledCourses(ctx context.Context) ([]domain.Course, error) {
	courses, err := s.portal.EnrolledCourses(ctx)
	if err != nil {
		s.log.ErrorContext(ctx, "fetch enrolled courses failed", "error", err)
		return nil, err
	}

	s.log.InfoContext(ctx, "fetched enrolled courses", "count", len(courses))

	return courses, nil
}

// CurrentDate reports the local date and time, giving the calling agent a
// reference point for relative questions like "what is due tomorrow".
func (s *Service) CurrentDate() string {
	return s.clock.Now().Format(DateTimeLayout)
}
