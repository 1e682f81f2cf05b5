package ports

import (
	"context"

	"github.com/kmilner/schoology-mcp/internal/domain"
)

type Portal interface {
	UpcomingAssignments(ctx context.Context) ([]domain.Assignment, error)
	EnrolledCourses(ctx context.Context) ([]domain.Course, error)
}
