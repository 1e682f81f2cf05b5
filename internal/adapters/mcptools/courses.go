package mcptools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/kmilner/schoology-mcp/internal/application"
)

type CoursesTool struct {
	service *application.Service
}

var _ Tool = (*CoursesTool)(nil)

func NewCoursesTool(service *application.Service) *CoursesTool {
	return &CoursesTool{service: service}
}

func (t *CoursesTool) Handle() mcp.Tool {
	return mcp.NewTool("get_enrolled_courses",
		mcp.WithDescription("Retrieve all courses the student is enrolled in on Schoology."),
	)
}

func (t *CoursesTool) Handler(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	courses, err := t.service.EnrolledCourses(ctx)
	if err != nil {
		return resultFromError(err)
	}

	return jsonResult(courses)
}
