package mcptools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/kmilner/schoology-mcp/internal/application"
)

type AssignmentsTool struct {
	service *application.Service
}

var _ Tool = (*AssignmentsTool)(nil)

func NewAssignmentsTool(service *application.Service) *AssignmentsTool {
	return &AssignmentsTool{service: service}
}

func (t *AssignmentsTool) Handle() mcp.Tool {
	return mcp.NewTool("get_upcoming_assignments",
		mcp.WithDescription("Retrieve the student's upcoming assignments from Schoology, sorted by due date with undated assignments last."),
	)
}

func (t *AssignmentsTool) Handler(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	assignments, err := t.service.UpcomingAssignments(ctx)
	if err != nil {
		return resultFromError(err)
	}

	return jsonResult(assignments)
}
