package mcptools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/kmilner/schoology-mcp/internal/application"
)

// CurrentDateTool gives the agent a wall-clock anchor so it can resolve
// questions like "what is due tomorrow" against absolute due dates.
type CurrentDateTool struct {
	service *application.Service
}

var _ Tool = (*CurrentDateTool)(nil)

func NewCurrentDateTool(service *application.Service) *CurrentDateTool {
	return &CurrentDateTool{service: service}
}

func (t *CurrentDateTool) Handle() mcp.Tool {
	return mcp.NewTool("get_current_date",
		mcp.WithDescription("Returns the current date and time in the format YYYY-MM-DD HH:MM:SS."),
	)
}

func (t *CurrentDateTool) Handler(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(t.service.CurrentDate()), nil
}
