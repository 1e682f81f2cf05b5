package mcptools

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/kmilner/schoology-mcp/internal/application"
	"github.com/kmilner/schoology-mcp/internal/version"
)

// Serve registers every tool on a stdio MCP server and blocks until the
// client disconnects. Stdout belongs to the protocol; anything the process
// wants to say goes to stderr.
func Serve(service *application.Service) error {
	s := server.NewMCPServer(
		"schoology-mcp",
		version.Version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)

	for _, tool := range []Tool{
		NewAssignmentsTool(service),
		NewCoursesTool(service),
		NewCurrentDateTool(service),
	} {
		s.AddTool(tool.Handle(), tool.Handler)
	}

	return server.ServeStdio(s)
}
