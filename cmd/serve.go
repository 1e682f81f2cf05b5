package cmd

import (
	"github.com/spf13/cobra"

	"github.com/kmilner/schoology-mcp/internal/adapters/mcptools"
)

func newServeCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the Schoology tools over MCP stdio",
		Long: `Resolves the portal session once, registers the assignment, course, and
current-date tools on an MCP server, and serves them over stdio until the
client disconnects. A session that cannot be resolved fails the command
immediately rather than surfacing per tool call.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, app)
		},
	}
}

func runServe(cmd *cobra.Command, app *app) error {
	service, err := app.portalService(cmd.Context())
	if err != nil {
		return err
	}

	app.log.InfoContext(cmd.Context(), "serving MCP over stdio")

	return mcptools.Serve(service)
}
