package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kmilner/schoology-mcp/internal/adapters/render/agenda"
	"github.com/kmilner/schoology-mcp/internal/domain"
)

func newAssignmentsCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:     "assignments",
		Aliases: []string{"upcoming"},
		Short:   "List upcoming assignments sorted by due date",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAssignments(cmd, app, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func runAssignments(cmd *cobra.Command, app *app, asJSON bool) error {
	service, err := app.portalService(cmd.Context())
	if err != nil {
		return err
	}

	var assignments []domain.Assignment
	fetchCmd := func(ctx context.Context) error {
		var fetchErr error
		assignments, fetchErr = service.UpcomingAssignments(ctx)
		return fetchErr
	}

	if asJSON {
		if err := fetchCmd(cmd.Context()); err != nil {
			return err
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(assignments)
	}

	if err := runFetchSpinner(cmd.Context(), cmd.ErrOrStderr(), "Fetching upcoming assignments...", fetchCmd); err != nil {
		return err
	}

	rendered, err := agenda.RenderAssignments(assignments, agenda.RenderOptions{Now: app.now()})
	if err != nil {
		return fmt.Errorf("render assignments: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}
