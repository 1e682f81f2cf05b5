package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kmilner/schoology-mcp/internal/adapters/render/agenda"
	"github.com/kmilner/schoology-mcp/internal/domain"
)

func newCoursesCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "courses",
		Short: "List the courses the signed-in student is enrolled in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCourses(cmd, app, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func runCourses(cmd *cobra.Command, app *app, asJSON bool) error {
	service, err := app.portalService(cmd.Context())
	if err != nil {
		return err
	}

	var courses []domain.Course
	fetchCmd := func(ctx context.Context) error {
		var fetchErr error
		courses, fetchErr = service.EnrolledCourses(ctx)
		return fetchErr
	}

	if asJSON {
		if err := fetchCmd(cmd.Context()); err != nil {
			return err
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(courses)
	}

	if err := runFetchSpinner(cmd.Context(), cmd.ErrOrStderr(), "Fetching enrolled courses...", fetchCmd); err != nil {
		return err
	}

	rendered, err := agenda.RenderCourses(courses)
	if err != nil {
		return fmt.Errorf("render courses: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}
