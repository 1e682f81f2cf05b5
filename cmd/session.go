package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSessionCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "session",
		Short: "Resolve the portal session and show which cookies were found",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSessionCheck(cmd, app)
		},
	}
}

func runSessionCheck(cmd *cobra.Command, app *app) error {
	session, err := app.resolveSession(cmd.Context())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if host := session.Host(); host != "" {
		fmt.Fprintf(out, "host: %s\n", host)
	}

	// Cookie names only; the values are live credentials.
	names := session.SortedCookieNames()
	fmt.Fprintf(out, "cookies: %d\n", len(names))
	for _, name := range names {
		fmt.Fprintf(out, "  %s\n", name)
	}

	return nil
}
