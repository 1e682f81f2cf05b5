package cmd

import "github.com/spf13/cobra"

// Execute runs the root command. It is the single entry point used by
// the sgy binary.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sgy",
		Short: "Bridge an authenticated Schoology session to MCP tools and the terminal",
		Long: `sgy replays an authenticated Schoology browser session against the portal's
internal endpoints. It can serve upcoming assignments and enrolled courses as
MCP tools over stdio for an agent, or print them directly in the terminal.

Sessions come either from a cookie string (SCHOOLOGY_COOKIE) or from the
cookie store of a local browser you are signed in with.`,
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	// wireApp never fails; config problems surface once a command needs
	// the session, leaving version and config init usable before that.
	app := wireApp()

	rootCmd.AddCommand(
		newVersionCmd(),
		newConfigCmd(),
		newServeCmd(app),
		newAssignmentsCmd(app),
		newCoursesCmd(app),
		newSessionCmd(app),
	)

	return rootCmd
}
