package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kmilner/schoology-mcp/internal/adapters/config"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the sgy configuration file",
	}

	cmd.AddCommand(newConfigInitCmd(), newConfigPathCmd())

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var baseURL string
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := config.DefaultPath()
			if err != nil {
				return err
			}

			if err := config.WriteStarter(path, config.Config{BaseURL: baseURL}, force); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return err
		},
	}

	cmd.Flags().StringVar(&baseURL, "base-url", "", "District portal host, e.g. district.schoology.com")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")

	return cmd
}

func newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := config.DefaultPath()
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), path)
			return err
		},
	}
}
