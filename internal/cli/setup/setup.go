// Package setup holds the `grid config` commands that locate, create and
// inspect the configuration file.
package setup

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/grid/internal/cli"
	"github.com/thenoetrevino/grid/internal/cli/styles"
	"github.com/thenoetrevino/grid/internal/config"
	"gopkg.in/yaml.v3"
)

// ConfigCmd returns the config command
func ConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the grid configuration file",
		Long: `Locate, create and inspect grid's configuration file.

The file lives at $XDG_CONFIG_HOME/grid/config.yaml (or ~/.config/grid/config.yaml)
unless GRID_CONFIG_FILE points somewhere else.`,
	}

	cmd.AddCommand(pathCmd())
	cmd.AddCommand(initCmd())
	cmd.AddCommand(showCmd())

	return cmd
}

func pathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.Path()
			if err != nil {
				return cli.WithExitCode(err, cli.ExitError)
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}

func initCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default config file",
		Long: `Write the default key mappings, theme and log level to the config file.

Examples:
  # Create the file if it does not exist yet
  grid config init

  # Reset an existing file to the defaults
  grid config init --force
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := &cli.OutputFormatter{Out: cmd.OutOrStdout(), Err: cmd.ErrOrStderr()}

			path, err := config.WriteDefault(force)
			if err != nil {
				return formatter.Fail(err, "Use --force to overwrite the existing file")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", styles.SuccessStyle.Render("✓ Wrote"), path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")

	return cmd
}

func showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Long:  `Print the configuration after defaults and GRID_* environment overrides are applied.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := &cli.OutputFormatter{Out: cmd.OutOrStdout(), Err: cmd.ErrOrStderr()}

			cfg, err := config.Load()
			if err != nil {
				return formatter.Fail(err, "Fix the config file or run 'grid config init --force'")
			}
			if _, err := cfg.Level(); err != nil {
				return formatter.Fail(err, "log_level must be one of debug, info, warn, error")
			}

			if path, err := cfg.Path(); err == nil {
				if _, statErr := os.Stat(path); statErr != nil {
					fmt.Fprintln(cmd.ErrOrStderr(), styles.WarningStyle.Render("No config file at "+path+", showing defaults"))
				}
			}

			data, err := yaml.Marshal(cfg)
			if err != nil {
				return cli.WithExitCode(fmt.Errorf("marshal config: %w", err), cli.ExitError)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
