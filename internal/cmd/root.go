// Package cmd implements the envsync CLI commands.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/unrss/envsync/internal/config"
)

// Assets holds embedded files passed from main.
type Assets struct {
	Version string
}

// cfg holds the loaded configuration, available to all commands.
var cfg *config.Config

// Execute runs the root command with the provided assets.
func Execute(assets Assets) error {
	root := newRootCmd(assets)
	return root.Execute()
}

func newRootCmd(assets Assets) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "envsync",
		Short: "Sync dotenv files to a deployment platform",
		Long: `envsync reconciles a local dotenv file against the environment variables
of a deployment platform, adding and updating what the file defines and
removing what it no longer does, while never removing platform-owned
variables.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig()
		},
	}

	// Add subcommands
	cmd.AddCommand(
		newPushCmd(),
		newPullCmd(),
		newStatusCmd(),
		newConfigCmd(),
		newVersionCmd(assets.Version),
	)

	return cmd
}

func initConfig() error {
	var err error
	cfg, err = config.Load()
	return err
}
