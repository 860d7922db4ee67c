package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/unrss/envsync/internal/provider"
)

func newPullCmd() *cobra.Command {
	var envName string

	cmd := &cobra.Command{
		Use:   "pull",
		Short: "Mirror the remote environment into the local env file",
		Long: `Download the remote environment into the local env file, overwriting
it. Pull is a direct mirror; no filtering or diffing is applied.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPull(cmd.Context(), cmd.OutOrStdout(), envName)
		},
	}

	cmd.Flags().StringVarP(&envName, "env", "e", "development", "environment to pull")

	return cmd
}

func runPull(ctx context.Context, stdout io.Writer, envName string) error {
	env, err := cfg.Environment(envName)
	if err != nil {
		return err
	}

	prov, err := provider.New(cfg.Platform)
	if err != nil {
		return err
	}

	if err := prov.PullToFile(ctx, env.Target, env.File); err != nil {
		return fmt.Errorf("%s: %w", prov.Name(), err)
	}

	c := newColorizer(stdout)
	fmt.Fprintf(stdout, "%s Pulled %s variables from %s into %s\n", c.green("✓"), prov.Name(), env.Target, env.File)
	return nil
}
