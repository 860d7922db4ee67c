package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/unrss/envsync/internal/reconcile"
)

func newPushCmd() *cobra.Command {
	var envName string
	var yes bool

	cmd := &cobra.Command{
		Use:   "push",
		Short: "Apply the local env file to the remote platform",
		Long: `Compute the difference between the local env file and the remote
environment, show it, and apply it after confirmation.

Removals run first, then additions, then updates. A variable that fails
to apply is reported and skipped; the remaining variables are still
processed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPush(cmd.Context(), cmd.OutOrStdout(), cmd.InOrStdin(), envName, yes)
		},
	}

	cmd.Flags().StringVarP(&envName, "env", "e", "development", "environment to sync")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "apply without confirmation")

	return cmd
}

func runPush(ctx context.Context, stdout io.Writer, stdin io.Reader, envName string, yes bool) error {
	p, err := buildPlan(ctx, envName)
	if err != nil {
		return err
	}

	c := newColorizer(stdout)

	fmt.Fprintf(stdout, "%s %s\n", c.bold(p.envName), c.dim("("+p.prov.Name()+" "+p.env.Target+")"))
	printChangeSet(stdout, c, p.changes, p.excluded)

	if p.changes.IsEmpty() {
		fmt.Fprintf(stdout, "%s\n", c.green("Already in sync."))
		return nil
	}

	if !yes {
		ok, err := confirm(stdin, stdout, fmt.Sprintf("Apply %d change(s) to %s?", p.changes.Mutations(), p.env.Target))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(stdout, "Aborted.")
			return nil
		}
	}

	summary := reconcile.Apply(ctx, p.changes, p.local, p.prov, p.env.Target, func(op reconcile.Op, name string, err error) {
		if err != nil {
			fmt.Fprintf(stdout, "%s %s %s: %v\n", c.red("✗"), op, name, err)
			return
		}
		fmt.Fprintf(stdout, "%s %s %s\n", c.green("✓"), op, name)
	})

	fmt.Fprintf(stdout, "\n%d applied, %d failed\n", summary.Applied, summary.Failed)
	if summary.Failed > 0 {
		fmt.Fprintf(stdout, "%s\n", c.dim("failed variables were left unchanged; re-run push to retry them"))
		return fmt.Errorf("%d of %d changes failed", summary.Failed, p.changes.Mutations())
	}

	return nil
}
