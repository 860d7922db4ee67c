package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/unrss/envsync/internal/reconcile"
)

// StatusOutput is the JSON representation of a computed sync status.
type StatusOutput struct {
	Environment   string   `json:"environment"`
	Platform      string   `json:"platform"`
	Target        string   `json:"target"`
	File          string   `json:"file"`
	InSync        bool     `json:"in_sync"`
	Add           []string `json:"add"`
	Update        []string `json:"update"`
	Remove        []string `json:"remove"`
	ProtectedSkip []string `json:"protected_skip"`
	Excluded      []string `json:"excluded,omitempty"`
}

func newStatusCmd() *cobra.Command {
	var envName string
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show what push would change, without applying anything",
		Long: `Compute the difference between the local env file and the remote
environment and display it. No remote variable is modified.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatus(cmd.Context(), cmd.OutOrStdout(), envName, jsonOutput)
		},
	}

	cmd.Flags().StringVarP(&envName, "env", "e", "development", "environment to inspect")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runStatus(ctx context.Context, w io.Writer, envName string, jsonOutput bool) error {
	p, err := buildPlan(ctx, envName)
	if err != nil {
		return err
	}

	status := StatusOutput{
		Environment:   p.envName,
		Platform:      p.prov.Name(),
		Target:        p.env.Target,
		File:          p.env.File,
		InSync:        p.changes.IsEmpty(),
		Add:           p.changes.Add,
		Update:        p.changes.Update,
		Remove:        p.changes.Remove,
		ProtectedSkip: p.changes.ProtectedSkip,
		Excluded:      p.excluded,
	}

	if jsonOutput {
		return outputJSON(w, status)
	}

	outputStatusHuman(w, status)
	return nil
}

func outputJSON(w io.Writer, status StatusOutput) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(status)
}

func outputStatusHuman(w io.Writer, status StatusOutput) {
	c := newColorizer(w)

	fmt.Fprintf(w, "%s %s\n", c.bold(status.Environment), c.dim("("+status.Platform+" "+status.Target+")"))
	fmt.Fprintf(w, "  %s %s\n", c.label("file:"), status.File)

	changes := changeSetOf(status)
	printChangeSet(w, c, changes, status.Excluded)

	if status.InSync {
		fmt.Fprintf(w, "%s\n", c.green("In sync."))
		return
	}
	fmt.Fprintf(w, "%d change(s) pending; run %s to apply\n", changes.Mutations(), c.bold("envsync push"))
}

func changeSetOf(status StatusOutput) reconcile.ChangeSet {
	return reconcile.ChangeSet{
		Add:           status.Add,
		Update:        status.Update,
		Remove:        status.Remove,
		ProtectedSkip: status.ProtectedSkip,
	}
}
