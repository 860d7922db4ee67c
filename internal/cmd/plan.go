package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/unrss/envsync/internal/config"
	"github.com/unrss/envsync/internal/envfile"
	"github.com/unrss/envsync/internal/filter"
	"github.com/unrss/envsync/internal/protect"
	"github.com/unrss/envsync/internal/provider"
	"github.com/unrss/envsync/internal/reconcile"
)

// plan is the assembled input of one push or status invocation: the
// resolved environment, the provider, the filtered snapshot, and the
// computed change set.
type plan struct {
	envName  string
	env      config.Environment
	prov     provider.Provider
	local    map[string]string
	excluded []string
	changes  reconcile.ChangeSet
}

// buildPlan runs the filter → diff half of the pipeline. Configuration and
// validation failures abort before any remote interaction; a failed listing
// aborts before any diff is computed.
func buildPlan(ctx context.Context, envName string) (*plan, error) {
	env, err := cfg.Environment(envName)
	if err != nil {
		return nil, err
	}

	prov, err := provider.New(cfg.Platform)
	if err != nil {
		return nil, err
	}

	vars, err := envfile.Load(env.File)
	if err != nil {
		return nil, err
	}

	rules := filter.Rules{Include: cfg.Include, Exclude: cfg.Exclude}
	local, excluded := rules.Apply(vars)

	keys, err := prov.ListKeys(ctx, env.Target)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", prov.Name(), err)
	}

	protection := protect.New(prov.ProtectedPatterns(), cfg.Protected)
	changes := reconcile.Diff(local, mapset.NewThreadUnsafeSet(keys...), protection)

	return &plan{
		envName:  envName,
		env:      env,
		prov:     prov,
		local:    local,
		excluded: excluded,
		changes:  changes,
	}, nil
}

// printChangeSet writes the pending operations in the order apply would run
// them, followed by protected skips and filtered names.
func printChangeSet(w io.Writer, c *colorizer, changes reconcile.ChangeSet, excluded []string) {
	for _, name := range changes.Remove {
		fmt.Fprintf(w, "  %s %s\n", c.red("-"), name)
	}
	for _, name := range changes.Add {
		fmt.Fprintf(w, "  %s %s\n", c.green("+"), name)
	}
	for _, name := range changes.Update {
		fmt.Fprintf(w, "  %s %s\n", c.yellow("~"), name)
	}
	for _, name := range changes.ProtectedSkip {
		fmt.Fprintf(w, "  %s %s %s\n", c.dim("#"), name, c.dim("(protected, kept)"))
	}
	if len(excluded) > 0 {
		fmt.Fprintf(w, "  %s %s\n", c.dim("excluded:"), c.dim(strings.Join(excluded, ", ")))
	}
}
