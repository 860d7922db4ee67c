package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/unrss/envsync/internal/envfile"
)

// Netlify drives the netlify CLI. env:list --json returns a flat key/value
// object, which also backs the pull path since the CLI has no env pull of
// its own.
type Netlify struct {
	bin string
}

// NewNetlify creates a Netlify provider. bin overrides the binary path;
// empty means "netlify" resolved via PATH.
func NewNetlify(bin string) *Netlify {
	if bin == "" {
		bin = "netlify"
	}
	return &Netlify{bin: bin}
}

// Name implements Provider.
func (n *Netlify) Name() string { return "netlify" }

// ProtectedPatterns implements Provider.
func (n *Netlify) ProtectedPatterns() []string {
	return []string{"NETLIFY", "NETLIFY_*"}
}

// ListKeys implements Provider via `netlify env:list --json`.
func (n *Netlify) ListKeys(ctx context.Context, target string) ([]string, error) {
	vars, err := n.list(ctx, target)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// SetValue implements Provider. env:set overwrites existing variables.
func (n *Netlify) SetValue(ctx context.Context, name, value, target string) error {
	if _, err := runCLI(ctx, n.bin, nil, "env:set", name, value, "--context", target, "--force"); err != nil {
		return fmt.Errorf("set %s on %s: %w", name, target, err)
	}
	return nil
}

// RemoveValue implements Provider.
func (n *Netlify) RemoveValue(ctx context.Context, name, target string) error {
	if _, err := runCLI(ctx, n.bin, nil, "env:unset", name, "--context", target, "--force"); err != nil {
		return fmt.Errorf("remove %s from %s: %w", name, target, err)
	}
	return nil
}

// PullToFile implements Provider by listing the context and writing the
// result as a dotenv file.
func (n *Netlify) PullToFile(ctx context.Context, target, dest string) error {
	vars, err := n.list(ctx, target)
	if err != nil {
		return err
	}
	if err := envfile.Write(vars, dest); err != nil {
		return fmt.Errorf("pull %s: %w", target, err)
	}
	return nil
}

func (n *Netlify) list(ctx context.Context, target string) (map[string]string, error) {
	out, err := runCLI(ctx, n.bin, nil, "env:list", "--json", "--context", target)
	if err != nil {
		return nil, fmt.Errorf("list variables for %s: %w", target, err)
	}
	vars, err := parseNetlifyJSON(out)
	if err != nil {
		return nil, fmt.Errorf("list variables for %s: %w", target, err)
	}
	return vars, nil
}

func parseNetlifyJSON(out string) (map[string]string, error) {
	var vars map[string]string
	if err := json.Unmarshal([]byte(out), &vars); err != nil {
		return nil, fmt.Errorf("parse env:list output: %w", err)
	}
	return vars, nil
}
