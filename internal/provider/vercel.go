package provider

import (
	"context"
	"fmt"
	"strings"
)

// Vercel drives the vercel CLI. The project link (.vercel/project.json) is
// the CLI's concern; envsync only issues env subcommands against it.
type Vercel struct {
	bin string
}

// NewVercel creates a Vercel provider. bin overrides the binary path; empty
// means "vercel" resolved via PATH.
func NewVercel(bin string) *Vercel {
	if bin == "" {
		bin = "vercel"
	}
	return &Vercel{bin: bin}
}

// Name implements Provider.
func (v *Vercel) Name() string { return "vercel" }

// ProtectedPatterns implements Provider. Vercel injects VERCEL and VERCEL_*
// into every deployment; removing them breaks the platform's own tooling.
func (v *Vercel) ProtectedPatterns() []string {
	return []string{"VERCEL", "VERCEL_*"}
}

// ListKeys runs `vercel env ls <target>` and extracts variable names from
// the table on stdout. Values are shown encrypted and are not parsed.
func (v *Vercel) ListKeys(ctx context.Context, target string) ([]string, error) {
	out, err := runCLI(ctx, v.bin, nil, "env", "ls", target)
	if err != nil {
		return nil, fmt.Errorf("list variables for %s: %w", target, err)
	}
	return parseVercelTable(out), nil
}

// SetValue implements Provider. `env add --force` overwrites an existing
// variable, so adds and updates go through the same call. The value is fed
// on stdin to keep it out of the process argument list.
func (v *Vercel) SetValue(ctx context.Context, name, value, target string) error {
	if _, err := runCLI(ctx, v.bin, strings.NewReader(value), "env", "add", name, target, "--force"); err != nil {
		return fmt.Errorf("set %s on %s: %w", name, target, err)
	}
	return nil
}

// RemoveValue implements Provider.
func (v *Vercel) RemoveValue(ctx context.Context, name, target string) error {
	if _, err := runCLI(ctx, v.bin, nil, "env", "rm", name, target, "--yes"); err != nil {
		return fmt.Errorf("remove %s from %s: %w", name, target, err)
	}
	return nil
}

// PullToFile implements Provider via `vercel env pull`.
func (v *Vercel) PullToFile(ctx context.Context, target, dest string) error {
	if _, err := runCLI(ctx, v.bin, nil, "env", "pull", dest, "--environment", target, "--yes"); err != nil {
		return fmt.Errorf("pull %s to %s: %w", target, dest, err)
	}
	return nil
}

// parseVercelTable extracts variable names from `vercel env ls` output.
// Data rows start with the variable name; the header row and decorations
// are skipped by requiring a valid variable name in the first column.
func parseVercelTable(out string) []string {
	var names []string
	for _, line := range strings.Split(out, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		name := fields[0]
		if strings.EqualFold(name, "name") || !validVarName(name) {
			continue
		}
		names = append(names, name)
	}
	return names
}

// validVarName reports whether s looks like an environment variable name:
// letters, digits, and underscores, not starting with a digit.
func validVarName(s string) bool {
	for i, r := range s {
		switch {
		case r == '_':
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return len(s) > 0
}
