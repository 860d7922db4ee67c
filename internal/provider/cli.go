package provider

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
)

// runCLI executes a platform binary and returns its stdout. The platform
// CLIs print banners and errors to stderr, so on a non-zero exit the last
// stderr line is folded into the returned error.
func runCLI(ctx context.Context, bin string, stdin io.Reader, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Stdin = stdin

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			if msg := lastLine(stderr.String()); msg != "" {
				return "", fmt.Errorf("%s exited with status %d: %s", bin, exitErr.ExitCode(), msg)
			}
			return "", fmt.Errorf("%s exited with status %d", bin, exitErr.ExitCode())
		}
		return "", fmt.Errorf("run %s: %w", bin, err)
	}

	return stdout.String(), nil
}

// lastLine returns the last non-empty line of s, trimmed.
func lastLine(s string) string {
	lines := strings.Split(s, "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if line := strings.TrimSpace(lines[i]); line != "" {
			return line
		}
	}
	return ""
}
