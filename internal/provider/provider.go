// Package provider adapts deployment platform CLIs to the sync engine.
package provider

import (
	"context"
	"fmt"
)

// Provider is a remote platform's variable store, driven through the
// platform's own CLI. Values are write-only: ListKeys returns names only,
// because no supported CLI exposes decrypted values for listing.
type Provider interface {
	// Name returns the platform name used in configuration and output.
	Name() string

	// ListKeys returns the variable names currently defined for target.
	ListKeys(ctx context.Context, target string) ([]string, error)

	// SetValue creates or overwrites one variable on target.
	SetValue(ctx context.Context, name, value, target string) error

	// RemoveValue deletes one variable from target.
	RemoveValue(ctx context.Context, name, target string) error

	// PullToFile mirrors target's variables into a local dotenv file,
	// overwriting dest. This bypasses reconciliation entirely.
	PullToFile(ctx context.Context, target, dest string) error

	// ProtectedPatterns returns the platform-owned name patterns that must
	// never be removed.
	ProtectedPatterns() []string
}

// New returns the provider registered under platform. Unknown platforms are
// a configuration error, reported before any remote interaction happens.
func New(platform string) (Provider, error) {
	switch platform {
	case "vercel":
		return NewVercel(""), nil
	case "netlify":
		return NewNetlify(""), nil
	}
	return nil, fmt.Errorf("unsupported platform %q (supported: netlify, vercel)", platform)
}
