// Package protect identifies variable names that must never be removed from
// the remote platform.
package protect

import "github.com/unrss/envsync/internal/pattern"

// builtin names are ambient in effectively every shell and CI system;
// removing them remotely is never what the user meant.
var builtin = []string{"CI", "NODE_ENV", "PWD", "HOME", "PATH", "USER", "SHELL"}

// Set is the collection of protected-name patterns in effect for one run.
// Protection only ever suppresses removal; adds and updates are unaffected.
type Set struct {
	patterns []string
}

// New builds a Set from the builtin list, the platform's own patterns, and
// any extra patterns from user configuration.
func New(platformPatterns, extra []string) Set {
	patterns := make([]string, 0, len(builtin)+len(platformPatterns)+len(extra))
	patterns = append(patterns, builtin...)
	patterns = append(patterns, platformPatterns...)
	patterns = append(patterns, extra...)
	return Set{patterns: patterns}
}

// Protected reports whether name matches any pattern in the set.
func (s Set) Protected(name string) bool {
	return pattern.MatchAny(name, s.patterns)
}

// Patterns returns a copy of the patterns in effect.
func (s Set) Patterns() []string {
	out := make([]string, len(s.patterns))
	copy(out, s.patterns)
	return out
}
