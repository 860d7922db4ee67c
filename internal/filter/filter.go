// Package filter decides which variable names participate in a sync.
package filter

import (
	"sort"

	"github.com/unrss/envsync/internal/pattern"
)

// Rules holds the include and exclude patterns from configuration.
//
// An empty Include list admits every name; a non-empty list admits only
// names matching at least one of its patterns. Exclude is evaluated after
// include and always wins for names that passed it.
type Rules struct {
	Include []string
	Exclude []string
}

// Excludes reports whether name is filtered out of the sync.
func (r Rules) Excludes(name string) bool {
	if len(r.Include) > 0 && !pattern.MatchAny(name, r.Include) {
		return true
	}
	return pattern.MatchAny(name, r.Exclude)
}

// Apply partitions vars into the entries that participate in the sync and
// the names that were filtered out. The original map is not modified.
// Excluded names are sorted for reproducible reporting.
func (r Rules) Apply(vars map[string]string) (kept map[string]string, excluded []string) {
	kept = make(map[string]string, len(vars))
	for name, value := range vars {
		if r.Excludes(name) {
			excluded = append(excluded, name)
			continue
		}
		kept[name] = value
	}
	sort.Strings(excluded)
	return kept, excluded
}
