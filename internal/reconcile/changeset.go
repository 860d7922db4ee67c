// Package reconcile computes and applies the minimal set of operations that
// brings a remote variable set in line with a local snapshot.
package reconcile

// ChangeSet is the four-way partition of names produced by Diff.
//
// The four sequences are sorted, pairwise disjoint, and together cover every
// name present locally or remotely. It is computed fresh per operation and
// never persisted.
type ChangeSet struct {
	// Add holds names present locally but not remotely.
	Add []string

	// Update holds names present on both sides. Remote values are never
	// available for comparison, so an unchanged variable still lands here.
	Update []string

	// Remove holds remote-only names that are not protected.
	Remove []string

	// ProtectedSkip holds remote-only names kept because they matched a
	// protection pattern.
	ProtectedSkip []string
}

// IsEmpty reports whether the change set requires no mutations. Protected
// skips alone do not count: they are report-only.
func (c ChangeSet) IsEmpty() bool {
	return len(c.Add) == 0 && len(c.Update) == 0 && len(c.Remove) == 0
}

// Mutations returns the number of remote calls Apply would make.
func (c ChangeSet) Mutations() int {
	return len(c.Add) + len(c.Update) + len(c.Remove)
}
