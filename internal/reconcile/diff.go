package reconcile

import (
	"sort"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/unrss/envsync/internal/protect"
)

// Diff computes the change set that brings remote in line with local.
//
// Membership alone decides between add and update: the remote platform does
// not expose values, so a key present on both sides is always an update
// candidate even when its value is unchanged. Protection is consulted only
// for remote-only keys; a protected key that also exists locally is written
// like any other.
func Diff(local map[string]string, remote mapset.Set[string], protection protect.Set) ChangeSet {
	var cs ChangeSet

	localKeys := mapset.NewThreadUnsafeSet[string]()
	for _, name := range sortedKeys(local) {
		localKeys.Add(name)
		if remote.Contains(name) {
			cs.Update = append(cs.Update, name)
		} else {
			cs.Add = append(cs.Add, name)
		}
	}

	remoteOnly := remote.Difference(localKeys).ToSlice()
	sort.Strings(remoteOnly)
	for _, name := range remoteOnly {
		if protection.Protected(name) {
			cs.ProtectedSkip = append(cs.ProtectedSkip, name)
		} else {
			cs.Remove = append(cs.Remove, name)
		}
	}

	return cs
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
