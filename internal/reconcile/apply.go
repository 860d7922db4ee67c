package reconcile

import (
	"context"
	"fmt"
)

// Mutator is the slice of a remote provider the apply loop needs.
type Mutator interface {
	SetValue(ctx context.Context, name, value, target string) error
	RemoveValue(ctx context.Context, name, target string) error
}

// Op identifies a single mutation kind.
type Op string

// Mutation kinds, in the order Apply executes them.
const (
	OpRemove Op = "remove"
	OpAdd    Op = "add"
	OpUpdate Op = "update"
)

// Failure records one mutation the provider rejected.
type Failure struct {
	Op   Op
	Name string
	Err  error
}

func (f Failure) Error() string {
	return fmt.Sprintf("%s %s: %v", f.Op, f.Name, f.Err)
}

// Summary reports the outcome of an apply pass.
type Summary struct {
	Applied  int
	Failed   int
	Failures []Failure
}

// ReportFunc observes each mutation as it completes. err is nil on success.
type ReportFunc func(op Op, name string, err error)

// Apply executes the change set against target, one mutation at a time.
// Removals run first, then additions, then updates, each in change-set
// order. A failed mutation is recorded and the loop continues to the next
// name; nothing is retried within a run. A re-run recomputes the diff and
// reapplies only the remaining differences.
func Apply(ctx context.Context, cs ChangeSet, local map[string]string, m Mutator, target string, report ReportFunc) Summary {
	var s Summary

	for _, name := range cs.Remove {
		s.record(OpRemove, name, m.RemoveValue(ctx, name, target), report)
	}
	for _, name := range cs.Add {
		s.record(OpAdd, name, m.SetValue(ctx, name, local[name], target), report)
	}
	for _, name := range cs.Update {
		s.record(OpUpdate, name, m.SetValue(ctx, name, local[name], target), report)
	}

	return s
}

func (s *Summary) record(op Op, name string, err error, report ReportFunc) {
	if err != nil {
		s.Failed++
		s.Failures = append(s.Failures, Failure{Op: op, Name: name, Err: err})
	} else {
		s.Applied++
	}
	if report != nil {
		report(op, name, err)
	}
}
