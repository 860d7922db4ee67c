package filter

import (
	"reflect"
	"testing"
)

func TestExcludes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		rules Rules
		key   string
		want  bool
	}{
		{
			name:  "no rules keeps everything",
			rules: Rules{},
			key:   "ANY_VAR",
			want:  false,
		},
		{
			name:  "exclude exact",
			rules: Rules{Exclude: []string{"SECRET"}},
			key:   "SECRET",
			want:  true,
		},
		{
			name:  "exclude wildcard",
			rules: Rules{Exclude: []string{"AWS_*"}},
			key:   "AWS_SECRET_ACCESS_KEY",
			want:  true,
		},
		{
			name:  "include admits matching name",
			rules: Rules{Include: []string{"NEXT_PUBLIC_*"}},
			key:   "NEXT_PUBLIC_URL",
			want:  false,
		},
		{
			name:  "include rejects non-matching name",
			rules: Rules{Include: []string{"NEXT_PUBLIC_*"}},
			key:   "OTHER_VAR",
			want:  true,
		},
		{
			name: "exclude wins over include",
			rules: Rules{
				Include: []string{"NEXT_PUBLIC_*"},
				Exclude: []string{"NEXT_PUBLIC_SECRET"},
			},
			key:  "NEXT_PUBLIC_SECRET",
			want: true,
		},
		{
			name: "include survivor passes",
			rules: Rules{
				Include: []string{"NEXT_PUBLIC_*"},
				Exclude: []string{"NEXT_PUBLIC_SECRET"},
			},
			key:  "NEXT_PUBLIC_URL",
			want: false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.rules.Excludes(tt.key); got != tt.want {
				t.Errorf("Excludes(%q) = %v, want %v", tt.key, got, tt.want)
			}
		})
	}
}

func TestApply(t *testing.T) {
	t.Parallel()

	rules := Rules{
		Include: []string{"NEXT_PUBLIC_*", "DATABASE_URL"},
		Exclude: []string{"NEXT_PUBLIC_SECRET"},
	}
	vars := map[string]string{
		"NEXT_PUBLIC_URL":    "https://example.com",
		"NEXT_PUBLIC_SECRET": "hunter2",
		"DATABASE_URL":       "postgres://",
		"DEBUG":              "1",
	}

	kept, excluded := rules.Apply(vars)

	wantKept := map[string]string{
		"NEXT_PUBLIC_URL": "https://example.com",
		"DATABASE_URL":    "postgres://",
	}
	if !reflect.DeepEqual(kept, wantKept) {
		t.Errorf("kept = %v, want %v", kept, wantKept)
	}

	wantExcluded := []string{"DEBUG", "NEXT_PUBLIC_SECRET"}
	if !reflect.DeepEqual(excluded, wantExcluded) {
		t.Errorf("excluded = %v, want %v", excluded, wantExcluded)
	}

	// The input map is left untouched.
	if len(vars) != 4 {
		t.Errorf("input map was modified, now has %d entries", len(vars))
	}
}

func TestApplyIdempotent(t *testing.T) {
	t.Parallel()

	rules := Rules{Exclude: []string{"DEBUG", "TMP_*"}}
	vars := map[string]string{
		"API_KEY": "k",
		"DEBUG":   "1",
		"TMP_DIR": "/tmp",
	}

	once, _ := rules.Apply(vars)
	twice, excluded := rules.Apply(once)

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("second pass changed the snapshot: %v != %v", twice, once)
	}
	if len(excluded) != 0 {
		t.Errorf("second pass excluded %v, want nothing", excluded)
	}
}

func TestApplyEmptySnapshot(t *testing.T) {
	t.Parallel()

	kept, excluded := Rules{Exclude: []string{"*"}}.Apply(nil)

	if len(kept) != 0 {
		t.Errorf("kept = %v, want empty", kept)
	}
	if len(excluded) != 0 {
		t.Errorf("excluded = %v, want empty", excluded)
	}
}
