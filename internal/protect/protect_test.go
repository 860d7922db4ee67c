package protect

import "testing"

func TestProtected(t *testing.T) {
	t.Parallel()

	set := New([]string{"VERCEL", "VERCEL_*"}, []string{"LEGACY_DB_URL"})

	tests := []struct {
		name    string
		varName string
		want    bool
	}{
		{"builtin exact", "NODE_ENV", true},
		{"builtin exact CI", "CI", true},
		{"builtin is anchored", "NODE_ENV_EXTRA", false},
		{"platform bare name", "VERCEL", true},
		{"platform wildcard", "VERCEL_URL", true},
		{"platform wildcard not substring", "MY_VERCEL_URL", false},
		{"user extra pattern", "LEGACY_DB_URL", true},
		{"ordinary name", "API_KEY", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := set.Protected(tt.varName); got != tt.want {
				t.Errorf("Protected(%q) = %v, want %v", tt.varName, got, tt.want)
			}
		})
	}
}

func TestEmptyPlatformAndExtra(t *testing.T) {
	t.Parallel()

	set := New(nil, nil)

	if !set.Protected("PATH") {
		t.Error("builtin protection should apply with no platform patterns")
	}
	if set.Protected("VERCEL_URL") {
		t.Error("platform patterns should not apply unless provided")
	}
}

func TestPatternsIsACopy(t *testing.T) {
	t.Parallel()

	set := New([]string{"VERCEL_*"}, nil)

	got := set.Patterns()
	got[0] = "mutated"

	if set.Protected("mutated") {
		t.Error("mutating the returned slice must not affect the set")
	}
}
