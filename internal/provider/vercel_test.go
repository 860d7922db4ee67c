package provider

import (
	"reflect"
	"testing"
)

func TestParseVercelTable(t *testing.T) {
	t.Parallel()

	out := `
 name            value               environments        created
 DATABASE_URL    Encrypted           Production          2d ago
 API_KEY         Encrypted           Production          5d ago
 VERCEL_URL      Encrypted           Production          30d ago

`

	got := parseVercelTable(out)
	want := []string{"DATABASE_URL", "API_KEY", "VERCEL_URL"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("parseVercelTable() = %v, want %v", got, want)
	}
}

func TestParseVercelTableEmpty(t *testing.T) {
	t.Parallel()

	if got := parseVercelTable(""); len(got) != 0 {
		t.Errorf("parseVercelTable(\"\") = %v, want empty", got)
	}

	// Header only, no variables defined yet.
	out := " name    value    environments    created\n"
	if got := parseVercelTable(out); len(got) != 0 {
		t.Errorf("header-only table produced %v", got)
	}
}

func TestValidVarName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want bool
	}{
		{"DATABASE_URL", true},
		{"_PRIVATE", true},
		{"lower_case", true},
		{"HTTP2_ENABLED", true},
		{"1BAD", false},
		{"has-dash", false},
		{"has.dot", false},
		{">", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := validVarName(tt.in); got != tt.want {
			t.Errorf("validVarName(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
