package cmd

import (
	"bytes"
	"strings"
	"testing"
)

func TestConfirm(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"lowercase y", "y\n", true},
		{"yes", "yes\n", true},
		{"uppercase", "YES\n", true},
		{"padded", "  y  \n", true},
		{"n", "n\n", false},
		{"empty line defaults to no", "\n", false},
		{"garbage", "maybe\n", false},
		{"eof defaults to no", "", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer
			got, err := confirm(strings.NewReader(tt.input), &out, "Apply 3 change(s) to production?")
			if err != nil {
				t.Fatalf("confirm() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("confirm(%q) = %v, want %v", tt.input, got, tt.want)
			}
			if !strings.Contains(out.String(), "[y/N]") {
				t.Errorf("prompt %q should offer [y/N]", out.String())
			}
		})
	}
}
