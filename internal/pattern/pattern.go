// Package pattern implements the glob matching used by filter and
// protection rules.
package pattern

import (
	"regexp"
	"strings"
)

// Match reports whether name matches pattern.
//
// A pattern without "*" must equal name exactly. Each "*" matches a run of
// zero or more characters. The whole pattern is anchored at both ends, so
// "VERCEL_*" matches "VERCEL_URL" but not "MY_VERCEL_URL". No other
// metacharacters are supported.
func Match(name, pattern string) bool {
	if !strings.Contains(pattern, "*") {
		return name == pattern
	}
	return compile(pattern).MatchString(name)
}

// MatchAny reports whether name matches at least one of patterns.
func MatchAny(name string, patterns []string) bool {
	for _, p := range patterns {
		if Match(name, p) {
			return true
		}
	}
	return false
}

// compile translates a "*"-glob into an anchored regexp. Everything between
// wildcards is quoted literally, so the translated expression always compiles.
func compile(pattern string) *regexp.Regexp {
	var b strings.Builder
	b.WriteString("^")
	for i, literal := range strings.Split(pattern, "*") {
		if i > 0 {
			b.WriteString(".*")
		}
		b.WriteString(regexp.QuoteMeta(literal))
	}
	b.WriteString("$")
	return regexp.MustCompile(b.String())
}
