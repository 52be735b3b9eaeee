// Package matcher selects tools and builtin actions by name pattern.
package matcher

import "strings"

// Match reports whether name satisfies pattern: "*" matches everything, a
// trailing "*" is dropped, and the remainder must be a prefix of name.
func Match(pattern, name string) bool {
	if pattern == "*" {
		return true
	}
	pattern = strings.TrimSuffix(pattern, "*")
	if pattern == "" {
		return false
	}
	return strings.HasPrefix(name, pattern)
}

// Any reports whether name satisfies at least one of patterns.
func Any(patterns []string, name string) bool {
	for _, pattern := range patterns {
		if Match(pattern, name) {
			return true
		}
	}
	return false
}
