// Package text holds small string helpers for naming experiment artifacts.
package text

import "strings"

// LongestCommonSubstring returns the longest substring shared by every
// string in strs. Candidates are the substrings of the shortest string (the
// first one, on ties), tried by decreasing length and then increasing
// offset; the first candidate found in all strings wins. A trailing '_' is
// dropped from the result. Empty input or no common substring yields "".
//
// Matching is byte-wise and case-sensitive.
//
// Complexity: O(m² · k · n) worst case for shortest length m, k strings of
// length up to n: m² candidates, each a substring scan of every string.
// Keep inputs identifier-sized.
func LongestCommonSubstring(strs []string) string {
	if len(strs) == 0 {
		return ""
	}

	shortest := strs[0]
	for _, s := range strs[1:] {
		if len(s) < len(shortest) {
			shortest = s
		}
	}

	for n := len(shortest); n > 0; n-- {
		for start := 0; start+n <= len(shortest); start++ {
			sub := shortest[start : start+n]
			if containedInAll(strs, sub) {
				return strings.TrimSuffix(sub, "_")
			}
		}
	}
	return ""
}

func containedInAll(strs []string, sub string) bool {
	for _, s := range strs {
		if !strings.Contains(s, sub) {
			return false
		}
	}
	return true
}
