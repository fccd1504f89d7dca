// Package strings holds small string-list helpers shared by configuration
// parsing.
package strings

import (
	"strings"
)

// SplitList splits a separator-delimited list into normalized entries:
// each entry is trimmed and lowercased, empties are dropped, and the first
// occurrence wins on duplicates. Order is preserved.
//
// Example:
//
//	SplitList("  Applicant ,beneficiary, APPLICANT,, ", ",")
//	// Returns: []string{"applicant", "beneficiary"}
func SplitList(raw, sep string) []string {
	parts := strings.Split(raw, sep)
	seen := make(map[string]struct{}, len(parts))
	result := make([]string, 0, len(parts))

	for _, part := range parts {
		entry := strings.ToLower(strings.TrimSpace(part))
		if entry == "" {
			continue
		}
		if _, ok := seen[entry]; !ok {
			seen[entry] = struct{}{}
			result = append(result, entry)
		}
	}

	return result
}
