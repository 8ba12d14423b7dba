package util

import "strings"

// NormalizeMAC canonicalizes a hardware address for directory lookups:
// lowercase hex digits, colon-separated.
func NormalizeMAC(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "-", ":")
	s = strings.ReplaceAll(s, ".", ":")
	return s
}
