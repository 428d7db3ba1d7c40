package linkdb

import "strings"

// NormalizeDescription returns s with a period appended unless it already
// ends with '.', '!' or '?'. An empty description becomes ".".
func NormalizeDescription(s string) string {
	if s != "" && strings.ContainsAny(s[len(s)-1:], ".!?") {
		return s
	}
	return s + "."
}
