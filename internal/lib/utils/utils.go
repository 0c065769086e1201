// Package utils contains small helpers that do not belong to a domain.
package utils

import "unicode/utf8"

// TruncateRunes cuts s to at most limit characters without splitting a
// multi-byte rune.
func TruncateRunes(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	return string([]rune(s)[:limit])
}
