package utils

import (
	"regexp"
	"strings"
)

const icoLength = 8

var icoPattern = regexp.MustCompile(`^\d{8}$`)

// NormalizeICO pads an ICO with leading zeros to the fixed 8-digit width.
// ARES stores identifiers zero-padded, but callers routinely strip the zeros.
func NormalizeICO(ico string) string {
	trimmed := strings.TrimSpace(ico)
	if len(trimmed) >= icoLength {
		return trimmed
	}
	return strings.Repeat("0", icoLength-len(trimmed)) + trimmed
}

// IsValidICO reports whether the value is exactly 8 digits
func IsValidICO(ico string) bool {
	return icoPattern.MatchString(ico)
}
