// Package phone normalizes customer phone numbers to an international digits-only form.
package phone

import (
	"strings"
	"unicode"
)

const localLength = 10

// Normalize strips every non digit from raw. A ten digit local number gets countryCode
// prepended; a number of at least eleven digits that already starts with countryCode is
// kept as is. Anything else is reported as invalid.
func Normalize(raw, countryCode string) (string, bool) {
	var b strings.Builder

	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	digits := b.String()

	switch {
	case len(digits) == localLength:
		return countryCode + digits, true
	case len(digits) > localLength && countryCode != "" && strings.HasPrefix(digits, countryCode):
		return digits, true
	default:
		return "", false
	}
}

// IsDigits reports whether s is a non-empty run of ASCII digits.
func IsDigits(s string) bool {
	if s == "" {
		return false
	}

	return strings.IndexFunc(s, func(r rune) bool { return r > unicode.MaxASCII || !unicode.IsDigit(r) }) < 0
}
