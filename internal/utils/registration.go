package utils

import "strings"

// NormalizeRegistration canonicalizes a registration string so uniqueness is
// case-insensitive: surrounding whitespace is dropped and letters uppercased.
func NormalizeRegistration(registration string) string {
	return strings.ToUpper(strings.TrimSpace(registration))
}
