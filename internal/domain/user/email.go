package user

import "strings"

// NormalizeEmail is applied before every store and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
