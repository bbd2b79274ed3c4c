package models

import (
	"regexp"
	"strings"
)

// Email validation regex pattern
var emailRegex = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@.+$`)

// passwordSpecials is the fixed set of allowed special characters.
const passwordSpecials = "$%^*-_"

// IsValidEmail validates the account email format.
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// IsValidPassword validates the account password policy: at least 12
// characters, at least one lowercase letter, one uppercase letter, one digit
// and one of $%^*-_, with no characters outside those classes.
//
// Go's regexp has no lookahead, so the composition rule is checked by
// counting character classes instead of a single pattern.
func IsValidPassword(password string) bool {
	if len(password) < 12 {
		return false
	}

	var lower, upper, digit, special bool
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune(passwordSpecials, r):
			special = true
		default:
			return false
		}
	}

	return lower && upper && digit && special
}
