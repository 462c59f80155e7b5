package utils

import (
	"errors"
	"strings"
)

const passwordSpecials = "@$!%*?&"

var ErrWeakPassword = errors.New("password must be at least 8 characters and include uppercase, lowercase, a number and a special character (@$!%*?&)")

// ValidatePassword enforces the account password policy: at least 8 characters drawn only
// from letters, digits and @$!%*?&, with one of each class present.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return ErrWeakPassword
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
			return ErrWeakPassword
		}
	}

	if !lower || !upper || !digit || !special {
		return ErrWeakPassword
	}
	return nil
}
