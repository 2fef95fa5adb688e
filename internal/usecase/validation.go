package usecase

import (
	"net/mail"
	"strings"

	domainErrors "github.com/CarlosL15/AutomationWebApp/internal/domain/errors"
)

// MinPasswordLength is the minimum accepted password length.
const MinPasswordLength = 8

// NormalizeEmail trims surrounding whitespace and lowercases the address so
// lookups and the unique index agree on a single canonical form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidateEmail checks that the address is a plain RFC 5322 address.
func ValidateEmail(email string) error {
	if email == "" {
		return domainErrors.ErrInvalidEmail
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return domainErrors.ErrInvalidEmail
	}
	return nil
}

// ValidatePassword enforces the minimum length policy before any hashing.
func ValidatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return domainErrors.ErrPasswordTooShort
	}
	return nil
}
