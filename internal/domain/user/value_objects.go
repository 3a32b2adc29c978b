package user

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidEmail = errors.New("invalid email format")
	ErrInvalidRole  = errors.New("invalid role")
)

const MaxEmailLength = 255

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type Email struct {
	value string
}

// NewEmail normalizes and validates a buyer email: lower-cased, trimmed,
// truncated to MaxEmailLength before the shape check. Storefront buyers type
// these into Hotmart's checkout, so the shape check is deliberately loose.
func NewEmail(s string) (Email, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) > MaxEmailLength {
		s = s[:MaxEmailLength]
	}
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}
