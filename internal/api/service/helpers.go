package service

import (
	"strings"
	"time"
	"unicode/utf8"
)

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func checkPassword(password string) error {
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return ErrWeakPassword
	}
	return nil
}

func checkFullName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if utf8.RuneCountInString(name) < MinFullNameLength {
		return "", ErrInvalidFullName
	}
	if err := checkSingleLine("full_name", name); err != nil {
		return "", err
	}
	return name, nil
}

// checkSingleLine rejects values containing line breaks. Names and venues end
// up in mail headers and subjects.
func checkSingleLine(field, value string) error {
	if strings.ContainsAny(value, "\r\n") {
		return &FieldError{Field: field, Err: ErrMultiline}
	}
	return nil
}

// now returns the clock reading truncated to the second, the precision the
// store keeps.
func now(clock func() time.Time) time.Time {
	if clock == nil {
		clock = time.Now
	}
	return clock().UTC().Truncate(time.Second)
}

func ttlOrDefault(ttl time.Duration) time.Duration {
	if ttl <= 0 {
		return DefaultInvitationTTL
	}
	return ttl
}
