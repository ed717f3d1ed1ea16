package utils

import (
	"regexp"
	"strings"
)

// ValidateEmail checks if an email address is valid.
func ValidateEmail(email string) bool {
	if strings.TrimSpace(email) == "" {
		return false
	}

	const emailRegexPattern = `^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`
	emailRegex := regexp.MustCompile(emailRegexPattern)

	return emailRegex.MatchString(email)
}

// ValidatePhone checks for a plausible mobile number (E.164-ish).
func ValidatePhone(phone string) bool {
	e164Regex := regexp.MustCompile(`^\+?[1-9]\d{6,14}$`)
	return e164Regex.MatchString(phone)
}

var (
	passwordLower   = regexp.MustCompile(`[a-z]`)
	passwordUpper   = regexp.MustCompile(`[A-Z]`)
	passwordDigit   = regexp.MustCompile(`[0-9]`)
	passwordSpecial = regexp.MustCompile(`[@$!%*?&]`)
	passwordCharset = regexp.MustCompile(`^[A-Za-z0-9@$!%*?&]+$`)
)

// ValidatePassword enforces the storefront password policy: 8-20 characters,
// at least one lowercase, uppercase, digit and one of @$!%*?&, and nothing
// outside that alphabet.
func ValidatePassword(password string) bool {
	if len(password) < 8 || len(password) > 20 {
		return false
	}
	if !passwordCharset.MatchString(password) {
		return false
	}
	return passwordLower.MatchString(password) &&
		passwordUpper.MatchString(password) &&
		passwordDigit.MatchString(password) &&
		passwordSpecial.MatchString(password)
}
