// Package validation holds the account field rules shared by registration,
// login and profile updates. Each check reports the first rule that failed so
// the client gets an actionable message rather than a generic "invalid input".
package validation

import (
	"strings"
	"unicode"
)

// Result carries the outcome of a field check. Value holds the normalized
// (trimmed) input and is only meaningful when Valid is true.
type Result struct {
	Valid   bool
	Message string
	Value   string
}

func invalid(msg string) Result {
	return Result{Valid: false, Message: msg}
}

const passwordSpecials = `!@#$%^&*(),.?":{}|<>_-+=[]\/~` + "`"

// ValidateEmail checks the local-part@domain.tld shape: exactly one "@", a
// non-empty local part, and a domain containing at least one dot. The address
// is trimmed but otherwise returned as entered.
func ValidateEmail(email string) Result {
	if email == "" {
		return invalid("Email is required")
	}

	trimmed := strings.TrimSpace(email)
	if trimmed == "" {
		return invalid("Email is required")
	}

	at := strings.Index(trimmed, "@")
	if at <= 0 || at != strings.LastIndex(trimmed, "@") {
		return invalid("Invalid email format")
	}

	domain := trimmed[at+1:]
	dot := strings.Index(domain, ".")
	if dot <= 0 || dot == len(domain)-1 {
		return invalid("Invalid email format")
	}
	if strings.ContainsAny(trimmed, " \t") {
		return invalid("Invalid email format")
	}

	return Result{Valid: true, Value: trimmed}
}

// ValidatePassword enforces the strength rules in a fixed order so the
// message always names the first violated rule: length, uppercase, lowercase,
// digit, special character.
func ValidatePassword(password string) Result {
	if password == "" {
		return invalid("Password is required")
	}
	if len(password) < 8 {
		return invalid("Password must be at least 8 characters long")
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case strings.ContainsRune(passwordSpecials, r):
			hasSpecial = true
		}
	}

	switch {
	case !hasUpper:
		return invalid("Password must contain at least one uppercase letter")
	case !hasLower:
		return invalid("Password must contain at least one lowercase letter")
	case !hasDigit:
		return invalid("Password must contain at least one number")
	case !hasSpecial:
		return invalid("Password must contain at least one special character (!@#$%^&*...)")
	}

	return Result{Valid: true, Value: password}
}

// ValidateUsername accepts 3-30 characters of letters, digits, underscore and
// hyphen, after trimming.
func ValidateUsername(username string) Result {
	if username == "" {
		return invalid("Username is required")
	}

	trimmed := strings.TrimSpace(username)
	if len(trimmed) < 3 {
		return invalid("Username must be at least 3 characters long")
	}
	if len(trimmed) > 30 {
		return invalid("Username must not exceed 30 characters")
	}

	for _, r := range trimmed {
		valid := (r >= 'a' && r <= 'z') ||
			(r >= 'A' && r <= 'Z') ||
			(r >= '0' && r <= '9') ||
			r == '_' || r == '-'
		if !valid {
			return invalid("Username can only contain letters, numbers, underscores, and hyphens")
		}
	}

	return Result{Valid: true, Value: trimmed}
}
