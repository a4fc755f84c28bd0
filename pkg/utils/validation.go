package utils

import (
	"regexp"
	"strings"
)

// SuperAdminEmail is the one account that is granted the superadmin role.
const SuperAdminEmail = "admin@mindjournal.com"

const (
	StrengthWeak   = "weak"
	StrengthMedium = "medium"
	StrengthStrong = "strong"
)

var (
	emailRegex           = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[a-zA-Z]{2,}$`)
	startsWithLetter     = regexp.MustCompile(`^[a-zA-Z]`)
	upperRegex           = regexp.MustCompile(`[A-Z]`)
	lowerRegex           = regexp.MustCompile(`[a-z]`)
	digitRegex           = regexp.MustCompile(`\d`)
	nonAlphanumericRegex = regexp.MustCompile(`[^A-Za-z0-9]`)
)

// IsValidEmail reports whether email looks like local@domain.tld with a TLD of at least two letters.
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// IsValidUsername reports whether a display name is non-empty and starts with a letter.
func IsValidUsername(username string) bool {
	return len(username) > 0 && startsWithLetter.MatchString(username)
}

// PasswordStrength is the advisory result shown next to a password field.
type PasswordStrength struct {
	Strength string `json:"strength"`
	Score    int    `json:"score"`
	Message  string `json:"message"`
}

// CheckPasswordStrength scores a password from 0 to 6.
// Rules: +1 each for length >= 8, length >= 12, an uppercase letter,
// a lowercase letter, a digit and a non-alphanumeric character.
func CheckPasswordStrength(password string) PasswordStrength {
	score := 0
	if len(password) >= 8 {
		score++
	}
	if len(password) >= 12 {
		score++
	}
	if upperRegex.MatchString(password) {
		score++
	}
	if lowerRegex.MatchString(password) {
		score++
	}
	if digitRegex.MatchString(password) {
		score++
	}
	if nonAlphanumericRegex.MatchString(password) {
		score++
	}

	switch {
	case score <= 2:
		return PasswordStrength{Strength: StrengthWeak, Score: score, Message: "Weak: Add uppercase, numbers, and special characters"}
	case score <= 4:
		return PasswordStrength{Strength: StrengthMedium, Score: score, Message: "Medium: Good, but could be stronger"}
	default:
		return PasswordStrength{Strength: StrengthStrong, Score: score, Message: "Strong: Excellent password!"}
	}
}

// DoPasswordsMatch checks the confirmation field.
func DoPasswordsMatch(password, confirmPassword string) bool {
	return password == confirmPassword
}

// IsSuperAdmin reports whether email is the distinguished admin address (exact match).
func IsSuperAdmin(email string) bool {
	return email == SuperAdminEmail
}

// NormalizeEmail trims surrounding whitespace for storage and comparison.
func NormalizeEmail(email string) string {
	return strings.TrimSpace(email)
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ValidationErrors collects every failing field of a form.
type ValidationErrors []*ValidationError

func (v ValidationErrors) Error() string {
	msgs := make([]string, 0, len(v))
	for _, e := range v {
		msgs = append(msgs, e.Message)
	}
	return strings.Join(msgs, "; ")
}

// Add appends a field error.
func (v *ValidationErrors) Add(field, message string) {
	*v = append(*v, &ValidationError{Field: field, Message: message})
}

// Fields returns the errors keyed by field name, first message wins.
func (v ValidationErrors) Fields() map[string]string {
	out := make(map[string]string, len(v))
	for _, e := range v {
		if _, ok := out[e.Field]; !ok {
			out[e.Field] = e.Message
		}
	}
	return out
}

// Err returns nil when no errors were collected.
func (v ValidationErrors) Err() error {
	if len(v) == 0 {
		return nil
	}
	return v
}
