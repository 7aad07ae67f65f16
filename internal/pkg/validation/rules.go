package validation

import (
	"regexp"
	"strings"
)

// Field rule constants
var (
	// EmailPattern matches a plain mailbox@domain address
	EmailPattern = `^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`

	// MinCredit is the lowest credit value a course may carry
	MinCredit = 1
)

var emailRegex = regexp.MustCompile(EmailPattern)

// IsBlank reports whether the value is empty or whitespace only
func IsBlank(value string) bool {
	return strings.TrimSpace(value) == ""
}

// IsValidEmail reports whether the value is a syntactically valid address
func IsValidEmail(value string) bool {
	return emailRegex.MatchString(value)
}

// IsValidCredit reports whether the credit value is acceptable for a course
func IsValidCredit(credit int) bool {
	return credit >= MinCredit
}

// IsValidTuition reports whether the tuition amount is acceptable
func IsValidTuition(tuition float64) bool {
	return tuition >= 0
}
