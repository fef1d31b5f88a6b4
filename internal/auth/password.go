package auth

import (
	"strconv"
	"strings"
)

// Outcome classifies a password submission.
type Outcome int

const (
	Mismatch Outcome = iota
	Matched
	NotANumber
	// PasswordUnusable means the configured password has no divisor sum, so
	// nothing the user types can match it.
	PasswordUnusable
)

// Message is the user-facing text for an outcome.
func (o Outcome) Message() string {
	switch o {
	case Matched:
		return ""
	case NotANumber:
		return "Enter a valid number"
	default:
		return "Incorrect password"
	}
}

func (o Outcome) String() string {
	switch o {
	case Matched:
		return "matched"
	case NotANumber:
		return "not a number"
	case PasswordUnusable:
		return "password unusable"
	default:
		return "mismatch"
	}
}

// Verify compares input with the divisor sum of the configured password.
// An invalid configured password never matches, including an input of "-1".
func Verify(input, configured string) Outcome {
	answer, err := strconv.ParseInt(strings.TrimSpace(input), 10, 64)
	if err != nil {
		return NotANumber
	}
	expected, err := DivisorSumOf(configured)
	if err != nil {
		return PasswordUnusable
	}
	if answer != expected {
		return Mismatch
	}
	return Matched
}

// CheckPassword reports whether input unlocks the configured password.
func CheckPassword(input, configured string) bool {
	return Verify(input, configured) == Matched
}
