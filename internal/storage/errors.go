package storage

import (
	"fmt"
)

// OpError records a failed file operation on the configuration document.
type OpError struct {
	Op   string
	Path string
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *OpError) Unwrap() error { return e.Err }

// Check names the validation step a configuration document failed.
type Check int

const (
	CheckRead Check = iota + 1
	CheckJSON
	CheckRequiredKey
	CheckFieldType
	CheckCountdownsList
	CheckCountdownEntry
	CheckCountdownDate
)

func (c Check) String() string {
	switch c {
	case CheckRead:
		return "read"
	case CheckJSON:
		return "json"
	case CheckRequiredKey:
		return "required key"
	case CheckFieldType:
		return "field type"
	case CheckCountdownsList:
		return "countdowns list"
	case CheckCountdownEntry:
		return "countdown entry"
	case CheckCountdownDate:
		return "countdown date"
	default:
		return "unknown"
	}
}

// ValidationError explains why a document was replaced by the defaults.
// Key is set for key and type checks; Index for per-countdown checks.
type ValidationError struct {
	Check Check
	Key   string
	Index int
	Err   error
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	switch e.Check {
	case CheckRequiredKey:
		return fmt.Sprintf("missing required key %q", e.Key)
	case CheckFieldType:
		return fmt.Sprintf("%s has the wrong type: %v", e.Key, e.Err)
	case CheckCountdownsList:
		return "countdowns must be a list"
	case CheckCountdownEntry:
		return fmt.Sprintf("countdown %d must have name and date", e.Index)
	case CheckCountdownDate:
		return fmt.Sprintf("countdown %d: %v", e.Index, e.Err)
	default:
		return fmt.Sprintf("%s: %v", e.Check, e.Err)
	}
}

func (e *ValidationError) Unwrap() error { return e.Err }
