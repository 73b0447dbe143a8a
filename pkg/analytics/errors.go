// Package analytics holds the crop-planning calculators: cycle length,
// yield history aggregation and profitability simulation. Everything here
// is pure; callers pass snapshots and get new values back.
package analytics

import (
	"errors"
	"fmt"
)

// ErrNotImplemented marks operations the dashboard only ever stubbed out.
var ErrNotImplemented = errors.New("not implemented")

// ValidationError reports malformed or missing input.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "validation: " + e.Reason
	}
	return fmt.Sprintf("validation: %s: %s", e.Field, e.Reason)
}

func invalid(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err wraps a *ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

type WarningCode string

const (
	WarnUndefinedMargin WarningCode = "undefined_margin"
	WarnEmptyGroup      WarningCode = "empty_group"
	WarnNoEngineHours   WarningCode = "no_engine_hours"
)

// Warning flags a computed value that is defined but degenerate. It is
// never an error; the caller decides how to render it.
type Warning struct {
	Code    WarningCode `json:"code"`
	Message string      `json:"message"`
}
