package cron

import (
	"errors"
	"fmt"
)

// Errors
var (
	ErrParse   = errors.New("parse cron expression")
	ErrNoMatch = errors.New("no matching time")
)

// parseError returns a cron parse error with a custom error message,
// which unwraps to ErrParse.
func parseError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrParse, fmt.Sprintf(format, args...))
}

// noMatchError returns a search failure error for the given expression,
// which unwraps to ErrNoMatch. A search that exhausts its iteration
// budget is indistinguishable from one whose expression can never match.
func noMatchError(expression string) error {
	return fmt.Errorf("%w: %s", ErrNoMatch, expression)
}
