// Package cron implements a five-field POSIX-style cron expression
// evaluator: parsing, instant matching and bounded next/previous
// searches.
//
// An expression consists of five whitespace-separated fields
// (minute hour day-of-month month day-of-week, Sunday=0). Unlike
// traditional cron, the day-of-month and day-of-week fields are
// combined conjunctively when both are restricted; see
// [Expression.Matches].
package cron

import (
	"strings"

	"github.com/tempora-go/tempora/logger"
)

// Bounds of the five expression fields.
const (
	minuteMin, minuteMax         = 0, 59
	hourMin, hourMax             = 0, 23
	dayOfMonthMin, dayOfMonthMax = 1, 31
	monthMin, monthMax           = 1, 12
	dayOfWeekMin, dayOfWeekMax   = 0, 6
)

// Expression is a parsed cron expression. An Expression is immutable
// and safe for concurrent use. A failed parse produces no Expression;
// there are no partially parsed patterns.
type Expression struct {
	source     string
	minute     field
	hour       field
	dayOfMonth field
	month      field
	dayOfWeek  field

	log logger.Logger
}

// Options configures optional expression behavior.
type Options struct {
	// Logger receives trace-level diagnostics from parsing and
	// searching. Defaults to a no-op logger.
	Logger logger.Logger
}

// Parse parses a five-field cron expression.
// It returns an error unwrapping to ErrParse if the expression does not
// consist of exactly five fields or if any field is malformed.
func Parse(expression string) (*Expression, error) {
	return ParseWithOptions(expression, Options{})
}

// ParseWithOptions is like Parse with non-default options.
func ParseWithOptions(expression string, opts Options) (*Expression, error) {
	log := opts.Logger
	if log == nil {
		log = logger.NoOpLogger{}
	}
	tokens := strings.Fields(expression)
	if len(tokens) != 5 {
		return nil, parseError("expected 5 fields, got %d", len(tokens))
	}
	e := &Expression{source: strings.Join(tokens, " "), log: log}
	var err error
	if e.minute, err = parseField(tokens[0], minuteMin, minuteMax); err != nil {
		return nil, err
	}
	if e.hour, err = parseField(tokens[1], hourMin, hourMax); err != nil {
		return nil, err
	}
	if e.dayOfMonth, err = parseField(tokens[2], dayOfMonthMin, dayOfMonthMax); err != nil {
		return nil, err
	}
	if e.month, err = parseField(tokens[3], monthMin, monthMax); err != nil {
		return nil, err
	}
	if e.dayOfWeek, err = parseField(tokens[4], dayOfWeekMin, dayOfWeekMax); err != nil {
		return nil, err
	}
	log.Trace("parsed cron expression", "expression", e.source)
	return e, nil
}

// MustParse is like Parse but panics if the expression cannot be parsed.
func MustParse(expression string) *Expression {
	e, err := Parse(expression)
	if err != nil {
		panic(err)
	}
	return e
}

// IsValid reports whether the expression parses successfully.
func IsValid(expression string) bool {
	_, err := Parse(expression)
	return err == nil
}

// String returns the normalized source expression.
func (e *Expression) String() string {
	return e.source
}
