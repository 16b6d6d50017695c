// Package recur implements a recurrence rule engine for repeating
// events: a frequency with an interval, optional day and month
// constraint sets, and an optional termination by count or end instant.
//
// A Rule is a plain immutable value; every query allocates fresh
// results and no state is retained between calls. All matching happens
// at day granularity, with returned instants inheriting the clock time
// of the rule's start instant.
package recur

import (
	"errors"
	"fmt"
	"time"
)

// Frequency is the base period of a recurrence rule.
type Frequency int

const (
	Daily Frequency = iota
	Weekly
	Monthly
	Yearly
)

func (f Frequency) String() string {
	switch f {
	case Daily:
		return "daily"
	case Weekly:
		return "weekly"
	case Monthly:
		return "monthly"
	case Yearly:
		return "yearly"
	default:
		return fmt.Sprintf("frequency(%d)", int(f))
	}
}

// Rule describes a repeating pattern anchored at a start instant.
// Queries treat the rule as immutable; construct a new value to change
// it. The zero values of Until and Count mean "no bound".
type Rule struct {
	Frequency Frequency

	// Interval is the number of frequency periods between occurrences.
	// It must be at least 1.
	Interval int

	// Start anchors the pattern. Every occurrence is on or after Start
	// and inherits its clock time.
	Start time.Time

	// Until is the exclusive upper bound of the generated sequence.
	// It must be after Start when set.
	Until time.Time

	// Count bounds the total number of occurrences enumerated by All.
	Count int

	// ByWeekday restricts weekly rules to the given weekdays. When
	// empty, a weekly rule repeats on Start's weekday.
	ByWeekday []time.Weekday

	// ByMonthDay restricts monthly and yearly rules to the given days
	// of the month (1-31).
	ByMonthDay []int

	// ByMonth restricts yearly rules to the given months.
	ByMonth []time.Month
}

// New returns a rule with the given frequency and start instant and an
// interval of 1.
func New(frequency Frequency, start time.Time) *Rule {
	return &Rule{Frequency: frequency, Interval: 1, Start: start}
}

// Errors
var (
	ErrInvalidRule = errors.New("invalid recurrence rule")
	ErrNoMatch     = errors.New("no matching occurrence")
)

// invalidRuleError returns a rule validation error with a custom error
// message, which unwraps to ErrInvalidRule.
func invalidRuleError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidRule, fmt.Sprintf(format, args...))
}

// noMatchError returns a search failure error, which unwraps to
// ErrNoMatch. An exhausted search budget is indistinguishable from a
// rule with no further occurrences.
func noMatchError(r *Rule) error {
	return fmt.Errorf("%w: %s", ErrNoMatch, r.Frequency)
}

// Validate checks the rule constraints: a known frequency, an interval
// of at least 1, a positive count when set, an end instant after the
// start when set, and constraint set members within their calendar
// bounds. Matching and search behavior is unspecified for rules that
// fail validation.
func (r *Rule) Validate() error {
	if r.Frequency < Daily || r.Frequency > Yearly {
		return invalidRuleError("unknown frequency %d", int(r.Frequency))
	}
	if r.Interval < 1 {
		return invalidRuleError("interval must be at least 1, got %d", r.Interval)
	}
	if r.Count < 0 {
		return invalidRuleError("negative count %d", r.Count)
	}
	if !r.Until.IsZero() && !r.Until.After(r.Start) {
		return invalidRuleError("until %v is not after start %v", r.Until, r.Start)
	}
	for _, weekday := range r.ByWeekday {
		if weekday < time.Sunday || weekday > time.Saturday {
			return invalidRuleError("weekday %d out of range [0,6]", int(weekday))
		}
	}
	for _, day := range r.ByMonthDay {
		if day < 1 || day > 31 {
			return invalidRuleError("month day %d out of range [1,31]", day)
		}
	}
	for _, month := range r.ByMonth {
		if month < time.January || month > time.December {
			return invalidRuleError("month %d out of range [1,12]", int(month))
		}
	}
	return nil
}

// interval returns the effective interval, treating values below 1 as 1
// so that queries on unvalidated rules stay defined.
func (r *Rule) interval() int {
	if r.Interval < 1 {
		return 1
	}
	return r.Interval
}
