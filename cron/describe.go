package cron

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// canonical maps well-known expressions to fixed descriptions. The
// table is consulted before fragment composition.
var canonical = map[string]string{
	"* * * * *": "Every minute",
	"0 * * * *": "Every hour",
	"0 0 * * *": "Every day at midnight",
	"0 0 * * 0": "Every Sunday at midnight",
	"0 0 1 * *": "On the first day of every month at midnight",
	"0 0 1 1 *": "On January 1st at midnight",
}

// Description returns a human-readable description of the expression.
// The output is a fixed deterministic composition of fragments derived
// from the field kinds, not free-text generation.
func (e *Expression) Description() string {
	if description, ok := canonical[e.source]; ok {
		return description
	}
	var b strings.Builder
	b.WriteString(e.timeFragment())
	if fragment := e.weekdayFragment(); fragment != "" {
		b.WriteString(fragment)
	}
	if fragment := e.dayOfMonthFragment(); fragment != "" {
		b.WriteString(fragment)
	}
	if fragment := e.monthFragment(); fragment != "" {
		b.WriteString(fragment)
	}
	return b.String()
}

// timeFragment describes the minute and hour fields. Stepped hours take
// precedence over the minute field.
func (e *Expression) timeFragment() string {
	switch {
	case e.hour.kind == kindStep:
		return fmt.Sprintf("Every %d hours", e.hour.step)
	case e.minute.kind == kindStep:
		return fmt.Sprintf("Every %d minutes", e.minute.step)
	case e.minute.kind == kindAll:
		if e.hour.kind == kindAll {
			return "Every minute"
		}
		return fmt.Sprintf("Every minute of hour %d", e.hour.values[0])
	case e.hour.kind == kindAll:
		return fmt.Sprintf("At minute %d of every hour", e.minute.values[0])
	case e.minute.values[0] == 0:
		return fmt.Sprintf("At %d:00", e.hour.values[0])
	default:
		return fmt.Sprintf("At %d:%02d", e.hour.values[0], e.minute.values[0])
	}
}

func (e *Expression) weekdayFragment() string {
	if e.dayOfWeek.kind == kindAll {
		return ""
	}
	names := make([]string, 0, len(e.dayOfWeek.values))
	for _, value := range e.dayOfWeek.values {
		names = append(names, weekdayName(value))
	}
	if e.dayOfWeek.kind == kindRange {
		return fmt.Sprintf(" on %s through %s", names[0], names[len(names)-1])
	}
	return " on " + strings.Join(names, ", ")
}

func (e *Expression) dayOfMonthFragment() string {
	if e.dayOfMonth.kind == kindAll {
		return ""
	}
	if len(e.dayOfMonth.values) == 1 {
		return fmt.Sprintf(" on day %d", e.dayOfMonth.values[0])
	}
	return " on days " + joinInts(e.dayOfMonth.values)
}

func (e *Expression) monthFragment() string {
	if e.month.kind == kindAll {
		return ""
	}
	names := make([]string, 0, len(e.month.values))
	for _, value := range e.month.values {
		names = append(names, monthName(value))
	}
	if e.month.kind == kindRange {
		return fmt.Sprintf(" in %s through %s", names[0], names[len(names)-1])
	}
	return " in " + strings.Join(names, ", ")
}

func weekdayName(value int) string {
	if value < 0 || value > 6 {
		return strconv.Itoa(value)
	}
	return time.Weekday(value).String()
}

func monthName(value int) string {
	if value < 1 || value > 12 {
		return strconv.Itoa(value)
	}
	return time.Month(value).String()
}

func joinInts(values []int) string {
	parts := make([]string, 0, len(values))
	for _, value := range values {
		parts = append(parts, strconv.Itoa(value))
	}
	return strings.Join(parts, ", ")
}
