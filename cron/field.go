package cron

import (
	"sort"
	"strconv"
	"strings"
)

// fieldKind records how a field value set was specified in the source
// expression. It drives the human-readable description.
type fieldKind int

const (
	kindAll fieldKind = iota
	kindSpecific
	kindRange
	kindStep
	kindList
)

// field is the parsed value set of a single expression field.
// The values are ascending and deduplicated.
type field struct {
	kind   fieldKind
	values []int
	step   int // set for kindStep only
}

func (f field) contains(value int) bool {
	for _, v := range f.values {
		if v == value {
			return true
		}
	}
	return false
}

// parseField parses a single field token against the field bounds.
// The token forms are checked in a fixed priority order: wildcard,
// step, range, list, single value.
func parseField(token string, min, max int) (field, error) {
	switch {
	case token == "*":
		return field{kind: kindAll, values: fillRange(min, max)}, nil
	case strings.Contains(token, "/"):
		return parseStep(token, min, max)
	case strings.Contains(token, "-"):
		return parseRange(token, min, max)
	case strings.Contains(token, ","):
		return parseList(token)
	default:
		value, err := strconv.Atoi(token)
		if err != nil {
			return field{}, parseError("invalid field %q", token)
		}
		if !inScope(value, min, max) {
			return field{}, parseError("value %d out of range [%d,%d]",
				value, min, max)
		}
		return field{kind: kindSpecific, values: []int{value}}, nil
	}
}

// parseStep parses a step field of the form range/step, where range is
// a wildcard, a single start value, or a from-to pair.
func parseStep(token string, min, max int) (field, error) {
	parts := strings.Split(token, "/")
	if len(parts) != 2 {
		return field{}, parseError("invalid step field %q", token)
	}
	step, err := strconv.Atoi(parts[1])
	if err != nil || step < 1 {
		return field{}, parseError("invalid step value %q", parts[1])
	}
	from, to := min, max
	switch {
	case parts[0] == "*":
	case strings.Contains(parts[0], "-"):
		bounds := strings.Split(parts[0], "-")
		if len(bounds) != 2 {
			return field{}, parseError("invalid step range %q", parts[0])
		}
		if from, err = strconv.Atoi(bounds[0]); err != nil {
			return field{}, parseError("invalid step range %q", parts[0])
		}
		if to, err = strconv.Atoi(bounds[1]); err != nil {
			return field{}, parseError("invalid step range %q", parts[0])
		}
	default:
		if from, err = strconv.Atoi(parts[0]); err != nil {
			return field{}, parseError("invalid step start %q", parts[0])
		}
	}
	values := fillStep(from, step, to)
	if len(values) == 0 {
		return field{}, parseError("empty step field %q", token)
	}
	return field{kind: kindStep, values: values, step: step}, nil
}

// parseRange parses a from-to field. Both bounds are validated against
// the field limits.
func parseRange(token string, min, max int) (field, error) {
	parts := strings.Split(token, "-")
	if len(parts) != 2 {
		return field{}, parseError("invalid range field %q", token)
	}
	from, err := strconv.Atoi(parts[0])
	if err != nil {
		return field{}, parseError("invalid range start %q", parts[0])
	}
	to, err := strconv.Atoi(parts[1])
	if err != nil {
		return field{}, parseError("invalid range end %q", parts[1])
	}
	if from > to {
		return field{}, parseError("descending range %q", token)
	}
	if !inScope(from, min, max) || !inScope(to, min, max) {
		return field{}, parseError("range %q out of [%d,%d]", token, min, max)
	}
	return field{kind: kindRange, values: fillRange(from, to)}, nil
}

// parseList parses a comma-separated list of values. List members are
// not validated against the field bounds; an out-of-range member makes
// the field unmatchable rather than invalid. This asymmetry with the
// range and single value forms is intentional and relied upon by
// existing expressions.
func parseList(token string) (field, error) {
	parts := strings.Split(token, ",")
	values := make([]int, 0, len(parts))
	for _, part := range parts {
		value, err := strconv.Atoi(part)
		if err != nil {
			return field{}, parseError("invalid list member %q", part)
		}
		values = append(values, value)
	}
	sort.Ints(values)
	return field{kind: kindList, values: dedup(values)}, nil
}

// fillRange returns all integers in [from, to], ascending.
func fillRange(from, to int) []int {
	if to < from {
		return nil
	}
	values := make([]int, 0, to-from+1)
	for v := from; v <= to; v++ {
		values = append(values, v)
	}
	return values
}

// fillStep returns from, from+step, from+2*step, ... while <= to.
func fillStep(from, step, to int) []int {
	if to < from || step < 1 {
		return nil
	}
	values := make([]int, 0, (to-from)/step+1)
	for v := from; v <= to; v += step {
		values = append(values, v)
	}
	return values
}

// dedup removes adjacent duplicates from a sorted slice.
func dedup(sorted []int) []int {
	values := sorted[:0]
	for i, v := range sorted {
		if i == 0 || v != values[len(values)-1] {
			values = append(values, v)
		}
	}
	return values
}

func inScope(i, min, max int) bool {
	return i >= min && i <= max
}
