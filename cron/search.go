package cron

import "time"

// maxSearchMinutes bounds the minute-stepping searches to one non-leap
// year of candidates. Exhausting the budget reports ErrNoMatch; an
// expression that can never match (e.g. day-of-month 31 restricted to
// February) is indistinguishable from one whose closest match lies
// beyond the horizon.
const maxSearchMinutes = 525600

// Next returns the earliest matching instant strictly after the given
// pivot. The pivot's seconds and subseconds are discarded before the
// search starts. It returns an error unwrapping to ErrNoMatch if no
// instant within the search horizon matches.
func (e *Expression) Next(after time.Time) (time.Time, error) {
	candidate := after.Truncate(time.Minute).Add(time.Minute)
	for i := 0; i < maxSearchMinutes; i++ {
		if e.Matches(candidate) {
			return candidate, nil
		}
		candidate = candidate.Add(time.Minute)
	}
	e.log.Trace("cron search budget exhausted",
		"expression", e.source, "after", after)
	return time.Time{}, noMatchError(e.source)
}

// Previous returns the latest matching instant strictly before the
// given pivot, searching backward one minute at a time. It returns an
// error unwrapping to ErrNoMatch if no instant within the search
// horizon matches.
func (e *Expression) Previous(before time.Time) (time.Time, error) {
	candidate := before.Truncate(time.Minute).Add(-time.Minute)
	for i := 0; i < maxSearchMinutes; i++ {
		if e.Matches(candidate) {
			return candidate, nil
		}
		candidate = candidate.Add(-time.Minute)
	}
	e.log.Trace("cron search budget exhausted",
		"expression", e.source, "before", before)
	return time.Time{}, noMatchError(e.source)
}

// NextN returns up to n matching instants after the given pivot, in
// strictly ascending order. Each match becomes the pivot of the
// following search; the sequence is cut short the first time a search
// reports no match.
func (e *Expression) NextN(n int, after time.Time) []time.Time {
	times := make([]time.Time, 0, n)
	pivot := after
	for len(times) < n {
		next, err := e.Next(pivot)
		if err != nil {
			break
		}
		times = append(times, next)
		pivot = next
	}
	return times
}
