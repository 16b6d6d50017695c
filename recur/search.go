package recur

import "time"

const (
	// maxSearchIterations bounds a single next-occurrence search.
	// Exhausting the budget reports ErrNoMatch; a rule with
	// contradictory constraints is indistinguishable from one whose
	// next occurrence lies beyond the horizon.
	maxSearchIterations = 1000

	// betweenBudgetFactor multiplies the result limit of a ranged
	// search to bound its candidate scan.
	betweenBudgetFactor = 10

	// defaultAllLimit is the occurrence cap of All when the caller
	// does not supply one.
	defaultAllLimit = 100
)

// withStartClock returns t with the clock time of the rule's start
// instant, in t's location.
func (r *Rule) withStartClock(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(),
		r.Start.Hour(), r.Start.Minute(), r.Start.Second(),
		r.Start.Nanosecond(), t.Location())
}

// beyondUntil reports whether t falls on or after the rule's exclusive
// end instant.
func (r *Rule) beyondUntil(t time.Time) bool {
	return !r.Until.IsZero() && !t.Before(r.Until)
}

// NextAfter returns the earliest occurrence after the given pivot.
// When the pivot precedes the start instant and the start itself is an
// occurrence, the start is returned. It returns an error unwrapping to
// ErrNoMatch when the rule is exhausted or no occurrence is found
// within the search budget.
func (r *Rule) NextAfter(after time.Time) (time.Time, error) {
	if after.Before(r.Start) && r.Matches(r.Start) {
		return r.Start, nil
	}
	if r.beyondUntil(after) {
		return time.Time{}, noMatchError(r)
	}
	candidate := r.withStartClock(after.AddDate(0, 0, 1))
	for i := 0; i < maxSearchIterations; i++ {
		if r.beyondUntil(candidate) {
			return time.Time{}, noMatchError(r)
		}
		if r.Matches(candidate) {
			return candidate, nil
		}
		candidate = r.advance(candidate)
	}
	return time.Time{}, noMatchError(r)
}

// Between returns the occurrences within [start, end], at most limit of
// them, in strictly ascending order. A non-positive limit defaults to
// 1000. The candidate scan is bounded by ten times the limit.
func (r *Rule) Between(start, end time.Time, limit int) []time.Time {
	if limit <= 0 {
		limit = maxSearchIterations
	}
	occurrences := make([]time.Time, 0)
	cursor := start
	if cursor.Before(r.Start) {
		cursor = r.Start
	}
	cursor = r.withStartClock(cursor)
	budget := limit * betweenBudgetFactor
	for i := 0; i < budget; i++ {
		if len(occurrences) >= limit || cursor.After(end) || r.beyondUntil(cursor) {
			break
		}
		if r.Matches(cursor) && !cursor.Before(start) {
			occurrences = append(occurrences, cursor)
		}
		cursor = r.advance(cursor)
	}
	return occurrences
}

// All enumerates the occurrences of the rule from its start, stopping
// at the rule's end instant, its count, or the given limit, whichever
// comes first. A non-positive limit defaults to 100.
func (r *Rule) All(limit int) []time.Time {
	if limit <= 0 {
		limit = defaultAllLimit
	}
	if r.Count > 0 && r.Count < limit {
		limit = r.Count
	}
	occurrences := make([]time.Time, 0, limit)
	cursor := r.Start.Add(-time.Millisecond)
	for len(occurrences) < limit {
		next, err := r.NextAfter(cursor)
		if err != nil {
			break
		}
		occurrences = append(occurrences, next)
		cursor = next.Add(time.Millisecond)
	}
	return occurrences
}

// Occurs reports whether the instant is an occurrence of the rule: on
// or after the start, within the end bound when set, and matching the
// rule's pattern.
func (r *Rule) Occurs(t time.Time) bool {
	if t.Before(r.Start) {
		return false
	}
	if !r.Until.IsZero() && t.After(r.Until) {
		return false
	}
	return r.Matches(t)
}
