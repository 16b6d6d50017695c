package cron

import "time"

// Matches reports whether the instant satisfies every field of the
// expression at minute granularity. Seconds and subseconds are ignored.
//
// The day-of-month and day-of-week fields are combined conjunctively:
// when both are restricted, both must hold. Traditional cron treats the
// two disjunctively in that case; callers depend on the conjunctive
// behavior, so it is not going to change.
func (e *Expression) Matches(t time.Time) bool {
	return e.minute.contains(t.Minute()) &&
		e.hour.contains(t.Hour()) &&
		e.dayOfMonth.contains(t.Day()) &&
		e.month.contains(int(t.Month())) &&
		e.dayOfWeek.contains(int(t.Weekday()))
}
