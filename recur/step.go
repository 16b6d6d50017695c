package recur

import "time"

// stepStrategy selects how a search advances from one candidate to the
// next. A frequency with an active constraint set must scan day by day,
// since the constraints can select non-uniform days within a period;
// an unconstrained frequency jumps directly to the next aligned period
// boundary, keeping the search cost proportional to the number of
// occurrences.
type stepStrategy int

const (
	stepDays stepStrategy = iota
	stepWeeks
	stepMonths
	stepYears
)

// strategy returns the stepping strategy for the rule.
func (r *Rule) strategy() stepStrategy {
	switch r.Frequency {
	case Weekly:
		if len(r.ByWeekday) > 0 {
			return stepDays
		}
		return stepWeeks
	case Monthly:
		if len(r.ByMonthDay) > 0 {
			return stepDays
		}
		return stepMonths
	case Yearly:
		if len(r.ByMonth) > 0 || len(r.ByMonthDay) > 0 {
			return stepDays
		}
		return stepYears
	default:
		return stepDays
	}
}

// advance returns the next candidate instant to test after t. Calendar
// arithmetic follows time.AddDate, including its month-end overflow
// behavior: stepping Jan 31 by one month lands on Mar 2 or Mar 3.
//
// A coarse jump preserves the candidate's position within the period,
// so a candidate seeded off the rule's alignment (searches start at
// pivot+1 day) is first realigned to the start instant's grid; without
// this, a jump could step over every occurrence.
func (r *Rule) advance(t time.Time) time.Time {
	interval := r.interval()
	switch r.strategy() {
	case stepWeeks:
		if t.Weekday() != r.Start.Weekday() {
			days := (int(r.Start.Weekday()) - int(t.Weekday()) + 7) % 7
			return t.AddDate(0, 0, days)
		}
		weeks := dayOffset(r.Start, t) / 7
		if rem := weeks % interval; weeks > 0 && rem != 0 {
			return t.AddDate(0, 0, 7*(interval-rem))
		}
		return t.AddDate(0, 0, 7*interval)
	case stepMonths:
		if rem := monthOffset(r.Start, t) % interval; rem > 0 {
			return t.AddDate(0, interval-rem, 0)
		}
		return t.AddDate(0, interval, 0)
	case stepYears:
		if rem := (t.Year() - r.Start.Year()) % interval; rem > 0 {
			return t.AddDate(interval-rem, 0, 0)
		}
		return t.AddDate(interval, 0, 0)
	default:
		return t.AddDate(0, 0, 1)
	}
}
