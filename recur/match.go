package recur

import "time"

// Matches reports whether the instant falls on an occurrence day of the
// rule. Comparison is at day granularity; the instant's clock time is
// ignored.
func (r *Rule) Matches(t time.Time) bool {
	switch r.Frequency {
	case Daily:
		offset := dayOffset(r.Start, t)
		return offset >= 0 && offset%r.interval() == 0
	case Weekly:
		offset := dayOffset(r.Start, t)
		if offset < 0 {
			return false
		}
		if len(r.ByWeekday) > 0 {
			if !containsWeekday(r.ByWeekday, t.Weekday()) {
				return false
			}
		} else if t.Weekday() != r.Start.Weekday() {
			return false
		}
		return (offset/7)%r.interval() == 0
	case Monthly:
		offset := monthOffset(r.Start, t)
		if offset < 0 || offset%r.interval() != 0 {
			return false
		}
		return len(r.ByMonthDay) == 0 || containsInt(r.ByMonthDay, t.Day())
	case Yearly:
		offset := t.Year() - r.Start.Year()
		if offset < 0 || offset%r.interval() != 0 {
			return false
		}
		if len(r.ByMonth) > 0 && !containsMonth(r.ByMonth, t.Month()) {
			return false
		}
		return len(r.ByMonthDay) == 0 || containsInt(r.ByMonthDay, t.Day())
	default:
		return false
	}
}

// dayOffset returns the number of whole calendar days from a to b,
// ignoring clock time.
func dayOffset(a, b time.Time) int {
	ad := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bd := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(bd.Sub(ad).Hours() / 24)
}

// monthOffset returns the number of calendar months from a to b.
func monthOffset(a, b time.Time) int {
	return 12*(b.Year()-a.Year()) + int(b.Month()) - int(a.Month())
}

func containsInt(values []int, value int) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}

func containsWeekday(values []time.Weekday, value time.Weekday) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}

func containsMonth(values []time.Month, value time.Month) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
