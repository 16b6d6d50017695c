package recur

import (
	"fmt"
	"strconv"
	"strings"
)

// Description returns a human-readable description of the rule: the
// frequency and interval, the constraint lists, and the termination
// clause. The phrasing is a fixed deterministic composition.
func (r *Rule) Description() string {
	var b strings.Builder
	b.WriteString(r.frequencyFragment())
	if len(r.ByWeekday) > 0 {
		names := make([]string, 0, len(r.ByWeekday))
		for _, weekday := range r.ByWeekday {
			names = append(names, weekday.String())
		}
		b.WriteString(" on " + strings.Join(names, ", "))
	}
	if len(r.ByMonthDay) > 0 {
		if len(r.ByMonthDay) == 1 {
			b.WriteString(fmt.Sprintf(" on day %d", r.ByMonthDay[0]))
		} else {
			days := make([]string, 0, len(r.ByMonthDay))
			for _, day := range r.ByMonthDay {
				days = append(days, strconv.Itoa(day))
			}
			b.WriteString(" on days " + strings.Join(days, ", "))
		}
	}
	if len(r.ByMonth) > 0 {
		names := make([]string, 0, len(r.ByMonth))
		for _, month := range r.ByMonth {
			names = append(names, month.String())
		}
		b.WriteString(" in " + strings.Join(names, ", "))
	}
	switch {
	case r.Count > 0:
		b.WriteString(fmt.Sprintf(", %d times", r.Count))
	case !r.Until.IsZero():
		b.WriteString(", until " + r.Until.Format("2006-01-02"))
	}
	return b.String()
}

func (r *Rule) frequencyFragment() string {
	units := map[Frequency]string{
		Daily:   "day",
		Weekly:  "week",
		Monthly: "month",
		Yearly:  "year",
	}
	unit, ok := units[r.Frequency]
	if !ok {
		return "Invalid rule"
	}
	if r.interval() == 1 {
		return "Every " + unit
	}
	return fmt.Sprintf("Every %d %ss", r.interval(), unit)
}
