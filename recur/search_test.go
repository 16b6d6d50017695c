package recur_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/tempora-go/tempora/internal/assert"
	"github.com/tempora-go/tempora/recur"
)

func TestNextAfter(t *testing.T) {
	t.Parallel()
	r := recur.Rule{
		Frequency: recur.Daily,
		Interval:  2,
		Start:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	next, err := r.NextAfter(time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC))
	assert.IsNil(t, err)
	assert.Equal(t, next, time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC))
}

func TestNextAfterBeforeStart(t *testing.T) {
	t.Parallel()
	r := recur.New(recur.Weekly, start)
	next, err := r.NextAfter(start.AddDate(-1, 0, 0))
	assert.IsNil(t, err)
	assert.Equal(t, next, start)
}

func TestNextAfterInheritsStartClock(t *testing.T) {
	t.Parallel()
	r := recur.New(recur.Daily, start) // 9:00
	next, err := r.NextAfter(start.Add(26 * time.Hour))
	assert.IsNil(t, err)
	assert.Equal(t, next, start.AddDate(0, 0, 2))
	assert.Equal(t, next.Hour(), 9)
}

func TestNextAfterWeeklyUnconstrained(t *testing.T) {
	t.Parallel()
	r := recur.Rule{Frequency: recur.Weekly, Interval: 2, Start: start}
	next, err := r.NextAfter(start)
	assert.IsNil(t, err)
	assert.Equal(t, next, start.AddDate(0, 0, 14))
}

func TestNextAfterUntil(t *testing.T) {
	t.Parallel()
	r := recur.Rule{
		Frequency: recur.Daily,
		Interval:  1,
		Start:     start,
		Until:     start.AddDate(0, 0, 3),
	}
	next, err := r.NextAfter(start)
	assert.IsNil(t, err)
	assert.Equal(t, next, start.AddDate(0, 0, 1))

	// the end bound is exclusive for generated sequences
	_, err = r.NextAfter(start.AddDate(0, 0, 2))
	assert.ErrorIs(t, err, recur.ErrNoMatch)

	// pivot already past the end bound
	_, err = r.NextAfter(start.AddDate(0, 0, 30))
	assert.ErrorIs(t, err, recur.ErrNoMatch)
}

// A rule whose constraints can never be satisfied exhausts the search
// budget and reports no match.
func TestNextAfterContradictoryRule(t *testing.T) {
	t.Parallel()
	r := recur.Rule{
		Frequency:  recur.Yearly,
		Interval:   1,
		Start:      start,
		ByMonth:    []time.Month{time.February},
		ByMonthDay: []int{31},
	}
	_, err := r.NextAfter(start)
	assert.ErrorIs(t, err, recur.ErrNoMatch)
}

func TestBetween(t *testing.T) {
	t.Parallel()
	monday := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	r := recur.Rule{
		Frequency: recur.Weekly,
		Interval:  1,
		Start:     monday,
		ByWeekday: []time.Weekday{time.Monday, time.Wednesday, time.Friday},
	}
	occurrences := r.Between(monday, monday.AddDate(0, 0, 13), 0)

	expected := []time.Time{
		monday,
		monday.AddDate(0, 0, 2),
		monday.AddDate(0, 0, 4),
		monday.AddDate(0, 0, 7),
		monday.AddDate(0, 0, 9),
		monday.AddDate(0, 0, 11),
	}
	if diff := cmp.Diff(expected, occurrences); diff != "" {
		t.Fatalf("occurrence mismatch (-expected +got):\n%s", diff)
	}
	for i := 1; i < len(occurrences); i++ {
		assert.True(t, occurrences[i].After(occurrences[i-1]))
	}
}

func TestBetweenLimit(t *testing.T) {
	t.Parallel()
	r := recur.New(recur.Daily, start)
	occurrences := r.Between(start, start.AddDate(1, 0, 0), 5)
	assert.Equal(t, len(occurrences), 5)
}

func TestBetweenClampsToStart(t *testing.T) {
	t.Parallel()
	r := recur.New(recur.Daily, start)
	occurrences := r.Between(start.AddDate(0, 0, -30), start.AddDate(0, 0, 2), 0)
	expected := []time.Time{start, start.AddDate(0, 0, 1), start.AddDate(0, 0, 2)}
	if diff := cmp.Diff(expected, occurrences); diff != "" {
		t.Fatalf("occurrence mismatch (-expected +got):\n%s", diff)
	}
}

// For a single-day range, Between yields exactly one occurrence iff the
// membership predicate holds for that day.
func TestBetweenSingleDayRoundTrip(t *testing.T) {
	t.Parallel()
	r := recur.Rule{
		Frequency: recur.Weekly,
		Interval:  1,
		Start:     start,
		ByWeekday: []time.Weekday{time.Monday, time.Thursday},
	}
	for offset := 0; offset < 21; offset++ {
		day := start.AddDate(0, 0, offset)
		occurrences := r.Between(day, day, 0)
		assert.True(t, len(occurrences) <= 1)
		assert.Equal(t, len(occurrences) == 1, r.Occurs(day))
	}
}

func TestAll(t *testing.T) {
	t.Parallel()
	r := recur.Rule{Frequency: recur.Daily, Interval: 7, Start: start}
	occurrences := r.All(4)
	expected := []time.Time{
		start,
		start.AddDate(0, 0, 7),
		start.AddDate(0, 0, 14),
		start.AddDate(0, 0, 21),
	}
	if diff := cmp.Diff(expected, occurrences); diff != "" {
		t.Fatalf("occurrence mismatch (-expected +got):\n%s", diff)
	}
}

func TestAllTermination(t *testing.T) {
	t.Parallel()
	counted := recur.Rule{Frequency: recur.Daily, Interval: 1, Start: start, Count: 3}
	assert.Equal(t, len(counted.All(0)), 3)

	bounded := recur.Rule{
		Frequency: recur.Daily,
		Interval:  1,
		Start:     start,
		Until:     start.AddDate(0, 0, 5),
	}
	assert.Equal(t, len(bounded.All(0)), 5)

	// whichever of count and until triggers first stops the iteration
	both := recur.Rule{
		Frequency: recur.Daily,
		Interval:  1,
		Start:     start,
		Until:     start.AddDate(0, 0, 5),
		Count:     2,
	}
	assert.Equal(t, len(both.All(0)), 2)

	unbounded := recur.New(recur.Daily, start)
	assert.Equal(t, len(unbounded.All(0)), 100)
}
