// Package trigger provides next-fire-time computations on top of the
// cron and recurrence engines. Triggers only compute fire times; they
// do not schedule or execute anything.
package trigger

import (
	"errors"
	"fmt"
	"time"
)

// Trigger computes the chain of fire times of a schedule.
type Trigger interface {
	// NextFireTime returns the next time at which the trigger fires,
	// following the given instant.
	NextFireTime(prev time.Time) (time.Time, error)

	// Description returns the description of the trigger.
	Description() string
}

// Errors
var (
	ErrTriggerExpired = errors.New("trigger has expired")
)

// NowUTC returns the current time in UTC. It is the only wall-clock
// convenience in the library; every other entry point takes an explicit
// pivot instant.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// SimpleTrigger fires at a fixed interval.
type SimpleTrigger struct {
	Interval time.Duration
}

var _ Trigger = (*SimpleTrigger)(nil)

// NewSimpleTrigger returns a new SimpleTrigger with the given interval.
func NewSimpleTrigger(interval time.Duration) *SimpleTrigger {
	return &SimpleTrigger{Interval: interval}
}

// NextFireTime returns the next time at which the trigger fires.
func (t *SimpleTrigger) NextFireTime(prev time.Time) (time.Time, error) {
	return prev.Add(t.Interval), nil
}

// Description returns the description of the trigger.
func (t *SimpleTrigger) Description() string {
	return fmt.Sprintf("SimpleTrigger%s%s", separator, t.Interval)
}

// RunOnceTrigger fires once after a delay and then expires.
type RunOnceTrigger struct {
	Delay   time.Duration
	expired bool
}

var _ Trigger = (*RunOnceTrigger)(nil)

// NewRunOnceTrigger returns a new RunOnceTrigger with the given delay.
func NewRunOnceTrigger(delay time.Duration) *RunOnceTrigger {
	return &RunOnceTrigger{Delay: delay}
}

// NextFireTime returns the next time at which the trigger fires. After
// the first computed fire time the trigger reports ErrTriggerExpired.
func (t *RunOnceTrigger) NextFireTime(prev time.Time) (time.Time, error) {
	if t.expired {
		return time.Time{}, ErrTriggerExpired
	}
	t.expired = true
	return prev.Add(t.Delay), nil
}

// Description returns the description of the trigger.
func (t *RunOnceTrigger) Description() string {
	status := "valid"
	if t.expired {
		status = "expired"
	}
	return fmt.Sprintf("RunOnceTrigger%s%s", separator, status)
}

const separator = "::"
