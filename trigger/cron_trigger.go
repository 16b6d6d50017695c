package trigger

import (
	"fmt"
	"time"

	"github.com/tempora-go/tempora/cron"
)

// CronTrigger fires on the schedule described by a cron expression.
type CronTrigger struct {
	expression *cron.Expression
}

var _ Trigger = (*CronTrigger)(nil)

// NewCronTrigger returns a new CronTrigger for the given five-field
// cron expression.
func NewCronTrigger(expression string) (*CronTrigger, error) {
	parsed, err := cron.Parse(expression)
	if err != nil {
		return nil, err
	}
	return &CronTrigger{expression: parsed}, nil
}

// NextFireTime returns the next time at which the trigger fires.
func (t *CronTrigger) NextFireTime(prev time.Time) (time.Time, error) {
	return t.expression.Next(prev)
}

// Description returns the description of the trigger.
func (t *CronTrigger) Description() string {
	return fmt.Sprintf("CronTrigger%s%s", separator, t.expression)
}
