package trigger

import (
	"fmt"
	"time"

	"github.com/tempora-go/tempora/recur"
)

// RecurrenceTrigger fires on the occurrences of a recurrence rule.
type RecurrenceTrigger struct {
	rule *recur.Rule
}

var _ Trigger = (*RecurrenceTrigger)(nil)

// NewRecurrenceTrigger returns a new RecurrenceTrigger for the given
// rule. The rule is validated once here; the search functions assume
// valid rules.
func NewRecurrenceTrigger(rule *recur.Rule) (*RecurrenceTrigger, error) {
	if err := rule.Validate(); err != nil {
		return nil, err
	}
	return &RecurrenceTrigger{rule: rule}, nil
}

// NextFireTime returns the next time at which the trigger fires.
func (t *RecurrenceTrigger) NextFireTime(prev time.Time) (time.Time, error) {
	return t.rule.NextAfter(prev)
}

// Description returns the description of the trigger.
func (t *RecurrenceTrigger) Description() string {
	return fmt.Sprintf("RecurrenceTrigger%s%s", separator, t.rule.Description())
}
