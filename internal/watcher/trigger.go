package watcher

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
)

// DefaultSchedule is the fixed poll interval used when the config does not
// specify one.
const DefaultSchedule = "600s"

// Trigger decides when the next poll cycle runs. It is either a fixed
// interval or a cron schedule; the loop itself does not care which.
type Trigger struct {
	every time.Duration
	sched cron.Schedule
	spec  string
}

// NewTrigger parses a schedule string.
//
// Supported forms:
//   - Go duration: "600s", "10m", "2h30m"
//   - cron expression (standard 5-field or @-descriptor): "*/10 * * * *", "@hourly"
func NewTrigger(raw string) (*Trigger, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil, errors.New("schedule required")
	}

	// Whitespace or a leading '@' means cron.
	if strings.ContainsAny(s, " \t") || strings.HasPrefix(s, "@") {
		sched, err := cron.ParseStandard(s)
		if err != nil {
			return nil, fmt.Errorf("invalid cron schedule %q: %w", raw, err)
		}
		return &Trigger{sched: sched, spec: s}, nil
	}

	d, err := time.ParseDuration(s)
	if err != nil {
		return nil, fmt.Errorf("invalid schedule %q (use a duration like '10m' or a cron expression like '*/10 * * * *')", raw)
	}
	if d <= 0 {
		return nil, errors.New("interval must be > 0")
	}
	return &Trigger{every: d, spec: s}, nil
}

func (t *Trigger) String() string { return t.spec }

// Wait blocks until the next scheduled cycle or until ctx is cancelled.
func (t *Trigger) Wait(ctx context.Context) error {
	d := t.every
	if t.sched != nil {
		d = time.Until(t.sched.Next(time.Now()))
		if d < 0 {
			d = 0
		}
	}

	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
