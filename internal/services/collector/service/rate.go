package service

import (
	"context"
	"time"
)

// RateControl is a feedback-controlled interval that paces outbound requests
// upstream rate limits are unknown and can shift, so a multiplicative
// controller converges toward a sustainable interval from either direction
// without an explicit limit signal from the protocol
type RateControl struct {
	interval time.Duration
	min      time.Duration
	max      time.Duration
	last     time.Time

	now   func() time.Time
	sleep func(context.Context, time.Duration) error
}

// NewRateControl builds a governor bounded by [min, max], starting at 2*min
func NewRateControl(min, max time.Duration) *RateControl {
	r := &RateControl{
		interval: 2 * min,
		min:      min,
		max:      max,
		now:      time.Now,
		sleep:    sleepCtx,
	}
	r.last = r.now()
	return r
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Wait suspends the caller until last+interval has elapsed, then stamps last
// spacing is a minimum, not a period: processing time after the stamp is
// not subtracted from the next wait
func (r *RateControl) Wait(ctx context.Context) error {
	if d := r.last.Add(r.interval).Sub(r.now()); d > 0 {
		if err := r.sleep(ctx, d); err != nil {
			return err
		}
	}
	r.last = r.now()
	return nil
}

// SpeedUp shrinks the interval by 10%, bounded below by min
func (r *RateControl) SpeedUp() {
	r.interval = maxDur(r.interval*9/10, r.min)
}

// SlowDown doubles the interval, bounded above by max
func (r *RateControl) SlowDown() {
	r.interval = minDur(r.interval*2, r.max)
}

// Interval returns the current interval
func (r *RateControl) Interval() time.Duration { return r.interval }

func maxDur(a, b time.Duration) time.Duration {
	if a > b {
		return a
	}
	return b
}

func minDur(a, b time.Duration) time.Duration {
	if a < b {
		return a
	}
	return b
}
