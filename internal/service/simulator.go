package service

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/dalfonso89/shop-mock-api/internal/config"
)

// LatencySimulator sleeps for a random whole number of milliseconds drawn
// uniformly from a configured [Min, Max) range.
type LatencySimulator struct {
	delay config.DelayRange
	int64n func(n int64) int64
}

// NewLatencySimulator creates a simulator for the given range
func NewLatencySimulator(delay config.DelayRange) *LatencySimulator {
	return &LatencySimulator{
		delay:  delay,
		int64n: rand.Int64N,
	}
}

// Pick returns the next delay without sleeping
func (simulator *LatencySimulator) Pick() time.Duration {
	minimum := simulator.delay.Min.Truncate(time.Millisecond)
	spanMs := int64((simulator.delay.Max - minimum) / time.Millisecond)
	if spanMs <= 0 {
		return minimum
	}
	return minimum + time.Duration(simulator.int64n(spanMs))*time.Millisecond
}

// Wait sleeps for a freshly picked delay. It returns early with an
// ErrorTypeContextCancelled error when ctx is done first.
func (simulator *LatencySimulator) Wait(ctx context.Context) (time.Duration, error) {
	delay := simulator.Pick()
	if delay <= 0 {
		return 0, nil
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return delay, nil
	case <-ctx.Done():
		return delay, &ServiceError{
			Type:    ErrorTypeContextCancelled,
			Message: "request abandoned during simulated delay",
			Cause:   ctx.Err(),
		}
	}
}
