package sdk

import (
	"context"
	"time"

	"github.com/taptap/tapsdk-go/errors"
	"github.com/taptap/tapsdk-go/events"
)

// DefaultPumpInterval matches the vendor guidance for callback flushing.
const DefaultPumpInterval = 50 * time.Millisecond

// Pump polls on a fixed interval until ctx is done, handing every event to
// fn in arrival order. It takes over as the single consumer: do not call
// PollEvents directly while a pump runs. An interval of zero or less uses
// DefaultPumpInterval. Pump returns ctx.Err() on cancellation, or a closed
// error if the instance shuts down underneath it.
func (s *SDK) Pump(ctx context.Context, interval time.Duration, fn func(events.Event)) error {
	if s.closed.Load() {
		return errors.Closed("sdk.pump")
	}
	if !s.pumping.CompareAndSwap(false, true) {
		return errors.New(errors.PhaseCall, errors.KindInvalidArgument).
			Op("sdk.pump").
			Detail("a pump is already running").
			Build()
	}
	defer s.pumping.Store(false)

	if interval <= 0 {
		interval = DefaultPumpInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			for _, ev := range s.PollEvents() {
				fn(ev)
			}
			if s.closed.Load() {
				return errors.Closed("sdk.pump")
			}
		}
	}
}
