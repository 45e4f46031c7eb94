package dispatcher

import (
	"cmp"
	"slices"

	"liftsim/src/elev"
	"liftsim/src/logger"
	"liftsim/src/types"

	"github.com/pkg/errors"
)

// New creates a dispatcher for car. Requests may be given in any order.
func New(car *elev.Car, requests []types.Request) *Dispatcher {
	pending := slices.Clone(requests)
	slices.SortStableFunc(pending, func(a, b types.Request) int {
		return cmp.Compare(a.Time, b.Time)
	})
	return &Dispatcher{car: car, pending: pending}
}

// Run ticks the car until no requests are left to release and the car has no pending work.
// An invalid request stops the run and is returned wrapping types.ErrInvalidRequest.
func (d *Dispatcher) Run() error {
	for d.HasWork() {
		if err := d.Step(); err != nil {
			return err
		}
	}
	logger.Get().Debug().
		Int("ticks", d.summary.Ticks).
		Int("boarded", d.summary.Boarded).
		Int("discharged", d.summary.Discharged).
		Msg("Dispatcher drained")
	return nil
}

func (d *Dispatcher) HasWork() bool {
	return len(d.pending) > 0 || d.car.HasPendingWork()
}

// Step releases due requests, ticks the car once and advances the clock.
func (d *Dispatcher) Step() error {
	if err := d.release(); err != nil {
		return err
	}
	for _, ev := range d.car.Tick(d.clock) {
		switch ev.Kind {
		case types.EV_Boarded:
			d.summary.Boarded++
		case types.EV_Discharged:
			d.summary.Discharged++
		}
	}
	d.summary.Ticks++
	d.clock++
	return nil
}

func (d *Dispatcher) release() error {
	released := false
	for len(d.pending) > 0 && d.pending[0].Time <= d.clock {
		req := d.pending[0]
		if err := d.car.EnqueuePickup(req); err != nil {
			return errors.Wrapf(err, "release %s at time %d", elev.FormatRequest(req), d.clock)
		}
		d.pending = d.pending[1:]
		d.summary.Released++
		released = true
		if d.dryRun {
			continue
		}
		logger.Get().Debug().Int("time", d.clock).Str("request", elev.FormatRequest(req)).Msg("Request released")
	}
	if !released || d.dryRun {
		return nil
	}
	if ev := logger.Get().Debug(); ev.Enabled() {
		ev.Int("time", d.clock).Int("ticks_to_idle", elev.TicksToIdle(d.car)).Msg("Car load")
	}
	return nil
}

func (d *Dispatcher) Clock() int {
	return d.clock
}

func (d *Dispatcher) Summary() Summary {
	return d.summary
}

// Preview dry-runs the rest of the schedule on a copy of the car and returns the time of the last tick
// the run would execute, or -1 if no tick remains. The dispatcher and its car are left untouched.
func (d *Dispatcher) Preview() (int, error) {
	sim := &Dispatcher{
		car:     d.car.Clone(elev.Discard),
		pending: slices.Clone(d.pending),
		clock:   d.clock,
		dryRun:  true,
	}
	last := -1
	for sim.HasWork() {
		if err := sim.Step(); err != nil {
			return 0, err
		}
		last = sim.clock - 1
	}
	return last, nil
}
