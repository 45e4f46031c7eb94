package elev

import "github.com/tiendc/go-deepcopy"

// State returns a deep copy of the car state.
func (car *Car) State() CarState {
	var state CarState
	if err := deepcopy.Copy(&state, &car.CarState); err != nil {
		panic(err)
	}
	return state
}

// Clone returns an independent car with the same state reporting to sink.
func (car *Car) Clone(sink Sink) *Car {
	if sink == nil {
		sink = Discard
	}
	return &Car{CarState: car.State(), sink: sink}
}

// TicksToIdle simulates the car without new requests and returns the number of ticks until it is idle.
func TicksToIdle(car *Car) int {
	simCar := car.Clone(Discard)
	ticks := 0
	for simCar.HasPendingWork() {
		simCar.Tick(ticks)
		ticks++
	}
	return ticks
}

