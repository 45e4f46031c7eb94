// State types are defined in elev package to make method receivers possible in car.go and fsm.go.
package elev

import "liftsim/src/types"

// CarState is the copyable part of the car.
type CarState struct {
	NumFloors    int
	Floor        int
	Dir          types.Direction
	Destinations FloorSet
	Pickups      []types.Request // FIFO in release order
}

// Car is the single elevator car. It is owned by one dispatcher and is not safe for concurrent use.
type Car struct {
	CarState
	sink Sink
}

// Sink receives the events of a tick in emission order.
type Sink interface {
	Report(ev types.Event)
}

type discard struct{}

func (discard) Report(types.Event) {}

// Discard is a Sink that drops every event.
var Discard Sink = discard{}
