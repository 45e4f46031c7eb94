// Contains the per-tick state machine of the car.
package elev

import (
	"fmt"

	"liftsim/src/types"
)

// Tick runs one transition of the car at time now and returns the emitted events.
// The events are delivered to the sink in the same order, each after its state change:
//  1. board the head pickup if it waits here
//  2. discharge if this floor is a destination
//  3. choose direction and move at most one floor
//  4. board every other pickup here travelling the same way as the head and the car
//  5. go idle if no work remains
//  6. report state
func (car *Car) Tick(now int) []types.Event {
	var events []types.Event
	emit := func(kind types.EventKind, req types.Request) {
		ev := types.Event{Kind: kind, Time: now, Floor: car.Floor, Dir: car.Dir, Request: req}
		events = append(events, ev)
		car.sink.Report(ev)
	}

	if car.HasPickupHere() {
		req := car.popPickup(0)
		car.Dir = req.Dir
		car.Destinations.Add(req.Destination)
		emit(types.EV_Boarded, req)
	}

	if car.HasDischargeHere() {
		car.Destinations.Remove(car.Floor)
		emit(types.EV_Discharged, types.Request{})
	}

	car.move()

	for i := 0; i < len(car.Pickups); {
		req := car.Pickups[i]
		// The head is read again for every candidate since boarding the head replaces it.
		head := car.Pickups[0]
		if req.Floor == car.Floor && req.Dir == head.Dir && req.Dir == car.Dir {
			car.popPickup(i)
			car.Destinations.Add(req.Destination)
			emit(types.EV_Boarded, req)
			continue
		}
		i++
	}

	if !car.HasPendingWork() {
		car.Dir = types.D_Idle
	}

	emit(types.EV_State, types.Request{})
	car.checkInvariants()
	return events
}

// move takes the directional decision of a tick.
//   - Idle: head towards the head pickup, else towards the destinations.
//   - Up/Down: keep going while work lies ahead, else turn around or go idle.
func (car *Car) move() {
	switch car.Dir {
	case types.D_Idle:
		switch {
		case len(car.Pickups) > 0:
			if dir := dirTo(car.Floor, car.Pickups[0].Floor); dir != types.D_Idle {
				car.step(dir)
			}
		case car.Destinations.AnyAbove(car.Floor):
			car.step(types.D_Up)
		case car.Destinations.AnyBelow(car.Floor):
			car.step(types.D_Down)
		}
	case types.D_Up, types.D_Down:
		switch {
		case car.workAhead(car.Dir):
			car.Floor += int(car.Dir)
		case car.HasPendingWork():
			car.step(-car.Dir)
		default:
			car.Dir = types.D_Idle
		}
	}
}

func (car *Car) step(dir types.Direction) {
	car.Dir = dir
	car.Floor += int(dir)
}

// workAhead reports whether a destination or the head pickup lies beyond the current floor in dir.
func (car *Car) workAhead(dir types.Direction) bool {
	headAhead := len(car.Pickups) > 0 && dirTo(car.Floor, car.Pickups[0].Floor) == dir
	if dir == types.D_Up {
		return car.Destinations.AnyAbove(car.Floor) || headAhead
	}
	return car.Destinations.AnyBelow(car.Floor) || headAhead
}

func (car *Car) popPickup(i int) types.Request {
	req := car.Pickups[i]
	car.Pickups = append(car.Pickups[:i], car.Pickups[i+1:]...)
	return req
}

func (car *Car) checkInvariants() {
	if car.Floor < 1 || car.Floor > car.NumFloors {
		panic(fmt.Errorf("elev: floor %d outside [1, %d]", car.Floor, car.NumFloors))
	}
	if (car.Dir == types.D_Idle) == car.HasPendingWork() {
		panic(fmt.Errorf("elev: direction %s with pending work %t", FormatDir(car.Dir), car.HasPendingWork()))
	}
}
