package elev

import (
	"liftsim/src/types"

	"github.com/pkg/errors"
)

// NewCar creates an idle car at startFloor. A nil sink drops all events.
func NewCar(numFloors int, startFloor int, sink Sink) (*Car, error) {
	if numFloors < 1 {
		return nil, errors.Wrapf(types.ErrInvalidRequest, "floor count %d", numFloors)
	}
	if startFloor < 1 || startFloor > numFloors {
		return nil, errors.Wrapf(types.ErrInvalidRequest, "start floor %d outside [1, %d]", startFloor, numFloors)
	}
	if sink == nil {
		sink = Discard
	}
	return &Car{
		CarState: CarState{
			NumFloors:    numFloors,
			Floor:        startFloor,
			Dir:          types.D_Idle,
			Destinations: newFloorSet(numFloors),
		},
		sink: sink,
	}, nil
}

func (car *Car) HasPendingWork() bool {
	return !car.Destinations.Empty() || len(car.Pickups) > 0
}

// HasPickupHere reports whether the head pickup waits at the current floor.
func (car *Car) HasPickupHere() bool {
	return len(car.Pickups) > 0 && car.Pickups[0].Floor == car.Floor
}

func (car *Car) HasDischargeHere() bool {
	return car.Destinations.Has(car.Floor)
}

// EnqueuePickup appends req to the pickup queue.
// The origin and destination must be inside the building and differ, and the direction must be Up or Down.
func (car *Car) EnqueuePickup(req types.Request) error {
	if err := car.ValidateRequest(req); err != nil {
		return err
	}
	car.Pickups = append(car.Pickups, req)
	return nil
}

// EnqueueDestination marks floor as a discharge stop. Adding a floor twice has no effect.
func (car *Car) EnqueueDestination(floor int) error {
	if !car.inRange(floor) {
		return errors.Wrapf(types.ErrInvalidRequest, "destination floor %d outside [1, %d]", floor, car.NumFloors)
	}
	car.Destinations.Add(floor)
	return nil
}

func (car *Car) ValidateRequest(req types.Request) error {
	switch {
	case req.Time < 0:
		return errors.Wrapf(types.ErrInvalidRequest, "release time %d", req.Time)
	case !car.inRange(req.Floor):
		return errors.Wrapf(types.ErrInvalidRequest, "origin floor %d outside [1, %d]", req.Floor, car.NumFloors)
	case !car.inRange(req.Destination):
		return errors.Wrapf(types.ErrInvalidRequest, "destination floor %d outside [1, %d]", req.Destination, car.NumFloors)
	case req.Dir != types.D_Up && req.Dir != types.D_Down:
		return errors.Wrapf(types.ErrInvalidRequest, "direction %s", FormatDir(req.Dir))
	case req.Floor == req.Destination:
		// A ride to the same floor can turn the car past the edge floors.
		return errors.Wrapf(types.ErrInvalidRequest, "destination %d equals origin", req.Destination)
	}
	return nil
}

func (car *Car) inRange(floor int) bool {
	return floor >= 1 && floor <= car.NumFloors
}

func dirTo(from, to int) types.Direction {
	if from < to {
		return types.D_Up
	}
	if from > to {
		return types.D_Down
	}
	return types.D_Idle
}
