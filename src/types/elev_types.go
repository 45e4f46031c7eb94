package types

// Direction is the travel direction of the car. The value is the floor delta of one step.
type Direction int

const (
	D_Down Direction = -1
	D_Idle Direction = 0
	D_Up   Direction = 1
)

// Request is a pickup demand released to the car at Time.
type Request struct {
	Time        int
	Floor       int
	Dir         Direction
	Destination int
}
