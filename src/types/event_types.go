package types

type EventKind int

const (
	EV_Boarded EventKind = iota
	EV_Discharged
	EV_State
)

// Event is emitted by the car during a tick. Request is only set for EV_Boarded.
type Event struct {
	Kind    EventKind
	Time    int
	Floor   int
	Dir     Direction
	Request Request
}
