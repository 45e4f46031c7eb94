package dispatcher

import (
	"liftsim/src/elev"
	"liftsim/src/types"
)

// Dispatcher owns the clock and the car, and releases requests to the car when their time has come.
type Dispatcher struct {
	car     *elev.Car
	pending []types.Request // sorted by Time, input order on ties
	clock   int
	summary Summary
	dryRun  bool
}

// Summary counts what happened during a run.
type Summary struct {
	Ticks      int
	Released   int
	Boarded    int
	Discharged int
}
