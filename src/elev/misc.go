package elev

import (
	"fmt"
	"strings"

	"liftsim/src/types"

	"github.com/pkg/errors"
)

func FormatDir(dir types.Direction) string {
	switch dir {
	case types.D_Up:
		return "Up"
	case types.D_Down:
		return "Down"
	case types.D_Idle:
		return "Idle"
	}
	return fmt.Sprintf("Direction(%d)", int(dir))
}

// ParseDir accepts the names printed by FormatDir, in any case.
func ParseDir(s string) (types.Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up":
		return types.D_Up, nil
	case "down":
		return types.D_Down, nil
	case "idle":
		return types.D_Idle, nil
	}
	return types.D_Idle, errors.Errorf("unknown direction %q", s)
}

func FormatEvent(ev types.Event) string {
	switch ev.Kind {
	case types.EV_Boarded:
		return fmt.Sprintf("Time: %d - Picking up passengers at %d", ev.Time, ev.Floor)
	case types.EV_Discharged:
		return fmt.Sprintf("Time: %d - Dropping off passengers at %d", ev.Time, ev.Floor)
	case types.EV_State:
		return fmt.Sprintf("Time: %d - %s at %d", ev.Time, FormatDir(ev.Dir), ev.Floor)
	}
	return "Unknown"
}

func FormatRequest(req types.Request) string {
	return fmt.Sprintf("%s(%d->%d)@%d", FormatDir(req.Dir), req.Floor, req.Destination, req.Time)
}
