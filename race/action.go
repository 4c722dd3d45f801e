package race

import (
	"fmt"

	"github.com/a-bouts/regatta/latlon"
	"github.com/a-bouts/regatta/layout"
)

// Action is a change the race committee can make to a course. The values
// are persisted and must never change.
type Action int16

const (
	// Reset restores the defaults, keeping the id and name.
	Reset Action = iota
	// LockCourseDirection takes a latlon.Direction.
	LockCourseDirection
	UnlockCourseDirection
	// SetNumberOfBoats takes an int.
	SetNumberOfBoats
	// SetDistance takes a NewDistanceValue.
	SetDistance
	// PullAllMarks also clears the finish flag.
	PullAllMarks
	// DropMark takes a latlon.LatLon.
	DropMark
	// PullNearestMark takes a latlon.LatLon.
	PullNearestMark
	// SetStartFlag takes a latlon.LatLon.
	SetStartFlag
	// SetFinishFlag takes a latlon.LatLon.
	SetFinishFlag
	ClearFinishFlag
	// SetWindHalfLife takes seconds as a float64.
	SetWindHalfLife
	// SetLayout takes a layout.Layout.
	SetLayout
	Undo
	Redo
	// DropRandomMarks takes an int64 seed. It is a testing aid.
	DropRandomMarks
	// SetZoneSize takes boat lengths as an int.
	SetZoneSize
	// SetTargetRadius takes meters as a float64.
	SetTargetRadius
	// SetBoatLength takes meters as a float64.
	SetBoatLength
)

var actionNames = [...]string{
	Reset:                 "reset",
	LockCourseDirection:   "lockCourseDirection",
	UnlockCourseDirection: "unlockCourseDirection",
	SetNumberOfBoats:      "setNumberOfBoats",
	SetDistance:           "setDistance",
	PullAllMarks:          "pullAllMarks",
	DropMark:              "dropMark",
	PullNearestMark:       "pullNearestMark",
	SetStartFlag:          "setStartFlag",
	SetFinishFlag:         "setFinishFlag",
	ClearFinishFlag:       "clearFinishFlag",
	SetWindHalfLife:       "setWindHalfLife",
	SetLayout:             "setLayout",
	Undo:                  "undo",
	Redo:                  "redo",
	DropRandomMarks:       "dropRandomMarks",
	SetZoneSize:           "setZoneSize",
	SetTargetRadius:       "setTargetRadius",
	SetBoatLength:         "setBoatLength",
}

// Actions lists every action in code order.
func Actions() []Action {
	actions := make([]Action, len(actionNames))
	for i := range actionNames {
		actions[i] = Action(i)
	}
	return actions
}

func (a Action) Valid() bool {
	return a >= 0 && int(a) < len(actionNames)
}

func (a Action) String() string {
	if !a.Valid() {
		return fmt.Sprintf("Action(%d)", int16(a))
	}
	return actionNames[a]
}

func ParseAction(name string) (Action, error) {
	for i, n := range actionNames {
		if n == name {
			return Action(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAction, name)
}

// NewDistanceValue is the value of a SetDistance action.
type NewDistanceValue struct {
	Measurement layout.DistanceMeasurement `json:"measurement" msgpack:"measurement"`
	Value       latlon.Distance            `json:"value" msgpack:"value"`
}
