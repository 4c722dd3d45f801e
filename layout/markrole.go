package layout

// MarkRole identifies a position on the course. The string values are
// persisted and must never change.
type MarkRole string

const (
	// StartFlag is the committee boat end of the start line.
	StartFlag MarkRole = "startFlag"
	// StartPin is the pin end of the start line.
	StartPin MarkRole = "startPin"
	// FinishFlag is the committee boat end of the finish line.
	FinishFlag MarkRole = "finishFlag"
	// FinishPin is the pin end of the finish line.
	FinishPin MarkRole = "finishPin"

	Windward         MarkRole = "windward"
	WindwardOffset   MarkRole = "windwardOffset"
	Leeward          MarkRole = "leeward"
	LeewardOffset    MarkRole = "leewardOffset"
	LeewardGateLeft  MarkRole = "leewardGateLeft"
	LeewardGateRight MarkRole = "leewardGateRight"
	Jibe             MarkRole = "jibe"
	WindwardJibe     MarkRole = "windwardJibe"
	LeewardJibe      MarkRole = "leewardJibe"

	// GenericMark is a mark dropped on the water that has not been matched
	// to a target. Layouts never use it.
	GenericMark MarkRole = "genericMark"
)

var MarkRoles = []MarkRole{
	StartFlag, StartPin, FinishFlag, FinishPin,
	Windward, WindwardOffset, Leeward, LeewardOffset,
	LeewardGateLeft, LeewardGateRight,
	Jibe, WindwardJibe, LeewardJibe,
	GenericMark,
}

func (r MarkRole) IsFlag() bool {
	return r == StartFlag || r == FinishFlag
}

func (r MarkRole) IsMark() bool {
	return !r.IsFlag()
}

func (r MarkRole) Valid() bool {
	for _, role := range MarkRoles {
		if r == role {
			return true
		}
	}
	return false
}
