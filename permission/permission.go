// Package permission describes who may do what to a course. Enforcement is
// left to the server that owns the course.
package permission

import (
	"strings"

	"github.com/google/uuid"

	"github.com/a-bouts/regatta/race"
)

type Roles int

const (
	// Owner bought the course and can invite others.
	Owner Roles = 1 << iota
	// PRO is the principal race officer, in charge of layout, size and
	// direction.
	PRO
	// MarkBoat sets and pulls marks.
	MarkBoat
	// FinishBoat runs the finish line.
	FinishBoat
	// Observer can only watch.
	Observer
)

// Creator is given to the user who creates a course.
const Creator = Owner | PRO | MarkBoat | FinishBoat

type Permissions int

const (
	RenameCourse Permissions = 1 << iota
	EditLayout
	GrantRoles
	ViewCourse
	UndoRedo
	DeleteCourse
	DropMarks
	SetFinishFlag

	None Permissions = 0
)

var rolePermissions = []struct {
	role        Roles
	permissions Permissions
}{
	{Owner, RenameCourse | GrantRoles | ViewCourse | DeleteCourse},
	{PRO, EditLayout | ViewCourse | UndoRedo},
	{MarkBoat, ViewCourse | DropMarks},
	{FinishBoat, ViewCourse | SetFinishFlag},
	{Observer, ViewCourse},
}

func (r Roles) Contains(other Roles) bool {
	return r&other == other
}

// Permissions is the union of the permissions of every role in r.
func (r Roles) Permissions() Permissions {
	p := None
	for _, rp := range rolePermissions {
		if r.Contains(rp.role) {
			p |= rp.permissions
		}
	}
	return p
}

var roleNames = []struct {
	role Roles
	name string
}{
	{Owner, "owner"},
	{PRO, "PRO"},
	{MarkBoat, "markBoat"},
	{FinishBoat, "finishBoat"},
	{Observer, "observer"},
}

func (r Roles) String() string {
	var names []string
	for _, rn := range roleNames {
		if r.Contains(rn.role) {
			names = append(names, rn.name)
		}
	}
	return strings.Join(names, "|")
}

func (p Permissions) Contains(other Permissions) bool {
	return p&other == other
}

type User struct {
	ID    uuid.UUID `json:"id" msgpack:"id"`
	Name  string    `json:"name" msgpack:"name"`
	Roles Roles     `json:"roles" msgpack:"roles"`
}

func (u User) Can(p Permissions) bool {
	return u.Roles.Permissions().Contains(p)
}

// RequiredPermission is what a user needs to perform a.
func RequiredPermission(a race.Action) Permissions {
	switch a {
	case race.DropMark, race.PullNearestMark, race.PullAllMarks, race.DropRandomMarks:
		return DropMarks
	case race.SetFinishFlag, race.ClearFinishFlag:
		return SetFinishFlag
	case race.Undo, race.Redo:
		return UndoRedo
	}
	return EditLayout
}

// Allowed reports whether u may perform a.
func (u User) Allowed(a race.Action) bool {
	return u.Can(RequiredPermission(a))
}
