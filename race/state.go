package race

import (
	"context"
	"math"

	"github.com/a-bouts/regatta/latlon"
	"github.com/a-bouts/regatta/layout"
	"github.com/a-bouts/regatta/wind"
)

// State is a course together with the wind it is laid in.
type State struct {
	Course      Course
	WindHistory wind.History
}

var _ layout.Context = State{}

func NewState(c Course) State {
	return State{Course: c}
}

// CourseDirection is the locked direction if there is one, else the
// weighted average of the wind history, else north.
func (s State) CourseDirection() latlon.Direction {
	if s.Course.LockedCourseDirection != nil {
		return *s.Course.LockedCourseDirection
	}
	if d, ok := s.WindHistory.WeightedAverageDirection(s.Course.WindHalfLife); ok {
		return d
	}
	return 0
}

func (s State) NumberOfBoats() int                 { return s.Course.NumberOfBoats }
func (s State) BoatLength() latlon.Distance        { return s.Course.BoatLength }
func (s State) Distances() layout.Distances        { return s.Course.Distances }
func (s State) LengthOfStartLine() latlon.Distance { return s.Course.LengthOfStartLine() }

func (s State) ForWeightedWindInformation(action func(w wind.Information, weight float64)) {
	s.WindHistory.ForWeighted(s.Course.WindHalfLife, action)
}

// WindShift is the angle between the latest wind and the course direction,
// positive when the wind has veered.
func (s State) WindShift() (latlon.Direction, bool) {
	latest, ok := s.WindHistory.Latest()
	if !ok {
		return 0, false
	}
	return wind.Twa(s.CourseDirection(), latest.Direction), true
}

// PositionTargetsFrom lays the course out from origin, which stands for
// the start flag. It is used to draw the course in planar coordinates.
func PositionTargetsFrom[L latlon.Location[L]](s State, origin L,
	action func(layout.MarkRole, L), distances func(layout.DistanceCalculation, L, L)) {
	layout.PositionTargets(s.Course.Layout.Loci, s, origin, action, distances)
}

func (s State) PositionTargets(action func(layout.MarkRole, latlon.LatLon)) {
	layout.PositionTargets(s.Course.Layout.Loci, s, s.Course.StartFlag, action, nil)
}

func (s State) PositionTargetsContext(ctx context.Context, action func(context.Context, layout.MarkRole, latlon.LatLon) error) error {
	return layout.PositionTargetsContext(ctx, s.Course.Layout.Loci, s, s.Course.StartFlag, action, nil)
}

type TargetLocation = layout.TargetLocation[latlon.LatLon]

func (s State) Targets() []TargetLocation {
	return layout.Targets(s.Course.Layout.Loci, s, s.Course.StartFlag)
}

func (s State) TargetCoordinate(role layout.MarkRole) (location latlon.LatLon, ok bool) {
	s.PositionTargets(func(r layout.MarkRole, here latlon.LatLon) {
		if r == role {
			location, ok = here, true
		}
	})
	return location, ok
}

// Center is where wind arrows point to: the course center of the layout,
// or the start flag if it has none.
func (s State) Center() latlon.LatLon {
	if center, ok := layout.LocateCenter(s.Course.Layout.Loci, s, s.Course.StartFlag); ok {
		return center
	}
	return s.Course.StartFlag
}

// NearestTarget returns the first of the mark targets closest to mark.
// Flags are not targets.
func (s State) NearestTarget(mark latlon.LatLon) (TargetLocation, bool) {
	var nearest TargetLocation
	distance := math.Inf(1)
	s.PositionTargets(func(role layout.MarkRole, here latlon.LatLon) {
		if !role.IsMark() {
			return
		}
		if d := mark.Distance(here); d < distance {
			nearest = TargetLocation{Role: role, Location: here}
			distance = d
		}
	})
	return nearest, !math.IsInf(distance, 1)
}

// CurrentRole is the role of the target nearest to mark, provided mark is
// also the mark nearest to that target.
func (s State) CurrentRole(mark latlon.LatLon) layout.MarkRole {
	target, ok := s.NearestTarget(mark)
	if !ok {
		return layout.GenericMark
	}
	nearest, ok := s.Course.NearestMark(target.Location)
	if !ok || nearest != mark {
		return layout.GenericMark
	}
	return target.Role
}

// MarkFilling returns the mark whose current role is role.
func (s State) MarkFilling(role layout.MarkRole) (latlon.LatLon, bool) {
	target, ok := s.TargetCoordinate(role)
	if !ok {
		return latlon.LatLon{}, false
	}
	mark, ok := s.Course.NearestMark(target)
	if !ok || s.CurrentRole(mark) != role {
		return latlon.LatLon{}, false
	}
	return mark, true
}

// NextTarget returns the target closest to markBoat that has no mark
// within closeEnough of it. extraMark, when not nil, counts as a mark.
// Flags are never returned.
func (s State) NextTarget(markBoat latlon.LatLon, closeEnough latlon.Distance, extraMark *latlon.LatLon) (layout.MarkRole, bool) {
	marks := s.Course.Marks
	if extraMark != nil {
		marks = append(marks[:len(marks):len(marks)], *extraMark)
	}

	var next layout.MarkRole
	distance := math.Inf(1)
	s.PositionTargets(func(role layout.MarkRole, here latlon.LatLon) {
		if !role.IsMark() {
			return
		}
		for _, m := range marks {
			if m.Distance(here) <= closeEnough {
				return
			}
		}
		if d := markBoat.Distance(here); d < distance {
			next, distance = role, d
		}
	})
	return next, next != ""
}

// PairedTarget is NextTarget without an extra mark.
func (s State) PairedTarget(markBoat latlon.LatLon, closeEnough latlon.Distance) (layout.MarkRole, bool) {
	return s.NextTarget(markBoat, closeEnough, nil)
}

// UnfilledTargets lists the mark targets with no mark within closeEnough.
func (s State) UnfilledTargets(closeEnough latlon.Distance) []TargetLocation {
	var unfilled []TargetLocation
	s.PositionTargets(func(role layout.MarkRole, here latlon.LatLon) {
		if !role.IsMark() {
			return
		}
		for _, m := range s.Course.Marks {
			if m.Distance(here) <= closeEnough {
				return
			}
		}
		unfilled = append(unfilled, TargetLocation{Role: role, Location: here})
	})
	return unfilled
}

// MaximumProjectedDistance is how far from origin along bearing the
// furthest mark or target zone reaches. Angles are measured from the start
// flag.
func (s State) MaximumProjectedDistance(origin latlon.LatLon, bearing latlon.Direction) latlon.Distance {
	var furthest latlon.Distance
	project := func(to latlon.LatLon) latlon.Distance {
		angle := s.Course.StartFlag.Bearing(to) - bearing
		return origin.Distance(to) * math.Cos(angle*math.Pi/180)
	}
	for _, m := range s.Course.Marks {
		if d := project(m); d > furthest {
			furthest = d
		}
	}
	s.PositionTargets(func(_ layout.MarkRole, here latlon.LatLon) {
		if d := project(here) + s.Course.TargetRadius; d > furthest {
			furthest = d
		}
	})
	return furthest
}

// EnclosingRegion bounds the flags, the target zones and the marks.
func (s State) EnclosingRegion() latlon.Region {
	r := latlon.Undefined.Enclosing(s.Course.StartFlag)
	if s.Course.FinishFlag != nil {
		r = r.Enclosing(*s.Course.FinishFlag)
	}
	s.PositionTargets(func(_ layout.MarkRole, here latlon.LatLon) {
		r = r.EnclosingRegion(latlon.RegionAround(here, s.Course.TargetRadius, s.Course.TargetRadius))
	})
	for _, m := range s.Course.Marks {
		r = r.Enclosing(m)
	}
	return r
}
