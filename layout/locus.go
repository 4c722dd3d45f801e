package layout

import (
	"context"
	"errors"

	"github.com/a-bouts/regatta/latlon"
)

// Locus is a point of interest on the course, placed relative to its
// parent. A locus may carry a mark, or only serve as the origin of its
// children. The roots of a layout are placed relative to the start flag.
type Locus struct {
	// Bearing from the parent, relative to the course direction: 0 is
	// windward, 90 course right, -90 course left, 180 leeward.
	Bearing latlon.Direction `json:"bearing" msgpack:"bearing"`

	Distance DistanceCalculation `json:"distance" msgpack:"distance"`

	// Mark is empty when no mark is placed at this locus.
	Mark MarkRole `json:"mark,omitempty" msgpack:"mark,omitempty"`

	IsCourseCenter bool `json:"isCourseCenter,omitempty" msgpack:"isCourseCenter,omitempty"`

	Loci Loci `json:"loci,omitempty" msgpack:"loci,omitempty"`
}

type Loci []Locus

// ForEachMark visits every mark role in pre-order.
func (loci Loci) ForEachMark(action func(MarkRole)) {
	for _, l := range loci {
		if l.Mark != "" {
			action(l.Mark)
		}
		l.Loci.ForEachMark(action)
	}
}

// ForEachDistanceMeasurement visits the measurement of every adjustable
// distance in pre-order, duplicates included.
func (loci Loci) ForEachDistanceMeasurement(action func(DistanceMeasurement)) {
	for _, l := range loci {
		if l.Distance.Kind == AdjustableKind {
			action(l.Distance.Measurement)
		}
		l.Loci.ForEachDistanceMeasurement(action)
	}
}

// Marks lists the mark roles in traversal order.
func (loci Loci) Marks() []MarkRole {
	var marks []MarkRole
	loci.ForEachMark(func(m MarkRole) { marks = append(marks, m) })
	return marks
}

// Measurements lists each adjustable measurement once, in first-use order.
func (loci Loci) Measurements() []DistanceMeasurement {
	seen := make(map[DistanceMeasurement]bool)
	var ms []DistanceMeasurement
	loci.ForEachDistanceMeasurement(func(m DistanceMeasurement) {
		if !seen[m] {
			seen[m] = true
			ms = append(ms, m)
		}
	})
	return ms
}

// walk evaluates the tree depth first, pre-order. Every child is placed
// relative to the evaluated position of its parent.
func walk[L latlon.Location[L]](loci Loci, ctx Context, direction latlon.Direction, from L,
	visit func(l *Locus, from, here L) error) error {
	for i := range loci {
		l := &loci[i]
		here := from.Project(direction+l.Bearing, l.Distance.Evaluate(ctx))
		if err := visit(l, from, here); err != nil {
			return err
		}
		if err := walk(l.Loci, ctx, direction, here, visit); err != nil {
			return err
		}
	}
	return nil
}

// PositionTargets places every locus of the tree starting at origin, calling
// action for each mark and, when not nil, distances for each leg.
func PositionTargets[L latlon.Location[L]](loci Loci, ctx Context, origin L,
	action func(MarkRole, L), distances func(DistanceCalculation, L, L)) {
	walk(loci, ctx, ctx.CourseDirection(), origin, func(l *Locus, from, here L) error {
		if distances != nil {
			distances(l.Distance, from, here)
		}
		if l.Mark != "" {
			action(l.Mark, here)
		}
		return nil
	})
}

// PositionTargetsContext is PositionTargets for callbacks that may block,
// for instance while waiting on a UI update. The traversal order is the
// same; the first error returned by a callback stops it.
func PositionTargetsContext[L latlon.Location[L]](c context.Context, loci Loci, ctx Context, origin L,
	action func(context.Context, MarkRole, L) error, distances func(context.Context, DistanceCalculation, L, L) error) error {
	return walk(loci, ctx, ctx.CourseDirection(), origin, func(l *Locus, from, here L) error {
		if distances != nil {
			if err := distances(c, l.Distance, from, here); err != nil {
				return err
			}
		}
		if l.Mark != "" {
			return action(c, l.Mark, here)
		}
		return nil
	})
}

// TargetLocation pairs a mark role with its computed position.
type TargetLocation[L any] struct {
	Role     MarkRole `json:"role"`
	Location L        `json:"location"`
}

// Targets collects every mark target in traversal order.
func Targets[L latlon.Location[L]](loci Loci, ctx Context, origin L) []TargetLocation[L] {
	var targets []TargetLocation[L]
	PositionTargets(loci, ctx, origin, func(m MarkRole, here L) {
		targets = append(targets, TargetLocation[L]{Role: m, Location: here})
	}, nil)
	return targets
}

var errStop = errors.New("layout: stop walk")

// LocateCenter returns the position of the first locus flagged as the
// course center. ok is false when the tree has none.
func LocateCenter[L latlon.Location[L]](loci Loci, ctx Context, origin L) (center L, ok bool) {
	err := walk(loci, ctx, ctx.CourseDirection(), origin, func(l *Locus, from, here L) error {
		if l.IsCourseCenter {
			center = here
			return errStop
		}
		return nil
	})
	return center, err == errStop
}
