package stack

import (
	"errors"
	"fmt"
	"math/rand"

	log "github.com/sirupsen/logrus"

	"github.com/a-bouts/regatta/latlon"
	"github.com/a-bouts/regatta/layout"
	"github.com/a-bouts/regatta/race"
)

var ErrBadValue = errors.New("bad command value")

// Command is an action and its value. See race.Action for the type of
// value each action takes.
type Command struct {
	Action race.Action
	Value  any
}

func valueOf[T any](cmd Command) (T, error) {
	v, ok := cmd.Value.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("%s: %w %T (%v), want %T", cmd.Action, ErrBadValue, cmd.Value, cmd.Value, zero)
	}
	return v, nil
}

func location(cmd Command) (latlon.LatLon, error) {
	at, err := valueOf[latlon.LatLon](cmd)
	if err == nil && !at.IsValid() {
		err = fmt.Errorf("%s: %w %v", cmd.Action, ErrBadValue, at)
	}
	return at, err
}

func positive[T int | float64](cmd Command) (T, error) {
	v, err := valueOf[T](cmd)
	if err == nil && v <= 0 {
		err = fmt.Errorf("%s: %w %v, must be positive", cmd.Action, ErrBadValue, v)
	}
	return v, err
}

// Perform applies cmd to the course. Undo and redo walk the history, every
// other action can be undone. Undo and redo with nothing to undo or redo
// are not errors.
func (l *Local) Perform(cmd Command) error {
	logger := log.WithFields(log.Fields{
		"course": l.current.Course.ID,
		"action": cmd.Action,
	})

	modify := func(action func(c *race.Course)) error {
		l.Modify(true, action)
		logger.Debug("Course modified")
		return nil
	}

	switch cmd.Action {
	case race.Reset:
		return modify(func(c *race.Course) {
			id, name := c.ID, c.Name
			*c = race.NewCourse()
			c.ID, c.Name = id, name
		})

	case race.LockCourseDirection:
		d, err := valueOf[latlon.Direction](cmd)
		if err != nil {
			return err
		}
		return modify(func(c *race.Course) { c.LockCourseDirection(d) })

	case race.UnlockCourseDirection:
		return modify(func(c *race.Course) { c.UnlockCourseDirection() })

	case race.SetNumberOfBoats:
		n, err := positive[int](cmd)
		if err != nil {
			return err
		}
		return modify(func(c *race.Course) { c.NumberOfBoats = n })

	case race.SetDistance:
		v, err := valueOf[race.NewDistanceValue](cmd)
		if err != nil {
			return err
		}
		if !v.Measurement.Valid() || v.Value <= 0 {
			return fmt.Errorf("%s: %w %s=%f", cmd.Action, ErrBadValue, v.Measurement, v.Value)
		}
		return modify(func(c *race.Course) { c.SetDistance(v.Measurement, v.Value) })

	case race.PullAllMarks:
		return modify(func(c *race.Course) { c.PullAllMarks() })

	case race.DropMark:
		at, err := location(cmd)
		if err != nil {
			return err
		}
		return modify(func(c *race.Course) { c.DropMark(at) })

	case race.PullNearestMark:
		at, err := location(cmd)
		if err != nil {
			return err
		}
		return modify(func(c *race.Course) { c.PullMark(at) })

	case race.SetStartFlag:
		at, err := location(cmd)
		if err != nil {
			return err
		}
		return modify(func(c *race.Course) { c.StartFlag = at })

	case race.SetFinishFlag:
		at, err := location(cmd)
		if err != nil {
			return err
		}
		return modify(func(c *race.Course) { c.SetFinishFlag(at) })

	case race.ClearFinishFlag:
		return modify(func(c *race.Course) { c.ClearFinishFlag() })

	case race.SetWindHalfLife:
		s, err := valueOf[float64](cmd)
		if err != nil {
			return err
		}
		return modify(func(c *race.Course) { c.WindHalfLife = s })

	case race.SetLayout:
		lay, err := valueOf[layout.Layout](cmd)
		if err != nil {
			return err
		}
		return modify(func(c *race.Course) { c.SetLayout(lay) })

	case race.Undo:
		if !l.Undo() {
			logger.Info("Nothing to undo")
		}
		return nil

	case race.Redo:
		if !l.Redo() {
			logger.Info("Nothing to redo")
		}
		return nil

	case race.DropRandomMarks:
		seed, err := valueOf[int64](cmd)
		if err != nil {
			return err
		}
		return modify(l.randomMarks(seed))

	case race.SetZoneSize:
		n, err := positive[int](cmd)
		if err != nil {
			return err
		}
		return modify(func(c *race.Course) { c.ZoneSize = n })

	case race.SetTargetRadius:
		r, err := positive[float64](cmd)
		if err != nil {
			return err
		}
		return modify(func(c *race.Course) { c.TargetRadius = r })

	case race.SetBoatLength:
		b, err := positive[float64](cmd)
		if err != nil {
			return err
		}
		return modify(func(c *race.Course) { c.BoatLength = b })
	}

	return fmt.Errorf("%w: %s", race.ErrUnknownAction, cmd.Action)
}

// randomMarks drops a mark within the target radius of every target that
// has none.
func (l *Local) randomMarks(seed int64) func(c *race.Course) {
	rng := rand.New(rand.NewSource(seed))
	radius := l.current.Course.TargetRadius
	var marks []latlon.LatLon
	for _, target := range l.current.UnfilledTargets(radius) {
		marks = append(marks, target.Location.Project(rng.Float64()*360, rng.Float64()*radius))
	}
	return func(c *race.Course) {
		for _, m := range marks {
			c.DropMark(m)
		}
	}
}
