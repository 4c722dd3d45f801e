package race

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/a-bouts/regatta/latlon"
	"github.com/a-bouts/regatta/layout"
	"github.com/a-bouts/regatta/wind"
)

// CourseRecord is the persisted form of a Course. The layout is stored by
// id and resolved with a layout.Provider when the record is loaded.
type CourseRecord struct {
	ID                    uuid.UUID         `json:"id" msgpack:"id"`
	Name                  string            `json:"name" msgpack:"name"`
	StartFlag             latlon.LatLon     `json:"startFlag" msgpack:"startFlag"`
	FinishFlag            *latlon.LatLon    `json:"finishFlag,omitempty" msgpack:"finishFlag,omitempty"`
	WindHalfLife          float64           `json:"windHalfLife" msgpack:"windHalfLife"`
	NumberOfBoats         int               `json:"numberOfBoats" msgpack:"numberOfBoats"`
	BoatLength            latlon.Distance   `json:"boatLength" msgpack:"boatLength"`
	ZoneSize              int               `json:"zoneSize" msgpack:"zoneSize"`
	TargetRadius          latlon.Distance   `json:"targetRadius" msgpack:"targetRadius"`
	Distances             layout.Distances  `json:"distances" msgpack:"distances"`
	LayoutID              uuid.UUID         `json:"layout" msgpack:"layout"`
	Marks                 []latlon.LatLon   `json:"marks" msgpack:"marks"`
	LockedCourseDirection *latlon.Direction `json:"lockedCourseDirection,omitempty" msgpack:"lockedCourseDirection,omitempty"`
}

func (c Course) Record() CourseRecord {
	return CourseRecord{
		ID:                    c.ID,
		Name:                  c.Name,
		StartFlag:             c.StartFlag,
		FinishFlag:            copyOf(c.FinishFlag),
		WindHalfLife:          c.WindHalfLife,
		NumberOfBoats:         c.NumberOfBoats,
		BoatLength:            c.BoatLength,
		ZoneSize:              c.ZoneSize,
		TargetRadius:          c.TargetRadius,
		Distances:             c.Distances,
		LayoutID:              c.Layout.ID,
		Marks:                 append([]latlon.LatLon(nil), c.Marks...),
		LockedCourseDirection: copyOf(c.LockedCourseDirection),
	}
}

// Course rebuilds the course. It fails with ErrUnknownLayout if p does not
// know the layout.
func (r CourseRecord) Course(p layout.Provider) (Course, error) {
	l, ok := p.FindLayout(r.LayoutID)
	if !ok {
		return Course{}, fmt.Errorf("course %s: %w %s", r.ID, ErrUnknownLayout, r.LayoutID)
	}
	return Course{
		ID:                    r.ID,
		Name:                  r.Name,
		StartFlag:             r.StartFlag,
		FinishFlag:            copyOf(r.FinishFlag),
		WindHalfLife:          r.WindHalfLife,
		NumberOfBoats:         r.NumberOfBoats,
		BoatLength:            r.BoatLength,
		ZoneSize:              r.ZoneSize,
		TargetRadius:          r.TargetRadius,
		Distances:             r.Distances,
		Layout:                l,
		Marks:                 append([]latlon.LatLon(nil), r.Marks...),
		LockedCourseDirection: copyOf(r.LockedCourseDirection),
	}, nil
}

type StateRecord struct {
	Course      CourseRecord `json:"course" msgpack:"course"`
	WindHistory wind.History `json:"windHistory" msgpack:"windHistory"`
}

func (s State) Record() StateRecord {
	return StateRecord{
		Course:      s.Course.Record(),
		WindHistory: append(wind.History(nil), s.WindHistory...),
	}
}

func (r StateRecord) State(p layout.Provider) (State, error) {
	c, err := r.Course.Course(p)
	if err != nil {
		return State{}, err
	}
	return State{Course: c, WindHistory: append(wind.History(nil), r.WindHistory...)}, nil
}

func copyOf[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
