package race

import (
	"github.com/google/uuid"

	"github.com/a-bouts/regatta/latlon"
	"github.com/a-bouts/regatta/layout"
)

// SunfishLength is the default boat length in meters.
const SunfishLength latlon.Distance = 4.19

var DefaultStartFlag = latlon.LatLon{Lat: 41.777, Lon: -71.379}

// Course is everything the race committee decides about a race course.
type Course struct {
	ID   uuid.UUID
	Name string

	StartFlag  latlon.LatLon
	FinishFlag *latlon.LatLon

	// WindHalfLife is in seconds. Zero or less uses only the latest wind.
	WindHalfLife float64

	NumberOfBoats int
	BoatLength    latlon.Distance

	// ZoneSize is in boat lengths.
	ZoneSize int

	// TargetRadius is how close to its target a mark must be.
	TargetRadius latlon.Distance

	Distances layout.Distances
	Layout    layout.Layout

	// Marks have been dropped on the water. No two are equal.
	Marks []latlon.LatLon

	// LockedCourseDirection overrides the wind when not nil.
	LockedCourseDirection *latlon.Direction
}

func NewCourse() Course {
	return Course{
		ID:            uuid.New(),
		Name:          "New Course",
		StartFlag:     DefaultStartFlag,
		WindHalfLife:  300,
		NumberOfBoats: 10,
		BoatLength:    SunfishLength,
		ZoneSize:      layout.Triangle.ZoneSize,
		TargetRadius:  10,
		Distances:     layout.Triangle.SampleDistances,
		Layout:        layout.Triangle,
	}
}

func (c Course) LengthOfStartLine() latlon.Distance {
	return float64(c.NumberOfBoats) * c.BoatLength * 1.5
}

// DropMark adds a mark at at, unless there already is one.
func (c *Course) DropMark(at latlon.LatLon) {
	for _, m := range c.Marks {
		if m == at {
			return
		}
	}
	c.Marks = append(c.Marks, at)
}

// PullMark removes the mark nearest to at.
func (c *Course) PullMark(at latlon.LatLon) {
	i, ok := c.nearestMarkIndex(at)
	if !ok {
		return
	}
	c.Marks = append(c.Marks[:i:i], c.Marks[i+1:]...)
}

// PullAllMarks clears the course, finish flag included.
func (c *Course) PullAllMarks() {
	c.Marks = nil
	c.FinishFlag = nil
}

func (c *Course) SetFinishFlag(at latlon.LatLon) {
	c.FinishFlag = &at
}

func (c *Course) ClearFinishFlag() {
	c.FinishFlag = nil
}

// SetLayout also adopts the zone size of l. The digital N course starts and
// finishes halfway between its windward and leeward marks.
func (c *Course) SetLayout(l layout.Layout) {
	c.Layout = l
	c.ZoneSize = l.ZoneSize
	if l.IsDigitalN() {
		average := (c.Distances.Upwind + c.Distances.Downwind) / 2
		c.Distances.Start = average
		c.Distances.Finish = average
	}
}

func (c *Course) SetDistance(m layout.DistanceMeasurement, d latlon.Distance) {
	c.Distances.Set(m, d)
}

func (c *Course) LockCourseDirection(d latlon.Direction) {
	d = latlon.Wrap360(d)
	c.LockedCourseDirection = &d
}

func (c *Course) UnlockCourseDirection() {
	c.LockedCourseDirection = nil
}

func (c Course) nearestMarkIndex(to latlon.LatLon) (int, bool) {
	index := -1
	var nearest latlon.Distance
	for i, m := range c.Marks {
		if d := to.Distance(m); index < 0 || d < nearest {
			index, nearest = i, d
		}
	}
	return index, index >= 0
}

// NearestMark returns the first of the marks closest to to.
func (c Course) NearestMark(to latlon.LatLon) (latlon.LatLon, bool) {
	i, ok := c.nearestMarkIndex(to)
	if !ok {
		return latlon.LatLon{}, false
	}
	return c.Marks[i], true
}
