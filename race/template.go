package race

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/a-bouts/regatta/latlon"
	"github.com/a-bouts/regatta/layout"
)

// Template describes a new course in YAML. Fields left out keep the
// defaults of NewCourse; distances left out keep the sample distances of
// the layout.
//
//	name: Tuesday night
//	startFlag: {latitude: 41.777, longitude: -71.379}
//	numberOfBoats: 14
//	layout: {shape: trapezoid, start: downwind, finish: downwindReach}
//	distances: {upwind: 200, downwind: 200}
type Template struct {
	Name            string                                         `yaml:"name"`
	StartFlag       *latlon.LatLon                                 `yaml:"startFlag"`
	NumberOfBoats   int                                            `yaml:"numberOfBoats"`
	BoatLength      latlon.Distance                                `yaml:"boatLength"`
	WindHalfLife    *float64                                       `yaml:"windHalfLife"`
	TargetRadius    latlon.Distance                                `yaml:"targetRadius"`
	Layout          *layout.Settings                               `yaml:"layout"`
	Distances       map[layout.DistanceMeasurement]latlon.Distance `yaml:"distances"`
	CourseDirection *latlon.Direction                              `yaml:"courseDirection"`
}

func LoadTemplate(r io.Reader) (Template, error) {
	var t Template
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil && err != io.EOF {
		return Template{}, fmt.Errorf("course template: %w", err)
	}
	if t.StartFlag != nil && !t.StartFlag.IsValid() {
		return Template{}, fmt.Errorf("course template: invalid start flag %v", *t.StartFlag)
	}
	for m, d := range t.Distances {
		if !m.Valid() {
			return Template{}, fmt.Errorf("course template: unknown distance %q", string(m))
		}
		if d <= 0 {
			return Template{}, fmt.Errorf("course template: distance %s must be positive", m)
		}
	}
	return t, nil
}

func (t Template) Course() Course {
	c := NewCourse()
	if t.Name != "" {
		c.Name = t.Name
	}
	if t.StartFlag != nil {
		c.StartFlag = *t.StartFlag
	}
	if t.NumberOfBoats > 0 {
		c.NumberOfBoats = t.NumberOfBoats
	}
	if t.BoatLength > 0 {
		c.BoatLength = t.BoatLength
	}
	if t.WindHalfLife != nil {
		c.WindHalfLife = *t.WindHalfLife
	}
	if t.TargetRadius > 0 {
		c.TargetRadius = t.TargetRadius
	}

	l := c.Layout
	if t.Layout != nil {
		l = t.Layout.Layout()
	}
	c.Distances = l.SampleDistances
	for m, d := range t.Distances {
		c.SetDistance(m, d)
	}
	c.SetLayout(l)

	if t.CourseDirection != nil {
		c.LockCourseDirection(*t.CourseDirection)
	}
	return c
}
