package layout

import (
	"fmt"

	"github.com/a-bouts/regatta/latlon"
)

// DistanceMeasurement names a distance the race committee can adjust. The
// string values are persisted and must never change.
type DistanceMeasurement string

const (
	// Upwind is the distance from the center of the course to the windward marks.
	Upwind DistanceMeasurement = "upwind"
	// Downwind is the distance from the center of the course to the leeward marks.
	Downwind DistanceMeasurement = "downwind"
	// Width separates the jibe marks from the upwind/downwind legs.
	Width DistanceMeasurement = "width"
	// TrapezoidDownwind is the length of the short downwind leg of a trapezoid.
	TrapezoidDownwind DistanceMeasurement = "trapezoidDownwind"
	// Offset is the distance from a mark to its offset mark.
	Offset DistanceMeasurement = "offset"
	// Gate is the distance between the two marks of a gate.
	Gate DistanceMeasurement = "gate"
	// Start is the distance from the start line to the main course.
	Start DistanceMeasurement = "start"
	// Finish is the distance from the main course to the finish line.
	Finish DistanceMeasurement = "finish"
	// FinishLine is the length of the finish line.
	FinishLine DistanceMeasurement = "finishLine"
)

var Measurements = []DistanceMeasurement{
	Upwind, Downwind, Width, TrapezoidDownwind, Offset, Gate, Start, Finish, FinishLine,
}

func (m DistanceMeasurement) Valid() bool {
	for _, x := range Measurements {
		if m == x {
			return true
		}
	}
	return false
}

type SliderSettings struct {
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Step float64 `json:"step"`
}

var (
	largeMeterSlider = SliderSettings{Min: 100, Max: 300, Step: 25}
	largeFootSlider  = SliderSettings{Min: 300, Max: 900, Step: 75}
	smallMeterSlider = SliderSettings{Min: 30, Max: 100, Step: 10}
	smallFootSlider  = SliderSettings{Min: 100, Max: 300, Step: 25}
)

// Slider returns the range a UI slider should offer for m in unit.
func (m DistanceMeasurement) Slider(unit latlon.DistanceUnit) SliderSettings {
	small := m == Offset || m == Gate || m == FinishLine
	switch {
	case small && unit == latlon.Feet:
		return smallFootSlider
	case small:
		return smallMeterSlider
	case unit == latlon.Feet:
		return largeFootSlider
	}
	return largeMeterSlider
}

// Distances holds a value in meters for every DistanceMeasurement.
type Distances struct {
	Upwind            latlon.Distance `json:"upwind" msgpack:"upwind" yaml:"upwind"`
	Downwind          latlon.Distance `json:"downwind" msgpack:"downwind" yaml:"downwind"`
	Width             latlon.Distance `json:"width" msgpack:"width" yaml:"width"`
	TrapezoidDownwind latlon.Distance `json:"trapezoidDownwind" msgpack:"trapezoidDownwind" yaml:"trapezoidDownwind"`
	Offset            latlon.Distance `json:"offset" msgpack:"offset" yaml:"offset"`
	Gate              latlon.Distance `json:"gate" msgpack:"gate" yaml:"gate"`
	Start             latlon.Distance `json:"start" msgpack:"start" yaml:"start"`
	Finish            latlon.Distance `json:"finish" msgpack:"finish" yaml:"finish"`
	FinishLine        latlon.Distance `json:"finishLine" msgpack:"finishLine" yaml:"finishLine"`
}

func (d *Distances) field(m DistanceMeasurement) *latlon.Distance {
	switch m {
	case Upwind:
		return &d.Upwind
	case Downwind:
		return &d.Downwind
	case Width:
		return &d.Width
	case TrapezoidDownwind:
		return &d.TrapezoidDownwind
	case Offset:
		return &d.Offset
	case Gate:
		return &d.Gate
	case Start:
		return &d.Start
	case Finish:
		return &d.Finish
	case FinishLine:
		return &d.FinishLine
	}
	panic(fmt.Sprintf("layout: unknown distance measurement %q", string(m)))
}

// Get panics on a measurement outside Measurements.
func (d Distances) Get(m DistanceMeasurement) latlon.Distance {
	return *d.field(m)
}

func (d *Distances) Set(m DistanceMeasurement, v latlon.Distance) {
	*d.field(m) = v
}

// CalculationKind tags the variant held by a DistanceCalculation.
type CalculationKind string

const (
	TotalBoatLengthsKind CalculationKind = "totalBoatLengths"
	AdjustableKind       CalculationKind = "adjustable"
)

// DistanceCalculation is either a multiple of the total length of the
// fleet, or a multiple of one of the adjustable Distances.
type DistanceCalculation struct {
	Kind        CalculationKind     `json:"kind" msgpack:"kind"`
	Measurement DistanceMeasurement `json:"measurement,omitempty" msgpack:"measurement,omitempty"`
	Times       float64             `json:"times" msgpack:"times"`
}

func TotalBoatLengths(times float64) DistanceCalculation {
	return DistanceCalculation{Kind: TotalBoatLengthsKind, Times: times}
}

func Adjustable(m DistanceMeasurement, times float64) DistanceCalculation {
	return DistanceCalculation{Kind: AdjustableKind, Measurement: m, Times: times}
}

// Context is what a DistanceCalculation and a Locus need to know about
// the course they are evaluated against.
type Context interface {
	CourseDirection() latlon.Direction
	NumberOfBoats() int
	BoatLength() latlon.Distance
	Distances() Distances
}

func (c DistanceCalculation) Evaluate(ctx Context) latlon.Distance {
	switch c.Kind {
	case TotalBoatLengthsKind:
		return c.Times * float64(ctx.NumberOfBoats()) * ctx.BoatLength()
	case AdjustableKind:
		return ctx.Distances().Get(c.Measurement) * c.Times
	}
	panic(fmt.Sprintf("layout: unknown distance calculation %q", string(c.Kind)))
}

func (c DistanceCalculation) String() string {
	if c.Kind == AdjustableKind {
		return fmt.Sprintf("%s×%g", c.Measurement, c.Times)
	}
	return fmt.Sprintf("boatLengths×%g", c.Times)
}
