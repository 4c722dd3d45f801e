package latlon

import "math"

const π = math.Pi

// R is the Earth radius in meters used by every great-circle formula.
const R = 6372797.6

// MetersPerDegree is the length of one degree of latitude.
const MetersPerDegree = 2 * π * R / 360.0

// Direction is a compass direction in degrees from true north.
type Direction = float64

// Distance is a distance in meters.
type Distance = float64

// Location is implemented by every coordinate space the course can be laid
// out in. LatLon works on the globe, Point on a flat screen-like plane.
type Location[T any] interface {
	Bearing(to T) Direction
	Project(bearing Direction, distance Distance) T
	Distance(to T) Distance
	// Intersection returns where the ray leaving the receiver along bearing
	// crosses the ray leaving other along otherBearing. ok is false when
	// the rays are parallel.
	Intersection(bearing Direction, other T, otherBearing Direction) (T, bool)
	Midpoint(to T) T
}

func toRadians(a float64) float64 {
	return a * π / 180.0
}

func toDegrees(a float64) float64 {
	return a * 180.0 / π
}

// Wrap360 normalizes a bearing into [0, 360).
func Wrap360(d Direction) Direction {
	if 0.0 <= d && d < 360.0 {
		return d
	}
	d = math.Mod(d, 360.0)
	if d < 0 {
		d += 360.0
	}
	if d >= 360.0 {
		d -= 360.0
	}
	return d
}

// AngularDifference returns a - b normalized into (-180, 180].
func AngularDifference(a, b Direction) Direction {
	d := Wrap360(a - b)
	if d > 180 {
		d -= 360
	}
	return d
}

type DistanceUnit float64

const (
	Meters DistanceUnit = 1.0
	Feet   DistanceUnit = 3.280839895013123
	Yards  DistanceUnit = 1.093613298337708
)

// FromMeters converts meters into this unit.
func (u DistanceUnit) FromMeters(d Distance) float64 {
	return d * float64(u)
}

// ToMeters converts a value expressed in this unit into meters.
func (u DistanceUnit) ToMeters(v float64) Distance {
	return v / float64(u)
}

func (u DistanceUnit) String() string {
	switch u {
	case Meters:
		return "meters"
	case Feet:
		return "feet"
	case Yards:
		return "yards"
	}
	return "unknown"
}
