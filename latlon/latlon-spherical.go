package latlon

import "math"

// LatLon is a position on the globe in decimal degrees.
type LatLon struct {
	Lat float64 `json:"latitude" msgpack:"latitude" yaml:"latitude"`
	Lon float64 `json:"longitude" msgpack:"longitude" yaml:"longitude"`
}

var _ Location[LatLon] = LatLon{}

func (p LatLon) IsValid() bool {
	return -90.0 <= p.Lat && p.Lat <= 90.0 && -180.0 <= p.Lon && p.Lon <= 180.0
}

// Bearing is the initial great-circle bearing from p to to.
func (p LatLon) Bearing(to LatLon) Direction {
	φ1 := toRadians(p.Lat)
	φ2 := toRadians(to.Lat)

	Δλ := toRadians(to.Lon - p.Lon)
	x := math.Cos(φ1)*math.Sin(φ2) - math.Sin(φ1)*math.Cos(φ2)*math.Cos(Δλ)
	y := math.Sin(Δλ) * math.Cos(φ2)
	θ := math.Atan2(y, x)

	b := toDegrees(θ)
	if b < 0 {
		b += 360
	}
	return b
}

// Project returns the destination reached by travelling distance meters
// from p along the great circle with the given initial bearing.
func (p LatLon) Project(bearing Direction, distance Distance) LatLon {
	φ1 := toRadians(p.Lat)
	λ1 := toRadians(p.Lon)
	θ := toRadians(bearing)

	δ := distance / R

	φ2 := math.Asin(math.Sin(φ1)*math.Cos(δ) + math.Cos(φ1)*math.Sin(δ)*math.Cos(θ))
	λ2 := λ1 + math.Atan2(math.Sin(θ)*math.Sin(δ)*math.Cos(φ1), math.Cos(δ)-math.Sin(φ1)*math.Sin(φ2))

	return LatLon{Lat: toDegrees(φ2), Lon: toDegrees(λ2)}
}

// Distance uses the haversine formula, which stays accurate down to
// centimeters.
func (p LatLon) Distance(to LatLon) Distance {
	φ1 := toRadians(p.Lat)
	φ2 := toRadians(to.Lat)
	Δφ := φ2 - φ1
	Δλ := toRadians(to.Lon - p.Lon)

	a := math.Sin(Δφ/2)*math.Sin(Δφ/2) + math.Cos(φ1)*math.Cos(φ2)*math.Sin(Δλ/2)*math.Sin(Δλ/2)
	δ := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return R * δ
}

// Intersection solves the two rays in the plane tangent to p. Over the size
// of a race course the tangent plane error is well under a meter.
func (p LatLon) Intersection(bearing Direction, other LatLon, otherBearing Direction) (LatLon, bool) {
	θ1 := toRadians(bearing)
	θ2 := toRadians(otherBearing)

	// east/north unit vectors
	x1, y1 := math.Sin(θ1), math.Cos(θ1)
	x2, y2 := math.Sin(θ2), math.Cos(θ2)

	denominator := x1*y2 - y1*x2
	if math.Abs(denominator) < 1e-10 {
		return LatLon{}, false
	}

	d := p.Distance(other)
	b := toRadians(p.Bearing(other))
	dx := d * math.Sin(b)
	dy := d * math.Cos(b)

	t := (dx*y2 - dy*x2) / denominator

	return p.Project(bearing, t), true
}

// Midpoint is the point halfway along the great circle from p to to.
func (p LatLon) Midpoint(to LatLon) LatLon {
	φ1 := toRadians(p.Lat)
	λ1 := toRadians(p.Lon)
	φ2 := toRadians(to.Lat)
	Δλ := toRadians(to.Lon - p.Lon)

	bx := math.Cos(φ2) * math.Cos(Δλ)
	by := math.Cos(φ2) * math.Sin(Δλ)

	φm := math.Atan2(math.Sin(φ1)+math.Sin(φ2), math.Sqrt((math.Cos(φ1)+bx)*(math.Cos(φ1)+bx)+by*by))
	λm := λ1 + math.Atan2(by, math.Cos(φ1)+bx)

	return LatLon{Lat: toDegrees(φm), Lon: toDegrees(λm)}
}
