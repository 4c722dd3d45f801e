package latlon

import "math"

// Point is a position on a flat plane. Bearing 0 points towards -Y so that
// points can be used directly as screen coordinates.
type Point struct {
	X float64 `json:"x" msgpack:"x"`
	Y float64 `json:"y" msgpack:"y"`
}

var _ Location[Point] = Point{}

func (p Point) Bearing(to Point) Direction {
	dx := to.X - p.X
	dy := p.Y - to.Y

	b := toDegrees(math.Atan2(dx, dy))
	if b < 0 {
		b += 360
	}
	return b
}

func (p Point) Project(bearing Direction, distance Distance) Point {
	θ := toRadians(bearing)
	return Point{X: p.X + distance*math.Sin(θ), Y: p.Y - distance*math.Cos(θ)}
}

func (p Point) Distance(to Point) Distance {
	dx := p.X - to.X
	dy := p.Y - to.Y
	return math.Sqrt(dx*dx + dy*dy)
}

func (p Point) Intersection(bearing Direction, other Point, otherBearing Direction) (Point, bool) {
	θ1 := toRadians(bearing)
	θ2 := toRadians(otherBearing)

	// direction vectors, Y increasing south
	x1, y1 := math.Sin(θ1), -math.Cos(θ1)
	x2, y2 := math.Sin(θ2), -math.Cos(θ2)

	denominator := x1*y2 - y1*x2
	if denominator == 0 {
		return Point{}, false
	}

	dx := other.X - p.X
	dy := other.Y - p.Y

	t := (dx*y2 - dy*x2) / denominator

	return Point{X: p.X + t*x1, Y: p.Y + t*y1}, true
}

func (p Point) Midpoint(to Point) Point {
	return Point{X: (p.X + to.X) / 2, Y: (p.Y + to.Y) / 2}
}
