package layout

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/a-bouts/regatta/latlon"
)

type testCourse struct {
	direction  latlon.Direction
	boats      int
	boatLength latlon.Distance
	distances  Distances
}

func (c testCourse) CourseDirection() latlon.Direction { return c.direction }
func (c testCourse) NumberOfBoats() int                { return c.boats }
func (c testCourse) BoatLength() latlon.Distance       { return c.boatLength }
func (c testCourse) Distances() Distances              { return c.distances }

var sunfishes = testCourse{direction: 0, boats: 10, boatLength: 4.19, distances: defaultDistances}

func near(a, b latlon.Point) bool {
	return math.Abs(a.X-b.X) < 1e-6 && math.Abs(a.Y-b.Y) < 1e-6
}

func targetMap[L latlon.Location[L]](loci Loci, ctx Context, origin L) map[MarkRole]L {
	m := make(map[MarkRole]L)
	for _, t := range Targets(loci, ctx, origin) {
		m[t.Role] = t.Location
	}
	return m
}

func TestTriangleStartLine(t *testing.T) {
	center, ok := LocateCenter(Triangle.Loci, sunfishes, latlon.Point{})
	if !ok {
		t.Fatalf("LocateCenter(Triangle) found no center")
	}
	if want := (latlon.Point{X: -31.425}); !near(center, want) {
		t.Errorf("center = %v; want %v", center, want)
	}

	targets := targetMap(Triangle.Loci, sunfishes, latlon.Point{})
	want := map[MarkRole]latlon.Point{
		StartPin: {X: -62.85},
		Windward: {X: -31.425, Y: -175},
		Leeward:  {X: -31.425, Y: 175},
		Jibe:     {X: -206.425},
	}
	if len(targets) != len(want) {
		t.Errorf("Triangle has %d targets; want %d", len(targets), len(want))
	}
	for role, w := range want {
		if got, ok := targets[role]; !ok || !near(got, w) {
			t.Errorf("target %s = %v; want %v", role, got, w)
		}
	}
}

func TestTriangleStartLineGeodetic(t *testing.T) {
	flag := latlon.LatLon{Lat: 41.777, Lon: -71.379}
	center, ok := LocateCenter(Triangle.Loci, sunfishes, flag)
	if !ok {
		t.Fatalf("LocateCenter(Triangle) found no center")
	}
	if d := flag.Distance(center); math.Abs(d-31.425) > 0.01 {
		t.Errorf("distance to center = %f; want 31.425", d)
	}
	if b := flag.Bearing(center); math.Abs(b-270) > 0.01 {
		t.Errorf("bearing to center = %f; want 270", b)
	}

	pin := targetMap(Triangle.Loci, sunfishes, flag)[StartPin]
	if d := flag.Distance(pin); math.Abs(d-62.85) > 0.01 {
		t.Errorf("distance to pin = %f; want 62.85", d)
	}
	if d := center.Distance(pin); math.Abs(d-31.425) > 0.01 {
		t.Errorf("distance from center to pin = %f; want 31.425", d)
	}
}

func TestCourseDirectionRotatesTargets(t *testing.T) {
	course := sunfishes
	course.direction = 90
	targets := targetMap(WindwardLeeward.Loci, course, latlon.Point{})
	if want := (latlon.Point{X: 175, Y: -31.425}); !near(targets[Windward], want) {
		t.Errorf("windward = %v; want %v", targets[Windward], want)
	}
	if want := (latlon.Point{Y: -62.85}); !near(targets[StartPin], want) {
		t.Errorf("pin = %v; want %v", targets[StartPin], want)
	}
}

func TestPositionTargetsDistances(t *testing.T) {
	var legs []DistanceCalculation
	PositionTargets(Triangle.Loci, sunfishes, latlon.Point{},
		func(MarkRole, latlon.Point) {},
		func(d DistanceCalculation, from, to latlon.Point) {
			legs = append(legs, d)
			if got, want := from.Distance(to), d.Evaluate(sunfishes); math.Abs(got-want) > 1e-9 {
				t.Errorf("leg %v spans %f; want %f", d, got, want)
			}
		})
	if len(legs) != 5 {
		t.Errorf("Triangle has %d legs; want 5", len(legs))
	}
}

func TestPositionTargetsContext(t *testing.T) {
	var sync, async []MarkRole
	PositionTargets(Trapezoid.Loci, sunfishes, latlon.Point{}, func(m MarkRole, _ latlon.Point) {
		sync = append(sync, m)
	}, nil)
	err := PositionTargetsContext(context.Background(), Trapezoid.Loci, sunfishes, latlon.Point{},
		func(_ context.Context, m MarkRole, _ latlon.Point) error {
			async = append(async, m)
			return nil
		}, nil)
	if err != nil {
		t.Fatalf("PositionTargetsContext: %v", err)
	}
	if len(sync) != len(async) {
		t.Fatalf("sync visited %v, context visited %v", sync, async)
	}
	for i := range sync {
		if sync[i] != async[i] {
			t.Errorf("visit %d: sync %s, context %s", i, sync[i], async[i])
		}
	}

	stop := errors.New("stop")
	var visited int
	err = PositionTargetsContext(context.Background(), Trapezoid.Loci, sunfishes, latlon.Point{},
		func(_ context.Context, m MarkRole, _ latlon.Point) error {
			visited++
			if m == Windward {
				return stop
			}
			return nil
		}, nil)
	if err != stop {
		t.Errorf("PositionTargetsContext() = %v; want %v", err, stop)
	}
	if visited != 2 {
		t.Errorf("visited %d marks before stopping; want 2", visited)
	}
}

func TestMarksAndMeasurements(t *testing.T) {
	marks := Triangle.Marks()
	want := []MarkRole{StartPin, Windward, Jibe, Leeward}
	if len(marks) != len(want) {
		t.Fatalf("Triangle.Marks() = %v; want %v", marks, want)
	}
	for i := range want {
		if marks[i] != want[i] {
			t.Errorf("Triangle.Marks()[%d] = %s; want %s", i, marks[i], want[i])
		}
	}

	ms := DigitalN.Measurements()
	wantMs := []DistanceMeasurement{Start, Upwind, Offset, Downwind, Finish, FinishLine}
	if len(ms) != len(wantMs) {
		t.Fatalf("DigitalN.Measurements() = %v; want %v", ms, wantMs)
	}
	for i := range wantMs {
		if ms[i] != wantMs[i] {
			t.Errorf("DigitalN.Measurements()[%d] = %s; want %s", i, ms[i], wantMs[i])
		}
	}
}

func TestCanonicalLayouts(t *testing.T) {
	ids := make(map[string]bool)
	for _, l := range Canonical {
		if ids[l.ID.String()] {
			t.Errorf("duplicate layout id %s", l.ID)
		}
		ids[l.ID.String()] = true

		if _, ok := LocateCenter(l.Loci, sunfishes, latlon.Point{}); !ok {
			t.Errorf("%s has no course center", l.Name)
		}
		seen := make(map[MarkRole]bool)
		for _, m := range l.Marks() {
			if !m.Valid() || m == GenericMark || m == StartFlag {
				t.Errorf("%s places invalid mark %q", l.Name, m)
			}
			if seen[m] {
				t.Errorf("%s places %s twice", l.Name, m)
			}
			seen[m] = true
		}
	}
	if !DigitalN.IsDigitalN() || Triangle.IsDigitalN() {
		t.Errorf("IsDigitalN is wrong")
	}
	if DigitalN.ZoneSize != 2 || Triangle.ZoneSize != 3 {
		t.Errorf("zone sizes = %d, %d; want 2, 3", DigitalN.ZoneSize, Triangle.ZoneSize)
	}
}
