package race

import (
	"math"
	"testing"

	"github.com/a-bouts/regatta/latlon"
	"github.com/a-bouts/regatta/layout"
)

func TestNewCourse(t *testing.T) {
	c := NewCourse()
	if c.StartFlag != DefaultStartFlag || c.NumberOfBoats != 10 || c.BoatLength != SunfishLength {
		t.Errorf("NewCourse() = %+v", c)
	}
	if c.Layout.ID != layout.Triangle.ID || c.ZoneSize != 3 {
		t.Errorf("NewCourse() layout = %s zone %d; want Triangle zone 3", c.Layout.Name, c.ZoneSize)
	}
	if got := c.LengthOfStartLine(); math.Abs(got-62.85) > 1e-9 {
		t.Errorf("LengthOfStartLine() = %f; want 62.85", got)
	}
}

func TestDropMark(t *testing.T) {
	c := NewCourse()
	a := latlon.LatLon{Lat: 41.78, Lon: -71.38}
	b := latlon.LatLon{Lat: 41.79, Lon: -71.38}
	c.DropMark(a)
	c.DropMark(b)
	c.DropMark(a)
	if len(c.Marks) != 2 || c.Marks[0] != a || c.Marks[1] != b {
		t.Errorf("Marks = %v; want [%v %v]", c.Marks, a, b)
	}
}

func TestPullMark(t *testing.T) {
	c := NewCourse()
	c.PullMark(DefaultStartFlag)
	if len(c.Marks) != 0 {
		t.Fatalf("PullMark on an empty course left %v", c.Marks)
	}

	marks := []latlon.LatLon{
		{Lat: 41.78, Lon: -71.38},
		{Lat: 41.79, Lon: -71.38},
		{Lat: 41.80, Lon: -71.38},
	}
	for _, m := range marks {
		c.DropMark(m)
	}
	before := append([]latlon.LatLon(nil), c.Marks...)
	snapshot := c.Marks

	c.PullMark(latlon.LatLon{Lat: 41.791, Lon: -71.381})
	if len(c.Marks) != 2 || c.Marks[0] != marks[0] || c.Marks[1] != marks[2] {
		t.Errorf("Marks = %v; want [%v %v]", c.Marks, marks[0], marks[2])
	}
	for i := range before {
		if snapshot[i] != before[i] {
			t.Errorf("PullMark modified a previous slice of marks")
		}
	}
}

func TestPullAllMarks(t *testing.T) {
	c := NewCourse()
	c.DropMark(latlon.LatLon{Lat: 41.78, Lon: -71.38})
	c.SetFinishFlag(latlon.LatLon{Lat: 41.78, Lon: -71.37})
	c.PullAllMarks()
	if len(c.Marks) != 0 || c.FinishFlag != nil {
		t.Errorf("PullAllMarks left %v and %v", c.Marks, c.FinishFlag)
	}
}

func TestSetLayout(t *testing.T) {
	c := NewCourse()
	c.Distances.Upwind = 200
	c.Distances.Downwind = 100
	c.SetLayout(layout.DigitalN)
	if c.Distances.Start != 150 || c.Distances.Finish != 150 {
		t.Errorf("digital N start, finish = %f, %f; want 150, 150", c.Distances.Start, c.Distances.Finish)
	}
	if c.ZoneSize != 2 {
		t.Errorf("digital N zone size = %d; want 2", c.ZoneSize)
	}

	c.Distances.Upwind = 300
	c.SetLayout(layout.DigitalN)
	if c.Distances.Start != 200 {
		t.Errorf("second SetLayout start = %f; want 200", c.Distances.Start)
	}

	c.SetLayout(layout.WindwardLeeward)
	if c.Distances.Start != 200 || c.ZoneSize != 3 {
		t.Errorf("windward/leeward start = %f zone %d; want 200 zone 3", c.Distances.Start, c.ZoneSize)
	}
}

func TestLockCourseDirection(t *testing.T) {
	c := NewCourse()
	c.LockCourseDirection(-10)
	if c.LockedCourseDirection == nil || *c.LockedCourseDirection != 350 {
		t.Errorf("LockCourseDirection(-10) = %v; want 350", c.LockedCourseDirection)
	}
	c.UnlockCourseDirection()
	if c.LockedCourseDirection != nil {
		t.Errorf("UnlockCourseDirection left %v", *c.LockedCourseDirection)
	}
}

func TestNearestMark(t *testing.T) {
	c := NewCourse()
	if _, ok := c.NearestMark(DefaultStartFlag); ok {
		t.Errorf("NearestMark found a mark on an empty course")
	}
	east := DefaultStartFlag.Project(90, 100)
	west := DefaultStartFlag.Project(270, 100)
	c.DropMark(east)
	c.DropMark(west)
	if m, _ := c.NearestMark(DefaultStartFlag); m != east {
		t.Errorf("NearestMark on a tie = %v; want the first mark %v", m, east)
	}
	if m, _ := c.NearestMark(west.Project(0, 10)); m != west {
		t.Errorf("NearestMark = %v; want %v", m, west)
	}
}
