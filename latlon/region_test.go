package latlon

import (
	"math"
	"math/rand"
	"testing"
)

func sameRegion(a, b Region) bool {
	const δ = 0.00001
	return math.Abs(a.Center.Lat-b.Center.Lat) < δ &&
		math.Abs(a.Center.Lon-b.Center.Lon) < δ &&
		math.Abs(a.Span.LatitudeDelta-b.Span.LatitudeDelta) < δ &&
		math.Abs(a.Span.LongitudeDelta-b.Span.LongitudeDelta) < δ
}

func TestUndefinedRegion(t *testing.T) {
	if !Undefined.IsUndefined() {
		t.Errorf("Undefined.IsUndefined() = false; want true")
	}

	p := LatLon{Lat: 41.777, Lon: -71.379}
	r := Undefined.Enclosing(p)
	if r.IsUndefined() || r.Center != p || r.Span != (Span{}) {
		t.Errorf("Undefined.Enclosing(%v) = %v; want zero span at the point", p, r)
	}

	other := RegionFromCorners(1, 2, 3, 4)
	if got := Undefined.EnclosingRegion(other); got != other {
		t.Errorf("Undefined.EnclosingRegion(%v) = %v; want the argument", other, got)
	}
	if got := other.EnclosingRegion(Undefined); got != other {
		t.Errorf("%v.EnclosingRegion(Undefined) = %v; want the receiver", other, got)
	}
}

func TestEnclosing(t *testing.T) {
	r := Undefined.
		Enclosing(LatLon{Lat: 1, Lon: 5}).
		Enclosing(LatLon{Lat: -1, Lon: 7}).
		EnclosingRegion(RegionFromCorners(0, 8, 2, 9))

	if r.MinLat() != -1 || r.MaxLat() != 2 || r.MinLon() != 5 || r.MaxLon() != 9 {
		t.Errorf("corners = %v %v; want {-1 5} {2 9}", r.MinCorner(), r.MaxCorner())
	}
	if !r.Contains(LatLon{Lat: 0, Lon: 6}) {
		t.Errorf("%v does not contain {0 6}", r)
	}
	if r.Contains(LatLon{Lat: 3, Lon: 6}) {
		t.Errorf("%v contains {3 6}", r)
	}
}

func TestEnclosingOrderIndependent(t *testing.T) {
	r := rand.New(rand.NewSource(6))

	var points []LatLon
	for i := 0; i < 20; i++ {
		points = append(points, LatLon{Lat: 41 + r.Float64(), Lon: -71 - r.Float64()})
	}
	var regions []Region
	for i := 0; i < 5; i++ {
		regions = append(regions, RegionAround(points[i], 10+r.Float64()*100, 10+r.Float64()*100))
	}

	fold := func(ps []LatLon, rs []Region) Region {
		rgn := Undefined
		for _, p := range ps {
			rgn = rgn.Enclosing(p)
		}
		for _, x := range rs {
			rgn = rgn.EnclosingRegion(x)
		}
		return rgn
	}

	want := fold(points, regions)
	for n := 0; n < 20; n++ {
		r.Shuffle(len(points), func(i, j int) { points[i], points[j] = points[j], points[i] })
		r.Shuffle(len(regions), func(i, j int) { regions[i], regions[j] = regions[j], regions[i] })

		// regions first this time
		rgn := Undefined
		for _, x := range regions {
			rgn = rgn.EnclosingRegion(x)
		}
		for _, p := range points {
			rgn = rgn.Enclosing(p)
		}
		if !sameRegion(rgn, want) {
			t.Fatalf("fold %d = %v; want %v", n, rgn, want)
		}
	}
}

func TestRegionAround(t *testing.T) {
	c := LatLon{Lat: 0, Lon: 0}
	r := RegionAround(c, MetersPerDegree, 2*MetersPerDegree)
	if math.Abs(r.Span.LatitudeDelta-1) > 1e-9 || math.Abs(r.Span.LongitudeDelta-2) > 1e-9 {
		t.Errorf("RegionAround span = %v; want {1 2}", r.Span)
	}
	s := r.Scaled(2)
	if s.Center != c || math.Abs(s.Span.LatitudeDelta-2) > 1e-9 {
		t.Errorf("Scaled(2) = %v; want span doubled", s)
	}
}
