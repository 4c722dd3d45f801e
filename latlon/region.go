package latlon

import "math"

// Span is the size of a Region in degrees.
type Span struct {
	LatitudeDelta  float64 `json:"latitudeDelta"`
	LongitudeDelta float64 `json:"longitudeDelta"`
}

// Region is an axis aligned latitude/longitude box described by its center
// and span.
type Region struct {
	Center LatLon `json:"center"`
	Span   Span   `json:"span"`
}

// Undefined has no center and no span. It is the starting value when
// accumulating a region with Enclosing.
var Undefined = Region{
	Center: LatLon{Lat: math.NaN(), Lon: math.NaN()},
	Span:   Span{LatitudeDelta: math.NaN(), LongitudeDelta: math.NaN()},
}

func NewRegion(center LatLon, span Span) Region {
	return Region{
		Center: center,
		Span:   Span{LatitudeDelta: math.Abs(span.LatitudeDelta), LongitudeDelta: math.Abs(span.LongitudeDelta)},
	}
}

// RegionAround returns the region centered on center that spans the given
// number of meters north/south and east/west.
func RegionAround(center LatLon, latitudinalMeters, longitudinalMeters Distance) Region {
	return NewRegion(center, Span{
		LatitudeDelta:  latitudinalMeters / MetersPerDegree,
		LongitudeDelta: longitudinalMeters / (math.Cos(toRadians(center.Lat)) * MetersPerDegree),
	})
}

// RegionFromCorners returns the smallest region containing both corners.
func RegionFromCorners(lat1, lon1, lat2, lon2 float64) Region {
	minLat, maxLat := math.Min(lat1, lat2), math.Max(lat1, lat2)
	minLon, maxLon := math.Min(lon1, lon2), math.Max(lon1, lon2)
	return Region{
		Center: LatLon{Lat: (minLat + maxLat) / 2, Lon: (minLon + maxLon) / 2},
		Span:   Span{LatitudeDelta: maxLat - minLat, LongitudeDelta: maxLon - minLon},
	}
}

func (r Region) IsUndefined() bool {
	return math.IsNaN(r.Center.Lat) || math.IsNaN(r.Center.Lon) ||
		math.IsNaN(r.Span.LatitudeDelta) || math.IsNaN(r.Span.LongitudeDelta)
}

func (r Region) MinLat() float64 { return r.Center.Lat - r.Span.LatitudeDelta/2 }
func (r Region) MaxLat() float64 { return r.Center.Lat + r.Span.LatitudeDelta/2 }
func (r Region) MinLon() float64 { return r.Center.Lon - r.Span.LongitudeDelta/2 }
func (r Region) MaxLon() float64 { return r.Center.Lon + r.Span.LongitudeDelta/2 }

func (r Region) MinCorner() LatLon { return LatLon{Lat: r.MinLat(), Lon: r.MinLon()} }
func (r Region) MaxCorner() LatLon { return LatLon{Lat: r.MaxLat(), Lon: r.MaxLon()} }

// Enclosing grows r so that it contains p.
func (r Region) Enclosing(p LatLon) Region {
	if r.IsUndefined() {
		return Region{Center: p}
	}
	return RegionFromCorners(
		math.Min(r.MinLat(), p.Lat), math.Min(r.MinLon(), p.Lon),
		math.Max(r.MaxLat(), p.Lat), math.Max(r.MaxLon(), p.Lon))
}

// EnclosingRegion grows r so that it contains other. Undefined regions are
// the identity on both sides.
func (r Region) EnclosingRegion(other Region) Region {
	if r.IsUndefined() {
		return other
	}
	if other.IsUndefined() {
		return r
	}
	return RegionFromCorners(
		math.Min(r.MinLat(), other.MinLat()), math.Min(r.MinLon(), other.MinLon()),
		math.Max(r.MaxLat(), other.MaxLat()), math.Max(r.MaxLon(), other.MaxLon()))
}

// Scaled multiplies the span by factor, keeping the center.
func (r Region) Scaled(factor float64) Region {
	return Region{
		Center: r.Center,
		Span:   Span{LatitudeDelta: r.Span.LatitudeDelta * factor, LongitudeDelta: r.Span.LongitudeDelta * factor},
	}
}

// Contains reports whether p lies inside or on the edge of r.
func (r Region) Contains(p LatLon) bool {
	if r.IsUndefined() {
		return false
	}
	return r.MinLat() <= p.Lat && p.Lat <= r.MaxLat() && r.MinLon() <= p.Lon && p.Lon <= r.MaxLon()
}
