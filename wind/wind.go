package wind

import (
	"time"

	"github.com/a-bouts/regatta/latlon"
)

// Interval is the length of the period a single observation covers.
const Interval = 360 * time.Second

type Station struct {
	// ID is the 7 digit identifier of the station.
	ID       string        `json:"id" msgpack:"id" yaml:"id"`
	Name     string        `json:"name" msgpack:"name" yaml:"name"`
	Location latlon.LatLon `json:"location" msgpack:"location" yaml:"location"`
}

// Information is the wind observed over a 6 minute interval.
type Information struct {
	Station *Station `json:"station,omitempty" msgpack:"station,omitempty"`

	// StartTime is the start of the interval, in UTC.
	StartTime time.Time `json:"startTime" msgpack:"startTime"`

	// Direction the wind blows from, in degrees from true north.
	Direction latlon.Direction `json:"direction" msgpack:"direction"`

	// Speed and Gusts are in knots.
	Speed float64 `json:"speed" msgpack:"speed"`
	Gusts float64 `json:"gusts" msgpack:"gusts"`
}

func (w Information) EndTime() time.Time {
	return w.StartTime.Add(Interval)
}
