package layout

import (
	"github.com/google/uuid"
)

// Layout is the geometry of a race course independent of where it is laid
// and how large it is.
type Layout struct {
	// ID is stable even if the name changes.
	ID uuid.UUID `json:"id" msgpack:"id"`

	// Name is short enough for a picker.
	Name string `json:"name" msgpack:"name"`

	Description string `json:"description,omitempty" msgpack:"description,omitempty"`

	// ZoneSize is the radius of the zone around each mark in boat lengths:
	// 2 for team racing, 3 otherwise.
	ZoneSize int `json:"zoneSize" msgpack:"zoneSize"`

	// SampleDistances are reasonable distances for a new course.
	SampleDistances Distances `json:"sampleDistances" msgpack:"sampleDistances"`

	// Loci are placed relative to the start flag.
	Loci Loci `json:"loci" msgpack:"loci"`
}

// IsDigitalN reports whether l is the digital N team racing course.
func (l Layout) IsDigitalN() bool {
	return l.ID == DigitalN.ID
}

// Measurements lists the adjustable distances the layout uses.
func (l Layout) Measurements() []DistanceMeasurement {
	return l.Loci.Measurements()
}

func (l Layout) Marks() []MarkRole {
	return l.Loci.Marks()
}

var defaultDistances = Distances{
	Upwind:            175,
	Downwind:          175,
	Width:             175,
	TrapezoidDownwind: 100,
	Offset:            40,
	Gate:              40,
	Start:             150,
	Finish:            100,
	FinishLine:        50,
}

var digitalNDistances = Distances{
	Upwind:            150,
	Downwind:          150,
	Width:             100,
	TrapezoidDownwind: 100,
	Offset:            60,
	Gate:              40,
	Start:             150,
	Finish:            150,
	FinishLine:        40,
}

// Building blocks shared by the predefined layouts. The start line runs to
// port of the start flag.
var (
	startPin = Locus{
		Bearing:  -90,
		Distance: TotalBoatLengths(1.5),
		Mark:     StartPin,
	}
	windwardMark = Locus{
		Bearing:  0,
		Distance: Adjustable(Upwind, 1),
		Mark:     Windward,
	}
	leewardMark = Locus{
		Bearing:  180,
		Distance: Adjustable(Downwind, 1),
		Mark:     Leeward,
	}
	jibeMark = Locus{
		Bearing:  -90,
		Distance: Adjustable(Width, 1),
		Mark:     Jibe,
	}
	trapezoidJibeMarks = Locus{
		Bearing:  -90,
		Distance: Adjustable(Width, 1),
		Loci: Loci{
			{Bearing: 0, Distance: Adjustable(TrapezoidDownwind, 0.5), Mark: WindwardJibe},
			{Bearing: 180, Distance: Adjustable(TrapezoidDownwind, 0.5), Mark: LeewardJibe},
		},
	}
)

// lineCenter returns the center of the start line, which is also the
// center of the course, with children placed around it.
func lineCenter(loci ...Locus) Locus {
	return Locus{
		Bearing:        -90,
		Distance:       TotalBoatLengths(0.75),
		IsCourseCenter: true,
		Loci: append(Loci{{
			Bearing:  -90,
			Distance: TotalBoatLengths(0.75),
			Mark:     StartPin,
		}}, loci...),
	}
}

var Triangle = Layout{
	ID:              uuid.MustParse("EF24BF8B-E5B9-4E7A-9E47-46E8CED73E79"),
	Name:            "Triangle",
	Description:     "A simple triangle course with a combined start/finish line in the middle of the course.",
	ZoneSize:        3,
	SampleDistances: defaultDistances,
	Loci:            Loci{lineCenter(windwardMark, jibeMark, leewardMark)},
}

var WindwardLeeward = Layout{
	ID:              uuid.MustParse("3538DD08-F2A2-489F-957F-FE429684CDD0"),
	Name:            "Windward/Leeward",
	Description:     "A simple windward/leeward course with a combined start/finish line in the middle of the course.",
	ZoneSize:        3,
	SampleDistances: defaultDistances,
	Loci:            Loci{lineCenter(windwardMark, leewardMark)},
}

var Trapezoid = Layout{
	ID:              uuid.MustParse("6B0F3E42-5C8D-4A19-9B7E-2D4C1A8F0E63"),
	Name:            "Trapezoid",
	Description:     "A trapezoid course with two jibe marks and a combined start/finish line in the middle of the course.",
	ZoneSize:        3,
	SampleDistances: defaultDistances,
	Loci:            Loci{lineCenter(windwardMark, trapezoidJibeMarks, leewardMark)},
}

// DigitalN is the team racing course. Its geometry does not fit the
// Settings generator so it is spelled out here.
var DigitalN = Layout{
	ID:              uuid.MustParse("C2A5D7E1-8F43-4B6A-A0D9-5E7B3C1F9A24"),
	Name:            "Digital N",
	Description:     "A team racing course: beat, reach to port, run, reach to starboard and a short beat to the finish.",
	ZoneSize:        2,
	SampleDistances: digitalNDistances,
	Loci: Loci{
		startPin,
		{
			Bearing:  -90,
			Distance: TotalBoatLengths(0.75),
			Loci: Loci{{
				Bearing:        0,
				Distance:       Adjustable(Start, 1),
				IsCourseCenter: true,
				Loci: Loci{
					{
						Bearing:  0,
						Distance: Adjustable(Upwind, 1),
						Mark:     Windward,
						Loci: Loci{
							{Bearing: -90, Distance: Adjustable(Offset, 1), Mark: WindwardOffset},
						},
					},
					{
						Bearing:  180,
						Distance: Adjustable(Downwind, 1),
						Mark:     Leeward,
						Loci: Loci{{
							Bearing:  90,
							Distance: Adjustable(Offset, 1),
							Mark:     LeewardOffset,
							Loci: Loci{{
								Bearing:  0,
								Distance: Adjustable(Finish, 1),
								Loci: Loci{
									{Bearing: -90, Distance: Adjustable(FinishLine, 0.5), Mark: FinishPin},
									{Bearing: 90, Distance: Adjustable(FinishLine, 0.5), Mark: FinishFlag},
								},
							}},
						}},
					},
				},
			}},
		},
	},
}

// Canonical lists the predefined layouts.
var Canonical = []Layout{Triangle, WindwardLeeward, Trapezoid, DigitalN}
