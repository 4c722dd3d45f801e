package layout

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

type Shape string

const (
	// TriangleShape has a single jibe mark.
	TriangleShape Shape = "triangle"
	// WindwardLeewardShape has no jibe mark.
	WindwardLeewardShape Shape = "windwardLeeward"
	// TrapezoidShape has two jibe marks.
	TrapezoidShape Shape = "trapezoid"
	// DigitalNShape is the team racing course.
	DigitalNShape Shape = "digitalN"
)

type StartPlacement string

const (
	// MidCourse puts the start line between the wind and leeward marks.
	MidCourse StartPlacement = "midCourse"
	// AtLeewardMark uses the leeward mark as the pin.
	AtLeewardMark StartPlacement = "atLeewardMark"
	// DownwindStart puts the start line downwind of the leeward mark.
	DownwindStart StartPlacement = "downwind"
)

type FinishPlacement string

const (
	// SharedWithStartLine finishes on the start line.
	SharedWithStartLine FinishPlacement = "sharedWithStartLine"
	// StarboardOfStartFlag finishes between the start flag and a pin to its starboard.
	StarboardOfStartFlag FinishPlacement = "starboardOfStartFlag"
	// UpwindFinish finishes upwind of the windward mark.
	UpwindFinish FinishPlacement = "upwind"
	// AtWindMark uses the windward mark as the finish pin.
	AtWindMark FinishPlacement = "atWindMark"
	// DownwindReach finishes downwind of the course, perpendicular to the last mark.
	DownwindReach FinishPlacement = "downwindReach"
)

type WindOption string

const (
	SingleWindMark    WindOption = "singleMark"
	WindMarkAndOffset WindOption = "markAndOffset"
)

type LeeOption string

const (
	SingleLeewardMark    LeeOption = "singleMark"
	LeewardGate          LeeOption = "gate"
	LeewardMarkAndOffset LeeOption = "markAndOffset"
)

// Settings is the small set of choices offered to the race committee.
// Each field constrains the valid choices of the fields after it; call
// Revalidate (or use the With methods) after changing a field.
type Settings struct {
	Shape  Shape           `json:"shape" yaml:"shape"`
	Start  StartPlacement  `json:"start" yaml:"start"`
	Finish FinishPlacement `json:"finish" yaml:"finish"`
	Wind   WindOption      `json:"wind" yaml:"wind"`
	Lee    LeeOption       `json:"lee" yaml:"lee"`
}

var DefaultSettings = Settings{
	Shape:  TriangleShape,
	Start:  MidCourse,
	Finish: SharedWithStartLine,
	Wind:   SingleWindMark,
	Lee:    SingleLeewardMark,
}

var Shapes = []Shape{TriangleShape, WindwardLeewardShape, TrapezoidShape, DigitalNShape}

func ValidStarts(shape Shape) []StartPlacement {
	switch shape {
	case TrapezoidShape:
		return []StartPlacement{MidCourse, DownwindStart}
	case DigitalNShape:
		return []StartPlacement{MidCourse}
	}
	return []StartPlacement{MidCourse, AtLeewardMark, DownwindStart}
}

func ValidFinishes(shape Shape, start StartPlacement) []FinishPlacement {
	switch shape {
	case DigitalNShape:
		return []FinishPlacement{UpwindFinish}
	case TrapezoidShape:
		return []FinishPlacement{SharedWithStartLine, StarboardOfStartFlag, DownwindReach}
	}
	switch start {
	case AtLeewardMark:
		return []FinishPlacement{SharedWithStartLine, UpwindFinish, AtWindMark, DownwindReach}
	case DownwindStart:
		return []FinishPlacement{SharedWithStartLine, StarboardOfStartFlag, UpwindFinish, DownwindReach}
	}
	return []FinishPlacement{SharedWithStartLine, StarboardOfStartFlag, UpwindFinish, AtWindMark}
}

func ValidWinds(shape Shape) []WindOption {
	if shape == DigitalNShape {
		return []WindOption{WindMarkAndOffset}
	}
	return []WindOption{SingleWindMark, WindMarkAndOffset}
}

func ValidLees(shape Shape, start StartPlacement) []LeeOption {
	switch {
	case shape == DigitalNShape:
		return []LeeOption{LeewardMarkAndOffset}
	case start == AtLeewardMark:
		// the leeward mark is the pin
		return []LeeOption{SingleLeewardMark}
	}
	return []LeeOption{SingleLeewardMark, LeewardGate}
}

func clamp[T comparable](v T, valid []T) T {
	for _, x := range valid {
		if v == x {
			return v
		}
	}
	return valid[0]
}

// Revalidate resets, in order shape, start, finish, wind, lee, every field
// that is not a valid choice given the fields before it to the first valid
// choice.
func (s Settings) Revalidate() Settings {
	s.Shape = clamp(s.Shape, Shapes)
	s.Start = clamp(s.Start, ValidStarts(s.Shape))
	s.Finish = clamp(s.Finish, ValidFinishes(s.Shape, s.Start))
	s.Wind = clamp(s.Wind, ValidWinds(s.Shape))
	s.Lee = clamp(s.Lee, ValidLees(s.Shape, s.Start))
	return s
}

func (s Settings) WithShape(shape Shape) Settings {
	s.Shape = shape
	return s.Revalidate()
}

func (s Settings) WithStart(start StartPlacement) Settings {
	s.Start = start
	return s.Revalidate()
}

func (s Settings) WithFinish(finish FinishPlacement) Settings {
	s.Finish = finish
	return s.Revalidate()
}

func (s Settings) WithWind(wind WindOption) Settings {
	s.Wind = wind
	return s.Revalidate()
}

func (s Settings) WithLee(lee LeeOption) Settings {
	s.Lee = lee
	return s.Revalidate()
}

func (s Settings) Key() string {
	return strings.Join([]string{string(s.Shape), string(s.Start), string(s.Finish), string(s.Wind), string(s.Lee)}, "/")
}

func (s Settings) windwardLocus() Locus {
	l := Locus{Bearing: 0, Distance: Adjustable(Upwind, 1), Mark: Windward}
	if s.Wind == WindMarkAndOffset {
		l.Loci = append(l.Loci, Locus{Bearing: -90, Distance: Adjustable(Offset, 1), Mark: WindwardOffset})
	}
	switch s.Finish {
	case UpwindFinish:
		l.Loci = append(l.Loci, Locus{
			Bearing:  0,
			Distance: Adjustable(Finish, 1),
			Loci: Loci{
				{Bearing: -90, Distance: Adjustable(FinishLine, 0.5), Mark: FinishPin},
				{Bearing: 90, Distance: Adjustable(FinishLine, 0.5), Mark: FinishFlag},
			},
		})
	case AtWindMark:
		l.Loci = append(l.Loci, Locus{Bearing: 90, Distance: Adjustable(FinishLine, 1), Mark: FinishFlag})
	}
	return l
}

func (s Settings) leewardLocus() Locus {
	var l Locus
	switch s.Start {
	case AtLeewardMark:
		l = Locus{Bearing: -90, Distance: TotalBoatLengths(0.75)}
	case DownwindStart:
		l = Locus{Bearing: 0, Distance: Adjustable(Start, 1)}
	default:
		l = Locus{Bearing: 180, Distance: Adjustable(Downwind, 1)}
	}
	switch s.Lee {
	case LeewardGate:
		l.Loci = Loci{
			{Bearing: -90, Distance: Adjustable(Gate, 0.5), Mark: LeewardGateLeft},
			{Bearing: 90, Distance: Adjustable(Gate, 0.5), Mark: LeewardGateRight},
		}
	case LeewardMarkAndOffset:
		l.Mark = Leeward
		l.Loci = Loci{{Bearing: 90, Distance: Adjustable(Offset, 1), Mark: LeewardOffset}}
	default:
		l.Mark = Leeward
	}
	return l
}

func (s Settings) jibeLocus() (Locus, bool) {
	switch s.Shape {
	case TriangleShape:
		return jibeMark, true
	case TrapezoidShape:
		return trapezoidJibeMarks, true
	}
	return Locus{}, false
}

// upwindLoci are the loci hung from the course center.
func (s Settings) upwindLoci() Loci {
	loci := Loci{s.windwardLocus()}
	if jibe, ok := s.jibeLocus(); ok {
		loci = append(loci, jibe)
	}
	return loci
}

// Loci generates the locus tree for the settings. Settings are revalidated
// first. The digital N course is returned as is.
func (s Settings) Loci() Loci {
	s = s.Revalidate()
	if s.Shape == DigitalNShape {
		return DigitalN.Loci
	}

	var root Loci
	switch s.Start {
	case AtLeewardMark:
		root = Loci{{
			Bearing:  -90,
			Distance: TotalBoatLengths(0.75),
			Loci: Loci{
				s.leewardLocus(),
				{Bearing: 0, Distance: Adjustable(Downwind, 1), IsCourseCenter: true, Loci: s.upwindLoci()},
			},
		}}

	case DownwindStart:
		// The leeward locus appears twice: at the start distance from the
		// line, where its marks go, and again at the downwind distance
		// beyond it, where the center of the course is.
		center := s.leewardLocus()
		center.Distance = Adjustable(Downwind, 1)
		center.Mark = ""
		center.IsCourseCenter = true
		center.Loci = s.upwindLoci()

		leeward := s.leewardLocus()
		leeward.Loci = append(leeward.Loci, center)

		root = Loci{startPin, {
			Bearing:  -90,
			Distance: TotalBoatLengths(0.75),
			Loci:     Loci{leeward},
		}}

	default:
		center := Locus{
			Bearing:        -90,
			Distance:       TotalBoatLengths(0.75),
			IsCourseCenter: true,
			Loci:           Loci{s.windwardLocus(), s.leewardLocus()},
		}
		if jibe, ok := s.jibeLocus(); ok {
			center.Loci = append(center.Loci, jibe)
		}
		root = Loci{startPin, center}
	}

	if s.Finish == StarboardOfStartFlag {
		root = append(root, Locus{Bearing: 90, Distance: Adjustable(FinishLine, 1), Mark: FinishPin})
	}
	return root
}

// settingsNamespace seeds the ids of generated layouts so that the same
// settings always produce the same id.
var settingsNamespace = uuid.MustParse("5F8E2B47-0C1D-4E93-8A6B-7D2F4C9E1B30")

var shapeNames = map[Shape]string{
	TriangleShape:        "Triangle",
	WindwardLeewardShape: "Windward/Leeward",
	TrapezoidShape:       "Trapezoid",
	DigitalNShape:        "Digital N",
}

// Layout generates the layout for the settings.
func (s Settings) Layout() Layout {
	s = s.Revalidate()
	if s.Shape == DigitalNShape {
		return DigitalN
	}
	return Layout{
		ID:              uuid.NewSHA1(settingsNamespace, []byte(s.Key())),
		Name:            shapeNames[s.Shape],
		Description:     fmt.Sprintf("start %s, finish %s, wind mark %s, leeward mark %s", s.Start, s.Finish, s.Wind, s.Lee),
		ZoneSize:        3,
		SampleDistances: defaultDistances,
		Loci:            s.Loci(),
	}
}

// AllSettings enumerates every valid combination of settings.
func AllSettings() []Settings {
	var all []Settings
	for _, shape := range Shapes {
		for _, start := range ValidStarts(shape) {
			for _, finish := range ValidFinishes(shape, start) {
				for _, wind := range ValidWinds(shape) {
					for _, lee := range ValidLees(shape, start) {
						all = append(all, Settings{Shape: shape, Start: start, Finish: finish, Wind: wind, Lee: lee})
					}
				}
			}
		}
	}
	return all
}
