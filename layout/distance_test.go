package layout

import (
	"testing"

	"github.com/a-bouts/regatta/latlon"
)

func TestDistancesGetSet(t *testing.T) {
	var d Distances
	for i, m := range Measurements {
		d.Set(m, float64(i+1))
	}
	for i, m := range Measurements {
		if got := d.Get(m); got != float64(i+1) {
			t.Errorf("Get(%s) = %f; want %d", m, got, i+1)
		}
	}
	if d.FinishLine != float64(len(Measurements)) {
		t.Errorf("FinishLine = %f; want %d", d.FinishLine, len(Measurements))
	}
}

func TestDistancesUnknownMeasurement(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("Get(\"bogus\") did not panic")
		}
	}()
	var d Distances
	d.Get("bogus")
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		calc DistanceCalculation
		want latlon.Distance
	}{
		{TotalBoatLengths(1.5), 62.85},
		{TotalBoatLengths(0.75), 31.425},
		{Adjustable(Upwind, 1), 175},
		{Adjustable(FinishLine, 0.5), 25},
	}
	for _, test := range tests {
		if got := test.calc.Evaluate(sunfishes); got < test.want-1e-9 || got > test.want+1e-9 {
			t.Errorf("%v.Evaluate() = %f; want %f", test.calc, got, test.want)
		}
	}
}

func TestSlider(t *testing.T) {
	if s := Upwind.Slider(latlon.Meters); s != largeMeterSlider {
		t.Errorf("Upwind.Slider(Meters) = %v; want %v", s, largeMeterSlider)
	}
	if s := Gate.Slider(latlon.Feet); s != smallFootSlider {
		t.Errorf("Gate.Slider(Feet) = %v; want %v", s, smallFootSlider)
	}
}

func TestMarkRoles(t *testing.T) {
	if !StartFlag.IsFlag() || !FinishFlag.IsFlag() || StartPin.IsFlag() {
		t.Errorf("IsFlag is wrong")
	}
	if MarkRole("nowhere").Valid() {
		t.Errorf("MarkRole(\"nowhere\").Valid() = true")
	}
	if !Upwind.Valid() || DistanceMeasurement("nowhere").Valid() {
		t.Errorf("DistanceMeasurement.Valid is wrong")
	}
}
