package boiler

import (
	"math"
	"testing"

	"Thermex/internal/calcerr"
	"Thermex/internal/steam"
	"Thermex/internal/units"
)

// Boiler tube at 5 MPa heating water from 60 °C to 350 °C, outlet
// velocity 10 m/s through a 120 mm tube.
func TestReferenceExercise(t *testing.T) {
	res, err := Calculate(steam.New(), Input{
		ProcessPressure: 5,
		TempIn:          60,
		TempOut:         350,
		VelocityOut:     10,
		TubeDiameter:    120,
		System:          units.SI,
	})
	if err != nil {
		t.Fatal(err)
	}

	wantArea := math.Pi * 0.12 * 0.12 / 4.0
	if math.Abs(res.Area-wantArea) > 1e-12 {
		t.Errorf("area = %v, want %v", res.Area, wantArea)
	}
	// v(5 MPa, 350 °C) ≈ 0.05194 m³/kg.
	if res.SpecVolumeOut < 0.0515 || res.SpecVolumeOut > 0.0524 {
		t.Errorf("outlet specific volume = %v", res.SpecVolumeOut)
	}
	// ṁ = A·V/v ≈ 2.18 kg/s.
	if res.MassFlow < 2.1 || res.MassFlow > 2.25 {
		t.Errorf("mass flow = %v", res.MassFlow)
	}
	// Liquid inlet moves far slower than the steam outlet.
	if res.VelocityIn >= 1 {
		t.Errorf("inlet velocity = %v, want well under 1 m/s", res.VelocityIn)
	}
	if got := res.VolumeFlowIn / res.Area; math.Abs(got-res.VelocityIn) > 1e-9 {
		t.Errorf("velocity_in %v != volume_flow_in/area %v", res.VelocityIn, got)
	}
}

// With mass flow held fixed, doubling the diameter while quartering the
// outlet velocity leaves ṁ unchanged and divides the inlet velocity by 4.
func TestDiameterVelocityScaling(t *testing.T) {
	props := steam.New()
	base := Input{ProcessPressure: 5, TempIn: 60, TempOut: 350, VelocityOut: 10, TubeDiameter: 120, System: units.SI}
	wide := base
	wide.TubeDiameter *= 2
	wide.VelocityOut /= 4

	a, err := Calculate(props, base)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Calculate(props, wide)
	if err != nil {
		t.Fatal(err)
	}

	if d := math.Abs(b.MassFlow-a.MassFlow) / a.MassFlow; d > 1e-9 {
		t.Errorf("mass flow changed by %v", d)
	}
	if d := math.Abs(b.VelocityIn-a.VelocityIn/4) / a.VelocityIn; d > 1e-9 {
		t.Errorf("inlet velocity %v, want %v", b.VelocityIn, a.VelocityIn/4)
	}
}

func TestRoundTripUnits(t *testing.T) {
	props := steam.New()
	si := Input{ProcessPressure: 5, TempIn: 60, TempOut: 350, VelocityOut: 10, TubeDiameter: 120, System: units.SI}
	imp := Input{
		ProcessPressure: si.ProcessPressure * units.MPaToPsi,
		TempIn:          units.CToF(si.TempIn),
		TempOut:         units.CToF(si.TempOut),
		VelocityOut:     si.VelocityOut * units.MsToFts,
		TubeDiameter:    si.TubeDiameter * units.MmToM / units.InToM,
		System:          units.Imperial,
	}

	a, err := Calculate(props, si)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Calculate(props, imp)
	if err != nil {
		t.Fatal(err)
	}

	relDiff := func(x, y float64) float64 { return math.Abs(x-y) / math.Abs(y) }
	if d := relDiff(b.MassFlow/units.KgsToLbms, a.MassFlow); d > 1e-3 {
		t.Errorf("mass flow round trip off by %v", d)
	}
	if d := relDiff(b.Area/units.M2ToFt2, a.Area); d > 1e-3 {
		t.Errorf("area round trip off by %v", d)
	}
	if d := relDiff(b.VelocityIn/units.MsToFts, a.VelocityIn); d > 1e-3 {
		t.Errorf("inlet velocity round trip off by %v", d)
	}
	if b.Units["mass_flow"] != "lbm/s" {
		t.Errorf("imperial mass flow unit = %q", b.Units["mass_flow"])
	}
}

func TestDegenerateInputs(t *testing.T) {
	props := steam.New()
	cases := []Input{
		{ProcessPressure: 5, TempIn: 60, TempOut: 350, VelocityOut: 10, TubeDiameter: 0},
		{ProcessPressure: 5, TempIn: 60, TempOut: 350, VelocityOut: 0, TubeDiameter: 120},
	}
	for _, in := range cases {
		_, err := Calculate(props, in)
		if k, ok := calcerr.KindOf(err); !ok || k != calcerr.DegenerateInput {
			t.Errorf("Calculate(%+v) error = %v, want DegenerateInput", in, err)
		}
	}
}

func TestInvalidOutletState(t *testing.T) {
	_, err := Calculate(steam.New(), Input{
		ProcessPressure: 5, TempIn: 60, TempOut: 2500, VelocityOut: 10, TubeDiameter: 120,
	})
	if k, ok := calcerr.KindOf(err); !ok || k != calcerr.InvalidPhysicalState {
		t.Errorf("error = %v, want InvalidPhysicalState", err)
	}
}
