package pump

import (
	"math"
	"testing"

	"Thermex/internal/calcerr"
	"Thermex/internal/steam"
	"Thermex/internal/units"
)

// Reference exercise: 0.015645 m³/s of water at 100 kPa pumped to 2.5 MPa.
func TestReferenceExercise(t *testing.T) {
	res, err := Calculate(steam.New(), Input{
		VolumeFlow:  0.015645,
		PressureIn:  100,
		PressureOut: 2.5,
		System:      units.SI,
	})
	if err != nil {
		t.Fatal(err)
	}

	// v_f(100 kPa) ≈ 0.001043 m³/kg.
	if res.SpecificVolume < 0.00104 || res.SpecificVolume > 0.00105 {
		t.Errorf("specific volume = %v", res.SpecificVolume)
	}
	// w = v·ΔP ≈ 2.50 kJ/kg, ṁ ≈ 15 kg/s, Ẇ ≈ 37.6 kW.
	if res.SpecificWork < 2.45 || res.SpecificWork > 2.56 {
		t.Errorf("specific work = %v kJ/kg", res.SpecificWork)
	}
	if res.MassFlow < 14.8 || res.MassFlow > 15.2 {
		t.Errorf("mass flow = %v kg/s", res.MassFlow)
	}
	if res.Power < 36.5 || res.Power > 38.5 {
		t.Errorf("power = %v kW", res.Power)
	}

	// Internal consistency of the energy balance.
	if got := res.MassFlow * res.SpecificWork; math.Abs(got-res.Power) > 1e-9 {
		t.Errorf("power %v != mdot*w %v", res.Power, got)
	}
	if got := res.EnthalpyOut - res.EnthalpyIn; math.Abs(got-res.SpecificWork) > 1e-9 {
		t.Errorf("h2-h1 = %v, want %v", got, res.SpecificWork)
	}

	if res.Units["power"] != "kW" {
		t.Errorf("power unit = %q", res.Units["power"])
	}
}

func TestRoundTripUnits(t *testing.T) {
	props := steam.New()
	si := Input{VolumeFlow: 0.015645, PressureIn: 100, PressureOut: 2.5, System: units.SI}
	imp := Input{
		VolumeFlow:  si.VolumeFlow * units.M3sToFt3s,
		PressureIn:  si.PressureIn * units.KPaToPsi,
		PressureOut: si.PressureOut * units.MPaToPsi,
		System:      units.Imperial,
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
	if d := relDiff(b.Power/units.KWToHP, a.Power); d > 1e-3 {
		t.Errorf("power round trip off by %v", d)
	}
	if d := relDiff(b.SpecificWork/units.KJkgToBtuLbm, a.SpecificWork); d > 1e-3 {
		t.Errorf("specific work round trip off by %v", d)
	}
	if d := relDiff(b.EnthalpyOut/units.KJkgToBtuLbm, a.EnthalpyOut); d > 1e-3 {
		t.Errorf("outlet enthalpy round trip off by %v", d)
	}
	if b.Units["power"] != "hp" {
		t.Errorf("imperial power unit = %q", b.Units["power"])
	}
}

func TestDegenerateInputs(t *testing.T) {
	props := steam.New()
	cases := []Input{
		{VolumeFlow: 0, PressureIn: 100, PressureOut: 2.5},
		{VolumeFlow: 0.01, PressureIn: 0, PressureOut: 2.5},
		{VolumeFlow: 0.01, PressureIn: 100, PressureOut: -1},
	}
	for _, in := range cases {
		_, err := Calculate(props, in)
		if k, ok := calcerr.KindOf(err); !ok || k != calcerr.DegenerateInput {
			t.Errorf("Calculate(%+v) error = %v, want DegenerateInput", in, err)
		}
	}
}

func TestInvalidInletPressure(t *testing.T) {
	// 50 MPa has no saturation state; the oracle failure surfaces as
	// InvalidPhysicalState.
	_, err := Calculate(steam.New(), Input{VolumeFlow: 0.01, PressureIn: 50000, PressureOut: 60})
	if k, ok := calcerr.KindOf(err); !ok || k != calcerr.InvalidPhysicalState {
		t.Errorf("error = %v, want InvalidPhysicalState", err)
	}
}
