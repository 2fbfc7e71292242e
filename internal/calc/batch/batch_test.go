package batch

import (
	"testing"

	"Thermex/internal/calc/turbine"
	"Thermex/internal/calcerr"
	"Thermex/internal/steam"
	"Thermex/internal/units"
)

func point(quality float64) turbine.Input {
	return turbine.Input{
		MassFlow:    15,
		PressureIn:  5,
		TempIn:      350,
		VelocityIn:  70,
		PressureOut: 75,
		QualityOut:  quality,
		VelocityOut: 40,
		HeatLossI:   10,
		HeatLossII:  80,
		System:      units.SI,
	}
}

func TestQualitySweep(t *testing.T) {
	in := TurbineBatchInput{Items: []turbine.Input{point(0.85), point(0.9), point(0.95)}}
	out, err := CalculateTurbine(steam.New(), in)
	if err != nil {
		t.Fatal(err)
	}
	if len(out.Results) != 3 {
		t.Fatalf("got %d results, want 3", len(out.Results))
	}
	// Higher exhaust quality means higher h2 and less extracted power.
	for i := 1; i < len(out.Results); i++ {
		if out.Results[i].EnthalpyOut <= out.Results[i-1].EnthalpyOut {
			t.Errorf("h2 not increasing with quality: %v then %v",
				out.Results[i-1].EnthalpyOut, out.Results[i].EnthalpyOut)
		}
		if out.Results[i].PowerIV >= out.Results[i-1].PowerIV {
			t.Errorf("Wt_IV not decreasing with quality: %v then %v",
				out.Results[i-1].PowerIV, out.Results[i].PowerIV)
		}
	}
}

func TestEmptyBatch(t *testing.T) {
	_, err := CalculateTurbine(steam.New(), TurbineBatchInput{})
	if k, ok := calcerr.KindOf(err); !ok || k != calcerr.DegenerateInput {
		t.Errorf("error = %v, want DegenerateInput", err)
	}
}

func TestBadItemFailsWholeBatch(t *testing.T) {
	bad := point(0.9)
	bad.MassFlow = 0
	in := TurbineBatchInput{Items: []turbine.Input{point(0.9), bad}}
	if _, err := CalculateTurbine(steam.New(), in); err == nil {
		t.Error("expected error from degenerate item")
	}
}
