// Package nozzle analyzes an air nozzle: mass flow from the inlet
// section, outlet temperature from the kinetic energy exchange and the
// outlet area from continuity. Air is treated as an ideal gas with
// constant specific heat.
package nozzle

import (
	"Thermex/internal/calcerr"
	"Thermex/internal/units"
)

// Air constants, SI.
const (
	rAir  = 0.287 // kJ/(kg·K)
	cpAir = 1.005 // kJ/(kg·K)
)

type Input struct {
	PressureIn  float64      `json:"presion_1"`     // kPa | psi
	TempIn      float64      `json:"temperatura_1"` // °C | °F
	VelocityIn  float64      `json:"velocidad_1"`   // m/s | ft/s
	AreaIn      float64      `json:"area_1"`        // cm² | in²
	PressureOut float64      `json:"presion_2"`     // kPa | psi
	VelocityOut float64      `json:"velocidad_2"`   // m/s | ft/s
	System      units.System `json:"unit_system"`
}

type Result struct {
	MassFlow  float64           `json:"m_dot"`
	TempOutC  float64           `json:"T2_C"` // °C | °F
	TempOutK  float64           `json:"T2_K"` // K | °R
	AreaOut   float64           `json:"A2"`   // cm² | in²
	AreaRatio float64           `json:"ratio"`
	Units     map[string]string `json:"units"`
}

func labels(s units.System) map[string]string {
	if s == units.Imperial {
		return map[string]string{
			"pressure": "psi", "temperature_c": "°F", "temperature_k": "°R",
			"velocity": "ft/s", "area": "in²", "mass_flow": "lbm/s",
		}
	}
	return map[string]string{
		"pressure": "kPa", "temperature_c": "°C", "temperature_k": "K",
		"velocity": "m/s", "area": "cm²", "mass_flow": "kg/s",
	}
}

func Calculate(in Input) (Result, error) {
	if in.PressureIn <= 0 || in.PressureOut <= 0 {
		return Result{}, calcerr.Degenerate("pressures must be positive")
	}
	if in.AreaIn <= 0 {
		return Result{}, calcerr.Degenerate("inlet area must be positive")
	}
	if in.VelocityIn <= 0 || in.VelocityOut <= 0 {
		return Result{}, calcerr.Degenerate("velocities must be positive")
	}

	// Normalize to SI.
	var p1KPa, t1C, v1, a1Cm2, p2KPa, v2 float64
	if in.System == units.Imperial {
		p1KPa = in.PressureIn / units.KPaToPsi
		t1C = units.FToC(in.TempIn)
		v1 = in.VelocityIn / units.MsToFts
		a1Cm2 = in.AreaIn / units.Cm2ToIn2
		p2KPa = in.PressureOut / units.KPaToPsi
		v2 = in.VelocityOut / units.MsToFts
	} else {
		p1KPa = in.PressureIn
		t1C = in.TempIn
		v1 = in.VelocityIn
		a1Cm2 = in.AreaIn
		p2KPa = in.PressureOut
		v2 = in.VelocityOut
	}

	p1Pa := p1KPa * 1000.0
	p2Pa := p2KPa * 1000.0
	t1K := units.CToK(t1C)
	a1M2 := a1Cm2 / 1e4

	specVol1 := rAir * 1000.0 * t1K / p1Pa
	massFlow := a1M2 * v1 / specVol1

	// Adiabatic nozzle, no work: cp·dT balances the kinetic energy change.
	t2K := t1K + (v1*v1-v2*v2)/(2.0*cpAir*1000.0)

	specVol2 := rAir * 1000.0 * t2K / p2Pa
	a2M2 := massFlow * specVol2 / v2
	ratio := a2M2 / a1M2

	res := Result{
		MassFlow:  massFlow,
		TempOutC:  units.KToC(t2K),
		TempOutK:  t2K,
		AreaOut:   a2M2 * 1e4,
		AreaRatio: ratio,
		Units:     labels(in.System),
	}
	if in.System == units.Imperial {
		res.MassFlow = massFlow * units.KgsToLbms
		res.TempOutC = units.CToF(units.KToC(t2K))
		res.TempOutK = t2K * units.KToR
		res.AreaOut = a2M2 * units.M2ToFt2 * 144.0 // m² to in²
	}
	return res, nil
}
