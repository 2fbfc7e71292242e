// Package turbine analyzes a steam turbine expanding from a superheated
// inlet to a two-phase outlet. Four power variants are produced, crossing
// two heat-loss scenarios with and without the kinetic energy change.
// Outlet pressure equals the specified exhaust pressure with no internal
// drop, per the source exercises.
package turbine

import (
	"Thermex/internal/calcerr"
	"Thermex/internal/steam"
	"Thermex/internal/units"
)

type Input struct {
	MassFlow    float64      `json:"flujo_masico"`   // kg/s | lbm/s
	PressureIn  float64      `json:"presion_1"`      // MPa | psi
	TempIn      float64      `json:"temperatura_1"`  // °C | °F
	VelocityIn  float64      `json:"velocidad_1"`    // m/s | ft/s
	PressureOut float64      `json:"presion_2"`      // kPa | psi
	QualityOut  float64      `json:"calidad_2"`      // [0,1]
	VelocityOut float64      `json:"velocidad_2"`    // m/s | ft/s
	HeatLossI   float64      `json:"perdida_calor_1"` // kJ/kg | Btu/lbm
	HeatLossII  float64      `json:"perdida_calor_2"` // kJ/kg | Btu/lbm
	System      units.System `json:"unit_system"`
}

type Result struct {
	DeltaKE     float64           `json:"delta_ec"`
	EnthalpyIn  float64           `json:"h1"`
	SpecVolIn   float64           `json:"v1"`
	AreaIn      float64           `json:"A1"`
	EnthalpyOut float64           `json:"h2"`
	SpecVolOut  float64           `json:"v2"`
	AreaOut     float64           `json:"A2"`
	DeltaH      float64           `json:"delta_h"`
	PowerI      float64           `json:"Wt_I"`   // heat loss I, with Δke
	PowerII     float64           `json:"Wt_II"`  // heat loss II, no Δke
	PowerIII    float64           `json:"Wt_III"` // adiabatic, with Δke
	PowerIV     float64           `json:"Wt_IV"`  // adiabatic, no Δke
	Units       map[string]string `json:"units"`
}

func labels(s units.System) map[string]string {
	if s == units.Imperial {
		return map[string]string{
			"mass_flow": "lbm/s", "pressure_mpa": "psi", "pressure_kpa": "psi",
			"temperature": "°F", "velocity": "ft/s", "quality": "",
			"heat_loss": "Btu/lbm", "area": "ft²", "enthalpy": "Btu/lbm",
			"spec_vol": "ft³/lbm", "spec_energy": "Btu/lbm", "power": "hp",
		}
	}
	return map[string]string{
		"mass_flow": "kg/s", "pressure_mpa": "MPa", "pressure_kpa": "kPa",
		"temperature": "°C", "velocity": "m/s", "quality": "",
		"heat_loss": "kJ/kg", "area": "m²", "enthalpy": "kJ/kg",
		"spec_vol": "m³/kg", "spec_energy": "kJ/kg", "power": "kW",
	}
}

func Calculate(props steam.Properties, in Input) (Result, error) {
	if in.MassFlow <= 0 {
		return Result{}, calcerr.Degenerate("mass flow must be positive")
	}
	if in.VelocityIn <= 0 || in.VelocityOut <= 0 {
		return Result{}, calcerr.Degenerate("velocities must be positive")
	}

	// Normalize to SI.
	var (
		mDot, p1MPa, t1C, v1, p2KPa, v2, qI, qII float64
	)
	x2 := in.QualityOut
	if in.System == units.Imperial {
		mDot = in.MassFlow / units.KgsToLbms
		p1MPa = in.PressureIn / units.MPaToPsi
		t1C = units.FToC(in.TempIn)
		v1 = in.VelocityIn / units.MsToFts
		p2KPa = in.PressureOut / units.KPaToPsi
		v2 = in.VelocityOut / units.MsToFts
		qI = in.HeatLossI / units.KJkgToBtuLbm
		qII = in.HeatLossII / units.KJkgToBtuLbm
	} else {
		mDot = in.MassFlow
		p1MPa = in.PressureIn
		t1C = in.TempIn
		v1 = in.VelocityIn
		p2KPa = in.PressureOut
		v2 = in.VelocityOut
		qI = in.HeatLossI
		qII = in.HeatLossII
	}
	p2MPa := p2KPa / 1000.0

	deltaKE := (v2*v2 - v1*v1) / 2000.0 // kJ/kg

	state1, err := props.AtPT(p1MPa, units.CToK(t1C))
	if err != nil {
		return Result{}, calcerr.FromOracle("inlet state", err)
	}
	area1 := mDot * state1.V / v1

	state2, err := props.AtPX(p2MPa, x2)
	if err != nil {
		return Result{}, calcerr.FromOracle("outlet saturation state", err)
	}
	area2 := mDot * state2.V / v2

	deltaH := state1.H - state2.H

	qDotI := -qI * mDot
	qDotII := -qII * mDot
	powerI := mDot*(deltaH-deltaKE) + qDotI
	powerII := mDot*deltaH + qDotII
	powerIII := mDot * (deltaH - deltaKE)
	powerIV := mDot * deltaH

	res := Result{
		DeltaKE:     deltaKE,
		EnthalpyIn:  state1.H,
		SpecVolIn:   state1.V,
		AreaIn:      area1,
		EnthalpyOut: state2.H,
		SpecVolOut:  state2.V,
		AreaOut:     area2,
		DeltaH:      deltaH,
		PowerI:      powerI,
		PowerII:     powerII,
		PowerIII:    powerIII,
		PowerIV:     powerIV,
		Units:       labels(in.System),
	}
	if in.System == units.Imperial {
		res.DeltaKE *= units.KJkgToBtuLbm
		res.EnthalpyIn *= units.KJkgToBtuLbm
		res.EnthalpyOut *= units.KJkgToBtuLbm
		res.SpecVolIn *= units.M3kgToFt3lbm
		res.SpecVolOut *= units.M3kgToFt3lbm
		res.AreaIn *= units.M2ToFt2
		res.AreaOut *= units.M2ToFt2
		res.DeltaH *= units.KJkgToBtuLbm
		res.PowerI *= units.KWToHP
		res.PowerII *= units.KWToHP
		res.PowerIII *= units.KWToHP
		res.PowerIV *= units.KWToHP
	}
	return res, nil
}
