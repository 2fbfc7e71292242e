// Package compressor analyzes an air compressor with heat rejection,
// treating air as an ideal gas with constant specific heat. No steam
// property lookups are involved.
package compressor

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
	MassFlow     float64      `json:"flujo_masico"`     // kg/s | lbm/s
	HeatRejected float64      `json:"calor_disipado"`   // kJ/kg | Btu/lbm
	PressureIn   float64      `json:"presion_1"`        // kPa | psi
	TempIn       float64      `json:"temperatura_1"`    // K | °R
	VelocityIn   float64      `json:"velocidad_1"`      // m/s | ft/s
	PressureOut  float64      `json:"presion_2"`        // kPa | psi
	TempOut      float64      `json:"temperatura_2"`    // K | °R
	VelocityOut  float64      `json:"velocidad_2"`      // m/s | ft/s
	System       units.System `json:"unit_system"`
}

type Result struct {
	Power        float64           `json:"potencia_w"`
	VolumeFlowIn float64           `json:"flujo_volumetrico"`
	WorkPerMass  float64           `json:"trabajo_por_masa"`
	HeatRate     float64           `json:"Q_dot"`
	DeltaH       float64           `json:"delta_h"`
	DeltaKE      float64           `json:"delta_ec"`
	Units        map[string]string `json:"units"`
}

func labels(s units.System) map[string]string {
	if s == units.Imperial {
		return map[string]string{
			"power": "hp", "volume_flow": "ft³/s", "work_mass": "Btu/lbm",
			"heat_rate": "Btu/s", "enthalpy_change": "Btu/lbm", "ke_change": "Btu/lbm",
		}
	}
	return map[string]string{
		"power": "kW", "volume_flow": "m³/s", "work_mass": "kJ/kg",
		"heat_rate": "kW", "enthalpy_change": "kJ/kg", "ke_change": "kJ/kg",
	}
}

func Calculate(in Input) (Result, error) {
	if in.MassFlow <= 0 {
		return Result{}, calcerr.Degenerate("mass flow must be positive")
	}
	if in.PressureIn <= 0 {
		return Result{}, calcerr.Degenerate("inlet pressure must be positive")
	}

	// Normalize to SI.
	var mDot, qOut, p1KPa, t1K, v1, t2K, v2 float64
	if in.System == units.Imperial {
		mDot = in.MassFlow / units.KgsToLbms
		qOut = in.HeatRejected / units.KJkgToBtuLbm
		p1KPa = in.PressureIn / units.KPaToPsi
		t1K = in.TempIn / units.KToR
		v1 = in.VelocityIn / units.MsToFts
		t2K = in.TempOut / units.KToR
		v2 = in.VelocityOut / units.MsToFts
	} else {
		mDot = in.MassFlow
		qOut = in.HeatRejected
		p1KPa = in.PressureIn
		t1K = in.TempIn
		v1 = in.VelocityIn
		t2K = in.TempOut
		v2 = in.VelocityOut
	}

	volumeFlow := mDot * rAir * t1K / p1KPa

	heatRate := -mDot * qOut // kW, negative for rejection
	deltaH := cpAir * (t2K - t1K)
	deltaKE := (v2*v2 - v1*v1) / 2000.0
	power := heatRate - mDot*(deltaH+deltaKE)
	workPerMass := power / mDot

	res := Result{
		Power:        power,
		VolumeFlowIn: volumeFlow,
		WorkPerMass:  workPerMass,
		HeatRate:     heatRate,
		DeltaH:       deltaH,
		DeltaKE:      deltaKE,
		Units:        labels(in.System),
	}
	if in.System == units.Imperial {
		res.Power *= units.KWToHP
		res.VolumeFlowIn *= units.M3sToFt3s
		res.WorkPerMass *= units.KJkgToBtuLbm
		res.HeatRate *= units.KWToBtuS
		res.DeltaH *= units.KJkgToBtuLbm
		res.DeltaKE *= units.KJkgToBtuLbm
	}
	return res, nil
}
