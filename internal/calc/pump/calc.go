// Package pump sizes a water pump moving saturated liquid between two
// pressure levels: specific work, required power and outlet enthalpy.
package pump

import (
	"Thermex/internal/calcerr"
	"Thermex/internal/steam"
	"Thermex/internal/units"
)

type Input struct {
	VolumeFlow  float64      `json:"caudal_volumetrico"` // m³/s | ft³/s
	PressureIn  float64      `json:"presion_entrada"`    // kPa | psi
	PressureOut float64      `json:"presion_salida"`     // MPa | psi
	System      units.System `json:"unit_system"`
}

type Result struct {
	SpecificWork   float64           `json:"trabajo_especifico"`
	Power          float64           `json:"potencia_requerida"`
	EnthalpyIn     float64           `json:"entalpia_h1"`
	EnthalpyOut    float64           `json:"entalpia_h2"`
	SpecificVolume float64           `json:"volumen_especifico_m3_kg"` // always SI
	MassFlow       float64           `json:"flujo_masico_kgs"`         // always SI
	Units          map[string]string `json:"units"`
}

func labels(s units.System) map[string]string {
	if s == units.Imperial {
		return map[string]string{
			"power":         "hp",
			"specific_work": "Btu/lbm",
			"enthalpy":      "Btu/lbm",
			"volume_flow":   "ft³/s",
			"pressure_in":   "psi",
			"pressure_out":  "psi",
		}
	}
	return map[string]string{
		"power":         "kW",
		"specific_work": "kJ/kg",
		"enthalpy":      "kJ/kg",
		"volume_flow":   "m³/s",
		"pressure_in":   "kPa",
		"pressure_out":  "MPa",
	}
}

func Calculate(props steam.Properties, in Input) (Result, error) {
	if in.VolumeFlow <= 0 {
		return Result{}, calcerr.Degenerate("volumetric flow must be positive")
	}
	if in.PressureIn <= 0 || in.PressureOut <= 0 {
		return Result{}, calcerr.Degenerate("pressures must be positive")
	}

	// Normalize to SI.
	flow := in.VolumeFlow   // m³/s
	pInKPa := in.PressureIn // kPa
	var pOutMPa float64     // MPa
	if in.System == units.Imperial {
		flow = in.VolumeFlow / units.M3sToFt3s
		pInKPa = in.PressureIn * units.PsiToKPa
		pOutMPa = in.PressureOut * units.PsiToKPa / 1000.0
	} else {
		pOutMPa = in.PressureOut
	}
	pInMPa := pInKPa / 1000.0
	pOutKPa := pOutMPa * 1000.0

	// Saturated liquid at the inlet pressure.
	inlet, err := props.AtPX(pInMPa, 0)
	if err != nil {
		return Result{}, calcerr.FromOracle("saturated liquid at the inlet pressure", err)
	}

	massFlow := flow / inlet.V
	work := inlet.V * (pOutKPa - pInKPa) // kJ/kg
	power := massFlow * work             // kW
	hOut := inlet.H + work

	res := Result{
		SpecificWork:   work,
		Power:          power,
		EnthalpyIn:     inlet.H,
		EnthalpyOut:    hOut,
		SpecificVolume: inlet.V,
		MassFlow:       massFlow,
		Units:          labels(in.System),
	}
	if in.System == units.Imperial {
		res.SpecificWork *= units.KJkgToBtuLbm
		res.Power *= units.KWToHP
		res.EnthalpyIn *= units.KJkgToBtuLbm
		res.EnthalpyOut *= units.KJkgToBtuLbm
	}
	return res, nil
}
