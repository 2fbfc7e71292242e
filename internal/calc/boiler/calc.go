// Package boiler derives tube area, mass flow and inlet conditions for a
// steam boiler from the process pressure, inlet/outlet temperatures, the
// outlet velocity and the tube diameter. Outlet pressure is assumed equal
// to the process pressure (no tube pressure drop), following the textbook
// exercises this tool reproduces.
package boiler

import (
	"math"

	"Thermex/internal/calcerr"
	"Thermex/internal/steam"
	"Thermex/internal/units"
)

type Input struct {
	ProcessPressure float64      `json:"presion_proceso"`    // MPa | psi
	TempIn          float64      `json:"temperatura_entrada"` // °C | °F
	TempOut         float64      `json:"temperatura_salida"`  // °C | °F
	VelocityOut     float64      `json:"velocidad_salida"`    // m/s | ft/s
	TubeDiameter    float64      `json:"diametro_tubo"`       // mm | in
	System          units.System `json:"unit_system"`
}

type Result struct {
	Area           float64           `json:"area"`
	SpecVolumeIn   float64           `json:"v_especifico_entrada"`
	SpecVolumeOut  float64           `json:"v_especifico_salida"`
	MassFlow       float64           `json:"flujo_masico"`
	VolumeFlowIn   float64           `json:"flujo_volumetrico_entrada"`
	VelocityIn     float64           `json:"velocidad_entrada"`
	Units          map[string]string `json:"units"`
}

func labels(s units.System) map[string]string {
	if s == units.Imperial {
		return map[string]string{
			"pressure": "psi", "temperature": "°F", "velocity": "ft/s",
			"diameter": "in", "area": "ft²", "mass_flow": "lbm/s",
			"volume_flow": "ft³/s", "spec_vol": "ft³/lbm",
		}
	}
	return map[string]string{
		"pressure": "MPa", "temperature": "°C", "velocity": "m/s",
		"diameter": "mm", "area": "m²", "mass_flow": "kg/s",
		"volume_flow": "m³/s", "spec_vol": "m³/kg",
	}
}

func Calculate(props steam.Properties, in Input) (Result, error) {
	if in.TubeDiameter <= 0 {
		return Result{}, calcerr.Degenerate("tube diameter must be positive")
	}
	if in.VelocityOut <= 0 {
		return Result{}, calcerr.Degenerate("outlet velocity must be positive")
	}

	// Normalize to SI.
	var (
		pMPa    float64
		tInC    float64
		tOutC   float64
		vOutMS  float64
		dM      float64
	)
	if in.System == units.Imperial {
		pMPa = in.ProcessPressure * units.PsiToMPa
		tInC = units.FToC(in.TempIn)
		tOutC = units.FToC(in.TempOut)
		vOutMS = in.VelocityOut / units.MsToFts
		dM = in.TubeDiameter * units.InToM
	} else {
		pMPa = in.ProcessPressure
		tInC = in.TempIn
		tOutC = in.TempOut
		vOutMS = in.VelocityOut
		dM = in.TubeDiameter * units.MmToM
	}

	area := math.Pi * dM * dM / 4.0

	outlet, err := props.AtPT(pMPa, units.CToK(tOutC))
	if err != nil {
		return Result{}, calcerr.FromOracle("outlet state at the process pressure", err)
	}
	massFlow := area * vOutMS / outlet.V

	inlet, err := props.AtPT(pMPa, units.CToK(tInC))
	if err != nil {
		return Result{}, calcerr.FromOracle("inlet state at the process pressure", err)
	}
	volumeFlowIn := massFlow * inlet.V
	velocityIn := volumeFlowIn / area

	res := Result{
		Area:          area,
		SpecVolumeIn:  inlet.V,
		SpecVolumeOut: outlet.V,
		MassFlow:      massFlow,
		VolumeFlowIn:  volumeFlowIn,
		VelocityIn:    velocityIn,
		Units:         labels(in.System),
	}
	if in.System == units.Imperial {
		res.Area *= units.M2ToFt2
		res.SpecVolumeIn *= units.M3kgToFt3lbm
		res.SpecVolumeOut *= units.M3kgToFt3lbm
		res.MassFlow *= units.KgsToLbms
		res.VolumeFlowIn *= units.M3sToFt3s
		res.VelocityIn *= units.MsToFts
	}
	return res, nil
}
