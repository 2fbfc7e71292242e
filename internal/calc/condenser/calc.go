// Package condenser computes the cooling-water flow needed to condense a
// two-phase steam stream to saturated liquid at constant pressure.
package condenser

import (
	"Thermex/internal/calcerr"
	"Thermex/internal/steam"
	"Thermex/internal/units"
)

// cpWater is the specific heat of liquid cooling water, kJ/(kg·°C).
const cpWater = 4.186

type Input struct {
	VaporMassFlow float64      `json:"flujo_masico_vapor"` // kg/min | lbm/min
	Pressure      float64      `json:"presion"`            // kPa | psi
	QualityIn     float64      `json:"calidad_entrada"`    // [0,1]
	WaterDeltaT   float64      `json:"delta_t_agua"`       // °C | °F
	System        units.System `json:"unit_system"`
}

type Result struct {
	CoolingWaterFlow float64           `json:"m_dot_agua_enfriamiento"`
	HeatRate         float64           `json:"Q_punto"`
	EnthalpyF        float64           `json:"h_f"`
	EnthalpyG        float64           `json:"h_g"`
	EnthalpyFG       float64           `json:"h_fg"`
	EnthalpyIn       float64           `json:"h_entrada"`
	EnthalpyOut      float64           `json:"h_salida"`
	VaporMassFlowSI  float64           `json:"m_dot_v_kgs"` // always SI
	Units            map[string]string `json:"units"`
}

func labels(s units.System) map[string]string {
	if s == units.Imperial {
		return map[string]string{
			"mass_flow_in": "lbm/min", "mass_flow": "lbm/s", "pressure": "psi",
			"delta_t": "°F", "heat_rate": "Btu/s", "enthalpy": "Btu/lbm",
		}
	}
	return map[string]string{
		"mass_flow_in": "kg/min", "mass_flow": "kg/s", "pressure": "kPa",
		"delta_t": "°C", "heat_rate": "kW", "enthalpy": "kJ/kg",
	}
}

func Calculate(props steam.Properties, in Input) (Result, error) {
	if in.VaporMassFlow <= 0 {
		return Result{}, calcerr.Degenerate("vapor mass flow must be positive")
	}
	if in.QualityIn < 0 || in.QualityIn > 1 {
		return Result{}, calcerr.Degenerate("inlet quality must lie in [0,1]")
	}

	// Normalize to SI.
	var mDotV, pKPa, deltaT float64
	if in.System == units.Imperial {
		mDotV = in.VaporMassFlow / units.KgsToLbms / 60.0
		pKPa = in.Pressure / units.KPaToPsi
		deltaT = in.WaterDeltaT / units.KToR
	} else {
		mDotV = in.VaporMassFlow / 60.0
		pKPa = in.Pressure
		deltaT = in.WaterDeltaT
	}
	if deltaT == 0 {
		return Result{}, calcerr.Degenerate("cooling-water temperature rise cannot be zero")
	}
	pMPa := pKPa / 1000.0

	liq, err := props.AtPX(pMPa, 0)
	if err != nil {
		return Result{}, calcerr.FromOracle("saturated liquid state", err)
	}
	vap, err := props.AtPX(pMPa, 1)
	if err != nil {
		return Result{}, calcerr.FromOracle("saturated vapor state", err)
	}

	hFG := vap.H - liq.H
	hIn := liq.H + in.QualityIn*hFG
	hOut := liq.H

	heatRate := mDotV * (hIn - hOut) // kW
	waterFlow := heatRate / (cpWater * deltaT)

	res := Result{
		CoolingWaterFlow: waterFlow,
		HeatRate:         heatRate,
		EnthalpyF:        liq.H,
		EnthalpyG:        vap.H,
		EnthalpyFG:       hFG,
		EnthalpyIn:       hIn,
		EnthalpyOut:      hOut,
		VaporMassFlowSI:  mDotV,
		Units:            labels(in.System),
	}
	if in.System == units.Imperial {
		res.CoolingWaterFlow *= units.KgsToLbms
		res.HeatRate *= units.KWToBtuS
		res.EnthalpyF *= units.KJkgToBtuLbm
		res.EnthalpyG *= units.KJkgToBtuLbm
		res.EnthalpyFG *= units.KJkgToBtuLbm
		res.EnthalpyIn *= units.KJkgToBtuLbm
		res.EnthalpyOut *= units.KJkgToBtuLbm
	}
	return res, nil
}
