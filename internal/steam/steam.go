// Package steam answers thermodynamic state queries for water and steam.
// A state is looked up either by pressure and temperature (single phase)
// or by pressure and vapor quality (two-phase saturation mixture), and
// carries the two properties the device calculators consume: specific
// enthalpy and specific volume.
//
// The backend evaluates the IAPWS-IF97 fundamental equations for
// regions 1, 2 and 5 plus the region 4 saturation line. The dense-fluid
// region around the critical point (region 3) is not covered; queries
// landing there fail with ErrOutOfRange like any other out-of-range state.
package steam

import (
	"errors"
	"fmt"
)

// State is a thermodynamic state at one point of a device.
type State struct {
	H float64 // specific enthalpy, kJ/kg
	V float64 // specific volume, m³/kg
}

// Properties is the query surface the calculators depend on.
type Properties interface {
	// AtPT resolves a single-phase state from pressure [MPa] and
	// temperature [K].
	AtPT(p, t float64) (State, error)
	// AtPX resolves a two-phase saturation state from pressure [MPa]
	// and vapor quality in [0,1]. Quality is never clamped.
	AtPX(p, x float64) (State, error)
}

// ErrOutOfRange marks a query outside the validity range of the
// correlations: the requested pair does not describe a physically
// realizable state the backend can evaluate.
var ErrOutOfRange = errors.New("state outside correlation range")

// PropertyError reports which query failed and why.
type PropertyError struct {
	Query  string // "PT" or "Px"
	P      float64
	Arg    float64 // temperature [K] or quality, depending on Query
	Reason string
}

func (e *PropertyError) Error() string {
	if e.Query == "Px" {
		return fmt.Sprintf("steam lookup (P=%g MPa, x=%g): %s", e.P, e.Arg, e.Reason)
	}
	return fmt.Sprintf("steam lookup (P=%g MPa, T=%g K): %s", e.P, e.Arg, e.Reason)
}

func (e *PropertyError) Unwrap() error { return ErrOutOfRange }

const (
	specificGasConstant = 0.461526 // kJ/(kg·K)

	tMin  = 273.15
	tMax2 = 1073.15 // upper temperature of region 2
	tMax5 = 2273.15 // upper temperature of region 5
	t13   = 623.15  // region 1 / region 3 boundary temperature

	pMin  = 611.213e-9 * 1e3 // triple point pressure, MPa
	pMax  = 100.0
	pMax5 = 50.0

	pCrit = 22.064 // MPa
)

// IF97 is the correlation-backed implementation of Properties.
type IF97 struct{}

func New() *IF97 { return &IF97{} }

func (f *IF97) AtPT(p, t float64) (State, error) {
	if p < pMin || p > pMax {
		return State{}, &PropertyError{Query: "PT", P: p, Arg: t, Reason: "pressure out of range"}
	}
	if t < tMin || t > tMax5 {
		return State{}, &PropertyError{Query: "PT", P: p, Arg: t, Reason: "temperature out of range"}
	}
	if t > tMax2 {
		if p > pMax5 {
			return State{}, &PropertyError{Query: "PT", P: p, Arg: t, Reason: "pressure out of range above 1073.15 K"}
		}
		return region5(p, t), nil
	}
	if t <= t13 {
		if p > pCrit {
			return region1(p, t), nil // compressed liquid
		}
		ts, err := SaturationTemperature(p)
		if err != nil {
			return State{}, err
		}
		if t <= ts {
			// On the saturation line itself the single-phase query is
			// ambiguous; resolve as saturated liquid, matching the
			// liquid-side tables.
			return region1(p, t), nil
		}
		return region2(p, t), nil
	}
	// 623.15 K < T <= 1073.15 K: region 2 up to the B23 line.
	if p > b23Pressure(t) {
		return State{}, &PropertyError{Query: "PT", P: p, Arg: t, Reason: "state in unsupported dense-fluid region"}
	}
	return region2(p, t), nil
}

func (f *IF97) AtPX(p, x float64) (State, error) {
	if x < 0 || x > 1 {
		return State{}, &PropertyError{Query: "Px", P: p, Arg: x, Reason: "quality outside [0,1]"}
	}
	if p < pMin || p > pCrit {
		return State{}, &PropertyError{Query: "Px", P: p, Arg: x, Reason: "no saturation state at this pressure"}
	}
	ts, err := SaturationTemperature(p)
	if err != nil {
		return State{}, err
	}
	if ts > t13 {
		return State{}, &PropertyError{Query: "Px", P: p, Arg: x, Reason: "saturation state above 16.529 MPa not supported"}
	}
	liq := region1(p, ts)
	vap := region2(p, ts)
	return State{
		H: liq.H + x*(vap.H-liq.H),
		V: liq.V + x*(vap.V-liq.V),
	}, nil
}
