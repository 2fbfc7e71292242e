// Package units holds the SI/Imperial conversion factors shared by every
// device calculator. All internal computation happens in SI; conversion
// to and from Imperial occurs exactly once on input and once on output.
package units

import (
	"encoding/json"
	"fmt"
	"strings"
)

// System selects which conversion factors and display labels apply.
type System int

const (
	SI System = iota
	Imperial
)

func (s System) String() string {
	if s == Imperial {
		return "imperial"
	}
	return "SI"
}

func (s System) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *System) UnmarshalJSON(b []byte) error {
	var v string
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	parsed, err := Parse(v)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Parse accepts the wire names of the two systems.
func Parse(v string) (System, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "si", "":
		return SI, nil
	case "imperial", "english":
		return Imperial, nil
	}
	return SI, fmt.Errorf("unknown unit system %q", v)
}

// Conversion factors, exact to the published constants used by the
// reference exercises.
const (
	PsiToKPa     = 6.89476
	PsiToMPa     = 0.00689476
	MPaToPsi     = 145.038
	KPaToPsi     = 0.145038
	M3sToFt3s    = 35.3147
	KWToHP       = 1.34102
	KWToBtuS     = 0.947817
	KJkgToBtuLbm = 0.429923
	KgsToLbms    = 2.20462
	MsToFts      = 3.28084
	M2ToFt2      = 10.7639
	M3kgToFt3lbm = 16.0185
	Cm2ToIn2     = 0.155
	InToM        = 0.0254
	MmToM        = 0.001
	KToR         = 1.8
)

// FToC converts a Fahrenheit temperature to Celsius.
func FToC(f float64) float64 { return (f - 32.0) * 5.0 / 9.0 }

// CToF converts a Celsius temperature to Fahrenheit.
func CToF(c float64) float64 { return c*9.0/5.0 + 32.0 }

// CToK converts a Celsius temperature to Kelvin.
func CToK(c float64) float64 { return c + 273.15 }

// KToC converts a Kelvin temperature to Celsius.
func KToC(k float64) float64 { return k - 273.15 }
