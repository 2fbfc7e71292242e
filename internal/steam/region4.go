package steam

import "math"

// Region 4: the saturation line, 273.15 K to the critical point.

var region4N = [10]float64{
	0.11670521452767e4, -0.72421316703206e6, -0.17073846940092e2,
	0.12020824702470e5, -0.32325550322333e7, 0.14915108613530e2,
	-0.48232657361591e4, 0.40511340542057e6, -0.23855557567849,
	0.65017534844798e3,
}

// SaturationTemperature returns Tsat [K] for a pressure p [MPa] on the
// saturation line.
func SaturationTemperature(p float64) (float64, error) {
	if p < pMin || p > pCrit {
		return 0, &PropertyError{Query: "Px", P: p, Arg: 0, Reason: "no saturation state at this pressure"}
	}
	n := region4N
	beta := math.Pow(p, 0.25)
	e := beta*beta + n[2]*beta + n[5]
	f := n[0]*beta*beta + n[3]*beta + n[6]
	g := n[1]*beta*beta + n[4]*beta + n[7]
	d := 2.0 * g / (-f - math.Sqrt(f*f-4.0*e*g))
	return (n[9] + d - math.Sqrt((n[9]+d)*(n[9]+d)-4.0*(n[8]+n[9]*d))) / 2.0, nil
}

// SaturationPressure returns Psat [MPa] for a temperature t [K] on the
// saturation line.
func SaturationPressure(t float64) (float64, error) {
	if t < tMin || t > 647.096 {
		return 0, &PropertyError{Query: "PT", P: 0, Arg: t, Reason: "no saturation state at this temperature"}
	}
	n := region4N
	theta := t + n[8]/(t-n[9])
	a := theta*theta + n[0]*theta + n[1]
	b := n[2]*theta*theta + n[3]*theta + n[4]
	c := n[5]*theta*theta + n[6]*theta + n[7]
	base := 2.0 * c / (-b + math.Sqrt(b*b-4.0*a*c))
	return base * base * base * base, nil
}
