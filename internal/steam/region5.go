package steam

import "math"

// Region 5: steam above 1073.15 K up to 2273.15 K and 50 MPa, reached by
// the boiler's high-temperature inputs. Reduced by p* = 1 MPa, T* = 1000 K.

var region5J0 = [6]float64{0, 1, -3, -2, -1, 2}

var region5N0 = [6]float64{
	-0.13179983674201e2, 0.68540841634434e1, -0.24805148933466e-1,
	0.36901534980333, -0.31161318213925e1, -0.32961626538917,
}

var region5I = [6]float64{1, 1, 1, 2, 2, 3}

var region5J = [6]float64{1, 2, 3, 3, 9, 7}

var region5N = [6]float64{
	0.15736404855259e-2, 0.90153761673944e-3, -0.50270077677648e-2,
	0.22440037409485e-5, -0.41163275453471e-5, 0.37919454822955e-7,
}

func region5(p, t float64) State {
	pi := p
	tau := 1000.0 / t

	gammaTau0 := 0.0
	for i := range region5N0 {
		gammaTau0 += region5N0[i] * region5J0[i] * math.Pow(tau, region5J0[i]-1)
	}

	var gammaPiR, gammaTauR float64
	for i := range region5N {
		gammaPiR += region5N[i] * region5I[i] * math.Pow(pi, region5I[i]-1) * math.Pow(tau, region5J[i])
		gammaTauR += region5N[i] * math.Pow(pi, region5I[i]) * region5J[i] * math.Pow(tau, region5J[i]-1)
	}

	return State{
		H: specificGasConstant * t * tau * (gammaTau0 + gammaTauR),
		V: specificGasConstant * 1e-3 * t / p * (1.0 + pi*gammaPiR),
	}
}
