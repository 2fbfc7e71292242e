package steam

import (
	"errors"
	"math"
	"testing"
)

func within(t *testing.T, name string, got, want, relTol float64) {
	t.Helper()
	if math.Abs(got-want) > relTol*math.Abs(want) {
		t.Errorf("%s = %.9g, want %.9g (rel tol %g)", name, got, want, relTol)
	}
}

// Verification points from the IF97 release tables.
func TestRegion1ReferencePoints(t *testing.T) {
	cases := []struct {
		p, tk, v, h float64
	}{
		{3, 300, 0.100215168e-2, 0.115331273e3},
		{80, 300, 0.971180894e-3, 0.184142828e3},
		{3, 500, 0.120241800e-2, 0.975542239e3},
	}
	for _, c := range cases {
		s := region1(c.p, c.tk)
		within(t, "v", s.V, c.v, 1e-5)
		within(t, "h", s.H, c.h, 1e-5)
	}
}

func TestRegion2ReferencePoints(t *testing.T) {
	cases := []struct {
		p, tk, v, h float64
	}{
		{0.0035, 300, 0.394913866e2, 0.254991145e4},
		{0.0035, 700, 0.923015898e2, 0.333568375e4},
		{30, 700, 0.542946619e-2, 0.263149474e4},
	}
	for _, c := range cases {
		s := region2(c.p, c.tk)
		within(t, "v", s.V, c.v, 1e-5)
		within(t, "h", s.H, c.h, 1e-5)
	}
}

func TestRegion5ReferencePoints(t *testing.T) {
	cases := []struct {
		p, tk, v, h float64
	}{
		{0.5, 1500, 0.138455090e1, 0.521976855e4},
		{30, 1500, 0.230761299e-1, 0.516723514e4},
	}
	for _, c := range cases {
		s := region5(c.p, c.tk)
		within(t, "v", s.V, c.v, 1e-4)
		within(t, "h", s.H, c.h, 1e-4)
	}
}

func TestSaturationLine(t *testing.T) {
	ts, err := SaturationTemperature(0.1)
	if err != nil {
		t.Fatal(err)
	}
	within(t, "Tsat(0.1 MPa)", ts, 372.756, 1e-4)

	ps, err := SaturationPressure(373.15)
	if err != nil {
		t.Fatal(err)
	}
	within(t, "Psat(373.15 K)", ps, 0.101325, 1e-3)

	if _, err := SaturationTemperature(30); err == nil {
		t.Error("expected error above critical pressure")
	}
	if _, err := SaturationPressure(700); err == nil {
		t.Error("expected error above critical temperature")
	}
}

func TestSaturatedLiquidAndVapor(t *testing.T) {
	f97 := New()

	liq, err := f97.AtPX(0.1, 0)
	if err != nil {
		t.Fatal(err)
	}
	within(t, "hf(0.1 MPa)", liq.H, 417.44, 2e-3)
	within(t, "vf(0.1 MPa)", liq.V, 0.001043, 2e-3)

	vap, err := f97.AtPX(0.1, 1)
	if err != nil {
		t.Fatal(err)
	}
	within(t, "hg(0.1 MPa)", vap.H, 2675.0, 2e-3)
	within(t, "vg(0.1 MPa)", vap.V, 1.694, 2e-3)

	mix, err := f97.AtPX(0.1, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	within(t, "h(x=0.5)", mix.H, (liq.H+vap.H)/2, 1e-12)
	within(t, "v(x=0.5)", mix.V, (liq.V+vap.V)/2, 1e-12)
}

func TestSuperheatedLookup(t *testing.T) {
	f97 := New()
	// Steam table point: 5 MPa, 350 °C.
	s, err := f97.AtPT(5, 623.15)
	if err != nil {
		t.Fatal(err)
	}
	within(t, "h(5 MPa, 350 °C)", s.H, 3068.3, 2e-3)
	within(t, "v(5 MPa, 350 °C)", s.V, 0.05194, 2e-3)
}

func TestCompressedLiquidLookup(t *testing.T) {
	f97 := New()
	// Liquid water at 5 MPa, 60 °C stays close to the saturated-liquid
	// properties at the same temperature.
	s, err := f97.AtPT(5, 333.15)
	if err != nil {
		t.Fatal(err)
	}
	within(t, "v(5 MPa, 60 °C)", s.V, 0.001015, 5e-3)
	if s.H < 240 || s.H > 265 {
		t.Errorf("h(5 MPa, 60 °C) = %v, want ~251 kJ/kg", s.H)
	}
}

func TestHighTemperatureUsesRegion5(t *testing.T) {
	f97 := New()
	s, err := f97.AtPT(5, 1573.15) // 1300 °C boiler slider limit
	if err != nil {
		t.Fatal(err)
	}
	if s.H < 5000 {
		t.Errorf("h(5 MPa, 1300 °C) = %v, want superheated > 5000 kJ/kg", s.H)
	}
}

func TestQualityNeverClamped(t *testing.T) {
	f97 := New()
	for _, x := range []float64{-0.01, 1.01, 2} {
		_, err := f97.AtPX(0.1, x)
		if err == nil {
			t.Fatalf("AtPX(0.1, %v) succeeded, want out-of-range error", x)
		}
		if !errors.Is(err, ErrOutOfRange) {
			t.Errorf("AtPX(0.1, %v) error = %v, want ErrOutOfRange", x, err)
		}
	}
}

func TestInvalidStates(t *testing.T) {
	f97 := New()
	cases := []struct {
		name string
		call func() error
	}{
		{"pressure above range", func() error { _, err := f97.AtPT(120, 500); return err }},
		{"temperature below range", func() error { _, err := f97.AtPT(1, 200); return err }},
		{"saturation above critical", func() error { _, err := f97.AtPX(25, 0.5); return err }},
		{"dense fluid region", func() error { _, err := f97.AtPT(40, 650); return err }},
	}
	for _, c := range cases {
		err := c.call()
		if err == nil {
			t.Errorf("%s: expected error", c.name)
			continue
		}
		if !errors.Is(err, ErrOutOfRange) {
			t.Errorf("%s: error %v not ErrOutOfRange", c.name, err)
		}
		var pe *PropertyError
		if !errors.As(err, &pe) {
			t.Errorf("%s: error %v not a *PropertyError", c.name, err)
		}
	}
}
