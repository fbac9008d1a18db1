package spherecoords

import (
	"errors"
	"math"
	"testing"
)

func TestRoundTripScalarsHemisphere(t *testing.T) {
	for _, az := range linspace(deg2rad(-380), deg2rad(380), 25) {
		for _, zd := range linspace(0, deg2rad(89), 25) {
			cx, cy := AzZdToCxCy(az, zd)
			azBack, zdBack := CxCyToAzZd(cx, cy)
			delta := AngleBetweenAzZd(az, zd, azBack, zdBack)
			if !(delta < deg2rad(1e-3)) {
				t.Errorf("az=%v zd=%v came back as az=%v zd=%v, %v rad apart", az, zd, azBack, zdBack, delta)
			}
		}
	}
}

func TestRoundTripScalarsFullSphere(t *testing.T) {
	for _, az := range linspace(deg2rad(-380), deg2rad(380), 25) {
		for _, zd := range linspace(0, deg2rad(180), 50) {
			cx, cy, cz := AzZdToCxCyCz(az, zd)
			azBack, zdBack := CxCyCzToAzZd(cx, cy, cz)
			delta := AngleBetweenAzZd(az, zd, azBack, zdBack)
			if !(delta < deg2rad(1e-3)) {
				t.Errorf("az=%v zd=%v came back as az=%v zd=%v, %v rad apart", az, zd, azBack, zdBack, delta)
			}
		}
	}
}

func TestRoundTripBatchHemisphere(t *testing.T) {
	const num = 625
	conv := Default()
	az := Batch(linspace(deg2rad(-380), deg2rad(380), num))
	zd := Batch(linspace(0, deg2rad(89), num))

	cx, cy, err := conv.AzZdToCxCy(az, zd)
	if err != nil {
		t.Fatal(err)
	}
	checkBatch(t, num, cx, cy)

	azBack, zdBack, err := conv.CxCyToAzZd(cx, cy)
	if err != nil {
		t.Fatal(err)
	}
	checkBatch(t, num, azBack, zdBack)

	delta, err := conv.AngleBetweenAzZd(az, zd, azBack, zdBack)
	if err != nil {
		t.Fatal(err)
	}
	checkBatch(t, num, delta)
	for i, d := range delta.Floats() {
		if !(d < deg2rad(1e-3)) {
			t.Errorf("element %d is %v rad off after the round trip", i, d)
		}
	}
}

func TestRoundTripBatchFullSphere(t *testing.T) {
	const num = 625
	conv := Default()
	az := Batch(linspace(deg2rad(-380), deg2rad(380), num))
	zd := Batch(linspace(0, deg2rad(180), num))

	cx, cy, cz, err := conv.AzZdToCxCyCz(az, zd)
	if err != nil {
		t.Fatal(err)
	}
	checkBatch(t, num, cx, cy, cz)

	azBack, zdBack, err := conv.CxCyCzToAzZd(cx, cy, cz)
	if err != nil {
		t.Fatal(err)
	}
	checkBatch(t, num, azBack, zdBack)

	delta, err := conv.AngleBetweenAzZd(az, zd, azBack, zdBack)
	if err != nil {
		t.Fatal(err)
	}
	for i, d := range delta.Floats() {
		if !(d < deg2rad(1e-3)) {
			t.Errorf("element %d is %v rad off after the round trip", i, d)
		}
	}
}

func TestAzZdToCxCyCzAxes(t *testing.T) {
	testCases := []struct {
		name       string
		az, zd     float64
		cx, cy, cz float64
	}{
		{"zenith", 0, 0, 0, 0, 1},
		{"nadir", 0, math.Pi, 0, 0, -1},
		{"x axis", 0, math.Pi / 2, 1, 0, 0},
		{"y axis", math.Pi / 2, math.Pi / 2, 0, 1, 0},
		{"minus x axis", math.Pi, math.Pi / 2, -1, 0, 0},
		{"minus y axis wrapped", 3 * math.Pi / 2, math.Pi / 2, 0, -1, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cx, cy, cz := AzZdToCxCyCz(tc.az, tc.zd)
			checkClose(t, cx, tc.cx, 1e-12)
			checkClose(t, cy, tc.cy, 1e-12)
			checkClose(t, cz, tc.cz, 1e-12)
		})
	}
}

func TestCxCyToAzZdOutsideUnitCircle(t *testing.T) {
	az, zd := CxCyToAzZd(1, 1)
	if !math.IsNaN(az) || !math.IsNaN(zd) {
		t.Errorf("expected NaN azimuth and zenith, got %v, %v", az, zd)
	}

	conv, logs := observedConverter(t, DefaultEps)
	azs, zds, err := conv.CxCyToAzZd(Batch([]float64{0, 1, 0.6}), Batch([]float64{0, 1, 0.8 + 1e-7}))
	if err != nil {
		t.Fatal(err)
	}
	if !math.IsNaN(azs.At(1)) || !math.IsNaN(zds.At(1)) {
		t.Errorf("expected NaN for the second element, got %v, %v", azs.At(1), zds.At(1))
	}
	checkClose(t, zds.At(0), 0, 1e-12)
	checkClose(t, zds.At(2), math.Pi/2, 1e-6)
	checkClose(t, azs.At(2), math.Atan2(0.8, 0.6), 1e-6)
	if logs.Len() != 1 {
		t.Errorf("expected one domain warning, got %d", logs.Len())
	}
}

func TestTransformShapeMismatch(t *testing.T) {
	conv := Default()
	testCases := []struct {
		name string
		call func() error
	}{
		{"az scalar zd batch", func() error {
			_, _, _, err := conv.AzZdToCxCyCz(Scalar(0.0), Batch([]float64{0, 1}))
			return err
		}},
		{"az zd lengths", func() error {
			_, _, err := conv.AzZdToCxCy(Batch([]float64{0, 1, 2}), Batch([]float64{0, 1}))
			return err
		}},
		{"cx cy cz lengths", func() error {
			_, _, err := conv.CxCyCzToAzZd(Batch([]float64{0}), Batch([]float64{0}), Batch([]float64{0, 1}))
			return err
		}},
		{"cx cy scalar-ness", func() error {
			_, _, err := conv.CxCyToAzZd(Batch([]float64{0}), Scalar(0))
			return err
		}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.call()
			var shapeErr *ShapeMismatchError
			if !errors.As(err, &shapeErr) || !errors.Is(err, ErrShapeMismatch) {
				t.Errorf("expected a shape mismatch, got %v", err)
			}
		})
	}
}

func TestTransformIntegerScalars(t *testing.T) {
	cx, cy, cz, err := Default().AzZdToCxCyCz(Scalar(int64(0)), Scalar(int32(0)))
	if err != nil {
		t.Fatal(err)
	}
	if !cx.IsScalar() || !cy.IsScalar() || !cz.IsScalar() {
		t.Fatal("expected scalar outputs for scalar inputs")
	}
	checkClose(t, cz.Float(), 1, 0)
}

func checkBatch(t *testing.T, num int, vals ...Values) {
	t.Helper()
	for i, v := range vals {
		if v.IsScalar() || v.Len() != num {
			t.Errorf("output %d: expected a batch of %d, got %s", i, num, v.shape())
		}
	}
}
