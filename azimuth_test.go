package spherecoords

import (
	"math"
	"testing"
)

func TestAzimuthRange(t *testing.T) {
	testCases := []struct {
		name   string
		az     float64
		expect float64
	}{
		{"zero", 0, 0},
		{"quarter", math.Pi / 2, math.Pi / 2},
		{"pi", math.Pi, math.Pi},
		{"just above pi", math.Pi + 1e-3, -math.Pi + 1e-3},
		{"negative quarter", -math.Pi / 2, -math.Pi / 2},
		{"negative pi", -math.Pi, math.Pi},
		{"two turns", 4*math.Pi + 1, 1},
		{"negative turns", -6*math.Pi - 1, -1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			checkClose(t, AzimuthRange(tc.az), tc.expect, 1e-9)
		})
	}

	if AzimuthRange(-math.Pi) != math.Pi {
		t.Errorf("expected -pi to map exactly onto pi, got %v", AzimuthRange(-math.Pi))
	}
}

func TestAzimuthRangeLaw(t *testing.T) {
	for _, az := range linspace(-100, 100, 10_001) {
		got := AzimuthRange(az)
		if got <= -math.Pi || got > math.Pi {
			t.Fatalf("azimuth %v mapped to %v, outside of (-pi, pi]", az, got)
		}
		turns := (az - got) / tau
		if math.Abs(turns-math.Round(turns)) > 1e-9 {
			t.Fatalf("azimuth %v mapped to %v which is not congruent mod 2pi", az, got)
		}
	}
}

func TestAzimuthRangeBatch(t *testing.T) {
	in := Batch([]float64{0, math.Pi / 2, math.Pi, math.Pi + 1e-2, -math.Pi})
	out := Default().AzimuthRange(in)
	if out.IsScalar() || out.Len() != 5 {
		t.Fatalf("expected a batch of 5, got %s", out.shape())
	}
	expect := []float64{0, math.Pi / 2, math.Pi, -math.Pi + 1e-2, math.Pi}
	for i, e := range expect {
		checkClose(t, out.At(i), e, 1e-9)
	}

	scalar := Default().AzimuthRange(Scalar(3))
	if !scalar.IsScalar() {
		t.Fatal("expected a scalar result for a scalar azimuth")
	}
	checkClose(t, scalar.Float(), 3, 1e-12)
}

func checkClose(t *testing.T, got float64, expect float64, tolerance float64) {
	t.Helper()
	if math.Abs(got-expect) > tolerance {
		t.Errorf("expected %v, got %v (tolerance %v)", expect, got, tolerance)
	}
}

func linspace(start float64, stop float64, num int) []float64 {
	out := make([]float64, num)
	if num == 1 {
		out[0] = start
		return out
	}
	step := (stop - start) / float64(num-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	return out
}

func deg2rad(d float64) float64 {
	return d * math.Pi / 180
}
