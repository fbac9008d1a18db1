// Package sampling draws random directions, either roughly spread over the upper hemisphere
// or uniformly within a cone around a given pointing.
package sampling

import (
	"errors"
	"fmt"
	"math"

	"github.com/MichaelTJones/pcg"
	"github.com/owlpinetech/spherecoords"
)

const (
	// Lower bound for drawn cz, keeps directions away from the horizon.
	MinCz float64 = 1e-3

	pcgSequence uint64 = 0xda3e39cb94b95bdb
)

var (
	ErrNegativeSize    = errors.New("number of samples must not be negative")
	ErrHalfAngleBounds = errors.New("half angles must satisfy 0 <= min <= max <= pi")
)

// A seeded PCG random number source. Not safe for concurrent use.
type Source struct {
	rng *pcg.PCG32
}

func NewSource(seed uint64) *Source {
	rng := pcg.NewPCG32()
	rng.Seed(seed, pcgSequence)
	return &Source{rng: rng}
}

// Uniform in [0, 1) with 53 random bits.
func (s *Source) Float64() float64 {
	hi := uint64(s.rng.Random()) >> 5
	lo := uint64(s.rng.Random()) >> 6
	return float64(hi<<26|lo) / (1 << 53)
}

// Uniform in [low, high).
func (s *Source) Uniform(low float64, high float64) float64 {
	return low + (high-low)*s.Float64()
}

// Draws one direction of unit length with cx, cy from [-1, 1) and cz from [MinCz, 1) before
// normalization.
func DrawCxCyCz(src *Source) (cx float64, cy float64, cz float64) {
	cx = src.Uniform(-1, 1)
	cy = src.Uniform(-1, 1)
	cz = src.Uniform(MinCz, 1)
	norm := math.Sqrt(cx*cx + cy*cy + cz*cz)
	return cx / norm, cy / norm, cz / norm
}

func DrawCxCy(src *Source) (cx float64, cy float64) {
	cx, cy, _ = DrawCxCyCz(src)
	return cx, cy
}

func DrawAzZd(src *Source) (azimuthRad float64, zenithRad float64) {
	return spherecoords.CxCyCzToAzZd(DrawCxCyCz(src))
}

// Draws n directions as batches.
func DrawCxCyCzN(src *Source, n int) (cx spherecoords.Values, cy spherecoords.Values, cz spherecoords.Values, err error) {
	if n < 0 {
		return cx, cy, cz, ErrNegativeSize
	}
	xs, ys, zs := make([]float64, n), make([]float64, n), make([]float64, n)
	for i := 0; i < n; i++ {
		xs[i], ys[i], zs[i] = DrawCxCyCz(src)
	}
	return spherecoords.Batch(xs), spherecoords.Batch(ys), spherecoords.Batch(zs), nil
}

func DrawCxCyN(src *Source, n int) (cx spherecoords.Values, cy spherecoords.Values, err error) {
	cx, cy, _, err = DrawCxCyCzN(src, n)
	return cx, cy, err
}

func DrawAzZdN(src *Source, n int) (azimuthRad spherecoords.Values, zenithRad spherecoords.Values, err error) {
	cx, cy, cz, err := DrawCxCyCzN(src, n)
	if err != nil {
		return azimuthRad, zenithRad, err
	}
	return spherecoords.Default().CxCyCzToAzZd(cx, cy, cz)
}

// Precomputed rotation and band of a cone around a pointing.
type coneFrame struct {
	cosMin, cosMax float64
	sinAz, cosAz   float64
	sinZd, cosZd   float64
}

func newConeFrame(azimuthRad float64, zenithRad float64, minHalfAngleRad float64, maxHalfAngleRad float64) (coneFrame, error) {
	if minHalfAngleRad < 0 || maxHalfAngleRad > math.Pi || minHalfAngleRad > maxHalfAngleRad {
		return coneFrame{}, fmt.Errorf("half angles [%g, %g]: %w", minHalfAngleRad, maxHalfAngleRad, ErrHalfAngleBounds)
	}
	f := coneFrame{
		cosMin: math.Cos(minHalfAngleRad),
		cosMax: math.Cos(maxHalfAngleRad),
	}
	f.sinAz, f.cosAz = math.Sincos(azimuthRad)
	f.sinZd, f.cosZd = math.Sincos(zenithRad)
	return f, nil
}

func (f coneFrame) draw(src *Source) (azimuthRad float64, zenithRad float64) {
	// a direction around +z ...
	cosT := src.Uniform(f.cosMax, f.cosMin)
	sinT := math.Sqrt(math.Max(0, 1-cosT*cosT))
	sinP, cosP := math.Sincos(src.Uniform(-math.Pi, math.Pi))
	x, y, z := sinT*cosP, sinT*sinP, cosT

	// ... tilted by the zenith around y, then turned by the azimuth around z
	x, z = f.cosZd*x+f.sinZd*z, -f.sinZd*x+f.cosZd*z
	x, y = f.cosAz*x-f.sinAz*y, f.sinAz*x+f.cosAz*y

	return spherecoords.CxCyCzToAzZd(x, y, z)
}

// Draws one direction uniformly distributed in solid angle within the band of half angles
// [minHalfAngleRad, maxHalfAngleRad] around the pointing (azimuthRad, zenithRad).
func DrawAzZdInCone(src *Source, azimuthRad float64, zenithRad float64, minHalfAngleRad float64, maxHalfAngleRad float64) (az float64, zd float64, err error) {
	f, err := newConeFrame(azimuthRad, zenithRad, minHalfAngleRad, maxHalfAngleRad)
	if err != nil {
		return math.NaN(), math.NaN(), err
	}
	az, zd = f.draw(src)
	return az, zd, nil
}

// Like DrawAzZdInCone, drawing a batch of n directions.
func UniformAzZdInCone(src *Source, azimuthRad float64, zenithRad float64, minHalfAngleRad float64, maxHalfAngleRad float64, n int) (az spherecoords.Values, zd spherecoords.Values, err error) {
	if n < 0 {
		return az, zd, ErrNegativeSize
	}
	f, err := newConeFrame(azimuthRad, zenithRad, minHalfAngleRad, maxHalfAngleRad)
	if err != nil {
		return az, zd, err
	}

	azs := make([]float64, n)
	zds := make([]float64, n)
	for i := 0; i < n; i++ {
		azs[i], zds[i] = f.draw(src)
	}
	return spherecoords.Batch(azs), spherecoords.Batch(zds), nil
}
