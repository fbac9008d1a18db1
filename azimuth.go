package spherecoords

import "math"

const tau = 2.0 * math.Pi

// Returns the azimuth in its least absolute residue class, -π < azimuth <= π. Note that -π
// maps onto +π.
func AzimuthRange(azimuthRad float64) float64 {
	// double modulo to get 0 <= az < 2π regardless of the sign of the remainder
	az := math.Mod(math.Mod(azimuthRad, tau)+tau, tau)
	if az > math.Pi {
		az -= tau
	}
	return az
}

func (c *Converter) AzimuthRange(azimuthRad Values) Values {
	return azimuthRad.Map(AzimuthRange)
}
