package spherecoords

import "math"

// Returns the cartesian direction (cx, cy, cz) of length one for a direction given by its
// azimuth and zenith distance. The azimuth is range normalized first, the zenith is used as
// is. See CxCyCzToAzZd for the inverse.
func (c *Converter) AzZdToCxCyCz(azimuthRad Values, zenithRad Values) (cx Values, cy Values, cz Values, err error) {
	cx, err = group("az_zd_to_cx_cy_cz", []string{"azimuth", "zenith"}, azimuthRad, zenithRad)
	if err != nil {
		return Values{}, Values{}, Values{}, err
	}
	cy = cx.like(cx.Len())
	cz = cx.like(cx.Len())
	for i := range cx.xs {
		cx.xs[i], cy.xs[i], cz.xs[i] = AzZdToCxCyCz(azimuthRad.xs[i], zenithRad.xs[i])
	}
	return cx, cy, cz, nil
}

// Like AzZdToCxCyCz but drops cz. Only meaningful for directions above the x-y plane, since
// the sign of cz is lost.
func (c *Converter) AzZdToCxCy(azimuthRad Values, zenithRad Values) (cx Values, cy Values, err error) {
	cx, cy, _, err = c.AzZdToCxCyCz(azimuthRad, zenithRad)
	return cx, cy, err
}

// Returns azimuth and zenith distance of a cartesian direction. The vector is expected to
// have length one, cz slightly beyond ±1 is tolerated.
func (c *Converter) CxCyCzToAzZd(cx Values, cy Values, cz Values) (azimuthRad Values, zenithRad Values, err error) {
	azimuthRad, err = group("cx_cy_cz_to_az_zd", []string{"cx", "cy", "cz"}, cx, cy, cz)
	if err != nil {
		return Values{}, Values{}, err
	}
	zenithRad = azimuthRad.like(azimuthRad.Len())
	for i := range azimuthRad.xs {
		azimuthRad.xs[i] = math.Atan2(cy.xs[i], cx.xs[i])
		zenithRad.xs[i] = c.arccos(i, cz.xs[i])
	}
	return azimuthRad, zenithRad, nil
}

// Returns azimuth and zenith distance for the x and y components of a direction, assuming
// it points above the x-y plane. Elements where cz can not be restored are NaN.
func (c *Converter) CxCyToAzZd(cx Values, cy Values) (azimuthRad Values, zenithRad Values, err error) {
	cz, err := c.RestoreCz(cx, cy)
	if err != nil {
		return Values{}, Values{}, err
	}
	azimuthRad, zenithRad, err = c.CxCyCzToAzZd(cx, cy, cz)
	if err != nil {
		return Values{}, Values{}, err
	}
	for i, z := range cz.xs {
		if math.IsNaN(z) {
			azimuthRad.xs[i] = math.NaN()
		}
	}
	return azimuthRad, zenithRad, nil
}

func AzZdToCxCyCz(azimuthRad float64, zenithRad float64) (cx float64, cy float64, cz float64) {
	sinAz, cosAz := math.Sincos(AzimuthRange(azimuthRad))
	sinZd, cosZd := math.Sincos(zenithRad)
	return cosAz * sinZd, sinAz * sinZd, cosZd
}

func AzZdToCxCy(azimuthRad float64, zenithRad float64) (cx float64, cy float64) {
	cx, cy, _ = AzZdToCxCyCz(azimuthRad, zenithRad)
	return cx, cy
}

func CxCyCzToAzZd(cx float64, cy float64, cz float64) (azimuthRad float64, zenithRad float64) {
	return math.Atan2(cy, cx), std.arccos(0, cz)
}

func CxCyToAzZd(cx float64, cy float64) (azimuthRad float64, zenithRad float64) {
	cz := std.restoreCz(0, cx, cy)
	if math.IsNaN(cz) {
		return math.NaN(), math.NaN()
	}
	return CxCyCzToAzZd(cx, cy, cz)
}
