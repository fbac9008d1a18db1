// Package corsika maps azimuth and zenith distance onto the angle conventions of the CORSIKA
// air shower simulation, and maps the direction cosines CORSIKA reports for Cherenkov photons
// back onto cartesian directions.
//
// The functions are elementwise on float64. Apply them to a batch with
// spherecoords.Values.Map.
package corsika

import "math"

// CORSIKA's theta is the zenith distance.
func ZdToTheta(zenithRad float64) float64 {
	return zenithRad
}

func ThetaToZd(thetaRad float64) float64 {
	return thetaRad
}

// CORSIKA's phi points where the particle's momentum points, which is opposite to the
// azimuth the particle is coming from.
func AzToPhi(azimuthRad float64) float64 {
	return azimuthRad - math.Pi
}

// The result is not range normalized, pass it through spherecoords.AzimuthRange if needed.
func PhiToAz(phiRad float64) float64 {
	return phiRad + math.Pi
}

// Converts the x direction cosine of a Cherenkov photon (ux) as written by CORSIKA into cx.
// The sign flip was established against CORSIKA's observed output, not derived.
func UxToCx(ux float64) float64 {
	return -ux
}

// Converts the y direction cosine of a Cherenkov photon (vy) as written by CORSIKA into cy.
func VyToCy(vy float64) float64 {
	return -vy
}

func CxToUx(cx float64) float64 {
	return -cx
}

func CyToVy(cy float64) float64 {
	return -cy
}
