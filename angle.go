package spherecoords

import (
	"fmt"

	"github.com/golang/geo/r3"
)

// Returns the angle between two cartesian directions. Neither needs to be of unit length.
// Either side may be a scalar, in which case it is compared against every direction of the
// other side.
func (c *Converter) AngleBetweenCxCyCz(cx1 Values, cy1 Values, cz1 Values, cx2 Values, cy2 Values, cz2 Values) (Values, error) {
	const op = "angle_between_cx_cy_cz"
	first, err := group(op, []string{"cx1", "cy1", "cz1"}, cx1, cy1, cz1)
	if err != nil {
		return Values{}, err
	}
	second, err := group(op, []string{"cx2", "cy2", "cz2"}, cx2, cy2, cz2)
	if err != nil {
		return Values{}, err
	}
	angle, err := broadcast(op, "cx2", first, second)
	if err != nil {
		return Values{}, err
	}
	for i := range angle.xs {
		v1 := r3.Vector{X: cx1.At(i), Y: cy1.At(i), Z: cz1.At(i)}
		v2 := r3.Vector{X: cx2.At(i), Y: cy2.At(i), Z: cz2.At(i)}
		angle.xs[i] = c.angleBetween(i, v1, v2)
	}
	return angle, nil
}

// Like AngleBetweenCxCyCz, restoring cz on both sides. Assumes all directions point above
// the x-y plane.
func (c *Converter) AngleBetweenCxCy(cx1 Values, cy1 Values, cx2 Values, cy2 Values) (Values, error) {
	cz1, err := c.RestoreCz(cx1, cy1)
	if err != nil {
		return Values{}, err
	}
	cz2, err := c.RestoreCz(cx2, cy2)
	if err != nil {
		return Values{}, err
	}
	return c.AngleBetweenCxCyCz(cx1, cy1, cz1, cx2, cy2, cz2)
}

// Returns the angle between two directions given in azimuth and zenith distance. Valid on
// the full sphere.
func (c *Converter) AngleBetweenAzZd(azimuth1Rad Values, zenith1Rad Values, azimuth2Rad Values, zenith2Rad Values) (Values, error) {
	cx1, cy1, cz1, err := c.AzZdToCxCyCz(azimuth1Rad, zenith1Rad)
	if err != nil {
		return Values{}, err
	}
	cx2, cy2, cz2, err := c.AzZdToCxCyCz(azimuth2Rad, zenith2Rad)
	if err != nil {
		return Values{}, err
	}
	return c.AngleBetweenCxCyCz(cx1, cy1, cz1, cx2, cy2, cz2)
}

// Pairwise angles between two equally long lists of 3-vectors.
func (c *Converter) AngleBetweenVectors(a []r3.Vector, b []r3.Vector) ([]float64, error) {
	if len(a) != len(b) {
		return nil, &ShapeMismatchError{
			Operation: "angle_between_xyz",
			Argument:  "b",
			Expected:  shapeOfVectors(a),
			Got:       shapeOfVectors(b),
		}
	}
	angles := make([]float64, len(a))
	for i := range a {
		angles[i] = c.angleBetween(i, a[i], b[i])
	}
	return angles, nil
}

func (c *Converter) angleBetween(index int, v1 r3.Vector, v2 r3.Vector) float64 {
	return c.arccos(index, v1.Dot(v2)/(v1.Norm()*v2.Norm()))
}

func shapeOfVectors(vs []r3.Vector) string {
	return fmt.Sprintf("[%d]x3", len(vs))
}

func AngleBetweenCxCyCz(cx1 float64, cy1 float64, cz1 float64, cx2 float64, cy2 float64, cz2 float64) float64 {
	return AngleBetweenXYZ(r3.Vector{X: cx1, Y: cy1, Z: cz1}, r3.Vector{X: cx2, Y: cy2, Z: cz2})
}

func AngleBetweenCxCy(cx1 float64, cy1 float64, cx2 float64, cy2 float64) float64 {
	return AngleBetweenCxCyCz(cx1, cy1, RestoreCz(cx1, cy1), cx2, cy2, RestoreCz(cx2, cy2))
}

func AngleBetweenAzZd(azimuth1Rad float64, zenith1Rad float64, azimuth2Rad float64, zenith2Rad float64) float64 {
	cx1, cy1, cz1 := AzZdToCxCyCz(azimuth1Rad, zenith1Rad)
	cx2, cy2, cz2 := AzZdToCxCyCz(azimuth2Rad, zenith2Rad)
	return AngleBetweenCxCyCz(cx1, cy1, cz1, cx2, cy2, cz2)
}

// Angle between two raw 3-vectors, in [0, π].
func AngleBetweenXYZ(a r3.Vector, b r3.Vector) float64 {
	return std.angleBetween(0, a, b)
}
