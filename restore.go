package spherecoords

import "math"

// Reconstructs cz from cx and cy assuming the direction points above the x-y plane, i.e. the
// non-negative root is always returned. 1-cx²-cy² down to -eps is treated as zero, below
// that the element is NaN and a DomainWarning is raised.
func (c *Converter) RestoreCz(cx Values, cy Values) (Values, error) {
	cz, err := group("restore_cz", []string{"cx", "cy"}, cx, cy)
	if err != nil {
		return Values{}, err
	}
	for i := range cz.xs {
		cz.xs[i] = c.restoreCz(i, cx.xs[i], cy.xs[i])
	}
	return cz, nil
}

func (c *Converter) restoreCz(index int, cx float64, cy float64) float64 {
	inner := 1.0 - cx*cx - cy*cy
	if inner < 0 {
		if inner < -c.eps {
			c.domainWarning("restore_cz", index, inner)
			return math.NaN()
		}
		inner = 0
	}
	return math.Sqrt(inner)
}

func RestoreCz(cx float64, cy float64) float64 {
	return std.restoreCz(0, cx, cy)
}
