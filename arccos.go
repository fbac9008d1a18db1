package spherecoords

import "math"

// Like math.Acos, but arguments up to eps beyond ±1 are clamped onto ±1 first. Arguments
// further out give NaN and raise a DomainWarning, one per offending element.
func (c *Converter) Arccos(x Values) Values {
	out := x.like(x.Len())
	for i := range x.xs {
		out.xs[i] = c.arccos(i, x.xs[i])
	}
	return out
}

func (c *Converter) arccos(index int, x float64) float64 {
	switch {
	case x > 1.0 && x <= 1.0+c.eps:
		x = 1.0
	case x < -1.0 && x >= -1.0-c.eps:
		x = -1.0
	case x > 1.0 || x < -1.0:
		c.domainWarning("arccos", index, x)
	}
	return math.Acos(x)
}

// Tolerant arccos of a single value using the default tolerance.
func Arccos(x float64) float64 {
	return std.arccos(0, x)
}

// Tolerant arccos of a single value with an explicit tolerance.
func ArccosTolerant(x float64, eps float64) (float64, error) {
	c, err := std.withEps(eps)
	if err != nil {
		return math.NaN(), err
	}
	return c.arccos(0, x), nil
}

// A copy of c using another tolerance.
func (c *Converter) withEps(eps float64) (*Converter, error) {
	if eps < 0 {
		return nil, NewConfigurationError(eps)
	}
	cp := *c
	cp.eps = eps
	return &cp, nil
}
