package spherecoords

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Any of Go's built in integer or floating point types. Scalars and batches of these can be
// boxed into Values.
type Number interface {
	constraints.Integer | constraints.Float
}

// Values is either a single scalar or an ordered batch of float64s. All transforms in this
// package operate elementwise on Values and return results of the same shape as their input,
// so that one direction and a batch of directions go through identical code.
type Values struct {
	xs     []float64
	scalar bool
}

// Boxes a single number. The array form of a scalar always has length one.
func Scalar[T Number](x T) Values {
	return Values{xs: []float64{float64(x)}, scalar: true}
}

// Wraps a batch of numbers. The input is copied, so later changes to xs are not observed.
func Batch[T Number](xs []T) Values {
	vals := make([]float64, len(xs))
	for i, x := range xs {
		vals[i] = float64(x)
	}
	return Values{xs: vals}
}

func (v Values) IsScalar() bool {
	return v.scalar
}

func (v Values) Len() int {
	return len(v.xs)
}

// The contained scalar. Panics if v is a batch, since that is a caller bug.
func (v Values) Float() float64 {
	if !v.scalar {
		panic("spherecoords: Float called on a batch of values")
	}
	return v.xs[0]
}

// A copy of the array form of v. A scalar yields a slice of length one.
func (v Values) Floats() []float64 {
	out := make([]float64, len(v.xs))
	copy(out, v.xs)
	return out
}

// Element i of v, where a scalar broadcasts to every index.
func (v Values) At(i int) float64 {
	if v.scalar {
		return v.xs[0]
	}
	return v.xs[i]
}

// Applies f to every element, keeping the shape of v.
func (v Values) Map(f func(float64) float64) Values {
	out := v.like(len(v.xs))
	for i, x := range v.xs {
		out.xs[i] = f(x)
	}
	return out
}

// A zeroed Values with n elements and the scalar-ness of v.
func (v Values) like(n int) Values {
	return Values{xs: make([]float64, n), scalar: v.scalar}
}

func (v Values) shape() string {
	if v.scalar {
		return "scalar"
	}
	return fmt.Sprintf("[%d]", len(v.xs))
}

// Checks that all components of one direction agree in scalar-ness and length, returning the
// shape they share.
func group(operation string, names []string, vals ...Values) (Values, error) {
	first := vals[0]
	for i, v := range vals[1:] {
		if v.scalar != first.scalar || len(v.xs) != len(first.xs) {
			return Values{}, NewShapeMismatchError(operation, names[i+1], first, v)
		}
	}
	return first.like(len(first.xs)), nil
}

// Combines the shapes of two independent directions. A scalar side broadcasts against a
// batch side, two batches must be of equal length. The result is scalar only when both
// sides are.
func broadcast(operation string, name string, a Values, b Values) (Values, error) {
	switch {
	case a.scalar && b.scalar:
		return a.like(1), nil
	case a.scalar:
		return b.like(len(b.xs)), nil
	case b.scalar:
		return a.like(len(a.xs)), nil
	case len(a.xs) != len(b.xs):
		return Values{}, NewShapeMismatchError(operation, name, a, b)
	default:
		return a.like(len(a.xs)), nil
	}
}
