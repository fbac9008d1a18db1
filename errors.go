package spherecoords

import (
	"errors"
	"fmt"
)

var (
	ErrShapeMismatch     = errors.New("arguments do not share a common shape")
	ErrNegativeTolerance = errors.New("numeric tolerance must not be negative")
)

// Returned when the arguments of an operation can not be combined elementwise, e.g. the
// components of one direction disagree in length or in scalar-ness.
type ShapeMismatchError struct {
	Operation string
	Argument  string
	Expected  string
	Got       string
}

func NewShapeMismatchError(operation string, argument string, expected Values, got Values) *ShapeMismatchError {
	return &ShapeMismatchError{
		Operation: operation,
		Argument:  argument,
		Expected:  expected.shape(),
		Got:       got.shape(),
	}
}

func (s ShapeMismatchError) Error() string {
	return fmt.Sprintf("%s: argument '%s' has shape %s, expected %s", s.Operation, s.Argument, s.Got, s.Expected)
}

func (s ShapeMismatchError) Unwrap() error {
	return ErrShapeMismatch
}

type ConfigurationError struct {
	Eps float64
}

func NewConfigurationError(eps float64) *ConfigurationError {
	return &ConfigurationError{Eps: eps}
}

func (c ConfigurationError) Error() string {
	return fmt.Sprintf("invalid tolerance eps=%g: must be >= 0", c.Eps)
}

func (c ConfigurationError) Unwrap() error {
	return ErrNegativeTolerance
}

// A non-fatal diagnostic: the argument of arccos or sqrt fell outside of its valid domain
// by more than the tolerance. The affected output element is NaN.
type DomainWarning struct {
	Operation string
	Index     int
	Value     float64
	Eps       float64
}

func (d DomainWarning) String() string {
	return fmt.Sprintf("%s: value %g at index %d outside of domain by more than eps=%g", d.Operation, d.Value, d.Index, d.Eps)
}
