package spherecoords

import (
	"go.uber.org/zap"
)

// Tolerance applied at the domain edges of arccos and sqrt unless configured otherwise.
const DefaultEps float64 = 1e-6

// Receives every DomainWarning raised by a Converter.
type WarningFunc func(DomainWarning)

// Converter carries the numeric tolerance and the diagnostic sinks shared by all transforms.
// It is immutable once created and safe for concurrent use, as long as the WarningFunc is.
type Converter struct {
	eps  float64
	log  *zap.Logger
	warn WarningFunc
}

type Option func(*Converter)

func WithEps(eps float64) Option {
	return func(c *Converter) {
		c.eps = eps
	}
}

// Domain warnings are logged to l at warn level.
func WithLogger(l *zap.Logger) Option {
	return func(c *Converter) {
		if l != nil {
			c.log = l
		}
	}
}

func WithWarningFunc(f WarningFunc) Option {
	return func(c *Converter) {
		c.warn = f
	}
}

func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		eps: DefaultEps,
		log: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.eps < 0 {
		return nil, NewConfigurationError(c.eps)
	}
	return c, nil
}

var std = &Converter{eps: DefaultEps, log: zap.NewNop()}

// The converter behind the package level scalar functions.
func Default() *Converter {
	return std
}

func (c *Converter) Eps() float64 {
	return c.eps
}

func (c *Converter) domainWarning(operation string, index int, value float64) {
	w := DomainWarning{
		Operation: operation,
		Index:     index,
		Value:     value,
		Eps:       c.eps,
	}
	c.log.Warn("value outside of domain tolerance",
		zap.String("op", operation),
		zap.Int("index", index),
		zap.Float64("value", value),
		zap.Float64("eps", c.eps),
	)
	if c.warn != nil {
		c.warn(w)
	}
}
