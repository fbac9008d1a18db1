// Package config handles loading and validating the sphcoords command configuration.
package config

import (
	"errors"
	"fmt"

	"github.com/owlpinetech/spherecoords"
)

// Projections a sky map can be binned into.
const (
	ProjectionHealpix         = "healpix"
	ProjectionEquirectangular = "equirectangular"
	ProjectionMercator        = "mercator"
)

// Config holds all command settings.
type Config struct {
	Tolerance ToleranceConfig `yaml:"tolerance"`
	Output    OutputConfig    `yaml:"output"`
	Skymap    SkymapConfig    `yaml:"skymap"`
	Sampling  SamplingConfig  `yaml:"sampling"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// ToleranceConfig holds the numeric tolerance at domain edges.
type ToleranceConfig struct {
	Eps float64 `yaml:"eps"`
}

// OutputConfig holds how angles are read and printed.
type OutputConfig struct {
	Degrees   bool `yaml:"degrees"`
	Precision int  `yaml:"precision"`
}

// SkymapConfig holds the pixelization used by the bin command.
type SkymapConfig struct {
	Projection  string  `yaml:"projection"`
	Order       int     `yaml:"order"`        // healpix
	Width       int     `yaml:"width"`        // equirectangular, mercator
	Height      int     `yaml:"height"`       // equirectangular, mercator
	Parallel    float64 `yaml:"parallel"`     // equirectangular, radians
	NorthCutoff float64 `yaml:"north_cutoff"` // mercator, radians
	SouthCutoff float64 `yaml:"south_cutoff"` // mercator, radians
}

// SamplingConfig holds the random source settings of the draw command.
type SamplingConfig struct {
	Seed uint64 `yaml:"seed"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Tolerance: ToleranceConfig{
			Eps: spherecoords.DefaultEps,
		},
		Output: OutputConfig{
			Degrees:   false,
			Precision: 9,
		},
		Skymap: SkymapConfig{
			Projection:  ProjectionHealpix,
			Order:       3,
			Width:       360,
			Height:      180,
			Parallel:    0,
			NorthCutoff: 1.4,
			SouthCutoff: -1.4,
		},
		Sampling: SamplingConfig{
			Seed: 1,
		},
		Logging: LoggingConfig{
			Level:   "warn",
			LogFile: "",
		},
	}
}

// Validate reports the first setting that can not work.
func (c *Config) Validate() error {
	if c.Tolerance.Eps < 0 {
		return spherecoords.NewConfigurationError(c.Tolerance.Eps)
	}
	if c.Output.Precision < 0 {
		return fmt.Errorf("output precision %d must not be negative", c.Output.Precision)
	}
	switch c.Skymap.Projection {
	case ProjectionHealpix:
		if c.Skymap.Order < 0 || c.Skymap.Order > 29 {
			return fmt.Errorf("healpix order %d out of range [0, 29]", c.Skymap.Order)
		}
	case ProjectionEquirectangular, ProjectionMercator:
		if c.Skymap.Width <= 0 || c.Skymap.Height <= 0 {
			return fmt.Errorf("skymap size %dx%d must be positive", c.Skymap.Width, c.Skymap.Height)
		}
		if c.Skymap.Projection == ProjectionMercator && c.Skymap.NorthCutoff <= c.Skymap.SouthCutoff {
			return errors.New("mercator north cutoff must be above the south cutoff")
		}
	default:
		return fmt.Errorf("unknown skymap projection '%s'", c.Skymap.Projection)
	}
	return nil
}
