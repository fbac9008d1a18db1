package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/owlpinetech/spherecoords"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Tolerance.Eps != spherecoords.DefaultEps {
		t.Errorf("expected eps %v, got %v", spherecoords.DefaultEps, cfg.Tolerance.Eps)
	}
	if cfg.Output.Degrees {
		t.Error("expected radians by default")
	}
	if cfg.Skymap.Projection != ProjectionHealpix {
		t.Errorf("expected healpix projection, got %s", cfg.Skymap.Projection)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("expected log level 'warn', got %s", cfg.Logging.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected defaults to be valid, got %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sphcoords.yaml")
	content := `
tolerance:
  eps: 1.0e-9
output:
  degrees: true
skymap:
  projection: equirectangular
  width: 72
  height: 36
logging:
  level: debug
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Tolerance.Eps != 1e-9 {
		t.Errorf("expected eps 1e-9, got %v", cfg.Tolerance.Eps)
	}
	if !cfg.Output.Degrees {
		t.Error("expected degrees to be enabled")
	}
	if cfg.Skymap.Projection != ProjectionEquirectangular || cfg.Skymap.Width != 72 || cfg.Skymap.Height != 36 {
		t.Errorf("unexpected skymap config %+v", cfg.Skymap)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level debug, got %s", cfg.Logging.Level)
	}
	// untouched settings keep their defaults
	if cfg.Output.Precision != 9 {
		t.Errorf("expected default precision 9, got %d", cfg.Output.Precision)
	}
	if cfg.Sampling.Seed != 1 {
		t.Errorf("expected default seed 1, got %d", cfg.Sampling.Seed)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil || !strings.Contains(err.Error(), "loading config") {
		t.Errorf("expected a loading error, got %v", err)
	}
}

func TestLoadInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sphcoords.yaml")
	if err := os.WriteFile(path, []byte("tolerance:\n  eps: -1\n"), 0644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(path)
	if !errors.Is(err, spherecoords.ErrNegativeTolerance) {
		t.Errorf("expected negative tolerance error, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name   string
		modify func(*Config)
		valid  bool
	}{
		{"defaults", func(c *Config) {}, true},
		{"zero eps", func(c *Config) { c.Tolerance.Eps = 0 }, true},
		{"negative precision", func(c *Config) { c.Output.Precision = -1 }, false},
		{"unknown projection", func(c *Config) { c.Skymap.Projection = "sinusoidal" }, false},
		{"healpix order too large", func(c *Config) { c.Skymap.Order = 30 }, false},
		{"empty grid", func(c *Config) {
			c.Skymap.Projection = ProjectionEquirectangular
			c.Skymap.Width = 0
		}, false},
		{"mercator cutoffs inverted", func(c *Config) {
			c.Skymap.Projection = ProjectionMercator
			c.Skymap.NorthCutoff, c.Skymap.SouthCutoff = -1, 1
		}, false},
		{"mercator", func(c *Config) { c.Skymap.Projection = ProjectionMercator }, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.modify(cfg)
			err := cfg.Validate()
			if tc.valid && err != nil {
				t.Errorf("expected valid config, got %v", err)
			}
			if !tc.valid && err == nil {
				t.Error("expected validation to fail")
			}
		})
	}
}

func TestSaveTo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "sphcoords.yaml")

	cfg := Default()
	cfg.Sampling.Seed = 75600
	cfg.Skymap.Order = 5
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("failed to load saved config: %v", err)
	}
	if loaded.Sampling.Seed != 75600 || loaded.Skymap.Order != 5 {
		t.Errorf("expected saved values back, got %+v %+v", loaded.Sampling, loaded.Skymap)
	}
}
