// sphcoords is a CLI utility for converting directions between azimuth/zenith and
// cartesian representations.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/golang/geo/s1"
	"go.uber.org/zap"

	"github.com/owlpinetech/spherecoords"
	"github.com/owlpinetech/spherecoords/internal/config"
	"github.com/owlpinetech/spherecoords/internal/logger"
)

var errUsage = errors.New("usage")

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout io.Writer, stderr io.Writer) int {
	if len(args) < 1 {
		printUsage(stderr)
		return 1
	}

	command := args[0]
	args = args[1:]

	var cmd func(*env, []string) error
	switch command {
	case "to-cartesian", "cart":
		cmd = cmdToCartesian
	case "to-spherical", "sph":
		cmd = cmdToSpherical
	case "angle":
		cmd = cmdAngle
	case "corsika":
		cmd = cmdCorsika
	case "draw":
		cmd = cmdDraw
	case "bin":
		cmd = cmdBin
	case "help", "-h", "--help":
		printUsage(stdout)
		return 0
	default:
		fmt.Fprintf(stderr, "Unknown command: %s\n", command)
		printUsage(stderr)
		return 1
	}

	e, rest, err := setup(command, args, stdin, stdout, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	defer logger.Sync()

	if err := cmd(e, rest); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintf(stderr, "Usage: sphcoords %s\n", commandUsage[command])
		} else {
			fmt.Fprintf(stderr, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}

var commandUsage = map[string]string{
	"to-cartesian": "to-cartesian [flags] <az> <zd>",
	"cart":         "to-cartesian [flags] <az> <zd>",
	"to-spherical": "to-spherical [flags] <cx> <cy> [cz]",
	"sph":          "to-spherical [flags] <cx> <cy> [cz]",
	"angle":        "angle [flags] <az1> <zd1> <az2> <zd2>",
	"corsika":      "corsika [flags] <az> <zd>",
	"draw":         "draw [flags] [-n count] [-cone az,zd,min,max]",
	"bin":          "bin [flags] < directions.txt",
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `sphcoords - direction conversion utility

Usage:
  sphcoords <command> [flags] [arguments]

Commands:
  to-cartesian <az> <zd>             Azimuth/zenith to cx cy cz
  to-spherical <cx> <cy> [cz]        Cartesian to azimuth/zenith (cz >= 0 if omitted)
  angle <az1> <zd1> <az2> <zd2>      Angle between two directions
  corsika <az> <zd>                  CORSIKA phi and theta of a direction
  draw [-n count] [-cone ...]        Random directions, one "az zd" per line
  bin                                Histogram "az zd" lines from stdin into sky pixels

Flags:
  -config <file>   YAML config file
  -eps <value>     Numeric tolerance at domain edges
  -degrees         Read and print angles in degrees
  -debug           Enable debug logging

Examples:
  sphcoords to-cartesian -degrees 45 30
  sphcoords draw -n 1000 | sphcoords bin`)
}

// Everything a command needs, built from config and flags.
type env struct {
	cfg   *config.Config
	conv  *spherecoords.Converter
	flags *flag.FlagSet
	in    io.Reader
	out   io.Writer
}

// Command specific flags, registered before the common ones are parsed.
var commandFlags = map[string]func(*flag.FlagSet){
	"draw": drawFlags,
}

func setup(command string, args []string, stdin io.Reader, stdout io.Writer, stderr io.Writer) (*env, []string, error) {
	fs := flag.NewFlagSet(command, flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "Path to config file")
	eps := fs.Float64("eps", spherecoords.DefaultEps, "Numeric tolerance at domain edges")
	degrees := fs.Bool("degrees", false, "Read and print angles in degrees")
	debug := fs.Bool("debug", false, "Enable debug logging")
	if register, ok := commandFlags[command]; ok {
		register(fs)
	}
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return nil, nil, err
	}
	// flags override the config file, but only when given
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "eps" {
			cfg.Tolerance.Eps = *eps
		}
	})
	if *degrees {
		cfg.Output.Degrees = true
	}
	if *debug {
		cfg.Logging.Level = "debug"
	}

	fileCfg := logger.FileConfig{}
	if cfg.Logging.LogFile != "" {
		fileCfg = logger.DefaultFileConfig(cfg.Logging.LogFile)
	}
	if err := logger.InitWithFileConfig(cfg.Logging.Level, fileCfg, stderr); err != nil {
		return nil, nil, fmt.Errorf("initializing logger: %w", err)
	}

	conv, err := spherecoords.NewConverter(
		spherecoords.WithEps(cfg.Tolerance.Eps),
		spherecoords.WithLogger(logger.Log),
	)
	if err != nil {
		return nil, nil, err
	}

	logger.Log.Debug("configured",
		zap.String("command", command),
		zap.Float64("eps", cfg.Tolerance.Eps),
		zap.Bool("degrees", cfg.Output.Degrees),
	)

	return &env{
		cfg:   cfg,
		conv:  conv,
		flags: fs,
		in:    stdin,
		out:   stdout,
	}, fs.Args(), nil
}

// Parses an angle argument into radians.
func (e *env) angle(arg string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(arg), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid angle '%s': %w", arg, err)
	}
	if e.cfg.Output.Degrees {
		return (s1.Angle(v) * s1.Degree).Radians(), nil
	}
	return v, nil
}

func (e *env) number(arg string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(arg), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number '%s': %w", arg, err)
	}
	return v, nil
}

// Formats an angle given in radians.
func (e *env) formatAngle(rad float64) string {
	if e.cfg.Output.Degrees {
		return e.formatNumber(s1.Angle(rad).Degrees())
	}
	return e.formatNumber(rad)
}

func (e *env) formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', e.cfg.Output.Precision, 64)
}

func (e *env) println(fields ...string) {
	fmt.Fprintln(e.out, strings.Join(fields, " "))
}
