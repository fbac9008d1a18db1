package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/owlpinetech/healpix"
	"github.com/owlpinetech/spherecoords"
	"github.com/owlpinetech/spherecoords/corsika"
	"github.com/owlpinetech/spherecoords/internal/config"
	"github.com/owlpinetech/spherecoords/internal/logger"
	"github.com/owlpinetech/spherecoords/sampling"
	"github.com/owlpinetech/spherecoords/skymap"
)

func cmdToCartesian(e *env, args []string) error {
	if len(args) != 2 {
		return errUsage
	}
	az, err := e.angle(args[0])
	if err != nil {
		return err
	}
	zd, err := e.angle(args[1])
	if err != nil {
		return err
	}

	cx, cy, cz, err := e.conv.AzZdToCxCyCz(spherecoords.Scalar(az), spherecoords.Scalar(zd))
	if err != nil {
		return err
	}
	e.println(e.formatNumber(cx.Float()), e.formatNumber(cy.Float()), e.formatNumber(cz.Float()))
	return nil
}

func cmdToSpherical(e *env, args []string) error {
	if len(args) != 2 && len(args) != 3 {
		return errUsage
	}
	var comps []spherecoords.Values
	for _, arg := range args {
		v, err := e.number(arg)
		if err != nil {
			return err
		}
		comps = append(comps, spherecoords.Scalar(v))
	}

	var az, zd spherecoords.Values
	var err error
	if len(comps) == 2 {
		az, zd, err = e.conv.CxCyToAzZd(comps[0], comps[1])
	} else {
		az, zd, err = e.conv.CxCyCzToAzZd(comps[0], comps[1], comps[2])
	}
	if err != nil {
		return err
	}
	e.println(e.formatAngle(az.Float()), e.formatAngle(zd.Float()))
	return nil
}

func cmdAngle(e *env, args []string) error {
	if len(args) != 4 {
		return errUsage
	}
	var vals [4]spherecoords.Values
	for i, arg := range args {
		v, err := e.angle(arg)
		if err != nil {
			return err
		}
		vals[i] = spherecoords.Scalar(v)
	}

	angle, err := e.conv.AngleBetweenAzZd(vals[0], vals[1], vals[2], vals[3])
	if err != nil {
		return err
	}
	e.println(e.formatAngle(angle.Float()))
	return nil
}

func cmdCorsika(e *env, args []string) error {
	if len(args) != 2 {
		return errUsage
	}
	az, err := e.angle(args[0])
	if err != nil {
		return err
	}
	zd, err := e.angle(args[1])
	if err != nil {
		return err
	}
	e.println(e.formatAngle(corsika.AzToPhi(az)), e.formatAngle(corsika.ZdToTheta(zd)))
	return nil
}

func drawFlags(fs *flag.FlagSet) {
	fs.Int("n", 1, "Number of directions to draw")
	fs.String("cone", "", "Draw within a cone: az,zd,min_half_angle,max_half_angle")
	fs.Uint64("seed", 0, "Random seed, overrides the config")
}

func cmdDraw(e *env, args []string) error {
	if len(args) != 0 {
		return errUsage
	}
	n := e.flags.Lookup("n").Value.(flag.Getter).Get().(int)
	cone := e.flags.Lookup("cone").Value.String()
	seed := e.cfg.Sampling.Seed
	if s := e.flags.Lookup("seed").Value.(flag.Getter).Get().(uint64); s != 0 {
		seed = s
	}
	src := sampling.NewSource(seed)

	var az, zd []float64
	if cone == "" {
		azs, zds, err := sampling.DrawAzZdN(src, n)
		if err != nil {
			return err
		}
		az, zd = azs.Floats(), zds.Floats()
	} else {
		parts := strings.Split(cone, ",")
		if len(parts) != 4 {
			return fmt.Errorf("cone '%s' needs four comma separated angles", cone)
		}
		var c [4]float64
		for i, p := range parts {
			v, err := e.angle(p)
			if err != nil {
				return err
			}
			c[i] = v
		}
		azs, zds, err := sampling.UniformAzZdInCone(src, c[0], c[1], c[2], c[3], n)
		if err != nil {
			return err
		}
		az, zd = azs.Floats(), zds.Floats()
	}

	logger.Log.Debug("drew directions", zap.Int("count", len(az)), zap.Uint64("seed", seed))
	for i := range az {
		e.println(e.formatAngle(az[i]), e.formatAngle(zd[i]))
	}
	return nil
}

func cmdBin(e *env, args []string) error {
	if len(args) != 0 {
		return errUsage
	}
	indexer, err := newIndexer(e.cfg.Skymap)
	if err != nil {
		return err
	}
	hist, err := skymap.NewHistogram(indexer)
	if err != nil {
		return err
	}

	skipped := 0
	scanner := bufio.NewScanner(e.in)
	for line := 1; scanner.Scan(); line++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != 2 {
			return fmt.Errorf("line %d: expected 'az zd', got '%s'", line, text)
		}
		az, err := e.angle(fields[0])
		if err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		zd, err := e.angle(fields[1])
		if err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}

		err = hist.Add(skymap.Direction{Azimuth: az, Zenith: zd})
		var outOfBounds skymap.LocationOutOfBoundsError
		if errors.As(err, &outOfBounds) {
			logger.Log.Warn("direction outside of sky map", zap.Int("line", line), zap.Float64("az", az), zap.Float64("zd", zd))
			skipped++
			continue
		}
		if err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	logger.Log.Info("binned directions",
		zap.String("indexer", indexer.Name()),
		zap.Int("total", hist.Total()),
		zap.Int("skipped", skipped),
	)
	for _, pixel := range hist.Pixels() {
		e.println(fmt.Sprint(pixel), fmt.Sprint(hist.Count(pixel)))
	}
	return nil
}

func newIndexer(cfg config.SkymapConfig) (skymap.Indexer, error) {
	switch cfg.Projection {
	case config.ProjectionHealpix:
		return skymap.NewFlatHealpixIndexer(healpix.HealpixOrder(cfg.Order), healpix.NestScheme), nil
	case config.ProjectionEquirectangular:
		return skymap.NewCylindricalEquirectangularIndexer(cfg.Parallel, cfg.Width, cfg.Height, true), nil
	case config.ProjectionMercator:
		return skymap.NewMercatorCutoffIndexer(cfg.NorthCutoff, cfg.SouthCutoff, cfg.Width, cfg.Height, true), nil
	default:
		return nil, fmt.Errorf("unknown skymap projection '%s'", cfg.Projection)
	}
}
