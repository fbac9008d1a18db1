// Package skymap bins directions on the sky into pixels, for example to histogram the
// arrival directions of a large batch of simulated particles.
package skymap

import (
	"math"

	"github.com/owlpinetech/flatsphere"
	"github.com/owlpinetech/healpix"
)

// Common functionality for converting between the various location types and pixel
// indices of a sky map.
type Indexer interface {
	ToIndex(Location) (int, error)
	Projection() flatsphere.Projection
	Name() string
	Size() int
}

// Simple indexing into a grid, no spherical projection provided by this indexer. Supports
// either row-major or column-major pixel order.
type GridIndexer struct {
	Width    int  `json:"width" yaml:"width"`
	Height   int  `json:"height" yaml:"height"`
	RowMajor bool `json:"rowmajor" yaml:"row_major"`
}

func NewGridIndexer(width int, height int, rowMajor bool) GridIndexer {
	return GridIndexer{
		Width:    width,
		Height:   height,
		RowMajor: rowMajor,
	}
}

func (g GridIndexer) Name() string {
	return "grid"
}

func (g GridIndexer) Projection() flatsphere.Projection {
	return nil
}

func (g GridIndexer) Size() int {
	return g.Width * g.Height
}

func (g GridIndexer) ToIndex(loc Location) (int, error) {
	switch val := loc.(type) {
	case PixelLocation:
		return checkPixel(g, loc, int(val))
	case GridLocation:
		if val.X < 0 || val.X >= g.Width || val.Y < 0 || val.Y >= g.Height {
			return -1, NewLocationOutOfBoundsError(loc)
		}
		if g.RowMajor {
			return val.Y*g.Width + val.X, nil
		}
		return val.X*g.Height + val.Y, nil
	default:
		return -1, NewLocationNotSupportedError(g.Name(), loc)
	}
}

// Indexing into a sky map projected with a standard Mercator projection. Mercator diverges
// at the poles, so two cutoff parallels mark the top and bottom rows of the grid. Zenith
// distances are latitudes measured down from the zenith, i.e. the zenith is the north pole.
type MercatorCutoffIndexer struct {
	NorthCutoff  float64 `json:"northCutoff" yaml:"north_cutoff"`
	SouthCutoff  float64 `json:"southCutoff" yaml:"south_cutoff"`
	southProj    float64 // projected south cutoff
	latRangeProj float64 // projected north minus south cutoff
	grid         GridIndexer
	proj         flatsphere.Mercator
}

func NewMercatorCutoffIndexer(northCutoff float64, southCutoff float64, width int, height int, rowMajor bool) MercatorCutoffIndexer {
	if northCutoff <= southCutoff {
		panic("skymap: mercator north cutoff smaller than south cutoff")
	}
	proj := flatsphere.NewMercator()
	_, southY := proj.Project(southCutoff, 0)
	_, northY := proj.Project(northCutoff, 0)
	return MercatorCutoffIndexer{
		NorthCutoff:  northCutoff,
		SouthCutoff:  southCutoff,
		southProj:    southY,
		latRangeProj: northY - southY,
		grid:         NewGridIndexer(width, height, rowMajor),
		proj:         proj,
	}
}

func (m MercatorCutoffIndexer) Name() string {
	return "mercator-cutoff"
}

func (m MercatorCutoffIndexer) Projection() flatsphere.Projection {
	return m.proj
}

func (m MercatorCutoffIndexer) Size() int {
	return m.grid.Size()
}

func (m MercatorCutoffIndexer) ToIndex(loc Location) (int, error) {
	switch val := loc.(type) {
	case PixelLocation:
		return checkPixel(m, loc, int(val))
	case GridLocation:
		return m.grid.ToIndex(loc)
	case Direction:
		lat, lon := val.LatLon()
		if !(lat <= m.NorthCutoff && lat >= m.SouthCutoff) || math.IsNaN(lon) {
			return -1, NewLocationOutOfBoundsError(loc)
		}
		x, y := m.proj.Project(lat, lon)
		return m.ToIndex(ProjectedLocation{x, y})
	case ProjectedLocation:
		bounds := m.proj.PlanarBounds()
		xPix := ((val.X - bounds.XMin) / bounds.Width()) * float64(m.grid.Width-1)
		yPix := ((val.Y - m.southProj) / m.latRangeProj) * float64(m.grid.Height-1)
		return m.ToIndex(GridLocation{int(xPix), int(yPix)})
	case Cartesian:
		return m.ToIndex(val.ToDirection())
	default:
		return -1, NewLocationNotSupportedError(m.Name(), loc)
	}
}

// Indexing into a sky map projected with a cylindrical equirectangular projection. (0, 0) is
// the bottom left corner of the projection space, i.e. the nadir row at azimuth -π.
type CylindricalEquirectangularIndexer struct {
	Parallel float64 `json:"parallel" yaml:"parallel"`
	grid     GridIndexer
	proj     flatsphere.Equirectangular
}

// Create a new indexer into a grid with the cylindrical equirectangular projection, focused at
// the given latitude.
func NewCylindricalEquirectangularIndexer(parallel float64, width int, height int, rowMajor bool) CylindricalEquirectangularIndexer {
	return CylindricalEquirectangularIndexer{
		Parallel: parallel,
		grid:     NewGridIndexer(width, height, rowMajor),
		proj:     flatsphere.NewEquirectangular(parallel),
	}
}

func (c CylindricalEquirectangularIndexer) Name() string {
	return "cylindrical-equirectangular"
}

func (c CylindricalEquirectangularIndexer) Projection() flatsphere.Projection {
	return c.proj
}

func (c CylindricalEquirectangularIndexer) Size() int {
	return c.grid.Size()
}

func (c CylindricalEquirectangularIndexer) ToIndex(loc Location) (int, error) {
	switch val := loc.(type) {
	case PixelLocation:
		return checkPixel(c, loc, int(val))
	case GridLocation:
		return c.grid.ToIndex(loc)
	case Direction:
		lat, lon := val.LatLon()
		if math.IsNaN(lat) || math.IsNaN(lon) {
			return -1, NewLocationOutOfBoundsError(loc)
		}
		x, y := c.proj.Project(lat, lon)
		return c.ToIndex(ProjectedLocation{x, y})
	case ProjectedLocation:
		bounds := c.proj.PlanarBounds()
		xPix := ((val.X - bounds.XMin) / bounds.Width()) * float64(c.grid.Width-1)
		yPix := ((val.Y - bounds.YMin) / bounds.Height()) * float64(c.grid.Height-1)
		return c.ToIndex(GridLocation{int(xPix), int(yPix)})
	case Cartesian:
		return c.ToIndex(val.ToDirection())
	default:
		return -1, NewLocationNotSupportedError(c.Name(), loc)
	}
}

// Pixelizes the sky using HEALPix, every pixel covers the same solid angle. Pixel ids are
// reported in the configured scheme.
type FlatHealpixIndexer struct {
	Scheme healpix.HealpixScheme `json:"scheme" yaml:"scheme"`
	Order  healpix.HealpixOrder  `json:"order" yaml:"order"`
	proj   flatsphere.HEALPixStandard
}

func NewFlatHealpixIndexer(order healpix.HealpixOrder, scheme healpix.HealpixScheme) FlatHealpixIndexer {
	return FlatHealpixIndexer{
		Scheme: scheme,
		Order:  order,
		proj:   flatsphere.NewHEALPixStandard(),
	}
}

func (h FlatHealpixIndexer) Name() string {
	return "flat-healpix"
}

func (h FlatHealpixIndexer) Projection() flatsphere.Projection {
	return h.proj
}

func (h FlatHealpixIndexer) Size() int {
	return h.Order.Pixels()
}

func (h FlatHealpixIndexer) ToIndex(loc Location) (int, error) {
	switch val := loc.(type) {
	case PixelLocation:
		return checkPixel(h, loc, int(val))
	case RingLocation:
		if _, err := checkPixel(h, loc, int(val)); err != nil {
			return -1, err
		}
		return checkPixel(h, loc, healpix.RingPixel(int(val)).PixelId(h.Order, h.Scheme))
	case NestLocation:
		if _, err := checkPixel(h, loc, int(val)); err != nil {
			return -1, err
		}
		return checkPixel(h, loc, healpix.NestPixel(int(val)).PixelId(h.Order, h.Scheme))
	case UniqueLocation:
		// unique ids of this order are 4*nside² + pixel
		base := h.Size() / 3
		if int(val) < base || int(val) >= base+h.Size() {
			return -1, NewLocationOutOfBoundsError(loc)
		}
		return checkPixel(h, loc, healpix.UniquePixel(int(val)).PixelId(h.Order, h.Scheme))
	case Direction:
		lat, lon := val.LatLon()
		if math.IsNaN(lat) || math.IsNaN(lon) {
			return -1, NewLocationOutOfBoundsError(loc)
		}
		if lon < 0 {
			lon += 2 * math.Pi
		}
		return healpix.NewLatLonCoordinate(lat, lon).PixelId(h.Order, h.Scheme), nil
	case ProjectedLocation:
		return healpix.NewProjectionCoordinate(val.X, val.Y).PixelId(h.Order, h.Scheme), nil
	case Cartesian:
		return h.ToIndex(val.ToDirection())
	default:
		return -1, NewLocationNotSupportedError(h.Name(), loc)
	}
}

func checkPixel(indexer Indexer, loc Location, pixel int) (int, error) {
	if pixel < 0 || pixel >= indexer.Size() {
		return -1, NewLocationOutOfBoundsError(loc)
	}
	return pixel, nil
}
