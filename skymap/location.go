package skymap

import (
	"math"

	"github.com/owlpinetech/spherecoords"
)

// Anything an Indexer may be able to turn into a pixel index.
type Location interface{}

// A pixel index in the storage order of the indexer.
type PixelLocation int

type RingLocation int

type NestLocation int

type UniqueLocation int

type GridLocation struct {
	X int
	Y int
}

// A direction in azimuth and zenith distance, in radians.
type Direction struct {
	Azimuth float64
	Zenith  float64
}

type ProjectedLocation struct {
	X float64
	Y float64
}

// A cartesian direction, not necessarily of unit length.
type Cartesian struct {
	Cx float64
	Cy float64
	Cz float64
}

func (c Cartesian) ToDirection() Direction {
	norm := math.Sqrt(c.Cx*c.Cx + c.Cy*c.Cy + c.Cz*c.Cz)
	az, zd := spherecoords.CxCyCzToAzZd(c.Cx/norm, c.Cy/norm, c.Cz/norm)
	return Direction{Azimuth: az, Zenith: zd}
}

// Zenith distances outside of [0, π] describe valid directions too, but map projections
// expect latitudes in [-π/2, π/2], so those take a detour through cartesian space.
func (d Direction) canonical() Direction {
	if d.Zenith >= 0 && d.Zenith <= math.Pi {
		return Direction{Azimuth: spherecoords.AzimuthRange(d.Azimuth), Zenith: d.Zenith}
	}
	cx, cy, cz := spherecoords.AzZdToCxCyCz(d.Azimuth, d.Zenith)
	c := Cartesian{cx, cy, cz}.ToDirection()
	return Direction{Azimuth: spherecoords.AzimuthRange(c.Azimuth), Zenith: c.Zenith}
}

// Latitude and longitude as seen by the map projections. The zenith is the north pole.
func (d Direction) LatLon() (lat float64, lon float64) {
	c := d.canonical()
	return math.Pi/2 - c.Zenith, c.Azimuth
}
