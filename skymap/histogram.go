package skymap

import (
	"sync"

	"github.com/owlpinetech/spherecoords"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Counts locations per pixel of an indexer. Safe for concurrent use.
type Histogram struct {
	indexer Indexer
	counts  map[int]int
	total   int
	lock    sync.RWMutex
}

func NewHistogram(indexer Indexer) (*Histogram, error) {
	if indexer.Size() <= 0 {
		return nil, ErrZeroPixels
	}
	return &Histogram{
		indexer: indexer,
		counts:  map[int]int{},
	}, nil
}

func (h *Histogram) Indexer() Indexer {
	return h.indexer
}

func (h *Histogram) Add(locations ...Location) error {
	pixels := make([]int, len(locations))
	for i, loc := range locations {
		pixel, err := h.indexer.ToIndex(loc)
		if err != nil {
			return err
		}
		pixels[i] = pixel
	}

	h.lock.Lock()
	defer h.lock.Unlock()
	for _, pixel := range pixels {
		h.counts[pixel]++
	}
	h.total += len(pixels)
	return nil
}

// Bins a scalar or a batch of directions given in azimuth and zenith distance. Nothing is
// counted if any of the directions can not be binned.
func (h *Histogram) AddAzZd(azimuthRad spherecoords.Values, zenithRad spherecoords.Values) error {
	cx, cy, cz, err := spherecoords.Default().AzZdToCxCyCz(azimuthRad, zenithRad)
	if err != nil {
		return err
	}
	locations := make([]Location, cx.Len())
	for i := range locations {
		locations[i] = Cartesian{cx.At(i), cy.At(i), cz.At(i)}
	}
	return h.Add(locations...)
}

func (h *Histogram) Count(pixel int) int {
	h.lock.RLock()
	defer h.lock.RUnlock()
	return h.counts[pixel]
}

func (h *Histogram) Total() int {
	h.lock.RLock()
	defer h.lock.RUnlock()
	return h.total
}

// The ids of all pixels with a non zero count, in ascending order.
func (h *Histogram) Pixels() []int {
	h.lock.RLock()
	defer h.lock.RUnlock()
	pixels := maps.Keys(h.counts)
	slices.Sort(pixels)
	return pixels
}
