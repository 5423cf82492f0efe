package biome

import (
	"fmt"
	"math"

	"github.com/pthm-cable/strata/field"
)

// ColumnSource exposes smoothed per-column height and volatility as scalar
// fields (the y coordinate is ignored). Results are cached per active
// chunk; SetChunk must be called before evaluating columns of a different
// chunk. The cache is not synchronized: concurrent workers each own their
// own ColumnSource.
type ColumnSource struct {
	provider Provider
	radius   int
	sizeX    int
	sizeZ    int

	originX, originZ int
	height           []float64
	volatility       []float64
	valid            []bool
}

// NewColumnSource builds a column source smoothing biome constants over a
// (2*radius+1)^2 neighborhood, with a per-chunk cache of sizeX by sizeZ
// columns.
func NewColumnSource(p Provider, radius, sizeX, sizeZ int) (*ColumnSource, error) {
	if p == nil {
		return nil, fmt.Errorf("column source: provider is nil")
	}
	if radius < 0 {
		return nil, fmt.Errorf("column source: smoothing radius must be >= 0, got %d", radius)
	}
	if sizeX < 1 || sizeZ < 1 {
		return nil, fmt.Errorf("column source: chunk size must be >= 1, got %dx%d", sizeX, sizeZ)
	}
	return &ColumnSource{
		provider:   p,
		radius:     radius,
		sizeX:      sizeX,
		sizeZ:      sizeZ,
		height:     make([]float64, sizeX*sizeZ),
		volatility: make([]float64, sizeX*sizeZ),
		valid:      make([]bool, sizeX*sizeZ),
	}, nil
}

// SetChunk rebinds the cache to the chunk at (cx, cz) in chunk coordinates
// and invalidates all cached columns.
func (s *ColumnSource) SetChunk(cx, cz int) {
	s.originX = cx * s.sizeX
	s.originZ = cz * s.sizeZ
	clear(s.valid)
}

// Height returns the smoothed biome height field. The result depends only
// on (x, z).
func (s *ColumnSource) Height() field.Field {
	return func(x, y, z int) float64 {
		h, _ := s.column(x, z)
		return h
	}
}

// Volatility returns the smoothed biome volatility field. The result
// depends only on (x, z).
func (s *ColumnSource) Volatility() field.Field {
	return func(x, y, z int) float64 {
		_, v := s.column(x, z)
		return v
	}
}

// Biome classifies the column directly, without smoothing. Used by
// materialization to pick surface materials.
func (s *ColumnSource) Biome(x, z int) Biome {
	return Lookup(s.provider.Classify(x, z))
}

// column returns the smoothed (height, volatility) for a world column.
// Columns inside the active chunk are cached; columns outside it are
// computed on the fly (callers that forget SetChunk get well-defined but
// uncached values).
func (s *ColumnSource) column(x, z int) (float64, float64) {
	lx, lz := x-s.originX, z-s.originZ
	if lx < 0 || lx >= s.sizeX || lz < 0 || lz >= s.sizeZ {
		return s.smooth(x, z)
	}
	i := lx*s.sizeZ + lz
	if !s.valid[i] {
		s.height[i], s.volatility[i] = s.smooth(x, z)
		s.valid[i] = true
	}
	return s.height[i], s.volatility[i]
}

// smooth blends biome constants over the neighborhood with an
// inverse-distance kernel, so height and volatility ramp across biome
// borders instead of stepping.
func (s *ColumnSource) smooth(x, z int) (float64, float64) {
	var height, volatility, total float64
	for dx := -s.radius; dx <= s.radius; dx++ {
		for dz := -s.radius; dz <= s.radius; dz++ {
			b := Lookup(s.provider.Classify(x+dx, z+dz))
			w := 10.0 / math.Sqrt(float64(dx*dx+dz*dz)+0.2)
			height += b.Height * w
			volatility += b.Volatility * w
			total += w
		}
	}
	return height / total, volatility / total
}
