// Package biome supplies per-column terrain parameters derived from biome
// classification: base height and volatility scalars plus the surface
// materials used when a voxel sits at or near the density isosurface.
// Classification itself is external; callers provide a Provider.
package biome

// ID identifies a biome.
type ID uint8

const (
	Ocean ID = iota
	Plains
	Desert
	Hills
	Mountains
	Tundra
)

// Biome holds the per-biome terrain constants. Height and Volatility are
// in normalized field units (height 0 is sea level, 1 is the configured
// maximum elevation band).
type Biome struct {
	Name       string
	Height     float64
	Volatility float64
	Top        Material // surface voxel
	Filler     Material // voxels just below the surface
}

// Provider classifies a world column into a biome. Implementations must be
// deterministic; the column source calls Classify repeatedly for the same
// coordinates while smoothing.
type Provider interface {
	Classify(x, z int) ID
}

// Uniform returns a provider that classifies every column as id. Useful
// for tools and tests.
func Uniform(id ID) Provider { return uniformProvider(id) }

type uniformProvider ID

func (p uniformProvider) Classify(x, z int) ID { return ID(p) }

var registry = map[ID]Biome{
	Ocean:     {Name: "ocean", Height: -1.0, Volatility: 0.1, Top: Gravel, Filler: Gravel},
	Plains:    {Name: "plains", Height: 0.125, Volatility: 0.05, Top: Grass, Filler: Dirt},
	Desert:    {Name: "desert", Height: 0.125, Volatility: 0.05, Top: Sand, Filler: Sand},
	Hills:     {Name: "hills", Height: 0.45, Volatility: 0.3, Top: Grass, Filler: Dirt},
	Mountains: {Name: "mountains", Height: 1.0, Volatility: 0.5, Top: Grass, Filler: Dirt},
	Tundra:    {Name: "tundra", Height: 0.125, Volatility: 0.05, Top: Snow, Filler: Dirt},
}

// Lookup returns the constants for id, falling back to plains for unknown
// IDs so lookups stay total.
func Lookup(id ID) Biome {
	if b, ok := registry[id]; ok {
		return b
	}
	return registry[Plains]
}
