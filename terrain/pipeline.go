// Package terrain composes noise and biome fields into one world density
// field per seed, and materializes streamed density entries into voxel
// materials.
package terrain

import (
	"fmt"
	"iter"
	"math/rand"

	"github.com/pthm-cable/strata/biome"
	"github.com/pthm-cable/strata/config"
	"github.com/pthm-cable/strata/field"
	"github.com/pthm-cable/strata/noise"
)

// CubeSize is the edge length of one generation cube, in voxels.
const CubeSize = 16

// VoxelSink receives one material per generated voxel. Calls arrive in the
// field streaming order, but sinks must not rely on adjacency.
type VoxelSink interface {
	SetMaterial(x, y, z int, m biome.Material)
}

// Pipeline is a seeded terrain generator. Fields are composed once at
// construction; each GenerateCube call streams one cube through the scaled
// evaluator and materializes it. A Pipeline is single-worker: the column
// cache it owns is not synchronized.
type Pipeline struct {
	density   field.Field
	eval      *field.ScaledEvaluator
	columns   *biome.ColumnSource
	seaLevel  int
	dirtDepth float64
}

// NewPipeline builds the composed density field for a world seed. The
// selector noise lerps between two independently seeded terrain fields;
// the result is shaped by biome volatility and height, a 2D height
// perturbation, and the vertical rebase that makes density fall with
// altitude. Sub-seeds for the four noise sources are drawn in a fixed
// order from the world seed, so the whole pipeline is reproducible.
func NewPipeline(seed int64, cfg *config.Config, provider biome.Provider) (*Pipeline, error) {
	g := cfg.Generator
	rng := rand.New(rand.NewSource(seed))

	selector, err := noise.New(noise.Config{
		Seed:      rng.Int63(),
		Octaves:   g.SelectorOctaves,
		Frequency: noise.Uniform(cfg.Derived.SelectorFreq),
	})
	if err != nil {
		return nil, fmt.Errorf("terrain: selector noise: %w", err)
	}
	low, err := noise.New(noise.Config{
		Seed:      rng.Int63(),
		Octaves:   g.TerrainOctaves,
		Frequency: noise.Uniform(cfg.Derived.TerrainFreq),
	})
	if err != nil {
		return nil, fmt.Errorf("terrain: low noise: %w", err)
	}
	high, err := noise.New(noise.Config{
		Seed:      rng.Int63(),
		Octaves:   g.TerrainOctaves,
		Frequency: noise.Uniform(cfg.Derived.TerrainFreq),
	})
	if err != nil {
		return nil, fmt.Errorf("terrain: high noise: %w", err)
	}

	// 2D-only perturbation: zero y frequency flattens the noise along the
	// vertical axis, and the clamp/conditional-divide chain compresses
	// negative excursions harder than positive ones.
	height2d, err := noise.New(noise.Config{
		Seed:      rng.Int63(),
		Octaves:   g.HeightOctaves,
		Frequency: [3]float64{cfg.Derived.HeightFreq, 0, cfg.Derived.HeightFreq},
	})
	if err != nil {
		return nil, fmt.Errorf("terrain: height noise: %w", err)
	}
	randomHeight := height2d.
		MulConstIf(field.Negative, -0.3).
		MulConst(3).SubConst(2).
		Clamp(-2, 1).
		DivConstIf(field.Negative, 2*2*1.4).
		DivConstIf(field.NotNegative, 8).
		MulConst(0.2 * 17 / 64.0)

	columns, err := biome.NewColumnSource(provider, g.SmoothRadius, CubeSize, CubeSize)
	if err != nil {
		return nil, fmt.Errorf("terrain: %w", err)
	}
	height := columns.Height()
	volatility := columns.Volatility()

	// Steepen terrain below the biome surface band: the volatility term is
	// quartered once the voxel's scaled altitude exceeds the column height.
	maxElev := g.MaxElev
	heightGrad := g.HeightGradient
	depthDamp := field.Field(func(x, y, z int) float64 {
		if float64(y)*heightGrad/maxElev < height(x, y, z) {
			return 4
		}
		return 1
	})

	density := selector.
		Lerp(low, high).
		Mul(volatility.Div(depthDamp)).
		Add(height).Add(randomHeight).
		MulConst(maxElev).AddConst(g.BaseHeight).
		Sub(func(x, y, z int) float64 { return float64(y) * heightGrad })

	eval, err := field.NewScaledEvaluator(density, field.Vec3{X: g.StrideX, Y: g.StrideY, Z: g.StrideZ})
	if err != nil {
		return nil, fmt.Errorf("terrain: %w", err)
	}

	return &Pipeline{
		density:   density,
		eval:      eval,
		columns:   columns,
		seaLevel:  g.SeaLevel,
		dirtDepth: g.DirtDepth,
	}, nil
}

// Density returns the composed density field. Evaluating it outside the
// active chunk context gives uncached (slower) column lookups.
func (p *Pipeline) Density() field.Field { return p.density }

// StreamCube binds the column cache to the cube's chunk and streams the
// cube's voxels through the scaled evaluator.
func (p *Pipeline) StreamCube(cubeX, cubeY, cubeZ int) iter.Seq[field.ExtendedEntry] {
	p.columns.SetChunk(cubeX, cubeZ)
	r := field.NewRegion(
		field.Vec3{X: cubeX * CubeSize, Y: cubeY * CubeSize, Z: cubeZ * CubeSize},
		field.Vec3{X: cubeX*CubeSize + CubeSize - 1, Y: cubeY*CubeSize + CubeSize - 1, Z: cubeZ*CubeSize + CubeSize - 1},
	)
	return p.eval.Stream(r)
}

// GenerateCube materializes the cube at the given cube coordinates into
// the sink, one SetMaterial call per voxel.
func (p *Pipeline) GenerateCube(sink VoxelSink, cubeX, cubeY, cubeZ int) {
	for e := range p.StreamCube(cubeX, cubeY, cubeZ) {
		sink.SetMaterial(e.X, e.Y, e.Z, p.Material(e))
	}
}

// Material maps one streamed entry to a voxel material. The vertical
// gradient stands in for distance to the density-zero isosurface:
// value+gradY <= 0 means the voxel one step up would be air, so this voxel
// carries the biome's surface material.
func (p *Pipeline) Material(e field.ExtendedEntry) biome.Material {
	if e.Value <= 0 {
		if e.Y < p.seaLevel {
			return biome.Water
		}
		return biome.Air
	}

	b := p.columns.Biome(e.X, e.Z)
	switch {
	case e.Value+e.GradY <= 0:
		// surface voxel: the block above would be empty
		if e.Y < p.seaLevel-1 {
			return b.Filler
		}
		return b.Top
	case e.GradY < 0 && e.Value < p.dirtDepth:
		// density thins going up and we are shallow: still in the dirt band
		return b.Filler
	default:
		return biome.Stone
	}
}
