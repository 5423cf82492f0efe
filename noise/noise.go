// Package noise builds fractal (multi-octave) coherent-noise fields from a
// seeded gradient-noise primitive.
package noise

import (
	"fmt"
	"math/rand"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/pthm-cable/strata/field"
)

// Config parameterizes a fractal noise field. Frequency is per axis; use
// Uniform for isotropic noise, or set one axis to zero to flatten the
// field along it (a zero y frequency gives 2D heightmap-style noise).
type Config struct {
	Seed      int64
	Octaves   int
	Frequency [3]float64
}

// Uniform returns the same frequency on all three axes.
func Uniform(f float64) [3]float64 {
	return [3]float64{f, f, f}
}

type octave struct {
	gen        opensimplex.Noise
	fx, fy, fz float64
	amp        float64
}

// New builds a fractal noise field. Octave i samples the primitive at
// frequency*2^i with amplitude 2^-i; the octave sum is returned raw, not
// normalized. Each octave draws its own seed in order from a generator
// seeded with cfg.Seed, so the composed field is fully reproducible from
// the root seed alone.
func New(cfg Config) (field.Field, error) {
	if cfg.Octaves < 1 {
		return nil, fmt.Errorf("noise: octave count must be >= 1, got %d", cfg.Octaves)
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	octaves := make([]octave, cfg.Octaves)
	fx, fy, fz := cfg.Frequency[0], cfg.Frequency[1], cfg.Frequency[2]
	amp := 1.0
	for i := range octaves {
		octaves[i] = octave{
			gen: opensimplex.New(rng.Int63()),
			fx:  fx, fy: fy, fz: fz,
			amp: amp,
		}
		fx *= 2
		fy *= 2
		fz *= 2
		amp *= 0.5
	}

	return func(x, y, z int) float64 {
		var sum float64
		for i := range octaves {
			o := &octaves[i]
			sum += o.gen.Eval3(float64(x)*o.fx, float64(y)*o.fy, float64(z)*o.fz) * o.amp
		}
		return sum
	}, nil
}

// Must is a helper for noise fields built from static parameters; it
// panics if cfg is invalid.
func Must(cfg Config) field.Field {
	f, err := New(cfg)
	if err != nil {
		panic(fmt.Sprintf("noise: %v", err))
	}
	return f
}
