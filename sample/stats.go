// Package sample captures streamed density entries for offline analysis:
// per-voxel CSV records plus distribution statistics of the sampled
// region.
package sample

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/strata/biome"
	"github.com/pthm-cable/strata/field"
)

// Record is one sampled voxel, shaped for CSV export.
type Record struct {
	X        int     `csv:"x"`
	Y        int     `csv:"y"`
	Z        int     `csv:"z"`
	Density  float64 `csv:"density"`
	GradY    float64 `csv:"grad_y"`
	Material string  `csv:"material"`
}

// Stats summarizes the density distribution of a sampled region.
type Stats struct {
	Count         int     `csv:"count"`
	Mean          float64 `csv:"mean"`
	StdDev        float64 `csv:"std_dev"`
	Min           float64 `csv:"min"`
	Max           float64 `csv:"max"`
	P10           float64 `csv:"p10"`
	P50           float64 `csv:"p50"`
	P90           float64 `csv:"p90"`
	SolidFraction float64 `csv:"solid_fraction"` // voxels with density > 0
}

// Collector accumulates streamed entries.
type Collector struct {
	records   []Record
	densities []float64
	solid     int
}

// Add appends one materialized entry.
func (c *Collector) Add(e field.ExtendedEntry, m biome.Material) {
	c.records = append(c.records, Record{
		X: e.X, Y: e.Y, Z: e.Z,
		Density:  e.Value,
		GradY:    e.GradY,
		Material: m.String(),
	})
	c.densities = append(c.densities, e.Value)
	if e.Value > 0 {
		c.solid++
	}
}

// Records returns the accumulated per-voxel records.
func (c *Collector) Records() []Record { return c.records }

// Stats computes distribution statistics over everything added so far.
func (c *Collector) Stats() Stats {
	n := len(c.densities)
	if n == 0 {
		return Stats{}
	}

	sorted := make([]float64, n)
	copy(sorted, c.densities)
	sort.Float64s(sorted)

	mean, std := stat.MeanStdDev(sorted, nil)
	return Stats{
		Count:         n,
		Mean:          mean,
		StdDev:        std,
		Min:           sorted[0],
		Max:           sorted[n-1],
		P10:           stat.Quantile(0.10, stat.Empirical, sorted, nil),
		P50:           stat.Quantile(0.50, stat.Empirical, sorted, nil),
		P90:           stat.Quantile(0.90, stat.Empirical, sorted, nil),
		SolidFraction: float64(c.solid) / float64(n),
	}
}
