package sample

import (
	"math"
	"testing"

	"github.com/pthm-cable/strata/biome"
	"github.com/pthm-cable/strata/field"
)

func addValue(c *Collector, v float64) {
	c.Add(field.ExtendedEntry{Entry: field.Entry{Value: v}}, biome.Stone)
}

func TestCollectorStats(t *testing.T) {
	var c Collector
	for _, v := range []float64{-2, -1, 0, 1, 2, 3, 4, 5, 6, 7} {
		addValue(&c, v)
	}
	s := c.Stats()

	if s.Count != 10 {
		t.Errorf("count = %d, want 10", s.Count)
	}
	if math.Abs(s.Mean-2.5) > 0.001 {
		t.Errorf("mean = %v, want 2.5", s.Mean)
	}
	if s.Min != -2 || s.Max != 7 {
		t.Errorf("min/max = %v/%v, want -2/7", s.Min, s.Max)
	}
	if math.Abs(s.SolidFraction-0.7) > 0.001 {
		t.Errorf("solid fraction = %v, want 0.7", s.SolidFraction)
	}
	if s.P50 < s.P10 || s.P90 < s.P50 {
		t.Errorf("quantiles out of order: p10=%v p50=%v p90=%v", s.P10, s.P50, s.P90)
	}
	if s.P10 < s.Min || s.P90 > s.Max {
		t.Errorf("quantiles outside sample range: p10=%v p90=%v", s.P10, s.P90)
	}
}

func TestEmptyCollector(t *testing.T) {
	var c Collector
	s := c.Stats()
	if s.Count != 0 || s.Mean != 0 || s.SolidFraction != 0 {
		t.Errorf("empty collector stats = %+v, want zeros", s)
	}
}

func TestCollectorRecords(t *testing.T) {
	var c Collector
	c.Add(field.ExtendedEntry{
		Entry: field.Entry{X: 1, Y: 2, Z: 3, Value: 0.5},
		GradY: -0.25,
	}, biome.Grass)

	recs := c.Records()
	if len(recs) != 1 {
		t.Fatalf("got %d records, want 1", len(recs))
	}
	r := recs[0]
	if r.X != 1 || r.Y != 2 || r.Z != 3 {
		t.Errorf("record coords = (%d,%d,%d), want (1,2,3)", r.X, r.Y, r.Z)
	}
	if r.Density != 0.5 || r.GradY != -0.25 {
		t.Errorf("record values = %v/%v, want 0.5/-0.25", r.Density, r.GradY)
	}
	if r.Material != "grass" {
		t.Errorf("record material = %q, want grass", r.Material)
	}
}
