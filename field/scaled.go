package field

import (
	"fmt"
	"iter"
)

// ScaledEvaluator streams full-resolution values and gradients over a
// region while evaluating the wrapped field only on a coarse lattice
// spaced by the stride vector. Intermediate voxels are reconstructed by
// trilinear interpolation; gradients are the analytic partial derivatives
// of the same trilinear basis, so value and gradient always agree at
// lattice corners.
type ScaledEvaluator struct {
	f     Field
	scale Vec3
}

// NewScaledEvaluator wraps f with the given per-axis stride. Strides must
// be >= 1 on every axis; a stride of 1 degenerates that axis to direct
// evaluation.
func NewScaledEvaluator(f Field, scale Vec3) (*ScaledEvaluator, error) {
	if scale.X < 1 || scale.Y < 1 || scale.Z < 1 {
		return nil, fmt.Errorf("scaled evaluator: stride must be >= 1 on every axis, got (%d,%d,%d)",
			scale.X, scale.Y, scale.Z)
	}
	return &ScaledEvaluator{f: f, scale: scale}, nil
}

// Scale returns the evaluator's stride vector.
func (e *ScaledEvaluator) Scale() Vec3 { return e.scale }

// Stream yields one ExtendedEntry per voxel in r, in the same scan order
// and with the same length as Field.Stream. The wrapped field is invoked
// exactly once per coarse-lattice corner; everything else is
// interpolation.
func (e *ScaledEvaluator) Stream(r Region) iter.Seq[ExtendedEntry] {
	return func(yield func(ExtendedEntry) bool) {
		g := newCornerGrid(e.f, r, e.scale)
		for x := r.Min.X; x <= r.Max.X; x++ {
			cx, u := cellPos(x-r.Min.X, e.scale.X, g.nx)
			for y := r.Min.Y; y <= r.Max.Y; y++ {
				cy, v := cellPos(y-r.Min.Y, e.scale.Y, g.ny)
				// Within one z-cell, u and v are fixed, so the
				// interpolation collapses to a 1D blend along w plus a
				// constant z-gradient. Recompute only when the cell
				// changes.
				var cell cellInterp
				lastCZ := -1
				for z := r.Min.Z; z <= r.Max.Z; z++ {
					cz, w := cellPos(z-r.Min.Z, e.scale.Z, g.nz)
					if cz != lastCZ {
						cell = g.interp(cx, cy, cz, u, v, e.scale)
						lastCZ = cz
					}
					ee := ExtendedEntry{
						Entry: Entry{X: x, Y: y, Z: z, Value: cell.val0 + w*(cell.val1-cell.val0)},
						GradX: cell.gx0 + w*(cell.gx1-cell.gx0),
						GradY: cell.gy0 + w*(cell.gy1-cell.gy0),
						GradZ: cell.gz,
					}
					if !yield(ee) {
						return
					}
				}
			}
		}
	}
}

// cellPos maps a voxel offset along one axis to its coarse cell index and
// fractional position within that cell. Offsets landing on the final
// lattice plane fold into the last cell with fraction 1, so no cell beyond
// the precomputed grid is ever addressed.
func cellPos(offset, stride, cells int) (int, float64) {
	c := offset / stride
	if c >= cells {
		c = cells - 1
	}
	return c, float64(offset-c*stride) / float64(stride)
}

// cellCount returns the minimum number of stride-wide cells covering a
// size-wide span of voxels.
func cellCount(size, stride int) int {
	if size <= 1 {
		return 1
	}
	return (size - 2 + stride) / stride
}

// cornerGrid holds the wrapped field evaluated at every coarse-lattice
// corner covering a region. Corners shared between adjacent cells appear
// once; the final cell's upper corners may lie past the region's max edge,
// which is fine since fields are total.
type cornerGrid struct {
	vals       []float64
	nx, ny, nz int // cells per axis
}

func newCornerGrid(f Field, r Region, scale Vec3) *cornerGrid {
	size := r.Size()
	g := &cornerGrid{
		nx: cellCount(size.X, scale.X),
		ny: cellCount(size.Y, scale.Y),
		nz: cellCount(size.Z, scale.Z),
	}
	g.vals = make([]float64, (g.nx+1)*(g.ny+1)*(g.nz+1))
	i := 0
	for ix := 0; ix <= g.nx; ix++ {
		for iy := 0; iy <= g.ny; iy++ {
			for iz := 0; iz <= g.nz; iz++ {
				g.vals[i] = f(r.Min.X+ix*scale.X, r.Min.Y+iy*scale.Y, r.Min.Z+iz*scale.Z)
				i++
			}
		}
	}
	return g
}

func (g *cornerGrid) at(ix, iy, iz int) float64 {
	return g.vals[(ix*(g.ny+1)+iy)*(g.nz+1)+iz]
}

// cellInterp is a cell's trilinear interpolation with the x and y
// fractions already substituted: val0/val1 are the blended values on the
// cell's near and far z faces, gx/gy likewise for the x and y gradients.
// The z gradient is independent of the z fraction, so it is a single
// value.
type cellInterp struct {
	val0, val1 float64
	gx0, gx1   float64
	gy0, gy1   float64
	gz         float64
}

// interp folds the 8 corner values of cell (cx,cy,cz) down to a 1D blend
// along z, given fractions u (x axis) and v (y axis). Gradients are the
// closed-form partial derivatives of the trilinear basis, divided by the
// stride so they are per voxel rather than per cell.
func (g *cornerGrid) interp(cx, cy, cz int, u, v float64, scale Vec3) cellInterp {
	c000 := g.at(cx, cy, cz)
	c001 := g.at(cx, cy, cz+1)
	c010 := g.at(cx, cy+1, cz)
	c011 := g.at(cx, cy+1, cz+1)
	c100 := g.at(cx+1, cy, cz)
	c101 := g.at(cx+1, cy, cz+1)
	c110 := g.at(cx+1, cy+1, cz)
	c111 := g.at(cx+1, cy+1, cz+1)

	sx := float64(scale.X)
	sy := float64(scale.Y)
	sz := float64(scale.Z)

	// Bilinear blends over (u, v) on the two z faces.
	v00 := c000 + u*(c100-c000)
	v10 := c010 + u*(c110-c010)
	v01 := c001 + u*(c101-c001)
	v11 := c011 + u*(c111-c011)

	// d/dx: forward differences along x, blended over v on each z face.
	dx0 := (c100 - c000) + v*((c110-c010)-(c100-c000))
	dx1 := (c101 - c001) + v*((c111-c011)-(c101-c001))

	// d/dy: differences along y, blended over u on each z face.
	dy0 := (c010 - c000) + u*((c110-c100)-(c010-c000))
	dy1 := (c011 - c001) + u*((c111-c101)-(c011-c001))

	ci := cellInterp{
		val0: v00 + v*(v10-v00),
		val1: v01 + v*(v11-v01),
		gx0:  dx0 / sx,
		gx1:  dx1 / sx,
		gy0:  dy0 / sy,
		gy1:  dy1 / sy,
	}
	// d/dz is the difference of the two face values, constant in w.
	ci.gz = (ci.val1 - ci.val0) / sz
	return ci
}
