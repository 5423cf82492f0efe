package field

// Vec3 is an integer 3D vector, used for region corners and stride vectors.
type Vec3 struct {
	X, Y, Z int
}

// Region is an axis-aligned inclusive box of voxel coordinates. Size along
// each axis is Max-Min+1, so a region is never empty.
type Region struct {
	Min, Max Vec3
}

// NewRegion builds a region from any two opposite corners, normalizing so
// that Min <= Max on every axis.
func NewRegion(a, b Vec3) Region {
	return Region{
		Min: Vec3{min(a.X, b.X), min(a.Y, b.Y), min(a.Z, b.Z)},
		Max: Vec3{max(a.X, b.X), max(a.Y, b.Y), max(a.Z, b.Z)},
	}
}

// Size returns the per-axis voxel counts.
func (r Region) Size() Vec3 {
	return Vec3{
		X: r.Max.X - r.Min.X + 1,
		Y: r.Max.Y - r.Min.Y + 1,
		Z: r.Max.Z - r.Min.Z + 1,
	}
}

// Volume returns the exact number of voxels in the region, which is also
// the exact length of any stream over it.
func (r Region) Volume() int {
	s := r.Size()
	return s.X * s.Y * s.Z
}

// Contains reports whether the coordinate lies inside the region.
func (r Region) Contains(x, y, z int) bool {
	return x >= r.Min.X && x <= r.Max.X &&
		y >= r.Min.Y && y <= r.Max.Y &&
		z >= r.Min.Z && z <= r.Max.Z
}
