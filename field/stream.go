package field

import "iter"

// Entry is an immutable snapshot of one field evaluation.
type Entry struct {
	X, Y, Z int
	Value   float64
}

// ExtendedEntry adds estimated partial derivatives of the field along each
// axis, expressed per unit voxel.
type ExtendedEntry struct {
	Entry
	GradX, GradY, GradZ float64
}

// Stream yields one Entry per voxel in r, scanning x outermost, then y,
// then z. The sequence is forward-only and yields exactly r.Volume()
// entries; breaking out early is safe, there is nothing to release.
func (f Field) Stream(r Region) iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for x := r.Min.X; x <= r.Max.X; x++ {
			for y := r.Min.Y; y <= r.Max.Y; y++ {
				for z := r.Min.Z; z <= r.Max.Z; z++ {
					if !yield(Entry{X: x, Y: y, Z: z, Value: f(x, y, z)}) {
						return
					}
				}
			}
		}
	}
}
