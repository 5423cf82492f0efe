// Package field provides a composable scalar-field abstraction for voxel
// density generation. A Field is a pure function from a 3D integer
// coordinate to a density value; combinators build new fields by closing
// over their operands, so evaluation stays lazy and existing fields are
// never mutated.
package field

// Predicate reports whether a field value satisfies a condition. Used by
// the conditional combinators (AddIf, MulIf, ...).
type Predicate func(v float64) bool

// Canonical predicates shared by the conditional combinators.
var (
	Negative    Predicate = func(v float64) bool { return v < 0 }
	Positive    Predicate = func(v float64) bool { return v > 0 }
	NotNegative Predicate = func(v float64) bool { return v >= 0 }
	NotPositive Predicate = func(v float64) bool { return v <= 0 }
)

// Field maps a voxel coordinate to a density value. It must be total over
// the full integer domain: no panics, no errors. Division by zero follows
// IEEE-754 (Inf/NaN propagate through combinators); callers avoid zero
// denominators structurally.
type Field func(x, y, z int) float64

// Const returns a field that evaluates to c everywhere.
func Const(c float64) Field {
	return func(x, y, z int) float64 { return c }
}

// Add returns a field evaluating to f + other at every coordinate.
func (f Field) Add(other Field) Field {
	return func(x, y, z int) float64 { return f(x, y, z) + other(x, y, z) }
}

// AddConst returns a field evaluating to f + c.
func (f Field) AddConst(c float64) Field {
	return f.Apply(func(v float64) float64 { return v + c })
}

// Sub returns a field evaluating to f - other.
func (f Field) Sub(other Field) Field {
	return func(x, y, z int) float64 { return f(x, y, z) - other(x, y, z) }
}

// SubConst returns a field evaluating to f - c.
func (f Field) SubConst(c float64) Field {
	return f.Apply(func(v float64) float64 { return v - c })
}

// Mul returns a field evaluating to f * other.
func (f Field) Mul(other Field) Field {
	return func(x, y, z int) float64 { return f(x, y, z) * other(x, y, z) }
}

// MulConst returns a field evaluating to f * c.
func (f Field) MulConst(c float64) Field {
	return f.Apply(func(v float64) float64 { return v * c })
}

// Div returns a field evaluating to f / other.
func (f Field) Div(other Field) Field {
	return func(x, y, z int) float64 { return f(x, y, z) / other(x, y, z) }
}

// DivConst returns a field evaluating to f / c.
func (f Field) DivConst(c float64) Field {
	return f.Apply(func(v float64) float64 { return v / c })
}

// Clamp returns a field restricting f's output to [min, max].
func (f Field) Clamp(min, max float64) Field {
	return f.Apply(func(v float64) float64 { return clamp(v, min, max) })
}

// Apply returns a field mapping f's output through fn.
func (f Field) Apply(fn func(float64) float64) Field {
	return func(x, y, z int) float64 { return fn(f(x, y, z)) }
}

// AddIf adds other only where p holds for f's value; elsewhere the value
// passes through unchanged. The remaining *If combinators follow the same
// shape.
func (f Field) AddIf(p Predicate, other Field) Field {
	return func(x, y, z int) float64 {
		v := f(x, y, z)
		if p(v) {
			v += other(x, y, z)
		}
		return v
	}
}

// AddConstIf conditionally adds a constant.
func (f Field) AddConstIf(p Predicate, c float64) Field {
	return f.ApplyIf(p, func(v float64) float64 { return v + c })
}

// SubIf conditionally subtracts another field.
func (f Field) SubIf(p Predicate, other Field) Field {
	return func(x, y, z int) float64 {
		v := f(x, y, z)
		if p(v) {
			v -= other(x, y, z)
		}
		return v
	}
}

// SubConstIf conditionally subtracts a constant.
func (f Field) SubConstIf(p Predicate, c float64) Field {
	return f.ApplyIf(p, func(v float64) float64 { return v - c })
}

// MulIf conditionally multiplies by another field.
func (f Field) MulIf(p Predicate, other Field) Field {
	return func(x, y, z int) float64 {
		v := f(x, y, z)
		if p(v) {
			v *= other(x, y, z)
		}
		return v
	}
}

// MulConstIf conditionally multiplies by a constant.
func (f Field) MulConstIf(p Predicate, c float64) Field {
	return f.ApplyIf(p, func(v float64) float64 { return v * c })
}

// DivIf conditionally divides by another field.
func (f Field) DivIf(p Predicate, other Field) Field {
	return func(x, y, z int) float64 {
		v := f(x, y, z)
		if p(v) {
			v /= other(x, y, z)
		}
		return v
	}
}

// DivConstIf conditionally divides by a constant.
func (f Field) DivConstIf(p Predicate, c float64) Field {
	return f.ApplyIf(p, func(v float64) float64 { return v / c })
}

// ClampIf clamps to [min, max] only where p holds.
func (f Field) ClampIf(p Predicate, min, max float64) Field {
	return f.Apply(func(v float64) float64 {
		if p(v) {
			return clamp(v, min, max)
		}
		return v
	})
}

// ApplyIf maps through fn only where p holds.
func (f Field) ApplyIf(p Predicate, fn func(float64) float64) Field {
	return func(x, y, z int) float64 {
		v := f(x, y, z)
		if p(v) {
			v = fn(v)
		}
		return v
	}
}

// Lerp combines two fields using the receiver as the interpolation
// selector: selector 0 yields low, selector 1 yields high. The selector is
// not clamped, so values outside [0, 1] extrapolate; callers wanting
// clamped interpolation clamp the selector field first.
func (f Field) Lerp(low, high Field) Field {
	return func(x, y, z int) float64 {
		l := low(x, y, z)
		return l + f(x, y, z)*(high(x, y, z)-l)
	}
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
