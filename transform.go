package gesture

import "math"

// Affine is a 2D affine matrix [a, b, c, d, tx, ty]:
//
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
type Affine [6]float64

// Identity is the identity matrix.
var Identity = Affine{1, 0, 0, 1, 0, 0}

// Translate returns a translation by (x, y).
func Translate(x, y float64) Affine { return Affine{1, 0, 0, 1, x, y} }

// ScaleBy returns a scale by (sx, sy) about the origin.
func ScaleBy(sx, sy float64) Affine { return Affine{sx, 0, 0, sy, 0, 0} }

// Rotate returns a rotation by r radians about the origin. Positive angles
// turn clockwise in screen coordinates.
func Rotate(r float64) Affine {
	sin, cos := math.Sincos(r)
	return Affine{cos, sin, -sin, cos, 0, 0}
}

// Mul returns m * o, applying o first.
func (m Affine) Mul(o Affine) Affine {
	return Affine{
		m[0]*o[0] + m[2]*o[1],
		m[1]*o[0] + m[3]*o[1],
		m[0]*o[2] + m[2]*o[3],
		m[1]*o[2] + m[3]*o[3],
		m[0]*o[4] + m[2]*o[5] + m[4],
		m[1]*o[4] + m[3]*o[5] + m[5],
	}
}

// Invert returns the inverse of m, or Identity when m is singular.
func (m Affine) Invert() Affine {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return Identity
	}
	inv := 1.0 / det
	a := m[3] * inv
	b := -m[1] * inv
	c := -m[2] * inv
	d := m[0] * inv
	return Affine{a, b, c, d, -(a*m[4] + c*m[5]), -(b*m[4] + d*m[5])}
}

// Apply transforms the point (x, y).
func (m Affine) Apply(x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// ApplyVec transforms v.
func (m Affine) ApplyVec(v Vec2) Vec2 {
	x, y := m.Apply(v.X, v.Y)
	return Vec2{x, y}
}

// Transformed places an element in a parent coordinate space. Local maps
// element coordinates to the parent's, so a HitRect rotated by Rotate(θ)
// stays a rectangle in its own space while hit tests run in screen space.
type Transformed struct {
	El    Element
	Local Affine

	inv   Affine
	cache Affine
	valid bool
}

// NewTransformed wraps el with the local-to-parent matrix m.
func NewTransformed(el Element, m Affine) *Transformed {
	return &Transformed{El: el, Local: m}
}

// ToLocal maps a parent-space point into the element's space.
func (t *Transformed) ToLocal(x, y float64) (float64, float64) {
	if !t.valid || t.cache != t.Local {
		t.inv = t.Local.Invert()
		t.cache = t.Local
		t.valid = true
	}
	return t.inv.Apply(x, y)
}

// Contains reports whether the parent-space point (x, y) lies in the
// wrapped element.
func (t *Transformed) Contains(x, y float64) bool {
	lx, ly := t.ToLocal(x, y)
	return t.El.Contains(lx, ly)
}
