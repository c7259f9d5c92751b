package gesture

import "math"

// Vec2 is a 2D vector used for positions, deltas and velocities.
// All methods use value receivers and never modify their operands.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale multiplies X by sx and Y by sy. With a single factor both axes are
// scaled by sx.
func (v Vec2) Scale(sx float64, sy ...float64) Vec2 {
	y := sx
	if len(sy) > 0 {
		y = sy[0]
	}
	return Vec2{v.X * sx, v.Y * y}
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Equals reports exact component equality.
func (v Vec2) Equals(o Vec2) bool {
	return v.X == o.X && v.Y == o.Y
}

// IsZero reports whether both components are zero.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// finite reports whether neither component is NaN or infinite.
func (v Vec2) finite() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Vec2) float64 {
	return b.Sub(a).Len()
}
