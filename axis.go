package gesture

import "math"

// DefaultVelocityThreshold is the speed in units/ms above which a completed
// gesture counts as a swipe.
const DefaultVelocityThreshold = 0.7

// DefaultMoveEpsilon is the displacement at or below which a gesture is
// treated as not having moved. Absorbs sub-pixel jitter.
const DefaultMoveEpsilon = 1.0

// HasVelocity reports whether the axis component of v exceeds threshold.
// For AxisBoth the larger of the two components is used.
func HasVelocity(axis Axis, v Vec2, threshold float64) bool {
	return axisSpeed(axis, v) > threshold
}

func axisSpeed(axis Axis, v Vec2) float64 {
	switch axis {
	case AxisX:
		return math.Abs(v.X)
	case AxisY:
		return math.Abs(v.Y)
	default:
		return math.Max(math.Abs(v.X), math.Abs(v.Y))
	}
}

// Classify returns the direction of d along its dominant axis. Ties go to
// the horizontal axis. Components not exceeding epsilon count as no movement.
func Classify(d Vec2, epsilon float64) Direction {
	ax, ay := math.Abs(d.X), math.Abs(d.Y)
	if ax >= ay {
		return horizontal(d.X, epsilon)
	}
	return vertical(d.Y, epsilon)
}

// ClassifyOnAxis returns the direction of d restricted to axis.
// AxisX never yields Up/Down and AxisY never yields Left/Right.
func ClassifyOnAxis(axis Axis, d Vec2, epsilon float64) Direction {
	switch axis {
	case AxisX:
		return horizontal(d.X, epsilon)
	case AxisY:
		return vertical(d.Y, epsilon)
	default:
		return Classify(d, epsilon)
	}
}

func horizontal(x, epsilon float64) Direction {
	switch {
	case x > epsilon:
		return DirectionRight
	case x < -epsilon:
		return DirectionLeft
	}
	return DirectionNone
}

func vertical(y, epsilon float64) Direction {
	switch {
	case y > epsilon:
		return DirectionDown
	case y < -epsilon:
		return DirectionUp
	}
	return DirectionNone
}

// directionOnAxis reports whether dir lies on axis.
func directionOnAxis(axis Axis, dir Direction) bool {
	switch axis {
	case AxisX:
		return dir.Horizontal()
	case AxisY:
		return dir.Vertical()
	default:
		return dir != DirectionNone
	}
}

// movedOnAxis reports whether d exceeds epsilon along axis.
func movedOnAxis(axis Axis, d Vec2, epsilon float64) bool {
	switch axis {
	case AxisX:
		return math.Abs(d.X) > epsilon
	case AxisY:
		return math.Abs(d.Y) > epsilon
	default:
		return d.Len() > epsilon
	}
}
