package gesture

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertMatrix(t *testing.T, name string, got, want Affine) {
	t.Helper()
	for i := range got {
		if math.Abs(got[i]-want[i]) > epsilon {
			t.Errorf("%s[%d] = %v, want %v (full: %v vs %v)", name, i, got[i], want[i], got, want)
		}
	}
}

func TestAffineMulOrder(t *testing.T) {
	// Scale first, then translate.
	m := Translate(10, 20).Mul(ScaleBy(2, 3))
	x, y := m.Apply(1, 1)
	assertNear(t, "x", x, 12)
	assertNear(t, "y", y, 23)
}

func TestAffineRotate(t *testing.T) {
	x, y := Rotate(math.Pi/2).Apply(1, 0)
	assertNear(t, "x", x, 0)
	assertNear(t, "y", y, 1)
}

func TestAffineInvert(t *testing.T) {
	m := Translate(5, -3).Mul(Rotate(0.7)).Mul(ScaleBy(2, 0.5))
	assertMatrix(t, "m*inv", m.Mul(m.Invert()), Identity)

	v := m.ApplyVec(Vec2{3, 4})
	back := m.Invert().ApplyVec(v)
	assertNear(t, "x", back.X, 3)
	assertNear(t, "y", back.Y, 4)
}

func TestAffineInvertSingular(t *testing.T) {
	assertMatrix(t, "singular", ScaleBy(0, 1).Invert(), Identity)
}

func TestTransformedContains(t *testing.T) {
	// A 100x10 bar stood on its end.
	bar := NewTransformed(HitRect{Width: 100, Height: 10}, Rotate(math.Pi/2))
	if !bar.Contains(-5, 50) {
		t.Error("(-5, 50) should hit the rotated bar")
	}
	if bar.Contains(50, 5) {
		t.Error("(50, 5) lies on the unrotated bar only")
	}

	bar.Local = Translate(200, 0)
	if !bar.Contains(250, 5) || bar.Contains(50, 5) {
		t.Error("changing Local should move the hit area")
	}
}

func TestTransformedOnSurface(t *testing.T) {
	s := NewSurface()
	el := NewTransformed(HitCircle{Radius: 10}, Translate(100, 100))
	p := addPointer(t, s, el)
	events := record(p)

	dispatch(t, s, At(InputDown, 5, 5, 0))
	dispatch(t, s, At(InputDown, 105, 95, 0))
	if len(*events) != 1 {
		t.Fatalf("got %d events", len(*events))
	}
	if (*events)[0].CurrentTarget != Element(el) {
		t.Error("current target should be the transformed element")
	}
}
