package gesture

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Tween animates one float64 field. Call Update(dt) each frame; the value is
// written through to the field. There is no global animation manager.
type Tween struct {
	tween *gween.Tween
	field *float64
	to    float64
	Done  bool
}

// NewTween animates *field from its current value to `to` over duration
// seconds. A nil easing function means ease.OutCubic.
func NewTween(field *float64, to float64, duration float32, fn ease.TweenFunc) *Tween {
	if fn == nil {
		fn = ease.OutCubic
	}
	if duration <= 0 {
		*field = to
		return &Tween{field: field, to: to, Done: true}
	}
	return &Tween{
		tween: gween.New(float32(*field), float32(to), duration, fn),
		field: field,
		to:    to,
	}
}

// Update advances the tween by dt seconds. The final frame writes the exact
// target value so float32 rounding does not leave the field short.
func (t *Tween) Update(dt float32) {
	if t == nil || t.Done {
		return
	}
	val, finished := t.tween.Update(dt)
	if finished {
		*t.field = t.to
		t.Done = true
		return
	}
	*t.field = float64(val)
}

// Target returns the value the tween ends at.
func (t *Tween) Target() float64 { return t.to }

// Stop halts the tween where it is.
func (t *Tween) Stop() {
	if t != nil {
		t.Done = true
	}
}
