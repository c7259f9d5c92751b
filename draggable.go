package gesture

import "github.com/tanema/gween/ease"

// DraggableConfig configures a Draggable.
type DraggableConfig struct {
	// Bounds clamps the translation when non-nil.
	Bounds *HitRect
	// Revert animates the translation back to where the drag started once
	// the pointer is released.
	Revert         bool
	RevertDuration float32 // seconds; defaults to 0.25
	Ease           ease.TweenFunc
}

// Draggable translates along the pointer's axis while a gesture is tracked.
type Draggable struct {
	X, Y float64

	p        *Pointer
	cfg      DraggableConfig
	origin   Vec2
	dragging bool
	tweens   [2]*Tween
	handles  [3]CallbackHandle

	// OnRelease, when set, is called after END is processed.
	OnRelease func(Event)
}

// NewDraggable attaches a Draggable to p. Call Update each frame when
// Revert is enabled.
func NewDraggable(p *Pointer, cfg DraggableConfig) *Draggable {
	if cfg.RevertDuration <= 0 {
		cfg.RevertDuration = 0.25
	}
	d := &Draggable{p: p, cfg: cfg}
	d.handles[0] = p.OnStart(d.start)
	d.handles[1] = p.OnMove(d.move)
	d.handles[2] = p.OnEnd(d.end)
	return d
}

// Dragging reports whether a drag is in progress.
func (d *Draggable) Dragging() bool { return d.dragging }

// Position returns the current translation.
func (d *Draggable) Position() Vec2 { return Vec2{d.X, d.Y} }

// Settling reports whether a revert animation is running.
func (d *Draggable) Settling() bool {
	return (d.tweens[0] != nil && !d.tweens[0].Done) || (d.tweens[1] != nil && !d.tweens[1].Done)
}

func (d *Draggable) start(ev Event) {
	d.tweens[0].Stop()
	d.tweens[1].Stop()
	d.origin = Vec2{d.X, d.Y}
	d.dragging = true
}

func (d *Draggable) move(ev Event) {
	delta := ev.Delta
	switch d.p.opts.Axis {
	case AxisX:
		delta.Y = 0
	case AxisY:
		delta.X = 0
	}
	pos := d.clamp(d.origin.Add(delta))
	d.X, d.Y = pos.X, pos.Y
}

func (d *Draggable) end(ev Event) {
	d.dragging = false
	if d.cfg.Revert {
		d.tweens[0] = NewTween(&d.X, d.origin.X, d.cfg.RevertDuration, d.cfg.Ease)
		d.tweens[1] = NewTween(&d.Y, d.origin.Y, d.cfg.RevertDuration, d.cfg.Ease)
	}
	if d.OnRelease != nil {
		d.OnRelease(ev)
	}
}

func (d *Draggable) clamp(v Vec2) Vec2 {
	b := d.cfg.Bounds
	if b == nil {
		return v
	}
	v.X = min(max(v.X, b.X), b.X+b.Width)
	v.Y = min(max(v.Y, b.Y), b.Y+b.Height)
	return v
}

// Update advances the revert animation by dt seconds.
func (d *Draggable) Update(dt float32) {
	d.tweens[0].Update(dt)
	d.tweens[1].Update(dt)
}

// Detach stops following the pointer. The pointer itself is not disposed.
func (d *Draggable) Detach() {
	for i := range d.handles {
		d.handles[i].Remove()
		d.handles[i] = CallbackHandle{}
	}
	d.dragging = false
}
