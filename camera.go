package gesture

import (
	"math"

	"github.com/tanema/gween/ease"
)

// Camera is a pannable, zoomable view onto a world plane. Attached to a
// Pointer it pans with the drag; its ScreenToWorld plugs into
// EbitenSource.Transform so elements can live in world coordinates.
type Camera struct {
	// X and Y are the world position at the centre of the viewport.
	X, Y float64
	// Zoom is the scale factor (1 = no zoom).
	Zoom float64
	// Rotation is in radians, clockwise.
	Rotation float64
	// Viewport is the screen rectangle the camera covers.
	Viewport HitRect

	// Bounds, when set, keeps the visible area inside this world rectangle.
	Bounds *HitRect

	view    Affine
	inv     Affine
	dirty   bool
	tweens  [2]*Tween
	pan     Vec2 // camera position when the current pan started
	handles [3]CallbackHandle
	panning bool
}

// NewCamera returns a camera centred on the origin covering viewport.
func NewCamera(viewport HitRect) *Camera {
	return &Camera{Zoom: 1, Viewport: viewport, dirty: true}
}

// MarkDirty forces the view matrix to be recomputed. Call it after setting
// fields directly.
func (c *Camera) MarkDirty() { c.dirty = true }

// view = Translate(centre) * Scale(zoom) * Rotate(-rotation) * Translate(-X, -Y)
func (c *Camera) matrix() Affine {
	if !c.dirty {
		return c.view
	}
	c.dirty = false
	cx := c.Viewport.X + c.Viewport.Width/2
	cy := c.Viewport.Y + c.Viewport.Height/2
	c.view = Translate(cx, cy).
		Mul(ScaleBy(c.Zoom, c.Zoom)).
		Mul(Rotate(-c.Rotation)).
		Mul(Translate(-c.X, -c.Y))
	c.inv = c.view.Invert()
	return c.view
}

// WorldToScreen converts world coordinates to screen coordinates.
func (c *Camera) WorldToScreen(wx, wy float64) (sx, sy float64) {
	return c.matrix().Apply(wx, wy)
}

// ScreenToWorld converts screen coordinates to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy float64) (wx, wy float64) {
	c.matrix()
	return c.inv.Apply(sx, sy)
}

// ScrollTo animates the camera centre to (x, y) over duration seconds.
func (c *Camera) ScrollTo(x, y float64, duration float32, fn ease.TweenFunc) {
	c.tweens[0] = NewTween(&c.X, x, duration, fn)
	c.tweens[1] = NewTween(&c.Y, y, duration, fn)
	c.clamp()
}

// Scrolling reports whether a ScrollTo animation is running.
func (c *Camera) Scrolling() bool {
	return (c.tweens[0] != nil && !c.tweens[0].Done) || (c.tweens[1] != nil && !c.tweens[1].Done)
}

// Update advances scroll animations by dt seconds.
func (c *Camera) Update(dt float32) {
	if !c.Scrolling() {
		return
	}
	c.tweens[0].Update(dt)
	c.tweens[1].Update(dt)
	c.clamp()
}

// Attach pans the camera with p's drags. The pointer should be fed screen
// coordinates; the drag delta is scaled by the zoom so the world point under
// the pointer stays under it.
func (c *Camera) Attach(p *Pointer) {
	c.Detach()
	c.handles[0] = p.OnStart(func(Event) {
		c.tweens[0].Stop()
		c.tweens[1].Stop()
		c.pan = Vec2{c.X, c.Y}
		c.panning = true
	})
	c.handles[1] = p.OnMove(func(ev Event) {
		sin, cos := math.Sincos(c.Rotation)
		d := ev.Delta.Scale(1 / c.Zoom)
		c.X = c.pan.X - (cos*d.X - sin*d.Y)
		c.Y = c.pan.Y - (sin*d.X + cos*d.Y)
		c.clamp()
	})
	c.handles[2] = p.OnEnd(func(Event) { c.panning = false })
}

// Panning reports whether an attached pointer is dragging the camera.
func (c *Camera) Panning() bool { return c.panning }

// Detach stops following the attached pointer.
func (c *Camera) Detach() {
	for i := range c.handles {
		c.handles[i].Remove()
		c.handles[i] = CallbackHandle{}
	}
	c.panning = false
}

// clamp keeps the visible area inside Bounds and marks the view dirty.
// Bounds smaller than the visible area centre the camera.
func (c *Camera) clamp() {
	c.dirty = true
	b := c.Bounds
	if b == nil {
		return
	}
	halfW := c.Viewport.Width / (2 * c.Zoom)
	halfH := c.Viewport.Height / (2 * c.Zoom)
	minX, maxX := b.X+halfW, b.X+b.Width-halfW
	minY, maxY := b.Y+halfH, b.Y+b.Height-halfH
	if minX > maxX {
		c.X = b.X + b.Width/2
	} else {
		c.X = math.Max(minX, math.Min(c.X, maxX))
	}
	if minY > maxY {
		c.Y = b.Y + b.Height/2
	} else {
		c.Y = math.Max(minY, math.Min(c.Y, maxY))
	}
}
