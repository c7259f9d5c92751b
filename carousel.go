package gesture

import (
	"fmt"
	"math"

	"github.com/tanema/gween/ease"
)

// CarouselConfig configures a Carousel.
type CarouselConfig struct {
	Slides     int
	SlideWidth float64
	Loop       bool    // wrap from the last slide to the first and back
	Duration   float32 // snap animation in seconds; defaults to 0.3
	Ease       ease.TweenFunc
}

// Carousel is a horizontal strip of equally wide slides driven by a
// Pointer on AxisX. Dragging moves the strip; on release it advances to the
// neighbouring slide when the gesture is a swipe or was dragged past half a
// slide, and snaps back otherwise.
type Carousel struct {
	p        *Pointer
	cfg      CarouselConfig
	index    int
	offset   float64 // strip translation; -index*SlideWidth at rest
	base     float64 // offset when the current drag started
	dragging bool
	tween    *Tween
	handles  [3]CallbackHandle
	onChange []func(from, to int)
}

// NewCarousel attaches a carousel to p, which must track AxisX.
func NewCarousel(p *Pointer, cfg CarouselConfig) (*Carousel, error) {
	if p.opts.Axis != AxisX {
		return nil, fmt.Errorf("gesture: carousel needs an x-axis pointer, got %s: %w", p.opts.Axis, ErrInvalidOptions)
	}
	if cfg.Slides < 1 {
		return nil, fmt.Errorf("gesture: carousel needs at least one slide: %w", ErrInvalidOptions)
	}
	if !(cfg.SlideWidth > 0) || math.IsInf(cfg.SlideWidth, 0) {
		return nil, fmt.Errorf("gesture: carousel slide width %v: %w", cfg.SlideWidth, ErrInvalidOptions)
	}
	if cfg.Duration <= 0 {
		cfg.Duration = 0.3
	}
	c := &Carousel{p: p, cfg: cfg}
	c.handles[0] = p.OnStart(c.start)
	c.handles[1] = p.OnMove(c.move)
	c.handles[2] = p.OnEnd(c.end)
	return c, nil
}

// Index returns the current slide.
func (c *Carousel) Index() int { return c.index }

// Offset returns the strip translation along X.
func (c *Carousel) Offset() float64 { return c.offset }

// Len returns the number of slides.
func (c *Carousel) Len() int { return c.cfg.Slides }

// Dragging reports whether the strip is following the pointer.
func (c *Carousel) Dragging() bool { return c.dragging }

// Settling reports whether a snap animation is running.
func (c *Carousel) Settling() bool { return c.tween != nil && !c.tween.Done }

// OnChange registers fn to be called whenever the index changes.
func (c *Carousel) OnChange(fn func(from, to int)) {
	c.onChange = append(c.onChange, fn)
}

// Next moves to the following slide.
func (c *Carousel) Next() { c.GoTo(c.index + 1) }

// Prev moves to the preceding slide.
func (c *Carousel) Prev() { c.GoTo(c.index - 1) }

// GoTo animates to slide i. Out-of-range indexes wrap when Loop is set and
// are clamped otherwise.
func (c *Carousel) GoTo(i int) {
	i = c.normalize(i)
	from := c.index
	c.index = i
	c.tween = NewTween(&c.offset, -float64(i)*c.cfg.SlideWidth, c.cfg.Duration, c.cfg.Ease)
	if from != i {
		for _, fn := range c.onChange {
			fn(from, i)
		}
	}
}

func (c *Carousel) normalize(i int) int {
	n := c.cfg.Slides
	if c.cfg.Loop {
		return ((i % n) + n) % n
	}
	return min(max(i, 0), n-1)
}

// Update advances the snap animation by dt seconds.
func (c *Carousel) Update(dt float32) {
	c.tween.Update(dt)
}

func (c *Carousel) start(ev Event) {
	c.tween.Stop()
	c.base = c.offset
	c.dragging = true
}

func (c *Carousel) move(ev Event) {
	offset := c.base + ev.Delta.X
	if !c.cfg.Loop {
		lo := -float64(c.cfg.Slides-1) * c.cfg.SlideWidth
		offset = min(max(offset, lo), 0)
	}
	c.offset = offset
}

func (c *Carousel) end(ev Event) {
	c.dragging = false
	if ev.Cancelled {
		c.GoTo(c.index)
		return
	}
	if IsSwipe(c.p, ev) {
		switch ev.AxisDirection {
		case DirectionLeft:
			c.GoTo(c.index + 1)
			return
		case DirectionRight:
			c.GoTo(c.index - 1)
			return
		}
	}
	nearest := int(math.Round(-c.offset / c.cfg.SlideWidth))
	c.GoTo(nearest)
}

// Detach stops following the pointer. The pointer itself is not disposed.
func (c *Carousel) Detach() {
	for i := range c.handles {
		c.handles[i].Remove()
		c.handles[i] = CallbackHandle{}
	}
	c.dragging = false
}
