package gesture

// Swipe calls a function when a pointer's gesture ends as a swipe: the
// gesture moved along the pointer's axis and its smoothed velocity passes
// HasVelocity. Cancelled gestures never count.
type Swipe struct {
	p  *Pointer
	h  CallbackHandle
	fn func(Direction, Event)
}

// OnSwipe attaches fn to p's END events.
func OnSwipe(p *Pointer, fn func(dir Direction, ev Event)) *Swipe {
	s := &Swipe{p: p, fn: fn}
	s.h = p.OnEnd(s.end)
	return s
}

// IsSwipe reports whether ev, an END event from p, classifies as a swipe.
func IsSwipe(p *Pointer, ev Event) bool {
	return ev.Type == EventEnd &&
		!ev.Cancelled &&
		ev.IsDirectionOnAxis &&
		ev.AxisDirection != DirectionNone &&
		p.HasVelocity(ev.CurrentVelocity)
}

func (s *Swipe) end(ev Event) {
	if IsSwipe(s.p, ev) {
		s.fn(ev.AxisDirection, ev)
	}
}

// Remove stops listening.
func (s *Swipe) Remove() {
	s.h.Remove()
	s.h = CallbackHandle{}
}
