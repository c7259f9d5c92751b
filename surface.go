package gesture

// Handle identifies a Pointer bound to a Surface. Handles are never reused
// within one Surface.
type Handle uint32

// Surface owns a set of Pointers and routes native input to them.
//
// Bound pointers live in an arena keyed by Handle; the element is an
// attribute of the pointer, never a map key. A down event goes to the
// topmost pointer whose element contains the position (the most recently
// added wins) and captures that pointer id until the matching up or cancel.
type Surface struct {
	pointers   []*Pointer // insertion order, bottom to top
	handles    map[Handle]*Pointer
	nextHandle Handle
	captured   map[int]*Pointer
	sink       EventSink
	disposed   bool
}

// NewSurface creates an empty surface.
func NewSurface() *Surface {
	return &Surface{
		handles:  make(map[Handle]*Pointer),
		captured: make(map[int]*Pointer),
	}
}

// Add binds a new Pointer to el on top of existing ones.
func (s *Surface) Add(el Element, opts Options) (*Pointer, error) {
	if s.disposed {
		return nil, ErrDisposed
	}
	p, err := NewPointer(el, opts)
	if err != nil {
		return nil, err
	}
	s.nextHandle++
	h := s.nextHandle
	p.handle = h
	p.sink = s.sink
	p.detach = func() { s.unbind(h) }
	s.pointers = append(s.pointers, p)
	s.handles[h] = p
	return p, nil
}

// Pointer returns the pointer bound under h, or nil.
func (s *Surface) Pointer(h Handle) *Pointer {
	return s.handles[h]
}

// Len returns the number of bound pointers.
func (s *Surface) Len() int { return len(s.pointers) }

// Remove disposes the pointer bound under h. It reports whether h was bound.
func (s *Surface) Remove(h Handle) bool {
	p, ok := s.handles[h]
	if !ok {
		return false
	}
	p.Dispose()
	return true
}

// unbind drops every reference the surface holds to the pointer under h.
func (s *Surface) unbind(h Handle) {
	p, ok := s.handles[h]
	if !ok {
		return
	}
	delete(s.handles, h)
	for i, q := range s.pointers {
		if q == p {
			copy(s.pointers[i:], s.pointers[i+1:])
			s.pointers[len(s.pointers)-1] = nil
			s.pointers = s.pointers[:len(s.pointers)-1]
			break
		}
	}
	for id, q := range s.captured {
		if q == p {
			delete(s.captured, id)
		}
	}
}

// SetSink forwards every event emitted by current and future pointers to
// sink. Pass nil to stop forwarding.
func (s *Surface) SetSink(sink EventSink) {
	s.sink = sink
	for _, p := range s.pointers {
		p.sink = sink
	}
}

// CapturePointer routes all events for pointerID to p until released.
func (s *Surface) CapturePointer(pointerID int, p *Pointer) {
	if p == nil || s.handles[p.handle] != p {
		return
	}
	s.captured[pointerID] = p
}

// ReleasePointer stops routing events for pointerID to a captured pointer.
func (s *Surface) ReleasePointer(pointerID int) {
	delete(s.captured, pointerID)
}

// Captured returns the pointer capturing pointerID, or nil.
func (s *Surface) Captured(pointerID int) *Pointer {
	return s.captured[pointerID]
}

// hitTest finds the topmost pointer whose element contains pos.
func (s *Surface) hitTest(pos Vec2) *Pointer {
	for i := len(s.pointers) - 1; i >= 0; i-- {
		p := s.pointers[i]
		if p.el.Contains(pos.X, pos.Y) {
			return p
		}
	}
	return nil
}

// Dispatch routes ev to the pointer it belongs to. Events that hit no
// element, and moves of pointers that are not captured (hover), are
// dropped without error.
func (s *Surface) Dispatch(ev InputEvent) error {
	if s.disposed {
		return ErrDisposed
	}
	if ev.Kind == InputDown {
		pos, err := ev.position()
		if err != nil {
			return err
		}
		p := s.captured[ev.PointerID]
		if p == nil {
			p = s.hitTest(pos)
		}
		if p == nil {
			return nil
		}
		s.captured[ev.PointerID] = p
		if ev.Target == nil {
			ev.Target = p.el
		}
		return p.Handle(ev)
	}

	p := s.captured[ev.PointerID]
	if p == nil {
		return nil
	}
	if ev.Target == nil {
		ev.Target = p.el
	}
	err := p.Handle(ev)
	if err == nil && (ev.Kind == InputUp || ev.Kind == InputCancel) {
		delete(s.captured, ev.PointerID)
	}
	return err
}

// Dispose disposes every bound pointer. Calling it again does nothing.
func (s *Surface) Dispose() {
	if s.disposed {
		return
	}
	pointers := append([]*Pointer(nil), s.pointers...)
	for _, p := range pointers {
		p.Dispose()
	}
	s.disposed = true
	s.pointers = nil
	clear(s.handles)
	clear(s.captured)
	s.sink = nil
}
