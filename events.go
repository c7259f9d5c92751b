package gesture

import "time"

// Event is the payload delivered to START, MOVE and END handlers.
type Event struct {
	Type          EventType
	Target        Element // element the native input hit (may be a child or nil)
	CurrentTarget Element // element the Pointer is bound to
	Handle        Handle  // emitting pointer's Surface handle, zero if unbound
	PointerID     int

	Start           Vec2
	End             Vec2 // current position
	DeltaTime       time.Duration
	Delta           Vec2
	Velocity        Vec2 // instantaneous, units/ms
	CurrentVelocity Vec2 // smoothed, units/ms
	Distance        float64

	Direction         Direction
	AxisDirection     Direction
	IsDirectionOnAxis bool
	DidMoveOnAxis     bool

	// Cancelled is set on END events caused by a cancel rather than an up.
	Cancelled bool
}

// EventSink receives every event emitted by the pointers of a Surface.
// Used for the ECS bridge.
type EventSink interface {
	EmitEvent(event Event)
}

type handler struct {
	id uint32
	fn func(Event)
}

// emitter is a per-instance handler registry. Handlers run synchronously in
// registration order.
type emitter struct {
	start   []handler
	move    []handler
	end     []handler
	nextID  uint32
	scratch []handler
	gen     uint32 // bumped by reset
}

// CallbackHandle allows removing a registered handler.
type CallbackHandle struct {
	id    uint32
	reg   *emitter
	event EventType
}

// Remove unregisters this handler so it no longer fires. Removing twice, or
// removing the zero handle, does nothing.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	list := h.reg.list(h.event)
	if list == nil {
		return
	}
	*list = removeHandler(*list, h.id)
}

func removeHandler(s []handler, id uint32) []handler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = handler{}
			return s[:len(s)-1]
		}
	}
	return s
}

func (e *emitter) list(t EventType) *[]handler {
	switch t {
	case EventStart:
		return &e.start
	case EventMove:
		return &e.move
	case EventEnd:
		return &e.end
	}
	return nil
}

func (e *emitter) on(t EventType, fn func(Event)) CallbackHandle {
	list := e.list(t)
	if list == nil || fn == nil {
		return CallbackHandle{}
	}
	e.nextID++
	id := e.nextID
	*list = append(*list, handler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: e, event: t}
}

// emit calls the handlers registered for ev.Type. The handler list is
// snapshotted first, so handlers may add or remove handlers safely; changes
// apply from the next emit. A reset from inside a handler stops the
// remaining handlers.
func (e *emitter) emit(ev Event) {
	list := e.list(ev.Type)
	if list == nil || len(*list) == 0 {
		return
	}
	snap := append(e.scratch[:0], *list...)
	// Nested emits from inside a handler must not reuse the same scratch.
	e.scratch = nil
	gen := e.gen
	for _, h := range snap {
		h.fn(ev)
		if e.gen != gen {
			break
		}
	}
	clear(snap)
	if e.gen == gen {
		e.scratch = snap[:0]
	}
}

func (e *emitter) reset() {
	e.gen++
	e.start = nil
	e.move = nil
	e.end = nil
	e.scratch = nil
}

func (e *emitter) count(t EventType) int {
	list := e.list(t)
	if list == nil {
		return 0
	}
	return len(*list)
}
