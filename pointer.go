package gesture

import (
	"fmt"
	"log"
	"time"
)

// session is the state of one continuous interaction from down to up/cancel.
type session struct {
	pointerID       int
	target          Element
	start           Vec2
	current         Vec2
	startTime       time.Duration
	currentTime     time.Duration
	velocity        Vec2
	currentVelocity Vec2
	seeded          bool // currentVelocity holds at least one measurement

	// currentVelocity and seeded before the newest sample was blended in,
	// restored when a same-timestamp sample replaces it.
	prevVelocity Vec2
	prevSeeded   bool
	cancelled       bool
}

// Pointer tracks pointer gestures on a single element and emits START, MOVE
// and END events.
//
// A Pointer owns at most one session. While a session is tracking, down
// events from any pointer are ignored and move/up events from pointers other
// than the tracked one are ignored. Pointer is not safe for concurrent use;
// feed it from a single input loop.
type Pointer struct {
	el       Element
	opts     Options
	state    State
	sess     *session
	buf      *SampleBuffer
	events   emitter
	last     Event
	sink     EventSink
	handle   Handle // zero unless bound to a Surface
	detach   func()
	disposed bool
}

// NewPointer binds a Pointer to el. Invalid options are reported
// immediately with an error wrapping ErrInvalidOptions.
func NewPointer(el Element, opts Options) (*Pointer, error) {
	if el == nil {
		return nil, fmt.Errorf("gesture: nil element: %w", ErrInvalidOptions)
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Pointer{
		el:   el,
		opts: opts,
		buf:  NewSampleBuffer(opts.BufferSize),
	}, nil
}

// Element returns the element the pointer is bound to.
func (p *Pointer) Element() Element { return p.el }

// ID returns the handle assigned by Surface.Add, or zero for a pointer
// created with NewPointer.
func (p *Pointer) ID() Handle { return p.handle }

// Options returns the pointer's configuration.
func (p *Pointer) Options() Options { return p.opts }

// State returns the lifecycle state.
func (p *Pointer) State() State { return p.state }

// Active reports whether a session is being tracked.
func (p *Pointer) Active() bool { return p.state == StateTracking }

// Disposed reports whether Dispose has been called.
func (p *Pointer) Disposed() bool { return p.disposed }

// On registers fn for events of type t. After Dispose it returns an inert
// handle and fn is never called.
func (p *Pointer) On(t EventType, fn func(Event)) CallbackHandle {
	if p.disposed {
		return CallbackHandle{}
	}
	h := p.events.on(t, fn)
	p.debugCheckHandlers(t)
	return h
}

// OnStart registers fn for START events.
func (p *Pointer) OnStart(fn func(Event)) CallbackHandle { return p.On(EventStart, fn) }

// OnMove registers fn for MOVE events.
func (p *Pointer) OnMove(fn func(Event)) CallbackHandle { return p.On(EventMove, fn) }

// OnEnd registers fn for END events.
func (p *Pointer) OnEnd(fn func(Event)) CallbackHandle { return p.On(EventEnd, fn) }

// Off unregisters a handler previously returned by On.
func (p *Pointer) Off(h CallbackHandle) {
	if h.reg != &p.events {
		return
	}
	h.Remove()
}

// HasVelocity reports whether v is fast enough along the pointer's axis to
// classify a gesture as a swipe.
func (p *Pointer) HasVelocity(v Vec2) bool {
	return HasVelocity(p.opts.Axis, v, p.opts.VelocityThreshold)
}

// Snapshot returns the most recently emitted event. After END it keeps the
// final values until the next START.
func (p *Pointer) Snapshot() Event { return p.last }

// Start returns the session start position.
func (p *Pointer) Start() Vec2 { return p.last.Start }

// End returns the current (or final) position.
func (p *Pointer) End() Vec2 { return p.last.End }

// Delta returns End - Start.
func (p *Pointer) Delta() Vec2 { return p.last.Delta }

// Distance returns the length of Delta.
func (p *Pointer) Distance() float64 { return p.last.Distance }

// Direction returns the unconstrained direction of Delta.
func (p *Pointer) Direction() Direction { return p.last.Direction }

// AxisDirection returns the direction of Delta restricted to the axis.
func (p *Pointer) AxisDirection() Direction { return p.last.AxisDirection }

// Velocity returns the instantaneous velocity in units/ms.
func (p *Pointer) Velocity() Vec2 { return p.last.Velocity }

// CurrentVelocity returns the smoothed velocity in units/ms.
func (p *Pointer) CurrentVelocity() Vec2 { return p.last.CurrentVelocity }

// Handle feeds one native input event through the state machine.
//
// Down, move and up events without usable coordinates return an error and
// leave the state unchanged. Cancel events need no coordinates. After
// Dispose every call returns ErrDisposed.
func (p *Pointer) Handle(ev InputEvent) error {
	if p.disposed {
		return fmt.Errorf("gesture: %s event: %w", ev.Kind, ErrDisposed)
	}
	switch ev.Kind {
	case InputDown:
		return p.down(ev)
	case InputMove:
		return p.move(ev)
	case InputUp:
		return p.up(ev)
	case InputCancel:
		p.cancel(ev)
		return nil
	}
	return fmt.Errorf("gesture: unknown input kind %d", uint8(ev.Kind))
}

func (p *Pointer) down(ev InputEvent) error {
	pos, err := ev.position()
	if err != nil {
		return err
	}
	if p.state != StateIdle {
		p.debugf("ignoring down from pointer %d while tracking pointer %d", ev.PointerID, p.sess.pointerID)
		return nil
	}
	p.buf.Reset()
	_ = p.buf.Push(Sample{Pos: pos, Time: ev.Time})
	p.sess = &session{
		pointerID:   ev.PointerID,
		target:      ev.Target,
		start:       pos,
		current:     pos,
		startTime:   ev.Time,
		currentTime: ev.Time,
	}
	p.state = StateTracking
	p.fire(EventStart)
	return nil
}

func (p *Pointer) move(ev InputEvent) error {
	pos, err := ev.position()
	if err != nil {
		return err
	}
	if !p.tracks(ev.PointerID) {
		return nil
	}
	if err := p.record(pos, ev.Time); err != nil {
		return err
	}
	p.fire(EventMove)
	return nil
}

func (p *Pointer) up(ev InputEvent) error {
	pos, err := ev.position()
	if err != nil {
		return err
	}
	if !p.tracks(ev.PointerID) {
		return nil
	}
	s := p.sess
	newest := p.buf.Newest()
	if !pos.Equals(newest.Pos) {
		if err := p.record(pos, ev.Time); err != nil {
			return err
		}
	} else {
		// Released without moving: a long enough pause means the pointer
		// was at rest, so it carries no momentum.
		if ev.Time-newest.Time > p.opts.RestTimeout {
			s.velocity = Vec2{}
			s.currentVelocity = Vec2{}
		}
		if ev.Time > s.currentTime {
			s.currentTime = ev.Time
		}
	}
	p.finish()
	return nil
}

func (p *Pointer) cancel(ev InputEvent) {
	if !p.tracks(ev.PointerID) {
		return
	}
	s := p.sess
	if ev.Time > s.currentTime {
		s.currentTime = ev.Time
	}
	s.cancelled = true
	p.finish()
}

func (p *Pointer) tracks(pointerID int) bool {
	return p.state == StateTracking && p.sess != nil && p.sess.pointerID == pointerID
}

// record pushes a sample and updates the position and velocities.
// CurrentVelocity is an exponentially weighted moving average seeded with the
// first instantaneous velocity.
func (p *Pointer) record(pos Vec2, t time.Duration) error {
	replaces := p.buf.Len() > 0 && p.buf.Newest().Time == t
	if err := p.buf.Push(Sample{Pos: pos, Time: t}); err != nil {
		return err
	}
	s := p.sess
	if replaces {
		s.currentVelocity, s.seeded = s.prevVelocity, s.prevSeeded
	} else {
		s.prevVelocity, s.prevSeeded = s.currentVelocity, s.seeded
	}
	s.current = pos
	s.currentTime = t
	if p.buf.Len() < 2 {
		return nil
	}
	v := p.buf.Velocity()
	s.velocity = v
	if !s.seeded {
		s.currentVelocity = v
		s.seeded = true
		return nil
	}
	a := p.opts.Smoothing
	s.currentVelocity = v.Scale(a).Add(s.currentVelocity.Scale(1 - a))
	return nil
}

// finish emits END and returns to idle.
func (p *Pointer) finish() {
	p.state = StateEnded
	p.fire(EventEnd)
	if p.disposed {
		return
	}
	p.state = StateIdle
	p.sess = nil
	p.buf.Reset()
}

func (p *Pointer) fire(t EventType) {
	ev := p.snapshot(t)
	p.last = ev
	p.debugf("%s pointer=%d end=(%.1f, %.1f) dt=%v v=(%.3f, %.3f) dir=%s axis=%s",
		t, ev.PointerID, ev.End.X, ev.End.Y, ev.DeltaTime,
		ev.CurrentVelocity.X, ev.CurrentVelocity.Y, ev.Direction, ev.AxisDirection)
	p.events.emit(ev)
	if p.sink != nil && !p.disposed {
		p.sink.EmitEvent(ev)
	}
}

// snapshot derives the event payload from the current session.
func (p *Pointer) snapshot(t EventType) Event {
	s := p.sess
	eps := p.opts.MoveEpsilon
	delta := s.current.Sub(s.start)
	dir := Classify(delta, eps)
	return Event{
		Type:              t,
		Target:            s.target,
		CurrentTarget:     p.el,
		Handle:            p.handle,
		PointerID:         s.pointerID,
		Start:             s.start,
		End:               s.current,
		DeltaTime:         s.currentTime - s.startTime,
		Delta:             delta,
		Velocity:          s.velocity,
		CurrentVelocity:   s.currentVelocity,
		Distance:          delta.Len(),
		Direction:         dir,
		AxisDirection:     ClassifyOnAxis(p.opts.Axis, delta, eps),
		IsDirectionOnAxis: directionOnAxis(p.opts.Axis, dir),
		DidMoveOnAxis:     movedOnAxis(p.opts.Axis, delta, eps),
		Cancelled:         s.cancelled,
	}
}

// Dispose detaches the pointer from its Surface, drops every handler and
// the active session. A session in progress ends without an END event.
// Calling Dispose again does nothing.
func (p *Pointer) Dispose() {
	if p.disposed {
		return
	}
	if p.state == StateTracking {
		log.Printf("gesture: pointer disposed while tracking pointer %d; END not emitted", p.sess.pointerID)
	}
	p.disposed = true
	if p.detach != nil {
		detach := p.detach
		p.detach = nil
		detach()
	}
	p.events.reset()
	p.sess = nil
	p.sink = nil
	p.last = Event{}
	p.state = StateIdle
}
