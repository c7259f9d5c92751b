package gesture

import (
	"errors"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

const maxPointers = 10 // pointer 0 = mouse, 1-9 = touch

// EbitenSource polls Ebitengine mouse and touch state once per frame and
// turns changes into input events. Mouse is pointer 0 (left button only);
// touches occupy pointers 1-9 in order of appearance.
type EbitenSource struct {
	D Dispatcher

	// Transform maps screen to element coordinates, e.g. for a scaled
	// layout. Nil means identity.
	Transform func(x, y float64) (float64, float64)

	// Clock returns the event timestamp. Defaults to time since the source
	// was created.
	Clock func() time.Duration

	mouseDown bool
	mouseLast Vec2

	touchMap  [maxPointers]ebiten.TouchID
	touchUsed [maxPointers]bool
	touchLast [maxPointers]Vec2
	touchIDs  []ebiten.TouchID
}

// touchPoint is one touch read from ebiten.
type touchPoint struct {
	id  ebiten.TouchID
	pos Vec2
}

// frameInput is the raw input state of one frame.
type frameInput struct {
	mouse        Vec2
	mousePressed bool
	touches      []touchPoint
}

// NewEbitenSource creates a source feeding d.
func NewEbitenSource(d Dispatcher) *EbitenSource {
	origin := time.Now()
	return &EbitenSource{
		D:     d,
		Clock: func() time.Duration { return time.Since(origin) },
	}
}

// Update reads the current Ebitengine input state and dispatches the
// resulting events. Call it from ebiten.Game.Update.
func (s *EbitenSource) Update() error {
	var in frameInput
	mx, my := ebiten.CursorPosition()
	in.mouse = s.transform(float64(mx), float64(my))
	in.mousePressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	s.touchIDs = ebiten.AppendTouchIDs(s.touchIDs[:0])
	for _, id := range s.touchIDs {
		tx, ty := ebiten.TouchPosition(id)
		in.touches = append(in.touches, touchPoint{id: id, pos: s.transform(float64(tx), float64(ty))})
	}
	return s.apply(in, s.Clock())
}

func (s *EbitenSource) transform(x, y float64) Vec2 {
	if s.Transform != nil {
		x, y = s.Transform(x, y)
	}
	return Vec2{x, y}
}

// apply diffs one frame of input against the previous one.
func (s *EbitenSource) apply(in frameInput, now time.Duration) error {
	var errs []error
	send := func(ev InputEvent) {
		ev.Time = now
		if err := s.D.Dispatch(ev); err != nil {
			errs = append(errs, err)
		}
	}

	// Mouse, pointer 0.
	m := in.mouse
	switch {
	case in.mousePressed && !s.mouseDown:
		s.mouseDown = true
		send(InputEvent{Kind: InputDown, Source: SourceMouse, Client: &m})
	case in.mousePressed && s.mouseDown && !m.Equals(s.mouseLast):
		send(InputEvent{Kind: InputMove, Source: SourceMouse, Client: &m})
	case !in.mousePressed && s.mouseDown:
		s.mouseDown = false
		send(InputEvent{Kind: InputUp, Source: SourceMouse, Client: &m})
	}
	s.mouseLast = m

	// Touches, pointers 1-9.
	var active [maxPointers]bool
	for _, tp := range in.touches {
		slot, fresh := s.touchSlot(tp.id)
		if slot < 0 {
			continue
		}
		active[slot] = true
		switch {
		case fresh:
			send(InputEvent{Kind: InputDown, Source: SourceTouch, PointerID: slot, Touches: []Vec2{tp.pos}})
		case !tp.pos.Equals(s.touchLast[slot]):
			send(InputEvent{Kind: InputMove, Source: SourceTouch, PointerID: slot, Touches: []Vec2{tp.pos}})
		}
		s.touchLast[slot] = tp.pos
	}

	// Lifted touches end where they were last seen.
	for i := 1; i < maxPointers; i++ {
		if s.touchUsed[i] && !active[i] {
			send(InputEvent{Kind: InputUp, Source: SourceTouch, PointerID: i, Touches: []Vec2{s.touchLast[i]}})
			s.touchUsed[i] = false
			s.touchMap[i] = 0
		}
	}
	return errors.Join(errs...)
}

// touchSlot maps a touch id to a pointer slot (1-9), allocating one for a
// new touch. fresh reports a new allocation. Returns -1 when all slots are
// taken.
func (s *EbitenSource) touchSlot(id ebiten.TouchID) (slot int, fresh bool) {
	for i := 1; i < maxPointers; i++ {
		if s.touchUsed[i] && s.touchMap[i] == id {
			return i, false
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !s.touchUsed[i] {
			s.touchUsed[i] = true
			s.touchMap[i] = id
			return i, true
		}
	}
	return -1, false
}
