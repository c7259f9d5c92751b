package gesture

import "time"

// DefaultFrameInterval is the time an Injector advances between steps of a
// synthetic drag, one frame at 60 Hz.
const DefaultFrameInterval = 16 * time.Millisecond

// Dispatcher accepts native input events. Surface implements it; wrap a
// single Pointer with DispatchFunc(p.Handle).
type Dispatcher interface {
	Dispatch(ev InputEvent) error
}

// DispatchFunc adapts a function to Dispatcher.
type DispatchFunc func(ev InputEvent) error

// Dispatch calls f(ev).
func (f DispatchFunc) Dispatch(ev InputEvent) error { return f(ev) }

// Injector synthesizes input for a Dispatcher with its own clock. Every
// helper stamps the event with the clock and returns the dispatch error.
// The clock advances only through Wait and multi-step helpers such as Drag.
type Injector struct {
	D         Dispatcher
	Now       time.Duration
	PointerID int
	Source    SourceKind
	Frame     time.Duration // step used by Drag; DefaultFrameInterval when zero
}

// NewInjector returns an injector for d starting at time zero.
func NewInjector(d Dispatcher) *Injector {
	return &Injector{D: d}
}

func (in *Injector) send(kind InputKind, x, y float64) error {
	ev := InputEvent{
		Kind:      kind,
		Source:    in.Source,
		PointerID: in.PointerID,
		Time:      in.Now,
	}
	p := Vec2{x, y}
	if in.Source == SourceTouch {
		ev.Touches = []Vec2{p}
	} else {
		ev.Client = &p
	}
	return in.D.Dispatch(ev)
}

// Wait advances the clock by d.
func (in *Injector) Wait(d time.Duration) *Injector {
	in.Now += d
	return in
}

// Press sends a down event at (x, y).
func (in *Injector) Press(x, y float64) error { return in.send(InputDown, x, y) }

// Move sends a move event at (x, y).
func (in *Injector) Move(x, y float64) error { return in.send(InputMove, x, y) }

// Release sends an up event at (x, y).
func (in *Injector) Release(x, y float64) error { return in.send(InputUp, x, y) }

// Cancel sends a cancel event without coordinates.
func (in *Injector) Cancel() error {
	return in.D.Dispatch(InputEvent{
		Kind:      InputCancel,
		Source:    in.Source,
		PointerID: in.PointerID,
		Time:      in.Now,
	})
}

// Click sends a press and a release at the same position and time.
func (in *Injector) Click(x, y float64) error {
	if err := in.Press(x, y); err != nil {
		return err
	}
	return in.Release(x, y)
}

// Drag sends a press at (fromX, fromY), then frames-1 linearly interpolated
// moves one frame apart ending at (toX, toY), then a release there without
// advancing the clock. frames is raised to 2 when smaller.
func (in *Injector) Drag(fromX, fromY, toX, toY float64, frames int) error {
	if frames < 2 {
		frames = 2
	}
	frame := in.Frame
	if frame <= 0 {
		frame = DefaultFrameInterval
	}
	if err := in.Press(fromX, fromY); err != nil {
		return err
	}
	steps := frames - 1
	for i := 1; i <= steps; i++ {
		in.Now += frame
		t := float64(i) / float64(steps)
		x := fromX + (toX-fromX)*t
		y := fromY + (toY-fromY)*t
		if err := in.Move(x, y); err != nil {
			return err
		}
	}
	return in.Release(toX, toY)
}
