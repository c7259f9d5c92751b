// Package term feeds terminal mouse input from tcell into gesture pointers.
package term

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/gesture"
)

// Source converts tcell mouse events into gesture input events. Only the
// primary button is tracked; it is reported as pointer 0.
type Source struct {
	D gesture.Dispatcher

	// CellWidth and CellHeight scale cell coordinates. Positions are the
	// centre of the cell. Both default to 1.
	CellWidth, CellHeight float64

	// Other receives every non-mouse event seen by Run. Returning true stops
	// Run.
	Other func(ev tcell.Event) (stop bool)

	origin time.Time
	down   bool
	last   gesture.Vec2
}

// NewSource creates a source feeding d. Event times are measured from now.
func NewSource(d gesture.Dispatcher) *Source {
	return &Source{D: d, CellWidth: 1, CellHeight: 1, origin: time.Now()}
}

func (s *Source) position(cx, cy int) gesture.Vec2 {
	w, h := s.CellWidth, s.CellHeight
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return gesture.Vec2{X: (float64(cx) + 0.5) * w, Y: (float64(cy) + 0.5) * h}
}

func (s *Source) since(t time.Time) time.Duration {
	if t.IsZero() || t.Before(s.origin) {
		return 0
	}
	return t.Sub(s.origin)
}

// HandleEvent translates one tcell event. It reports whether the event was a
// mouse event.
func (s *Source) HandleEvent(ev tcell.Event) (bool, error) {
	m, ok := ev.(*tcell.EventMouse)
	if !ok {
		return false, nil
	}
	pos := s.position(m.Position())
	pressed := m.Buttons()&tcell.Button1 != 0
	out := gesture.InputEvent{
		Source: gesture.SourceMouse,
		Time:   s.since(m.When()),
		Client: &pos,
	}
	switch {
	case pressed && !s.down:
		s.down = true
		out.Kind = gesture.InputDown
	case pressed && s.down:
		if pos.Equals(s.last) {
			return true, nil
		}
		out.Kind = gesture.InputMove
	case !pressed && s.down:
		s.down = false
		out.Kind = gesture.InputUp
	default:
		// Hover.
		s.last = pos
		return true, nil
	}
	s.last = pos
	return true, s.D.Dispatch(out)
}

// Run polls screen until ctx is done, the screen is finalized, Other asks to
// stop, or a dispatch fails. The screen must have mouse reporting enabled.
func (s *Source) Run(ctx context.Context, screen tcell.Screen) error {
	stop := context.AfterFunc(ctx, func() {
		_ = screen.PostEvent(tcell.NewEventInterrupt(nil))
	})
	defer stop()

	for {
		ev := screen.PollEvent()
		if ev == nil {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, ok := ev.(*tcell.EventInterrupt); ok {
			continue
		}
		handled, err := s.HandleEvent(ev)
		if err != nil {
			return err
		}
		if !handled && s.Other != nil && s.Other(ev) {
			return nil
		}
	}
}
