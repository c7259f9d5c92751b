package gesture

import (
	"fmt"
	"time"
)

// InputKind is the lifecycle phase of a native input event.
type InputKind uint8

const (
	InputDown   InputKind = iota // pointerdown / touchstart / mousedown
	InputMove                    // pointermove / touchmove / mousemove
	InputUp                      // pointerup / touchend / mouseup
	InputCancel                  // pointercancel / touchcancel
)

func (k InputKind) String() string {
	switch k {
	case InputDown:
		return "down"
	case InputMove:
		return "move"
	case InputUp:
		return "up"
	case InputCancel:
		return "cancel"
	}
	return fmt.Sprintf("InputKind(%d)", uint8(k))
}

// SourceKind identifies the device family that produced an input event.
type SourceKind uint8

const (
	SourcePointer SourceKind = iota // unified pointer events
	SourceMouse                     // mouse events
	SourceTouch                     // touch events; Touches holds the points
)

// InputEvent is a native input event in a device-neutral shape.
//
// Mouse and pointer events carry their position in Client. Touch events
// carry every active touch point in Touches; only the first (primary) one is
// tracked. A nil Client with no Touches means the native event had no
// coordinates, which is an error for down, move and up.
type InputEvent struct {
	Kind      InputKind
	Source    SourceKind
	PointerID int
	Time      time.Duration
	Client    *Vec2
	Touches   []Vec2
	Target    Element
}

// At returns a pointer-source event of the given kind at (x, y).
func At(kind InputKind, x, y float64, t time.Duration) InputEvent {
	return InputEvent{Kind: kind, Time: t, Client: &Vec2{x, y}}
}

// position extracts the tracked coordinate, validating it.
func (ev InputEvent) position() (Vec2, error) {
	var p Vec2
	switch {
	case ev.Source == SourceTouch && len(ev.Touches) > 0:
		p = ev.Touches[0]
	case ev.Client != nil:
		p = *ev.Client
	default:
		return Vec2{}, fmt.Errorf("gesture: %s event from pointer %d: %w", ev.Kind, ev.PointerID, ErrMissingCoordinates)
	}
	if !p.finite() {
		return Vec2{}, fmt.Errorf("gesture: %s event at (%v, %v): %w", ev.Kind, p.X, p.Y, ErrInvalidCoordinates)
	}
	return p, nil
}
