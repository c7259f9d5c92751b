package gesture

import (
	"errors"
	"fmt"
	"strings"
)

// Axis selects which spatial axis a Pointer interprets gestures along.
type Axis uint8

const (
	AxisBoth Axis = iota // track both axes (default)
	AxisX                // horizontal only
	AxisY                // vertical only
)

// ParseAxis converts "x", "y" or "both" (case-insensitive) to an Axis.
// An empty string yields AxisBoth.
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "both", "xy":
		return AxisBoth, nil
	case "x":
		return AxisX, nil
	case "y":
		return AxisY, nil
	}
	return AxisBoth, fmt.Errorf("gesture: unknown axis %q: %w", s, ErrInvalidOptions)
}

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisBoth:
		return "both"
	}
	return fmt.Sprintf("Axis(%d)", uint8(a))
}

func (a Axis) valid() bool {
	return a <= AxisY
}

// Direction is the classified direction of a gesture.
type Direction uint8

const (
	DirectionNone  Direction = iota // no movement beyond the move epsilon
	DirectionUp                     // negative Y (screen coordinates)
	DirectionDown                   // positive Y
	DirectionLeft                   // negative X
	DirectionRight                  // positive X
)

func (d Direction) String() string {
	switch d {
	case DirectionNone:
		return "none"
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// Horizontal reports whether d is Left or Right.
func (d Direction) Horizontal() bool {
	return d == DirectionLeft || d == DirectionRight
}

// Vertical reports whether d is Up or Down.
func (d Direction) Vertical() bool {
	return d == DirectionUp || d == DirectionDown
}

// EventType identifies a kind of gesture event.
type EventType uint8

const (
	EventStart EventType = iota // fires on pointer down
	EventMove                   // fires on every accepted pointer move
	EventEnd                    // fires on pointer up or cancel
)

func (t EventType) String() string {
	switch t {
	case EventStart:
		return "start"
	case EventMove:
		return "move"
	case EventEnd:
		return "end"
	}
	return fmt.Sprintf("EventType(%d)", uint8(t))
}

// State is the lifecycle state of a Pointer.
type State uint8

const (
	StateIdle     State = iota // no session
	StateTracking              // pointer is down
	StateEnded                 // END is being emitted; returns to idle afterwards
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateTracking:
		return "tracking"
	case StateEnded:
		return "ended"
	}
	return fmt.Sprintf("State(%d)", uint8(s))
}

// Sentinel errors. Returned errors wrap these; test with errors.Is.
var (
	ErrInvalidOptions     = errors.New("invalid options")
	ErrMissingCoordinates = errors.New("event has no coordinates")
	ErrInvalidCoordinates = errors.New("event coordinates are not finite")
	ErrSampleOrder        = errors.New("sample older than newest buffered sample")
	ErrDisposed           = errors.New("pointer disposed")
)
